// Package csvexport renders tabular reports as RFC 4180 CSV with CRLF line endings.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

const (
	// ContentType is the media type of rendered reports
	ContentType = "text/csv"
)

// Row is a single record of a report.
type Row interface {
	CSVRecord() []string
}

// Write writes header followed by one record per row to w.
func Write[R Row](w io.Writer, header []string, rows []R) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, row := range rows {
		record := row.CSVRecord()
		if len(record) != len(header) {
			return fmt.Errorf("csv row %d has %d fields, header has %d", i, len(record), len(header))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// Render returns the rendered report as bytes.
func Render[R Row](header []string, rows []R) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, header, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AttachmentDisposition returns a Content-Disposition value for a downloadable file.
func AttachmentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
