package services

import (
	"context"
	"fmt"

	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories"
	"github.com/yigit/university/internal/pkg/csvexport"
)

// ReportService builds the read-time summaries
type ReportService interface {
	StudentReports(ctx context.Context) ([]models.StudentReport, error)
	// StudentReportCSV renders StudentReports as CSV with a header row
	StudentReportCSV(ctx context.Context) ([]byte, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	repos *repositories.Repositories
}

// NewReportService creates a new report service instance
func NewReportService(repos *repositories.Repositories) ReportService {
	return &reportServiceImpl{repos: repos}
}

func (s *reportServiceImpl) StudentReports(ctx context.Context) ([]models.StudentReport, error) {
	return s.repos.Reports.StudentReports(ctx)
}

func (s *reportServiceImpl) StudentReportCSV(ctx context.Context) ([]byte, error) {
	reports, err := s.repos.Reports.StudentReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading student report: %w", err)
	}

	out, err := csvexport.Render(models.StudentReportHeader, reports)
	if err != nil {
		return nil, fmt.Errorf("error rendering student report: %w", err)
	}
	return out, nil
}
