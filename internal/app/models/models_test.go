package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2019, time.November, 7)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2019-11-07"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2019-11-23"`), &back))
	assert.Equal(t, "2019-11-23", back.String())

	assert.Error(t, json.Unmarshal([]byte(`"23/11/2019"`), &back))
}

func TestStudent_FullName(t *testing.T) {
	s := &Student{FirstName: "Tom1", LastName: "Bri1"}
	assert.Equal(t, "Tom1 Bri1", s.FullName())
}

func TestEnrollment_State(t *testing.T) {
	cases := []struct {
		completed, deleted bool
		want               EnrollmentState
	}{
		{false, false, EnrollmentActive},
		{true, false, EnrollmentCompleted},
		{false, true, EnrollmentUnassigned},
		{true, true, EnrollmentCompletedUnassigned},
	}
	for _, tc := range cases {
		e := &Enrollment{Completed: tc.completed, IsDeleted: tc.deleted}
		assert.Equal(t, tc.want, e.State())
		assert.Equal(t, !tc.deleted, e.IsActive())
	}
}

func TestStudentReport_CSVRecord(t *testing.T) {
	r := StudentReport{FullName: "Tom2 Bri2", CoursesAssigned: 1, CoursesCompleted: 2}
	assert.Equal(t, []string{"Tom2 Bri2", "1", "2"}, r.CSVRecord())
	assert.Len(t, StudentReportHeader, len(r.CSVRecord()))
}
