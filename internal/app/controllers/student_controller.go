package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/app/services"
	"github.com/yigit/university/internal/middleware"
	"github.com/yigit/university/internal/pkg/csvexport"
)

const reportFilename = "report.csv"

// StudentController handles student endpoints
type StudentController struct {
	studentService services.StudentService
	reportService  services.ReportService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, reportService services.ReportService) *StudentController {
	return &StudentController{
		studentService: studentService,
		reportService:  reportService,
	}
}

// GetStudentsReport downloads the students report
// @Summary Students report
// @Description CSV with one row per student, newest first: full_name, courses_assigned, courses_completed
// @Tags students
// @Produce text/csv
// @Success 200 {string} string "CSV report"
// @Failure 500 {object} dto.DetailResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudentsReport(ctx *gin.Context) {
	body, err := c.reportService.StudentReportCSV(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", csvexport.AttachmentDisposition(reportFilename))
	ctx.Data(http.StatusOK, csvexport.ContentType, body)
}

// CreateStudent registers a new student
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.StudentResponse "Student created"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid fields or email already taken"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStudentResponse(student))
}

// GetStudent returns the summary of one student
// @Summary Get student summary
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.StudentSummaryResponse "Student summary"
// @Failure 404 {object} dto.DetailResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.studentService.GetStudentSummary(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentSummaryResponse(summary))
}

// DeleteStudent deletes a student and its enrollments
// @Summary Delete a student
// @Tags students
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 204 "Student deleted"
// @Failure 404 {object} dto.DetailResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
