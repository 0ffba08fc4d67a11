package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/app/services"
	"github.com/yigit/university/internal/middleware"
)

// CourseController handles course and enrollment endpoints
type CourseController struct {
	courseService     services.CourseService
	enrollmentService services.EnrollmentService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, enrollmentService services.EnrollmentService) *CourseController {
	return &CourseController{
		courseService:     courseService,
		enrollmentService: enrollmentService,
	}
}

// ListCourses lists every course with its number of active students
// @Summary List courses
// @Description Returns all courses, newest first, with the live count of assigned students
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponse "Courses"
// @Failure 500 {object} dto.DetailResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseListResponse(courses))
}

// GetCourse retrieves a course by ID
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.CourseResponse "Course"
// @Failure 404 {object} dto.DetailResponse "Course not found"
// @Failure 500 {object} dto.DetailResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// CreateCourse is rejected for every caller
// @Summary Create a course
// @Description Course creation is not available through the API; the request body is ignored
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CourseRequest false "Course information"
// @Success 201 {object} dto.CourseResponse "Course created"
// @Failure 403 {object} dto.DetailResponse "Permission denied"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	if err := c.courseService.AuthorizeCreate(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CourseRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCourseResponse(course))
}

// PatchCourse updates the fields present in the body
// @Summary Partially update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.CourseRequest true "Fields to change"
// @Success 200 {object} dto.CourseResponse "Updated course"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid fields"
// @Failure 404 {object} dto.DetailResponse "Course not found"
// @Router /courses/{id} [patch]
func (c *CourseController) PatchCourse(ctx *gin.Context) {
	c.updateCourse(ctx, true)
}

// ReplaceCourse replaces every editable field
// @Summary Update a course
// @Description name, start_date and end_date are required; a missing description is cleared
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.CourseRequest true "Course information"
// @Success 200 {object} dto.CourseResponse "Updated course"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid fields"
// @Failure 404 {object} dto.DetailResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) ReplaceCourse(ctx *gin.Context) {
	c.updateCourse(ctx, false)
}

func (c *CourseController) updateCourse(ctx *gin.Context, partial bool) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, req, partial)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// DeleteCourse deletes a course and its enrollments
// @Summary Delete a course
// @Tags courses
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 204 "Course deleted"
// @Failure 404 {object} dto.DetailResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AssignStudent assigns a student to the course
// @Summary Assign a student to a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.AssignStudentRequest true "Student to assign"
// @Success 200 {object} dto.MessageResponse "Student was assigned to course"
// @Failure 400 {object} dto.ValidationErrorResponse "Already assigned or invalid student"
// @Failure 404 {object} dto.DetailResponse "Course not found"
// @Router /courses/{id}/assign [post]
func (c *CourseController) AssignStudent(ctx *gin.Context) {
	c.enrollmentAction(ctx, c.enrollmentService.AssignStudent, dto.MsgStudentAssigned)
}

// UnassignStudent removes a student from the course
// @Summary Unassign a student from a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.AssignStudentRequest true "Student to unassign"
// @Success 200 {object} dto.MessageResponse "Student was unassigned from course"
// @Failure 400 {object} dto.ValidationErrorResponse "Not assigned or invalid student"
// @Failure 404 {object} dto.DetailResponse "Course not found"
// @Router /courses/{id}/unassign [post]
func (c *CourseController) UnassignStudent(ctx *gin.Context) {
	c.enrollmentAction(ctx, c.enrollmentService.UnassignStudent, dto.MsgStudentUnassigned)
}

type enrollmentFunc func(ctx context.Context, courseID, studentID int64) error

func (c *CourseController) enrollmentAction(ctx *gin.Context, action enrollmentFunc, message string) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignStudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	studentID, err := req.StudentID()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := action(ctx.Request.Context(), courseID, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
