package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/university/internal/app/controllers"
	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
) {
	courses := router.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.POST("", courseController.CreateCourse)
		courses.GET("/:id", courseController.GetCourse)
		courses.PATCH("/:id", courseController.PatchCourse)
		courses.PUT("/:id", courseController.ReplaceCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
		courses.POST("/:id/assign", courseController.AssignStudent)
		courses.POST("/:id/unassign", courseController.UnassignStudent)
	}

	students := router.Group("/students")
	{
		students.GET("", studentController.GetStudentsReport)
		students.POST("", studentController.CreateStudent)
		students.GET("/:id", studentController.GetStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	router.GET("/health", health)
	router.NoRoute(middleware.NotFound())
}

// health reports that the process is serving requests
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
