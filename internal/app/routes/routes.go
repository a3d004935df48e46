package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huyndq/school-admin/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	teacherController *controllers.TeacherController,
	positionController *controllers.PositionController,
) {
	api := router.Group("/api")

	// Teacher routes
	teachers := api.Group("/teachers")
	{
		teachers.GET("", teacherController.GetTeachers)
		teachers.POST("", teacherController.CreateTeacher)
	}

	// Position catalog routes
	positions := api.Group("/teacher-positions")
	{
		positions.GET("", positionController.GetPositions)
		positions.POST("", positionController.CreatePosition)
	}

	// Health check endpoint (public)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "API server is running",
		})
	})
}
