package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huyndq/school-admin/internal/app/models/dto"
	"github.com/huyndq/school-admin/internal/app/services"
	"github.com/huyndq/school-admin/internal/middleware"
	"github.com/huyndq/school-admin/internal/pkg/helpers"
)

// TeacherController handles teacher-related endpoints
type TeacherController struct {
	teacherService *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// GetTeachers lists teachers with pagination
// @Summary List teachers
// @Description Retrieves one page of teachers ordered by creation time descending
// @Tags teachers
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based, default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} dto.StructuredResponse{data=[]dto.TeacherResponse} "Teachers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) GetTeachers(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	teachers, pagination, err := c.teacherService.ListTeachers(ctx, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(teachers, "Teachers retrieved successfully", pagination))
}

// CreateTeacher creates a person and teacher pair
// @Summary Create a teacher
// @Description Creates a person and its teacher record as one atomic unit of work
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.StructuredResponse{data=dto.TeacherResponse} "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Email or full name missing"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Email and full name are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(teacher, "Teacher created successfully"))
}
