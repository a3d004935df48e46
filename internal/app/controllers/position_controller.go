package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huyndq/school-admin/internal/app/models/dto"
	"github.com/huyndq/school-admin/internal/app/services"
	"github.com/huyndq/school-admin/internal/middleware"
)

// PositionController handles job-position endpoints
type PositionController struct {
	positionService *services.PositionService
}

// NewPositionController creates a new PositionController
func NewPositionController(positionService *services.PositionService) *PositionController {
	return &PositionController{
		positionService: positionService,
	}
}

// GetPositions lists all job positions
// @Summary List positions
// @Description Retrieves every job position sorted by name, soft-deleted entries included
// @Tags positions
// @Accept json
// @Produce json
// @Success 200 {object} dto.StructuredResponse{data=[]dto.PositionResponse} "Positions retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher-positions [get]
func (c *PositionController) GetPositions(ctx *gin.Context) {
	positions, err := c.positionService.ListPositions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(positions, "Positions retrieved successfully"))
}

// CreatePosition creates a new job position
// @Summary Create a position
// @Description Creates a new job-position catalog entry with a unique code
// @Tags positions
// @Accept json
// @Produce json
// @Param request body dto.CreatePositionRequest true "Position information"
// @Success 201 {object} dto.StructuredResponse{data=dto.PositionResponse} "Position created successfully"
// @Failure 400 {object} dto.ErrorResponse "Code or name missing"
// @Failure 409 {object} dto.ErrorResponse "Position code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher-positions [post]
func (c *PositionController) CreatePosition(ctx *gin.Context) {
	var req dto.CreatePositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Position code and name are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	position, err := c.positionService.CreatePosition(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(position, "Position created successfully"))
}
