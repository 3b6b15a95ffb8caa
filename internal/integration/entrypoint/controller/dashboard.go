package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{
		getUseCase: getUseCase,
	}
}

// Get handles POST /goals/dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	var req dto.DashboardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid userId format",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load dashboard",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
