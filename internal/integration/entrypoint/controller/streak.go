package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/streak"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// StreakController handles streak endpoints.
type StreakController struct {
	advanceUseCase *streak.AdvanceStreakUseCase
}

// NewStreakController creates a new streak controller instance.
func NewStreakController(advanceUseCase *streak.AdvanceStreakUseCase) *StreakController {
	return &StreakController{
		advanceUseCase: advanceUseCase,
	}
}

// Update handles POST /streaks/update requests.
func (c *StreakController) Update(ctx *gin.Context) {
	var req dto.UpdateStreakRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingStreakFields),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid userId format",
			Code:  string(domainerror.ErrCodeMissingStreakFields),
		})
		return
	}

	output, err := c.advanceUseCase.Execute(ctx.Request.Context(), streak.AdvanceStreakInput{
		UserID:     userID,
		StreakType: req.StreakType,
	})
	if err != nil {
		var streakErr *domainerror.StreakError
		if errors.As(err, &streakErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: streakErr.Message,
				Code:  string(streakErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStreakResponse(output))
}
