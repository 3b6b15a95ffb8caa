package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/notification"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// NotificationController handles deadline notification endpoints.
type NotificationController struct {
	checkUseCase *notification.CheckDeadlinesUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(checkUseCase *notification.CheckDeadlinesUseCase) *NotificationController {
	return &NotificationController{
		checkUseCase: checkUseCase,
	}
}

// CheckDeadlines handles POST /goals/deadlines requests.
func (c *NotificationController) CheckDeadlines(ctx *gin.Context) {
	var req dto.CheckDeadlinesRequest
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

	output, err := c.checkUseCase.Execute(ctx.Request.Context(), notification.CheckDeadlinesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to check deadlines",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckDeadlinesResponse(output))
}
