package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/reminder"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// ReminderController handles reminder sweep endpoints.
type ReminderController struct {
	generateUseCase *reminder.GenerateRemindersUseCase
}

// NewReminderController creates a new reminder controller instance.
func NewReminderController(generateUseCase *reminder.GenerateRemindersUseCase) *ReminderController {
	return &ReminderController{
		generateUseCase: generateUseCase,
	}
}

// Run handles POST /reminders/run requests. The body may scope the sweep to
// one user; an empty body sweeps everyone.
func (c *ReminderController) Run(ctx *gin.Context) {
	var req dto.RunRemindersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := reminder.GenerateRemindersInput{}
	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid userId format",
			})
			return
		}
		input.UserID = &userID
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var reminderErr *domainerror.ReminderError
		if errors.As(err, &reminderErr) {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: reminderErr.Message,
				Code:  string(reminderErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to run reminder sweep",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRunRemindersResponse(output))
}
