package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/progress"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// ProgressController handles progress recording endpoints.
type ProgressController struct {
	recordUseCase *progress.RecordProgressUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(recordUseCase *progress.RecordProgressUseCase) *ProgressController {
	return &ProgressController{
		recordUseCase: recordUseCase,
	}
}

// Record handles POST /goals/progress requests.
func (c *ProgressController) Record(ctx *gin.Context) {
	var req dto.RecordProgressRequest
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

	goalID, err := uuid.Parse(req.GoalID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goalId format",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := progress.RecordProgressInput{
		UserID: userID,
		GoalID: goalID,
		Amount: req.Amount,
		Notes:  req.Notes,
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordProgressResponse(output))
}

// handleGoalError maps goal errors to HTTP responses.
func handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(statusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForGoalError maps goal error codes to HTTP status codes.
func statusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidProgressAmount,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidReminderFrequency,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
