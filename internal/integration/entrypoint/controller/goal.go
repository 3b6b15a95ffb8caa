package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/application/usecase/goal"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal lifecycle endpoints.
type GoalController struct {
	createUseCase *goal.CreateGoalUseCase
	listUseCase   *goal.ListGoalsUseCase
	getUseCase    *goal.GetGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
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

	input := goal.CreateGoalInput{
		UserID:            userID,
		GoalType:          req.GoalType,
		Description:       req.Description,
		TargetAmount:      decimal.NewFromFloat(req.TargetAmount),
		TargetUnit:        req.TargetUnit,
		DurationDays:      req.DurationDays,
		ReminderFrequency: req.ReminderFrequency,
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingGoalFields),
			})
			return
		}
		input.StartDate = &startDate
	}

	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingGoalFields),
			})
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// List handles GET /goals requests. The user ID and optional active filter
// come from query parameters.
func (c *GoalController) List(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Query("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing userId query parameter",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active") == "true",
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Query("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing userId query parameter",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Query("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing userId query parameter",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		UserID: userID,
		GoalID: goalID,
	}); err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
