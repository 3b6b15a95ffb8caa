package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/motivation"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// MotivationController handles AI motivation endpoints.
type MotivationController struct {
	getUseCase *motivation.GetMotivationUseCase
}

// NewMotivationController creates a new motivation controller instance.
func NewMotivationController(getUseCase *motivation.GetMotivationUseCase) *MotivationController {
	return &MotivationController{
		getUseCase: getUseCase,
	}
}

// Get handles POST /motivation requests. The caller is identified by the
// bearer token, not the body.
func (c *MotivationController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.MotivationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), motivation.GetMotivationInput{
		UserID:      userID,
		UserMessage: req.UserMessage,
	})
	if err != nil {
		var motivationErr *domainerror.MotivationError
		if errors.As(err, &motivationErr) && motivationErr.Code == domainerror.ErrCodeProfileNotFound {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: motivationErr.Message,
				Code:  string(motivationErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate motivation",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMotivationResponse(output))
}
