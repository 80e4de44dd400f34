package handlers

import (
	"net/http"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget endpoints
type BudgetHandler struct {
	budgetRepo repositories.BudgetRepositoryInterface
	metrics    services.MetricsRecorderInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetRepo: budgetRepo,
		metrics:    metrics,
	}
}

// List returns all budgets for the authenticated user
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgets, err := h.budgetRepo.ListByUser(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetListResponse(budgets))
}

// Set creates or replaces the monthly limit for a category. A zero or
// negative limit is rejected rather than stored.
func (h *BudgetHandler) Set(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.MonthlyLimit.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.BudgetInvalidLimit)
	}

	budget := &models.Budget{
		UserID:       userID,
		Category:     req.Category,
		MonthlyLimit: req.MonthlyLimit,
	}

	if err := h.budgetRepo.Upsert(budget); err != nil {
		if err == models.ErrInvalidBudgetLimit {
			return SendError(c, errors.BudgetInvalidLimit)
		}
		if err == models.ErrInvalidCategory {
			return SendError(c, errors.BudgetInvalidCategory)
		}
		return SendSystemError(c, err)
	}

	// Re-read so the response carries the stored row, not the upsert input
	stored, err := h.budgetRepo.GetByUserAndCategory(userID, req.Category)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.recordWrite("upsert")

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(stored))
}

// Delete removes a budget owned by the authenticated user
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	if err := h.budgetRepo.Delete(budgetID, userID); err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	h.recordWrite("delete")

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Budget deleted successfully",
	})
}

func (h *BudgetHandler) recordWrite(operation string) {
	if h.metrics == nil {
		return
	}
	h.metrics.IncrementCounter("budget_write", map[string]string{
		"operation": operation,
	})
}
