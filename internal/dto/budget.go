package dto

import (
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Budget Request DTOs

// SetBudgetRequest creates or replaces the monthly limit for a category
type SetBudgetRequest struct {
	Category     string          `json:"category" validate:"required,category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" validate:"required"`
}

// Budget Response DTOs

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BudgetListResponse wraps a list of budgets
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Total   int              `json:"total"`
}

// NewBudgetResponse converts a budget model to its API representation
func NewBudgetResponse(b *models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:           b.ID.String(),
		Category:     b.Category,
		MonthlyLimit: b.MonthlyLimit,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// NewBudgetListResponse converts a slice of budget models
func NewBudgetListResponse(budgets []models.Budget) BudgetListResponse {
	items := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		items = append(items, NewBudgetResponse(&budgets[i]))
	}
	return BudgetListResponse{
		Budgets: items,
		Total:   len(items),
	}
}
