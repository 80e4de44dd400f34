package dto

import (
	"github.com/shopspring/decimal"
)

// Dashboard Response DTOs

// TotalsResponse holds the aggregate figures for the current view
type TotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// CategoryTotalResponse is one row of the per-category expense breakdown
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// BudgetProgressResponse reports current-month spending against one budget
type BudgetProgressResponse struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	Spent        decimal.Decimal `json:"spent"`
	Percentage   decimal.Decimal `json:"percentage"`
	Status       string          `json:"status"`
}

// DashboardResponse is the full dashboard payload: the filtered and sorted
// transaction view plus aggregates computed from it, and budget progress
// computed from the complete transaction list regardless of active filters.
type DashboardResponse struct {
	Transactions      []TransactionResponse    `json:"transactions"`
	Totals            TotalsResponse           `json:"totals"`
	CategoryBreakdown []CategoryTotalResponse  `json:"category_breakdown"`
	BudgetProgress    []BudgetProgressResponse `json:"budget_progress"`
}
