package services

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget status levels based on how much of the monthly limit is spent
const (
	BudgetStatusSafe    = "safe"
	BudgetStatusWarning = "warning"
	BudgetStatusDanger  = "danger"
)

var (
	budgetWarningThreshold = decimal.NewFromInt(70)
	budgetDangerThreshold  = decimal.NewFromInt(90)
	percentFactor          = decimal.NewFromInt(100)
)

// DashboardService computes the derived dashboard view: the filtered and
// sorted transaction list, totals, per-category breakdown, and budget
// progress. All derivations are pure functions over the stored records;
// nothing here is persisted.
type DashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetDashboard builds the dashboard for a user. Totals and the category
// breakdown reflect the filtered view; budget progress is always computed
// from the complete transaction list so hiding rows never changes it.
func (s *DashboardService) GetDashboard(userID uuid.UUID, filters models.ViewFilters, now time.Time) (*dto.DashboardResponse, error) {
	started := time.Now()

	transactions, err := s.transactionRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	budgets, err := s.budgetRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	view := FilterTransactions(transactions, filters)
	view = SortTransactions(view, filters.SortField, filters.SortOrder)

	totals := ComputeTotals(view)
	breakdown := CategoryBreakdown(view)
	progress := BudgetProgress(budgets, transactions, now)

	if s.metrics != nil {
		s.metrics.RecordProcessingTime("dashboard_build", time.Since(started))
		s.metrics.IncrementCounter("dashboard_requests", map[string]string{"status": "success"})
	}

	listResponse := dto.NewTransactionListResponse(view)

	return &dto.DashboardResponse{
		Transactions:      listResponse.Transactions,
		Totals:            totals,
		CategoryBreakdown: breakdown,
		BudgetProgress:    progress,
	}, nil
}

// FilterTransactions applies the search query and category set to the list.
// Both conditions must hold for a row to survive; empty filters pass
// everything through. The input slice is never mutated.
func FilterTransactions(transactions []models.Transaction, filters models.ViewFilters) []models.Transaction {
	if !filters.HasSearch() && !filters.HasCategoryFilter() {
		result := make([]models.Transaction, len(transactions))
		copy(result, transactions)
		return result
	}

	query := strings.ToLower(strings.TrimSpace(filters.SearchQuery))

	categorySet := make(map[string]struct{}, len(filters.Categories))
	for _, c := range filters.Categories {
		categorySet[c] = struct{}{}
	}

	result := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if query != "" && !matchesSearch(&t, query) {
			continue
		}
		if len(categorySet) > 0 {
			if _, ok := categorySet[t.Category]; !ok {
				continue
			}
		}
		result = append(result, t)
	}

	return result
}

// matchesSearch checks the query against the title, the category name, and
// the amount rendered as a string, all case-insensitively.
func matchesSearch(t *models.Transaction, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(t.Title), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Category), loweredQuery) {
		return true
	}
	return strings.Contains(t.Amount.String(), loweredQuery)
}

// SortTransactions returns a stably sorted copy of the list. An empty or
// unknown field leaves the incoming order untouched.
func SortTransactions(transactions []models.Transaction, field, order string) []models.Transaction {
	result := make([]models.Transaction, len(transactions))
	copy(result, transactions)

	if !models.IsValidSortField(field) {
		return result
	}

	descending := order == models.SortOrderDesc

	sort.SliceStable(result, func(i, j int) bool {
		a, b := &result[i], &result[j]
		if descending {
			a, b = b, a
		}
		switch field {
		case models.SortFieldDate:
			return a.Date.Before(b.Date)
		case models.SortFieldAmount:
			return a.Amount.LessThan(b.Amount)
		case models.SortFieldTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
		return false
	})

	return result
}

// ComputeTotals sums income and expenses over the given view and derives
// the balance as income minus expenses.
func ComputeTotals(transactions []models.Transaction) dto.TotalsResponse {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	return dto.TotalsResponse{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// CategoryBreakdown aggregates expense amounts per category over the given
// view, largest first. Income rows are excluded. Ties break by category
// name so the output is deterministic.
func CategoryBreakdown(transactions []models.Transaction) []dto.CategoryTotalResponse {
	totals := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	result := make([]dto.CategoryTotalResponse, 0, len(totals))
	for category, total := range totals {
		result = append(result, dto.CategoryTotalResponse{
			Category: category,
			Total:    total,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total.Equal(result[j].Total) {
			return result[i].Category < result[j].Category
		}
		return result[i].Total.GreaterThan(result[j].Total)
	})

	return result
}

// CurrentMonthSpend sums expense amounts in the given category within the
// calendar month containing now.
func CurrentMonthSpend(transactions []models.Transaction, category string, now time.Time) decimal.Decimal {
	spent := decimal.Zero
	year, month := now.UTC().Year(), now.UTC().Month()

	for _, t := range transactions {
		if !t.IsExpense() || t.Category != category {
			continue
		}
		if t.Date.Year() == year && t.Date.Month() == month {
			spent = spent.Add(t.Amount)
		}
	}

	return spent
}

// BudgetProgress computes current-month spending against each budget. The
// percentage is not clamped: 150% means the budget is overshot by half.
// Limits are validated positive at write time, so no division guard is
// needed here.
func BudgetProgress(budgets []models.Budget, transactions []models.Transaction, now time.Time) []dto.BudgetProgressResponse {
	result := make([]dto.BudgetProgressResponse, 0, len(budgets))

	for i := range budgets {
		b := &budgets[i]
		spent := CurrentMonthSpend(transactions, b.Category, now)
		percentage := spent.Div(b.MonthlyLimit).Mul(percentFactor).Round(2)

		result = append(result, dto.BudgetProgressResponse{
			ID:           b.ID.String(),
			Category:     b.Category,
			MonthlyLimit: b.MonthlyLimit,
			Spent:        spent,
			Percentage:   percentage,
			Status:       BudgetStatus(percentage),
		})
	}

	return result
}

// BudgetStatus classifies a spend percentage: below 70 is safe, 70 up to
// but not including 90 is warning, 90 and above is danger.
func BudgetStatus(percentage decimal.Decimal) string {
	switch {
	case percentage.GreaterThanOrEqual(budgetDangerThreshold):
		return BudgetStatusDanger
	case percentage.GreaterThanOrEqual(budgetWarningThreshold):
		return BudgetStatusWarning
	default:
		return BudgetStatusSafe
	}
}
