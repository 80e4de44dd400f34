package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker/internal/database"
	"expense-tracker/internal/dto"
	"expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	echo            *echo.Echo
	db              *database.DB
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	handler         *DashboardHandler
	user            *models.User
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())
	s.transactionRepo = repositories.NewTransactionRepository(s.db.DB)
	s.budgetRepo = repositories.NewBudgetRepository(s.db.DB)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dashboardService := services.NewDashboardService(s.transactionRepo, s.budgetRepo, nil, logger)
	s.handler = NewDashboardHandler(dashboardService)
	s.user = database.CreateTestUser(s.T(), s.db, "dashboard@example.com")
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *DashboardHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.user.ID)
	return c, rec
}

func (s *DashboardHandlerTestSuite) seed(title, amount, category, kind string) {
	transaction := &models.Transaction{
		UserID:   s.user.ID,
		Title:    title,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Kind:     kind,
		Date:     time.Now().UTC(),
	}
	s.Require().NoError(s.transactionRepo.Create(transaction))
}

func (s *DashboardHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *DashboardHandlerTestSuite) TestGet() {
	s.seed("Salary", "3000.00", models.CategoryOther, models.TransactionKindIncome)
	s.seed("Groceries", "120.50", models.CategoryFood, models.TransactionKindExpense)
	s.seed("Train ticket", "30.00", models.CategoryTravel, models.TransactionKindExpense)

	s.Require().NoError(s.budgetRepo.Upsert(&models.Budget{
		UserID:       s.user.ID,
		Category:     models.CategoryFood,
		MonthlyLimit: decimal.RequireFromString("400.00"),
	}))

	c, rec := s.newContext("/api/v1/dashboard")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DashboardResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Len(response.Transactions, 3)
	s.True(response.Totals.Income.Equal(decimal.RequireFromString("3000.00")))
	s.True(response.Totals.Expense.Equal(decimal.RequireFromString("150.50")))
	s.True(response.Totals.Balance.Equal(decimal.RequireFromString("2849.50")))

	s.Require().Len(response.BudgetProgress, 1)
	s.Equal(models.CategoryFood, response.BudgetProgress[0].Category)
	s.True(response.BudgetProgress[0].Spent.Equal(decimal.RequireFromString("120.50")))
	s.Equal(services.BudgetStatusSafe, response.BudgetProgress[0].Status)
}

func (s *DashboardHandlerTestSuite) TestGet_SearchNarrowsTotalsButNotBudgets() {
	s.seed("Salary", "3000.00", models.CategoryOther, models.TransactionKindIncome)
	s.seed("Groceries", "120.50", models.CategoryFood, models.TransactionKindExpense)
	s.seed("Train ticket", "30.00", models.CategoryTravel, models.TransactionKindExpense)

	s.Require().NoError(s.budgetRepo.Upsert(&models.Budget{
		UserID:       s.user.ID,
		Category:     models.CategoryTravel,
		MonthlyLimit: decimal.RequireFromString("100.00"),
	}))

	c, rec := s.newContext("/api/v1/dashboard?search=groc")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DashboardResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Len(response.Transactions, 1)
	s.Equal("Groceries", response.Transactions[0].Title)
	s.True(response.Totals.Expense.Equal(decimal.RequireFromString("120.50")))

	// Budget progress tracks the full transaction list, not the filtered view
	s.Require().Len(response.BudgetProgress, 1)
	s.True(response.BudgetProgress[0].Spent.Equal(decimal.RequireFromString("30.00")))
}

func (s *DashboardHandlerTestSuite) TestGet_CategoryFilter() {
	s.seed("Groceries", "120.50", models.CategoryFood, models.TransactionKindExpense)
	s.seed("Train ticket", "30.00", models.CategoryTravel, models.TransactionKindExpense)
	s.seed("Rent", "900.00", models.CategoryRent, models.TransactionKindExpense)

	c, rec := s.newContext("/api/v1/dashboard?categories=Food,Travel")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DashboardResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Transactions, 2)
}

func (s *DashboardHandlerTestSuite) TestGet_SortByAmount() {
	s.seed("Groceries", "120.50", models.CategoryFood, models.TransactionKindExpense)
	s.seed("Train ticket", "30.00", models.CategoryTravel, models.TransactionKindExpense)
	s.seed("Rent", "900.00", models.CategoryRent, models.TransactionKindExpense)

	c, rec := s.newContext("/api/v1/dashboard?sort_field=amount&sort_order=asc")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DashboardResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Transactions, 3)
	s.Equal("Train ticket", response.Transactions[0].Title)
	s.Equal("Rent", response.Transactions[2].Title)
}

func (s *DashboardHandlerTestSuite) TestGet_InvalidSortField() {
	c, rec := s.newContext("/api/v1/dashboard?sort_field=color")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationInvalidFormat), s.errorCode(rec))
}

func (s *DashboardHandlerTestSuite) TestGet_InvalidSortOrder() {
	c, rec := s.newContext("/api/v1/dashboard?sort_field=date&sort_order=sideways")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *DashboardHandlerTestSuite) TestGet_UnknownCategory() {
	c, rec := s.newContext("/api/v1/dashboard?categories=Groceries")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.TransactionInvalidCategory), s.errorCode(rec))
}

func (s *DashboardHandlerTestSuite) TestGet_EmptyState() {
	c, rec := s.newContext("/api/v1/dashboard")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DashboardResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Empty(response.Transactions)
	s.True(response.Totals.Balance.IsZero())
	s.Empty(response.BudgetProgress)
}
