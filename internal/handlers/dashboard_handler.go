package handlers

import (
	"net/http"
	"time"

	"expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the derived dashboard view
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Get computes the dashboard for the authenticated user. Filters arrive as
// query parameters and apply to this response only; nothing is persisted.
//
//	search      - case-insensitive substring matched against title,
//	              category, and the amount as text
//	categories  - comma-separated category names, ORed together
//	sort_field  - date, amount, or title
//	sort_order  - asc or desc
func (h *DashboardHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters := models.ViewFilters{
		SearchQuery: c.QueryParam("search"),
		Categories:  parseCategories(c.QueryParam("categories")),
		SortField:   c.QueryParam("sort_field"),
		SortOrder:   c.QueryParam("sort_order"),
	}

	if filters.SortField != "" && !models.IsValidSortField(filters.SortField) {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("sort_field must be one of: date, amount, title"))
	}

	if filters.SortOrder != "" && !models.IsValidSortOrder(filters.SortOrder) {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("sort_order must be 'asc' or 'desc'"))
	}

	for _, category := range filters.Categories {
		if !models.IsValidCategory(category) {
			return SendError(c, errors.TransactionInvalidCategory, errors.WithDetails("Unknown category: "+category))
		}
	}

	dashboard, err := h.dashboardService.GetDashboard(userID, filters, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}
