package handlers

import (
	"fmt"
	"strings"
	"time"

	"expense-tracker/internal/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// parseDate parses a YYYY-MM-DD date string into a UTC time
func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation(dto.DateFormat, value, time.UTC)
}

// parseCategories splits the comma-separated categories query parameter,
// dropping empty entries
func parseCategories(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	categories := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	return categories
}
