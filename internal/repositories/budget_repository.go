package repositories

import (
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// BudgetRepository handles database operations for budgets
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &BudgetRepository{
		db: db,
	}
}

// ListByUser retrieves all budgets for a user ordered by category
func (r *BudgetRepository) ListByUser(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget

	if err := r.db.Where("user_id = ?", userID).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return budgets, nil
}

// GetByUserAndCategory retrieves the budget for a specific category
func (r *BudgetRepository) GetByUserAndCategory(userID uuid.UUID, category string) (*models.Budget, error) {
	var budget models.Budget

	if err := r.db.Where("user_id = ? AND category = ?", userID, category).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return &budget, nil
}

// Upsert creates the budget or replaces the monthly limit for an existing
// (user, category) pair. The unique index on (user_id, category) makes this
// race-safe.
func (r *BudgetRepository) Upsert(budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := budget.Validate(); err != nil {
		return err
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"monthly_limit": budget.MonthlyLimit,
			"updated_at":    time.Now(),
		}),
	}).Create(budget).Error; err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}

	return nil
}

// Delete removes a budget owned by the given user
func (r *BudgetRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}
