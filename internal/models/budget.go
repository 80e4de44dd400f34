package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidBudgetLimit = errors.New("budget monthly limit must be positive")
)

// Budget is a per-category monthly spending ceiling. A user has at most one
// budget per category; writes go through the repository upsert keyed on
// (user_id, category).
type Budget struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category" json:"user_id"`
	Category     string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budgets_user_category" json:"category"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_limit"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget fields. Zero and negative limits are
// rejected here so that progress calculations never divide by zero.
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidCategory(b.Category) {
		return ErrInvalidCategory
	}

	if b.MonthlyLimit.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetLimit
	}

	return nil
}

func (b *Budget) TableName() string {
	return "budgets"
}
