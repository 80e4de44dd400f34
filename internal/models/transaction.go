package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionKindExpense = "expense"
	TransactionKindIncome  = "income"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidCategory        = errors.New("invalid transaction category")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction represents a single income or expense record owned by a user.
// Date carries calendar-day precision only; the time component is always
// midnight UTC.
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string          `gorm:"type:varchar(255);not null" json:"title"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category  string          `gorm:"type:varchar(50);not null" json:"category"`
	Kind      string          `gorm:"type:varchar(10);not null" json:"kind"`
	Date      time.Time       `gorm:"type:date;not null;index" json:"date"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.Date = TruncateToDay(t.Date)

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates validate at the handler boundary instead
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	t.UpdatedAt = time.Now()
	t.Date = TruncateToDay(t.Date)
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.Title == "" {
		return errors.New("transaction title is required")
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if !IsValidTransactionKind(t.Kind) {
		return ErrInvalidTransactionKind
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	return nil
}

// IsExpense returns true if the transaction is an expense
func (t *Transaction) IsExpense() bool {
	return t.Kind == TransactionKindExpense
}

// IsIncome returns true if the transaction is an income
func (t *Transaction) IsIncome() bool {
	return t.Kind == TransactionKindIncome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionKind checks if the transaction kind is valid
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindExpense, TransactionKindIncome:
		return true
	default:
		return false
	}
}

// TruncateToDay strips the time component from a timestamp, keeping the
// calendar date in UTC.
func TruncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
