package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	validUserID := uuid.New()
	validDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
		errMsg      string
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				UserID:   validUserID,
				Title:    "Groceries",
				Amount:   decimal.NewFromFloat(120.50),
				Category: CategoryFood,
				Kind:     TransactionKindExpense,
				Date:     validDate,
			},
		},
		{
			name: "valid income",
			transaction: Transaction{
				UserID:   validUserID,
				Title:    "Salary",
				Amount:   decimal.NewFromFloat(3000.00),
				Category: CategoryOther,
				Kind:     TransactionKindIncome,
				Date:     validDate,
			},
		},
		{
			name: "missing user ID",
			transaction: Transaction{
				Title:    "Groceries",
				Amount:   decimal.NewFromFloat(10),
				Category: CategoryFood,
				Kind:     TransactionKindExpense,
				Date:     validDate,
			},
			errMsg: "user ID is required",
		},
		{
			name: "missing title",
			transaction: Transaction{
				UserID:   validUserID,
				Amount:   decimal.NewFromFloat(10),
				Category: CategoryFood,
				Kind:     TransactionKindExpense,
				Date:     validDate,
			},
			errMsg: "transaction title is required",
		},
		{
			name: "zero amount",
			transaction: Transaction{
				UserID:   validUserID,
				Title:    "Free lunch",
				Amount:   decimal.Zero,
				Category: CategoryFood,
				Kind:     TransactionKindExpense,
				Date:     validDate,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				UserID:   validUserID,
				Title:    "Refund",
				Amount:   decimal.NewFromFloat(-25),
				Category: CategoryFood,
				Kind:     TransactionKindExpense,
				Date:     validDate,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "unknown category",
			transaction: Transaction{
				UserID:   validUserID,
				Title:    "Groceries",
				Amount:   decimal.NewFromFloat(10),
				Category: "Groceries",
				Kind:     TransactionKindExpense,
				Date:     validDate,
			},
			wantErr: ErrInvalidCategory,
		},
		{
			name: "unknown kind",
			transaction: Transaction{
				UserID:   validUserID,
				Title:    "Transfer",
				Amount:   decimal.NewFromFloat(10),
				Category: CategoryFood,
				Kind:     "transfer",
				Date:     validDate,
			},
			wantErr: ErrInvalidTransactionKind,
		},
		{
			name: "missing date",
			transaction: Transaction{
				UserID:   validUserID,
				Title:    "Groceries",
				Amount:   decimal.NewFromFloat(10),
				Category: CategoryFood,
				Kind:     TransactionKindExpense,
			},
			errMsg: "transaction date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				assert.EqualError(t, err, tt.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_KindHelpers(t *testing.T) {
	expense := Transaction{Kind: TransactionKindExpense}
	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())

	income := Transaction{Kind: TransactionKindIncome}
	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
}

func TestIsValidTransactionKind(t *testing.T) {
	assert.True(t, IsValidTransactionKind(TransactionKindExpense))
	assert.True(t, IsValidTransactionKind(TransactionKindIncome))
	assert.False(t, IsValidTransactionKind("transfer"))
	assert.False(t, IsValidTransactionKind(""))
	assert.False(t, IsValidTransactionKind("Expense"))
}

func TestTruncateToDay(t *testing.T) {
	timestamp := time.Date(2026, 8, 15, 14, 30, 45, 123456789, time.UTC)
	truncated := TruncateToDay(timestamp)

	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), truncated)
	assert.Equal(t, time.UTC, truncated.Location())

	// Zero stays zero so missing dates are still caught by validation
	assert.True(t, TruncateToDay(time.Time{}).IsZero())
}
