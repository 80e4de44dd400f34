package dto

import (
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// DateFormat is the wire format for transaction dates
const DateFormat = "2006-01-02"

// Transaction Request DTOs

// CreateTransactionRequest contains data for creating a transaction
type CreateTransactionRequest struct {
	Title    string          `json:"title" validate:"required,min=1,max=255"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Category string          `json:"category" validate:"required,category"`
	Kind     string          `json:"kind" validate:"required,transaction_kind"`
	Date     string          `json:"date" validate:"required"`
}

// UpdateTransactionRequest contains data for replacing a transaction.
// All fields are required; the update is a full replacement and the most
// recent write wins.
type UpdateTransactionRequest struct {
	Title    string          `json:"title" validate:"required,min=1,max=255"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Category string          `json:"category" validate:"required,category"`
	Kind     string          `json:"kind" validate:"required,transaction_kind"`
	Date     string          `json:"date" validate:"required"`
}

// Transaction Response DTOs

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Kind      string          `json:"kind"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TransactionListResponse wraps a list of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// NewTransactionResponse converts a transaction model to its API representation
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Amount:    t.Amount,
		Category:  t.Category,
		Kind:      t.Kind,
		Date:      t.Date.Format(DateFormat),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// NewTransactionListResponse converts a slice of transaction models
func NewTransactionListResponse(transactions []models.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, NewTransactionResponse(&transactions[i]))
	}
	return TransactionListResponse{
		Transactions: items,
		Total:        len(items),
	}
}
