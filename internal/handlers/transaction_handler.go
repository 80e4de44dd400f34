package handlers

import (
	"net/http"
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction CRUD endpoints
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// List returns all transactions owned by the authenticated user, newest first
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactions, err := h.transactionRepo.ListByUser(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// Create records a new income or expense transaction
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	transaction := &models.Transaction{
		UserID:   userID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Kind:     req.Kind,
		Date:     date,
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	h.recordWrite("create", transaction.Kind)

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// Update replaces all editable fields of a transaction. The most recent
// write wins; there is no version check.
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	transaction, err := h.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	transaction.Title = req.Title
	transaction.Amount = req.Amount
	transaction.Category = req.Category
	transaction.Kind = req.Kind
	transaction.Date = models.TruncateToDay(date)
	transaction.UpdatedAt = time.Now()

	if err := h.transactionRepo.Update(transaction); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	h.recordWrite("update", transaction.Kind)

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// Delete removes a transaction owned by the authenticated user
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionRepo.Delete(transactionID, userID); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	h.recordWrite("delete", "")

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted successfully",
	})
}

func (h *TransactionHandler) recordWrite(operation, kind string) {
	if h.metrics == nil {
		return
	}
	h.metrics.IncrementCounter("transaction_write", map[string]string{
		"operation": operation,
		"kind":      kind,
	})
}
