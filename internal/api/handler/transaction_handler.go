package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coreledger/banking-api/internal/api/metrics"
	"github.com/coreledger/banking-api/internal/core/ports"
)

// IdempotencyGuard remembers Idempotency-Key values already honored so a
// retried POST does not post twice.
type IdempotencyGuard interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// TransactionHandler handles HTTP requests for transaction records.
// Transaction routes carry no role restriction.
type TransactionHandler struct {
	service ports.TransactionService
	guard   IdempotencyGuard
}

func NewTransactionHandler(service ports.TransactionService, guard IdempotencyGuard) *TransactionHandler {
	return &TransactionHandler{service: service, guard: guard}
}

// Add handles POST /transaction/add. A request without an account id fails
// with 400 before any lookup; an unknown account fails with 404 and nothing
// is written. An Idempotency-Key already seen replays the success response
// without a second write.
//
// @Summary      Post a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Idempotency key to guard against duplicate posts"
// @Param        body             body      transactionRequest  true   "Transaction details"
// @Success      201              {object}  messageResponse
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /transaction/add [post]
func (h *TransactionHandler) Add(c echo.Context) error {
	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ctx := c.Request().Context()
	idempotencyKey := c.Request().Header.Get("Idempotency-Key")
	if h.guard != nil && idempotencyKey != "" {
		seen, err := h.guard.Seen(ctx, idempotencyKey)
		if err == nil && seen {
			metrics.IdempotentReplaysTotal.Inc()
			return c.JSON(http.StatusCreated, messageResponse{Message: "Transaction added successfully"})
		}
	}

	if _, err := h.service.Create(ctx, ports.TransactionInput{
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		AccountID:       req.AccountID,
	}); err != nil {
		return err
	}

	if h.guard != nil && idempotencyKey != "" {
		_ = h.guard.Mark(ctx, idempotencyKey)
	}

	metrics.RecordWritesTotal.WithLabelValues("transaction", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Transaction added successfully"})
}

// List handles GET /transaction/fetch.
//
// @Summary      List all transactions
// @Tags         transactions
// @Produce      json
// @Success      200  {array}  domain.Transaction
// @Router       /transaction/fetch [get]
func (h *TransactionHandler) List(c echo.Context) error {
	transactions, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactions)
}

// Get handles GET /transaction/fetch/:id.
//
// @Summary      Fetch a single transaction
// @Tags         transactions
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  domain.Transaction
// @Failure      404  {object}  errorResponse
// @Router       /transaction/fetch/{id} [get]
func (h *TransactionHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tx, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tx)
}

// Update handles PUT /transaction/update/:id — full overwrite including the
// account reference.
//
// @Summary      Update a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Transaction ID"
// @Param        body  body      transactionRequest  true  "Transaction details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /transaction/update/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Update(c.Request().Context(), id, ports.TransactionInput{
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		AccountID:       req.AccountID,
	}); err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("transaction", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Transaction updated successfully"})
}

// Delete handles DELETE /transaction/delete/:id.
//
// @Summary      Delete a transaction
// @Tags         transactions
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /transaction/delete/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.RecordWritesTotal.WithLabelValues("transaction", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Transaction deleted successfully"})
}

// ListByAccount handles GET /transaction/fetch/account/:accountId. An empty
// result answers a bare 404 with no body, unlike the account handler's
// user-scoped listing. The asymmetry is part of the API contract.
//
// @Summary      List transactions posted against an account
// @Tags         transactions
// @Produce      json
// @Param        accountId  path     int  true  "Account ID"
// @Success      200        {array}  domain.Transaction
// @Failure      404        "no transactions for this account"
// @Router       /transaction/fetch/account/{accountId} [get]
func (h *TransactionHandler) ListByAccount(c echo.Context) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}

	transactions, err := h.service.ListByAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, transactions)
}
