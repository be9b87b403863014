package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coreledger/banking-api/internal/api/metrics"
	"github.com/coreledger/banking-api/internal/core/ports"
)

// AccountHandler handles HTTP requests for account records. Account routes
// carry no role restriction.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// List handles GET /account/fetch.
//
// @Summary      List all accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  domain.Account
// @Router       /account/fetch [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Get handles GET /account/fetch/:id.
//
// @Summary      Fetch a single account
// @Tags         accounts
// @Produce      json
// @Param        id   path      int  true  "Account ID"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  errorResponse
// @Router       /account/fetch/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	account, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Add handles POST /account/add. The balance is stored exactly as supplied.
//
// @Summary      Add an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      accountRequest  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /account/add [post]
func (h *AccountHandler) Add(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if _, err := h.service.Create(c.Request().Context(), ports.CreateAccountInput{
		AccountNumber: req.AccountNumber,
		Balance:       req.Balance,
		UserID:        req.UserID,
	}); err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("account", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Account added successfully"})
}

// Update handles PUT /account/update/:id — full overwrite of every field.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Account ID"
// @Param        body  body      accountRequest  true  "Account details"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /account/update/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Update(c.Request().Context(), id, ports.UpdateAccountInput{
		AccountNumber:  req.AccountNumber,
		Balance:        req.Balance,
		UserID:         req.UserID,
		TransactionIDs: req.TransactionIDs,
	}); err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("account", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Account updated successfully"})
}

// Delete handles DELETE /account/delete/:id. Postings against the account
// are not cascaded.
//
// @Summary      Delete an account
// @Tags         accounts
// @Produce      json
// @Param        id   path      int  true  "Account ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /account/delete/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.RecordWritesTotal.WithLabelValues("account", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Account deleted successfully"})
}

// ListByUser handles GET /account/fetch/user/:userId. An empty result is
// reported as 404 with a message body; the transaction handler's equivalent
// answers a bare 404. The asymmetry is part of the API contract.
//
// @Summary      List accounts owned by a user
// @Tags         accounts
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {array}   domain.Account
// @Failure      404     {object}  messageResponse
// @Router       /account/fetch/user/{userId} [get]
func (h *AccountHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	accounts, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: fmt.Sprintf("No accounts found for user with ID %d", userID),
		})
	}
	return c.JSON(http.StatusOK, accounts)
}
