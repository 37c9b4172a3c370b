package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountRegistrySvcFacade
	ledgerService  portssvc.LedgerReaderSvc
}

func newAccountHandler(as portssvc.AccountRegistrySvcFacade, ls portssvc.LedgerReaderSvc) *accountHandler {
	return &accountHandler{
		accountService: as,
		ledgerService:  ls,
	}
}

// RegisterAccountRoutes registers the account routes under an org-scoped group.
func RegisterAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountRegistrySvcFacade, ls portssvc.LedgerReaderSvc) {
	h := newAccountHandler(as, ls)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.POST("/:accountID/deactivate", h.deactivateAccount)
		accounts.GET("/:accountID/reconcile", h.reconcileAccount)
		accounts.GET("/:accountID/ledger-entries", h.listLedgerEntries)
	}
}

// createAccount godoc
// @Summary Create a chart account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse "Account code already exists"
// @Security BearerAuth
// @Router /orgs/{orgID}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	acc, err := h.accountService.CreateAccount(c.Request.Context(), c.Param("orgID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created", zap.String("account_id", acc.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(acc))
}

// listAccounts godoc
// @Summary List chart accounts
// @Tags accounts
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), c.Param("orgID"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// getAccount godoc
// @Summary Get a chart account
// @Tags accounts
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	acc, err := h.accountService.GetAccount(c.Request.Context(), c.Param("orgID"), c.Param("accountID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(acc))
}

// deactivateAccount godoc
// @Summary Deactivate a chart account
// @Description Inactive accounts are rejected by new journals. Posted history is untouched.
// @Tags accounts
// @Param   orgID path string true "Organization ID"
// @Param   accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/accounts/{accountID}/deactivate [post]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	accountID := c.Param("accountID")
	if err := h.accountService.DeactivateAccount(c.Request.Context(), c.Param("orgID"), accountID, userID); err != nil {
		respondError(c, err, "Failed to deactivate account")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account deactivated", zap.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}

// reconcileAccount godoc
// @Summary Compare an account balance with its ledger entries
// @Tags accounts
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/accounts/{accountID}/reconcile [get]
func (h *accountHandler) reconcileAccount(c *gin.Context) {
	rec, err := h.accountService.ReconcileAccount(c.Request.Context(), c.Param("orgID"), c.Param("accountID"))
	if err != nil {
		respondError(c, err, "Failed to reconcile account")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(rec))
}

// listLedgerEntries godoc
// @Summary List an account's ledger entries, newest first
// @Tags accounts
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   accountID path string true "Account ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/accounts/{accountID}/ledger-entries [get]
func (h *accountHandler) listLedgerEntries(c *gin.Context) {
	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.ledgerService.ListLedgerEntriesByAccount(c.Request.Context(), c.Param("orgID"), c.Param("accountID"), params)
	if err != nil {
		respondError(c, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}
