package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newJournalHandler(ps portssvc.PostingSvcFacade) *journalHandler {
	return &journalHandler{postingService: ps}
}

// RegisterJournalRoutes registers the journal routes under an org-scoped group.
func RegisterJournalRoutes(rg *gin.RouterGroup, ps portssvc.PostingSvcFacade) {
	h := newJournalHandler(ps)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.POST("/:journalID/post", h.postJournal)
		journals.POST("/:journalID/void", h.voidJournal)
		journals.GET("/:journalID/ledger-entries", h.getLedgerEntries)
	}
}

// createJournal godoc
// @Summary Create a DRAFT journal
// @Description Lines must balance and reference active accounts of the org. Nothing is posted.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   journal body dto.CreateJournalRequest true "Journal header and lines"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} errorResponse "UNBALANCED, TOO_FEW_LINES, INVALID_ACCOUNT or INVALID_AMOUNT"
// @Failure 503 {object} errorResponse "Numbering or storage unavailable"
// @Security BearerAuth
// @Router /orgs/{orgID}/journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	journal, err := h.postingService.CreateJournal(c.Request.Context(), c.Param("orgID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create journal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal created",
		zap.String("journal_id", journal.JournalID),
		zap.String("journal_number", journal.JournalNumber),
	)
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journals, newest first
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   status query string false "DRAFT, POSTED or VOID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListJournalsResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.postingService.ListJournals(c.Request.Context(), c.Param("orgID"), params)
	if err != nil {
		respondError(c, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getJournal godoc
// @Summary Get a journal with its lines
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	journal, err := h.postingService.GetJournal(c.Request.Context(), c.Param("orgID"), c.Param("journalID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// postJournal godoc
// @Summary Post a DRAFT journal to the ledger
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.PostJournalResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse "Journal is not a DRAFT"
// @Failure 503 {object} errorResponse "Transaction rolled back"
// @Security BearerAuth
// @Router /orgs/{orgID}/journals/{journalID}/post [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	result, err := h.postingService.PostJournal(c.Request.Context(), c.Param("orgID"), c.Param("journalID"), userID)
	if err != nil {
		respondError(c, err, "Failed to post journal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal posted",
		zap.String("journal_id", result.Journal.JournalID),
		zap.Int("entries", len(result.LedgerEntries)),
	)
	c.JSON(http.StatusOK, dto.ToPostJournalResponse(result))
}

// voidJournal godoc
// @Summary Void a POSTED journal
// @Description Writes reversal entries and restores the balances the journal changed.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   journalID path string true "Journal ID"
// @Param   body body dto.VoidJournalRequest true "Void reason"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} errorResponse "MISSING_REASON"
// @Failure 409 {object} errorResponse "Journal is not POSTED"
// @Security BearerAuth
// @Router /orgs/{orgID}/journals/{journalID}/void [post]
func (h *journalHandler) voidJournal(c *gin.Context) {
	var req dto.VoidJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	journal, err := h.postingService.VoidJournal(c.Request.Context(), c.Param("orgID"), c.Param("journalID"), userID, req.Reason)
	if err != nil {
		respondError(c, err, "Failed to void journal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal voided", zap.String("journal_id", journal.JournalID))
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// getLedgerEntries godoc
// @Summary List the ledger entries of a journal, reversals included
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   journalID path string true "Journal ID"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/journals/{journalID}/ledger-entries [get]
func (h *journalHandler) getLedgerEntries(c *gin.Context) {
	entries, err := h.postingService.GetLedgerEntriesByJournal(c.Request.Context(), c.Param("orgID"), c.Param("journalID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve ledger entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}
