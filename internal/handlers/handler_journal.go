package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	postingService portssvc.PostingSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade, ps portssvc.PostingSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
		postingService: ps,
	}
}

// registerJournalRoutes registers routes for journal entries and their business references.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, postingService portssvc.PostingSvcFacade) {
	h := newJournalHandler(journalService, postingService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/post", h.postEntry)
	}

	refs := rg.Group("/references/:referenceType/:referenceID")
	{
		refs.GET("/journal-entries", h.getRelatedEntries)
		refs.DELETE("/journal-entries", h.deleteRelatedEntry)
	}
}

// createEntry godoc
// @Summary Create a manual journal entry
// @Description Runs the balanced-entry engine with the current accounting settings
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.PostingResultResponse
// @Failure 400 {object} dto.PostingResultResponse "Entry rejected"
// @Failure 500 {object} dto.PostingResultResponse "Entry could not be stored"
// @Router /journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Received request to create manual journal entry", slog.Int("item_count", len(req.Items)))

	result := h.postingService.CreateManualEntry(c.Request.Context(), req.ToEntryRequest(userID))

	status := http.StatusOK
	switch result.Status {
	case domain.ResultCreated:
		status = http.StatusCreated
	case domain.ResultRejected:
		status = http.StatusBadRequest
	case domain.ResultFailed:
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.ToPostingResultResponse(result))
}

// listEntries godoc
// @Summary List journal entries
// @Tags journal-entries
// @Produce  json
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journal-entries
// @Produce  json
// @Param   entryID path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, logger, "entryID")
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// postEntry godoc
// @Summary Post a draft journal entry
// @Tags journal-entries
// @Produce  json
// @Param   entryID path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry already posted"
// @Router /journal-entries/{entryID}/post [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, logger, "entryID")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	entry, err := h.journalService.PostEntry(c.Request.Context(), entryID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post journal entry")
		return
	}
	logger.Info("Journal entry posted", slog.Int64("entry_id", entry.EntryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// getRelatedEntries godoc
// @Summary List the journal entries of a business reference
// @Tags journal-entries
// @Produce  json
// @Param   referenceType path string true "contract, contract_payment, salary or purchase"
// @Param   referenceID path int true "Business record ID"
// @Success 200 {object} dto.RelatedEntriesResponse
// @Failure 400 {object} map[string]string "Invalid reference"
// @Router /references/{referenceType}/{referenceID}/journal-entries [get]
func (h *journalHandler) getRelatedEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref, ok := parseReferenceParams(c, logger)
	if !ok {
		return
	}

	entries, err := h.journalService.GetRelatedEntries(c.Request.Context(), ref)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve related journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.RelatedEntriesResponse{
		ReferenceType: string(ref.Type),
		ReferenceID:   ref.ID,
		Entries:       dto.ToEntryResponses(entries),
	})
}

// deleteRelatedEntry godoc
// @Summary Undo the draft journal entry of a business reference
// @Description Posted entries are never removed
// @Tags journal-entries
// @Produce  json
// @Param   referenceType path string true "contract, contract_payment, salary or purchase"
// @Param   referenceID path int true "Business record ID"
// @Success 200 {object} dto.DeleteRelatedEntryResponse
// @Failure 400 {object} map[string]string "Invalid reference"
// @Router /references/{referenceType}/{referenceID}/journal-entries [delete]
func (h *journalHandler) deleteRelatedEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref, ok := parseReferenceParams(c, logger)
	if !ok {
		return
	}

	deleted := h.journalService.DeleteRelatedEntry(c.Request.Context(), ref)
	c.JSON(http.StatusOK, dto.DeleteRelatedEntryResponse{Deleted: deleted})
}

func parseIDParam(c *gin.Context, logger *slog.Logger, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid path id", slog.String("param", name), slog.String("value", c.Param(name)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

func parseReferenceParams(c *gin.Context, logger *slog.Logger) (domain.Reference, bool) {
	ref, err := domain.ParseReference(c.Param("referenceType"), c.Param("referenceID"))
	if err != nil {
		badRequest(c, logger, "Invalid reference", err)
		return domain.Reference{}, false
	}
	return ref, true
}
