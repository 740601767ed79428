package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests for posted journal entries.
type journalEntryHandler struct {
	entryService portssvc.JournalEntrySvcFacade
}

func newJournalEntryHandler(svc portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{entryService: svc}
}

// registerJournalEntryRoutes registers the journal entry routes of a workplace.
func registerJournalEntryRoutes(rg *gin.RouterGroup, entrySvc portssvc.JournalEntrySvcFacade, draftSvc portssvc.DraftSvcFacade) {
	h := newJournalEntryHandler(entrySvc)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.POST("/validate", h.validateEntry)
		entries.GET("/:entryID", h.getEntry)
	}
	registerDraftRoutes(entries, draftSvc)
}

// createEntry godoc
// @Summary Create and post a journal entry
// @Description Builds a journal entry from the request, validates it against the ledger rules and commits it.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 403 {object} map[string]string "Workplace not granted"
// @Failure 409 {object} map[string]string "Entry number clash"
// @Failure 422 {object} map[string]interface{} "Ledger rule violations"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries [post]
func (h *journalEntryHandler) createEntry(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), tenant, req)
	if err != nil {
		respondWithError(c, err, "Failed to post journal entry")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// validateEntry godoc
// @Summary Validate a journal entry without posting it
// @Description Runs every ledger rule against the request and reports all violations.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/validate [post]
func (h *journalEntryHandler) validateEntry(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	draft, err := services.BuildDraft(tenant.WorkplaceID, req, time.Now().UTC())
	if err != nil {
		respondWithError(c, err, "Failed to validate journal entry")
		return
	}
	result, err := h.entryService.ValidateEntry(c.Request.Context(), tenant, draft)
	if err != nil {
		respondWithError(c, err, "Failed to validate journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToValidationResponse(result, draft.Totals()))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a posted journal entry with its lines.
// @Tags journal-entries
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param entryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/{entryID} [get]
func (h *journalEntryHandler) getEntry(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	entry, err := h.entryService.GetEntryByID(c.Request.Context(), tenant, c.Param("entryID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists posted journal entries of the workplace, newest first, using token pagination.
// @Tags journal-entries
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries [get]
func (h *journalEntryHandler) listEntries(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.entryService.ListEntries(c.Request.Context(), tenant, params)
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}
