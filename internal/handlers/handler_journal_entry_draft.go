package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// draftHandler handles the interactive journal entry drafts.
type draftHandler struct {
	draftService portssvc.DraftSvcFacade
}

func newDraftHandler(svc portssvc.DraftSvcFacade) *draftHandler {
	return &draftHandler{draftService: svc}
}

func registerDraftRoutes(entries *gin.RouterGroup, svc portssvc.DraftSvcFacade) {
	h := newDraftHandler(svc)

	drafts := entries.Group("/drafts")
	{
		drafts.POST("", h.createDraft)
		drafts.GET("/:draftID", h.getDraft)
		drafts.PATCH("/:draftID", h.updateDraftHeader)
		drafts.DELETE("/:draftID", h.discardDraft)
		drafts.POST("/:draftID/lines", h.addDraftLine)
		drafts.PATCH("/:draftID/lines/:lineID", h.updateDraftLine)
		drafts.DELETE("/:draftID/lines/:lineID", h.removeDraftLine)
		drafts.POST("/:draftID/validate", h.validateDraft)
		drafts.POST("/:draftID/post", h.postDraft)
	}
}

// createDraft godoc
// @Summary Start a journal entry draft
// @Description Creates a draft with two empty lines. The header fields are optional.
// @Tags drafts
// @Accept json
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param draft body dto.CreateDraftRequest false "Draft header"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/drafts [post]
func (h *draftHandler) createDraft(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateDraftRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	draft, err := h.draftService.CreateDraft(c.Request.Context(), tenant, req)
	if err != nil {
		respondWithError(c, err, "Failed to create draft")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDraftResponse(draft))
}

// getDraft godoc
// @Summary Get a draft
// @Tags drafts
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/drafts/{draftID} [get]
func (h *draftHandler) getDraft(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	draft, err := h.draftService.GetDraft(c.Request.Context(), tenant, c.Param("draftID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

// updateDraftHeader godoc
// @Summary Update the header of a draft
// @Description Changes the entry date, description or reference. Omitted fields keep their value.
// @Tags drafts
// @Accept json
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param draftID path string true "Draft ID"
// @Param header body dto.UpdateDraftHeaderRequest true "Header fields"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Draft not found"
// @Failure 409 {object} map[string]string "Draft already posted"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/drafts/{draftID} [patch]
func (h *draftHandler) updateDraftHeader(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateDraftHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	draft, err := h.draftService.UpdateDraftHeader(c.Request.Context(), tenant, c.Param("draftID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

// discardDraft godoc
// @Summary Discard a draft
// @Tags drafts
// @Param workplaceID path string true "Workplace ID"
// @Param draftID path string true "Draft ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/drafts/{draftID} [delete]
func (h *draftHandler) discardDraft(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	if err := h.draftService.DiscardDraft(c.Request.Context(), tenant, c.Param("draftID")); err != nil {
		respondWithError(c, err, "Failed to discard draft")
		return
	}
	c.Status(http.StatusNoContent)
}

// addDraftLine godoc
// @Summary Append a line to a draft
// @Tags drafts
// @Accept json
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param draftID path string true "Draft ID"
// @Param line body dto.JournalEntryLineRequest false "Initial line values"
// @Success 201 {object} dto.AddDraftLineResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Draft not found"
// @Failure 409 {object} map[string]string "Draft already posted"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/drafts/{draftID}/lines [post]
func (h *draftHandler) addDraftLine(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	var req dto.JournalEntryLineRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	draft, lineID, err := h.draftService.AddDraftLine(c.Request.Context(), tenant, c.Param("draftID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to add draft line")
		return
	}
	c.JSON(http.StatusCreated, dto.AddDraftLineResponse{
		LineID: string(lineID),
		Draft:  dto.ToDraftResponse(draft),
	})
}

// updateDraftLine godoc
// @Summary Update one field of a draft line
// @Description Applies a single tagged update such as {"op":"setDebit","value":"100.000"}.
// @Tags drafts
// @Accept json
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param draftID path string true "Draft ID"
// @Param lineID path string true "Line ID"
// @Param command body dto.LineCommandRequest true "Line update"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Draft or line not found"
// @Failure 409 {object} map[string]string "Draft already posted"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/drafts/{draftID}/lines/{lineID} [patch]
func (h *draftHandler) updateDraftLine(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	var req dto.LineCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	update, err := req.ToLineUpdate()
	if err != nil {
		respondWithError(c, err, "Failed to update draft line")
		return
	}

	draft, err := h.draftService.UpdateDraftLine(c.Request.Context(), tenant, c.Param("draftID"), domain.LineID(c.Param("lineID")), update)
	if err != nil {
		respondWithError(c, err, "Failed to update draft line")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

// removeDraftLine godoc
// @Summary Remove a line from a draft
// @Description A draft always keeps two lines; removing one of the last two is refused with removed=false.
// @Tags drafts
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param draftID path string true "Draft ID"
// @Param lineID path string true "Line ID"
// @Success 200 {object} dto.RemoveDraftLineResponse
// @Failure 404 {object} map[string]string "Draft or line not found"
// @Failure 409 {object} map[string]string "Draft already posted"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/drafts/{draftID}/lines/{lineID} [delete]
func (h *draftHandler) removeDraftLine(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	draft, removed, err := h.draftService.RemoveDraftLine(c.Request.Context(), tenant, c.Param("draftID"), domain.LineID(c.Param("lineID")))
	if err != nil {
		respondWithError(c, err, "Failed to remove draft line")
		return
	}
	c.JSON(http.StatusOK, dto.RemoveDraftLineResponse{
		Removed: removed,
		Draft:   dto.ToDraftResponse(draft),
	})
}

// validateDraft godoc
// @Summary Validate a draft
// @Description Runs every ledger rule against the draft and reports all violations without posting.
// @Tags drafts
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.ValidationResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/drafts/{draftID}/validate [post]
func (h *draftHandler) validateDraft(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	draft, result, err := h.draftService.ValidateDraft(c.Request.Context(), tenant, c.Param("draftID"))
	if err != nil {
		respondWithError(c, err, "Failed to validate draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToValidationResponse(result, draft.Entry.Totals()))
}

// postDraft godoc
// @Summary Post a draft
// @Description Validates the draft, assigns its entry number and commits it. A posted draft cannot be changed or posted again.
// @Tags drafts
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param draftID path string true "Draft ID"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Failure 409 {object} map[string]string "Draft already posted"
// @Failure 422 {object} map[string]interface{} "Ledger rule violations"
// @Failure 500 {object} map[string]string "Failed to post draft"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/journal-entries/drafts/{draftID}/post [post]
func (h *draftHandler) postDraft(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	draftID := c.Param("draftID")
	entry, err := h.draftService.PostDraft(c.Request.Context(), tenant, draftID)
	if err != nil {
		respondWithError(c, err, "Failed to post draft")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Draft posted",
		slog.String("draft_id", draftID),
		slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
