package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/utils"
	"github.com/heartchain/heartchain/models"
)

// defaultPendingLimit bounds the pending-verification listing when the
// caller does not pass an explicit limit. Each returned campaign costs one
// audit entry, so unbounded listings are undesirable.
const defaultPendingLimit = 50

func (h *Handler) listPendingCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	adminID, found := utils.GetAdminIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listPendingCampaigns").Msg("no admin ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	campaignType := models.CampaignType(query.Get("type"))
	limit := uint64(defaultPendingLimit)
	if parsed, err := strconv.ParseUint(query.Get("limit"), 10, 64); err == nil && parsed > 0 {
		limit = parsed
	}

	views, err := h.services.AdminService.ListPendingCampaigns(ctx, adminID, campaignType, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPendingCampaigns").Msg("error listing pending campaigns")
		http.Error(w, "error listing pending campaigns", statusFromError(err))
		return
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) revealCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	adminID, found := utils.GetAdminIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.revealCampaign").Msg("no admin ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")

	view, err := h.services.AdminService.RevealCampaign(ctx, adminID, campaignID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.revealCampaign").Str("campaignID", campaignID).Msg("error disclosing campaign")
		http.Error(w, "error disclosing campaign", statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) approveCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	adminID, found := utils.GetAdminIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.approveCampaign").Msg("no admin ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")

	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.approveCampaign").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.AdminService.ApproveCampaign(ctx, adminID, campaignID, body.Notes)
	if err != nil {
		log.Err(err).Str("func", "*Handler.approveCampaign").Str("campaignID", campaignID).Msg("error approving campaign")
		http.Error(w, "error approving campaign", statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) rejectCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	adminID, found := utils.GetAdminIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.rejectCampaign").Msg("no admin ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.rejectCampaign").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.AdminService.RejectCampaign(ctx, adminID, campaignID, body.Reason)
	if err != nil {
		log.Err(err).Str("func", "*Handler.rejectCampaign").Str("campaignID", campaignID).Msg("error rejecting campaign")
		http.Error(w, "error rejecting campaign", statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

// retrieveDocument streams the decrypted document back with its original
// mime type.
func (h *Handler) retrieveDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	adminID, found := utils.GetAdminIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.retrieveDocument").Msg("no admin ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")
	contentID := chi.URLParam(r, "contentID")

	doc, err := h.services.AdminService.RetrieveDocument(ctx, adminID, campaignID, contentID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.retrieveDocument").
			Str("campaignID", campaignID).Str("contentID", contentID).
			Msg("error retrieving document")
		http.Error(w, "error retrieving document", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", doc.MimeType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Content)
}

func (h *Handler) listAuditEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	filter := models.AuditFilter{
		AdminID:    query.Get("admin_id"),
		Action:     models.AuditAction(query.Get("action")),
		CampaignID: query.Get("campaign_id"),
	}
	if limit, err := strconv.ParseUint(query.Get("limit"), 10, 64); err == nil {
		filter.Limit = limit
	}

	entries, err := h.services.AdminService.ListAuditEntries(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAuditEntries").Msg("error listing audit entries")
		http.Error(w, "error listing audit entries", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.AdminService.Stats(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.stats").Msg("error building stats")
		http.Error(w, "error building stats", statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
