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

func (h *Handler) createIndividualCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in models.IndividualCampaignCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createIndividualCampaign").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.CampaignService.CreateIndividualCampaign(ctx, in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createIndividualCampaign").Msg("error creating campaign")
		http.Error(w, "error creating campaign", statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) createOrganizationCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in models.OrganizationCampaignCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createOrganizationCampaign").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.CampaignService.CreateOrganizationCampaign(ctx, in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createOrganizationCampaign").Msg("error creating campaign")
		http.Error(w, "error creating campaign", statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	campaignID := chi.URLParam(r, "campaignID")

	view, err := h.services.CampaignService.GetCampaign(ctx, campaignID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCampaign").Str("campaignID", campaignID).Msg("error getting campaign")
		http.Error(w, "error getting campaign", statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := campaignFilterFromQuery(r)

	views, err := h.services.CampaignService.ListCampaigns(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCampaigns").Msg("error listing campaigns")
		http.Error(w, "error listing campaigns", statusFromError(err))
		return
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) submitCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	campaignID := chi.URLParam(r, "campaignID")

	view, err := h.services.CampaignService.SubmitCampaign(ctx, campaignID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitCampaign").Str("campaignID", campaignID).Msg("error submitting campaign")
		http.Error(w, "error submitting campaign", statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) closeCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	campaignID := chi.URLParam(r, "campaignID")

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.closeCampaign").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.CampaignService.CloseCampaign(ctx, campaignID, body.Reason)
	if err != nil {
		log.Err(err).Str("func", "*Handler.closeCampaign").Str("campaignID", campaignID).Msg("error closing campaign")
		http.Error(w, "error closing campaign", statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func campaignFilterFromQuery(r *http.Request) models.CampaignFilter {
	query := r.URL.Query()

	filter := models.CampaignFilter{
		Status:   models.CampaignStatus(query.Get("status")),
		Type:     models.CampaignType(query.Get("type")),
		Category: query.Get("category"),
	}
	if limit, err := strconv.ParseUint(query.Get("limit"), 10, 64); err == nil {
		filter.Limit = limit
	}

	return filter
}
