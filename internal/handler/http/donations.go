package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/utils"
	"github.com/heartchain/heartchain/models"
)

func (h *Handler) recordDonation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in models.DonationCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.recordDonation").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	donation, err := h.services.DonationService.RecordDonation(ctx, in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.recordDonation").Str("campaignID", in.CampaignID).Msg("error recording donation")
		http.Error(w, "error recording donation", statusFromError(err))
		return
	}

	utils.WriteJSON(w, donation, http.StatusCreated)
}

func (h *Handler) listCampaignDonations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	campaignID := chi.URLParam(r, "campaignID")

	donations, err := h.services.DonationService.ListDonationsByCampaign(ctx, campaignID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCampaignDonations").Str("campaignID", campaignID).Msg("error listing donations")
		http.Error(w, "error listing donations", statusFromError(err))
		return
	}

	utils.WriteJSON(w, donations, http.StatusOK)
}

func (h *Handler) listWalletDonations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	walletAddress := chi.URLParam(r, "walletAddress")

	donations, err := h.services.DonationService.ListDonationsByWallet(ctx, walletAddress)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listWalletDonations").Str("walletAddress", walletAddress).Msg("error listing donations")
		http.Error(w, "error listing donations", statusFromError(err))
		return
	}

	utils.WriteJSON(w, donations, http.StatusOK)
}
