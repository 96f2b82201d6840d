package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// public routes
	router.Group(func(r chi.Router) {
		r.Post("/api/admin/login", h.adminLogin)

		r.Route("/api/campaigns", func(r chi.Router) {
			r.Get("/", h.listCampaigns)
			r.Post("/individual", h.createIndividualCampaign)
			r.Post("/organization", h.createOrganizationCampaign)

			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/", h.getCampaign)
				r.Post("/submit", h.submitCampaign)
				r.Post("/close", h.closeCampaign)

				r.Get("/documents", h.listDocuments)
				r.Post("/documents", h.uploadDocument)
				r.Delete("/documents/{contentID}", h.removeDocument)

				r.Get("/donations", h.listCampaignDonations)
			})
		})

		r.Post("/api/donations", h.recordDonation)
		r.Get("/api/donations/wallet/{walletAddress}", h.listWalletDonations)
	})

	// admin routes, JWT required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/admin", func(r chi.Router) {
			r.Get("/campaigns/pending", h.listPendingCampaigns)
			r.Get("/campaigns/{campaignID}", h.revealCampaign)
			r.Post("/campaigns/{campaignID}/approve", h.approveCampaign)
			r.Post("/campaigns/{campaignID}/reject", h.rejectCampaign)
			r.Get("/campaigns/{campaignID}/documents/{contentID}", h.retrieveDocument)

			r.Get("/audit", h.listAuditEntries)
			r.Get("/stats", h.stats)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
