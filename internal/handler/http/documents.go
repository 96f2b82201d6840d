package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/utils"
	"github.com/heartchain/heartchain/models"
)

// multipartMemoryLimit caps how much of an upload is buffered in memory
// while parsing the multipart form; the rest spills to temporary files.
const multipartMemoryLimit = 8 << 20

// uploadDocument accepts a multipart form with a "file" part and a "kind"
// field. The file content is sealed by the service before it leaves the
// process.
func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	campaignID := chi.URLParam(r, "campaignID")

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		log.Err(err).Str("func", "*Handler.uploadDocument").Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadDocument").Msg("missing file part")
		http.Error(w, "missing file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadDocument").Msg("error reading file part")
		http.Error(w, "error reading file part", http.StatusBadRequest)
		return
	}

	upload := models.DocumentUpload{
		Kind:     models.DocumentKind(r.FormValue("kind")),
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Content:  content,
	}

	ref, err := h.services.DocumentService.UploadDocument(ctx, campaignID, upload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadDocument").Str("campaignID", campaignID).Msg("error uploading document")
		http.Error(w, "error uploading document", statusFromError(err))
		return
	}

	utils.WriteJSON(w, ref, http.StatusCreated)
}

func (h *Handler) removeDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	campaignID := chi.URLParam(r, "campaignID")
	contentID := chi.URLParam(r, "contentID")

	if err := h.services.DocumentService.RemoveDocument(ctx, campaignID, contentID); err != nil {
		log.Err(err).Str("func", "*Handler.removeDocument").
			Str("campaignID", campaignID).Str("contentID", contentID).
			Msg("error removing document")
		http.Error(w, "error removing document", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	campaignID := chi.URLParam(r, "campaignID")

	docs, err := h.services.DocumentService.ListDocuments(ctx, campaignID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDocuments").Str("campaignID", campaignID).Msg("error listing documents")
		http.Error(w, "error listing documents", statusFromError(err))
		return
	}

	utils.WriteJSON(w, docs, http.StatusOK)
}
