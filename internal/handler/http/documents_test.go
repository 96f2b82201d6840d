package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartchain/heartchain/internal/service"
	"github.com/heartchain/heartchain/internal/store"
	"github.com/heartchain/heartchain/models"
)

// mockDocumentService implements service.DocumentService for unit tests.
type mockDocumentService struct {
	uploadFn func(ctx context.Context, campaignID string, upload models.DocumentUpload) (models.DocumentReference, error)
	removeFn func(ctx context.Context, campaignID, contentID string) error
	listFn   func(ctx context.Context, campaignID string) ([]models.DocumentReference, error)
}

func (m *mockDocumentService) UploadDocument(ctx context.Context, campaignID string, upload models.DocumentUpload) (models.DocumentReference, error) {
	return m.uploadFn(ctx, campaignID, upload)
}

func (m *mockDocumentService) RemoveDocument(ctx context.Context, campaignID, contentID string) error {
	return m.removeFn(ctx, campaignID, contentID)
}

func (m *mockDocumentService) ListDocuments(ctx context.Context, campaignID string) ([]models.DocumentReference, error) {
	return m.listFn(ctx, campaignID)
}

// multipartUpload builds a multipart request body with a "file" part and a
// "kind" field, returning the body and its Content-Type header value.
func multipartUpload(t *testing.T, filename, mimeType, kind string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, writer.WriteField("kind", kind))
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

// TestUploadDocument_Success verifies that the multipart form is decoded
// into a DocumentUpload and the created reference is returned with 201.
func TestUploadDocument_Success(t *testing.T) {
	content := []byte("%PDF-1.4 fake bill")

	docs := &mockDocumentService{
		uploadFn: func(_ context.Context, campaignID string, upload models.DocumentUpload) (models.DocumentReference, error) {
			assert.Equal(t, "c-1", campaignID)
			assert.Equal(t, models.DocumentMedicalBill, upload.Kind)
			assert.Equal(t, "bill.pdf", upload.Filename)
			assert.Equal(t, "application/pdf", upload.MimeType)
			assert.Equal(t, content, upload.Content)
			return models.DocumentReference{
				ContentID: "Qm-bill",
				Kind:      upload.Kind,
				Filename:  upload.Filename,
				MimeType:  upload.MimeType,
				SizeBytes: int64(len(upload.Content)),
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{DocumentService: docs})

	body, contentType := multipartUpload(t, "bill.pdf", "application/pdf", "medical_bill", content)
	req := httptest.NewRequest(http.MethodPost, "/api/campaigns/c-1/documents", body)
	req.Header.Set("Content-Type", contentType)
	req = withURLParams(req, map[string]string{"campaignID": "c-1"})
	rec := httptest.NewRecorder()

	h.uploadDocument(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var ref models.DocumentReference
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ref))
	assert.Equal(t, "Qm-bill", ref.ContentID)
}

// TestUploadDocument_MissingFilePart verifies the 400 path when no "file"
// part is present.
func TestUploadDocument_MissingFilePart(t *testing.T) {
	docs := &mockDocumentService{
		uploadFn: func(_ context.Context, _ string, _ models.DocumentUpload) (models.DocumentReference, error) {
			t.Fatal("UploadDocument must not be called without a file part")
			return models.DocumentReference{}, nil
		},
	}
	h := newTestHandler(t, &service.Services{DocumentService: docs})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("kind", "medical_bill"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/campaigns/c-1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = withURLParams(req, map[string]string{"campaignID": "c-1"})
	rec := httptest.NewRecorder()

	h.uploadDocument(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestUploadDocument_AfterDraftConflict verifies that uploads against a
// campaign past pending verification surface as 409.
func TestUploadDocument_AfterDraftConflict(t *testing.T) {
	docs := &mockDocumentService{
		uploadFn: func(_ context.Context, _ string, _ models.DocumentUpload) (models.DocumentReference, error) {
			return models.DocumentReference{}, service.ErrIllegalTransition
		},
	}
	h := newTestHandler(t, &service.Services{DocumentService: docs})

	body, contentType := multipartUpload(t, "bill.pdf", "application/pdf", "medical_bill", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/campaigns/c-1/documents", body)
	req.Header.Set("Content-Type", contentType)
	req = withURLParams(req, map[string]string{"campaignID": "c-1"})
	rec := httptest.NewRecorder()

	h.uploadDocument(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

// TestRemoveDocument_Success verifies the 204 path.
func TestRemoveDocument_Success(t *testing.T) {
	docs := &mockDocumentService{
		removeFn: func(_ context.Context, campaignID, contentID string) error {
			assert.Equal(t, "c-1", campaignID)
			assert.Equal(t, "Qm-bill", contentID)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{DocumentService: docs})

	req := httptest.NewRequest(http.MethodDelete, "/api/campaigns/c-1/documents/Qm-bill", nil)
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "contentID": "Qm-bill"})
	rec := httptest.NewRecorder()

	h.removeDocument(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

// TestRemoveDocument_UnknownContentID verifies the 404 path.
func TestRemoveDocument_UnknownContentID(t *testing.T) {
	docs := &mockDocumentService{
		removeFn: func(_ context.Context, _, _ string) error {
			return store.ErrDocumentNotFound
		},
	}
	h := newTestHandler(t, &service.Services{DocumentService: docs})

	req := httptest.NewRequest(http.MethodDelete, "/api/campaigns/c-1/documents/ghost", nil)
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "contentID": "ghost"})
	rec := httptest.NewRecorder()

	h.removeDocument(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// TestListDocuments_Success verifies the reference listing.
func TestListDocuments_Success(t *testing.T) {
	docs := &mockDocumentService{
		listFn: func(_ context.Context, campaignID string) ([]models.DocumentReference, error) {
			assert.Equal(t, "c-1", campaignID)
			return []models.DocumentReference{{ContentID: "Qm-bill", Filename: "bill.pdf"}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{DocumentService: docs})

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns/c-1/documents", nil)
	req = withURLParams(req, map[string]string{"campaignID": "c-1"})
	rec := httptest.NewRecorder()

	h.listDocuments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var refs []models.DocumentReference
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &refs))
	require.Len(t, refs, 1)
	assert.Equal(t, "Qm-bill", refs[0].ContentID)
}
