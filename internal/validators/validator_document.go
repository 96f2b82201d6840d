package validators

import (
	"context"
	"slices"

	"github.com/heartchain/heartchain/models"
)

// allowedDocumentKinds is the exhaustive set of DocumentKind values
// accepted by the validator. Any kind not present here is invalid.
var allowedDocumentKinds = []models.DocumentKind{
	models.DocumentMedicalBill,
	models.DocumentDoctorPrescription,
	models.DocumentHospitalLetter,
	models.DocumentIDProof,
	models.DocumentNGOCertificate,
	models.DocumentLicense,
	models.DocumentTrustDeed,
	models.DocumentOther,
}

// DocumentValidator implements [Validator] for supporting document
// uploads: kind, filename, content type and content size.
type DocumentValidator struct {
	allowedMimeTypes []string
	maxSizeBytes     int64
}

// NewDocumentValidator constructs a DocumentValidator with the given
// content-type allow list and size cap.
func NewDocumentValidator(allowedMimeTypes []string, maxSizeBytes int64) Validator {
	return &DocumentValidator{
		allowedMimeTypes: allowedMimeTypes,
		maxSizeBytes:     maxSizeBytes,
	}
}

// Validate validates a [models.DocumentUpload]. Field-level scoping is not
// supported here, an upload is checked as a whole.
func (v *DocumentValidator) Validate(ctx context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.DocumentUpload:
		return v.validateUpload(ctx, value)
	case *models.DocumentUpload:
		return v.validateUpload(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *DocumentValidator) validateUpload(_ context.Context, upload models.DocumentUpload) error {
	if !slices.Contains(allowedDocumentKinds, upload.Kind) {
		return ErrInvalidDocumentKind
	}
	if upload.Filename == "" {
		return ErrEmptyFilename
	}
	if !slices.Contains(v.allowedMimeTypes, upload.MimeType) {
		return ErrUnsupportedMimeType
	}
	if len(upload.Content) == 0 {
		return ErrEmptyDocument
	}
	if int64(len(upload.Content)) > v.maxSizeBytes {
		return ErrDocumentTooLarge
	}
	return nil
}
