package http

import (
	"errors"
	"net/http"

	"github.com/heartchain/heartchain/internal/adapter"
	"github.com/heartchain/heartchain/internal/crypto"
	"github.com/heartchain/heartchain/internal/service"
	"github.com/heartchain/heartchain/internal/store"
)

// errorStatusMap translates domain errors into HTTP status codes. A failed
// GCM authentication or a malformed encrypted payload is an integrity
// problem on our side and maps to 500, never to 404: corruption must stay
// distinguishable from absence.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrIllegalTransition:       http.StatusConflict,
	service.ErrDonationNotAccepted:     http.StatusConflict,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrAuditAppendFailed:       http.StatusInternalServerError,

	crypto.ErrAuthentication: http.StatusInternalServerError,
	crypto.ErrDecoding:       http.StatusInternalServerError,

	store.ErrCampaignNotFound:   http.StatusNotFound,
	store.ErrDocumentNotFound:   http.StatusNotFound,
	store.ErrAdminNotFound:      http.StatusNotFound,
	store.ErrAdminAlreadyExists: http.StatusConflict,
	store.ErrStatusConflict:     http.StatusConflict,
	store.ErrCampaignNotSaved:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,

	adapter.ErrBlobNotFound:   http.StatusBadGateway,
	adapter.ErrLedgerRejected: http.StatusBadGateway,
	adapter.ErrBadGateway:     http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
