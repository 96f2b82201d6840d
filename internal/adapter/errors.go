package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrBlobNotFound is returned when the blob store does not hold the
	// requested content identifier.
	ErrBlobNotFound = errors.New("blob not found in content store")

	// ErrLedgerRejected is returned when the ledger relay refuses to anchor
	// a campaign.
	ErrLedgerRejected = errors.New("ledger relay rejected anchoring request")
)
