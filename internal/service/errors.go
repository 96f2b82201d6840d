package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrIllegalTransition is returned when a lifecycle event is applied to a
	// campaign whose current status does not permit it. The conflicting
	// status is re-read from the database, never trusted from the caller.
	ErrIllegalTransition = errors.New("illegal campaign status transition")

	// ErrDonationNotAccepted is returned when a donation targets a campaign
	// that is not active.
	ErrDonationNotAccepted = errors.New("campaign is not accepting donations")

	// ErrAuditAppendFailed is returned when the audit trail cannot be
	// written. The admin action it would have recorded is refused.
	ErrAuditAppendFailed = errors.New("failed to append audit entry")

	ErrWrongCredentials        = errors.New("wrong login or password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
