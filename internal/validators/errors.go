package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle            = errors.New("title is required")
	ErrEmptyDescription      = errors.New("description is required")
	ErrInvalidTargetAmount   = errors.New("target amount must be positive")
	ErrInvalidDuration       = errors.New("duration must be between 1 and 365 days")
	ErrEmptyCategory         = errors.New("category is required")
	ErrInvalidPriority       = errors.New("invalid priority level")
	ErrEmptyBeneficiaryName  = errors.New("beneficiary name is required")
	ErrEmptyPhoneNumber      = errors.New("phone number is required")
	ErrEmptyOrganizationName = errors.New("organization name is required")
	ErrEmptyContactPerson    = errors.New("contact person name is required")
	ErrEmptyContactPhone     = errors.New("contact phone number is required")

	ErrRejectionReasonTooShort = errors.New("rejection reason must be at least 10 characters")

	ErrEmptyFilename       = errors.New("filename is required")
	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrUnsupportedMimeType = errors.New("unsupported document content type")
	ErrDocumentTooLarge    = errors.New("document exceeds maximum allowed size")
	ErrEmptyDocument       = errors.New("document content is empty")

	ErrInvalidDonationAmount = errors.New("donation amount must be positive")
	ErrEmptyWalletAddress    = errors.New("wallet address is required")
)
