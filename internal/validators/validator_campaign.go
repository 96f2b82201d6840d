package validators

import (
	"context"

	"github.com/heartchain/heartchain/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldTitle targets the public campaign title.
	FieldTitle = "title"

	// FieldDescription targets the public campaign description.
	FieldDescription = "description"

	// FieldTargetAmount targets the fundraising goal.
	FieldTargetAmount = "target_amount"

	// FieldDuration targets the campaign duration in days.
	FieldDuration = "duration_days"

	// FieldCategory targets the public campaign category.
	FieldCategory = "category"

	// FieldPriority targets the urgency level.
	FieldPriority = "priority"

	// FieldBeneficiary targets the sensitive beneficiary attributes of an
	// individual campaign.
	FieldBeneficiary = "beneficiary"

	// FieldOrganization targets the organization name and the sensitive
	// contact attributes of an organization campaign.
	FieldOrganization = "organization"

	// FieldRejectionReason targets the mandatory reviewer explanation on a
	// verification rejection.
	FieldRejectionReason = "rejection_reason"

	// FieldDonationAmount targets the contributed amount of a donation.
	FieldDonationAmount = "amount"

	// FieldWalletAddress targets the donor wallet address.
	FieldWalletAddress = "wallet_address"
)

// minRejectionReasonLength is the minimum length of a rejection reason, a
// campaign owner must always receive a usable explanation.
const minRejectionReasonLength = 10

// maxCampaignDurationDays caps how long a campaign may run.
const maxCampaignDurationDays = 365

// RejectionInput carries the reviewer explanation of a verification
// rejection for validation.
type RejectionInput struct {
	Reason string
}

// CampaignValidator implements [Validator] for campaign creation inputs,
// rejection reasons and donation inputs. It supports both value and
// pointer arguments and optional field-level scoping.
type CampaignValidator struct {
}

// NewCampaignValidator constructs a new CampaignValidator and returns it
// as the Validator interface.
func NewCampaignValidator() Validator {
	return &CampaignValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *CampaignValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.IndividualCampaignCreate:
		return v.validateIndividualCreate(ctx, value, fields...)
	case *models.IndividualCampaignCreate:
		return v.validateIndividualCreate(ctx, *value, fields...)

	case models.OrganizationCampaignCreate:
		return v.validateOrganizationCreate(ctx, value, fields...)
	case *models.OrganizationCampaignCreate:
		return v.validateOrganizationCreate(ctx, *value, fields...)

	case RejectionInput:
		return v.validateRejection(ctx, value)
	case *RejectionInput:
		return v.validateRejection(ctx, *value)

	case models.DonationCreate:
		return v.validateDonationCreate(ctx, value, fields...)
	case *models.DonationCreate:
		return v.validateDonationCreate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidPriority(p models.PriorityLevel) bool {
	return p == models.PriorityUrgent || p == models.PriorityNormal
}

func (v *CampaignValidator) validateIndividualCreate(_ context.Context, create models.IndividualCampaignCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldTargetAmount, FieldDuration, FieldCategory, FieldPriority, FieldBeneficiary}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if create.Title == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if create.Description == "" {
				return ErrEmptyDescription
			}
		case FieldTargetAmount:
			if create.TargetAmount <= 0 {
				return ErrInvalidTargetAmount
			}
		case FieldDuration:
			if create.DurationDays < 1 || create.DurationDays > maxCampaignDurationDays {
				return ErrInvalidDuration
			}
		case FieldCategory:
			if create.Category == "" {
				return ErrEmptyCategory
			}
		case FieldPriority:
			if !isValidPriority(create.Priority) {
				return ErrInvalidPriority
			}
		case FieldBeneficiary:
			if create.BeneficiaryName == "" {
				return ErrEmptyBeneficiaryName
			}
			if create.PhoneNumber == "" {
				return ErrEmptyPhoneNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CampaignValidator) validateOrganizationCreate(_ context.Context, create models.OrganizationCampaignCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldTargetAmount, FieldDuration, FieldCategory, FieldPriority, FieldOrganization}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if create.Title == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if create.Description == "" {
				return ErrEmptyDescription
			}
		case FieldTargetAmount:
			if create.TargetAmount <= 0 {
				return ErrInvalidTargetAmount
			}
		case FieldDuration:
			if create.DurationDays < 1 || create.DurationDays > maxCampaignDurationDays {
				return ErrInvalidDuration
			}
		case FieldCategory:
			if create.Category == "" {
				return ErrEmptyCategory
			}
		case FieldPriority:
			if !isValidPriority(create.Priority) {
				return ErrInvalidPriority
			}
		case FieldOrganization:
			if create.OrganizationName == "" {
				return ErrEmptyOrganizationName
			}
			if create.ContactPersonName == "" {
				return ErrEmptyContactPerson
			}
			if create.ContactPhoneNumber == "" {
				return ErrEmptyContactPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CampaignValidator) validateRejection(_ context.Context, rejection RejectionInput) error {
	if len(rejection.Reason) < minRejectionReasonLength {
		return ErrRejectionReasonTooShort
	}
	return nil
}

func (v *CampaignValidator) validateDonationCreate(_ context.Context, create models.DonationCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDonationAmount, FieldWalletAddress}
	}

	for _, f := range fields {
		switch f {
		case FieldDonationAmount:
			if create.Amount <= 0 {
				return ErrInvalidDonationAmount
			}
		case FieldWalletAddress:
			if create.WalletAddress == "" {
				return ErrEmptyWalletAddress
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
