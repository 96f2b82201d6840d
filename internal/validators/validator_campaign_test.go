package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/heartchain/heartchain/models"
	"github.com/stretchr/testify/require"
)

func validIndividualCreate() models.IndividualCampaignCreate {
	return models.IndividualCampaignCreate{
		Title:              "Heart surgery for Ravi",
		Description:        "Urgent cardiac surgery fundraiser",
		TargetAmount:       500000,
		DurationDays:       60,
		Category:           "medical",
		Priority:           models.PriorityUrgent,
		BeneficiaryName:    "Ravi Kumar",
		PhoneNumber:        "+91-98765-43210",
		ResidentialAddress: "42 Gandhi Road, Chennai",
	}
}

func validOrganizationCreate() models.OrganizationCampaignCreate {
	return models.OrganizationCampaignCreate{
		Title:              "School building fund",
		Description:        "New classrooms for a rural school",
		TargetAmount:       1200000,
		DurationDays:       120,
		Category:           "education",
		Priority:           models.PriorityNormal,
		OrganizationName:   "Bright Future Trust",
		ContactPersonName:  "Meera Nair",
		ContactPhoneNumber: "+91-91234-56789",
		OfficialAddress:    "7 Trust Lane, Kochi",
	}
}

func TestCampaignValidator_IndividualCreate(t *testing.T) {
	v := NewCampaignValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(c *models.IndividualCampaignCreate)
		wantErr error
	}{
		{name: "valid input", mutate: func(c *models.IndividualCampaignCreate) {}},
		{name: "missing title", mutate: func(c *models.IndividualCampaignCreate) { c.Title = "" }, wantErr: ErrEmptyTitle},
		{name: "missing description", mutate: func(c *models.IndividualCampaignCreate) { c.Description = "" }, wantErr: ErrEmptyDescription},
		{name: "zero target amount", mutate: func(c *models.IndividualCampaignCreate) { c.TargetAmount = 0 }, wantErr: ErrInvalidTargetAmount},
		{name: "negative target amount", mutate: func(c *models.IndividualCampaignCreate) { c.TargetAmount = -10 }, wantErr: ErrInvalidTargetAmount},
		{name: "zero duration", mutate: func(c *models.IndividualCampaignCreate) { c.DurationDays = 0 }, wantErr: ErrInvalidDuration},
		{name: "duration beyond one year", mutate: func(c *models.IndividualCampaignCreate) { c.DurationDays = 400 }, wantErr: ErrInvalidDuration},
		{name: "missing category", mutate: func(c *models.IndividualCampaignCreate) { c.Category = "" }, wantErr: ErrEmptyCategory},
		{name: "unknown priority", mutate: func(c *models.IndividualCampaignCreate) { c.Priority = "critical" }, wantErr: ErrInvalidPriority},
		{name: "missing beneficiary name", mutate: func(c *models.IndividualCampaignCreate) { c.BeneficiaryName = "" }, wantErr: ErrEmptyBeneficiaryName},
		{name: "missing phone number", mutate: func(c *models.IndividualCampaignCreate) { c.PhoneNumber = "" }, wantErr: ErrEmptyPhoneNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := validIndividualCreate()
			tt.mutate(&create)

			err := v.Validate(ctx, create)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCampaignValidator_OrganizationCreate(t *testing.T) {
	v := NewCampaignValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(c *models.OrganizationCampaignCreate)
		wantErr error
	}{
		{name: "valid input", mutate: func(c *models.OrganizationCampaignCreate) {}},
		{name: "missing organization name", mutate: func(c *models.OrganizationCampaignCreate) { c.OrganizationName = "" }, wantErr: ErrEmptyOrganizationName},
		{name: "missing contact person", mutate: func(c *models.OrganizationCampaignCreate) { c.ContactPersonName = "" }, wantErr: ErrEmptyContactPerson},
		{name: "missing contact phone", mutate: func(c *models.OrganizationCampaignCreate) { c.ContactPhoneNumber = "" }, wantErr: ErrEmptyContactPhone},
		{name: "missing title", mutate: func(c *models.OrganizationCampaignCreate) { c.Title = "" }, wantErr: ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := validOrganizationCreate()
			tt.mutate(&create)

			// pointer form must work identically
			err := v.Validate(ctx, &create)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCampaignValidator_Rejection(t *testing.T) {
	v := NewCampaignValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		reason  string
		wantErr error
	}{
		{name: "long enough reason", reason: "insufficient supporting documents"},
		{name: "exactly ten characters", reason: strings.Repeat("x", 10)},
		{name: "nine characters", reason: strings.Repeat("x", 9), wantErr: ErrRejectionReasonTooShort},
		{name: "empty reason", reason: "", wantErr: ErrRejectionReasonTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, RejectionInput{Reason: tt.reason})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCampaignValidator_DonationCreate(t *testing.T) {
	v := NewCampaignValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.DonationCreate{
		CampaignID:    "camp-1",
		WalletAddress: "0xDEADBEEF",
		Amount:        100,
	}))

	require.ErrorIs(t, v.Validate(ctx, models.DonationCreate{
		WalletAddress: "0xDEADBEEF",
	}), ErrInvalidDonationAmount)

	require.ErrorIs(t, v.Validate(ctx, models.DonationCreate{
		Amount: 100,
	}), ErrEmptyWalletAddress)
}

func TestCampaignValidator_UnsupportedType(t *testing.T) {
	v := NewCampaignValidator()

	require.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
