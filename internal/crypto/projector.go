package crypto

import (
	"errors"
	"fmt"

	"github.com/heartchain/heartchain/models"
)

// DecryptionErrorMarker replaces a sensitive value in a full view when that
// single field fails GCM authentication or wire decoding. One tampered
// field must not hide the rest of a legitimate record, so disclosure
// continues and the marker makes the failure visible inline.
const DecryptionErrorMarker = "[DECRYPTION ERROR]"

// Projector applies the field codec across the closed sensitive-attribute
// set of a campaign variant, converting between the stored (encrypted)
// record and its plaintext inputs/views. It is the only component that
// knows which attributes of a record are sensitive.
type Projector struct {
	codec FieldCodec
}

// NewProjector wires a Projector to the given codec.
func NewProjector(codec FieldCodec) *Projector {
	return &Projector{codec: codec}
}

// EncryptIndividual populates the sensitive slots of campaign from the
// individual-variant create input. Optional empty inputs become the empty
// sentinel, never ciphertext.
func (p *Projector) EncryptIndividual(campaign *models.Campaign, in models.IndividualCampaignCreate) error {
	values := map[models.SensitiveAttribute]string{
		models.AttrBeneficiaryName:    in.BeneficiaryName,
		models.AttrPhoneNumber:        in.PhoneNumber,
		models.AttrResidentialAddress: in.ResidentialAddress,
		models.AttrVerificationNotes:  in.VerificationNotes,
	}
	return p.encryptInto(campaign, models.CampaignIndividual, values)
}

// EncryptOrganization populates the sensitive slots of campaign from the
// organization-variant create input.
func (p *Projector) EncryptOrganization(campaign *models.Campaign, in models.OrganizationCampaignCreate) error {
	values := map[models.SensitiveAttribute]string{
		models.AttrContactPersonName:  in.ContactPersonName,
		models.AttrContactPhoneNumber: in.ContactPhoneNumber,
		models.AttrOfficialAddress:    in.OfficialAddress,
		models.AttrVerificationNotes:  in.VerificationNotes,
	}
	return p.encryptInto(campaign, models.CampaignOrganization, values)
}

func (p *Projector) encryptInto(campaign *models.Campaign, variant models.CampaignType, values map[models.SensitiveAttribute]string) error {
	for _, attr := range models.SensitiveAttributesFor(variant) {
		field, err := p.codec.EncryptString(values[attr])
		if err != nil {
			return fmt.Errorf("encrypt attribute %q: %w", attr, err)
		}
		*campaign.EncryptedSlot(attr) = field
	}
	return nil
}

// DecryptCampaign produces the full admin view of a stored campaign. The
// sensitive-attribute set is resolved from the record's type tag, never
// discovered from record content. A field that fails authentication or
// decoding is replaced with [DecryptionErrorMarker] while the remaining
// fields still decrypt (partial-failure semantics); any other error aborts
// the projection.
func (p *Projector) DecryptCampaign(campaign models.Campaign) (models.CampaignFullView, error) {
	view := models.CampaignFullView{
		CampaignPublicView: campaign.PublicView(),
		Sensitive:          make(map[models.SensitiveAttribute]string),
		Documents:          campaign.Documents,
		SubmittedAt:        campaign.SubmittedAt,
		ApprovedAt:         campaign.ApprovedAt,
		ApprovedBy:         campaign.ApprovedBy,
		ApprovalNotes:      campaign.ApprovalNotes,
		RejectedAt:         campaign.RejectedAt,
		RejectedBy:         campaign.RejectedBy,
		RejectionReason:    campaign.RejectionReason,
		ClosedAt:           campaign.ClosedAt,
		CloseReason:        campaign.CloseReason,
	}

	for _, attr := range models.SensitiveAttributesFor(campaign.Type) {
		field := *campaign.EncryptedSlot(attr)

		plaintext, err := p.codec.DecryptString(field)
		switch {
		case err == nil:
			view.Sensitive[attr] = plaintext
		case errors.Is(err, ErrAuthentication), errors.Is(err, ErrDecoding):
			view.Sensitive[attr] = DecryptionErrorMarker
		default:
			return models.CampaignFullView{}, fmt.Errorf("decrypt attribute %q: %w", attr, err)
		}
	}

	return view, nil
}
