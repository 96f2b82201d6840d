package models

// SensitiveAttribute identifies one encrypted attribute of a campaign
// record. The per-variant sets below are closed enumerations fixed at
// definition time: a new field added to [Campaign] is NOT encrypted until it
// is deliberately added here, which keeps accidental plaintext leakage of
// new fields impossible.
type SensitiveAttribute string

const (
	AttrBeneficiaryName    SensitiveAttribute = "beneficiary_name"
	AttrPhoneNumber        SensitiveAttribute = "phone_number"
	AttrResidentialAddress SensitiveAttribute = "residential_address"
	AttrContactPersonName  SensitiveAttribute = "contact_person_name"
	AttrContactPhoneNumber SensitiveAttribute = "contact_phone_number"
	AttrOfficialAddress    SensitiveAttribute = "official_address"
	AttrVerificationNotes  SensitiveAttribute = "verification_notes"
)

var (
	individualSensitiveAttributes = []SensitiveAttribute{
		AttrBeneficiaryName,
		AttrPhoneNumber,
		AttrResidentialAddress,
		AttrVerificationNotes,
	}

	organizationSensitiveAttributes = []SensitiveAttribute{
		AttrContactPersonName,
		AttrContactPhoneNumber,
		AttrOfficialAddress,
		AttrVerificationNotes,
	}
)

// SensitiveAttributesFor returns the closed sensitive-attribute set for the
// given campaign variant. The returned slice must not be mutated.
func SensitiveAttributesFor(t CampaignType) []SensitiveAttribute {
	switch t {
	case CampaignIndividual:
		return individualSensitiveAttributes
	case CampaignOrganization:
		return organizationSensitiveAttributes
	default:
		return nil
	}
}

// EncryptedSlot returns a pointer to the [EncryptedField] slot on c that
// backs the given attribute, or nil when the attribute is unknown.
func (c *Campaign) EncryptedSlot(attr SensitiveAttribute) *EncryptedField {
	switch attr {
	case AttrBeneficiaryName:
		return &c.BeneficiaryName
	case AttrPhoneNumber:
		return &c.PhoneNumber
	case AttrResidentialAddress:
		return &c.ResidentialAddress
	case AttrContactPersonName:
		return &c.ContactPersonName
	case AttrContactPhoneNumber:
		return &c.ContactPhoneNumber
	case AttrOfficialAddress:
		return &c.OfficialAddress
	case AttrVerificationNotes:
		return &c.VerificationNotes
	default:
		return nil
	}
}
