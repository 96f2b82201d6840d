package models

import "time"

// CampaignType tags a campaign variant. The tag is immutable after creation
// and determines which attributes are sensitive (see sensitive.go).
type CampaignType string

const (
	CampaignIndividual   CampaignType = "individual"
	CampaignOrganization CampaignType = "organization"
)

// Valid reports whether t is a known campaign variant.
func (t CampaignType) Valid() bool {
	return t == CampaignIndividual || t == CampaignOrganization
}

// PriorityLevel is the campaign urgency level used for public listing order.
type PriorityLevel string

const (
	PriorityUrgent PriorityLevel = "urgent"
	PriorityNormal PriorityLevel = "normal"
)

// DocumentKind classifies an uploaded supporting document.
type DocumentKind string

const (
	DocumentMedicalBill        DocumentKind = "medical_bill"
	DocumentDoctorPrescription DocumentKind = "doctor_prescription"
	DocumentHospitalLetter     DocumentKind = "hospital_letter"
	DocumentIDProof            DocumentKind = "id_proof"
	DocumentNGOCertificate     DocumentKind = "ngo_certificate"
	DocumentLicense            DocumentKind = "license"
	DocumentTrustDeed          DocumentKind = "trust_deed"
	DocumentOther              DocumentKind = "other"
)

// DocumentReference describes an encrypted document hosted in the external
// content-addressed blob store. Content is never embedded; ContentID is the
// opaque identifier returned by the store.
type DocumentReference struct {
	ContentID  string       `json:"content_id"`
	Kind       DocumentKind `json:"kind"`
	Filename   string       `json:"filename"`
	MimeType   string       `json:"mime_type"`
	SizeBytes  int64        `json:"size_bytes"`
	UploadedAt time.Time    `json:"uploaded_at"`
}

// DocumentList is the JSONB-backed collection of document references
// attached to a campaign.
type DocumentList []DocumentReference

// Campaign is the stored form of a campaign record: public attributes in
// plaintext, every sensitive attribute as an [EncryptedField]. Which slots
// are populated depends on Type: individual campaigns use the beneficiary
// slots, organization campaigns the contact slots. The record is owned by
// the storage layer and never cached across calls.
type Campaign struct {
	ID     string         `json:"id"`
	Type   CampaignType   `json:"campaign_type"`
	Status CampaignStatus `json:"status"`

	// Public attributes.
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	TargetAmount     float64       `json:"target_amount"`
	RaisedAmount     float64       `json:"raised_amount"`
	DurationDays     int           `json:"duration_days"`
	Category         string        `json:"category"`
	Priority         PriorityLevel `json:"priority"`
	ImageURL         string        `json:"image_url,omitempty"`
	OrganizationName string        `json:"organization_name,omitempty"` // organization variant only, public

	// Sensitive attributes (individual variant).
	BeneficiaryName    EncryptedField `json:"beneficiary_name"`
	PhoneNumber        EncryptedField `json:"phone_number"`
	ResidentialAddress EncryptedField `json:"residential_address"`

	// Sensitive attributes (organization variant).
	ContactPersonName  EncryptedField `json:"contact_person_name"`
	ContactPhoneNumber EncryptedField `json:"contact_phone_number"`
	OfficialAddress    EncryptedField `json:"official_address"`

	// Sensitive attribute shared by both variants.
	VerificationNotes EncryptedField `json:"verification_notes"`

	Documents DocumentList `json:"documents"`

	// Transparency: on-chain anchor of the approved campaign. Public.
	LedgerTxHash string `json:"ledger_tx_hash,omitempty"`

	// Lifecycle timestamps and transition effects.
	CreatedAt       time.Time  `json:"created_at"`
	EndDate         time.Time  `json:"end_date"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	ApprovalNotes   string     `json:"approval_notes,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectedBy      string     `json:"rejected_by,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
	CloseReason     string     `json:"close_reason,omitempty"`
}

// DocumentByContentID finds a document reference by its blob-store
// identifier. The second return value is false when no document with that
// identifier is attached to the campaign.
func (c Campaign) DocumentByContentID(contentID string) (DocumentReference, bool) {
	for _, doc := range c.Documents {
		if doc.ContentID == contentID {
			return doc, true
		}
	}
	return DocumentReference{}, false
}

// IndividualCampaignCreate is the input for creating an individual campaign.
// The sensitive fields are encrypted by the projector before persistence and
// never stored in plaintext.
type IndividualCampaignCreate struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	TargetAmount float64       `json:"target_amount"`
	DurationDays int           `json:"duration_days"`
	Category     string        `json:"category"`
	Priority     PriorityLevel `json:"priority"`
	ImageURL     string        `json:"image_url"`

	BeneficiaryName    string `json:"beneficiary_name"`
	PhoneNumber        string `json:"phone_number"`
	ResidentialAddress string `json:"residential_address"`
	VerificationNotes  string `json:"verification_notes"`
}

// OrganizationCampaignCreate is the input for creating an organization
// campaign. OrganizationName is public; the contact fields are sensitive.
type OrganizationCampaignCreate struct {
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	TargetAmount     float64       `json:"target_amount"`
	DurationDays     int           `json:"duration_days"`
	Category         string        `json:"category"`
	Priority         PriorityLevel `json:"priority"`
	ImageURL         string        `json:"image_url"`
	OrganizationName string        `json:"organization_name"`

	ContactPersonName  string `json:"contact_person_name"`
	ContactPhoneNumber string `json:"contact_phone_number"`
	OfficialAddress    string `json:"official_address"`
	VerificationNotes  string `json:"verification_notes"`
}

// DocumentUpload is the input for attaching a supporting document to a
// campaign. Content is the raw plaintext; it is sealed before leaving the
// service layer.
type DocumentUpload struct {
	Kind     DocumentKind `json:"kind"`
	Filename string       `json:"filename"`
	MimeType string       `json:"mime_type"`
	Content  []byte       `json:"-"`
}

// CampaignFilter narrows public campaign listings.
type CampaignFilter struct {
	Status   CampaignStatus
	Type     CampaignType
	Category string
	Limit    uint64
}
