package models

import "time"

// CampaignPublicView is the campaign representation safe to show anyone:
// every sensitive attribute stripped, documents reduced to a count.
type CampaignPublicView struct {
	ID               string         `json:"id"`
	Type             CampaignType   `json:"campaign_type"`
	Status           CampaignStatus `json:"status"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	TargetAmount     float64        `json:"target_amount"`
	RaisedAmount     float64        `json:"raised_amount"`
	DurationDays     int            `json:"duration_days"`
	Category         string         `json:"category"`
	Priority         PriorityLevel  `json:"priority"`
	ImageURL         string         `json:"image_url,omitempty"`
	OrganizationName string         `json:"organization_name,omitempty"`
	DocumentsCount   int            `json:"documents_count"`
	LedgerTxHash     string         `json:"ledger_tx_hash,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	EndDate          time.Time      `json:"end_date"`
}

// PublicView projects a stored campaign onto its public representation.
func (c Campaign) PublicView() CampaignPublicView {
	return CampaignPublicView{
		ID:               c.ID,
		Type:             c.Type,
		Status:           c.Status,
		Title:            c.Title,
		Description:      c.Description,
		TargetAmount:     c.TargetAmount,
		RaisedAmount:     c.RaisedAmount,
		DurationDays:     c.DurationDays,
		Category:         c.Category,
		Priority:         c.Priority,
		ImageURL:         c.ImageURL,
		OrganizationName: c.OrganizationName,
		DocumentsCount:   len(c.Documents),
		LedgerTxHash:     c.LedgerTxHash,
		CreatedAt:        c.CreatedAt,
		EndDate:          c.EndDate,
	}
}

// CampaignFullView is the admin disclosure of a campaign: the public view
// plus the decrypted sensitive attributes keyed by their attribute name.
// A field that failed authentication during decryption carries the inline
// error marker instead of plaintext, so one tampered field does not hide
// the rest of a legitimate record.
type CampaignFullView struct {
	CampaignPublicView

	Sensitive map[SensitiveAttribute]string `json:"sensitive"`

	Documents DocumentList `json:"documents"`

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

// DocumentContent is the admin-side result of retrieving and opening an
// encrypted document from the blob store.
type DocumentContent struct {
	ContentID string `json:"content_id"`
	Filename  string `json:"filename"`
	MimeType  string `json:"mime_type"`
	Content   []byte `json:"content"`
}

// AdminStats is the aggregate dashboard snapshot.
type AdminStats struct {
	ByStatus    map[CampaignStatus]int64 `json:"by_status"`
	ByType      map[CampaignType]int64   `json:"by_type"`
	TotalRaised float64                  `json:"total_raised"`
	GeneratedAt time.Time                `json:"generated_at"`
}
