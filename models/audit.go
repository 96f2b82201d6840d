package models

import "time"

// AuditAction names an admin action recorded in the audit trail.
type AuditAction string

const (
	AuditViewPending  AuditAction = "view_pending"
	AuditViewDetails  AuditAction = "view_details"
	AuditViewDocument AuditAction = "view_document"
	AuditApprove      AuditAction = "approve"
	AuditReject       AuditAction = "reject"
)

// AuditLogEntry is one append-only record of an admin disclosure or
// transition. Entries are never mutated or deleted once written.
type AuditLogEntry struct {
	ID         string            `json:"id"`
	AdminID    string            `json:"admin_id"`
	Action     AuditAction       `json:"action"`
	CampaignID string            `json:"campaign_id"`
	Details    map[string]string `json:"details,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// AuditFilter narrows audit-log listings. Zero-valued fields are ignored.
type AuditFilter struct {
	AdminID    string
	Action     AuditAction
	CampaignID string
	Limit      uint64
}
