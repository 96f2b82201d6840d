package store

import "github.com/heartchain/heartchain/internal/logger"

// Storages aggregates every repository over one shared database handle.
type Storages struct {
	CampaignRepository CampaignRepository
	AuditLogRepository AuditLogRepository
	DonationRepository DonationRepository
	AdminRepository    AdminRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CampaignRepository: NewCampaignRepository(db, log),
		AuditLogRepository: NewAuditLogRepository(db, log),
		DonationRepository: NewDonationRepository(db, log),
		AdminRepository:    NewAdminRepository(db, log),
	}
}
