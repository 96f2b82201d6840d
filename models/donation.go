package models

import "time"

// Donation records one confirmed contribution to a campaign. The ledger
// transaction hash is supplied by the caller after the on-chain transfer
// settles; the record itself is public data.
type Donation struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"campaign_id"`
	WalletAddress string    `json:"wallet_address"`
	Amount        float64   `json:"amount"`
	TxHash        string    `json:"tx_hash"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DonationCreate is the input for recording a donation.
type DonationCreate struct {
	CampaignID    string  `json:"campaign_id"`
	WalletAddress string  `json:"wallet_address"`
	Amount        float64 `json:"amount"`
	TxHash        string  `json:"tx_hash"`
	Message       string  `json:"message"`
}
