package store

// campaignColumns is the canonical column list scanned into models.Campaign.
// Keep the order in sync with scanCampaign.
const campaignColumns = `campaign_id, campaign_type, status, title, description,
		target_amount, raised_amount, duration_days, category, priority, image_url,
		organization_name, beneficiary_name, phone_number, residential_address,
		contact_person_name, contact_phone_number, official_address, verification_notes,
		documents, ledger_tx_hash, created_at, end_date, submitted_at,
		approved_at, approved_by, approval_notes, rejected_at, rejected_by,
		rejection_reason, closed_at, close_reason`

const (
	insertCampaign = `INSERT INTO campaigns (
			campaign_id, campaign_type, status, title, description,
			target_amount, raised_amount, duration_days, category, priority, image_url,
			organization_name, beneficiary_name, phone_number, residential_address,
			contact_person_name, contact_phone_number, official_address, verification_notes,
			documents, created_at, end_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING ` + campaignColumns + `;`

	getCampaignByID = `SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE campaign_id = $1;`

	removeCampaignDocument = `UPDATE campaigns
		SET documents = COALESCE(
			(SELECT jsonb_agg(d) FROM jsonb_array_elements(documents) AS d
			 WHERE d->>'content_id' <> $2),
			'[]'::jsonb)
		WHERE campaign_id = $1 AND status = $3
		  AND EXISTS (
			SELECT 1 FROM jsonb_array_elements(documents) AS d
			WHERE d->>'content_id' = $2);`

	setCampaignLedgerTxHash = `UPDATE campaigns
		SET ledger_tx_hash = $2
		WHERE campaign_id = $1;`

	listUnanchoredCampaigns = `SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE status = 'active' AND ledger_tx_hash = ''
		ORDER BY approved_at ASC
		LIMIT $1;`

	campaignCountsByStatus = `SELECT status, COUNT(*) FROM campaigns GROUP BY status;`
	campaignCountsByType   = `SELECT campaign_type, COUNT(*) FROM campaigns GROUP BY campaign_type;`
	campaignTotalRaised    = `SELECT COALESCE(SUM(raised_amount), 0) FROM campaigns;`

	insertAuditEntry = `INSERT INTO admin_audit_log (entry_id, admin_id, action, campaign_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`

	insertDonation = `INSERT INTO donations (donation_id, campaign_id, wallet_address, amount, tx_hash, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING donation_id, campaign_id, wallet_address, amount, tx_hash, message, created_at;`

	addCampaignRaisedAmount = `UPDATE campaigns
		SET raised_amount = raised_amount + $2
		WHERE campaign_id = $1;`

	listDonationsByCampaign = `SELECT donation_id, campaign_id, wallet_address, amount, tx_hash, message, created_at
		FROM donations
		WHERE campaign_id = $1
		ORDER BY created_at DESC;`

	listDonationsByWallet = `SELECT donation_id, campaign_id, wallet_address, amount, tx_hash, message, created_at
		FROM donations
		WHERE wallet_address = $1
		ORDER BY created_at DESC;`

	insertAdmin = `INSERT INTO admins (admin_id, login, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING admin_id, login, password_hash, created_at;`

	findAdminByLogin = `SELECT admin_id, login, password_hash, created_at
		FROM admins
		WHERE login = $1;`
)
