// Package adapter provides transport-layer abstractions for the external
// systems the service depends on: the content-addressed blob store holding
// encrypted documents and the ledger relay that anchors approved campaigns
// on chain.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BlobStore is the content-addressed store for sealed document blobs.
// Implementations receive opaque ciphertext and must never see plaintext.
type BlobStore interface {
	// PutBlob uploads a sealed blob and returns its content identifier.
	PutBlob(ctx context.Context, filename string, content []byte) (string, error)

	// GetBlob downloads the sealed blob with the given content identifier.
	// Returns [ErrBlobNotFound] when the store does not hold it.
	GetBlob(ctx context.Context, contentID string) ([]byte, error)
}

// Ledger anchors approved campaigns on the public ledger. The returned
// transaction hash is stored with the campaign for donor verification.
type Ledger interface {
	// AnchorCampaign registers the campaign's goal and metadata content
	// identifier on chain and returns the transaction hash.
	AnchorCampaign(ctx context.Context, campaignID string, goal float64, metadataCID string) (string, error)
}
