package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/heartchain/heartchain/internal/config"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/utils"
)

// ipfsBlobStore is the IPFS-backed implementation of [BlobStore]. Uploads
// go through the node RPC API (/api/v0/add), downloads through the public
// gateway so retrieval works against any pinning provider.
type ipfsBlobStore struct {
	api     *utils.HTTPClient
	gateway *utils.HTTPClient

	logger *logger.Logger
}

// addResponse is the JSON body the IPFS add endpoint returns per file.
type addResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// NewIPFSBlobStore constructs an IPFS-backed [BlobStore] from the adapter
// configuration. Returns an error when either address is empty or cannot
// be parsed as a URL.
func NewIPFSBlobStore(cfg config.Adapter, logger *logger.Logger) (BlobStore, error) {
	apiURL, err := normalizeBaseURL(cfg.IPFSAPIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid ipfs api address: %w", err)
	}
	gatewayURL, err := normalizeBaseURL(cfg.IPFSGatewayAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid ipfs gateway address: %w", err)
	}

	api := utils.NewHTTPClient()
	api.SetBaseURL(apiURL).SetTimeout(cfg.RequestTimeout)

	gateway := utils.NewHTTPClient()
	gateway.SetBaseURL(gatewayURL).SetTimeout(cfg.RequestTimeout)

	return &ipfsBlobStore{api: api, gateway: gateway, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PutBlob implements [BlobStore]. It uploads the sealed content to
// POST /api/v0/add as a multipart file and returns the content identifier
// assigned by the node.
func (s *ipfsBlobStore) PutBlob(ctx context.Context, filename string, content []byte) (string, error) {
	log := logger.FromContext(ctx)

	var added addResponse
	resp, err := s.api.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(content)).
		SetResult(&added).
		Post("/api/v0/add")
	if err != nil {
		log.Err(err).
			Str("func", "ipfsBlobStore.PutBlob").
			Str("filename", filename).
			Msg("blob upload request failed")
		return "", fmt.Errorf("ipfs add request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "ipfsBlobStore.PutBlob").
			Str("filename", filename).
			Msg("blob upload rejected")
		return "", err
	}

	if added.Hash == "" {
		log.Error().
			Str("func", "ipfsBlobStore.PutBlob").
			Str("filename", filename).
			Msg("ipfs add response has no hash")
		return "", errors.New("ipfs add response has no hash")
	}

	log.Info().
		Str("func", "ipfsBlobStore.PutBlob").
		Str("content_id", added.Hash).
		Int("size_bytes", len(content)).
		Msg("blob uploaded")

	return added.Hash, nil
}

// GetBlob implements [BlobStore]. It downloads the sealed content from the
// gateway path /ipfs/<cid>. Returns [ErrBlobNotFound] for a 404 response.
func (s *ipfsBlobStore) GetBlob(ctx context.Context, contentID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	resp, err := s.gateway.R().
		SetContext(ctx).
		Get("/ipfs/" + url.PathEscape(contentID))
	if err != nil {
		log.Err(err).
			Str("func", "ipfsBlobStore.GetBlob").
			Str("content_id", contentID).
			Msg("blob download request failed")
		return nil, fmt.Errorf("ipfs gateway request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, contentID)
		}
		log.Err(err).
			Str("func", "ipfsBlobStore.GetBlob").
			Str("content_id", contentID).
			Msg("blob download rejected")
		return nil, err
	}

	return resp.Body(), nil
}
