package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Duration unmarshals either a number of seconds or a time.ParseDuration
// string such as "30s" or "1h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		d.Duration = time.Duration(value) * time.Second
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return errors.New("duration must be a number of seconds or a duration string")
	}

	return nil
}

type jsonConfig struct {
	App struct {
		EncryptionKey string   `json:"encryption_key"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		AdminLogin    string   `json:"admin_login"`
		AdminPassword string   `json:"admin_password"`
	} `json:"app"`
	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage"`
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`
	Adapter struct {
		IPFSAPIAddress     string   `json:"ipfs_api_address"`
		IPFSGatewayAddress string   `json:"ipfs_gateway_address"`
		LedgerRPCAddress   string   `json:"ledger_rpc_address"`
		ContractAddress    string   `json:"contract_address"`
		RequestTimeout     Duration `json:"request_timeout"`
	} `json:"adapter"`
	Workers struct {
		AnchorInterval  Duration `json:"anchor_interval"`
		AnchorBatchSize int      `json:"anchor_batch_size"`
	} `json:"workers"`
	Uploads struct {
		MaxFileSizeMB    int64    `json:"max_file_size_mb"`
		AllowedMimeTypes []string `json:"allowed_mime_types"`
	} `json:"uploads"`
}

func parseJSONFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parseJSON(data)
}

func parseJSON(data []byte) (*StructuredConfig, error) {
	raw := jsonConfig{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{}
	cfg.App.EncryptionKey = raw.App.EncryptionKey
	cfg.App.TokenSignKey = raw.App.TokenSignKey
	cfg.App.TokenIssuer = raw.App.TokenIssuer
	cfg.App.TokenDuration = raw.App.TokenDuration.Duration
	cfg.App.AdminLogin = raw.App.AdminLogin
	cfg.App.AdminPassword = raw.App.AdminPassword
	cfg.Storage.DB.DSN = raw.Storage.DSN
	cfg.Server.HTTPAddress = raw.Server.HTTPAddress
	cfg.Server.RequestTimeout = raw.Server.RequestTimeout.Duration
	cfg.Adapter.IPFSAPIAddress = raw.Adapter.IPFSAPIAddress
	cfg.Adapter.IPFSGatewayAddress = raw.Adapter.IPFSGatewayAddress
	cfg.Adapter.LedgerRPCAddress = raw.Adapter.LedgerRPCAddress
	cfg.Adapter.ContractAddress = raw.Adapter.ContractAddress
	cfg.Adapter.RequestTimeout = raw.Adapter.RequestTimeout.Duration
	cfg.Workers.AnchorInterval = raw.Workers.AnchorInterval.Duration
	cfg.Workers.AnchorBatchSize = raw.Workers.AnchorBatchSize
	cfg.Uploads.MaxFileSizeMB = raw.Uploads.MaxFileSizeMB
	cfg.Uploads.AllowedMimeTypes = raw.Uploads.AllowedMimeTypes

	return cfg, nil
}
