package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartchain/heartchain/internal/logger"
)

const testEncryptionKey = "5368616e6765206d65212053686f756c64206265206132353620626974206b65"

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.EncryptionKey = testEncryptionKey
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost:5432/heartchain"

	return cfg
}

func TestNetAddressSet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "host and port", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "port only", input: ":9090", wantHost: "", wantPort: 9090},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(test.input)

			if test.wantErr {
				require.ErrorIs(t, err, ErrInvalidServerAddress)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.wantHost, addr.Host)
			assert.Equal(t, test.wantPort, addr.Port)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlagsFrom([]string{
		"-a", "localhost:9000",
		"-d", "postgres://localhost:5432/heartchain",
		"-encryption-key", testEncryptionKey,
		"-token-sign-key", "secret",
		"-ledger-rpc", "http://relay:8545",
		"-contract-address", "0xabc",
		"-anchor-interval", "2m",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost:5432/heartchain", cfg.Storage.DB.DSN)
	assert.Equal(t, testEncryptionKey, cfg.App.EncryptionKey)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "http://relay:8545", cfg.Adapter.LedgerRPCAddress)
	assert.Equal(t, "0xabc", cfg.Adapter.ContractAddress)
	assert.Equal(t, 2*time.Minute, cfg.Workers.AnchorInterval)
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	_, err := parseFlagsFrom([]string{"-no-such-flag", "value"})
	require.Error(t, err)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_ENCRYPTION_KEY", testEncryptionKey)
	t.Setenv("STORAGE_DB_DSN", "postgres://env:5432/heartchain")
	t.Setenv("SERVER_HTTP_ADDRESS", "env:8080")
	t.Setenv("ADAPTER_IPFS_API_ADDRESS", "http://ipfs:5001")
	t.Setenv("WORKERS_ANCHOR_INTERVAL", "45s")
	t.Setenv("UPLOADS_ALLOWED_MIME_TYPES", "application/pdf,image/png")

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Equal(t, testEncryptionKey, cfg.App.EncryptionKey)
	assert.Equal(t, "postgres://env:5432/heartchain", cfg.Storage.DB.DSN)
	assert.Equal(t, "env:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://ipfs:5001", cfg.Adapter.IPFSAPIAddress)
	assert.Equal(t, 45*time.Second, cfg.Workers.AnchorInterval)
	assert.Equal(t, []string{"application/pdf", "image/png"}, cfg.Uploads.AllowedMimeTypes)
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"app": {
			"encryption_key": "` + testEncryptionKey + `",
			"token_sign_key": "secret",
			"token_duration": "12h"
		},
		"storage": {"dsn": "postgres://json:5432/heartchain"},
		"server": {"http_address": "json:8080", "request_timeout": 15},
		"adapter": {
			"ipfs_api_address": "http://ipfs:5001",
			"ipfs_gateway_address": "http://ipfs:8080",
			"ledger_rpc_address": "http://relay:8545",
			"contract_address": "0xabc"
		},
		"workers": {"anchor_interval": "90s", "anchor_batch_size": 25},
		"uploads": {"max_file_size_mb": 5, "allowed_mime_types": ["application/pdf"]}
	}`)

	cfg, err := parseJSON(data)
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://json:5432/heartchain", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://ipfs:8080", cfg.Adapter.IPFSGatewayAddress)
	assert.Equal(t, 90*time.Second, cfg.Workers.AnchorInterval)
	assert.Equal(t, 25, cfg.Workers.AnchorBatchSize)
	assert.Equal(t, int64(5), cfg.Uploads.MaxFileSizeMB)
}

func TestParseJSONInvalidDuration(t *testing.T) {
	_, err := parseJSON([]byte(`{"server": {"request_timeout": "soon"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestBuildPrecedence(t *testing.T) {
	b := newConfigBuilder(logger.Nop())
	b.defaults = defaultConfig()
	b.jsonCfg = &StructuredConfig{
		Server:  Server{HTTPAddress: "json:8080"},
		Storage: Storage{DB: DB{DSN: "postgres://json"}},
	}
	b.flagCfg = &StructuredConfig{
		Server: Server{HTTPAddress: "flag:8080"},
	}
	b.envCfg = &StructuredConfig{
		App: App{TokenIssuer: "env-issuer"},
	}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "flag:8080", cfg.Server.HTTPAddress, "flags override JSON")
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN, "JSON overrides defaults")
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer, "env overrides defaults")
	assert.Equal(t, time.Minute, cfg.Workers.AnchorInterval, "defaults survive when nothing overrides")
}

func TestJSONFilePathSource(t *testing.T) {
	b := newConfigBuilder(logger.Nop())
	assert.Empty(t, b.jsonFilePath())

	b.flagCfg = &StructuredConfig{JSONFilePath: "/etc/heartchain/flag.json"}
	assert.Equal(t, "/etc/heartchain/flag.json", b.jsonFilePath())

	b.envCfg = &StructuredConfig{JSONFilePath: "/etc/heartchain/env.json"}
	assert.Equal(t, "/etc/heartchain/env.json", b.jsonFilePath(), "env path wins over flag path")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{
			name:    "missing encryption key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.EncryptionKey = "" },
			wantErr: ErrMissingEncryptionKey,
		},
		{
			name:    "encryption key not hex",
			mutate:  func(cfg *StructuredConfig) { cfg.App.EncryptionKey = "not-hex" },
			wantErr: ErrInvalidEncryptionKey,
		},
		{
			name:    "encryption key too short",
			mutate:  func(cfg *StructuredConfig) { cfg.App.EncryptionKey = strings.Repeat("ab", 16) },
			wantErr: ErrInvalidEncryptionKey,
		},
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrMissingDatabaseDSN,
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrMissingTokenSignKey,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := validConfig()
			test.mutate(cfg)

			err := cfg.validate()
			if test.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, test.wantErr)
		})
	}
}
