package config

import (
	"time"

	"github.com/heartchain/heartchain/internal/logger"
)

// StructuredConfig is the full server configuration tree.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`
	Uploads Uploads `envPrefix:"UPLOADS_"`

	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level secrets and the admin bootstrap account.
type App struct {
	// EncryptionKey is a hex-encoded 256-bit AES key.
	EncryptionKey string        `env:"ENCRYPTION_KEY"`
	TokenSignKey  string        `env:"TOKEN_SIGN_KEY"`
	TokenIssuer   string        `env:"TOKEN_ISSUER"`
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminLogin and AdminPassword seed the first admin account on start.
	AdminLogin    string `env:"ADMIN_LOGIN"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the PostgreSQL connection settings.
type DB struct {
	DSN string `env:"DSN"`
}

// Server holds the HTTP listener settings.
type Server struct {
	HTTPAddress    string        `env:"HTTP_ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds addresses of the external systems the server talks to.
type Adapter struct {
	IPFSAPIAddress     string        `env:"IPFS_API_ADDRESS"`
	IPFSGatewayAddress string        `env:"IPFS_GATEWAY_ADDRESS"`
	LedgerRPCAddress   string        `env:"LEDGER_RPC_ADDRESS"`
	ContractAddress    string        `env:"CONTRACT_ADDRESS"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	AnchorInterval  time.Duration `env:"ANCHOR_INTERVAL"`
	AnchorBatchSize int           `env:"ANCHOR_BATCH_SIZE"`
}

// Uploads holds campaign document upload limits.
type Uploads struct {
	MaxFileSizeMB    int64    `env:"MAX_FILE_SIZE_MB"`
	AllowedMimeTypes []string `env:"ALLOWED_MIME_TYPES" envSeparator:","`
}

// MaxFileSizeBytes converts the configured upload cap to bytes.
func (u Uploads) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// GetStructuredConfig gathers configuration from all sources and validates
// the result. Environment variables win over flags, flags win over the
// JSON file, and the JSON file wins over defaults.
func GetStructuredConfig(log *logger.Logger) (*StructuredConfig, error) {
	log.Debug().Msg("assembling configuration")

	cfg, err := newConfigBuilder(log).
		withDefaults().
		withFlags().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "heartchain",
			TokenDuration: 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			AnchorInterval:  time.Minute,
			AnchorBatchSize: 10,
		},
		Uploads: Uploads{
			MaxFileSizeMB:    10,
			AllowedMimeTypes: []string{"application/pdf", "image/jpeg", "image/png"},
		},
	}
}
