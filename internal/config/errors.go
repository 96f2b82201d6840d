package config

import "errors"

var (
	ErrParsingFlags    = errors.New("error parsing command-line flags")
	ErrParsingEnv      = errors.New("error parsing environment variables")
	ErrParsingJSONFile = errors.New("error parsing JSON config file")
	ErrMergingConfigs  = errors.New("error merging configuration sources")

	ErrMissingEncryptionKey = errors.New("encryption key is not set")
	ErrInvalidEncryptionKey = errors.New("encryption key must be a hex-encoded 256-bit key")
	ErrMissingDatabaseDSN   = errors.New("database DSN is not set")
	ErrMissingTokenSignKey  = errors.New("token sign key is not set")
	ErrInvalidServerAddress = errors.New("invalid server address")
)
