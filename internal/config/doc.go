// Package config assembles the server configuration from environment
// variables, command-line flags and an optional JSON file, in that order
// of precedence.
package config
