package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a "host:port" string. The host part may be empty, the port
// part must be a valid integer.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerAddress, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerAddress, err)
	}

	a.Host = host
	a.Port = port

	return nil
}

func parseFlags() (*StructuredConfig, error) {
	return parseFlagsFrom(os.Args[1:])
}

func parseFlagsFrom(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("heartchain", flag.ContinueOnError)

	addr := &NetAddress{}
	fs.Var(addr, "a", "HTTP server address as host:port")

	var (
		dsn             = fs.String("d", "", "PostgreSQL connection DSN")
		configPath      = fs.String("c", "", "path to a JSON config file")
		encryptionKey   = fs.String("encryption-key", "", "hex-encoded 256-bit AES key")
		tokenSignKey    = fs.String("token-sign-key", "", "JWT signing key")
		tokenIssuer     = fs.String("token-issuer", "", "JWT issuer")
		tokenDuration   = fs.Duration("token-duration", 0, "JWT lifetime")
		requestTimeout  = fs.Duration("request-timeout", 0, "outbound request timeout")
		ipfsAPI         = fs.String("ipfs-api", "", "IPFS node API address")
		ipfsGateway     = fs.String("ipfs-gateway", "", "IPFS gateway address")
		ledgerRPC       = fs.String("ledger-rpc", "", "ledger RPC relay address")
		contractAddress = fs.String("contract-address", "", "campaign registry contract address")
		anchorInterval  = fs.Duration("anchor-interval", 0, "ledger anchoring worker interval")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{}
	cfg.JSONFilePath = *configPath
	cfg.Storage.DB.DSN = *dsn
	cfg.App.EncryptionKey = *encryptionKey
	cfg.App.TokenSignKey = *tokenSignKey
	cfg.App.TokenIssuer = *tokenIssuer
	cfg.App.TokenDuration = *tokenDuration
	cfg.Server.RequestTimeout = *requestTimeout
	cfg.Adapter.IPFSAPIAddress = *ipfsAPI
	cfg.Adapter.IPFSGatewayAddress = *ipfsGateway
	cfg.Adapter.LedgerRPCAddress = *ledgerRPC
	cfg.Adapter.ContractAddress = *contractAddress
	cfg.Adapter.RequestTimeout = *requestTimeout
	cfg.Workers.AnchorInterval = *anchorInterval

	if addr.Port != 0 || addr.Host != "" {
		cfg.Server.HTTPAddress = addr.String()
	}

	return cfg, nil
}
