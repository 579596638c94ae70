package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a relay HTTP address in format [host]:[port]
//	-d session store DSN
//	-c/-config JSON or TOML file path with configs
//	-token-sign-key user token signing key
//	-token-issuer user token issuer name
//	-token-duration user token duration (e.g., "1h", "30m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-verify-credentials check credentials against the backend before accepting them
//	-provider-timeout backend call timeout (e.g., "90s")
//	-relay relay address used by the terminal client
//	-user user ID the terminal client chats as
//	-rehydration-concurrency parallel session reconstructions at startup
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var configPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var verifyCredentials bool
	var providerTimeout time.Duration
	var relayAddress string
	var userID string
	var rehydrationConcurrency int

	fs := flag.NewFlagSet("go-llm-relay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Session store DSN")
	fs.StringVar(&configPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or TOML config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&verifyCredentials, "verify-credentials", false, "Verify credentials against the backend")
	fs.DurationVar(&providerTimeout, "provider-timeout", 0, "Backend call timeout (e.g., 90s)")
	fs.StringVar(&relayAddress, "relay", "", "Relay address used by the terminal client")
	fs.StringVar(&userID, "user", "", "User ID the terminal client chats as")
	fs.IntVar(&rehydrationConcurrency, "rehydration-concurrency", 0, "Parallel session reconstructions at startup")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Providers: Providers{
			VerifyCredentials: verifyCredentials,
			RequestTimeout:    providerTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: relayAddress,
			UserID:      userID,
		},
		Workers: Workers{
			RehydrationConcurrency: rehydrationConcurrency,
		},
		FilePath: configPath,
	}, nil
}

func commandLineArgs() []string {
	return os.Args[1:]
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
