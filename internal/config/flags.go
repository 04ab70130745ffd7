package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
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

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g. "30s")
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
//	-auth-timeout upstream token request timeout (e.g. "30s")
//	-upstream-timeout upstream API request timeout (e.g. "60s")
//	-log-level minimum log level (debug, info, warn, error)
//	-insecure-skip-verify disable TLS verification towards the upstream
//
// Secrets are intentionally not accepted as flags.
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("cycle-count-relay", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout, shutdownTimeout time.Duration
	var authTimeout, upstreamTimeout time.Duration
	var insecureSkipVerify bool
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.DurationVar(&authTimeout, "auth-timeout", 0, "Upstream token request timeout (e.g., 30s)")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream API request timeout (e.g., 60s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&insecureSkipVerify, "insecure-skip-verify", false, "Disable TLS certificate verification towards the upstream")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Upstream: Upstream{
			AuthTimeout:        authTimeout,
			RequestTimeout:     upstreamTimeout,
			InsecureSkipVerify: insecureSkipVerify,
		},
		LogLevel:     logLevel,
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range and checks IP correctness unless host is
// "localhost".
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
