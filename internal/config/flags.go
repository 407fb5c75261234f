package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s")
//	-denylist comma-separated peer IPs rejected with 403
//	-exempt comma-separated paths exempt from token verification
//	-rps sustained request rate admitted by the rate limiter
//	-burst rate limiter bucket size
//	-log-dir root directory for rotating log files
//	-log-file-out enable per-severity rotating files
//	-access-file-out enable the rotating access file
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var tokenSignKey string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var denylist string
	var exempt string
	var rps float64
	var burst int
	var logDir string
	var logFileOut bool
	var accessFileOut bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	flag.StringVar(&denylist, "denylist", "", "Comma-separated denylisted peer IPs")
	flag.StringVar(&exempt, "exempt", "", "Comma-separated auth-exempt paths")
	flag.Float64Var(&rps, "rps", 0, "Sustained request rate")
	flag.IntVar(&burst, "burst", 0, "Rate limiter bucket size")
	flag.StringVar(&logDir, "log-dir", "", "Root directory for rotating log files")
	flag.BoolVar(&logFileOut, "log-file-out", false, "Enable per-severity rotating files")
	flag.BoolVar(&accessFileOut, "access-file-out", false, "Enable the rotating access file")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			FileOut: logFileOut,
			Dir:     logDir,
		},
		AccessLog: AccessLog{
			FileOut: accessFileOut,
			Dir:     logDir,
		},
		Pipeline: Pipeline{
			Denylist:    splitList(denylist),
			ExemptPaths: splitList(exempt),
			RPS:         rps,
			Burst:       burst,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitList splits a comma-separated flag value into its non-empty parts.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless host
// is "localhost", and returns an error if the format or values are invalid.
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
