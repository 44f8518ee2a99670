// Package config holds the bridge's runtime configuration: listen port,
// app-root directory, audit-log toggle, token path overrides, and the
// optional JWKS auth settings. New returns a Config populated with the
// spec's stated defaults; YAML file values and CLI flags layer on top
// in that order (§6 "Configuration").
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for bridge configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	ConfigFile        string
	Port              string
	AppRoot           string
	TokenPath         string
	DisableAudit      string
	ValidateArguments string
	EnableSSE         string
	AuditAllMethods   string
	JWKSURL           string
	JWKSIssuer        string
	JWKSAudience      string
}

// Config is the bridge's fully-resolved runtime configuration.
type Config struct {
	Flags Flags `yaml:"-"`

	ConfigFile string `yaml:"-"`

	// Port is the TCP port the raw HTTP listener binds to.
	Port int `yaml:"port"`

	// AppRoot is the directory the bridge treats as its home: the
	// default location for the bearer token file, the audit log, and
	// the server.json discovery file.
	AppRoot string `yaml:"app_root"`

	// TokenPath overrides the default <AppRoot>/agent-token location.
	TokenPath string `yaml:"token_path"`

	// DisableAudit turns off audit logging entirely.
	DisableAudit bool `yaml:"disable_audit"`

	// AuditLogPath overrides the default <AppRoot>/logs/mcp-audit.jsonl
	// location.
	AuditLogPath string `yaml:"audit_log_path"`

	// ValidateArguments enables pre-dispatch tools/call argument
	// validation against the target script's declared schema (§9).
	ValidateArguments bool `yaml:"validate_arguments"`

	// EnableSSE turns on the SSE side-channel for scripts/* tools/call
	// results (§9).
	EnableSSE bool `yaml:"enable_sse"`

	// AuditAllMethods extends audit logging to every dispatched method,
	// not just tools/call (§9).
	AuditAllMethods bool `yaml:"audit_all_methods"`

	// JWKS, when URL is non-empty, switches authentication from the
	// static bearer token to JWT-over-JWKS validation.
	JWKS JWKSConfig `yaml:"jwks"`
}

// JWKSConfig configures the optional JWT-over-JWKS TokenValidator.
type JWKSConfig struct {
	URL      string `yaml:"url"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

const defaultPort = 43210

// New returns a Config populated with spec defaults and flag names ready
// for RegisterFlags.
func New() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Flags: Flags{
			ConfigFile:        "config",
			Port:              "port",
			AppRoot:           "app-root",
			TokenPath:         "token-path",
			DisableAudit:      "disable-audit",
			ValidateArguments: "validate-arguments",
			EnableSSE:         "enable-sse",
			AuditAllMethods:   "audit-all-methods",
			JWKSURL:           "jwks-url",
			JWKSIssuer:        "jwks-issuer",
			JWKSAudience:      "jwks-audience",
		},
		Port:    defaultPort,
		AppRoot: filepath.Join(home, ".scriptkit"),
	}
}

// RegisterFlags adds bridge configuration flags to the given flag set.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.ConfigFile, c.Flags.ConfigFile, c.ConfigFile, "path to a YAML config file")
	flags.IntVar(&c.Port, c.Flags.Port, c.Port, "TCP port the bridge listens on")
	flags.StringVar(&c.AppRoot, c.Flags.AppRoot, c.AppRoot, "bridge home directory")
	flags.StringVar(&c.TokenPath, c.Flags.TokenPath, c.TokenPath, "bearer token file path (default <app-root>/agent-token)")
	flags.BoolVar(&c.DisableAudit, c.Flags.DisableAudit, c.DisableAudit, "disable audit logging")
	flags.BoolVar(&c.ValidateArguments, c.Flags.ValidateArguments, c.ValidateArguments, "validate tools/call arguments against the script schema before dispatch")
	flags.BoolVar(&c.EnableSSE, c.Flags.EnableSSE, c.EnableSSE, "enable the SSE side-channel for scripts/* tool calls")
	flags.BoolVar(&c.AuditAllMethods, c.Flags.AuditAllMethods, c.AuditAllMethods, "audit every dispatched method, not just tools/call")
	flags.StringVar(&c.JWKS.URL, c.Flags.JWKSURL, c.JWKS.URL, "JWKS URL; enables JWT bearer auth instead of the static token")
	flags.StringVar(&c.JWKS.Issuer, c.Flags.JWKSIssuer, c.JWKS.Issuer, "expected JWT issuer")
	flags.StringVar(&c.JWKS.Audience, c.Flags.JWKSAudience, c.JWKS.Audience, "expected JWT audience")
}

// PreloadConfigFile scans args for the --config flag (without erroring on
// any other flag it doesn't recognize) and, if found, calls Load before
// RegisterFlags runs. This is what lets CLI flags win over the file:
// RegisterFlags seeds each flag's default from whatever is already in c,
// so a file value becomes the new default and an explicit CLI flag still
// overrides it during the normal flags.Parse pass (§6 "CLI flags override
// file values").
func (c *Config) PreloadConfigFile(args []string) error {
	scan := pflag.NewFlagSet("preload", pflag.ContinueOnError)
	scan.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}
	scan.Usage = func() {}
	configFile := scan.String(c.Flags.ConfigFile, "", "")

	if err := scan.Parse(args); err != nil {
		return fmt.Errorf("config: scanning for --%s: %w", c.Flags.ConfigFile, err)
	}

	c.ConfigFile = *configFile
	return c.Load()
}

// Load reads the config file named by c.ConfigFile, if any, and merges
// it into c.
func (c *Config) Load() error {
	if c.ConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", c.ConfigFile, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", c.ConfigFile, err)
	}

	return nil
}

// ResolvedTokenPath returns TokenPath if set, else the app-root default.
func (c *Config) ResolvedTokenPath() string {
	if c.TokenPath != "" {
		return c.TokenPath
	}
	return filepath.Join(c.AppRoot, "agent-token")
}

// ResolvedAuditLogPath returns AuditLogPath if set, else the app-root
// default.
func (c *Config) ResolvedAuditLogPath() string {
	if c.AuditLogPath != "" {
		return c.AuditLogPath
	}
	return filepath.Join(c.AppRoot, "logs", "mcp-audit.jsonl")
}

// DiscoveryFilePath returns the path of the server.json discovery file
// the HTTP server writes on startup and removes on shutdown (§6).
func (c *Config) DiscoveryFilePath() string {
	return filepath.Join(c.AppRoot, "server.json")
}
