// Package config resolves the process configuration from flags,
// environment variables and an optional .env file.
//
// The result is built once at startup and passed explicitly to every
// component; nothing reads configuration after that.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Document backends.
const (
	BackendGoogle = "google"
	BackendSQLite = "sqlite"
)

// Tool names, in advertisement order.
const (
	ToolGetAlerts    = "get-alerts"
	ToolGetForecast  = "get-forecast"
	ToolRememberThis = "remember_this"
	ToolSuggestTopic = "suggest_topic"
)

// AllTools is the canonical tool set.
var AllTools = []string{ToolGetAlerts, ToolGetForecast, ToolRememberThis, ToolSuggestTopic}

// Config holds everything the server needs.
type Config struct {
	// CredentialsPath is the Google service-account JSON file.
	CredentialsPath string
	// DocumentID identifies the memory document.
	DocumentID string
	// Backend selects the document service: google or sqlite.
	Backend string
	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string

	Weather WeatherConfig

	// Tools lists the tools to register, in AllTools order.
	Tools []string
	// WorkerPoolSize bounds concurrent tool calls on the stdio transport.
	WorkerPoolSize int

	LogLevel  string
	LogFormat string
}

// WeatherConfig configures the weather API client.
type WeatherConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	RateLimit float64
}

// StartupConfigError reports configuration that prevents the server from
// starting.
type StartupConfigError struct {
	Problems []string
}

func (e *StartupConfigError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Options controls Load.
type Options struct {
	// Flags, when set, overrides environment values with explicitly set flags.
	Flags *pflag.FlagSet
	// EnvFile is loaded into the environment first. Missing files are
	// ignored; existing variables are never overwritten.
	EnvFile string
}

// AddFlags registers the command-line flags Load understands.
func AddFlags(flags *pflag.FlagSet) {
	flags.String("credentials", "", "Path to the Google service-account credentials file (env GOOGLE_APPLICATION_CREDENTIALS)")
	flags.String("document-id", "", "ID of the memory document (env DOCUMENT_ID)")
	flags.String("backend", BackendGoogle, "Document backend: google or sqlite (env MEMDOC_BACKEND)")
	flags.String("sqlite-path", "", "Database file for the sqlite backend (env MEMDOC_SQLITE_PATH)")
	flags.String("tools", "", "Comma-separated tools to register (default: all)")
	flags.String("log-level", "info", "Log level: error, warn, info, debug")
	flags.String("log-format", "text", "Log format: text or json")
}

var flagKeys = map[string]string{
	"credentials": "credentials_path",
	"document-id": "document_id",
	"backend":     "backend",
	"sqlite-path": "sqlite_path",
	"tools":       "tools",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

// Load resolves and validates the configuration. Validation failures are
// returned as *StartupConfigError.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MEMDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("credentials_path", "GOOGLE_APPLICATION_CREDENTIALS", "MEMDOC_CREDENTIALS_PATH")
	_ = v.BindEnv("document_id", "DOCUMENT_ID", "MEMDOC_DOCUMENT_ID")

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		CredentialsPath: v.GetString("credentials_path"),
		DocumentID:      strings.TrimSpace(v.GetString("document_id")),
		Backend:         strings.ToLower(v.GetString("backend")),
		SQLitePath:      v.GetString("sqlite_path"),
		Weather: WeatherConfig{
			BaseURL:   strings.TrimRight(v.GetString("weather.base_url"), "/"),
			UserAgent: v.GetString("weather.user_agent"),
			Timeout:   v.GetDuration("weather.timeout"),
			RateLimit: v.GetFloat64("weather.rate_limit"),
		},
		Tools:          splitList(v.GetString("tools")),
		WorkerPoolSize: v.GetInt("worker_pool_size"),
		LogLevel:       v.GetString("log.level"),
		LogFormat:      v.GetString("log.format"),
	}
	if len(cfg.Tools) == 0 {
		cfg.Tools = append([]string(nil), AllTools...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()
	v.SetDefault("backend", BackendGoogle)
	v.SetDefault("sqlite_path", filepath.Join(home, ".memdoc", "memory.db"))
	v.SetDefault("weather.base_url", "https://api.weather.gov")
	v.SetDefault("weather.user_agent", "memory-app/1.0")
	v.SetDefault("weather.timeout", 30*time.Second)
	v.SetDefault("weather.rate_limit", 5.0)
	v.SetDefault("tools", "")
	v.SetDefault("worker_pool_size", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate checks that the server can start with c.
func (c *Config) Validate() error {
	var problems []string

	if c.DocumentID == "" {
		problems = append(problems, "DOCUMENT_ID must be set")
	}

	switch c.Backend {
	case BackendGoogle:
		if c.CredentialsPath == "" {
			problems = append(problems, "GOOGLE_APPLICATION_CREDENTIALS must be set")
		} else if info, err := os.Stat(c.CredentialsPath); err != nil || info.IsDir() {
			problems = append(problems, fmt.Sprintf("credentials file %q does not exist", c.CredentialsPath))
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "sqlite_path must be set for the sqlite backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown backend %q (want google or sqlite)", c.Backend))
	}

	for _, name := range c.Tools {
		if !isKnownTool(name) {
			problems = append(problems, fmt.Sprintf("unknown tool %q", name))
		}
	}

	if c.Weather.Timeout <= 0 {
		problems = append(problems, "weather.timeout must be positive")
	}
	if c.WorkerPoolSize <= 0 {
		problems = append(problems, "worker_pool_size must be positive")
	}

	if len(problems) > 0 {
		return &StartupConfigError{Problems: problems}
	}
	return nil
}

// MemoryEnabled reports whether any document-backed tool is registered.
func (c *Config) MemoryEnabled() bool {
	for _, t := range c.Tools {
		if t == ToolRememberThis || t == ToolSuggestTopic {
			return true
		}
	}
	return false
}

func isKnownTool(name string) bool {
	for _, t := range AllTools {
		if t == name {
			return true
		}
	}
	return false
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
