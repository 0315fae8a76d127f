// Package config loads the run configuration: search terms, outlet lists,
// time window and the knobs for fetching and output. Values come from
// built-in defaults, an optional YAML file and environment overrides, in
// that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"newsclips/internal/gnews"
	"newsclips/internal/outlet"
)

// Validation errors.
var (
	ErrNoTerms        = errors.New("at least one search term is required")
	ErrInvalidWindow  = errors.New("window must be one of: 1d, 3d, 7d, 14d, 30d")
	ErrInvalidMode    = errors.New("match_mode must be 'exact' or 'substring'")
	ErrInvalidRetries = errors.New("retry attempts must be at least 1")
)

type Config struct {
	// Search inputs
	Terms           []string `yaml:"terms"`
	RegionalOutlets []string `yaml:"regional_outlets"`
	ExcludeSources  []string `yaml:"exclude_sources"`
	ExcludeKeywords []string `yaml:"exclude_keywords"`
	Window          string   `yaml:"window"`

	// Classifier policy
	MatchMode string `yaml:"match_mode"`

	// Output
	OutputDir string `yaml:"output_dir"`

	// Fetching
	ResolveUnknownOutlets bool          `yaml:"resolve_unknown_outlets"`
	ScrapeConcurrency     int           `yaml:"scrape_concurrency"`
	RequestTimeout        time.Duration `yaml:"-"`
	RetryAttempts         int           `yaml:"retry_attempts"`
	RetryDelay            time.Duration `yaml:"-"`

	Debug bool `yaml:"-"`
}

// Defaults mirror the lists the tool has always shipped with.
func defaults() *Config {
	return &Config{
		Terms: []string{
			"Jerry Moran", "Senator Jerry Moran", "Senator Moran",
			"Sen. Moran", "Sen. Jerry Moran", "Sens. Moran", "Sens. Jerry Moran",
		},
		RegionalOutlets: []string{
			"Kansas Reflector", "The Topeka Capital-Journal", "The Wichita Eagle",
			"KCLY Radio", "KSN-TV", "KWCH", "Kansas City Star",
			"Lawrence Journal-World", "The Garden City Telegram", "KSNT 27 News",
			"The Hutchinson News", "Salina Journal", "Hays Daily News",
			"Hays Post", "Emporia Gazette", "JC Post", "WIBW",
		},
		ExcludeSources: []string{
			".gov", "Quiver Quantitative", "MSN", "Twin States News",
		},
		Window:            "1d",
		MatchMode:         outlet.ModeExact,
		OutputDir:         ".",
		ScrapeConcurrency: 8,
		RequestTimeout:    30 * time.Second,
		RetryAttempts:     3,
		RetryDelay:        5 * time.Second,
	}
}

// Load builds the configuration. path may be empty; a missing file at the
// default location is not an error, an unreadable or malformed explicit file
// is.
func Load(path string) (*Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = getEnvOrDefault("NEWSCLIPS_CONFIG", "configs/newsclips.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// run on defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.loadEnv()
	return cfg, cfg.Validate()
}

func (c *Config) loadEnv() {
	if v := os.Getenv("NEWSCLIPS_TERMS"); v != "" {
		c.Terms = SplitList(v)
	}
	if v := os.Getenv("NEWSCLIPS_WINDOW"); v != "" {
		c.Window = v
	}
	if v := os.Getenv("NEWSCLIPS_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("NEWSCLIPS_MATCH_MODE"); v != "" {
		c.MatchMode = v
	}
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			c.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			c.RetryAttempts = val
		}
	}
	if v := os.Getenv("RETRY_DELAY_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			c.RetryDelay = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("SCRAPE_CONCURRENCY"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			c.ScrapeConcurrency = val
		}
	}
	if os.Getenv("RESOLVE_UNKNOWN_OUTLETS") == "true" {
		c.ResolveUnknownOutlets = true
	}
	if os.Getenv("DEBUG") == "true" {
		c.Debug = true
	}
}

func (c *Config) Validate() error {
	if len(c.Terms) == 0 {
		return ErrNoTerms
	}
	if !gnews.ValidWindow(c.Window) {
		return ErrInvalidWindow
	}
	if c.MatchMode != outlet.ModeExact && c.MatchMode != outlet.ModeSubstring {
		return ErrInvalidMode
	}
	if c.RetryAttempts < 1 {
		return ErrInvalidRetries
	}
	return nil
}

// SplitList parses a comma-separated list, trimming whitespace and dropping
// empty entries.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
