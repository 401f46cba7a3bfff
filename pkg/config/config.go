// Package config loads the service configuration from a yaml file.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/legiscope/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Source  SourceConfig  `yaml:"source" json:"source" jsonschema:"description=Legislature site access"`
	Cache   CacheConfig   `yaml:"cache" json:"cache" jsonschema:"description=Document cache configuration"`
	Members MembersConfig `yaml:"members" json:"members" jsonschema:"description=Member list extraction"`
	Warmer  WarmerConfig  `yaml:"warmer" json:"warmer" jsonschema:"description=Background cache warmer"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"required,default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public URL of this service used in RSS links"`
}

// SourceConfig holds legislature site settings
type SourceConfig struct {
	BaseURL        string        `yaml:"base_url" json:"base_url" jsonschema:"required,default=https://www.ncleg.gov,description=Legislature site"`
	WebServicesURL string        `yaml:"webservices_url" json:"webservices_url" jsonschema:"required,default=https://webservices.ncleg.gov,description=Legislature web services"`
	SessionYear    string        `yaml:"session_year" json:"session_year" jsonschema:"required,default=2025,pattern=^[0-9]{4}$,description=Legislative session year"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for HTTP requests"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	Retries        int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Attempts per request on network and 5xx errors"`
	RetryDelay     time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=500ms,description=Initial delay between attempts"`
}

// CacheConfig holds document cache settings
type CacheConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Keep fetched documents in sqlite"`
	DSN           string        `yaml:"dsn" json:"dsn" jsonschema:"default=file:legiscope.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns  int           `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=4,description=Maximum number of open connections"`
	MaxIdleConns  int           `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=2,description=Maximum number of idle connections"`
	ConnLifetime  time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"description=Maximum connection lifetime, 0 keeps connections open"`
	FeedTTL       time.Duration `yaml:"feed_ttl" json:"feed_ttl" jsonschema:"default=5m,description=Feed freshness, 0 disables caching of feeds"`
	BillTTL       time.Duration `yaml:"bill_ttl" json:"bill_ttl" jsonschema:"default=10m,description=Bill page freshness"`
	DigestTTL     time.Duration `yaml:"digest_ttl" json:"digest_ttl" jsonschema:"default=10m,description=Bill digest freshness"`
	MembersTTL    time.Duration `yaml:"members_ttl" json:"members_ttl" jsonschema:"default=24h,description=Member list freshness"`
	CommitteesTTL time.Duration `yaml:"committees_ttl" json:"committees_ttl" jsonschema:"default=1h,description=Committee list freshness"`
	Retention     time.Duration `yaml:"retention" json:"retention" jsonschema:"default=72h,description=Documents older than this are purged by the warmer"`
}

// MembersConfig selects the member list strategy
type MembersConfig struct {
	Strategy string `yaml:"strategy" json:"strategy" jsonschema:"default=block,enum=block,enum=table,description=Member list page variant"`
}

// WarmerConfig holds cache warmer settings
type WarmerConfig struct {
	Enabled    bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Periodically refresh cached documents"`
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=15m,description=Refresh interval"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,minimum=1,description=Maximum concurrent fetches"`
	Feeds      []string      `yaml:"feeds" json:"feeds" jsonschema:"description=Feed kinds to refresh"`
	Members    bool          `yaml:"members" json:"members" jsonschema:"default=true,description=Refresh both member lists"`
}

var sessionYearRe = regexp.MustCompile(`^\d{4}$`)

// Default returns configuration with all defaults applied, used when no config file is given
func Default() *Config {
	cfg := preset()
	setDefaults(&cfg)
	return &cfg
}

// preset returns config with defaults of fields where zero is a valid setting,
// yaml keeps them unless the file sets them explicitly
func preset() Config {
	return Config{
		Cache: CacheConfig{
			FeedTTL:       5 * time.Minute,
			BillTTL:       10 * time.Minute,
			DigestTTL:     10 * time.Minute,
			MembersTTL:    24 * time.Hour,
			CommitteesTTL: time.Hour,
		},
		Warmer: WarmerConfig{Members: true},
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := preset()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// source
	if cfg.Source.BaseURL == "" {
		cfg.Source.BaseURL = domain.DefaultBaseURL
	}
	if cfg.Source.WebServicesURL == "" {
		cfg.Source.WebServicesURL = "https://webservices.ncleg.gov"
	}
	if cfg.Source.SessionYear == "" {
		cfg.Source.SessionYear = "2025"
	}
	if cfg.Source.Timeout == 0 {
		cfg.Source.Timeout = 30 * time.Second
	}
	if cfg.Source.Retries == 0 {
		cfg.Source.Retries = 3
	}
	if cfg.Source.RetryDelay == 0 {
		cfg.Source.RetryDelay = 500 * time.Millisecond
	}

	// cache
	if cfg.Cache.DSN == "" {
		cfg.Cache.DSN = "file:legiscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Cache.MaxOpenConns == 0 {
		cfg.Cache.MaxOpenConns = 4
	}
	if cfg.Cache.MaxIdleConns == 0 {
		cfg.Cache.MaxIdleConns = 2
	}
	if cfg.Cache.Retention == 0 {
		cfg.Cache.Retention = 72 * time.Hour
	}

	// members
	if cfg.Members.Strategy == "" {
		cfg.Members.Strategy = "block"
	}

	// warmer
	if cfg.Warmer.Interval == 0 {
		cfg.Warmer.Interval = 15 * time.Minute
	}
	if cfg.Warmer.MaxWorkers == 0 {
		cfg.Warmer.MaxWorkers = 4
	}
	if len(cfg.Warmer.Feeds) == 0 {
		cfg.Warmer.Feeds = []string{"all"}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if !sessionYearRe.MatchString(cfg.Source.SessionYear) {
		return fmt.Errorf("source.session_year must be a 4-digit year, got %q", cfg.Source.SessionYear)
	}
	if cfg.Source.Timeout < time.Second {
		return fmt.Errorf("source timeout must be at least 1 second")
	}
	if cfg.Source.Retries < 1 {
		return fmt.Errorf("source.retries must be at least 1")
	}
	for kind, ttl := range cfg.CacheTTL() {
		if ttl < 0 {
			return fmt.Errorf("cache ttl of %s must not be negative", kind)
		}
	}
	if cfg.Warmer.Enabled {
		if cfg.Warmer.Interval < time.Minute {
			return fmt.Errorf("warmer interval must be at least 1 minute")
		}
		if cfg.Warmer.MaxWorkers < 1 {
			return fmt.Errorf("warmer.max_workers must be at least 1")
		}
		if !cfg.Cache.Enabled {
			return fmt.Errorf("warmer requires cache.enabled")
		}
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetSourceConfig returns legislature site configuration
func (c *Config) GetSourceConfig() SourceConfig {
	return c.Source
}

// GetMembersStrategy returns the configured member list strategy name
func (c *Config) GetMembersStrategy() string {
	return c.Members.Strategy
}

// CacheTTL returns document freshness per kind
func (c *Config) CacheTTL() map[domain.DocumentKind]time.Duration {
	return map[domain.DocumentKind]time.Duration{
		domain.KindFeed:       c.Cache.FeedTTL,
		domain.KindBill:       c.Cache.BillTTL,
		domain.KindDigest:     c.Cache.DigestTTL,
		domain.KindMembers:    c.Cache.MembersTTL,
		domain.KindCommittees: c.Cache.CommitteesTTL,
	}
}

// GetPublicURL returns the url this service is reachable at
func (c *Config) GetPublicURL() string {
	return c.Server.BaseURL
}
