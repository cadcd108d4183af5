// Package config loads server configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// DBPath is the sqlite database file. Parent directories are created.
	DBPath string `yaml:"db_path"`

	// StaticDir is the directory holding the site's static bundle.
	StaticDir string `yaml:"static_dir"`

	// GuestPassword is the shared secret guests enter at the gate.
	GuestPassword string `yaml:"guest_password"`

	// AdminPassword is the admin secret. A bcrypt hash (the usual "$2"
	// prefix) is accepted in place of the plain secret.
	AdminPassword string `yaml:"admin_password"`

	// SessionSecret signs session tokens.
	SessionSecret string `yaml:"session_secret"`

	// SessionTTL bounds how long an issued session stays valid.
	SessionTTL time.Duration `yaml:"session_ttl"`

	// RequireInviteeMatch enables the name-verified gate variant: guests
	// must supply a last name present on the invitee list in addition to
	// the shared secret.
	RequireInviteeMatch bool `yaml:"require_invitee_match"`
}

const (
	defaultAddr       = ":8080"
	defaultStaticDir  = "./static"
	defaultSessionTTL = 12 * time.Hour
)

// Load reads the YAML file at path (or CONFIG_PATH if path is empty), applies
// environment overrides, and validates the result. A missing file is only an
// error when it was named explicitly; configuration may come entirely from
// the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:       defaultAddr,
		StaticDir:  defaultStaticDir,
		SessionTTL: defaultSessionTTL,
	}

	explicit := path != ""
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Addr = getEnv("ADDR", c.Addr)
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.StaticDir = getEnv("STATIC_DIR", c.StaticDir)
	c.GuestPassword = getEnv("GUEST_PASSWORD", c.GuestPassword)
	c.AdminPassword = getEnv("ADMIN_PASSWORD", c.AdminPassword)
	c.SessionSecret = getEnv("SESSION_SECRET", c.SessionSecret)

	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.SessionTTL = d
		}
	}
	if v := os.Getenv("REQUIRE_INVITEE_MATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.RequireInviteeMatch = b
		}
	}
}

// validate enforces the fatal startup conditions: nothing can work without
// the store path and the three secrets, so refusing to start beats limping.
func (c *Config) validate() error {
	var missing []string
	if c.DBPath == "" {
		missing = append(missing, "db_path (DB_PATH)")
	}
	if c.GuestPassword == "" {
		missing = append(missing, "guest_password (GUEST_PASSWORD)")
	}
	if c.AdminPassword == "" {
		missing = append(missing, "admin_password (ADMIN_PASSWORD)")
	}
	if c.SessionSecret == "" {
		missing = append(missing, "session_secret (SESSION_SECRET)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v", missing)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %v", c.SessionTTL)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
