package config

import (
	"os"
	"path/filepath"

	"github.com/tenantops/dugrow/pkg/errors"
	"github.com/tenantops/dugrow/pkg/types"
)

// Collector backends.
const (
	BackendLocal   = "local"
	BackendCommand = "command"
)

// Config is the validated runtime configuration, assembled from the
// embedded defaults, an optional TOML file, and environment
// overrides. It is loaded once per run and passed in explicitly so
// tests can build configurations in isolation.
type Config struct {
	// StateDir is where snapshot files live, one subdirectory per
	// tenant. Empty means the XDG state home default.
	StateDir string `koanf:"state_dir"`

	Collector CollectorConfig `koanf:"collector"`
	SMTP      SMTPConfig      `koanf:"smtp"`
	Tenants   []types.Tenant  `koanf:"tenant"`
}

// CollectorConfig selects the collection backend.
type CollectorConfig struct {
	// Backend is "local" or "command".
	Backend string `koanf:"backend"`

	// Command is the argv prefix for the command backend; the tenant
	// root is appended as the final argument.
	Command []string `koanf:"command"`
}

// SMTPConfig configures mail delivery. Every field maps to an SMTP_*
// environment variable.
type SMTPConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"user"`
	Password string `koanf:"pass"`
	From     string `koanf:"from"`
	StartTLS bool   `koanf:"starttls"`
}

// Tenant returns the tenant with the given id, if configured.
func (c *Config) Tenant(id string) (types.Tenant, bool) {
	for _, t := range c.Tenants {
		if t.ID == id {
			return t, true
		}
	}
	return types.Tenant{}, false
}

// validate enforces the presence checks: at least one tenant, unique
// non-empty ids, a root per tenant, a known backend. A missing notify
// address is legal and degrades delivery to the console at run time.
func (c *Config) validate() error {
	if len(c.Tenants) == 0 {
		return errors.New(errors.ErrConfigValid, "no tenants configured")
	}
	seen := make(map[string]struct{}, len(c.Tenants))
	for i, t := range c.Tenants {
		if t.ID == "" {
			return errors.Newf(errors.ErrConfigValid, "tenant #%d has no id", i+1)
		}
		if _, dup := seen[t.ID]; dup {
			return errors.Newf(errors.ErrConfigValid, "duplicate tenant id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.Root == "" {
			return errors.Newf(errors.ErrConfigValid, "tenant %q has no root path", t.ID)
		}
	}

	switch c.Collector.Backend {
	case BackendLocal:
	case BackendCommand:
		if len(c.Collector.Command) == 0 {
			return errors.New(errors.ErrConfigValid, "collector backend is \"command\" but no command is configured")
		}
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown collector backend %q", c.Collector.Backend)
	}
	return nil
}

// defaultStateDir resolves $XDG_STATE_HOME/dugrow/snapshots with the
// usual ~/.local/state fallback.
func defaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("dugrow", "snapshots")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "dugrow", "snapshots")
}
