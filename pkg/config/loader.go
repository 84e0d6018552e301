package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/tenantops/dugrow/pkg/errors"
)

//go:embed defaults.toml
var defaultConfig []byte

// EnvConfigPath names the environment variable that points at the
// config file when --config is not given.
const EnvConfigPath = "DUGROW_CONFIG"

// Load assembles the configuration in layers: embedded defaults, then
// the TOML file, then environment overrides. path may be empty, in
// which case $DUGROW_CONFIG and the XDG config home are consulted; an
// explicitly given path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = defaultConfigPath()
	}
	if _, err := os.Stat(path); err != nil {
		if explicit || os.Getenv(EnvConfigPath) != "" {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path)
		}
		return nil, errors.Newf(errors.ErrConfigLoad, "no config file at %s; point --config or %s at one", path, EnvConfigPath)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	// SMTP_HOST -> smtp.host, SMTP_STARTTLS -> smtp.starttls, ...
	if err := k.Load(env.Provider("SMTP_", ".", func(s string) string {
		return "smtp." + strings.ToLower(strings.TrimPrefix(s, "SMTP_"))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read SMTP environment")
	}

	// DUGROW_STATE_DIR -> state_dir. DUGROW_CONFIG is handled above
	// and must not leak into the key space.
	if err := k.Load(env.Provider("DUGROW_STATE_DIR", ".", func(s string) string {
		return "state_dir"
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read environment")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.StateDir == "" {
		cfg.StateDir = defaultStateDir()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("dugrow", "config.toml")
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dugrow", "config.toml")
}
