// Package config loads ambient interpreter settings — the knobs that are not
// part of the Minipar language itself (spec.md's own semantics stay
// untimed/unconfigured) but that a real CLI needs: log level/format, the
// optional diagnostics HTTP server's listen address, and a channel dial/accept
// deadline (runtime/evaluator threads this into c_channel/s_channel so a CI
// run against an unreachable or silent peer fails instead of hanging forever;
// the language's own channel operations otherwise stay untimed per spec.md
// §5). Mirrors the teacher's internal/cli/config.Load: viper defaults, an
// optional YAML file, env override, graceful fallback when no file exists.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full set of ambient settings minipar.yaml (or MINIPAR_* env
// vars) may override.
type Config struct {
	Log            LogConfig         `mapstructure:"log"`
	Diagnostics    DiagnosticsConfig `mapstructure:"diagnostics"`
	ChannelTimeout time.Duration     `mapstructure:"channel_timeout"`
}

// LogConfig controls the zap logger built by internal/logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug|info|warn|error
	Format string `mapstructure:"format"` // console|json
}

// DiagnosticsConfig controls the optional, off-by-default HTTP server in
// internal/diagnostics.
type DiagnosticsConfig struct {
	Addr    string `mapstructure:"addr"` // empty disables the server
	Enabled bool   `mapstructure:"enabled"`
}

// Load reads minipar.yaml/minipar.yml from the current directory (if
// present), layers MINIPAR_* environment variables over it, and falls back
// to defaults when no config file exists — never treating a missing file as
// an error, matching the teacher's config.Load.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("diagnostics.addr", "127.0.0.1:9797")
	v.SetDefault("diagnostics.enabled", false)
	v.SetDefault("channel_timeout", 30*time.Second)

	v.SetConfigName("minipar")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MINIPAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be 'console' or 'json', got: %s", cfg.Log.Format)
	}
	return nil
}
