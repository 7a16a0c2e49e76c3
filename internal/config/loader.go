package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LoaderConfig holds optional file overrides and flags.
type LoaderConfig struct {
	ConfigFile string         // Direct config file path (optional)
	EnvFile    string         // Direct env file path (optional)
	Flags      *pflag.FlagSet // Flags bound to configuration keys (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithFlags binds flags to configuration keys. See FlagKeys.
func WithFlags(flags *pflag.FlagSet) LoaderOption {
	return func(lc *LoaderConfig) { lc.Flags = flags }
}

// FlagKeys maps flag names to the configuration keys they override.
var FlagKeys = map[string]string{
	"input":      "input",
	"pretty":     "pretty",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load loads, defaults, and validates the configuration.
// Sources take precedence in this order: flags, environment variables (including those loaded
// from the .env file), the YAML config file, defaults.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()
	setDefaults(v)

	// 1. Load YAML config first (base configuration)
	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", lc.ConfigFile, err)
		}
	}

	// 2. Load .env file, without overriding variables that are already set
	envFile := lc.EnvFile
	if envFile == "" && fileExists(".env") {
		envFile = ".env"
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	// 3. Enable environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind flags
	if lc.Flags != nil {
		for name, key := range FlagKeys {
			if flag := lc.Flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	// 5. Unmarshal into config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers defaults for all scalar keys, which also makes them known to
// viper's environment lookup.
func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "goseq")
	v.SetDefault("input", "-")
	v.SetDefault("pretty", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.no_color", false)
	v.SetDefault("log.timestamp", true)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
