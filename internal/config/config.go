// Package config loads the configuration of the goseq command from a YAML file, .env files,
// environment variables, and command line flags.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/deadlyengineer/goseq/internal/logging"
	"github.com/deadlyengineer/goseq/internal/query"
)

// EnvPrefix is the prefix of environment variables that override configuration keys.
// For example, GOSEQ_LOG_LEVEL overrides log.level.
const EnvPrefix = "GOSEQ"

// Config is the configuration of the goseq command.
type Config struct {
	Name   string         `yaml:"name" mapstructure:"name" validate:"required"`
	Input  string         `yaml:"input" mapstructure:"input" validate:"required"` // "-" reads stdin
	Pretty bool           `yaml:"pretty" mapstructure:"pretty"`
	Log    logging.Config `yaml:"log" mapstructure:"log"`
	Query  query.Spec     `yaml:"query" mapstructure:"query"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "goseq"
	}
	if c.Input == "" {
		c.Input = "-"
	}
	c.Log.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return validationError(err)
	}
	return c.Log.Validate()
}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validationError converts validator errors into a single readable error.
func validationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validation failed: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msg := e.Namespace() + ": failed " + e.Tag()
		if e.Param() != "" {
			msg += "=" + e.Param()
		}
		messages = append(messages, msg)
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
