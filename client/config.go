package client

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/AradhyaSharma31/pulsar/errors"
	"github.com/AradhyaSharma31/pulsar/logger"
)

// Config configures a client instance.
type Config struct {
	// ServiceURL is the broker endpoint, e.g. "pulsar://localhost:6650".
	ServiceURL string `yaml:"service_url" mapstructure:"service_url" validate:"required,uri"`

	// OperationTimeout bounds client operations. Defaults to 30s.
	OperationTimeout time.Duration `yaml:"operation_timeout" mapstructure:"operation_timeout"`

	// Authentication selects and configures the authentication provider.
	Authentication AuthenticationConfig `yaml:"authentication" mapstructure:"authentication"`

	// Logging configures the client logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// AuthenticationConfig selects an authentication provider by plugin name.
// An empty plugin means no authentication.
type AuthenticationConfig struct {
	Plugin string            `yaml:"plugin" mapstructure:"plugin"`
	Params map[string]string `yaml:"params" mapstructure:"params"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = 30 * time.Second
	}
	c.Logging.ApplyDefaults()
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the configuration using struct tags.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return errors.Configuration(first.Field(), "failed "+first.Tag()+" validation")
		}
		return errors.Configuration("config", err.Error())
	}
	return c.Logging.Validate()
}
