package paylane

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the process-level client configuration, loaded from PAYLANE_*
// environment variables and an optional paylane.yaml in the working
// directory. Environment values win over the file.
type Config struct {
	Username       string `validate:"required"`
	Password       string `validate:"required"`
	APIURL         string `validate:"omitempty,url"`
	TLSVerify      *bool
	StrictDecoding bool
}

var configKeys = []string{"username", "password", "api_url", "tls_verify", "strict_decoding"}

// LoadConfig reads the environment and the optional config file and
// validates the result. A missing file is fine; missing credentials are
// a validation error.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("paylane")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PAYLANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	cfg := &Config{
		Username:       v.GetString("username"),
		Password:       v.GetString("password"),
		APIURL:         v.GetString("api_url"),
		StrictDecoding: v.GetBool("strict_decoding"),
	}
	if v.IsSet("tls_verify") {
		verify := v.GetBool("tls_verify")
		cfg.TLSVerify = &verify
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for completeness.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Mark(errors.Wrap(err, "invalid paylane configuration"), ErrValidation)
	}
	return nil
}

// Client builds a client from the configuration. Caller options are applied
// after the configuration-derived ones.
func (cfg *Config) Client(opts ...Option) *Client {
	base := make([]Option, 0, len(opts)+3)
	if cfg.APIURL != "" {
		base = append(base, WithBaseURL(cfg.APIURL))
	}
	if cfg.TLSVerify != nil {
		base = append(base, WithTLSVerify(*cfg.TLSVerify))
	}
	if cfg.StrictDecoding {
		base = append(base, WithStrictDecoding())
	}
	return New(cfg.Username, cfg.Password, append(base, opts...)...)
}
