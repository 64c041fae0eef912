package config

import (
	"fmt"
	"math"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// DefaultPath is where both entrypoints look for the probe configuration,
// relative to the working directory.
const DefaultPath = "config.json"

var requiredKeys = []string{"urls", "timeout", "success_codes", "verify_tls"}

// Config is the probe configuration. It is read once per run and never mutated.
type Config struct {
	URLs         []string `mapstructure:"urls"`
	Timeout      float64  `mapstructure:"timeout"` // seconds
	SuccessCodes []int    `mapstructure:"success_codes"`
	VerifyTLS    bool     `mapstructure:"verify_tls"`
}

// TimeoutDuration converts the configured seconds into a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout * float64(time.Second))
}

// Load reads the JSON configuration at path. There are no defaults: a missing
// file, bad JSON or a missing key is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var missing error
	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			missing = multierr.Append(missing, fmt.Errorf("missing key %q", key))
		}
	}
	if missing != nil {
		return nil, fmt.Errorf("config %s: %w", path, missing)
	}

	// the decoder truncates 200.9 to 200 silently
	if err := wholeNumbers(v.Get("success_codes")); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, strictDecoding); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// strictDecoding turns off the string-to-slice hook and weak conversions, so
// "urls": "x" or "verify_tls": 1 fail instead of being coerced.
func strictDecoding(dc *mapstructure.DecoderConfig) {
	dc.WeaklyTypedInput = false
	dc.DecodeHook = nil
}

func wholeNumbers(raw any) error {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	for _, item := range list {
		if f, ok := item.(float64); ok && f != math.Trunc(f) {
			return fmt.Errorf("success_codes: %v is not an integer", f)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.By(positiveSeconds)),
	)
}

func positiveSeconds(value interface{}) error {
	secs, ok := value.(float64)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a number")
	}
	if secs <= 0 {
		return validation.NewError("validation_invalid_timeout", "must be greater than zero")
	}
	return nil
}
