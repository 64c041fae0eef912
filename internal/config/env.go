package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/hamed0406/healthcheck/internal/httpserver"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Runtime holds process settings read from the environment. The probe
// configuration itself always comes from the config file.
type Runtime struct {
	Addr           string // API bind address, e.g., "127.0.0.1:8080" or ":8080" (Docker)
	LogDir         string
	LogLevel       string
	RateLimitRPM   int // requests per minute per client IP; 0 disables
	RateLimitBurst int
}

func FromEnv() (Runtime, error) {
	v := viper.New()
	v.SetDefault("api_addr", "127.0.0.1:8080")
	v.SetDefault("log_dir", "logs")
	v.SetDefault("log_level", LogLevelInfo)
	v.SetDefault("rate_limit_rpm", 0)
	v.SetDefault("rate_limit_burst", 10)
	v.AutomaticEnv()

	rt := Runtime{
		Addr:           v.GetString("api_addr"),
		LogDir:         v.GetString("log_dir"),
		LogLevel:       v.GetString("log_level"),
		RateLimitRPM:   v.GetInt("rate_limit_rpm"),
		RateLimitBurst: v.GetInt("rate_limit_burst"),
	}

	if err := rt.Validate(); err != nil {
		return Runtime{}, err
	}
	return rt, nil
}

func (r Runtime) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Addr, validation.Required, validation.By(httpserver.ValidateAddr)),
		validation.Field(&r.LogDir, validation.Required),
		validation.Field(&r.LogLevel,
			validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
		),
		validation.Field(&r.RateLimitRPM, validation.Min(0)),
		validation.Field(&r.RateLimitBurst, validation.Required, validation.Min(1)),
	)
}

// Logging is the subset of the environment the one-shot CLI reads. Nothing
// is defaulted or validated: an empty Dir means no log file, and an unknown
// level falls back to info in the logger.
type Logging struct {
	Dir   string
	Level string
}

func LoggingFromEnv() Logging {
	v := viper.New()
	v.AutomaticEnv()
	return Logging{
		Dir:   v.GetString("log_dir"),
		Level: v.GetString("log_level"),
	}
}
