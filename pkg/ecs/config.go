package ecs

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// managerConfig holds the configuration of an EntityManager.
// Configuration can be set via environment variables with the specified defaults.
type managerConfig struct {
	// Initial length of the sparse array of every component store.
	SparseCapacity int `env:"ECS_SPARSE_CAPACITY" envDefault:"128"`

	// Reuse the ids of killed entities. Entities carry no generation, so a handle kept past
	// KillEntity refers to whichever entity reuses its id.
	RecycleEntityIDs bool `env:"ECS_RECYCLE_ENTITY_IDS" envDefault:"false"`

	// Log level configuration ("debug", "info", "warn", "error").
	LogLevel string `env:"ECS_LOG_LEVEL" envDefault:"info"`

	// Log format configuration ("json", "pretty").
	LogFormat string `env:"ECS_LOG_FORMAT" envDefault:"json"`
}

// loadManagerConfig loads the manager configuration from environment variables. The log settings
// are only validated when the manager builds its own logger.
func loadManagerConfig(customLogger bool) (managerConfig, error) {
	cfg := managerConfig{}

	if err := env.Parse(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to parse manager config")
	}

	if err := cfg.validate(customLogger); err != nil {
		return cfg, eris.Wrap(err, "failed to validate config")
	}

	return cfg, nil
}

// validate performs validation on the loaded configuration.
func (cfg *managerConfig) validate(customLogger bool) error {
	if cfg.SparseCapacity < 0 {
		return eris.Errorf("sparse capacity cannot be negative: %d", cfg.SparseCapacity)
	}
	if customLogger {
		return nil
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return eris.Errorf("invalid log level: %s (must be 'debug', 'info', 'warn', or 'error')", cfg.LogLevel)
	}
	if ParseLogFormat(cfg.LogFormat) == LogFormatUndefined {
		return eris.Errorf("invalid log format: %s (must be 'json' or 'pretty')", cfg.LogFormat)
	}
	return nil
}

// applyToOptions applies the configuration values to the given ManagerOptions.
func (cfg *managerConfig) applyToOptions(opt *ManagerOptions) {
	opt.SparseCapacity = cfg.SparseCapacity
	opt.RecycleEntityIDs = cfg.RecycleEntityIDs
	opt.LogLevel = cfg.LogLevel
	opt.LogFormat = ParseLogFormat(cfg.LogFormat)
}

// ManagerOptions configures an EntityManager. Zero fields fall back to the environment config.
type ManagerOptions struct {
	SparseCapacity int // Initial length of the sparse array of every component store

	// RecycleEntityIDs reuses the ids of killed entities, oldest first. Entities carry no
	// generation counter, so a stale handle to a killed entity aliases the entity that reuses its
	// id: calling KillEntity or AddComponent with it acts on the new entity.
	RecycleEntityIDs bool

	LogLevel  string          // Log level, ignored when Logger is set
	LogFormat LogFormat       // Log output format, ignored when Logger is set
	Logger    *zerolog.Logger // Logger to use instead of building one
}

// newDefaultManagerOptions creates ManagerOptions with default values.
func newDefaultManagerOptions() ManagerOptions {
	// Set these to invalid values so a missing config is caught by validate.
	return ManagerOptions{
		SparseCapacity:   -1,
		RecycleEntityIDs: false,
		LogLevel:         "",
		LogFormat:        LogFormatUndefined,
		Logger:           nil,
	}
}

// apply merges the given options into the current options, overriding non-zero values.
func (opt *ManagerOptions) apply(newOpt ManagerOptions) {
	if newOpt.SparseCapacity != 0 {
		opt.SparseCapacity = newOpt.SparseCapacity
	}
	if newOpt.RecycleEntityIDs {
		opt.RecycleEntityIDs = true
	}
	if newOpt.LogLevel != "" {
		opt.LogLevel = newOpt.LogLevel
	}
	if newOpt.LogFormat != LogFormatUndefined {
		opt.LogFormat = newOpt.LogFormat
	}
	if newOpt.Logger != nil {
		opt.Logger = newOpt.Logger
	}
}

// validate checks that all required options are set and valid.
func (opt *ManagerOptions) validate() error {
	if opt.SparseCapacity < 0 {
		return eris.Errorf("sparse capacity cannot be negative: %d", opt.SparseCapacity)
	}
	if opt.Logger != nil {
		return nil
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(opt.LogLevel)); err != nil {
		return eris.Errorf("invalid log level: %s (must be 'debug', 'info', 'warn', or 'error')", opt.LogLevel)
	}
	if opt.LogFormat == LogFormatUndefined {
		return eris.New("log format must be specified")
	}
	return nil
}

// LogFormat represents the log output format.
type LogFormat uint8

const (
	LogFormatUndefined LogFormat = iota // Used as the zero value
	LogFormatJSON                       // Outputs structured JSON logs
	LogFormatPretty                     // Outputs human-readable console logs
)

const (
	jsonFormatString      = "json"
	prettyFormatString    = "pretty"
	undefinedFormatString = "undefined"
)

func (f LogFormat) String() string {
	switch f {
	case LogFormatUndefined:
		return undefinedFormatString
	case LogFormatJSON:
		return jsonFormatString
	case LogFormatPretty:
		return prettyFormatString
	default:
		return undefinedFormatString
	}
}

// ParseLogFormat converts a string to LogFormat enum.
func ParseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case jsonFormatString:
		return LogFormatJSON
	case prettyFormatString:
		return LogFormatPretty
	default:
		return LogFormatUndefined
	}
}
