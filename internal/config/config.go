package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Match  MatchConfig  `yaml:"match" mapstructure:"match"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Roster RosterConfig `yaml:"roster" mapstructure:"roster"`
}

// MatchConfig tunes employee matching. The suggestion and auto-match
// thresholds are independent knobs and stay that way: 75 feeds human
// review, 80 gates silent assignment.
type MatchConfig struct {
	AutoMatchThreshold  int  `yaml:"auto_match_threshold" mapstructure:"auto_match_threshold"`
	SuggestionThreshold int  `yaml:"suggestion_threshold" mapstructure:"suggestion_threshold"`
	MinCandidateScore   int  `yaml:"min_candidate_score" mapstructure:"min_candidate_score"`
	MaxSuggestions      int  `yaml:"max_suggestions" mapstructure:"max_suggestions"`
	RequireExact        bool `yaml:"require_exact" mapstructure:"require_exact"`
}

// RosterConfig configures the employee directory source.
type RosterConfig struct {
	// Driver is one of: json, xlsx, sqlite, postgres.
	Driver string `yaml:"driver" mapstructure:"driver"`
	// DSN is a file path for json/xlsx/sqlite, a connection string for postgres.
	DSN string `yaml:"dsn" mapstructure:"dsn"`
}

// BatchConfig configures concurrent batch parsing.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	RatePerSecond  float64  `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst      int      `yaml:"rate_burst" mapstructure:"rate_burst"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("COI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_per_second", 10.0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("match.auto_match_threshold", 80)
	v.SetDefault("match.suggestion_threshold", 75)
	v.SetDefault("match.min_candidate_score", 40)
	v.SetDefault("match.max_suggestions", 5)
	v.SetDefault("match.require_exact", false)
	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("roster.driver", "json")
	v.SetDefault("roster.dsn", "roster.json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
