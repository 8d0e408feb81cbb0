package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendPostgres = "postgres"
	BackendHTTP     = "http"
	BackendCSV      = "csv"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress              string        `mapstructure:"SERVER_ADDRESS"`
	DBSource                   string        `mapstructure:"DB_SOURCE"`
	GazetteerBackend           string        `mapstructure:"GAZETTEER_BACKEND"`
	GazetteerTable             string        `mapstructure:"GAZETTEER_TABLE"`
	GazetteerBaseURL           string        `mapstructure:"GAZETTEER_BASE_URL"`
	GazetteerCSV               string        `mapstructure:"GAZETTEER_CSV"`
	GazetteerCSVEncoding       string        `mapstructure:"GAZETTEER_CSV_ENCODING"`
	GazetteerTimeout           time.Duration `mapstructure:"GAZETTEER_TIMEOUT"`
	GazetteerRateInterval      time.Duration `mapstructure:"GAZETTEER_RATE_INTERVAL"`
	GazetteerCache             bool          `mapstructure:"GAZETTEER_CACHE"`
	CorrectIncompleteCityNames bool          `mapstructure:"CORRECT_INCOMPLETE_CITY_NAMES"`
	ParserVerbose              bool          `mapstructure:"PARSER_VERBOSE"`
	BatchConcurrency           int           `mapstructure:"BATCH_CONCURRENCY"`
	LogLevel                   string        `mapstructure:"LOG_LEVEL"`
	LogFormat                  string        `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":                "0.0.0.0:8080",
	"DB_SOURCE":                     "",
	"GAZETTEER_BACKEND":             BackendPostgres,
	"GAZETTEER_TABLE":               "locations",
	"GAZETTEER_BASE_URL":            "https://yuukitoriyama.github.io/geolonia-japanese-addresses-accompanist",
	"GAZETTEER_CSV":                 "",
	"GAZETTEER_CSV_ENCODING":        "utf8",
	"GAZETTEER_TIMEOUT":             "10s",
	"GAZETTEER_RATE_INTERVAL":       "100ms",
	"GAZETTEER_CACHE":               true,
	"CORRECT_INCOMPLETE_CITY_NAMES": true,
	"PARSER_VERBOSE":                false,
	"BATCH_CONCURRENCY":             8,
	"LOG_LEVEL":                     "info",
	"LOG_FORMAT":                    "json",
}

// LoadConfig reads app.env from path, then lets environment variables override it.
// A missing config file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch c.GazetteerBackend {
	case BackendPostgres:
		if c.DBSource == "" {
			return errors.New("config: DB_SOURCE is required for the postgres gazetteer")
		}
	case BackendHTTP:
		if c.GazetteerBaseURL == "" {
			return errors.New("config: GAZETTEER_BASE_URL is required for the http gazetteer")
		}
	case BackendCSV:
		if c.GazetteerCSV == "" {
			return errors.New("config: GAZETTEER_CSV is required for the csv gazetteer")
		}
		if c.GazetteerCSVEncoding != "utf8" && c.GazetteerCSVEncoding != "sjis" {
			return fmt.Errorf("config: unknown GAZETTEER_CSV_ENCODING %q", c.GazetteerCSVEncoding)
		}
	default:
		return fmt.Errorf("config: unknown GAZETTEER_BACKEND %q", c.GazetteerBackend)
	}
	if c.GazetteerTimeout <= 0 {
		return errors.New("config: GAZETTEER_TIMEOUT must be positive")
	}
	if c.GazetteerRateInterval <= 0 {
		return errors.New("config: GAZETTEER_RATE_INTERVAL must be positive")
	}
	if c.BatchConcurrency <= 0 {
		return errors.New("config: BATCH_CONCURRENCY must be positive")
	}
	return nil
}
