package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. DETOURS_SERVER_PORT.
const EnvPrefix = "DETOURS"

// DefaultInfoPointURL is the Avail InfoPoint installation used when none is
// configured.
const DefaultInfoPointURL = "https://bustracker.pvta.com/InfoPoint/rest/"

const (
	defaultPort               = 16181
	defaultReadTimeoutMS      = 10_000
	defaultWriteTimeoutMS     = 30_000
	defaultScheduleRefreshMS  = 24 * 60 * 60 * 1000
	defaultRealtimeIntervalMS = 30_000
	defaultFetchTimeoutMS     = 15_000
	defaultScheduleTimeoutMS  = 60_000
	defaultMaxBoards          = 16
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads config.yml from the working directory, applies .env and
// environment overrides and validates the result. A missing config file is not
// an error; defaults and the environment are used instead.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err == nil {
			data = b
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	cfg, err := parse(data)
	if err != nil {
		return err
	}
	Config = *cfg
	return nil
}

// LoadAppConfigFrom is LoadAppConfig for an explicit file, which must exist.
func LoadAppConfigFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg, err := parse(data)
	if err != nil {
		return err
	}
	Config = *cfg
	return nil
}

func parse(data []byte) (*AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	applyDefaults(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.ReadTimeoutMS == 0 {
		cfg.Server.ReadTimeoutMS = defaultReadTimeoutMS
	}
	if cfg.Server.WriteTimeoutMS == 0 {
		cfg.Server.WriteTimeoutMS = defaultWriteTimeoutMS
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.GTFS.RefreshIntervalMS == 0 {
		cfg.GTFS.RefreshIntervalMS = defaultScheduleRefreshMS
	}
	if cfg.GTFS.TimeoutMS == 0 {
		cfg.GTFS.TimeoutMS = defaultScheduleTimeoutMS
	}
	if cfg.GTFSRT.ReadIntervalMS == 0 {
		cfg.GTFSRT.ReadIntervalMS = defaultRealtimeIntervalMS
	}
	if cfg.GTFSRT.TimeoutMS == 0 {
		cfg.GTFSRT.TimeoutMS = defaultFetchTimeoutMS
	}
	if cfg.InfoPoint.URL == "" {
		cfg.InfoPoint.URL = DefaultInfoPointURL
	}
	if cfg.InfoPoint.RoutesIntervalMS == 0 {
		cfg.InfoPoint.RoutesIntervalMS = defaultScheduleRefreshMS
	}
	if cfg.InfoPoint.MessagesIntervalMS == 0 {
		cfg.InfoPoint.MessagesIntervalMS = defaultRealtimeIntervalMS
	}
	if cfg.InfoPoint.TimeoutMS == 0 {
		cfg.InfoPoint.TimeoutMS = defaultFetchTimeoutMS
	}
	if cfg.Board.MaxBoards == 0 {
		cfg.Board.MaxBoards = defaultMaxBoards
	}
}
