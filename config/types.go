package config

import "time"

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int `yaml:"port" validate:"gt=0"`
	ReadTimeoutMS  int `yaml:"readTimeoutMS" split_words:"true" validate:"gte=0"`
	WriteTimeoutMS int `yaml:"writeTimeoutMS" split_words:"true" validate:"gte=0"`
}

// LoggingConfig selects the log level and output format
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

// GTFSConfig contains GTFS static feed configuration
type GTFSConfig struct {
	StaticURL         string `yaml:"staticURL" split_words:"true" validate:"omitempty,url"`
	AgencyID          string `yaml:"agency_id" split_words:"true" validate:"omitempty"`
	RefreshIntervalMS int    `yaml:"refreshIntervalMS" split_words:"true" validate:"gte=0"`
	TimeoutMS         int    `yaml:"timeoutMS" split_words:"true" validate:"gte=0"`
}

// GTFSRTConfig contains GTFS-Realtime service alerts configuration
type GTFSRTConfig struct {
	ServiceAlertsURL string `yaml:"serviceAlertsURL" split_words:"true" validate:"omitempty,url"`
	ReadIntervalMS   int    `yaml:"readIntervalMS" split_words:"true" validate:"gte=0"`
	TimeoutMS        int    `yaml:"timeoutMS" split_words:"true" validate:"gte=0"`
}

// InfoPointConfig contains Avail InfoPoint REST API configuration
type InfoPointConfig struct {
	URL                string `yaml:"url" validate:"omitempty,url"`
	RoutesIntervalMS   int    `yaml:"routesIntervalMS" split_words:"true" validate:"gte=0"`
	MessagesIntervalMS int    `yaml:"messagesIntervalMS" split_words:"true" validate:"gte=0"`
	TimeoutMS          int    `yaml:"timeoutMS" split_words:"true" validate:"gte=0"`
}

// BoardConfig contains defaults for boards served over HTTP
type BoardConfig struct {
	// Routes is a comma separated whitelist of route abbreviations. Empty means
	// no filtering.
	Routes              string `yaml:"routes"`
	AllowSourceOverride bool   `yaml:"allowSourceOverride" split_words:"true"`
	MaxBoards           int    `yaml:"maxBoards" split_words:"true" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server" validate:"required"`
	Logging   LoggingConfig   `yaml:"logging"`
	GTFS      GTFSConfig      `yaml:"gtfs"`
	GTFSRT    GTFSRTConfig    `yaml:"gtfsrt"`
	InfoPoint InfoPointConfig `yaml:"infoPoint" split_words:"true"`
	Board     BoardConfig     `yaml:"board"`
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func (c ServerConfig) ReadTimeout() time.Duration  { return ms(c.ReadTimeoutMS) }
func (c ServerConfig) WriteTimeout() time.Duration { return ms(c.WriteTimeoutMS) }

func (c GTFSConfig) RefreshInterval() time.Duration { return ms(c.RefreshIntervalMS) }
func (c GTFSConfig) Timeout() time.Duration         { return ms(c.TimeoutMS) }

func (c GTFSRTConfig) ReadInterval() time.Duration { return ms(c.ReadIntervalMS) }
func (c GTFSRTConfig) Timeout() time.Duration      { return ms(c.TimeoutMS) }

func (c InfoPointConfig) RoutesInterval() time.Duration   { return ms(c.RoutesIntervalMS) }
func (c InfoPointConfig) MessagesInterval() time.Duration { return ms(c.MessagesIntervalMS) }
func (c InfoPointConfig) Timeout() time.Duration          { return ms(c.TimeoutMS) }
