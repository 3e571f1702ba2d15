package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Logger   LoggerConfig
	Geofence GeofenceConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL            string
	RequestTimeout time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// GeofenceConfig contains the evaluation engine knobs.
//
// BatchSize and LookbackMinutes bound each catch-up run; Interval is the
// scheduler period. HysteresisBufferMeters and SuppressionWindowSeconds are
// defaults applied when a zone does not override them.
type GeofenceConfig struct {
	BatchSize                int
	LookbackMinutes          int
	Interval                 time.Duration
	HysteresisBufferMeters   float64
	SuppressionWindowSeconds int
	ZoneCacheTTL             time.Duration
	PriorHitLookback         time.Duration
}
