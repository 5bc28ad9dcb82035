package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRemote   = "remote"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Database  DatabaseConfig  `yaml:"database"`
	Remote    RemoteConfig    `yaml:"remote"`
	Capture   CaptureConfig   `yaml:"capture"`
	Cache     CacheConfig     `yaml:"cache"`
	Recording RecordingConfig `yaml:"recording"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// UploadsPerMinute throttles recording uploads per client. 0 disables it.
	UploadsPerMinute int `yaml:"uploads_per_minute" env:"SERVER_UPLOADS_PER_MINUTE" env-default:"30"`
}

// StoreConfig selects and configures the backing store.
type StoreConfig struct {
	Driver      string        `yaml:"driver"       env:"STORE_DRIVER"       env-default:"sqlite"`
	Path        string        `yaml:"path"         env:"STORE_PATH"         env-default:"./recitation.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"STORE_BUSY_TIMEOUT" env-default:"5s"`
}

// DatabaseConfig holds PostgreSQL connection settings for the remote-DB variant.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RemoteConfig points the client at a running recitation server.
type RemoteConfig struct {
	BaseURL string        `yaml:"base_url" env:"REMOTE_BASE_URL"`
	Timeout time.Duration `yaml:"timeout"  env:"REMOTE_TIMEOUT"  env-default:"30s"`
}

// CaptureConfig holds microphone capture settings.
type CaptureConfig struct {
	FFmpegPath     string        `yaml:"ffmpeg_path"     env:"CAPTURE_FFMPEG_PATH"`
	Device         string        `yaml:"device"          env:"CAPTURE_DEVICE"`
	MimeTypesRaw   string        `yaml:"mime_types"      env:"CAPTURE_MIME_TYPES"      env-default:"audio/webm,audio/webm;codecs=opus,audio/ogg;codecs=opus,audio/mp4,audio/mpeg,audio/wav"`
	TickInterval   time.Duration `yaml:"tick_interval"   env:"CAPTURE_TICK_INTERVAL"   env-default:"100ms"`
	SampleRate     int           `yaml:"sample_rate"     env:"CAPTURE_SAMPLE_RATE"     env-default:"16000"`
	StopTimeout    time.Duration `yaml:"stop_timeout"    env:"CAPTURE_STOP_TIMEOUT"    env-default:"3s"`

	// MimeTypes is parsed from MimeTypesRaw during validation.
	MimeTypes []string `yaml:"-" env:"-"`
}

// CacheConfig holds the text list cache settings.
type CacheConfig struct {
	TextListTTL time.Duration `yaml:"text_list_ttl" env:"CACHE_TEXT_LIST_TTL" env-default:"5m"`
}

// RecordingConfig bounds accepted recordings.
type RecordingConfig struct {
	MaxDuration time.Duration `yaml:"max_duration" env:"RECORDING_MAX_DURATION" env-default:"1h"`
	MaxBytes    int64         `yaml:"max_bytes"    env:"RECORDING_MAX_BYTES"    env-default:"104857600"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"10"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(strings.TrimSpace(s.Host), strconv.Itoa(s.Port))
}
