package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Store.Path) == "" {
			return fmt.Errorf("store.path is required for driver %q", DriverSQLite)
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", DriverPostgres)
		}
	case DriverRemote:
		if c.Remote.BaseURL == "" {
			return fmt.Errorf("remote.base_url is required for driver %q", DriverRemote)
		}
	default:
		return fmt.Errorf("store.driver must be one of sqlite, postgres, remote (got %q)", c.Store.Driver)
	}

	if c.Server.UploadsPerMinute < 0 {
		return fmt.Errorf("server.uploads_per_minute must be >= 0 (got %d)", c.Server.UploadsPerMinute)
	}

	if c.Cache.TextListTTL <= 0 {
		return fmt.Errorf("cache.text_list_ttl must be > 0 (got %v)", c.Cache.TextListTTL)
	}

	if err := c.Recording.validate(); err != nil {
		return fmt.Errorf("recording: %w", err)
	}

	if err := c.Capture.validate(); err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	return nil
}

func (r *RecordingConfig) validate() error {
	if r.MaxDuration <= 0 || r.MaxDuration > time.Hour {
		return fmt.Errorf("max_duration must be in (0, 1h] (got %v)", r.MaxDuration)
	}
	if r.MaxBytes <= 0 {
		return fmt.Errorf("max_bytes must be > 0 (got %d)", r.MaxBytes)
	}
	return nil
}

func (c *CaptureConfig) validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be > 0 (got %v)", c.TickInterval)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be > 0 (got %d)", c.SampleRate)
	}
	c.MimeTypes = ParseMimeTypes(c.MimeTypesRaw)
	if len(c.MimeTypes) == 0 {
		return fmt.Errorf("mime_types must list at least one type")
	}
	return nil
}

// ParseMimeTypes splits a comma-separated preference list of media types.
// Parameters after ';' stay attached to their type.
func ParseMimeTypes(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
