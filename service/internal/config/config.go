// Package config reads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every setting the service binaries need.
type Config struct {
	LogLevel  logrus.Level
	LogFormat string // "text" or "json"

	// MaxUnplayed is the largest number of unplayed cards the analyzer
	// will search.
	MaxUnplayed int
	Workers     int
	Timeout     time.Duration

	RedisAddr     string // empty disables the shared cache
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		LogLevel:    logrus.InfoLevel,
		LogFormat:   "text",
		MaxUnplayed: 16,
		Workers:     4,
		Timeout:     30 * time.Second,
		CacheTTL:    24 * time.Hour,
	}
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, which reports a variable's value
// and whether it is set.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	r := reader{lookup: lookup}

	if v, ok := r.get("HEARTS_LOG_LEVEL"); ok {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			r.fail("HEARTS_LOG_LEVEL", err)
		}
		cfg.LogLevel = level
	}
	if v, ok := r.get("HEARTS_LOG_FORMAT"); ok {
		switch v = strings.ToLower(v); v {
		case "text", "json":
			cfg.LogFormat = v
		default:
			r.fail("HEARTS_LOG_FORMAT", fmt.Errorf("want text or json, got %q", v))
		}
	}
	r.positive("HEARTS_SOLVE_MAX_UNPLAYED", &cfg.MaxUnplayed)
	r.positive("HEARTS_ANALYSIS_WORKERS", &cfg.Workers)
	r.duration("HEARTS_ANALYSIS_TIMEOUT", &cfg.Timeout)
	if v, ok := r.get("HEARTS_REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}
	if v, ok := r.get("HEARTS_REDIS_PASSWORD"); ok {
		cfg.RedisPassword = v
	}
	if v, ok := r.get("HEARTS_REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil || db < 0 {
			r.fail("HEARTS_REDIS_DB", fmt.Errorf("want a database number, got %q", v))
		}
		cfg.RedisDB = db
	}
	r.duration("HEARTS_CACHE_TTL", &cfg.CacheTTL)

	if len(r.errs) > 0 {
		return Config{}, errors.Join(r.errs...)
	}
	return cfg, nil
}

// Logger builds a logger with the configured level and format.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

type reader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *reader) get(name string) (string, bool) {
	v, ok := r.lookup(name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *reader) fail(name string, err error) {
	r.errs = append(r.errs, fmt.Errorf("%s: %w", name, err))
}

func (r *reader) positive(name string, dst *int) {
	v, ok := r.get(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		r.fail(name, fmt.Errorf("want a positive integer, got %q", v))
		return
	}
	*dst = n
}

func (r *reader) duration(name string, dst *time.Duration) {
	v, ok := r.get(name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		r.fail(name, fmt.Errorf("want a duration, got %q", v))
		return
	}
	*dst = d
}
