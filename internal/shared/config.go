package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	FeedBase string
	FeedRPS  int

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	RefreshInterval   time.Duration
	ProbeWorkers      int
	ProbeTimeout      time.Duration
	ValidateGalleries bool

	DefaultLocale string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	abool := func(k string, def bool) bool {
		if v := os.Getenv(k); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
		return def
	}
	c := Config{
		AppEnv:            env("APP_ENV", "prod"),
		HTTPAddr:          env("HTTP_ADDR", ":8080"),
		MetricsAddr:       env("METRICS_ADDR", ":9100"),
		FeedBase:          env("FEED_BASE_URL", "https://technology.lastminute.com/api"),
		FeedRPS:           atoi("FEED_RPS", 5),
		RedisAddr:         env("REDIS_ADDR", "localhost:6379"),
		RedisDB:           atoi("REDIS_DB", 0),
		RedisPass:         env("REDIS_PASSWORD", ""),
		CacheTTL:          time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		RefreshInterval:   time.Duration(atoi("REFRESH_INTERVAL_SECONDS", 900)) * time.Second,
		ProbeWorkers:      atoi("PROBE_WORKERS", 8),
		ProbeTimeout:      time.Duration(atoi("PROBE_TIMEOUT_SECONDS", 5)) * time.Second,
		ValidateGalleries: abool("VALIDATE_GALLERIES", true),
		DefaultLocale:     env("DEFAULT_LOCALE", "pt-PT"),
	}
	if c.RefreshInterval < time.Minute {
		log.Warn().Dur("interval", c.RefreshInterval).Msg("refresh interval under a minute; feed may throttle")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
