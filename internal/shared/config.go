package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/heynenm/snowreport/internal/domain"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	OpenMeteoURL string
	ProviderRPS  int
	FetchTimeout time.Duration
	CacheTTL     time.Duration
	Resorts      []domain.Resort
}

func Load() (Config, error) {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ""),
		RedisAddr:    env("REDIS_ADDR", ""),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		OpenMeteoURL: env("OPENMETEO_BASE_URL", "https://api.open-meteo.com"),
		ProviderRPS:  atoi("PROVIDER_RPS", 5),
		FetchTimeout: time.Duration(atoi("FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}

	resorts, err := LoadResorts(os.Getenv("RESORTS_FILE"))
	if err != nil {
		return Config{}, err
	}
	c.Resorts = resorts

	if c.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR is empty; report caching disabled")
	}
	return c, nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
