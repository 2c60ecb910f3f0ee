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
	SiteBaseURL string

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	MySQLDSN string

	WageAPIBase   string
	WageAPIKey    string
	VerifyWorkers int

	SitemapOut     string
	SitemapWorkers int
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
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		SiteBaseURL: env("SITE_BASE_URL", "https://www.flexshifts.example"),

		RedisAddr: env("REDIS_ADDR", "localhost:6379"),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,

		MySQLDSN: env("MYSQL_DSN", "root:root@tcp(localhost:3306)/careers?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),

		WageAPIBase:   env("WAGE_API_BASE_URL", "https://api.wagewatch.example/v1"),
		WageAPIKey:    env("WAGE_API_KEY", ""),
		VerifyWorkers: atoi("VERIFY_WORKERS", 8),

		SitemapOut:     env("SITEMAP_OUT", "sitemap.xml"),
		SitemapWorkers: atoi("SITEMAP_WORKERS", 8),
	}
	if c.WageAPIKey == "" {
		log.Warn().Msg("WAGE_API_KEY is empty; verify tool will refuse to start")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
