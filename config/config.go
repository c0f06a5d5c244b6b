package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env               string `env:"ENV"`
	LogLevel          string `env:"LOG_LEVEL"`
	Postgres          Postgres
	Redis             Redis
	HTTP              HTTP
	BooksToScrape     BooksToScrape
	DefaultPageSize   int           `env:"DEFAULT_PAGE_SIZE" envDefault:"25"`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION" envDefault:"30m"`
	CacheExpiration   time.Duration `env:"CACHE_EXPIRATION" envDefault:"5m"`
}

type Postgres struct {
	Host            string `env:"PG_HOST"`
	Port            int    `env:"PG_PORT"`
	DbName          string `env:"PG_DB_NAME"`
	Password        string `env:"PG_PASSWORD"`
	User            string `env:"PG_USER"`
	MaxOpenConns    int    `env:"PG_MAX_OPEN_CONNS"`
	ConnMaxLifetime int    `env:"PG_CONN_MAX_LIFETIME"`
	MaxIdleConns    int    `env:"PG_MAX_IDLE_CONNS"`
	ConnMaxIdleTime int    `env:"PG_CONN_MAX_IDLE_TIME"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

type HTTP struct {
	Host            string        `env:"HTTP_HOST" envDefault:""`
	Port            int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type BooksToScrape struct {
	BaseUrl           string `env:"BOOKS_BASE_URL" envDefault:"http://books.toscrape.com"`
	CataloguePage     string `env:"BOOKS_CATALOGUE_PAGE" envDefault:"/catalogue/page-%d.html"`
	Pages             int    `env:"BOOKS_PAGES" envDefault:"50"`
	FetchDescriptions bool   `env:"BOOKS_FETCH_DESCRIPTIONS" envDefault:"true"`
	ProxyUrl          string `env:"PROXY_URL" envDefault:""`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
