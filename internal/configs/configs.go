package configs

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL" envDefault:""`
	MongoHost   string `env:"MONGO_HOST" envDefault:"localhost"`
	MongoPort   string `env:"MONGO_PORT" envDefault:"27017"`
	MongoDB     string `env:"MONGO_DB" envDefault:"carpets"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:""`
	Port     string `env:"PORT" envDefault:"8000"`

	CatalogQueryLimit int64 `env:"CATALOG_QUERY_LIMIT" envDefault:"50"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

// MongoURI prefers the full DATABASE_URL when set, matching how deploy
// environments provide the connection string.
func (c Config) MongoURI() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("mongodb://%s:%s", c.MongoHost, c.MongoPort)
}

func (c Config) Addr() string {
	if c.HTTPAddr != "" {
		return c.HTTPAddr
	}
	return ":" + c.Port
}
