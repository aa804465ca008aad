package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	RedisURL            string
	CatalogDBPath       string  // sqlite file for the instrument catalog; ":memory:" allowed
	StartingCash        float64 // cash balance a fresh portfolio is seeded with
	MarketAPIBase       string  // base URL of the quote endpoint (Yahoo v8 chart shape)
	NewsAPIBase         string  // base URL of the headline endpoint
	FrontendURLEndsWith string
	DevPassword         string
	HealthAdminKey      string
}

const defaultStartingCash = 10_000_000

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	startingCash := viper.GetFloat64("STARTING_CASH")
	if startingCash <= 0 {
		startingCash = defaultStartingCash
	}

	catalogPath := viper.GetString("CATALOG_DB_PATH")
	if catalogPath == "" {
		catalogPath = "catalog.db"
	}

	marketBase := viper.GetString("MARKET_API_BASE")
	if marketBase == "" {
		marketBase = "https://query2.finance.yahoo.com"
	}

	return &Config{
		Env:                 env,
		Port:                port,
		RedisURL:            viper.GetString("REDIS_URL"),
		CatalogDBPath:       catalogPath,
		StartingCash:        startingCash,
		MarketAPIBase:       marketBase,
		NewsAPIBase:         viper.GetString("NEWS_API_BASE"),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		HealthAdminKey:      viper.GetString("HEALTH_ADMIN_KEY"),
	}, nil
}
