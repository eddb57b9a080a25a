package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// TrackedVehicle is one make/model pair the aggregator reports stats for.
type TrackedVehicle struct {
	Make  string
	Model string
}

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	DatabaseURL         string
	RedisURL            string
	FrontendURLEndsWith string
	DevPassword         string
	HealthAdminKey      string
	BuyerName           string // appended to dealer outreach drafts
	BuyerPhone          string
	TrackedVehicles     []TrackedVehicle
}

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

	dbURL := viper.GetString("DATABASE_URL_DEV")
	if env == "production" {
		dbURL = viper.GetString("DATABASE_URL_PROD")
	} else if env == "test" {
		dbURL = viper.GetString("DATABASE_URL_TEST")
	}
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}

	return &Config{
		Env:                 env,
		Port:                port,
		DatabaseURL:         dbURL,
		RedisURL:            viper.GetString("REDIS_URL"),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		HealthAdminKey:      viper.GetString("HEALTH_ADMIN_KEY"),
		BuyerName:           viper.GetString("BUYER_NAME"),
		BuyerPhone:          viper.GetString("BUYER_PHONE"),
		TrackedVehicles:     parseTrackedVehicles(viper.GetString("TRACKED_VEHICLES")),
	}, nil
}

// parseTrackedVehicles parses "make:model,make:model". Malformed entries are
// skipped; an empty result falls back to the default pairs.
func parseTrackedVehicles(s string) []TrackedVehicle {
	var pairs []TrackedVehicle
	for _, token := range strings.Split(s, ",") {
		parts := strings.SplitN(strings.TrimSpace(token), ":", 2)
		if len(parts) != 2 {
			continue
		}
		mk := strings.ToLower(strings.TrimSpace(parts[0]))
		md := strings.ToLower(strings.TrimSpace(parts[1]))
		if mk == "" || md == "" {
			continue
		}
		pairs = append(pairs, TrackedVehicle{Make: mk, Model: md})
	}
	if len(pairs) == 0 {
		return []TrackedVehicle{
			{Make: "toyota", Model: "tundra"},
			{Make: "ford", Model: "f-150"},
		}
	}
	return pairs
}
