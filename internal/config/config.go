package config

import "os"

// Config holds process-level settings resolved from the environment.
// Database settings stay in pkg/database, which assembles the DSN itself.
type Config struct {
	Port          string
	AppEnv        string
	SessionSecret string
	PredictionURL string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "3000"),
		AppEnv:        getenv("APP_ENV", "development"),
		SessionSecret: getenv("SESSION_SECRET", "dev-secret-key"),
		PredictionURL: getenv("PREDICTION_URL", "http://localhost:5000"),
	}
}

// IsProduction controls cookie Secure flag among other things.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
