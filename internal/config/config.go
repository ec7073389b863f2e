package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

const AppName = "controlbovino-api"

type Config struct {
	AppPort string
	AppUrl  string
	DBUrl   string

	JWTSecret string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	SendGridSandbox   bool

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromPhone  string

	UploadsDir string

	// IncludeOverdueAlerts widens the herd scan to anchors already past
	// their due date. Off by default: a backlog of stale anchors would
	// flood owners with alerts on the first scan after re-enabling the
	// service. Enable it when missed-birth follow-up matters more than
	// alert volume.
	IncludeOverdueAlerts bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file found, relying on environment")
	}

	cfg := &Config{
		AppPort:              mustEnv("APP_PORT"),
		AppUrl:               mustEnv("APP_URL"),
		DBUrl:                mustEnv("DATABASE_URL"),
		JWTSecret:            mustEnv("JWT_SECRET"),
		SendGridAPIKey:       mustEnv("SENDGRID_API_KEY"),
		SendGridFromEmail:    mustEnv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:     envOr("SENDGRID_FROM_NAME", "ControlBovino"),
		SendGridSandbox:      os.Getenv("SENDGRID_SANDBOX") == "true",
		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:      os.Getenv("TWILIO_FROM_PHONE"),
		UploadsDir:           envOr("UPLOADS_DIR", "uploads"),
		IncludeOverdueAlerts: os.Getenv("INCLUDE_OVERDUE_ALERTS") == "true",
	}
	return cfg
}

// SMSEnabled reports whether the optional Twilio credentials were provided.
func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromPhone != ""
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("%s env var is missing", key)
	}
	return v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
