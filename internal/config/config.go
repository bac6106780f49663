package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	RedisURL      string
	SessionSecret string

	// ELT SOAP provider (multi-company KASKO calculations + reference data)
	EltURL      string
	EltUsername string
	EltPassword string

	// RESO guarantee SOAP provider (quote/policy issuance)
	ResoURL      string
	ResoUsername string
	ResoPassword string

	// Outbound SOAP call timeout. Final calculations can take minutes.
	SoapTimeout time.Duration
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

	timeout := viper.GetDuration("SOAP_TIMEOUT")
	if timeout == 0 {
		timeout = 3 * time.Minute
	}

	return &Config{
		Env:           env,
		Port:          port,
		DatabaseURL:   viper.GetString("DATABASE_URL"),
		RedisURL:      viper.GetString("REDIS_URL"),
		SessionSecret: viper.GetString("SESSION_SECRET"),
		EltURL:        viper.GetString("ELT_URL"),
		EltUsername:   viper.GetString("ELT_USERNAME"),
		EltPassword:   viper.GetString("ELT_PASSWORD"),
		ResoURL:       viper.GetString("RESO_URL"),
		ResoUsername:  viper.GetString("RESO_USERNAME"),
		ResoPassword:  viper.GetString("RESO_PASSWORD"),
		SoapTimeout:   timeout,
	}, nil
}
