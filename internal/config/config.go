package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName            string
	AppEnv             string
	AppPort            string
	DBHost             string
	DBPort             int
	DBUser             string
	DBPassword         string
	DBName             string
	DBEncrypt          bool
	PoolMaxOpen        int
	PoolMinIdle        int
	PoolIdleTimeout    time.Duration
	AllowedOrigins     string
	TLSCertFile        string
	TLSKeyFile         string
	UploadDir          string
	Timezone           string
	GraphBaseURL       string
	AllowedEmailDomain string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// TLSEnabled reports whether a certificate pair has been configured.
func (c Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("DUTYLOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "DutyLog API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3000")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.encrypt", true)
	v.SetDefault("pool.max_open", 10)
	v.SetDefault("pool.min_idle", 0)
	v.SetDefault("pool.idle_timeout_ms", 30000)
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("timezone", "America/New_York")
	v.SetDefault("graph.base_url", "https://graph.microsoft.com/v1.0")
	v.SetDefault("allowed.email_domain", "@westpoint.edu")

	idleMs := v.GetInt("pool.idle_timeout_ms")
	if idleMs <= 0 {
		idleMs = 30000
	}

	cfg := Config{
		AppName:            v.GetString("app.name"),
		AppEnv:             v.GetString("app.env"),
		AppPort:            v.GetString("app.port"),
		DBHost:             v.GetString("db.host"),
		DBPort:             v.GetInt("db.port"),
		DBUser:             v.GetString("db.user"),
		DBPassword:         v.GetString("db.password"),
		DBName:             v.GetString("db.name"),
		DBEncrypt:          v.GetBool("db.encrypt"),
		PoolMaxOpen:        v.GetInt("pool.max_open"),
		PoolMinIdle:        v.GetInt("pool.min_idle"),
		PoolIdleTimeout:    time.Duration(idleMs) * time.Millisecond,
		AllowedOrigins:     v.GetString("allowed.cors_origins"),
		TLSCertFile:        v.GetString("tls.cert_file"),
		TLSKeyFile:         v.GetString("tls.key_file"),
		UploadDir:          v.GetString("upload.dir"),
		Timezone:           v.GetString("timezone"),
		GraphBaseURL:       v.GetString("graph.base_url"),
		AllowedEmailDomain: v.GetString("allowed.email_domain"),
	}

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "" {
		return Config{}, fmt.Errorf("database host, user, password and name must be provided")
	}

	if cfg.PoolMaxOpen <= 0 {
		cfg.PoolMaxOpen = 10
	}

	if cfg.PoolMinIdle < 0 {
		cfg.PoolMinIdle = 0
	}

	return cfg, nil
}
