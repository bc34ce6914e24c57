package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	Redis       RedisConfig
	CMS         CMSConfig
	Payment     PaymentConfig
	Admin       AdminConfig
	Cart        CartConfig
	LogLevel    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CMSConfig struct {
	BaseURL  string
	APIToken string
}

type PaymentConfig struct {
	KeyID     string
	KeySecret string
}

type AdminConfig struct {
	APIKeyHash string
}

type CartConfig struct {
	TTLHours int
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CART_TTL_HOURS", "720")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "storefront"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrViper("REDIS_ADDR", "localhost:6379"),
			Password: getEnvOrViper("REDIS_PASSWORD", ""),
			DB:       viper.GetInt("REDIS_DB"),
		},
		CMS: CMSConfig{
			BaseURL:  getEnvOrViper("CMS_BASE_URL", ""),
			APIToken: getEnvOrViper("CMS_API_TOKEN", ""),
		},
		Payment: PaymentConfig{
			KeyID:     getEnvOrViper("PAYMENT_KEY_ID", ""),
			KeySecret: getEnvOrViper("PAYMENT_KEY_SECRET", ""),
		},
		Admin: AdminConfig{
			APIKeyHash: getEnvOrViper("ADMIN_API_KEY_HASH", ""),
		},
		Cart: CartConfig{
			TTLHours: viper.GetInt("CART_TTL_HOURS"),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	if cfg.Cart.TTLHours <= 0 {
		cfg.Cart.TTLHours = 720
	}

	// Validate required fields
	if cfg.CMS.BaseURL == "" {
		return nil, fmt.Errorf("CMS_BASE_URL is required")
	}
	if cfg.Payment.KeySecret == "" {
		return nil, fmt.Errorf("PAYMENT_KEY_SECRET is required")
	}
	if cfg.Admin.APIKeyHash == "" {
		return nil, fmt.Errorf("ADMIN_API_KEY_HASH is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
