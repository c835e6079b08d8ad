package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Document intelligence configuration
	DocIntelBaseURL        string `mapstructure:"DOCINTEL_BASE_URL"`
	DocIntelAPIKey         string `mapstructure:"DOCINTEL_API_KEY"`
	DocIntelFurnitureModel string `mapstructure:"DOCINTEL_FURNITURE_MODEL"`
	DocIntelFloorModel     string `mapstructure:"DOCINTEL_FLOOR_MODEL"`
	DocIntelPollSeconds    int    `mapstructure:"DOCINTEL_POLL_SECONDS"`
	DocIntelPromptsFile    string `mapstructure:"DOCINTEL_PROMPTS_FILE"`

	// File storage configuration
	StorageBaseURL    string `mapstructure:"STORAGE_BASE_URL"`
	StorageServiceKey string `mapstructure:"STORAGE_SERVICE_KEY"`
	StorageBucket     string `mapstructure:"STORAGE_BUCKET"`
}

// Prompts holds the analysis prompt texts sent to the document intelligence
// service, loaded from a yaml file so wording can change without a rebuild.
type Prompts struct {
	Furniture    string `yaml:"furniture"`
	FloorMapping string `yaml:"floor_mapping"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// LoadPrompts reads the analysis prompts from the configured yaml file.
func LoadPrompts(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}
	var prompts Prompts
	if err := yaml.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("parse prompts file: %w", err)
	}
	if prompts.Furniture == "" || prompts.FloorMapping == "" {
		return nil, fmt.Errorf("prompts file %s is missing furniture or floor_mapping text", path)
	}
	return &prompts, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "furnishing_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Document intelligence defaults
	viper.SetDefault("DOCINTEL_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("DOCINTEL_API_KEY", "")
	viper.SetDefault("DOCINTEL_FURNITURE_MODEL", "gemini-2.0-pro-exp-02-05")
	viper.SetDefault("DOCINTEL_FLOOR_MODEL", "gemini-2.0-flash")
	viper.SetDefault("DOCINTEL_POLL_SECONDS", 10)
	viper.SetDefault("DOCINTEL_PROMPTS_FILE", "config/prompts.yaml")

	// File storage defaults
	viper.SetDefault("STORAGE_BASE_URL", "")
	viper.SetDefault("STORAGE_SERVICE_KEY", "")
	viper.SetDefault("STORAGE_BUCKET", "furniture-system")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Environment == "production" && config.DocIntelAPIKey == "" {
		return fmt.Errorf("DOCINTEL_API_KEY must be set in production")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
