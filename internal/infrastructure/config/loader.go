package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// Every value has a default, so a missing config file is not an error;
// environment variables with the SR_ prefix override everything.
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		// Not fatal; defaults and real env vars still apply
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Set environment variables to override config
	v.SetEnvPrefix("SR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for all configuration
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	// Seating defaults
	v.SetDefault("seating.rows", 10)
	v.SetDefault("seating.columns", 10)
	v.SetDefault("seating.lockTTLMs", 60000)
	v.SetDefault("seating.sweepIntervalMs", 10000)
}

// getEnvironment determines the environment to use based on SR_ENV
func getEnvironment() string {
	env := os.Getenv("SR_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	if serverHost := os.Getenv("SR_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := getEnvInt("SR_SERVER_PORT", 0); serverPort > 0 {
		v.Set("server.port", serverPort)
	}

	if logLevel := os.Getenv("SR_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}

	if rows := getEnvInt("SR_SEATING_ROWS", 0); rows > 0 {
		v.Set("seating.rows", rows)
	}
	if columns := getEnvInt("SR_SEATING_COLUMNS", 0); columns > 0 {
		v.Set("seating.columns", columns)
	}
	if lockTTL := getEnvInt("SR_SEATING_LOCK_TTL_MS", 0); lockTTL > 0 {
		v.Set("seating.lockTTLMs", lockTTL)
	}
	if sweepInterval := getEnvInt("SR_SEATING_SWEEP_INTERVAL_MS", 0); sweepInterval > 0 {
		v.Set("seating.sweepIntervalMs", sweepInterval)
	}
}

// getEnvInt reads an environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts duration fields from their raw second counts
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
}

// validate rejects configurations the engine cannot run with
func validate(config *Config) error {
	var invalid []string

	if config.Seating.Rows <= 0 {
		invalid = append(invalid, "seating.rows must be positive")
	}
	if config.Seating.Columns <= 0 {
		invalid = append(invalid, "seating.columns must be positive")
	}
	if config.Seating.LockTTLMs <= 0 {
		invalid = append(invalid, "seating.lockTTLMs must be positive")
	}
	if config.Seating.SweepIntervalMs <= 0 {
		invalid = append(invalid, "seating.sweepIntervalMs must be positive")
	}
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		invalid = append(invalid, "server.port must be a valid port number")
	}
	if config.Environment != Development && config.Environment != Production && config.Environment != Test {
		invalid = append(invalid, fmt.Sprintf(
			"environment must be one of %s, %s or %s", Development, Production, Test))
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(invalid, "; "))
	}
	return nil
}
