package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/romweave/romcheck/pkg/constants"
	"github.com/romweave/romcheck/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files, then refined by flags.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file actually used, if any
	ConfigFile string

	// Checker configuration
	DATFile string
	SetType string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later via UpdateFromFlags)
//  2. Environment variables
//  3. .env files
//  4. Config file (configFile argument, or ~/.romcheck.yaml when empty)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables (ROMCHECK_DAT, ROMCHECK_SET_TYPE, ...)
	viper.SetEnvPrefix("ROMCHECK")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile != "" {
		// An explicit config file must exist and parse.
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "failed to read config file", err)
		}
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".romcheck")
		}

		// Read config file (ignore error if not found)
		_ = viper.ReadInConfig()
	}

	// Build config from viper
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Checker configuration
		DATFile: viper.GetString("dat"),
		SetType: viper.GetString("set_type"),

		// Logging configuration. LOG_LEVEL stays empty by default so the
		// -v/-q shortcuts can take effect when nothing was set.
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Set defaults
	if config.SetType == "" {
		config.SetType = constants.DefaultSetType
	}
	if !config.NoColor && os.Getenv("NO_COLOR") != "" {
		config.NoColor = true
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	if verbose {
		c.Verbose = true
	}
	if quiet {
		c.Quiet = true
	}
	if noColor {
		c.NoColor = true
	}
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files. godotenv
// never overrides a variable that is already set, so the earlier file
// wins: .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
