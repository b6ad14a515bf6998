package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dataset-reconciler/core/csvio"
	"dataset-reconciler/core/database"
	"dataset-reconciler/core/logger"
	"dataset-reconciler/core/profile"
	"dataset-reconciler/core/report"
	"dataset-reconciler/core/server"
	"dataset-reconciler/core/source"
	"dataset-reconciler/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the snapshot archive (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the run history database.
	Database database.Config `mapstructure:"database"`
	// Source holds configuration for pulling datasets from SQL databases.
	Source source.Config `mapstructure:"source"`
	// Output holds configuration for writing result files.
	Output csvio.Config `mapstructure:"output"`
	// Display holds configuration for rendering tables on the console.
	Display report.Config `mapstructure:"display"`
	// Profiles holds custom dataset profiles declared in the config file.
	Profiles []profile.Profile `mapstructure:"profiles"`
}

// LoadConfig loads configuration from environment variables, an optional
// .env file, and an optional reconciler.yaml config file. Custom profiles
// can only come from the config file; everything else can be overridden
// through the environment.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Custom profiles live in the config file
	v.SetConfigName("reconciler")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	for i := range config.Profiles {
		config.Profiles[i] = config.Profiles[i].WithDefaults()
		if err := config.Profiles[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid profile %q: %w", config.Profiles[i].Name, err)
		}
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Slices (custom profiles) have no scalar default
		if field.Type.Kind() == reflect.Slice {
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
