// Package config provides configuration management for the reconciler.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional .env file, and an optional reconciler.yaml config file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, default profile)
//   - Database: run history database connection details
//   - Storage: S3/MinIO credentials and snapshot bucket settings
//   - Source: SQL connection for pulling datasets
//   - Output: result file directory and naming
//   - Display: console table rendering limits
//   - Log: logging level and format
//   - Profiles: custom dataset profiles (config file only)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
