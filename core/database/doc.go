// Package database handles connections for the reconciliation run history.
//
// It provides a wrapper around GORM that configures MySQL for deployed
// installs and SQLite for local or throwaway use, based on the application's
// configuration. History is an optional facility: commands that cannot reach
// the database log a warning and keep working.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("run history disabled", zap.Error(err))
//	}
package database
