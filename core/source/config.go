package source

// Config holds the connection settings for pulling snapshots from a SQL
// database.
type Config struct {
	// Driver is the database/sql driver name: postgres, mysql, sqlserver
	// or oracle. Inferred from the DSN when empty.
	Driver string `mapstructure:"driver" default:""`
	// DSN is the driver-specific connection string.
	DSN string `mapstructure:"dsn" default:""`
}
