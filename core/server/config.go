package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables
	// authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// Swagger mounts the interactive API documentation under /swagger.
	Swagger bool `mapstructure:"swagger" default:"true"`
	// DefaultProfile is the dataset profile used when a request does not
	// name one.
	DefaultProfile string `mapstructure:"default_profile" default:"clia-labs"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// AuthEnabled reports whether API key authentication is active.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
