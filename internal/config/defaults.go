package config

// GetDefaultConfig returns the built-in configuration. It carries no
// endpoint; connecting always needs an explicit target.
func GetDefaultConfig() Config {
	return Config{
		Theme:    "material",
		LogLevel: "info",
	}
}
