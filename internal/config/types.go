package config

// Config is the top-level configuration structure for veneer.
type Config struct {
	// Endpoint is the websocket URL of the UI backend. It may be left empty
	// in config files; the connect command then requires it as an argument.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Theme selects the widget rendering family. Unrecognized values fall
	// back to the default theme at parse time, not here.
	Theme string `yaml:"theme,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty"`
}
