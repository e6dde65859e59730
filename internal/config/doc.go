// Package config provides configuration management for veneer.
//
// Configuration is loaded from multiple YAML sources and merged in order,
// with later sources overriding earlier ones:
//
//  1. Default configuration (embedded in binary)
//  2. User configuration (~/.config/veneer/config.yaml)
//  3. Project configuration (./.veneer/config.yaml)
//
// The file format:
//
//	endpoint: "ws://localhost:8090/ui"
//	theme: "fluent"
//	logLevel: "debug"
//
// Command-line flags override all file layers.
package config
