// Package config handles xnbake configuration loading and management.
package config

import (
	"os"
	"path/filepath"
)

// Config holds all tool settings.
type Config struct {
	XNormal XNormalConfig `yaml:"xnormal"`
	Paths   PathsConfig   `yaml:"paths"`
	Panel   PanelConfig   `yaml:"panel"`
	Logging LoggingConfig `yaml:"logging"`

	source string // file the config was loaded from, if any
}

// Source returns the file Load read the config from, or "" when only
// defaults were used.
func (c *Config) Source() string {
	return c.source
}

// XNormalConfig holds the external baker settings.
type XNormalConfig struct {
	Executable string `yaml:"executable"` // Full path to the xNormal executable
}

// PathsConfig holds working file locations.
type PathsConfig struct {
	MeshDir string `yaml:"mesh_dir"` // Default home of exported meshes and the output image
	TempDir string `yaml:"temp_dir"` // Where settings documents are written before launch
	Session string `yaml:"session"`  // Saved bake settings
}

// PanelConfig holds the HTTP control panel settings.
type PanelConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	tmp := os.TempDir()
	return &Config{
		Paths: PathsConfig{
			MeshDir: filepath.Join(tmp, "xnormal_meshes"),
			TempDir: tmp,
			Session: filepath.Join(ConfigDir(), "session.yaml"),
		},
		Panel: PanelConfig{
			Addr: "127.0.0.1:7878",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
