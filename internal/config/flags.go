package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Zero values leave the config untouched.
type Flags struct {
	Config     string
	Debug      bool
	Executable string
	MeshDir    string
	Session    string
	LogFile    string
}

// Register adds the flags to fs. Call it on the root command's persistent
// flag set.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Executable, "xnormal", "", "Path to the xNormal executable")
	fs.StringVar(&f.MeshDir, "mesh-dir", "", "Directory for exported meshes")
	fs.StringVar(&f.Session, "session", "", "Path to the bake settings file")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file")
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Executable != "" {
		cfg.XNormal.Executable = f.Executable
	}
	if f.MeshDir != "" {
		cfg.Paths.MeshDir = f.MeshDir
	}
	if f.Session != "" {
		cfg.Paths.Session = f.Session
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
