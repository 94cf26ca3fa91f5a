package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagMap    = flag.String("map", "", "Path to map file")
	flagRadius = flag.Float64("radius", 0, "Body radius for path requests")
	flagNoWatch = flag.Bool("no-watch", false, "Disable file watching")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMap != "" {
		cfg.Map.Path = *flagMap
	}
	if *flagRadius > 0 {
		cfg.Viewer.Radius = *flagRadius
	}
	if *flagNoWatch {
		cfg.Viewer.WatchFiles = false
	}
}
