// Package config handles viewer configuration loading and management.
package config

import "github.com/Faultbox/tilenav/pkg/nav"

// Config holds all viewer settings.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Nav     nav.Params    `yaml:"nav"`
	Logging LoggingConfig `yaml:"logging"`
}

// MapConfig holds the map file settings.
type MapConfig struct {
	Path string `yaml:"path"`
}

// ViewerConfig holds interactive viewer settings.
type ViewerConfig struct {
	Radius          float64 `yaml:"radius"`           // body radius used for path requests
	ShowWalkability bool    `yaml:"show_walkability"` // shade tiles by walkability score
	WatchFiles      bool    `yaml:"watch_files"`      // reload map/config on change
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values. Nav starts from the
// engine's tuned defaults so a config file only needs the keys it overrides.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Path: "maps/demo.map",
		},
		Viewer: ViewerConfig{
			Radius:          0.4,
			ShowWalkability: false,
			WatchFiles:      true,
		},
		Nav: nav.DefaultParams(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "navview.log",
		},
	}
}
