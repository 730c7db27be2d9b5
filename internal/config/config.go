// Package config handles surfgen configuration loading and management.
package config

import (
	"github.com/Faultbox/surfgen/internal/engine/terrain"
	"github.com/Faultbox/surfgen/internal/engine/water"
)

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig  `yaml:"terrain" toml:"terrain"`
	Ocean   water.Settings `yaml:"ocean" toml:"ocean"`
	Light   LightConfig    `yaml:"light" toml:"light"`
	Scene   SceneConfig    `yaml:"scene" toml:"scene"`
	Logging LoggingConfig  `yaml:"logging" toml:"logging"`
}

// TerrainConfig holds chunk generation settings.
type TerrainConfig struct {
	terrain.Settings `yaml:",inline"`

	Workers int `yaml:"workers" toml:"workers"` // parallel chunk builds, 0 = GOMAXPROCS
}

// Light path modes.
const (
	LightKeys   = "keys"
	LightOrbit  = "orbit"
	LightScript = "script"
)

// LightConfig holds light placement and motion settings.
type LightConfig struct {
	Position [3]float64 `yaml:"position" toml:"position"`
	Speed    float64    `yaml:"speed" toml:"speed"` // world units per second when key-driven
	Path     string     `yaml:"path" toml:"path"`   // keys, orbit or script
	Script   string     `yaml:"script" toml:"script"`

	OrbitRadius    float64 `yaml:"orbit_radius" toml:"orbit_radius"`
	OrbitPeriod    float64 `yaml:"orbit_period" toml:"orbit_period"`       // seconds per lap
	OrbitElevation float64 `yaml:"orbit_elevation" toml:"orbit_elevation"` // degrees
}

// SceneConfig describes the default scene and the headless frame driver.
type SceneConfig struct {
	ChunksX     int     `yaml:"chunks_x" toml:"chunks_x"`
	ChunksZ     int     `yaml:"chunks_z" toml:"chunks_z"`
	OceanWidth  int     `yaml:"ocean_width" toml:"ocean_width"`
	OceanHeight int     `yaml:"ocean_height" toml:"ocean_height"`
	ShowNormals bool    `yaml:"show_normals" toml:"show_normals"`
	IDs         string  `yaml:"ids" toml:"ids"`             // uuid or sequential
	TickRate    float64 `yaml:"tick_rate" toml:"tick_rate"` // ticks per second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Settings: terrain.DefaultSettings(),
			Workers:  0,
		},
		Ocean: water.DefaultSettings(),
		Light: LightConfig{
			Position:       [3]float64{0, 20, 0},
			Speed:          10,
			Path:           LightKeys,
			OrbitRadius:    30,
			OrbitPeriod:    20,
			OrbitElevation: 35,
		},
		Scene: SceneConfig{
			ChunksX:     20,
			ChunksZ:     20,
			OceanWidth:  100,
			OceanHeight: 100,
			ShowNormals: false,
			IDs:         "uuid",
			TickRate:    60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
