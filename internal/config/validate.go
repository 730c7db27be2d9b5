package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Faultbox/surfgen/internal/logger"
)

// ValidationError collects every invalid field of a config.
type ValidationError struct {
	// Fields maps field paths to their validation error messages.
	Fields map[string][]string
}

// NewValidationError creates an empty collector.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Error implements the error interface. Fields are listed in sorted order.
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "invalid config"
	}
	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, strings.Join(v.Fields[name], ", "))
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(parts, "; "))
}

// Add records a problem with field.
func (v *ValidationError) Add(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// Addf records a formatted problem with field.
func (v *ValidationError) Addf(field, format string, args ...any) {
	v.Add(field, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any field failed.
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// Validate checks every section and returns a *ValidationError listing all
// problems, or nil.
func (c *Config) Validate() error {
	v := NewValidationError()

	if err := c.Terrain.Settings.Validate(); err != nil {
		v.Add("terrain", err.Error())
	}
	if c.Terrain.Workers < 0 {
		v.Addf("terrain.workers", "must be >= 0, got %d", c.Terrain.Workers)
	}

	if err := c.Ocean.Validate(); err != nil {
		v.Add("ocean", err.Error())
	}

	switch c.Light.Path {
	case LightKeys, "":
	case LightOrbit:
		if c.Light.OrbitRadius <= 0 {
			v.Addf("light.orbit_radius", "must be > 0, got %g", c.Light.OrbitRadius)
		}
		if c.Light.OrbitPeriod <= 0 {
			v.Addf("light.orbit_period", "must be > 0, got %g", c.Light.OrbitPeriod)
		}
	case LightScript:
		if c.Light.Script == "" {
			v.Add("light.script", "required when light.path is script")
		}
	default:
		v.Addf("light.path", "unknown path %q", c.Light.Path)
	}
	if c.Light.Speed < 0 {
		v.Addf("light.speed", "must be >= 0, got %g", c.Light.Speed)
	}

	if c.Scene.ChunksX < 0 {
		v.Addf("scene.chunks_x", "must be >= 0, got %d", c.Scene.ChunksX)
	}
	if c.Scene.ChunksZ < 0 {
		v.Addf("scene.chunks_z", "must be >= 0, got %d", c.Scene.ChunksZ)
	}
	if c.Scene.OceanWidth < 0 || c.Scene.OceanHeight < 0 {
		v.Addf("scene.ocean", "dimensions must be >= 0, got %dx%d", c.Scene.OceanWidth, c.Scene.OceanHeight)
	}
	if (c.Scene.OceanWidth == 0) != (c.Scene.OceanHeight == 0) {
		v.Add("scene.ocean", "width and height must both be zero or both be positive")
	}
	switch c.Scene.IDs {
	case "", "uuid", "sequential":
	default:
		v.Addf("scene.ids", "unknown id generator %q", c.Scene.IDs)
	}
	if c.Scene.TickRate <= 0 {
		v.Addf("scene.tick_rate", "must be > 0, got %g", c.Scene.TickRate)
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		v.Add("logging.level", err.Error())
	}

	if v.HasErrors() {
		return v
	}
	return nil
}
