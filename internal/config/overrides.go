package config

// WithLogLevel overrides the log level.
func WithLogLevel(level string) Override {
	return func(c *Config) { c.Logging.Level = level }
}

// WithLogFile overrides the log file.
func WithLogFile(path string) Override {
	return func(c *Config) { c.Logging.LogFile = path }
}

// WithTerrainSeed overrides the terrain noise seed.
func WithTerrainSeed(seed int64) Override {
	return func(c *Config) { c.Terrain.Seed = seed }
}

// WithOceanSeed overrides the wave generation seed.
func WithOceanSeed(seed int64) Override {
	return func(c *Config) { c.Ocean.Seed = seed }
}

// WithChunks overrides the chunk grid size.
func WithChunks(x, z int) Override {
	return func(c *Config) {
		c.Scene.ChunksX = x
		c.Scene.ChunksZ = z
	}
}

// WithWorkers overrides the terrain worker count.
func WithWorkers(n int) Override {
	return func(c *Config) { c.Terrain.Workers = n }
}

// WithLightScript drives the light from a Lua script.
func WithLightScript(path string) Override {
	return func(c *Config) {
		c.Light.Path = LightScript
		c.Light.Script = path
	}
}

// WithIDs selects the entity id generator.
func WithIDs(kind string) Override {
	return func(c *Config) { c.Scene.IDs = kind }
}
