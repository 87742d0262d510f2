package sim

const (
	DefaultSpawnLo       float32 = -10
	DefaultSpawnHi       float32 = 10
	DefaultTrailCapacity         = 50
)

// Config tunes particle spawning and the optional position history.
type Config struct {
	// SpawnLo/SpawnHi bound each coordinate of randomly placed particles,
	// drawn from the half-open interval [SpawnLo, SpawnHi).
	SpawnLo float32
	SpawnHi float32

	// TrailEnabled records recent positions per particle for rendering.
	TrailEnabled  bool
	TrailCapacity int

	// Seed for the default random source. Zero seeds from the clock.
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		SpawnLo:       DefaultSpawnLo,
		SpawnHi:       DefaultSpawnHi,
		TrailCapacity: DefaultTrailCapacity,
	}
}
