package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rutherford/internal/physics"
	"github.com/san-kum/rutherford/internal/sim"
)

const (
	DefaultTitle     = "Rutherford Atomic Model"
	DefaultWidth     = 1280
	DefaultHeight    = 720
	DefaultMoveSpeed = 0.1
	DefaultLookSpeed = 0.1
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Controls ControlsConfig `yaml:"controls"`
	Sim      SimConfig      `yaml:"sim"`
	Scene    []ParticleSpec `yaml:"scene"`
}

// WindowConfig is the render shell surface; the simulation core never reads
// it.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type ControlsConfig struct {
	MoveSpeed float32 `yaml:"move_speed"`
	LookSpeed float32 `yaml:"look_speed"`
}

type SimConfig struct {
	Seed    int64       `yaml:"seed"`
	SpawnLo float32     `yaml:"spawn_lo"`
	SpawnHi float32     `yaml:"spawn_hi"`
	Trail   TrailConfig `yaml:"trail"`
}

type TrailConfig struct {
	Enabled  bool `yaml:"enabled"`
	Capacity int  `yaml:"capacity"`
}

// ParticleSpec is one scene entry. A nil Pos spawns at a random position
// inside the spawn bounds.
type ParticleSpec struct {
	Kind string      `yaml:"kind"`
	Pos  *[3]float32 `yaml:"pos"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Controls: ControlsConfig{
			MoveSpeed: DefaultMoveSpeed,
			LookSpeed: DefaultLookSpeed,
		},
		Sim: SimConfig{
			SpawnLo: sim.DefaultSpawnLo,
			SpawnHi: sim.DefaultSpawnHi,
			Trail:   TrailConfig{Capacity: sim.DefaultTrailCapacity},
		},
		Scene: []ParticleSpec{
			{Kind: "electron", Pos: &[3]float32{200, 0, 0}},
			{Kind: "proton", Pos: &[3]float32{100, 0, 0}},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SimConfig maps the file representation onto the core's configuration.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		SpawnLo:       c.Sim.SpawnLo,
		SpawnHi:       c.Sim.SpawnHi,
		TrailEnabled:  c.Sim.Trail.Enabled,
		TrailCapacity: c.Sim.Trail.Capacity,
		Seed:          c.Sim.Seed,
	}
}

// SceneSpawns parses the scene list into spawn requests.
func (c *Config) SceneSpawns() ([]sim.Spawn, error) {
	spawns := make([]sim.Spawn, 0, len(c.Scene))
	for i, spec := range c.Scene {
		kind, err := physics.ParseKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("config: scene entry %d: %w", i, err)
		}
		sp := sim.Spawn{Kind: kind}
		if spec.Pos != nil {
			sp.Pos = &physics.Vec3{X: spec.Pos[0], Y: spec.Pos[1], Z: spec.Pos[2]}
		}
		spawns = append(spawns, sp)
	}
	return spawns, nil
}
