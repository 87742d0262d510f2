package config

import "sort"

// Presets are named starting scenes. "rutherford" is the classic
// two-particle electron/proton scene and the default.
var Presets = map[string]*Config{
	"rutherford": {
		Scene: []ParticleSpec{
			{Kind: "electron", Pos: &[3]float32{200, 0, 0}},
			{Kind: "proton", Pos: &[3]float32{100, 0, 0}},
		},
	},
	"hydrogen": {
		Scene: []ParticleSpec{
			{Kind: "proton", Pos: &[3]float32{0, 0, 0}},
			{Kind: "electron", Pos: &[3]float32{50, 0, 0}},
		},
	},
	"plasma": {
		Sim: SimConfig{Seed: 1},
		Scene: []ParticleSpec{
			{Kind: "electron"}, {Kind: "electron"}, {Kind: "electron"},
			{Kind: "electron"}, {Kind: "electron"}, {Kind: "electron"},
			{Kind: "proton"}, {Kind: "proton"}, {Kind: "proton"},
			{Kind: "proton"}, {Kind: "proton"}, {Kind: "proton"},
		},
	},
	"neutron-gas": {
		Sim: SimConfig{Seed: 2},
		Scene: []ParticleSpec{
			{Kind: "neutron"}, {Kind: "neutron"}, {Kind: "neutron"},
			{Kind: "neutron"}, {Kind: "neutron"}, {Kind: "neutron"},
			{Kind: "neutron"}, {Kind: "neutron"}, {Kind: "neutron"},
			{Kind: "neutron"},
		},
	},
	"trails": {
		Sim: SimConfig{Trail: TrailConfig{Enabled: true, Capacity: 50}},
		Scene: []ParticleSpec{
			{Kind: "electron", Pos: &[3]float32{200, 0, 0}},
			{Kind: "proton", Pos: &[3]float32{100, 0, 0}},
		},
	},
}

// GetPreset returns the named preset merged over the defaults, or nil when
// unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	cfg.Scene = p.Scene
	if p.Sim.Seed != 0 {
		cfg.Sim.Seed = p.Sim.Seed
	}
	if p.Sim.SpawnLo != 0 || p.Sim.SpawnHi != 0 {
		cfg.Sim.SpawnLo = p.Sim.SpawnLo
		cfg.Sim.SpawnHi = p.Sim.SpawnHi
	}
	if p.Sim.Trail.Enabled {
		cfg.Sim.Trail = p.Sim.Trail
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
