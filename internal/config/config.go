// Package config loads game tuning from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"dungeoncrawl/internal/factory"
	"dungeoncrawl/internal/generate"
	"dungeoncrawl/internal/system"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Seed     int64   `yaml:"seed"`
	Map      Map     `yaml:"map"`
	Player   Stats   `yaml:"player"`
	Monster  Stats   `yaml:"monster"`
	Spawn    Spawn   `yaml:"spawn"`
	Rules    Rules   `yaml:"rules"`
	LogLines int     `yaml:"log_lines"`
	Save     Save    `yaml:"save"`
	Logging  Logging `yaml:"logging"`
}

type Map struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	MaxRooms    int    `yaml:"max_rooms"`
	MinRoomSize int    `yaml:"min_room_size"`
	MaxRoomSize int    `yaml:"max_room_size"`
	Layout      string `yaml:"layout"`
}

type Stats struct {
	HP         int `yaml:"hp"`
	Defense    int `yaml:"defense"`
	Power      int `yaml:"power"`
	SightRange int `yaml:"sight_range"`
}

type Spawn struct {
	MaxMonsters int `yaml:"max_monsters"`
	MaxItems    int `yaml:"max_items"`
}

type Rules struct {
	MeleeRange    float64 `yaml:"melee_range"`
	ShoutDistance float64 `yaml:"shout_distance"`
}

// Save selects where games are persisted. Backend is one of file, sqlite
// or postgres.
type Save struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	DSN     string `yaml:"dsn"`
}

type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Seed: 25021990,
		Map: Map{
			Width:       15,
			Height:      15,
			MaxRooms:    2,
			MinRoomSize: 3,
			MaxRoomSize: 6,
			Layout:      "rooms",
		},
		Player:   Stats{HP: 30, Defense: 2, Power: 5, SightRange: 8},
		Monster:  Stats{HP: 16, Defense: 1, Power: 3, SightRange: 8},
		Spawn:    Spawn{MaxMonsters: 4, MaxItems: 2},
		Rules:    Rules{MeleeRange: 1.5, ShoutDistance: 2.0},
		LogLines: 5,
		Save:     Save{Backend: "file", Path: "savegame.json.zst"},
		Logging:  Logging{Level: "info"},
	}
}

// Load reads path on top of Default and validates the result. An empty path
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the generator or spawner cannot satisfy.
func (c Config) Validate() error {
	var errs []error
	m := c.Map
	if m.MinRoomSize < 1 || m.MaxRoomSize < m.MinRoomSize {
		errs = append(errs, fmt.Errorf("room size range [%d,%d] is invalid", m.MinRoomSize, m.MaxRoomSize))
	}
	if m.MaxRoomSize >= m.Width-2 || m.MaxRoomSize >= m.Height-2 {
		errs = append(errs, fmt.Errorf("max_room_size %d does not fit a %dx%d map", m.MaxRoomSize, m.Width, m.Height))
	}
	if m.MaxRooms < 1 {
		errs = append(errs, errors.New("max_rooms must be at least 1"))
	}
	if _, err := generate.ParseLayout(m.Layout); err != nil {
		errs = append(errs, err)
	}
	if c.Player.HP < 1 || c.Monster.HP < 1 {
		errs = append(errs, errors.New("hp must be positive"))
	}
	if c.Spawn.MaxMonsters < 0 || c.Spawn.MaxItems < 0 {
		errs = append(errs, errors.New("spawn limits must not be negative"))
	}
	if c.LogLines < 1 {
		errs = append(errs, errors.New("log_lines must be at least 1"))
	}
	switch c.Save.Backend {
	case "file", "sqlite":
		if c.Save.Path == "" {
			errs = append(errs, fmt.Errorf("save.path is required for the %s backend", c.Save.Backend))
		}
	case "postgres":
		if c.Save.DSN == "" {
			errs = append(errs, errors.New("save.dsn is required for the postgres backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown save backend %q", c.Save.Backend))
	}
	return errors.Join(errs...)
}

// Generator returns the map generation settings.
func (c Config) Generator() generate.Config {
	layout, _ := generate.ParseLayout(c.Map.Layout)
	return generate.Config{
		Width:       c.Map.Width,
		Height:      c.Map.Height,
		MaxRooms:    c.Map.MaxRooms,
		MinRoomSize: c.Map.MinRoomSize,
		MaxRoomSize: c.Map.MaxRoomSize,
		Layout:      layout,
	}
}

// Tuning returns the spawner stat blocks.
func (c Config) Tuning() factory.Tuning {
	t := factory.DefaultTuning()
	t.Player.MaxHP, t.Player.HP = c.Player.HP, c.Player.HP
	t.Player.Defense, t.Player.Power = c.Player.Defense, c.Player.Power
	t.Monster.MaxHP, t.Monster.HP = c.Monster.HP, c.Monster.HP
	t.Monster.Defense, t.Monster.Power = c.Monster.Defense, c.Monster.Power
	t.SightRange = c.Player.SightRange
	t.MonsterSightRange = c.Monster.SightRange
	t.MaxMonsters = c.Spawn.MaxMonsters
	t.MaxItems = c.Spawn.MaxItems
	return t
}

// SystemRules returns the combat and AI distances.
func (c Config) SystemRules() system.Rules {
	return system.Rules{MeleeRange: c.Rules.MeleeRange, ShoutDistance: c.Rules.ShoutDistance}
}
