package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sentinel/input"
	"github.com/lixenwraith/sentinel/npc"
	"github.com/lixenwraith/sentinel/vmath"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalid           = errors.New("invalid config")
)

type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Loop    LoopConfig    `toml:"loop" yaml:"loop"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
	NPC     NPCConfig     `toml:"npc" yaml:"npc"`
	Level   LevelConfig   `toml:"level" yaml:"level"`

	// Keys overrides default bindings: key name → action name
	Keys map[string]string `toml:"keys" yaml:"keys"`
}

type LoggingConfig struct {
	Level     string `toml:"level" yaml:"level"`
	Format    string `toml:"format" yaml:"format"` // "json" or "console"
	Dir       string `toml:"dir" yaml:"dir"`
	File      string `toml:"file" yaml:"file"`
	MaxSizeMB int    `toml:"max_size_mb" yaml:"max_size_mb"` // rotate when larger
}

type LoopConfig struct {
	TickInterval time.Duration `toml:"tick_interval" yaml:"tick_interval"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled" yaml:"enabled"`
	Volume     float64 `toml:"volume" yaml:"volume"` // 0.0-1.0
	SampleRate int     `toml:"sample_rate" yaml:"sample_rate"`
}

type NPCConfig struct {
	DecisionInterval    time.Duration `toml:"decision_interval" yaml:"decision_interval"`
	ForcedSwitchAfter   int           `toml:"forced_switch_after" yaml:"forced_switch_after"`
	Speed               float64       `toml:"speed" yaml:"speed"`
	JumpSpeed           float64       `toml:"jump_speed" yaml:"jump_speed"`
	DetectionRange      float64       `toml:"detection_range" yaml:"detection_range"`
	ConeThreshold       float64       `toml:"cone_threshold" yaml:"cone_threshold"`
	GroundCheckRadius   float64       `toml:"ground_check_radius" yaml:"ground_check_radius"`
	WaypointTolerance   float64       `toml:"waypoint_tolerance" yaml:"waypoint_tolerance"`
	PatrolProbeDistance float64       `toml:"patrol_probe_distance" yaml:"patrol_probe_distance"`
	ChaseProbeDistance  float64       `toml:"chase_probe_distance" yaml:"chase_probe_distance"`
	SceneLoadDelay      time.Duration `toml:"scene_load_delay" yaml:"scene_load_delay"`
	Waypoints           []Point       `toml:"waypoints" yaml:"waypoints"`
}

type LevelConfig struct {
	Gravity     float64 `toml:"gravity" yaml:"gravity"` // units/s², negative pulls down
	PlayerSpeed float64 `toml:"player_speed" yaml:"player_speed"`
	PlayerJump  float64 `toml:"player_jump" yaml:"player_jump"`
	PlayerStart Point   `toml:"player_start" yaml:"player_start"`
	NPCStart    Point   `toml:"npc_start" yaml:"npc_start"`
	Ground      []Box   `toml:"ground" yaml:"ground"`
	Crates      []Box   `toml:"crates" yaml:"crates"` // jump-tagged obstacles
	Walls       []Box   `toml:"walls" yaml:"walls"`
}

// Point is a world position, Y up
type Point struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
}

// Vec2 converts to the math type
func (p Point) Vec2() vmath.Vec2 {
	return vmath.V2(p.X, p.Y)
}

// Box is an axis-aligned rectangle given by center and size
type Box struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
	W float64 `toml:"w" yaml:"w"`
	H float64 `toml:"h" yaml:"h"`
}

// AABB converts to the math type
func (b Box) AABB() vmath.AABB {
	return vmath.NewAABB(vmath.V2(b.X, b.Y), vmath.V2(b.W, b.H))
}

// Load reads path and overlays it on the defaults
// The decoder is chosen by extension: .toml, .yaml or .yml
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration: one level with two crates
func Default() *Config {
	n := npc.DefaultConfig()
	return &Config{
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "console",
			Dir:       "logs",
			File:      "sentinel.log",
			MaxSizeMB: 10,
		},
		Loop: LoopConfig{
			TickInterval: 16 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		NPC: NPCConfig{
			DecisionInterval:    n.DecisionInterval,
			ForcedSwitchAfter:   n.ForcedSwitchAfter,
			Speed:               n.Speed,
			JumpSpeed:           n.JumpSpeed,
			DetectionRange:      n.DetectionRange,
			ConeThreshold:       n.ConeThreshold,
			GroundCheckRadius:   n.GroundCheckRadius,
			WaypointTolerance:   n.WaypointTolerance,
			PatrolProbeDistance: n.PatrolProbeDistance,
			ChaseProbeDistance:  n.ChaseProbeDistance,
			SceneLoadDelay:      n.SceneLoadDelay,
			Waypoints:           []Point{{X: 3, Y: 0.5}, {X: 22, Y: 0.5}},
		},
		Level: LevelConfig{
			Gravity:     -9.81,
			PlayerSpeed: 4,
			PlayerJump:  7,
			PlayerStart: Point{X: 34, Y: 0.5},
			NPCStart:    Point{X: 8, Y: 0.5},
			Ground:      []Box{{X: 19, Y: -0.5, W: 40, H: 1}},
			Crates: []Box{
				{X: 12, Y: 0.5, W: 1, H: 1},
				{X: 28, Y: 0.5, W: 1, H: 1},
			},
			Walls: []Box{
				{X: -0.5, Y: 5, W: 1, H: 12},
				{X: 38.5, Y: 5, W: 1, H: 12},
			},
		},
	}
}

// Validate checks ranges that decoding cannot enforce
func (c *Config) Validate() error {
	switch {
	case c.Loop.TickInterval <= 0:
		return fmt.Errorf("%w: loop tick interval must be positive", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume must be within [0, 1], got %g", ErrInvalid, c.Audio.Volume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio sample rate must be positive", ErrInvalid)
	case c.Logging.MaxSizeMB < 0:
		return fmt.Errorf("%w: log max size must not be negative", ErrInvalid)
	case c.Level.Gravity > 0:
		return fmt.Errorf("%w: gravity must pull down (<= 0), got %g", ErrInvalid, c.Level.Gravity)
	case c.Level.PlayerSpeed <= 0 || c.Level.PlayerJump <= 0:
		return fmt.Errorf("%w: player speed and jump must be positive", ErrInvalid)
	case len(c.Level.Ground) == 0:
		return fmt.Errorf("%w: level needs at least one ground box", ErrInvalid)
	}

	for _, group := range [][]Box{c.Level.Ground, c.Level.Crates, c.Level.Walls} {
		for _, b := range group {
			if b.W <= 0 || b.H <= 0 {
				return fmt.Errorf("%w: box at (%g, %g) has non-positive size", ErrInvalid, b.X, b.Y)
			}
		}
	}

	if err := c.NPC.ToControllerConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.KeyTable(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// KeyTable returns the default bindings with the [keys] overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	return input.ApplyBindings(input.DefaultKeyTable(), c.Keys)
}

// ToControllerConfig overlays the tunables on npc.DefaultConfig
func (n NPCConfig) ToControllerConfig() npc.Config {
	cfg := npc.DefaultConfig()
	cfg.DecisionInterval = n.DecisionInterval
	cfg.ForcedSwitchAfter = n.ForcedSwitchAfter
	cfg.Speed = n.Speed
	cfg.JumpSpeed = n.JumpSpeed
	cfg.DetectionRange = n.DetectionRange
	cfg.ConeThreshold = n.ConeThreshold
	cfg.GroundCheckRadius = n.GroundCheckRadius
	cfg.WaypointTolerance = n.WaypointTolerance
	cfg.PatrolProbeDistance = n.PatrolProbeDistance
	cfg.ChaseProbeDistance = n.ChaseProbeDistance
	cfg.SceneLoadDelay = n.SceneLoadDelay

	cfg.Waypoints = make([]vmath.Vec2, len(n.Waypoints))
	for i, p := range n.Waypoints {
		cfg.Waypoints[i] = p.Vec2()
	}
	return cfg
}
