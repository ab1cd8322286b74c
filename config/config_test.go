package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sentinel/input"
	"github.com/lixenwraith/sentinel/npc"
	"github.com/lixenwraith/sentinel/vmath"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	ctrl := cfg.NPC.ToControllerConfig()
	def := npc.DefaultConfig()
	assert.Equal(t, def.DecisionInterval, ctrl.DecisionInterval)
	assert.Equal(t, def.SightMask, ctrl.SightMask)
	assert.Equal(t, []vmath.Vec2{vmath.V2(3, 0.5), vmath.V2(22, 0.5)}, ctrl.Waypoints)
}

func TestLoad_TOML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "custom.toml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "logs", cfg.Logging.Dir, "unset keys keep defaults")
	assert.Equal(t, 20*time.Millisecond, cfg.Loop.TickInterval)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.Equal(t, 3*time.Second, cfg.NPC.DecisionInterval)
	assert.Equal(t, 750*time.Millisecond, cfg.NPC.SceneLoadDelay)
	assert.Equal(t, 2.5, cfg.NPC.Speed)
	assert.Equal(t, 7.0, cfg.NPC.JumpSpeed)
	assert.Len(t, cfg.NPC.Waypoints, 3)
	assert.Equal(t, -12.0, cfg.Level.Gravity)
	assert.Equal(t, []Box{{X: 5, Y: 0.5, W: 1, H: 1}}, cfg.Level.Crates)
	assert.Len(t, cfg.Level.Ground, 1)
	assert.Equal(t, map[string]string{"j": "move_left", "l": "move_right", "enter": "jump"}, cfg.Keys)

	kt, err := cfg.KeyTable()
	require.NoError(t, err)
	assert.Equal(t, input.IntentMoveLeft, kt.Runes['j'])
	assert.Equal(t, input.IntentMoveLeft, kt.Runes['a'], "defaults survive overrides")
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "custom.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 10*time.Millisecond, cfg.Loop.TickInterval)
	assert.Equal(t, 2*time.Second, cfg.NPC.DecisionInterval)
	assert.Equal(t, 4, cfg.NPC.ForcedSwitchAfter)
	assert.Equal(t, 7.5, cfg.NPC.DetectionRange)
	assert.Equal(t, Point{X: 10, Y: 0.5}, cfg.Level.PlayerStart)

	ctrl := cfg.NPC.ToControllerConfig()
	assert.Equal(t, 4, ctrl.ForcedSwitchAfter)
	assert.Equal(t, []vmath.Vec2{vmath.V2(2, 0.5), vmath.V2(4, 0.5)}, ctrl.Waypoints)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	ini := filepath.Join(dir, "sentinel.ini")
	require.NoError(t, os.WriteFile(ini, []byte("x=1"), 0o644))
	_, err = Load(ini)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[npc\nspeed = "), 0o644))
	_, err = Load(broken)
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "invalid.yaml"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, npc.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.Loop.TickInterval = 0 }},
		{"loud", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"no sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"upward gravity", func(c *Config) { c.Level.Gravity = 3 }},
		{"no ground", func(c *Config) { c.Level.Ground = nil }},
		{"flat crate", func(c *Config) { c.Level.Crates = []Box{{X: 1, Y: 1, W: 1}} }},
		{"still player", func(c *Config) { c.Level.PlayerSpeed = 0 }},
		{"npc speed", func(c *Config) { c.NPC.Speed = 0 }},
		{"unknown action", func(c *Config) { c.Keys = map[string]string{"x": "teleport"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestBox_AABB(t *testing.T) {
	box := Box{X: 2, Y: 1, W: 4, H: 2}.AABB()
	assert.Equal(t, vmath.V2(0, 0), box.Min())
	assert.Equal(t, vmath.V2(4, 2), box.Max())
}
