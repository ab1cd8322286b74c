package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// Output is the device a Player writes to
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Clear()
	Close()
}

// speakerOutput routes streams to the system speaker
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Clear()               { speaker.Clear() }
func (speakerOutput) Close()               { speaker.Close() }

// Option configures a Player
type Option func(*Player)

// WithOutput replaces the system speaker
func WithOutput(out Output) Option {
	return func(p *Player) { p.output = out }
}

// Player plays one-shot cues through beep
// Degrades to silent operation when the output device cannot be opened
type Player struct {
	cfg    Config
	logger *zap.Logger
	output Output
	cache  *cueCache

	mu       sync.Mutex
	disabled atomic.Bool
	muted    atomic.Bool
	running  atomic.Bool
}

// NewPlayer creates a player; call Init and Start before Play
func NewPlayer(cfg Config, logger *zap.Logger, opts ...Option) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.normalize()

	p := &Player{
		cfg:    cfg,
		logger: logger.With(zap.String("component", "audio")),
		output: speakerOutput{},
		cache:  newCueCache(synth{rate: beep.SampleRate(cfg.SampleRate)}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Name implements service.Service
func (p *Player) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (p *Player) Dependencies() []string {
	return nil
}

// Init implements service.Service
// Opens the output device; sets disabled on failure (no error returned)
func (p *Player) Init() error {
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := p.output.Init(rate, rate.N(speakerBuffer)); err != nil {
		p.disabled.Store(true)
		p.logger.Warn("audio output unavailable, running silent", zap.Error(err))
		return nil
	}
	p.cache.preload()
	p.logger.Debug("audio output ready",
		zap.Int("sample_rate", p.cfg.SampleRate),
		zap.Float64("volume", p.cfg.Volume))
	return nil
}

// Start implements service.Service
func (p *Player) Start() error {
	if p.disabled.Load() {
		return nil
	}
	p.running.Store(true)
	return nil
}

// Stop implements service.Service, idempotent
func (p *Player) Stop() error {
	if !p.running.CompareAndSwap(true, false) {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.output.Clear()
	p.output.Close()
	return nil
}

// Play queues a cue without blocking, returns false if it was not queued
func (p *Player) Play(cue Cue) bool {
	if !p.running.Load() || p.muted.Load() {
		return false
	}

	buf := p.cache.get(cue)
	if buf == nil {
		p.logger.Debug("cue dropped", zap.Stringer("cue", cue))
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.output.Play(&effects.Gain{Streamer: buf.streamer(), Gain: p.cfg.Volume - 1})
	return true
}

// ToggleMute flips mute state and returns true if now muted
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			if !old {
				p.mu.Lock()
				if p.running.Load() {
					p.output.Clear()
				}
				p.mu.Unlock()
			}
			return !old
		}
	}
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsRunning returns true once started with a working output
func (p *Player) IsRunning() bool {
	return p.running.Load()
}

// IsDisabled returns true if the output device could not be opened
func (p *Player) IsDisabled() bool {
	return p.disabled.Load()
}

// String describes player state for diagnostics
func (p *Player) String() string {
	return fmt.Sprintf("audio(running=%t muted=%t disabled=%t)", p.running.Load(), p.muted.Load(), p.disabled.Load())
}
