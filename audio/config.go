package audio

import "time"

const (
	DefaultSampleRate = 44100
	DefaultVolume     = 0.5

	// Speaker buffer length, trades latency for underrun safety
	speakerBuffer = time.Second / 10
)

// Config holds audio settings
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 - 1.0
	SampleRate int
}

// DefaultConfig returns enabled audio at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     DefaultVolume,
		SampleRate: DefaultSampleRate,
	}
}

// normalize clamps volume and fills a missing sample rate
func (c Config) normalize() Config {
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultSampleRate
	}
	return c
}
