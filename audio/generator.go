package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// synth renders waveforms at a fixed sample rate
type synth struct {
	rate beep.SampleRate
}

// samples converts a duration to a sample count
func (s synth) samples(d time.Duration) int {
	return s.rate.N(d)
}

// oscillator generates raw waveform samples
func (s synth) oscillator(waveType int, freq float64, d time.Duration) floatBuffer {
	buf := make(floatBuffer, s.samples(d))
	phase := 0.0
	phaseInc := freq / float64(s.rate)

	for i := range buf {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// envelope applies linear attack/release in place
func (s synth) envelope(buf floatBuffer, attack, release time.Duration) floatBuffer {
	total := len(buf)
	attackSamples := s.samples(attack)
	releaseSamples := s.samples(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
	return buf
}

// tone is an enveloped oscillator
func (s synth) tone(waveType int, freq float64, d, attack, release time.Duration) floatBuffer {
	return s.envelope(s.oscillator(waveType, freq, d), attack, release)
}

// mix adds b into a scaled by bScale, extending a if needed
func mix(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concat joins buffers end to end
func concat(parts ...floatBuffer) floatBuffer {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	result := make(floatBuffer, 0, n)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}

// normalizePeak scales the buffer so its peak is at most 1
func normalizePeak(buf floatBuffer) floatBuffer {
	peak := 0.0
	for _, v := range buf {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak > 1 {
		for i := range buf {
			buf[i] /= peak
		}
	}
	return buf
}

// --- Cue generators (unity gain) ---

// Low saw thud layered with a noise burst
func (s synth) collision() floatBuffer {
	thud := s.tone(waveSaw, 110, 250*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond)
	burst := s.tone(waveNoise, 0, 120*time.Millisecond, 2*time.Millisecond, 100*time.Millisecond)
	return normalizePeak(mix(thud, burst, 0.4))
}

// Rising two-note blip
func (s synth) idleToPatrol() floatBuffer {
	return concat(
		s.tone(waveSquare, 659.25, 80*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond),
		s.tone(waveSquare, 880.00, 110*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond),
	)
}

// Falling two-note blip
func (s synth) patrolToIdle() floatBuffer {
	return concat(
		s.tone(waveSquare, 880.00, 80*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond),
		s.tone(waveSquare, 659.25, 110*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond),
	)
}

// Three short alarm beeps with a fifth overtone
func (s synth) chase() floatBuffer {
	beepTone := func() floatBuffer {
		fund := s.tone(waveSine, 880, 90*time.Millisecond, 3*time.Millisecond, 30*time.Millisecond)
		over := s.tone(waveSine, 1320, 90*time.Millisecond, 3*time.Millisecond, 30*time.Millisecond)
		return normalizePeak(mix(fund, over, 0.4))
	}
	gap := make(floatBuffer, s.samples(40*time.Millisecond))
	return concat(beepTone(), gap, beepTone(), gap, beepTone())
}

// generate dispatches to the cue generator
func (s synth) generate(c Cue) floatBuffer {
	switch c {
	case CueCollision:
		return s.collision()
	case CueIdleToPatrol:
		return s.idleToPatrol()
	case CuePatrolToIdle:
		return s.patrolToIdle()
	case CueChase:
		return s.chase()
	default:
		return nil
	}
}

// streamer plays the buffer once as stereo
func (b floatBuffer) streamer() beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= len(b) {
			return 0, false
		}
		for n < len(samples) && pos < len(b) {
			samples[n][0] = b[pos]
			samples[n][1] = b[pos]
			n++
			pos++
		}
		return n, true
	})
}
