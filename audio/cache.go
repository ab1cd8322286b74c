package audio

import "sync"

// cueCache stores pre-generated unity-gain buffers
type cueCache struct {
	mu    sync.RWMutex
	synth synth
	store [cueCount]floatBuffer
	ready [cueCount]bool
}

func newCueCache(s synth) *cueCache {
	return &cueCache{synth: s}
}

// get returns cached buffer or generates on demand
func (c *cueCache) get(cue Cue) floatBuffer {
	if !cue.Valid() {
		return nil
	}

	c.mu.RLock()
	if c.ready[cue] {
		buf := c.store[cue]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[cue] {
		return c.store[cue]
	}

	buf := c.synth.generate(cue)
	c.store[cue] = buf
	c.ready[cue] = true
	return buf
}

// preload generates every cue so the first play does not stall the tick
func (c *cueCache) preload() {
	for _, cue := range Cues() {
		c.get(cue)
	}
}
