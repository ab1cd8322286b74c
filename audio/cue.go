package audio

import (
	"errors"
	"fmt"
	"strings"
)

// Cue identifies a one-shot sound effect
type Cue int

const (
	CueCollision    Cue = iota // NPC touched the player
	CueIdleToPatrol            // Idle -> Patrol
	CuePatrolToIdle            // Patrol -> Idle
	CueChase                   // Player spotted
	cueCount
)

var cueNames = [cueCount]string{
	CueCollision:    "collision",
	CueIdleToPatrol: "idle_to_patrol",
	CuePatrolToIdle: "patrol_to_idle",
	CueChase:        "chase",
}

// ErrUnknownCue is returned by ParseCue for unrecognized names
var ErrUnknownCue = errors.New("unknown audio cue")

// String returns the config name of the cue
func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return fmt.Sprintf("cue(%d)", int(c))
	}
	return cueNames[c]
}

// Valid reports whether c is a defined cue
func (c Cue) Valid() bool {
	return c >= 0 && c < cueCount
}

// ParseCue maps a config name to a cue, case-insensitive
func ParseCue(name string) (Cue, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range cueNames {
		if n == name {
			return Cue(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCue, name)
}

// Cues returns every defined cue in declaration order
func Cues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		cues = append(cues, c)
	}
	return cues
}
