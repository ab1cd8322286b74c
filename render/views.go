package render

import (
	"github.com/lixenwraith/sentinel/npc"
	"github.com/lixenwraith/sentinel/vmath"
)

// SightLine records the controller's sight ray for drawing
// Implements npc.SightLine
type SightLine struct {
	Start, End vmath.Vec2
	Color      npc.Color
	Visible    bool
}

// SetEndpoints implements npc.SightLine
func (s *SightLine) SetEndpoints(start, end vmath.Vec2) {
	s.Start, s.End = start, end
	s.Visible = true
}

// SetColor implements npc.SightLine
func (s *SightLine) SetColor(c npc.Color) {
	s.Color = c
}

// Reset hides the line until the next SetEndpoints
func (s *SightLine) Reset() {
	*s = SightLine{}
}

const labelCount = int(npc.LabelCountdown) + 1

// LabelBoard holds the controller's status labels
// Implements npc.Labels
type LabelBoard struct {
	text   [labelCount]string
	active [labelCount]bool
}

// SetLabelActive implements npc.Labels
func (b *LabelBoard) SetLabelActive(id npc.LabelID, active bool) {
	if valid(id) {
		b.active[id] = active
	}
}

// SetLabelText implements npc.Labels
func (b *LabelBoard) SetLabelText(id npc.LabelID, text string) {
	if valid(id) {
		b.text[id] = text
	}
}

// Text returns the label text, empty if never set
func (b *LabelBoard) Text(id npc.LabelID) string {
	if !valid(id) {
		return ""
	}
	return b.text[id]
}

// Active reports whether the label is highlighted
func (b *LabelBoard) Active(id npc.LabelID) bool {
	return valid(id) && b.active[id]
}

// Reset clears every label
func (b *LabelBoard) Reset() {
	*b = LabelBoard{}
}

func valid(id npc.LabelID) bool {
	return id >= 0 && int(id) < labelCount
}
