package npc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sentinel/audio"
	"github.com/lixenwraith/sentinel/engine"
	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/vmath"
)

type castFunc func(origin, dir vmath.Vec2, maxDist float64, mask physics.Mask) (physics.Hit, bool)
type boxCastFunc func(origin, size, dir vmath.Vec2, maxDist float64, mask physics.Mask) (physics.Hit, bool)

type castCall struct {
	origin, size, dir vmath.Vec2
	maxDist           float64
	mask              physics.Mask
}

type fakePhysics struct {
	grounded bool
	sight    castFunc // raycasts with the sight mask
	probe    castFunc // raycasts with any other mask
	box      boxCastFunc

	groundQueries []castCall
	sightCalls    []castCall
	probeCalls    []castCall
	boxCalls      []castCall
	sightMask     physics.Mask
}

func (f *fakePhysics) OverlapCircle(center vmath.Vec2, radius float64, mask physics.Mask) bool {
	f.groundQueries = append(f.groundQueries, castCall{origin: center, maxDist: radius, mask: mask})
	return f.grounded
}

func (f *fakePhysics) Raycast(origin, dir vmath.Vec2, maxDist float64, mask physics.Mask) (physics.Hit, bool) {
	call := castCall{origin: origin, dir: dir, maxDist: maxDist, mask: mask}
	if mask == f.sightMask {
		f.sightCalls = append(f.sightCalls, call)
		if f.sight != nil {
			return f.sight(origin, dir, maxDist, mask)
		}
		return physics.Hit{}, false
	}
	f.probeCalls = append(f.probeCalls, call)
	if f.probe != nil {
		return f.probe(origin, dir, maxDist, mask)
	}
	return physics.Hit{}, false
}

func (f *fakePhysics) BoxCast(origin, size, dir vmath.Vec2, maxDist float64, mask physics.Mask) (physics.Hit, bool) {
	f.boxCalls = append(f.boxCalls, castCall{origin: origin, size: size, dir: dir, maxDist: maxDist, mask: mask})
	if f.box != nil {
		return f.box(origin, size, dir, maxDist, mask)
	}
	return physics.Hit{}, false
}

func hitTag(tag physics.Tag) castFunc {
	return func(vmath.Vec2, vmath.Vec2, float64, physics.Mask) (physics.Hit, bool) {
		return physics.Hit{Tag: tag, Distance: 1}, true
	}
}

func boxHitTag(tag physics.Tag) boxCastFunc {
	return func(vmath.Vec2, vmath.Vec2, vmath.Vec2, float64, physics.Mask) (physics.Hit, bool) {
		return physics.Hit{Tag: tag, Distance: 0.05}, true
	}
}

type fakeBody struct {
	pos       vmath.Vec2
	vy        float64
	jumps     int
	positions int
}

func (b *fakeBody) Position() vmath.Vec2 { return b.pos }

func (b *fakeBody) SetPosition(p vmath.Vec2) {
	b.pos = p
	b.positions++
}

func (b *fakeBody) SetVerticalVelocity(v float64) {
	b.vy = v
	b.jumps++
}

type fakeTarget struct {
	pos vmath.Vec2
}

func (t *fakeTarget) Position() vmath.Vec2 { return t.pos }

type fakeAudio struct {
	played []audio.Cue
}

func (a *fakeAudio) Play(c audio.Cue) bool {
	a.played = append(a.played, c)
	return true
}

type fakeSight struct {
	start, end vmath.Vec2
	color      Color
	colorSets  int
}

func (s *fakeSight) SetEndpoints(start, end vmath.Vec2) {
	s.start, s.end = start, end
}

func (s *fakeSight) SetColor(c Color) {
	s.color = c
	s.colorSets++
}

type fakeLabels struct {
	active map[LabelID]bool
	text   map[LabelID]string
}

func newFakeLabels() *fakeLabels {
	return &fakeLabels{
		active: make(map[LabelID]bool),
		text:   make(map[LabelID]string),
	}
}

func (l *fakeLabels) SetLabelActive(id LabelID, active bool) { l.active[id] = active }
func (l *fakeLabels) SetLabelText(id LabelID, text string)   { l.text[id] = text }

type fakeScenes struct {
	requests []string
}

func (s *fakeScenes) RequestLoad(name string) {
	s.requests = append(s.requests, name)
}

// fakeRand replays values, then repeats the last one
type fakeRand struct {
	values []float64
	calls  int
}

func (r *fakeRand) Float64() float64 {
	r.calls++
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v
}

// rig bundles a controller with its fakes
type rig struct {
	c         *Controller
	cfg       Config
	physics   *fakePhysics
	body      *fakeBody
	player    *fakeTarget
	audio     *fakeAudio
	sight     *fakeSight
	labels    *fakeLabels
	scenes    *fakeScenes
	scheduler *engine.Scheduler
	rand      *fakeRand
}

// newRig places the NPC at (0, 0.5) facing right with the player far behind it
func newRig(t *testing.T, mutate ...func(*Config)) *rig {
	t.Helper()

	cfg := DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}

	r := &rig{
		cfg:       cfg,
		physics:   &fakePhysics{grounded: true, sightMask: cfg.SightMask},
		body:      &fakeBody{pos: vmath.V2(0, 0.5)},
		player:    &fakeTarget{pos: vmath.V2(-20, 0.5)},
		audio:     &fakeAudio{},
		sight:     &fakeSight{},
		labels:    newFakeLabels(),
		scenes:    &fakeScenes{},
		scheduler: engine.NewScheduler(),
		rand:      &fakeRand{},
	}

	c, err := New(cfg, Deps{
		Physics:   r.physics,
		Body:      r.body,
		Player:    r.player,
		Audio:     r.audio,
		Scenes:    r.scenes,
		Scheduler: r.scheduler,
		Sight:     r.sight,
		Labels:    r.labels,
		Rand:      r.rand,
	}, nil)
	require.NoError(t, err)
	c.Start()

	r.c = c
	return r
}

// tick advances controller and scheduler n times by dt
func (r *rig) tick(n int, dt time.Duration) {
	for i := 0; i < n; i++ {
		r.scheduler.Tick(dt)
		r.c.Tick(dt)
	}
}

// toggle switches Idle <-> Patrol as a successful decision would
func (r *rig) toggle() {
	r.c.machine.HandleEvent(r.c, EventToggle)
	r.audio.played = nil
}
