package scene

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sentinel/engine"
)

type fakeScene struct {
	name     string
	enterErr error
	log      *[]string
	updates  int
}

func (s *fakeScene) Name() string { return s.name }

func (s *fakeScene) Enter() error {
	*s.log = append(*s.log, "enter "+s.name)
	return s.enterErr
}

func (s *fakeScene) Exit() {
	*s.log = append(*s.log, "exit "+s.name)
}

func (s *fakeScene) Update(time.Duration) { s.updates++ }

func newTestManager(t *testing.T) (*Manager, map[string]*fakeScene, *[]string) {
	t.Helper()
	log := &[]string{}
	m := NewManager(nil)
	scenes := make(map[string]*fakeScene)
	for _, name := range []string{Start, Play, Victory, Defeat} {
		s := &fakeScene{name: name, log: log}
		scenes[name] = s
		require.NoError(t, m.Register(s))
	}
	return m, scenes, log
}

func TestManager_RequestAppliedAtBoundary(t *testing.T) {
	m, _, log := newTestManager(t)
	require.NoError(t, m.Load(Start))

	m.RequestLoad(Play)
	assert.Equal(t, Start, m.ActiveName(), "request does not switch immediately")
	name, ok := m.Pending()
	assert.True(t, ok)
	assert.Equal(t, Play, name)

	require.NoError(t, m.Apply())
	assert.Equal(t, Play, m.ActiveName())
	assert.Equal(t, []string{"enter Start", "exit Start", "enter Play"}, *log)

	_, ok = m.Pending()
	assert.False(t, ok)
	assert.NoError(t, m.Apply(), "nothing pending")
}

func TestManager_LastRequestWins(t *testing.T) {
	m, _, _ := newTestManager(t)
	require.NoError(t, m.Load(Play))

	m.RequestLoad(Victory)
	m.RequestLoad(Defeat)
	require.NoError(t, m.Apply())
	assert.Equal(t, Defeat, m.ActiveName())
}

func TestManager_UnknownSceneKeepsActive(t *testing.T) {
	m, _, log := newTestManager(t)
	require.NoError(t, m.Load(Play))

	m.RequestLoad("Credits")
	err := m.Apply()
	assert.ErrorIs(t, err, ErrUnknownScene)
	assert.Equal(t, Play, m.ActiveName())
	assert.Equal(t, []string{"enter Play"}, *log)
}

func TestManager_DuplicateRegister(t *testing.T) {
	m, _, _ := newTestManager(t)
	err := m.Register(&fakeScene{name: Play, log: &[]string{}})
	assert.ErrorIs(t, err, ErrDuplicateScene)
}

func TestLoadAfter(t *testing.T) {
	m, scenes, _ := newTestManager(t)
	require.NoError(t, m.Load(Play))

	clock := engine.NewScheduler()
	LoadAfter(m, clock, Victory, 500*time.Millisecond)
	for i := 0; i < 4; i++ {
		clock.Tick(100 * time.Millisecond)
		require.NoError(t, m.Update(100*time.Millisecond))
	}
	assert.Equal(t, Play, m.ActiveName())
	assert.Equal(t, 4, scenes[Play].updates)

	clock.Tick(100 * time.Millisecond)
	require.NoError(t, m.Update(100*time.Millisecond))
	assert.Equal(t, Victory, m.ActiveName())
	assert.Equal(t, 5, scenes[Play].updates, "active scene ticks on the switching frame")
}

func TestLoadAfter_DroppedClockNeverLoads(t *testing.T) {
	m, _, _ := newTestManager(t)
	require.NoError(t, m.Load(Play))

	clock := engine.NewScheduler()
	LoadAfter(m, clock, Defeat, 500*time.Millisecond)
	require.Equal(t, 1, clock.Pending())

	// Manager frames alone never fire the deferred request
	for i := 0; i < 10; i++ {
		require.NoError(t, m.Update(100*time.Millisecond))
	}
	assert.Equal(t, Play, m.ActiveName())
	_, ok := m.Pending()
	assert.False(t, ok)
}

func TestManager_EnterFailureRestoresPrevious(t *testing.T) {
	m, scenes, _ := newTestManager(t)
	require.NoError(t, m.Load(Start))

	scenes[Play].enterErr = errors.New("level missing")
	err := m.Load(Play)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level missing")
	assert.Equal(t, Start, m.ActiveName())
}

func TestManager_OnChange(t *testing.T) {
	m, _, _ := newTestManager(t)

	var changes [][2]string
	m.OnChange(func(from, to string) { changes = append(changes, [2]string{from, to}) })

	require.NoError(t, m.Load(Start))
	require.NoError(t, m.Load(Play))
	assert.Equal(t, [][2]string{{"", Start}, {Start, Play}}, changes)
}

func TestManager_Shutdown(t *testing.T) {
	m, _, log := newTestManager(t)
	require.NoError(t, m.Load(Play))
	m.RequestLoad(Defeat)

	m.Shutdown()
	assert.Nil(t, m.Active())
	assert.Equal(t, "exit Play", (*log)[len(*log)-1])

	require.NoError(t, m.Update(2*time.Second))
	assert.Equal(t, "", m.ActiveName())
}

func TestLoader(t *testing.T) {
	m, _, _ := newTestManager(t)
	l := NewLoader(m)

	l.LoadPlay()
	require.NoError(t, m.Apply())
	assert.Equal(t, Play, m.ActiveName())

	l.Restart()
	require.NoError(t, m.Apply())
	assert.Equal(t, Start, m.ActiveName())
}
