package playing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/centipede/internal/application/replay"
	"github.com/younwookim/centipede/internal/application/scene"
	"github.com/younwookim/centipede/internal/application/state"
	"github.com/younwookim/centipede/internal/application/system"
	"github.com/younwookim/centipede/internal/infrastructure/config"
)

const tick = 1.0 / 60

// stubScene stands in for the title screen
type stubScene struct{}

func (stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (stubScene) Draw(*ebiten.Image)                  {}
func (stubScene) OnEnter()                            {}
func (stubScene) OnExit()                             {}

func newTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	p := New(opts)
	p.justPressed = func(ebiten.Key) bool { return false }
	return p
}

// update runs one frame with keys just pressed
func update(t *testing.T, p *Playing, keys ...ebiten.Key) scene.Scene {
	t.Helper()
	p.justPressed = func(k ebiten.Key) bool {
		for _, key := range keys {
			if key == k {
				return true
			}
		}
		return false
	}
	defer func() { p.justPressed = func(ebiten.Key) bool { return false } }()

	next, err := p.Update(tick)
	require.NoError(t, err)
	return next
}

func TestNew(t *testing.T) {
	p := newTestPlaying(t, Options{Seed: 99})

	assert.Equal(t, int64(99), p.Seed())
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, uint64(0), p.Engine().Tick())
	assert.Equal(t, config.Default().Player.Lives, p.Engine().Lives())
}

func TestPlaying_OneTickPerFrame(t *testing.T) {
	p := newTestPlaying(t, Options{})

	for range 10 {
		assert.Nil(t, update(t, p))
	}
	assert.Equal(t, uint64(10), p.Engine().Tick())
}

func TestPlaying_FeedsInputToEngine(t *testing.T) {
	p := newTestPlaying(t, Options{
		Input: system.InputFunc(func() system.InputState {
			return system.InputState{Left: true, Fire: true}
		}),
	})
	startX := p.Engine().Player.Pos.X

	update(t, p)

	assert.Less(t, p.Engine().Player.Pos.X, startX)
	assert.Equal(t, 1, p.Engine().Lasers.Active())
}

func TestPlaying_Pause(t *testing.T) {
	p := newTestPlaying(t, Options{})
	update(t, p)

	update(t, p, ebiten.KeyEscape)
	assert.Equal(t, state.StatePaused, p.State())

	for range 5 {
		update(t, p)
	}
	assert.Equal(t, uint64(1), p.Engine().Tick(), "paused game must not advance")

	update(t, p, ebiten.KeyEscape)
	assert.Equal(t, state.StatePlaying, p.State())

	update(t, p)
	assert.Equal(t, uint64(2), p.Engine().Tick())
}

func TestPlaying_ReplayEndsGame(t *testing.T) {
	data := replay.CreateTestReplayData(3, system.InputState{Right: true})
	p := newTestPlaying(t, Options{Replay: &data})

	assert.Equal(t, data.Seed, p.Seed())

	for range 3 {
		update(t, p)
	}
	assert.Equal(t, uint64(3), p.Engine().Tick())
	assert.Equal(t, state.StatePlaying, p.State())

	update(t, p)
	assert.Equal(t, state.StateGameOver, p.State())
	assert.Equal(t, uint64(3), p.Engine().Tick())
}

func TestPlaying_GameOverExit(t *testing.T) {
	data := replay.CreateTestReplayData(1, system.InputState{})

	t.Run("enter goes to exit scene", func(t *testing.T) {
		p := newTestPlaying(t, Options{
			Replay: &data,
			Exit:   func() scene.Scene { return stubScene{} },
		})
		update(t, p)
		update(t, p)
		require.Equal(t, state.StateGameOver, p.State())

		assert.Nil(t, update(t, p))
		assert.Equal(t, stubScene{}, update(t, p, ebiten.KeyEnter))
	})

	t.Run("enter without exit quits", func(t *testing.T) {
		p := newTestPlaying(t, Options{Replay: &data})
		update(t, p)
		update(t, p)

		p.justPressed = func(k ebiten.Key) bool { return k == ebiten.KeyEnter }
		_, err := p.Update(tick)
		assert.ErrorIs(t, err, scene.ErrQuit)
	})

	t.Run("r restarts", func(t *testing.T) {
		p := newTestPlaying(t, Options{Replay: &data})
		update(t, p)
		update(t, p)

		update(t, p, ebiten.KeyR)
		assert.Equal(t, state.StatePlaying, p.State())
		assert.Equal(t, uint64(0), p.Engine().Tick())
		assert.Equal(t, data.Seed, p.Seed(), "a replay restarts with its own seed")
	})
}

// A config change lands on the next game, not the running one
func TestPlaying_RestartPicksUpNewConfig(t *testing.T) {
	data := replay.CreateTestReplayData(1, system.InputState{})
	source := config.NewSource(config.Default())
	p := newTestPlaying(t, Options{Source: source, Replay: &data})
	require.Equal(t, 3, p.Engine().Lives())

	reloaded := config.Default()
	reloaded.Player.Lives = 7
	source.Set(reloaded)

	update(t, p)
	assert.Equal(t, 3, p.Engine().Lives(), "running game keeps its config")

	update(t, p)
	require.Equal(t, state.StateGameOver, p.State())

	update(t, p, ebiten.KeyR)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 7, p.Engine().Lives())
}

func TestPlaying_RecordsEveryTick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := newTestPlaying(t, Options{
		RecordPath: path,
		ConfigName: config.GameFile,
		Input: system.InputFunc(func() system.InputState {
			return system.InputState{Up: true}
		}),
	})

	for range 20 {
		update(t, p)
	}
	p.OnExit()

	_, err := os.Stat(path)
	require.NoError(t, err)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, p.Seed(), data.Seed)
	assert.Equal(t, config.GameFile, data.Config)
	require.Len(t, data.Frames, 20)
	assert.True(t, data.Frames[19].U)
}

// Playing a recording reproduces the recorded game
func TestPlaying_RecordThenReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	frame := 0
	live := newTestPlaying(t, Options{
		RecordPath: path,
		Input: system.InputFunc(func() system.InputState {
			frame++
			return system.InputState{Left: frame%90 < 45, Right: frame%90 >= 45, Fire: true}
		}),
	})
	for range 300 {
		update(t, live)
	}
	live.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	replayed := newTestPlaying(t, Options{Replay: data})
	for range 300 {
		update(t, replayed)
	}

	assert.Equal(t, live.Engine().Score(), replayed.Engine().Score())
	assert.Equal(t, live.Engine().Player.Pos, replayed.Engine().Player.Pos)
	assert.Equal(t, live.Engine().Centipede.Len(), replayed.Engine().Centipede.Len())
}
