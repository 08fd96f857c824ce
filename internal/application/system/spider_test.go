package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/centipede/internal/domain/entity"
)

func newTestSpiderSystem() *SpiderSystem {
	cfg := testConfig().Spider
	spider := entity.NewSpider(testArena().SpiderArea, cfg.Width, cfg.Height)
	return NewSpiderSystem(spider, cfg.Speed, cfg.MoveDuration, cfg.RespawnDuration, testRNG())
}

func TestSpiderSystem_RespawnTiming(t *testing.T) {
	s := newTestSpiderSystem()
	sp := s.Spider()
	spawn := sp.Pos

	for i := 0; i < 40; i++ {
		s.Update(testDT)
	}
	require.NotEqual(t, spawn, sp.Pos)

	respawns := 0
	s.OnRespawn = func(*entity.Spider) { respawns++ }

	require.True(t, s.CheckLaserCollision(sp.Bounds()))

	// 5s at 60 ticks per second
	for i := 0; i < 299; i++ {
		s.Update(testDT)
		require.False(t, sp.Alive, "tick %d", i)
	}

	s.Update(testDT)
	assert.True(t, sp.Alive)
	assert.Equal(t, spawn, sp.Pos)
	assert.Equal(t, entity.SpiderSpawnDirection, sp.Dir)
	assert.Equal(t, 1, respawns)
}

func TestSpiderSystem_DeadSpiderDoesNotMove(t *testing.T) {
	s := newTestSpiderSystem()
	sp := s.Spider()
	sp.Kill()
	pos := sp.Pos

	s.Update(testDT)

	assert.Equal(t, pos, sp.Pos)
	assert.False(t, s.CheckLaserCollision(sp.Bounds()))

	canvas := &recordingCanvas{}
	s.Draw(canvas)
	assert.Empty(t, canvas.calls)
}

func TestSpiderSystem_BouncesOffTop(t *testing.T) {
	s := newTestSpiderSystem()
	sp := s.Spider()
	require.Equal(t, entity.SpiderUpRight, sp.Dir)

	// spawned on the top edge heading up
	s.Update(testDT)

	assert.Equal(t, entity.SpiderDownRight, sp.Dir)
}

func TestSpiderSystem_BouncesOffBottom(t *testing.T) {
	s := newTestSpiderSystem()
	sp := s.Spider()
	sp.Pos = entity.Vec2{X: 100, Y: sp.Limits.Bottom()}
	sp.Dir = entity.SpiderDownLeft

	s.Update(testDT)

	assert.Equal(t, entity.SpiderUpLeft, sp.Dir)
}

func TestAllowedSpiderDirections(t *testing.T) {
	s := newTestSpiderSystem()
	sp := s.Spider()

	tests := []struct {
		name string
		x    float64
		want []entity.SpiderDirection
	}{
		{"left wall", sp.Limits.Left, leftEdgeDirections},
		{"right wall", sp.Limits.Right(), rightEdgeDirections},
		{"interior", 100, allSpiderDirections},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp.Pos.X = tt.x
			assert.Equal(t, tt.want, AllowedSpiderDirections(sp))
		})
	}
}

func TestSpiderSystem_StaysInBand(t *testing.T) {
	s := newTestSpiderSystem()
	sp := s.Spider()
	step := 60 * testDT

	seen := map[entity.SpiderDirection]bool{}
	for i := 0; i < 60*120; i++ {
		s.Update(testDT)
		seen[sp.Dir] = true

		require.GreaterOrEqual(t, sp.Pos.X, sp.Limits.Left)
		require.LessOrEqual(t, sp.Pos.X, sp.Limits.Right())
		require.GreaterOrEqual(t, sp.Pos.Y, sp.Limits.Top-2*step, "tick %d", i)
		require.LessOrEqual(t, sp.Pos.Y, sp.Limits.Bottom()+2*step, "tick %d", i)
	}

	assert.Len(t, seen, 6)
}
