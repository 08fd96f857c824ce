package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpiderDirection_Bounced(t *testing.T) {
	tests := []struct {
		dir  SpiderDirection
		want SpiderDirection
	}{
		{SpiderUp, SpiderDown},
		{SpiderDown, SpiderUp},
		{SpiderUpLeft, SpiderDownLeft},
		{SpiderDownLeft, SpiderUpLeft},
		{SpiderUpRight, SpiderDownRight},
		{SpiderDownRight, SpiderUpRight},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dir.Bounced())
			assert.Equal(t, tt.dir, tt.dir.Bounced().Bounced())

			v, b := tt.dir.Velocity(), tt.dir.Bounced().Velocity()
			assert.Equal(t, v.X, b.X)
			assert.Equal(t, -v.Y, b.Y)
		})
	}
}

func TestNewSpider_Spawn(t *testing.T) {
	s := NewSpider(NewRect(0, 128, 240, 120), 15, 8)

	assert.True(t, s.Alive)
	assert.Equal(t, SpiderUpRight, s.Dir)
	assert.Equal(t, Vec2{X: 7.5, Y: 132}, s.Pos)
	assert.Equal(t, NewRect(7.5, 132, 225, 112), s.Limits)
}

func TestSpider_CheckLaserCollision(t *testing.T) {
	s := NewSpider(NewRect(0, 128, 240, 120), 15, 8)
	laser := RectAround(s.Pos, 1, 6)

	assert.False(t, s.CheckLaserCollision(NewRect(100, 0, 1, 6)))
	assert.True(t, s.CheckLaserCollision(laser))
	assert.False(t, s.Alive)

	// dead spiders can't be hit again
	assert.False(t, s.CheckLaserCollision(laser))
}
