package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/centipede/internal/domain/entity"
)

func TestMushroomField_SpawnIsGridAligned(t *testing.T) {
	f := newTestField()
	area := testArena().MushroomArea

	f.Spawn(30)

	require.Equal(t, 30, f.Len())
	for _, m := range f.Mushrooms() {
		assert.True(t, area.Contains(m.Pos), "mushroom %v outside spawn area", m.Pos)

		col := (m.Pos.X - area.Left - 4) / 8
		row := (m.Pos.Y - area.Top - 4) / 8
		assert.Equal(t, float64(int(col)), col)
		assert.Equal(t, float64(int(row)), row)
		assert.Equal(t, entity.MaxMushroomHealth, m.Health())
	}
}

func TestMushroomField_SpawnIsDeterministic(t *testing.T) {
	a, b := newTestField(), newTestField()
	a.Spawn(30)
	b.Spawn(30)

	for i, m := range a.Mushrooms() {
		assert.Equal(t, m.Pos, b.Mushrooms()[i].Pos)
	}
}

func TestMushroomField_LaserDamageIsMonotonic(t *testing.T) {
	f := newTestField()
	pos := entity.Vec2{X: 36, Y: 44}
	m := f.AddMushroom(pos)

	var destroyed []*entity.Mushroom
	f.OnDestroyed = func(d *entity.Mushroom) { destroyed = append(destroyed, d) }

	for want := entity.Health(3); want > 0; want-- {
		require.True(t, f.CheckLaserCollision(laserAt(pos)))
		assert.Equal(t, want, m.Health())
		assert.Equal(t, 1, f.Len())
	}

	// fourth hit destroys it
	assert.True(t, f.CheckLaserCollision(laserAt(pos)))
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, []*entity.Mushroom{m}, destroyed)

	// fifth hit finds nothing
	assert.False(t, f.CheckLaserCollision(laserAt(pos)))
	assert.Len(t, destroyed, 1)
}

func TestMushroomField_FirstHitIsOldest(t *testing.T) {
	f := newTestField()
	older := f.AddMushroom(entity.Vec2{X: 100, Y: 100})
	newer := f.AddMushroom(entity.Vec2{X: 100, Y: 100})

	require.True(t, f.CheckLaserCollision(laserAt(entity.Vec2{X: 100, Y: 100})))

	assert.Equal(t, entity.Health(3), older.Health())
	assert.Equal(t, entity.MaxMushroomHealth, newer.Health())
}

func TestMushroomField_CellBorders(t *testing.T) {
	tests := []struct {
		name  string
		laser entity.Rect
		want  bool
	}{
		{"laser straddling cell border", entity.NewRect(7.5, 4, 1, 6), true},
		{"laser ending on mushroom edge", entity.NewRect(7, 4, 1, 6), false},
		{"laser above the arena", entity.NewRect(10, -5, 1, 6), true},
		{"laser far away", entity.NewRect(100, 4, 1, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField()
			f.AddMushroom(entity.Vec2{X: 12, Y: 4}) // spans 8..16 x 0..8

			assert.Equal(t, tt.want, f.CheckLaserCollision(tt.laser))
		})
	}
}

func TestMushroomField_CheckSpiderCollision(t *testing.T) {
	f := newTestField()
	f.AddMushroom(entity.Vec2{X: 100, Y: 140})
	f.AddMushroom(entity.Vec2{X: 108, Y: 140})
	f.AddMushroom(entity.Vec2{X: 200, Y: 140})

	var eaten []entity.Vec2
	f.OnEaten = func(m *entity.Mushroom) { eaten = append(eaten, m.Pos) }

	spider := entity.RectAround(entity.Vec2{X: 104, Y: 140}, 15, 8)

	// one removal per call
	assert.True(t, f.CheckSpiderCollision(spider))
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.CheckSpiderCollision(spider))
	assert.Equal(t, 1, f.Len())
	assert.False(t, f.CheckSpiderCollision(spider))

	assert.Equal(t, []entity.Vec2{{X: 100, Y: 140}, {X: 108, Y: 140}}, eaten)
	assert.Equal(t, entity.Vec2{X: 200, Y: 140}, f.Mushrooms()[0].Pos)
}

func TestMushroomField_DamageKeepsUntilRemoved(t *testing.T) {
	f := newTestField()
	m := f.AddMushroom(entity.Vec2{X: 36, Y: 44})

	for i := 0; i < 6; i++ {
		f.Damage(m)
	}
	assert.Equal(t, entity.Health(0), m.Health())
	assert.Equal(t, 1, f.Len())

	f.Remove(m)
	f.Remove(m)
	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Near(m.Bounds()))
}

func TestMushroomField_ClearAndDraw(t *testing.T) {
	f := newTestField()
	f.Spawn(10)
	hit := f.AddMushroom(entity.Vec2{X: 36, Y: 44})
	f.Damage(hit)

	canvas := &recordingCanvas{}
	f.Draw(canvas)
	assert.Len(t, canvas.calls, 11)
	assert.Equal(t, entity.SpriteMushroomDamaged1, canvas.calls[10].id)

	f.Clear()
	assert.Equal(t, 0, f.Len())
	assert.False(t, f.CheckLaserCollision(laserAt(entity.Vec2{X: 36, Y: 44})))
}
