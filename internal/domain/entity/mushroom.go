package entity

// Health is a mushroom's remaining hit count. It only ever moves down one
// step at a time and cannot leave [0, MaxMushroomHealth].
type Health uint8

// MaxMushroomHealth is the health of a freshly spawned mushroom
const MaxMushroomHealth Health = 4

// Decrement returns the health after one hit. Zero stays zero.
func (h Health) Decrement() Health {
	if h == 0 {
		return 0
	}
	return h - 1
}

// Sprite returns the damage tier texture for this health
func (h Health) Sprite() SpriteID {
	switch h {
	case MaxMushroomHealth:
		return SpriteMushroom
	case 3:
		return SpriteMushroomDamaged1
	case 2:
		return SpriteMushroomDamaged2
	case 1:
		return SpriteMushroomDamaged3
	default:
		return SpriteNone
	}
}

// Mushroom is a static, damageable obstacle
type Mushroom struct {
	ID     EntityID
	Pos    Vec2 // center
	Size   float64
	health Health
}

// NewMushroom creates a full-health mushroom centered on pos
func NewMushroom(id EntityID, pos Vec2, size float64) *Mushroom {
	return &Mushroom{
		ID:     id,
		Pos:    pos,
		Size:   size,
		health: MaxMushroomHealth,
	}
}

// Damage removes one point of health and returns what is left.
// Damaging a destroyed mushroom is a no-op.
func (m *Mushroom) Damage() Health {
	m.health = m.health.Decrement()
	return m.health
}

// Health returns the remaining health
func (m *Mushroom) Health() Health {
	return m.health
}

// IsDestroyed returns true once health reaches zero
func (m *Mushroom) IsDestroyed() bool {
	return m.health == 0
}

// Sprite returns the texture for the current damage tier
func (m *Mushroom) Sprite() SpriteID {
	return m.health.Sprite()
}

// Position returns the center
func (m *Mushroom) Position() Vec2 {
	return m.Pos
}

// Bounds returns the collider
func (m *Mushroom) Bounds() Rect {
	return RectAround(m.Pos, m.Size, m.Size)
}

// LeftEdge returns the middle of the left side
func (m *Mushroom) LeftEdge() Vec2 {
	return Vec2{X: m.Pos.X - m.Size/2, Y: m.Pos.Y}
}

// RightEdge returns the middle of the right side
func (m *Mushroom) RightEdge() Vec2 {
	return Vec2{X: m.Pos.X + m.Size/2, Y: m.Pos.Y}
}
