package entity

// Player represents the player's ship
type Player struct {
	Pos    Vec2 // center
	Width  float64
	Height float64
	Speed  float64

	// Area the center may occupy (the player band inset by half the sprite)
	Limits Rect

	Lives         int
	StartingLives int

	// Direction flags, set from input each tick
	MovingUp    bool
	MovingDown  bool
	MovingLeft  bool
	MovingRight bool
}

// NewPlayer creates a player confined to area and places it at spawn
func NewPlayer(area Rect, width, height, speed float64, lives int) *Player {
	p := &Player{
		Width:         width,
		Height:        height,
		Speed:         speed,
		Limits:        area.Shrink(width/2, height/2),
		StartingLives: lives,
	}
	p.Spawn()
	return p
}

// Spawn restores all lives and moves to the spawn point
func (p *Player) Spawn() {
	p.Lives = p.StartingLives
	p.Reset()
}

// Reset moves the player back to the spawn point (bottom center)
func (p *Player) Reset() {
	p.Pos = Vec2{
		X: p.Limits.Left + p.Limits.Width/2,
		Y: p.Limits.Bottom(),
	}
}

// SetInput sets the direction flags
func (p *Player) SetInput(up, down, left, right bool) {
	p.MovingUp = up
	p.MovingDown = down
	p.MovingLeft = left
	p.MovingRight = right
}

// Update moves the player by Speed*dt for every held direction.
// Opposite flags cancel out. The result is saturated to Limits.
func (p *Player) Update(dt float64) {
	distance := p.Speed * dt
	pos := p.Pos

	if p.MovingUp {
		pos.Y -= distance
	}
	if p.MovingDown {
		pos.Y += distance
	}
	if p.MovingRight {
		pos.X += distance
	}
	if p.MovingLeft {
		pos.X -= distance
	}

	// Saturate instead of rejecting the move, so the ship slides along walls
	pos.X = Clamp(pos.X, p.Limits.Left, p.Limits.Right())
	pos.Y = Clamp(pos.Y, p.Limits.Top, p.Limits.Bottom())
	p.Pos = pos
}

// CheckSpiderCollision costs a life and resets the player when hit
func (p *Player) CheckSpiderCollision(spider Rect) bool {
	if !p.Bounds().Intersects(spider) {
		return false
	}
	p.Lives--
	p.Reset()
	return true
}

// IsDead returns true when no lives remain
func (p *Player) IsDead() bool {
	return p.Lives <= 0
}

// GunPosition returns where lasers are fired from
func (p *Player) GunPosition() Vec2 {
	return Vec2{X: p.Pos.X, Y: p.Pos.Y + p.Height/2}
}

// Position returns the center
func (p *Player) Position() Vec2 {
	return p.Pos
}

// Bounds returns the collider
func (p *Player) Bounds() Rect {
	return RectAround(p.Pos, p.Width, p.Height)
}
