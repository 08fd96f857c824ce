package entity

// Laser is a straight-moving beam fired by the player.
// Lasers are pooled: they are created once and re-shot.
type Laser struct {
	Pos    Vec2 // center
	Active bool

	Speed  float64 // pixels per second, upward
	Width  float64
	Height float64
}

// NewLaser creates an inactive laser
func NewLaser(speed, width, height float64) *Laser {
	return &Laser{
		Speed:  speed,
		Width:  width,
		Height: height,
	}
}

// Shoot activates the laser at origin, whatever its previous state
func (l *Laser) Shoot(origin Vec2) {
	l.Pos = origin
	l.Active = true
}

// Update moves the laser up and deactivates it once above ceiling
func (l *Laser) Update(dt, ceiling float64) {
	if !l.Active {
		return
	}

	l.Pos.Y -= l.Speed * dt

	if l.Pos.Y < ceiling {
		l.Active = false
	}
}

// Deactivate marks the laser as inactive
func (l *Laser) Deactivate() {
	l.Active = false
}

// Position returns the center
func (l *Laser) Position() Vec2 {
	return l.Pos
}

// Bounds returns the collider
func (l *Laser) Bounds() Rect {
	return RectAround(l.Pos, l.Width, l.Height)
}
