package system

import "github.com/younwookim/centipede/internal/domain/entity"

// LaserPool is a fixed set of lasers reused round-robin. Shooting always
// takes the next slot, even if that laser is still in flight.
type LaserPool struct {
	lasers  []*entity.Laser
	next    int
	ceiling float64
}

// NewLaserPool creates size inactive lasers. Lasers deactivate once above
// ceiling.
func NewLaserPool(size int, speed, width, height, ceiling float64) *LaserPool {
	lasers := make([]*entity.Laser, size)
	for i := range lasers {
		lasers[i] = entity.NewLaser(speed, width, height)
	}
	return &LaserPool{
		lasers:  lasers,
		ceiling: ceiling,
	}
}

// Shoot fires the next laser in the pool from origin and returns it
func (p *LaserPool) Shoot(origin entity.Vec2) *entity.Laser {
	l := p.lasers[p.next]
	l.Shoot(origin)
	p.next = (p.next + 1) % len(p.lasers)
	return l
}

// Lasers returns the pool slots in order
func (p *LaserPool) Lasers() []*entity.Laser {
	return p.lasers
}

// Active returns the number of lasers in flight
func (p *LaserPool) Active() int {
	n := 0
	for _, l := range p.lasers {
		if l.Active {
			n++
		}
	}
	return n
}

// Reset deactivates every laser and rewinds the slot cursor
func (p *LaserPool) Reset() {
	for _, l := range p.lasers {
		l.Deactivate()
	}
	p.next = 0
}

// Update resolves every active laser in slot order. A laser that hit
// reports true is deactivated without moving; the others move up.
func (p *LaserPool) Update(dt float64, hit func(laser entity.Rect) bool) {
	for _, l := range p.lasers {
		if !l.Active {
			continue
		}
		if hit != nil && hit(l.Bounds()) {
			l.Deactivate()
			continue
		}
		l.Update(dt, p.ceiling)
	}
}

// Draw paints the active lasers
func (p *LaserPool) Draw(c Canvas) {
	for _, l := range p.lasers {
		if l.Active {
			c.DrawSprite(entity.SpriteLaser, l.Bounds(), false)
		}
	}
}
