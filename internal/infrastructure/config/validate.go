package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid config")

func invalid(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalid, field, fmt.Sprintf(format, args...))
}

// Validate reports the first field that cannot produce a playable game
func (c *GameConfig) Validate() error {
	if c.Display.Scale <= 0 {
		return invalid("display.scale", "must be positive, got %d", c.Display.Scale)
	}
	if c.Display.Framerate <= 0 {
		return invalid("display.framerate", "must be positive, got %d", c.Display.Framerate)
	}

	a := c.Arena
	if a.GridSize <= 0 {
		return invalid("arena.gridSize", "must be positive, got %g", a.GridSize)
	}
	if a.Width <= 0 || a.Height <= 0 {
		return invalid("arena", "size must be positive, got %gx%g", a.Width, a.Height)
	}
	bands := []struct {
		name string
		rect RectConfig
	}{
		{"arena.centipede", a.Centipede},
		{"arena.mushrooms", a.Mushrooms},
		{"arena.spider", a.Spider},
		{"arena.player", a.Player},
	}
	for _, b := range bands {
		if err := b.rect.validate(b.name, a.Width, a.Height); err != nil {
			return err
		}
	}

	if c.Centipede.Length <= 0 {
		return invalid("centipede.length", "must be positive, got %d", c.Centipede.Length)
	}
	if c.Centipede.Speed <= 0 || c.Centipede.AnimStep <= 0 {
		return invalid("centipede", "speed and animStep must be positive")
	}
	if c.Centipede.SegmentSize <= 0 {
		return invalid("centipede.segmentSize", "must be positive, got %g", c.Centipede.SegmentSize)
	}
	if c.Centipede.EdgeSpacing < 0 {
		return invalid("centipede.edgeSpacing", "must not be negative, got %g", c.Centipede.EdgeSpacing)
	}
	if c.Centipede.BandRows <= 0 {
		return invalid("centipede.bandRows", "must be positive, got %d", c.Centipede.BandRows)
	}

	if c.Mushrooms.Count < 0 {
		return invalid("mushrooms.count", "must not be negative, got %d", c.Mushrooms.Count)
	}
	if c.Mushrooms.Size <= 0 {
		return invalid("mushrooms.size", "must be positive, got %g", c.Mushrooms.Size)
	}

	if c.Laser.PoolSize <= 0 {
		return invalid("laser.poolSize", "must be positive, got %d", c.Laser.PoolSize)
	}
	if c.Laser.Speed <= 0 || c.Laser.FireRate <= 0 {
		return invalid("laser", "speed and fireRate must be positive")
	}
	if c.Laser.Width <= 0 || c.Laser.Height <= 0 {
		return invalid("laser", "size must be positive")
	}

	if c.Spider.Speed <= 0 || c.Spider.MoveDuration <= 0 || c.Spider.RespawnDuration < 0 {
		return invalid("spider", "speed and moveDuration must be positive, respawnDuration not negative")
	}
	if c.Spider.Width <= 0 || c.Spider.Height <= 0 {
		return invalid("spider", "size must be positive")
	}

	if c.Player.Speed <= 0 {
		return invalid("player.speed", "must be positive, got %g", c.Player.Speed)
	}
	if c.Player.Lives <= 0 {
		return invalid("player.lives", "must be positive, got %d", c.Player.Lives)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player", "size must be positive")
	}

	return nil
}

func (r RectConfig) validate(name string, width, height float64) error {
	if r.Width <= 0 || r.Height <= 0 {
		return invalid(name, "size must be positive, got %gx%g", r.Width, r.Height)
	}
	if r.Left < 0 || r.Top < 0 || r.Left+r.Width > width || r.Top+r.Height > height {
		return invalid(name, "must lie inside the %gx%g arena", width, height)
	}
	return nil
}
