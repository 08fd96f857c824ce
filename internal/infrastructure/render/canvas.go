// Package render paints the simulation with ebiten.
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/centipede/internal/domain/entity"
	"github.com/younwookim/centipede/internal/infrastructure/assets"
)

// Canvas draws sprites from a registry onto a target image. It implements
// system.Canvas.
type Canvas struct {
	registry *assets.Registry
	target   *ebiten.Image
	origin   entity.Vec2
	op       ebiten.DrawImageOptions
}

// NewCanvas creates a canvas drawing sprites from registry. Arena
// coordinates are shifted by origin on screen.
func NewCanvas(registry *assets.Registry, origin entity.Vec2) *Canvas {
	return &Canvas{registry: registry, origin: origin}
}

// Begin sets the image the next DrawSprite calls paint onto
func (c *Canvas) Begin(target *ebiten.Image) {
	c.target = target
}

// SetOrigin moves where the arena's top-left lands on screen
func (c *Canvas) SetOrigin(origin entity.Vec2) {
	c.origin = origin
}

// DrawSprite draws id stretched over bounds. Nothing is drawn without a
// target or an image for id.
func (c *Canvas) DrawSprite(id entity.SpriteID, bounds entity.Rect, flipped bool) {
	if c.target == nil {
		return
	}
	img := c.registry.Image(id)
	if img == nil {
		return
	}

	b := img.Bounds()
	c.op.GeoM = SpriteGeoM(b.Dx(), b.Dy(), bounds.Translate(c.origin), flipped)
	c.target.DrawImage(img, &c.op)
}

// SpriteGeoM maps a srcW x srcH image onto bounds, turning it 180 degrees
// around its center when flipped
func SpriteGeoM(srcW, srcH int, bounds entity.Rect, flipped bool) ebiten.GeoM {
	var m ebiten.GeoM
	if srcW == 0 || srcH == 0 {
		return m
	}

	if flipped {
		m.Translate(-float64(srcW)/2, -float64(srcH)/2)
		m.Rotate(math.Pi)
		m.Translate(float64(srcW)/2, float64(srcH)/2)
	}
	m.Scale(bounds.Width/float64(srcW), bounds.Height/float64(srcH))
	m.Translate(bounds.Left, bounds.Top)
	return m
}
