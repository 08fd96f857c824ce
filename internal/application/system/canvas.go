package system

import "github.com/younwookim/centipede/internal/domain/entity"

// Canvas is the draw target the simulation paints to. Implementations map
// sprite IDs to images; the simulation only supplies geometry.
type Canvas interface {
	// DrawSprite draws sprite id stretched over bounds, turned 180 degrees
	// when flipped is set
	DrawSprite(id entity.SpriteID, bounds entity.Rect, flipped bool)
}
