// Package assets builds the game's sprites. Every sprite is procedural pixel
// art, so the game runs without any files next to the binary.
package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/centipede/internal/domain/entity"
)

// Palette maps pattern runes to colors. '.' is always transparent.
var Palette = map[rune]color.RGBA{
	'g': {60, 200, 80, 255},   // centipede body
	'G': {140, 255, 120, 255}, // centipede highlight
	'r': {220, 40, 60, 255},   // head, eyes
	'm': {230, 120, 40, 255},  // mushroom cap
	'M': {255, 200, 90, 255},  // cap spots
	's': {200, 200, 200, 255}, // mushroom stem
	'p': {200, 60, 220, 255},  // spider
	'w': {255, 255, 255, 255},
	'b': {80, 160, 255, 255}, // player
	'y': {255, 240, 80, 255}, // laser
}

// patterns are drawn top row first; the engine scales them to each
// entity's collider
var patterns = map[entity.SpriteID][]string{
	entity.SpriteHead: {
		".rggggr.",
		"gggggggg",
		"gGggggGg",
		"gggggggg",
		"gggggggg",
		"gGggggGg",
		"gggggggg",
		".g....g.",
	},
	entity.SpriteBody: {
		"..gggg..",
		".gggggg.",
		"gGggggGg",
		"gggggggg",
		"gggggggg",
		"gGggggGg",
		".gggggg.",
		"..g..g..",
	},
	entity.SpriteMushroom: {
		"..mmmm..",
		".mMmmMm.",
		"mmmmmmmm",
		"mMmmmmMm",
		"mmmmmmmm",
		"...ss...",
		"...ss...",
		"..ssss..",
	},
	entity.SpriteMushroomDamaged1: {
		"........",
		".mMmmMm.",
		"mmmmmmmm",
		"mMmmmmMm",
		"mmmmmmmm",
		"...ss...",
		"...ss...",
		"..ssss..",
	},
	entity.SpriteMushroomDamaged2: {
		"........",
		"........",
		"........",
		"mMmmmmMm",
		"mmmmmmmm",
		"...ss...",
		"...ss...",
		"..ssss..",
	},
	entity.SpriteMushroomDamaged3: {
		"........",
		"........",
		"........",
		"........",
		"........",
		"...ss...",
		"...ss...",
		"..ssss..",
	},
	entity.SpriteSpider: {
		"p.....ppp.....p",
		".p...ppppp...p.",
		"..p.prwpwrp.p..",
		"...ppppppppp...",
		"..p.ppppppp.p..",
		".p...ppppp...p.",
		"p.....ppp.....p",
		"...............",
	},
	entity.SpritePlayer: {
		"...w...",
		"...w...",
		"..bbb..",
		".bbbbb.",
		"bbwbwbb",
		"bbbbbbb",
		"b.bbb.b",
		"b.....b",
	},
	entity.SpriteLaser: {
		"y",
		"y",
		"y",
		"y",
		"y",
		"y",
	},
}

// Registry hands out one image per sprite. Images are built the first time
// they are asked for and kept for the life of the registry.
type Registry struct {
	images map[entity.SpriteID]*ebiten.Image
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{images: make(map[entity.SpriteID]*ebiten.Image)}
}

// Image returns the image for id, or nil for SpriteNone
func (r *Registry) Image(id entity.SpriteID) *ebiten.Image {
	if img, ok := r.images[id]; ok {
		return img
	}

	bmp, err := Bitmap(id)
	if err != nil {
		return nil
	}
	img := ebiten.NewImageFromImage(bmp)
	r.images[id] = img
	return img
}

// Bitmap rasterizes the pattern for id
func Bitmap(id entity.SpriteID) (*image.RGBA, error) {
	rows, ok := patterns[id]
	if !ok {
		return nil, fmt.Errorf("no pattern for sprite %s", id)
	}

	h := len(rows)
	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}

	bmp := image.NewRGBA(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			c, ok := Palette[ch]
			if !ok {
				return nil, fmt.Errorf("sprite %s: unknown color %q at %d,%d", id, ch, x, y)
			}
			bmp.SetRGBA(x, y, c)
		}
	}
	return bmp, nil
}
