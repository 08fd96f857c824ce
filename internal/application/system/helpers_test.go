package system

import (
	"math/rand"

	"github.com/younwookim/centipede/internal/domain/entity"
	"github.com/younwookim/centipede/internal/infrastructure/config"
)

const testDT = 1.0 / 60

func testConfig() *config.GameConfig {
	cfg := config.Default()
	cfg.Mushrooms.Count = 0
	return cfg
}

func testArena() entity.Arena {
	return LoadArena(config.Default().Arena)
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func newTestField() *MushroomField {
	return NewMushroomField(testArena(), 8, testRNG())
}

// laserAt returns the collider of a default laser centered on p
func laserAt(p entity.Vec2) entity.Rect {
	return entity.RectAround(p, 1, 6)
}

type drawCall struct {
	id      entity.SpriteID
	bounds  entity.Rect
	flipped bool
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) DrawSprite(id entity.SpriteID, bounds entity.Rect, flipped bool) {
	c.calls = append(c.calls, drawCall{id: id, bounds: bounds, flipped: flipped})
}

func (c *recordingCanvas) count(id entity.SpriteID) int {
	n := 0
	for _, call := range c.calls {
		if call.id == id {
			n++
		}
	}
	return n
}
