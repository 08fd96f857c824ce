package system

import (
	"slices"

	"github.com/younwookim/centipede/internal/domain/entity"
)

// Centipede owns an ordered chain of segments. Every segment moves on its
// own; the order only decides heads after a split.
type Centipede struct {
	segments []*entity.Segment
	area     entity.Rect
	params   entity.SegmentParams
	field    *MushroomField

	// Event callbacks
	OnSegmentKilled func(seg *entity.Segment, wasHead bool)
}

// NewCentipede creates a centipede of length segments at the top center of
// area. Mushrooms in field redirect it and receive the remains of killed
// segments.
func NewCentipede(area entity.Rect, params entity.SegmentParams, length int, field *MushroomField) *Centipede {
	c := &Centipede{
		area:   area,
		params: params,
		field:  field,
	}
	c.Spawn(length)
	return c
}

// Spawn replaces the chain with length fresh segments. The head starts at
// the top center cell, the body trails to its right one cell apart.
func (c *Centipede) Spawn(length int) {
	start := entity.Vec2{
		X: c.area.Left + c.area.Width/2,
		Y: c.area.Top + c.params.GridSize/2,
	}

	c.segments = make([]*entity.Segment, 0, length)
	for i := 0; i < length; i++ {
		pos := start.Add(entity.Vec2{X: c.params.GridSize * float64(i)})
		c.segments = append(c.segments, entity.NewSegment(pos, c.area, c.params))
	}

	if len(c.segments) > 0 {
		c.segments[0].SetHead()
	}
}

// Update checks mushrooms before moving each segment, so a segment never
// steps through a mushroom the previous one uncovered
func (c *Centipede) Update(dt float64) {
	for _, seg := range c.segments {
		c.CheckMushroomCollision()
		seg.Update(dt)
	}
}

// CheckMushroomCollision starts a descent for every cruising segment that
// has a mushroom right ahead on its row
func (c *Centipede) CheckMushroomCollision() {
	if c.field == nil {
		return
	}

	reach := c.params.EdgeSpacing + 1
	for _, seg := range c.segments {
		if seg.IsAnimating() {
			continue
		}
		for _, m := range c.field.Near(seg.Bounds().Inflate(reach)) {
			if seg.DetectMushroomCollision(m) {
				break
			}
		}
	}
}

// CheckLaserCollision kills the first segment in chain order that the laser
// overlaps and reports whether one was hit
func (c *Centipede) CheckLaserCollision(laser entity.Rect) bool {
	for i, seg := range c.segments {
		if seg.Bounds().Intersects(laser) {
			c.splitAt(i)
			return true
		}
	}
	return false
}

// splitAt removes segment i, leaves a mushroom where it died and makes the
// segment that followed it the only head. A live chain always keeps exactly
// one head.
func (c *Centipede) splitAt(i int) {
	victim := c.segments[i]
	wasHead := victim.IsHead()

	if c.field != nil {
		c.field.AddMushroom(victim.Pos)
	}
	c.segments = slices.Delete(c.segments, i, i+1)

	if i < len(c.segments) {
		for _, seg := range c.segments {
			seg.ClearHead()
		}
		c.segments[i].SetHead()
	} else if len(c.segments) > 0 && wasHead {
		// the tail was the only head; the front leads again
		c.segments[0].SetHead()
	}

	if c.OnSegmentKilled != nil {
		c.OnSegmentKilled(victim, wasHead)
	}

	// The new head may already be touching the mushroom just left behind
	c.CheckMushroomCollision()
}

// Segments returns a snapshot of the chain, front first
func (c *Centipede) Segments() []*entity.Segment {
	return slices.Clone(c.segments)
}

// Len returns the number of live segments
func (c *Centipede) Len() int {
	return len(c.segments)
}

// IsCleared returns true once every segment is dead
func (c *Centipede) IsCleared() bool {
	return len(c.segments) == 0
}

// Draw paints every segment
func (c *Centipede) Draw(canvas Canvas) {
	for _, seg := range c.segments {
		canvas.DrawSprite(seg.Sprite(), seg.Bounds(), seg.Flipped)
	}
}
