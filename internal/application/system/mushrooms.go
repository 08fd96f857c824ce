package system

import (
	"cmp"
	"math"
	"math/rand"
	"slices"

	"github.com/solarlune/resolv"
	"github.com/younwookim/centipede/internal/domain/entity"
)

const (
	tagMushroom = "mushroom"
	tagProbe    = "probe"
)

// MushroomField owns every mushroom in the arena. Lookups go through a
// resolv space bucketed by grid cell; the space only narrows candidates and
// the exact rect test decides hits.
type MushroomField struct {
	area entity.Rect // spawn area
	grid float64
	size float64
	rng  *rand.Rand

	mushrooms []*entity.Mushroom // insertion order, which is also ID order
	objects   map[entity.EntityID]*resolv.Object
	nextID    entity.EntityID

	space *resolv.Space
	probe *resolv.Object

	// Event callbacks
	OnDestroyed func(m *entity.Mushroom) // shot down by a laser
	OnEaten     func(m *entity.Mushroom) // removed by the spider
}

// NewMushroomField creates an empty field for the arena
func NewMushroomField(arena entity.Arena, size float64, rng *rand.Rand) *MushroomField {
	cell := int(math.Max(1, arena.GridSize))
	space := resolv.NewSpace(int(math.Ceil(arena.Size.X)), int(math.Ceil(arena.Size.Y)), cell, cell)

	probe := resolv.NewObject(0, 0, 1, 1, tagProbe)
	space.Add(probe)

	return &MushroomField{
		area:    arena.MushroomArea,
		grid:    arena.GridSize,
		size:    size,
		rng:     rng,
		objects: make(map[entity.EntityID]*resolv.Object),
		space:   space,
		probe:   probe,
	}
}

// Spawn places count mushrooms on random grid cells of the spawn area.
// Cells may repeat.
func (f *MushroomField) Spawn(count int) {
	cols := max(1, int(f.area.Width/f.grid))
	rows := max(1, int(f.area.Height/f.grid))

	for i := 0; i < count; i++ {
		col := f.rng.Intn(cols)
		row := f.rng.Intn(rows)
		f.AddMushroom(entity.Vec2{
			X: f.area.Left + f.grid*float64(col) + f.grid/2,
			Y: f.area.Top + f.grid*float64(row) + f.grid/2,
		})
	}
}

// AddMushroom inserts a full-health mushroom centered on pos
func (f *MushroomField) AddMushroom(pos entity.Vec2) *entity.Mushroom {
	f.nextID++
	m := entity.NewMushroom(f.nextID, pos, f.size)

	b := m.Bounds()
	obj := resolv.NewObject(b.Left, b.Top, b.Width, b.Height, tagMushroom)
	obj.Data = m
	f.space.Add(obj)

	f.mushrooms = append(f.mushrooms, m)
	f.objects[m.ID] = obj
	return m
}

// Damage takes one point of health from m and returns what is left.
// A destroyed mushroom stays in the field until Remove is called.
func (f *MushroomField) Damage(m *entity.Mushroom) entity.Health {
	return m.Damage()
}

// Remove deletes m from the field. Removing an absent mushroom is a no-op.
func (f *MushroomField) Remove(m *entity.Mushroom) {
	obj, ok := f.objects[m.ID]
	if !ok {
		return
	}
	f.space.Remove(obj)
	delete(f.objects, m.ID)

	f.mushrooms = slices.DeleteFunc(f.mushrooms, func(o *entity.Mushroom) bool {
		return o.ID == m.ID
	})
}

// CheckSpiderCollision removes the first mushroom the spider overlaps.
// At most one mushroom is removed per call.
func (f *MushroomField) CheckSpiderCollision(spider entity.Rect) bool {
	m := f.first(spider)
	if m == nil {
		return false
	}

	f.Remove(m)
	if f.OnEaten != nil {
		f.OnEaten(m)
	}
	return true
}

// CheckLaserCollision damages the first mushroom the laser overlaps,
// removing it once destroyed. Any hit reports true.
func (f *MushroomField) CheckLaserCollision(laser entity.Rect) bool {
	m := f.first(laser)
	if m == nil {
		return false
	}

	if f.Damage(m) == 0 {
		f.Remove(m)
		if f.OnDestroyed != nil {
			f.OnDestroyed(m)
		}
	}
	return true
}

// Near returns the mushrooms overlapping r, oldest first
func (f *MushroomField) Near(r entity.Rect) []*entity.Mushroom {
	var found []*entity.Mushroom
	for _, m := range f.candidates(r) {
		if m.Bounds().Intersects(r) {
			found = append(found, m)
		}
	}
	return found
}

// first returns the oldest mushroom overlapping r, or nil
func (f *MushroomField) first(r entity.Rect) *entity.Mushroom {
	for _, m := range f.candidates(r) {
		if m.Bounds().Intersects(r) {
			return m
		}
	}
	return nil
}

// candidates returns mushrooms sharing a space cell with r, sorted by ID
func (f *MushroomField) candidates(r entity.Rect) []*entity.Mushroom {
	if len(f.mushrooms) == 0 {
		return nil
	}

	// Cells are resolved with a one pixel inset, so grow the probe to keep
	// rects that end exactly on a cell border
	q := r.Inflate(1)
	f.probe.X, f.probe.Y = q.Left, q.Top
	f.probe.W, f.probe.H = q.Width, q.Height
	f.probe.Update()

	check := f.probe.Check(0, 0, tagMushroom)
	if check == nil {
		return nil
	}

	found := make([]*entity.Mushroom, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if m, ok := obj.Data.(*entity.Mushroom); ok {
			found = append(found, m)
		}
	}
	slices.SortFunc(found, func(a, b *entity.Mushroom) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return found
}

// Mushrooms returns a snapshot of every mushroom, oldest first
func (f *MushroomField) Mushrooms() []*entity.Mushroom {
	return slices.Clone(f.mushrooms)
}

// Len returns the number of mushrooms in the field
func (f *MushroomField) Len() int {
	return len(f.mushrooms)
}

// Clear removes every mushroom
func (f *MushroomField) Clear() {
	for _, obj := range f.objects {
		f.space.Remove(obj)
	}
	clear(f.objects)
	f.mushrooms = f.mushrooms[:0]
}

// Draw paints every mushroom at its damage tier
func (f *MushroomField) Draw(c Canvas) {
	for _, m := range f.mushrooms {
		c.DrawSprite(m.Sprite(), m.Bounds(), false)
	}
}
