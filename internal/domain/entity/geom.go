package entity

// Vec2 is a point or displacement in arena pixels
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned box. Width and Height are never negative.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect creates a rect, clamping negative sizes to zero
func NewRect(left, top, width, height float64) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// RectAround creates a rect of the given size centered on c
func RectAround(c Vec2, width, height float64) Rect {
	return NewRect(c.X-width/2, c.Y-height/2, width, height)
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Center returns the center point
func (r Rect) Center() Vec2 {
	return Vec2{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Intersects reports whether the two rects overlap with a non-zero area.
// Rects that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	left := max(r.Left, o.Left)
	top := max(r.Top, o.Top)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	return left < right && top < bottom
}

// Contains reports whether p lies inside r (right and bottom edges exclusive)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// Shrink returns r inset by dx on the left and right and dy on the top and bottom
func (r Rect) Shrink(dx, dy float64) Rect {
	return NewRect(r.Left+dx, r.Top+dy, r.Width-2*dx, r.Height-2*dy)
}

// Inflate returns r grown by d on every side
func (r Rect) Inflate(d float64) Rect {
	return NewRect(r.Left-d, r.Top-d, r.Width+2*d, r.Height+2*d)
}

// Translate returns r moved by d
func (r Rect) Translate(d Vec2) Rect {
	return NewRect(r.Left+d.X, r.Top+d.Y, r.Width, r.Height)
}

// Clamp saturates v into [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
