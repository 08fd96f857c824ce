package entity

// SpiderDirection is one of the six ways a spider can move
type SpiderDirection int

const (
	SpiderUp SpiderDirection = iota
	SpiderDown
	SpiderUpLeft
	SpiderUpRight
	SpiderDownLeft
	SpiderDownRight
)

// String returns the direction name
func (d SpiderDirection) String() string {
	switch d {
	case SpiderUp:
		return "up"
	case SpiderDown:
		return "down"
	case SpiderUpLeft:
		return "up-left"
	case SpiderUpRight:
		return "up-right"
	case SpiderDownLeft:
		return "down-left"
	case SpiderDownRight:
		return "down-right"
	default:
		return "unknown"
	}
}

// Velocity returns the unit displacement for the direction. Diagonals move
// a full step on both axes.
func (d SpiderDirection) Velocity() Vec2 {
	switch d {
	case SpiderUp:
		return Vec2{X: 0, Y: -1}
	case SpiderDown:
		return Vec2{X: 0, Y: 1}
	case SpiderUpLeft:
		return Vec2{X: -1, Y: -1}
	case SpiderUpRight:
		return Vec2{X: 1, Y: -1}
	case SpiderDownLeft:
		return Vec2{X: -1, Y: 1}
	case SpiderDownRight:
		return Vec2{X: 1, Y: 1}
	default:
		return Vec2{}
	}
}

// IsUpward reports whether the direction has an upward component
func (d SpiderDirection) IsUpward() bool {
	return d == SpiderUp || d == SpiderUpLeft || d == SpiderUpRight
}

// Bounced returns the direction with its vertical component flipped,
// keeping the horizontal component
func (d SpiderDirection) Bounced() SpiderDirection {
	switch d {
	case SpiderUp:
		return SpiderDown
	case SpiderDown:
		return SpiderUp
	case SpiderUpLeft:
		return SpiderDownLeft
	case SpiderDownLeft:
		return SpiderUpLeft
	case SpiderUpRight:
		return SpiderDownRight
	case SpiderDownRight:
		return SpiderUpRight
	default:
		return d
	}
}

// SpiderSpawnDirection is the direction a freshly spawned spider moves in
const SpiderSpawnDirection = SpiderUpRight

// Spider is the roaming antagonist. Movement decisions live in the spider
// system; this type only holds state.
type Spider struct {
	Pos    Vec2 // center
	Dir    SpiderDirection
	Alive  bool
	Width  float64
	Height float64

	// Area the center may occupy (the spider band inset by half the sprite)
	Limits Rect

	MoveTimer    float64
	RespawnTimer float64
}

// NewSpider creates an alive spider at its spawn corner
func NewSpider(area Rect, width, height float64) *Spider {
	s := &Spider{
		Width:  width,
		Height: height,
		Limits: area.Shrink(width/2, height/2),
	}
	s.Spawn()
	return s
}

// Spawn places the spider at the top-left of its limits, alive, moving
// in the spawn direction
func (s *Spider) Spawn() {
	s.Pos = Vec2{X: s.Limits.Left, Y: s.Limits.Top}
	s.Dir = SpiderSpawnDirection
	s.Alive = true
	s.MoveTimer = 0
	s.RespawnTimer = 0
}

// Kill marks the spider dead and starts the respawn countdown
func (s *Spider) Kill() {
	s.Alive = false
	s.RespawnTimer = 0
}

// CheckLaserCollision kills the spider if it is alive and hit by laser
func (s *Spider) CheckLaserCollision(laser Rect) bool {
	if !s.Alive || !s.Bounds().Intersects(laser) {
		return false
	}
	s.Kill()
	return true
}

// Position returns the center
func (s *Spider) Position() Vec2 {
	return s.Pos
}

// Bounds returns the collider
func (s *Spider) Bounds() Rect {
	return RectAround(s.Pos, s.Width, s.Height)
}
