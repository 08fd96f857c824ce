package entity

// Heading is the horizontal direction a segment is cruising in
type Heading int

const (
	HeadingLeft Heading = iota
	HeadingRight
)

// Opposite returns the other heading
func (h Heading) Opposite() Heading {
	if h == HeadingLeft {
		return HeadingRight
	}
	return HeadingLeft
}

// String returns the heading name
func (h Heading) String() string {
	if h == HeadingLeft {
		return "left"
	}
	return "right"
}

// AnimPhase is the sub-state of the descent animation.
// PhaseNone means the segment is cruising.
type AnimPhase int

const (
	PhaseNone AnimPhase = iota
	PhaseStart
	PhaseMid1
	PhaseMid2
	PhaseFinal
)

// String returns the phase name
func (p AnimPhase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseStart:
		return "start"
	case PhaseMid1:
		return "mid1"
	case PhaseMid2:
		return "mid2"
	case PhaseFinal:
		return "final"
	default:
		return "unknown"
	}
}

// SegmentParams are the movement rules shared by every segment of a centipede
type SegmentParams struct {
	Speed       float64 // cruising speed, px/s
	AnimStep    float64 // diagonal displacement per animation tick, px
	EdgeSpacing float64 // distance to a wall or mushroom that triggers a descent
	Size        float64 // sprite is Size x Size
	GridSize    float64
	BandRows    int // height of the bottom bounce band, in rows
}

// Segment is one body unit of a centipede. Each segment moves on its own;
// list order in the centipede only decides which one is the head.
type Segment struct {
	Pos        Vec2 // center
	Heading    Heading
	Phase      AnimPhase
	Descending bool

	// Flipped toggles at the end of every descent animation (sprite turned 180 degrees)
	Flipped bool

	head   bool
	area   Rect
	params SegmentParams
}

// NewSegment creates a cruising body segment heading left and descending
func NewSegment(pos Vec2, area Rect, params SegmentParams) *Segment {
	return &Segment{
		Pos:        pos,
		Heading:    HeadingLeft,
		Phase:      PhaseNone,
		Descending: true,
		area:       area,
		params:     params,
	}
}

// Update advances the segment by one tick: edge detection, cruising motion,
// then one step of the descent animation if one is running
func (s *Segment) Update(dt float64) {
	s.DetectEdgeCollisions()

	if s.Phase == PhaseNone {
		distance := s.params.Speed * dt
		if s.Heading == HeadingRight {
			s.Pos.X += distance
		} else {
			s.Pos.X -= distance
		}
	}

	// A mushroom may have started the descent; settle the vertical phase
	// before the first step like a wall trigger would
	if s.Phase == PhaseStart {
		s.updateVerticalPhase()
	}

	// Displacement uses the heading before any flip below
	disp := s.animDisplacement()

	switch s.Phase {
	case PhaseStart:
		s.Pos = s.Pos.Add(disp)
		s.Phase = PhaseMid1
	case PhaseMid1:
		s.Pos = s.Pos.Add(disp)
		s.Phase = PhaseMid2
		s.Heading = s.Heading.Opposite()
	case PhaseMid2:
		s.Pos = s.Pos.Add(disp)
		s.Phase = PhaseFinal
	case PhaseFinal:
		s.Pos = s.Pos.Add(disp)
		s.Phase = PhaseNone
		s.Flipped = !s.Flipped
	}
}

func (s *Segment) animDisplacement() Vec2 {
	step := s.params.AnimStep
	d := Vec2{X: -step, Y: step}
	if s.Heading == HeadingRight {
		d.X = step
	}
	if !s.Descending {
		d.Y = -step
	}
	return d
}

// DetectEdgeCollisions starts a descent when the leading edge is within
// EdgeSpacing of the arena wall, and flips the vertical phase at either
// edge of the bottom band. Does nothing while animating.
func (s *Segment) DetectEdgeCollisions() {
	if s.IsAnimating() {
		return
	}

	spacing := s.params.EdgeSpacing
	switch s.Heading {
	case HeadingRight:
		if s.area.Right()-s.RightEdge().X <= spacing {
			s.Phase = PhaseStart
		}
	case HeadingLeft:
		if s.LeftEdge().X-s.area.Left <= spacing {
			s.Phase = PhaseStart
		}
	}

	s.updateVerticalPhase()
}

// updateVerticalPhase bounces between the arena bottom and the top of the
// bottom band
func (s *Segment) updateVerticalPhase() {
	half := s.params.Size / 2
	bandTop := s.area.Bottom() - float64(s.params.BandRows)*s.params.GridSize
	if s.Descending {
		if s.Pos.Y+half >= s.area.Bottom() {
			s.Descending = false
		}
	} else if s.Pos.Y-half <= bandTop {
		s.Descending = true
	}
}

// DetectMushroomCollision starts a descent if m sits on the same row, ahead
// of the segment, within EdgeSpacing. Returns true when triggered.
func (s *Segment) DetectMushroomCollision(m *Mushroom) bool {
	if s.IsAnimating() {
		return false
	}

	segLeft, segRight := s.LeftEdge(), s.RightEdge()
	shroomLeft, shroomRight := m.LeftEdge(), m.RightEdge()

	// Rows must match exactly
	if segLeft.Y != shroomLeft.Y {
		return false
	}

	spacing := s.params.EdgeSpacing
	switch s.Heading {
	case HeadingRight:
		if shroomLeft.X >= segRight.X && shroomLeft.X-segRight.X <= spacing {
			s.Phase = PhaseStart
			return true
		}
	case HeadingLeft:
		if shroomRight.X <= segLeft.X && segLeft.X-shroomRight.X <= spacing {
			s.Phase = PhaseStart
			return true
		}
	}
	return false
}

// IsAnimating returns true during the descent animation
func (s *Segment) IsAnimating() bool {
	return s.Phase != PhaseNone
}

// IsHead returns true for the head of a chain
func (s *Segment) IsHead() bool {
	return s.head
}

// SetHead marks the segment as a head
func (s *Segment) SetHead() {
	s.head = true
}

// ClearHead demotes the segment to a body segment
func (s *Segment) ClearHead() {
	s.head = false
}

// Sprite returns the head or body texture
func (s *Segment) Sprite() SpriteID {
	if s.head {
		return SpriteHead
	}
	return SpriteBody
}

// LeftEdge returns the middle of the left side
func (s *Segment) LeftEdge() Vec2 {
	return Vec2{X: s.Pos.X - s.params.Size/2, Y: s.Pos.Y}
}

// RightEdge returns the middle of the right side
func (s *Segment) RightEdge() Vec2 {
	return Vec2{X: s.Pos.X + s.params.Size/2, Y: s.Pos.Y}
}

// Position returns the center
func (s *Segment) Position() Vec2 {
	return s.Pos
}

// Bounds returns the collider
func (s *Segment) Bounds() Rect {
	return RectAround(s.Pos, s.params.Size, s.params.Size)
}
