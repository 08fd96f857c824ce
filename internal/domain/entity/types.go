package entity

// EntityID is a unique, never recycled identifier
type EntityID uint32

// Positioned is anything with a center position in the arena
type Positioned interface {
	Position() Vec2
}

// Collidable is anything with an axis-aligned collider
type Collidable interface {
	Bounds() Rect
}

// Body is an entity with both a position and a collider centered on it
type Body interface {
	Positioned
	Collidable
}

var (
	_ Body = (*Segment)(nil)
	_ Body = (*Mushroom)(nil)
	_ Body = (*Laser)(nil)
	_ Body = (*Spider)(nil)
	_ Body = (*Player)(nil)
)

// SpriteID is the logical identity of a drawable. The asset registry maps it
// to an image; the simulation never looks past the ID.
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpriteHead
	SpriteBody
	SpriteMushroom
	SpriteMushroomDamaged1 // one hit taken
	SpriteMushroomDamaged2
	SpriteMushroomDamaged3 // one hit left
	SpriteSpider
	SpritePlayer
	SpriteLaser
)

// String returns the sprite name
func (s SpriteID) String() string {
	switch s {
	case SpriteHead:
		return "head"
	case SpriteBody:
		return "body"
	case SpriteMushroom:
		return "mushroom"
	case SpriteMushroomDamaged1:
		return "mushroom-damaged-1"
	case SpriteMushroomDamaged2:
		return "mushroom-damaged-2"
	case SpriteMushroomDamaged3:
		return "mushroom-damaged-3"
	case SpriteSpider:
		return "spider"
	case SpritePlayer:
		return "player"
	case SpriteLaser:
		return "laser"
	default:
		return "none"
	}
}

// Arena holds the play-field geometry. Every band is injected from config.
type Arena struct {
	GridSize float64
	Size     Vec2

	CentipedeArea Rect // where segments move
	MushroomArea  Rect // where mushrooms spawn
	SpiderArea    Rect
	PlayerArea    Rect
}

// Bounds returns the whole play-field
func (a Arena) Bounds() Rect {
	return NewRect(0, 0, a.Size.X, a.Size.Y)
}
