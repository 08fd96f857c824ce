package system

import "github.com/younwookim/centipede/internal/domain/entity"

// Event is something that happened during a tick
type Event interface {
	isEvent()
}

// LaserFired is emitted when the player shoots
type LaserFired struct {
	Origin entity.Vec2
}

func (LaserFired) isEvent() {}

// SegmentKilled is emitted when a laser kills a centipede segment
type SegmentKilled struct {
	Pos  entity.Vec2
	Head bool
}

func (SegmentKilled) isEvent() {}

// MushroomDestroyed is emitted when a laser takes a mushroom's last point
type MushroomDestroyed struct {
	Pos entity.Vec2
}

func (MushroomDestroyed) isEvent() {}

// MushroomEaten is emitted when the spider removes a mushroom
type MushroomEaten struct {
	Pos entity.Vec2
}

func (MushroomEaten) isEvent() {}

// SpiderKilled is emitted when a laser kills the spider
type SpiderKilled struct {
	Pos entity.Vec2
}

func (SpiderKilled) isEvent() {}

// SpiderRespawned is emitted when the spider comes back
type SpiderRespawned struct{}

func (SpiderRespawned) isEvent() {}

// PlayerHit is emitted when the spider catches the player
type PlayerHit struct {
	LivesLeft int
}

func (PlayerHit) isEvent() {}

// PlayerDied is emitted once when the last life is lost
type PlayerDied struct {
	Score int
}

func (PlayerDied) isEvent() {}

// WaveCleared is emitted when the last segment of a centipede dies
type WaveCleared struct {
	Wave int
}

func (WaveCleared) isEvent() {}
