package system

import (
	"math/rand"

	"github.com/younwookim/centipede/internal/domain/entity"
)

// timerEpsilon absorbs float drift when summing fixed ticks against a duration
const timerEpsilon = 1e-9

var (
	// at the right wall the spider may only turn back left
	rightEdgeDirections = []entity.SpiderDirection{
		entity.SpiderUp, entity.SpiderDown, entity.SpiderUpLeft, entity.SpiderDownLeft,
	}
	// at the left wall it may only turn back right
	leftEdgeDirections = []entity.SpiderDirection{
		entity.SpiderUp, entity.SpiderDown, entity.SpiderUpRight, entity.SpiderDownRight,
	}
	allSpiderDirections = []entity.SpiderDirection{
		entity.SpiderUp, entity.SpiderDown,
		entity.SpiderUpLeft, entity.SpiderUpRight,
		entity.SpiderDownLeft, entity.SpiderDownRight,
	}
)

// SpiderSystem moves the spider: random direction changes on a timer,
// vertical bounces off its band and respawning after death
type SpiderSystem struct {
	spider          *entity.Spider
	speed           float64
	moveDuration    float64
	respawnDuration float64
	rng             *rand.Rand

	// Event callbacks
	OnRespawn func(s *entity.Spider)
}

// NewSpiderSystem creates a system driving spider
func NewSpiderSystem(spider *entity.Spider, speed, moveDuration, respawnDuration float64, rng *rand.Rand) *SpiderSystem {
	return &SpiderSystem{
		spider:          spider,
		speed:           speed,
		moveDuration:    moveDuration,
		respawnDuration: respawnDuration,
		rng:             rng,
	}
}

// Spider returns the driven spider
func (s *SpiderSystem) Spider() *entity.Spider {
	return s.spider
}

// Update advances the spider by dt. A dead spider only counts down to its
// respawn.
func (s *SpiderSystem) Update(dt float64) {
	sp := s.spider

	if !sp.Alive {
		sp.RespawnTimer += dt
		if sp.RespawnTimer >= s.respawnDuration-timerEpsilon {
			sp.Spawn()
			if s.OnRespawn != nil {
				s.OnRespawn(sp)
			}
		}
		return
	}

	sp.Pos = sp.Pos.Add(sp.Dir.Velocity().Scale(s.speed * dt))
	sp.Pos.X = entity.Clamp(sp.Pos.X, sp.Limits.Left, sp.Limits.Right())

	sp.MoveTimer += dt
	if sp.MoveTimer >= s.moveDuration-timerEpsilon {
		sp.Dir = s.chooseDirection()
		sp.MoveTimer = 0
	}

	// Bounce off the band edges regardless of the timer
	if sp.Pos.Y < sp.Limits.Top && sp.Dir.IsUpward() {
		sp.Dir = sp.Dir.Bounced()
	} else if sp.Pos.Y >= sp.Limits.Bottom() && !sp.Dir.IsUpward() {
		sp.Dir = sp.Dir.Bounced()
	}
}

// chooseDirection picks uniformly among the directions allowed at the
// spider's horizontal position
func (s *SpiderSystem) chooseDirection() entity.SpiderDirection {
	allowed := AllowedSpiderDirections(s.spider)
	return allowed[s.rng.Intn(len(allowed))]
}

// AllowedSpiderDirections returns the directions the spider may pick next.
// Against a side wall it must move away from it or vertically.
func AllowedSpiderDirections(sp *entity.Spider) []entity.SpiderDirection {
	switch {
	case sp.Pos.X >= sp.Limits.Right():
		return rightEdgeDirections
	case sp.Pos.X <= sp.Limits.Left:
		return leftEdgeDirections
	default:
		return allSpiderDirections
	}
}

// CheckLaserCollision kills the spider if the laser hits it while alive
func (s *SpiderSystem) CheckLaserCollision(laser entity.Rect) bool {
	return s.spider.CheckLaserCollision(laser)
}

// Draw paints the spider while alive
func (s *SpiderSystem) Draw(c Canvas) {
	if s.spider.Alive {
		c.DrawSprite(entity.SpriteSpider, s.spider.Bounds(), false)
	}
}
