package system

import (
	"math/rand"

	"github.com/younwookim/centipede/internal/domain/entity"
	"github.com/younwookim/centipede/internal/infrastructure/config"
)

// Engine runs one game: it owns every entity and resolves a tick in a
// fixed order so identical input and seed always replay identically.
type Engine struct {
	config *config.GameConfig
	arena  entity.Arena

	Mushrooms *MushroomField
	Lasers    *LaserPool
	Centipede *Centipede
	Spider    *SpiderSystem
	Player    *entity.Player

	input        InputState
	fireInterval float64
	fireCooldown float64

	score    int
	wave     int
	tick     uint64
	nextWave bool
	gameOver bool
	events   []Event
}

// NewEngine creates an engine and starts a new game. All randomness comes
// from rng.
func NewEngine(cfg *config.GameConfig, rng *rand.Rand) *Engine {
	arena := LoadArena(cfg.Arena)

	e := &Engine{
		config:       cfg,
		arena:        arena,
		fireInterval: 1 / cfg.Laser.FireRate,
	}

	e.Mushrooms = NewMushroomField(arena, cfg.Mushrooms.Size, rng)
	e.Mushrooms.OnDestroyed = func(m *entity.Mushroom) {
		e.emit(MushroomDestroyed{Pos: m.Pos})
	}
	e.Mushrooms.OnEaten = func(m *entity.Mushroom) {
		e.emit(MushroomEaten{Pos: m.Pos})
	}

	e.Lasers = NewLaserPool(cfg.Laser.PoolSize, cfg.Laser.Speed, cfg.Laser.Width, cfg.Laser.Height, arena.Bounds().Top)

	e.Centipede = NewCentipede(arena.CentipedeArea, SegmentParamsFrom(cfg.Centipede, arena.GridSize), 0, e.Mushrooms)
	e.Centipede.OnSegmentKilled = func(seg *entity.Segment, wasHead bool) {
		e.emit(SegmentKilled{Pos: seg.Pos, Head: wasHead})
	}

	spider := entity.NewSpider(arena.SpiderArea, cfg.Spider.Width, cfg.Spider.Height)
	e.Spider = NewSpiderSystem(spider, cfg.Spider.Speed, cfg.Spider.MoveDuration, cfg.Spider.RespawnDuration, rng)
	e.Spider.OnRespawn = func(*entity.Spider) {
		e.emit(SpiderRespawned{})
	}

	e.Player = entity.NewPlayer(arena.PlayerArea, cfg.Player.Width, cfg.Player.Height, cfg.Player.Speed, cfg.Player.Lives)

	e.Reset()
	return e
}

// Reset starts a new game: fresh mushrooms, centipede, spider and player
func (e *Engine) Reset() {
	e.Mushrooms.Clear()
	e.Mushrooms.Spawn(e.config.Mushrooms.Count)
	e.Lasers.Reset()
	e.Centipede.Spawn(e.config.Centipede.Length)
	e.Spider.Spider().Spawn()
	e.Player.Spawn()

	e.input = InputState{}
	e.fireCooldown = 0
	e.score = 0
	e.wave = 1
	e.tick = 0
	e.nextWave = false
	e.gameOver = false
	e.events = e.events[:0]
}

// SetInput sets the controls used by the next Update
func (e *Engine) SetInput(in InputState) {
	e.input = in
}

// Update advances the game by one tick of dt seconds.
//
// Order within a tick:
//  1. input and firing
//  2. spider against mushrooms, then against the player
//  3. each active laser against spider, mushrooms, centipede (first hit wins)
//  4. centipede, spider, player movement
func (e *Engine) Update(dt float64) {
	if e.gameOver {
		return
	}
	e.tick++

	if e.nextWave {
		e.nextWave = false
		e.Centipede.Spawn(e.config.Centipede.Length)
	}

	e.applyInput(dt)

	spider := e.Spider.Spider()
	if spider.Alive {
		e.Mushrooms.CheckSpiderCollision(spider.Bounds())
		if e.Player.CheckSpiderCollision(spider.Bounds()) {
			e.emit(PlayerHit{LivesLeft: e.Player.Lives})
		}
	}

	e.Lasers.Update(dt, e.resolveLaser)

	e.Centipede.Update(dt)
	e.Spider.Update(dt)
	e.Player.Update(dt)

	if e.Centipede.IsCleared() {
		e.emit(WaveCleared{Wave: e.wave})
		e.wave++
		e.nextWave = true
	}

	if e.Player.IsDead() {
		e.gameOver = true
		e.emit(PlayerDied{Score: e.score})
	}
}

func (e *Engine) applyInput(dt float64) {
	in := e.input
	e.Player.SetInput(in.Up, in.Down, in.Left, in.Right)

	e.fireCooldown -= dt
	if e.fireCooldown > 0 {
		return
	}
	e.fireCooldown = 0

	if in.Fire {
		origin := e.Player.GunPosition()
		e.Lasers.Shoot(origin)
		e.fireCooldown = e.fireInterval
		e.emit(LaserFired{Origin: origin})
	}
}

// resolveLaser applies the first hit of a laser, checking the spider, then
// mushrooms, then the centipede
func (e *Engine) resolveLaser(laser entity.Rect) bool {
	if e.Spider.CheckLaserCollision(laser) {
		e.emit(SpiderKilled{Pos: e.Spider.Spider().Pos})
		return true
	}
	if e.Mushrooms.CheckLaserCollision(laser) {
		return true
	}
	return e.Centipede.CheckLaserCollision(laser)
}

func (e *Engine) emit(ev Event) {
	e.score += e.points(ev)
	e.events = append(e.events, ev)
}

func (e *Engine) points(ev Event) int {
	scoring := e.config.Scoring
	switch ev := ev.(type) {
	case SegmentKilled:
		if ev.Head {
			return scoring.Head
		}
		return scoring.Body
	case SpiderKilled:
		return scoring.Spider
	case MushroomDestroyed:
		return scoring.Mushroom
	default:
		return 0
	}
}

// DrainEvents returns the events since the last call and forgets them
func (e *Engine) DrainEvents() []Event {
	if len(e.events) == 0 {
		return nil
	}
	out := make([]Event, len(e.events))
	copy(out, e.events)
	e.events = e.events[:0]
	return out
}

// Draw paints mushrooms, centipede, spider, lasers and player
func (e *Engine) Draw(c Canvas) {
	e.Mushrooms.Draw(c)
	e.Centipede.Draw(c)
	e.Spider.Draw(c)
	e.Lasers.Draw(c)
	c.DrawSprite(entity.SpritePlayer, e.Player.Bounds(), false)
}

// Arena returns the play-field geometry
func (e *Engine) Arena() entity.Arena {
	return e.arena
}

// Score returns the points scored this game
func (e *Engine) Score() int {
	return e.score
}

// Wave returns the current wave, starting at 1
func (e *Engine) Wave() int {
	return e.wave
}

// Lives returns the player's remaining lives
func (e *Engine) Lives() int {
	return e.Player.Lives
}

// Tick returns the number of ticks run this game
func (e *Engine) Tick() uint64 {
	return e.tick
}

// IsGameOver returns true once the player has no lives left
func (e *Engine) IsGameOver() bool {
	return e.gameOver
}
