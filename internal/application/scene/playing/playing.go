// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/centipede/internal/application/replay"
	"github.com/younwookim/centipede/internal/application/scene"
	"github.com/younwookim/centipede/internal/application/state"
	"github.com/younwookim/centipede/internal/application/system"
	"github.com/younwookim/centipede/internal/domain/entity"
	"github.com/younwookim/centipede/internal/infrastructure/assets"
	"github.com/younwookim/centipede/internal/infrastructure/config"
	"github.com/younwookim/centipede/internal/infrastructure/render"
)

const (
	maxStepsPerFrame = 5
	bannerDuration   = 1.5 // seconds the wave banner stays up
	fadeDuration     = 0.8

	shakeIntensity = 3.0
	shakeDecay     = 0.85
)

var colorBG = color.RGBA{10, 10, 20, 255}

// Options configure a game
type Options struct {
	// Source supplies the config each new game starts with. When nil,
	// every game uses Config.
	Source   *config.Source
	Config   *config.GameConfig
	Registry *assets.Registry
	HUD      *render.HUD

	// Input is polled once per tick. Ignored when Replay is set.
	Input system.InputSource

	// Seed fixes the RNG; zero picks one from the clock
	Seed int64

	// RecordPath enables input recording to that file
	RecordPath string
	ConfigName string

	// Replay plays back a recording instead of reading Input
	Replay *replay.ReplayData

	// Exit builds the scene shown after the game; nil quits
	Exit scene.Factory
}

// Playing is the main gameplay scene
type Playing struct {
	opts   Options
	engine *system.Engine
	clock  *system.FixedStep
	input  system.InputSource
	state  state.GameState
	seed   int64

	// Presentation
	canvas      *render.Canvas
	banner      *gween.Tween
	bannerMsg   string
	bannerAlpha float32
	fade        *gween.Tween
	fadeAlpha   float32
	overMsg     string
	shake       float64
	shakeRNG    *rand.Rand
	debug       bool

	// Input recording / playback
	recorder *replay.Recorder
	replayer *replay.Replayer

	justPressed func(ebiten.Key) bool
}

// New creates a new Playing scene and starts a game
func New(opts Options) *Playing {
	p := &Playing{
		opts:        opts,
		input:       opts.Input,
		canvas:      render.NewCanvas(opts.Registry, entity.Vec2{}),
		shakeRNG:    rand.New(rand.NewSource(1)),
		justPressed: inpututil.IsKeyJustPressed,
	}

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.input = p.replayer
		p.seed = p.replayer.Seed()
		log.Printf("Replaying %d frames (seed: %d)", p.replayer.TotalFrames(), p.seed)
	} else {
		p.seed = opts.Seed
		if p.seed == 0 {
			p.seed = time.Now().UnixNano()
		}
	}
	if p.input == nil {
		p.input = system.InputFunc(func() system.InputState { return system.InputState{} })
	}

	p.start()
	return p
}

// config returns the latest config for a new game
func (p *Playing) config() *config.GameConfig {
	if p.opts.Source != nil {
		return p.opts.Source.Get()
	}
	return p.opts.Config
}

// start begins a fresh game with the current seed and config
func (p *Playing) start() {
	cfg := p.config()
	p.engine = system.NewEngine(cfg, rand.New(rand.NewSource(p.seed)))
	p.clock = system.NewFixedStep(cfg.Display.Framerate, maxStepsPerFrame)
	p.state = state.StatePlaying
	p.banner = nil
	p.fade = nil
	p.fadeAlpha = 0
	p.shake = 0

	if p.replayer != nil {
		p.replayer.Reset()
	}
	if p.opts.RecordPath != "" && p.replayer == nil {
		p.recorder = replay.NewRecorder(p.seed, p.opts.ConfigName)
		log.Printf("Recording enabled: %s (seed: %d)", p.opts.RecordPath, p.seed)
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.justPressed(ebiten.KeyF3) {
		p.debug = !p.debug
	}

	switch p.state {
	case state.StatePaused:
		if p.justPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
		return nil, nil
	case state.StateGameOver:
		return p.updateGameOver(dt)
	}

	if p.justPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return nil, nil
	}

	// F5: Save recording manually
	if p.justPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	p.step(dt)
	p.updateBanner(dt)
	p.shake *= shakeDecay

	return nil, nil
}

// step runs as many fixed ticks as dt covers
func (p *Playing) step(dt float64) {
	if !p.state.Simulating() {
		return
	}
	for range p.clock.Advance(dt) {
		if p.replayer != nil && p.replayer.Done() {
			p.gameOver("REPLAY END")
			return
		}

		in := p.input.Poll()
		if p.recorder != nil {
			p.recorder.RecordFrame(in)
		}

		p.engine.SetInput(in)
		p.engine.Update(p.clock.Step)
		p.handleEvents(p.engine.DrainEvents())

		if p.engine.IsGameOver() {
			p.gameOver("GAME OVER")
			return
		}
	}
}

func (p *Playing) handleEvents(events []system.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case system.WaveCleared:
			log.Printf("Wave %d cleared (score: %d)", ev.Wave, p.engine.Score())
			p.state = state.StateWaveClear
			p.bannerMsg = fmt.Sprintf("WAVE %d", ev.Wave+1)
			p.banner = gween.New(1, 0, bannerDuration, ease.InQuad)
			p.bannerAlpha = 1
		case system.PlayerHit:
			log.Printf("Player hit, %d lives left", ev.LivesLeft)
			p.shake = shakeIntensity
		case system.PlayerDied:
			log.Printf("Game over at tick %d, score %d", p.engine.Tick(), ev.Score)
		}
	}
}

func (p *Playing) updateBanner(dt float64) {
	if p.state != state.StateWaveClear || p.banner == nil {
		return
	}
	alpha, done := p.banner.Update(float32(dt))
	p.bannerAlpha = alpha
	if done {
		p.banner = nil
		p.state = state.StatePlaying
	}
}

func (p *Playing) gameOver(msg string) {
	p.state = state.StateGameOver
	p.overMsg = msg
	p.fade = gween.New(0, 1, fadeDuration, ease.OutQuad)
	p.fadeAlpha = 0

	// Auto-save recording on game over
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
}

func (p *Playing) updateGameOver(dt float64) (scene.Scene, error) {
	if p.fade != nil {
		p.fadeAlpha, _ = p.fade.Update(float32(dt))
	}

	switch {
	case p.justPressed(ebiten.KeyEnter):
		if p.opts.Exit == nil {
			return nil, scene.ErrQuit
		}
		return p.opts.Exit(), nil
	case p.justPressed(ebiten.KeyR):
		p.restart()
	}
	return nil, nil
}

// restart plays again with a new seed, or from the top for a replay
func (p *Playing) restart() {
	if p.replayer == nil {
		p.seed = time.Now().UnixNano()
	}
	p.start()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	offset := entity.Vec2{}
	if p.shake > 0.5 {
		offset.X = p.shake * (2*p.shakeRNG.Float64() - 1)
		offset.Y = p.shake * (2*p.shakeRNG.Float64() - 1)
	}
	p.canvas.SetOrigin(offset)
	p.canvas.Begin(screen)
	p.engine.Draw(p.canvas)

	hud := p.opts.HUD
	if hud == nil {
		return
	}
	hud.DrawStatus(screen, p.engine.Score(), p.engine.Wave(), p.engine.Lives())

	switch p.state {
	case state.StateWaveClear:
		hud.DrawBanner(screen, p.bannerAlpha, p.bannerMsg)
	case state.StatePaused:
		hud.DrawBanner(screen, 1, "PAUSED", "ESC to resume")
	case state.StateGameOver:
		hud.DrawBanner(screen, p.fadeAlpha, p.overMsg,
			fmt.Sprintf("SCORE %d", p.engine.Score()),
			"ENTER for title  R to play again")
	}

	if p.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  tick %d  seed %d", ebiten.ActualTPS(), p.engine.Tick(), p.seed), 2, 10)
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// Engine returns the running simulation
func (p *Playing) Engine() *system.Engine {
	return p.engine
}

// State returns the scene's current phase
func (p *Playing) State() state.GameState {
	return p.state
}

// Seed returns the seed of the current game
func (p *Playing) Seed() int64 {
	return p.seed
}
