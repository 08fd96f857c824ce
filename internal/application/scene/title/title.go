// Package title provides the start screen.
package title

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/centipede/internal/application/scene"
	"github.com/younwookim/centipede/internal/application/state"
	"github.com/younwookim/centipede/internal/infrastructure/render"
)

const pulseDuration = 0.6

var colorBG = color.RGBA{10, 10, 20, 255}

// Title waits for the player to start a game
type Title struct {
	hud   *render.HUD
	start scene.Factory

	pulse *gween.Sequence
	alpha float32

	justPressed func(ebiten.Key) bool
}

// New creates the title screen. start builds the game scene.
func New(hud *render.HUD, start scene.Factory) *Title {
	return &Title{
		hud:         hud,
		start:       start,
		alpha:       1,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update pulses the prompt and starts a game on Enter or Space.
// Escape quits.
func (t *Title) Update(dt float64) (scene.Scene, error) {
	var done bool
	t.alpha, _, done = t.pulse.Update(float32(dt))
	if done {
		t.pulse.Reset()
	}

	switch {
	case t.justPressed(ebiten.KeyEnter), t.justPressed(ebiten.KeySpace):
		return t.start(), nil
	case t.justPressed(ebiten.KeyEscape):
		return nil, scene.ErrQuit
	}
	return nil, nil
}

// Draw renders the title and the start prompt
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if t.hud == nil {
		return
	}

	h := float64(screen.Bounds().Dy())
	t.hud.DrawCentered(screen, "CENTIPEDE", h/3, true, 1)
	t.hud.DrawCentered(screen, "PRESS ENTER", h/2, false, t.alpha)
	t.hud.DrawCentered(screen, "ARROWS / WASD MOVE   SPACE FIRE   ESC PAUSE", h-24, false, 0.7)
}

// OnEnter restarts the prompt pulse
func (t *Title) OnEnter() {
	t.pulse = gween.NewSequence(
		gween.New(1, 0.2, pulseDuration, ease.InOutSine),
		gween.New(0.2, 1, pulseDuration, ease.InOutSine),
	)
	t.alpha = 1
}

// OnExit is called when leaving this scene
func (t *Title) OnExit() {}

// State returns the phase this screen represents
func (t *Title) State() state.GameState {
	return state.StateMenu
}
