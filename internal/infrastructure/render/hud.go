package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorText   = color.RGBA{255, 255, 255, 255}
	colorScore  = color.RGBA{255, 240, 80, 255}
	colorShadow = color.RGBA{0, 0, 0, 160}
)

// HUD draws the status line and centered banners
type HUD struct {
	small *text.GoTextFace
	large *text.GoTextFace
}

// NewHUD loads the HUD font
func NewHUD() (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &HUD{
		small: &text.GoTextFace{Source: src, Size: 8},
		large: &text.GoTextFace{Source: src, Size: 16},
	}, nil
}

// DrawStatus draws score, wave and lives along the top edge of screen
func (h *HUD) DrawStatus(screen *ebiten.Image, score, wave, lives int) {
	w := float64(screen.Bounds().Dx())

	h.draw(screen, h.small, fmt.Sprintf("%06d", score), 2, 0, text.AlignStart, colorScore, 1)
	h.draw(screen, h.small, fmt.Sprintf("WAVE %d", wave), w/2, 0, text.AlignCenter, colorText, 1)
	h.draw(screen, h.small, fmt.Sprintf("LIVES %d", max(lives, 0)), w-2, 0, text.AlignEnd, colorText, 1)
}

// DrawBanner draws lines centered on screen over a dimmed backdrop.
// alpha fades the whole banner.
func (h *HUD) DrawBanner(screen *ebiten.Image, alpha float32, lines ...string) {
	if len(lines) == 0 || alpha <= 0 {
		return
	}
	b := screen.Bounds()
	w, ht := float64(b.Dx()), float64(b.Dy())

	Dim(screen, alpha)

	lineH := h.large.Size * 1.5
	top := ht/2 - lineH*float64(len(lines))/2
	for i, line := range lines {
		face := h.large
		if i > 0 {
			face = h.small
		}
		h.draw(screen, face, line, w/2, top+lineH*float64(i), text.AlignCenter, colorText, alpha)
	}
}

// DrawCentered draws s horizontally centered at height y
func (h *HUD) DrawCentered(screen *ebiten.Image, s string, y float64, large bool, alpha float32) {
	face := h.small
	if large {
		face = h.large
	}
	w := float64(screen.Bounds().Dx())
	h.draw(screen, face, s, w/2, y, text.AlignCenter, colorText, alpha)
}

// Dim darkens the whole screen, scaled by alpha
func Dim(screen *ebiten.Image, alpha float32) {
	b := screen.Bounds()
	c := colorShadow
	c.A = uint8(float32(c.A) * min(max(alpha, 0), 1))
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

func (h *HUD) draw(screen *ebiten.Image, face *text.GoTextFace, s string, x, y float64, align text.Align, c color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, s, face, op)
}
