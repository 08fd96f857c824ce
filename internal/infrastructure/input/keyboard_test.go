package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/centipede/internal/application/system"
)

func keyboardWith(held ...ebiten.Key) *Keyboard {
	k := NewKeyboard(DefaultBindings())
	k.pressed = func(key ebiten.Key) bool {
		for _, h := range held {
			if h == key {
				return true
			}
		}
		return false
	}
	return k
}

func TestKeyboard_Poll(t *testing.T) {
	tests := []struct {
		name     string
		held     []ebiten.Key
		expected system.InputState
	}{
		{"nothing held", nil, system.InputState{}},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, system.InputState{Left: true}},
		{"wasd right", []ebiten.Key{ebiten.KeyD}, system.InputState{Right: true}},
		{"fire while moving up", []ebiten.Key{ebiten.KeyW, ebiten.KeySpace}, system.InputState{Up: true, Fire: true}},
		{"alternate fire", []ebiten.Key{ebiten.KeyZ}, system.InputState{Fire: true}},
		{"all directions", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyS, ebiten.KeyA, ebiten.KeyArrowRight},
			system.InputState{Up: true, Down: true, Left: true, Right: true}},
		{"unbound key", []ebiten.Key{ebiten.KeyQ}, system.InputState{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keyboardWith(tt.held...).Poll())
		})
	}
}

func TestKeyboard_IsInputSource(t *testing.T) {
	var src system.InputSource = keyboardWith(ebiten.KeyDown)
	assert.True(t, src.Poll().Down)
}
