// Package input reads the keyboard into the simulation's input state.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/centipede/internal/application/system"
)

// Bindings lists the keys for each control. Any bound key being held
// activates the control.
type Bindings struct {
	Up    []ebiten.Key
	Down  []ebiten.Key
	Left  []ebiten.Key
	Right []ebiten.Key
	Fire  []ebiten.Key
}

// DefaultBindings are arrows or WASD to move and Space or Z to fire
func DefaultBindings() Bindings {
	return Bindings{
		Up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Fire:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
	}
}

// Keyboard polls held keys. It implements system.InputSource.
type Keyboard struct {
	bindings Bindings
	pressed  func(ebiten.Key) bool
}

// NewKeyboard creates a keyboard source using bindings
func NewKeyboard(bindings Bindings) *Keyboard {
	return &Keyboard{bindings: bindings, pressed: ebiten.IsKeyPressed}
}

// Poll returns the controls held right now
func (k *Keyboard) Poll() system.InputState {
	return system.InputState{
		Up:    k.any(k.bindings.Up),
		Down:  k.any(k.bindings.Down),
		Left:  k.any(k.bindings.Left),
		Right: k.any(k.bindings.Right),
		Fire:  k.any(k.bindings.Fire),
	}
}

func (k *Keyboard) any(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.pressed(key) {
			return true
		}
	}
	return false
}
