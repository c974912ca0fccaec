package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/loop"
)

const (
	// dasDelay is how long a side key is held before it repeats, in ticks
	dasDelay = 12
	// dasRate is the number of ticks between repeats
	dasRate = 3
	// softDropRate is the number of ticks between soft drops while held
	softDropRate = 2
)

// Keyboard turns ebiten key state into actions. Side moves auto-repeat
// after dasDelay ticks.
type Keyboard struct {
	Disabled bool
}

func repeats(key ebiten.Key, delay, rate int) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%rate == 0
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (k *Keyboard) Actions() []loop.Action {
	if k.Disabled {
		return nil
	}

	var actions []loop.Action
	if justPressed(ebiten.KeyZ) {
		actions = append(actions, loop.RotateCCW)
	}
	if justPressed(ebiten.KeyX, ebiten.KeyUp) {
		actions = append(actions, loop.RotateCW)
	}
	if repeats(ebiten.KeyLeft, dasDelay, dasRate) {
		actions = append(actions, loop.MoveLeft)
	}
	if repeats(ebiten.KeyRight, dasDelay, dasRate) {
		actions = append(actions, loop.MoveRight)
	}
	if repeats(ebiten.KeyDown, softDropRate, softDropRate) {
		actions = append(actions, loop.SoftDrop)
	}
	if justPressed(ebiten.KeySpace) {
		actions = append(actions, loop.HardDrop)
	}
	return actions
}
