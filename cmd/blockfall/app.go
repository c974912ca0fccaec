package main

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// App implements ebiten.Game around a loop.Scheduler.
type App struct {
	scheduler *loop.Scheduler
	rng       *rand.Rand
	keyboard  *Keyboard
	stats     *loop.StatsSystem
	timer     *debugui.FrameTimer

	imgui *debugui_ebiten.ImguiBackend
	debug *debugui.System
}

func (a *App) Update() error {
	if justPressed(ebiten.KeyQ, ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.scheduler.Reset(tetris.NewGame(a.rng))
	}

	dt := a.timer.GetDeltaTime()
	if a.imgui == nil {
		a.scheduler.Once(dt)
		return nil
	}

	a.keyboard.Disabled = a.debug.Input.WantCaptureKeyboard
	a.imgui.BeginFrame()
	a.scheduler.Once(dt)
	a.imgui.EndFrame()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	drawSession(screen, a.scheduler.Game(), a.stats.Snapshot())

	if a.imgui != nil {
		a.imgui.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenWidth, screenHeight
}
