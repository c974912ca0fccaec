package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const (
	tile         = 24
	boardX       = 20
	boardY       = 12
	sidebarX     = boardX + tetris.Width*tile + 30
	screenWidth  = sidebarX + 6*tile
	screenHeight = boardY*2 + tetris.Height*tile
)

var (
	bgColor      = color.RGBA{18, 18, 24, 255}
	gridColor    = color.RGBA{40, 40, 55, 255}
	emptyColor   = color.RGBA{30, 30, 44, 255}
	blockedColor = color.RGBA{90, 90, 90, 255}
	overlayColor = color.RGBA{0, 0, 0, 160}
)

// shapeColors is indexed by tetris.Shape
var shapeColors = [tetris.ShapeCount]color.RGBA{
	tetris.I: {0, 240, 240, 255},
	tetris.O: {240, 240, 0, 255},
	tetris.J: {0, 0, 240, 255},
	tetris.L: {240, 160, 0, 255},
	tetris.S: {0, 240, 0, 255},
	tetris.T: {160, 0, 240, 255},
	tetris.Z: {240, 0, 0, 255},
}

func ghostColor(s tetris.Shape) color.RGBA {
	c := shapeColors[s]
	return color.RGBA{c.R / 4, c.G / 4, c.B / 4, 255}
}

func cellColor(c tetris.Cell) color.RGBA {
	if shape, ok := c.Shape(); ok {
		return shapeColors[shape]
	}
	if c.Kind() == tetris.KindBlocked {
		return blockedColor
	}
	return emptyColor
}

// drawCell fills board cell pos; row 0 is at the bottom of the well.
func drawCell(screen *ebiten.Image, pos tetris.Vector, c color.RGBA) {
	px := float32(boardX + pos.X*tile)
	py := float32(boardY + (tetris.Height-1-pos.Y)*tile)
	vector.DrawFilledRect(screen, px+1, py+1, tile-2, tile-2, c, false)
}

func drawPiece(screen *ebiten.Image, piece tetris.Piece, c color.RGBA) {
	for _, b := range piece.Blocks() {
		if b.Y < tetris.Height {
			drawCell(screen, b, c)
		}
	}
}

func drawSession(screen *ebiten.Image, game *tetris.Game, stats loop.SessionStats) {
	screen.Fill(bgColor)
	vector.DrawFilledRect(screen, boardX-2, boardY-2, tetris.Width*tile+4, tetris.Height*tile+4, gridColor, false)

	board := game.Board()
	for y := int32(0); y < tetris.Height; y++ {
		for x := int32(0); x < tetris.Width; x++ {
			pos := tetris.Vec(x, y)
			drawCell(screen, pos, cellColor(board.Get(pos)))
		}
	}

	current := game.Current()
	if game.Status() == tetris.Active {
		drawPiece(screen, game.Ghost(), ghostColor(current.Shape))
	}
	drawPiece(screen, current, shapeColors[current.Shape])

	drawSidebar(screen, game, stats)

	if game.Status() == tetris.Over {
		vector.DrawFilledRect(screen, boardX, boardY, tetris.Width*tile, tetris.Height*tile, overlayColor, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", boardX+tetris.Width*tile/2-28, screenHeight/2-16)
		ebitenutil.DebugPrintAt(screen, "press R to restart", boardX+tetris.Width*tile/2-56, screenHeight/2)
	}
}

func drawSidebar(screen *ebiten.Image, game *tetris.Game, stats loop.SessionStats) {
	ebitenutil.DebugPrintAt(screen, "NEXT", sidebarX, boardY)

	const small = tile / 2
	for i, shape := range game.Preview(3) {
		originX := float32(sidebarX + 2*small)
		originY := float32(boardY + 40 + i*4*small)
		for _, off := range tetris.Offsets(shape, tetris.North) {
			px := originX + float32(off.X)*small
			py := originY - float32(off.Y)*small
			vector.DrawFilledRect(screen, px, py, small-1, small-1, shapeColors[shape], false)
		}
	}

	level := loop.Level(game.LinesCleared())
	lines := []string{
		fmt.Sprintf("LINES  %d", game.LinesCleared()),
		fmt.Sprintf("LEVEL  %d", level),
		fmt.Sprintf("PIECES %d", game.Pieces()),
		fmt.Sprintf("TETRIS %d", stats.Tetrises()),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, sidebarX, boardY+220+i*18)
	}
}
