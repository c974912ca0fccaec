package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// BoardInspector shows the locked cells as text along with the falling
// piece, its ghost and the upcoming shapes. Its buttons act on the game
// directly, which makes it useful for stepping through kicks by hand.
type BoardInspector struct {
	ShowPiece   bool
	ShowGhost   bool
	PreviewSize int32
}

// NewBoardInspector returns an inspector showing the piece and its ghost
func NewBoardInspector() *BoardInspector {
	return &BoardInspector{
		ShowPiece:   true,
		ShowGhost:   true,
		PreviewSize: 5,
	}
}

// grid renders the board top row first with the current piece as '@' and
// its ghost as '+'.
func (bi *BoardInspector) grid(game *tetris.Game) string {
	board := game.Board()
	overlay := make(map[tetris.Vector]byte, 8)
	if bi.ShowGhost {
		for _, b := range game.Ghost().Blocks() {
			overlay[b] = '+'
		}
	}
	if bi.ShowPiece {
		for _, b := range game.Current().Blocks() {
			overlay[b] = '@'
		}
	}

	var sb strings.Builder
	for y := int32(tetris.Height - 1); y >= 0; y-- {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := int32(0); x < tetris.Width; x++ {
			pos := tetris.Vec(x, y)
			if c, ok := overlay[pos]; ok {
				sb.WriteByte(c)
				continue
			}
			sb.WriteString(board.Get(pos).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render draws the board window for the frame's game
func (bi *BoardInspector) Render(frame *loop.UpdateFrame) {
	game := frame.Game

	imgui.SetNextWindowPosV(imgui.NewVec2(520, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 560), imgui.CondOnce)
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if game.Status() == tetris.Over {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "ACTIVE")
	}

	current := game.Current()
	imgui.Text(fmt.Sprintf("Piece: %s", current))
	imgui.Text(fmt.Sprintf("Ghost: %s", game.Ghost().Position))
	board := game.Board()
	imgui.Text(fmt.Sprintf("Stack height: %d", board.StackHeight()))

	imgui.Checkbox("Piece", &bi.ShowPiece)
	imgui.SameLine()
	imgui.Checkbox("Ghost", &bi.ShowGhost)

	imgui.Separator()
	imgui.Text(bi.grid(game))

	imgui.Separator()
	imgui.Text("Step:")
	for _, action := range []loop.Action{loop.MoveLeft, loop.MoveRight, loop.SoftDrop} {
		if imgui.Button(action.String()) {
			loop.Apply(game, action)
		}
		imgui.SameLine()
	}
	if imgui.Button("tick") {
		game.Tick()
	}
	for _, action := range []loop.Action{loop.RotateCCW, loop.RotateCW, loop.HardDrop} {
		if imgui.Button(action.String()) {
			loop.Apply(game, action)
		}
		imgui.SameLine()
	}
	imgui.Text("")

	if imgui.TreeNodeStr("Kicks") {
		for _, dir := range []tetris.Direction{tetris.Clockwise, tetris.CounterClockwise} {
			to := dir.Apply(current.Orientation)
			kicks := tetris.Kicks(current.Shape, current.Orientation, to)
			imgui.BulletText(fmt.Sprintf("%s -> %s: %v", current.Orientation, to, kicks))
		}
		imgui.TreePop()
	}

	imgui.Separator()
	imgui.InputInt("Preview", &bi.PreviewSize)
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PreviewTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Shape")
		imgui.TableHeadersRow()

		for i, shape := range game.Preview(int(bi.PreviewSize)) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", i+1))
			imgui.TableNextColumn()
			imgui.Text(shape.String())
		}
		imgui.EndTable()
	}

	imgui.End()
}
