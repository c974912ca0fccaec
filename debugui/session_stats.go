package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/dustin/go-humanize"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// SessionStats shows session counters from a StatsSystem, a frame time graph
// and the scheduler's per-system timings.
type SessionStats struct {
	scheduler     *loop.Scheduler
	stats         *loop.StatsSystem
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewSessionStats keeps historyFrames frame durations for the timing plot
func NewSessionStats(scheduler *loop.Scheduler, stats *loop.StatsSystem, historyFrames int) *SessionStats {
	return &SessionStats{
		scheduler:     scheduler,
		stats:         stats,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render draws the session counters, shape histogram and frame timings
func (ss *SessionStats) Render(frame *loop.UpdateFrame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(830, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 560), imgui.CondOnce)
	if !imgui.BeginV("Session Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ss.frameHistory[ss.frameIndex] = float32(frame.DeltaTime * 1000.0)
	ss.frameIndex = (ss.frameIndex + 1) % ss.historyFrames

	game := frame.Game
	snap := ss.stats.Snapshot()
	level := loop.Level(game.LinesCleared())

	imgui.Text(fmt.Sprintf("Lines: %s", humanize.Comma(int64(game.LinesCleared()))))
	imgui.Text(fmt.Sprintf("Pieces: %s", humanize.Comma(int64(game.Pieces()))))
	imgui.Text(fmt.Sprintf("Level: %d (gravity %s)", level, loop.LevelGravity(level)))
	imgui.Text(fmt.Sprintf("Tetrises: %d", snap.Tetrises()))

	var avgFrameTime float32
	for _, ft := range ss.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ss.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ss.frameHistory[0], int32(len(ss.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.TreeNodeStr("Shapes Dealt") {
		if imgui.BeginTableV("ShapeTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, shape := range tetris.Shapes() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(shape.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", snap.ShapeCounts[shape]))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Line Clears") {
		for rows := 1; rows < len(snap.Clears); rows++ {
			imgui.BulletText(fmt.Sprintf("%d row(s): %d", rows, snap.Clears[rows]))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Systems") {
		stats := ss.scheduler.GetStats()
		imgui.Text(fmt.Sprintf("Frames: %s", humanize.Comma(stats.Frames)))
		if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, s := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(s.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

// NewFrameTimer starts timing from now
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// GetDeltaTime returns the seconds elapsed since the previous call
func (ft *FrameTimer) GetDeltaTime() float64 {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime).Seconds()
	ft.lastFrameTime = now
	return delta
}
