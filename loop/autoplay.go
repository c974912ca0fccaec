package loop

import (
	"math"

	"github.com/plus3/blockfall/tetris"
)

// Weights scores a board after a candidate placement. Higher is better.
type Weights struct {
	AggregateHeight float64
	Lines           float64
	Holes           float64
	Bumpiness       float64
}

// DefaultWeights favour flat, hole-free stacks that clear rows.
var DefaultWeights = Weights{
	AggregateHeight: -0.510066,
	Lines:           0.760666,
	Holes:           -0.35663,
	Bumpiness:       -0.184483,
}

// Plan is the action sequence that takes a piece to its chosen resting place.
type Plan struct {
	Actions []Action
	Target  tetris.Piece
	Score   float64
}

// BoardFeatures are the measurements Weights are applied to.
type BoardFeatures struct {
	AggregateHeight int
	Holes           int
	Bumpiness       int
}

// Measure computes column heights, covered holes and surface bumpiness.
func Measure(board *tetris.Board) BoardFeatures {
	var heights [tetris.Width]int
	var f BoardFeatures

	for x := int32(0); x < tetris.Width; x++ {
		covered := false
		for y := int32(tetris.Height - 1); y >= 0; y-- {
			if board.IsFree(tetris.Vec(x, y)) {
				if covered {
					f.Holes++
				}
				continue
			}
			if !covered {
				heights[x] = int(y) + 1
				covered = true
			}
		}
		f.AggregateHeight += heights[x]
	}

	for x := 1; x < tetris.Width; x++ {
		d := heights[x] - heights[x-1]
		if d < 0 {
			d = -d
		}
		f.Bumpiness += d
	}
	return f
}

func (w Weights) score(f BoardFeatures, lines int) float64 {
	return w.AggregateHeight*float64(f.AggregateHeight) +
		w.Lines*float64(lines) +
		w.Holes*float64(f.Holes) +
		w.Bumpiness*float64(f.Bumpiness)
}

// rotations lists the turns tried from the spawn orientation
var rotations = [][]Action{
	nil,
	{RotateCW},
	{RotateCW, RotateCW},
	{RotateCCW},
}

// BestPlacement searches every orientation and column reachable from piece
// by rotating in place and then sliding sideways, and returns the plan whose
// resulting board scores highest. The plan always ends with HardDrop.
func BestPlacement(board tetris.Board, piece tetris.Piece, w Weights) Plan {
	best := Plan{
		Actions: []Action{HardDrop},
		Target:  ghost(&board, piece),
		Score:   math.Inf(-1),
	}

	for _, turns := range rotations {
		p, ok := replay(&board, piece, turns)
		if !ok {
			continue
		}

		for _, step := range []Action{MoveLeft, MoveRight} {
			offset := tetris.Vec(-1, 0)
			if step == MoveRight {
				offset = tetris.Vec(1, 0)
			}

			q := p
			for slides := 0; ; slides++ {
				// the unshifted column is scored once, on the left pass
				if slides > 0 || step == MoveLeft {
					target := ghost(&board, q)
					if s := evaluate(board, target, w); s > best.Score {
						actions := make([]Action, 0, len(turns)+slides+1)
						actions = append(actions, turns...)
						for range slides {
							actions = append(actions, step)
						}
						best = Plan{
							Actions: append(actions, HardDrop),
							Target:  target,
							Score:   s,
						}
					}
				}

				next := q.Moved(offset)
				if !board.CanPlace(next) {
					break
				}
				q = next
			}
		}
	}
	return best
}

func replay(board *tetris.Board, piece tetris.Piece, turns []Action) (tetris.Piece, bool) {
	for _, turn := range turns {
		dir := tetris.Clockwise
		if turn == RotateCCW {
			dir = tetris.CounterClockwise
		}
		var ok bool
		if piece, ok = tetris.Rotate(board, piece, dir); !ok {
			return piece, false
		}
	}
	return piece, true
}

func ghost(board *tetris.Board, piece tetris.Piece) tetris.Piece {
	for {
		next := piece.Moved(tetris.Vec(0, -1))
		if !board.CanPlace(next) {
			return piece
		}
		piece = next
	}
}

func evaluate(board tetris.Board, target tetris.Piece, w Weights) float64 {
	board.Place(target)
	lines := board.ClearFullRows()
	return w.score(Measure(&board), lines)
}

// AutoplaySystem plays the game on its own. Each time a new piece spawns it
// plans a placement with BestPlacement and queues the whole plan.
type AutoplaySystem struct {
	Weights Weights

	planned uint
	last    Plan
}

// NewAutoplaySystem returns an AutoplaySystem that scores placements with w
func NewAutoplaySystem(w Weights) *AutoplaySystem {
	return &AutoplaySystem{Weights: w}
}

// Execute plans a placement whenever a new piece has spawned and pushes its
// actions for this frame.
func (s *AutoplaySystem) Execute(frame *UpdateFrame) {
	game := frame.Game
	if game.Status() == tetris.Over || game.Pieces() == s.planned {
		return
	}

	s.planned = game.Pieces()
	s.last = BestPlacement(game.Board(), game.Current(), s.Weights)
	for _, action := range s.last.Actions {
		frame.Commands.Push(action)
	}

	frame.Logger.Trace().
		Stringer("piece", game.Current()).
		Stringer("target", s.last.Target).
		Float64("score", s.last.Score).
		Msg("planned placement")
}

// LastPlan returns the most recent plan
func (s *AutoplaySystem) LastPlan() Plan {
	return s.last
}

// Reset forgets the last plan
func (s *AutoplaySystem) Reset() {
	s.planned = 0
	s.last = Plan{}
}
