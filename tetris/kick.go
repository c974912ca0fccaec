package tetris

// Anchor offsets per orientation. A rotation from orientation a to b tries
// the corrections anchors[a][i] - anchors[b][i] in order. The tables are the
// standard SRS offset data expressed with +y up.
var (
	jlstzAnchors = [orientationCount][]Vector{
		North: {{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
		East:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		South: {{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
		West:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	}

	iAnchors = [orientationCount][]Vector{
		North: {{0, 0}, {-1, 0}, {2, 0}, {-1, 0}, {2, 0}},
		East:  {{-1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, -2}},
		South: {{-1, 1}, {1, 1}, {-2, 1}, {1, 0}, {-2, 0}},
		West:  {{0, 1}, {0, 1}, {0, 1}, {0, -1}, {0, 2}},
	}

	oAnchors = [orientationCount][]Vector{
		North: {{0, 0}},
		East:  {{0, -1}},
		South: {{-1, -1}},
		West:  {{-1, 0}},
	}

	anchorTable = [ShapeCount]*[orientationCount][]Vector{
		I: &iAnchors,
		O: &oAnchors,
		J: &jlstzAnchors,
		L: &jlstzAnchors,
		S: &jlstzAnchors,
		T: &jlstzAnchors,
		Z: &jlstzAnchors,
	}
)

// Kicks returns the ordered position corrections tried when shape rotates
// from one orientation to another.
func Kicks(shape Shape, from, to Orientation) []Vector {
	anchors := anchorTable[shape]
	fromAnchors, toAnchors := anchors[from], anchors[to]

	n := min(len(fromAnchors), len(toAnchors))
	kicks := make([]Vector, n)
	for i := range n {
		kicks[i] = fromAnchors[i].Sub(toAnchors[i])
	}
	return kicks
}

// Rotate turns piece one step in dir and returns the first kicked candidate
// that fits on board. When no candidate fits it returns piece unchanged and
// false.
func Rotate(board *Board, piece Piece, dir Direction) (Piece, bool) {
	rotated := piece.Rotated(dir)
	for _, kick := range Kicks(piece.Shape, piece.Orientation, rotated.Orientation) {
		candidate := rotated.Moved(kick)
		if board.CanPlace(candidate) {
			return candidate, true
		}
	}
	return piece, false
}
