package tetris

// Status is the session state of a Game.
type Status uint8

const (
	Active Status = iota
	Over
)

func (s Status) String() string {
	if s == Over {
		return "over"
	}
	return "active"
}

// SpawnPosition is where new pieces appear, near the top centre of the board
var SpawnPosition = Vec(4, 22)

var (
	left  = Vec(-1, 0)
	right = Vec(1, 0)
	down  = Vec(0, -1)
)

// Lock describes one piece being committed to the board by Tick.
type Lock struct {
	// Piece is the piece as it was locked
	Piece Piece
	// Rows is the number of rows this lock cleared
	Rows int
	// Spawned is the piece that replaced it
	Spawned Piece
	// ToppedOut is set when Spawned could not be placed
	ToppedOut bool
}

// Game owns the board, the falling piece and the shape sequence of one play
// session. It is not safe for concurrent use.
type Game struct {
	board        Board
	current      Piece
	bag          *Bag
	linesCleared uint
	pieces       uint
	status       Status
	onLock       func(Lock)
}

// NewGame starts a session on an empty board and spawns the first piece
func NewGame(rng Shuffler) *Game {
	g := &Game{bag: NewBag(rng)}
	g.Spawn()
	return g
}

// Spawn replaces the current piece with the next shape at SpawnPosition.
// It does not check that the new piece fits.
func (g *Game) Spawn() {
	g.current = NewPiece(g.bag.Next(), SpawnPosition)
	g.pieces++
}

// CanMoveTo reports whether the current piece fits when translated by offset
func (g *Game) CanMoveTo(offset Vector) bool {
	return g.board.CanPlace(g.current.Moved(offset))
}

func (g *Game) move(offset Vector) bool {
	if g.status == Over || !g.CanMoveTo(offset) {
		return false
	}
	g.current = g.current.Moved(offset)
	return true
}

// MoveLeft shifts the current piece one column left if it fits
func (g *Game) MoveLeft() bool {
	return g.move(left)
}

// MoveRight shifts the current piece one column right if it fits
func (g *Game) MoveRight() bool {
	return g.move(right)
}

// SoftDrop moves the current piece one row down if it fits
func (g *Game) SoftDrop() bool {
	return g.move(down)
}

// HardDrop soft-drops until the piece rests and returns the rows travelled.
// The piece is not locked until the next Tick.
func (g *Game) HardDrop() int {
	rows := 0
	for g.SoftDrop() {
		rows++
	}
	return rows
}

func (g *Game) rotate(dir Direction) bool {
	if g.status == Over {
		return false
	}
	rotated, ok := Rotate(&g.board, g.current, dir)
	if ok {
		g.current = rotated
	}
	return ok
}

// RotateClockwise rotates the current piece clockwise, applying kicks
func (g *Game) RotateClockwise() bool {
	return g.rotate(Clockwise)
}

// RotateCounterClockwise rotates the current piece counter-clockwise,
// applying kicks
func (g *Game) RotateCounterClockwise() bool {
	return g.rotate(CounterClockwise)
}

// OnLock registers fn to be called after every lock, replacing any previous
// handler. A nil fn removes it.
func (g *Game) OnLock(fn func(Lock)) {
	g.onLock = fn
}

// Tick advances the game by one gravity step. A falling piece moves down one
// row; a resting piece is locked, full rows are cleared and the next piece is
// spawned. Tick returns false on the tick that tops out, and keeps returning
// false without changing anything on every later call, since Over is terminal.
func (g *Game) Tick() bool {
	if g.status == Over {
		return false
	}
	if g.SoftDrop() {
		return true
	}

	locked := g.current
	g.board.Place(locked)
	rows := g.board.ClearFullRows()
	g.linesCleared += uint(rows)
	g.Spawn()

	if !g.board.CanPlace(g.current) {
		g.status = Over
	}
	if g.onLock != nil {
		g.onLock(Lock{
			Piece:     locked,
			Rows:      rows,
			Spawned:   g.current,
			ToppedOut: g.status == Over,
		})
	}
	return g.status == Active
}

// Board returns a snapshot of the locked cells
func (g *Game) Board() Board {
	return g.board
}

// Current returns the falling piece
func (g *Game) Current() Piece {
	return g.current
}

// Ghost returns where the current piece would rest after a hard drop
func (g *Game) Ghost() Piece {
	ghost := g.current
	for {
		next := ghost.Moved(down)
		if !g.board.CanPlace(next) {
			return ghost
		}
		ghost = next
	}
}

// LinesCleared returns the number of rows removed this session
func (g *Game) LinesCleared() uint {
	return g.linesCleared
}

// Pieces returns the number of pieces spawned this session
func (g *Game) Pieces() uint {
	return g.pieces
}

// Status reports whether the session is still Active or Over
func (g *Game) Status() Status {
	return g.status
}

// Next returns the shape that will spawn after the current piece locks
func (g *Game) Next() Shape {
	return g.bag.Peek()
}

// Preview returns up to BagSize upcoming shapes
func (g *Game) Preview(n int) []Shape {
	return g.bag.Preview(n)
}
