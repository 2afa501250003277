package game

import "errors"

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// GameResult is the outcome of a board.
type GameResult int

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries
	PositionMin = 0
	PositionMax = 8
	Size        = 9
)

const (
	InProgress GameResult = iota
	XWins
	OWins
	Tie
)

var (
	ErrPositionOccupied = errors.New("position already taken")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidBoard     = errors.New("invalid board")
)

// winningLines lists rows, then columns, then diagonals.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is a 3x3 grid stored row-major.
type Board [Size]PlayerMark

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	return Board{}
}

// Winner returns the mark owning the first complete line, if any.
func (b Board) Winner() (PlayerMark, bool) {
	for _, line := range winningLines {
		if b[line[0]] != None && b[line[0]] == b[line[1]] && b[line[1]] == b[line[2]] {
			return b[line[0]], true
		}
	}
	return None, false
}

// IsFull reports whether no cell is empty.
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

// EmptyPositions returns the indices of empty cells in ascending order.
func (b Board) EmptyPositions() []int {
	positions := make([]int, 0, Size)
	for i, cell := range b {
		if cell == None {
			positions = append(positions, i)
		}
	}
	return positions
}

// Status maps the board to its result.
func (b Board) Status() GameResult {
	if winner, ok := b.Winner(); ok {
		if winner == PlayerX {
			return XWins
		}
		return OWins
	}
	if b.IsFull() {
		return Tie
	}
	return InProgress
}

// IsTerminal reports whether the game on this board has ended.
func (b Board) IsTerminal() bool {
	return b.Status() != InProgress
}

// ApplyMove places the human mark (X) at position. The returned board is
// unchanged and ok is false when the cell is already taken.
func ApplyMove(b Board, position int) (Board, bool) {
	if b[position] != None {
		return b, false
	}
	b[position] = PlayerX
	return b, true
}

// Opponent returns the other player's mark.
func (m PlayerMark) Opponent() PlayerMark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Valid reports whether m is one of the three cell values.
func (m PlayerMark) Valid() bool {
	return m == None || m == PlayerX || m == PlayerO
}

func (r GameResult) String() string {
	switch r {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Tie:
		return "tie"
	default:
		return "in_progress"
	}
}
