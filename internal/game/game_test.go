package game

import (
	"errors"
	"testing"
)

const (
	x = PlayerX
	o = PlayerO
	e = None
)

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		want   PlayerMark
		wantOK bool
	}{
		{
			name:  "No winner - empty board",
			board: Board{},
			want:  None,
		},
		{
			name: "No winner - partial board",
			board: Board{
				x, e, e,
				e, o, e,
				e, e, e,
			},
			want: None,
		},
		{
			name: "X wins - first row",
			board: Board{
				x, x, x,
				e, o, e,
				e, e, o,
			},
			want: PlayerX, wantOK: true,
		},
		{
			name: "O wins - second column",
			board: Board{
				x, o, e,
				x, o, e,
				e, o, x,
			},
			want: PlayerO, wantOK: true,
		},
		{
			name: "X wins - main diagonal",
			board: Board{
				x, o, e,
				e, x, o,
				e, e, x,
			},
			want: PlayerX, wantOK: true,
		},
		{
			name: "O wins - anti-diagonal",
			board: Board{
				x, x, o,
				e, o, x,
				o, e, e,
			},
			want: PlayerO, wantOK: true,
		},
		{
			name: "No winner - full board",
			board: Board{
				x, o, x,
				x, o, o,
				o, x, x,
			},
			want: None,
		},
		{
			name: "Winner on a full board",
			board: Board{
				x, x, x,
				o, o, x,
				o, x, o,
			},
			want: PlayerX, wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.board.Winner()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Winner() got = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// Every line wins for its owner no matter what fills the other cells.
func TestWinnerEveryLineAnyFiller(t *testing.T) {
	fillers := []PlayerMark{None, PlayerX, PlayerO}
	for _, line := range winningLines {
		for _, mark := range []PlayerMark{PlayerX, PlayerO} {
			for _, filler := range fillers {
				if filler == mark.Opponent() {
					// Filling everything else with the opponent could create a
					// second line; only blank or same-mark fillers are unambiguous.
					continue
				}
				var b Board
				for i := range b {
					b[i] = filler
				}
				for _, idx := range line {
					b[idx] = mark
				}
				if got, ok := b.Winner(); !ok || got != mark {
					t.Errorf("line %v filled with %q: Winner() = (%q, %v), want %q", line, filler, got, ok, mark)
				}
			}
		}
	}
}

func TestIsFull(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name:  "Empty board is not full",
			board: NewBoard(),
			want:  false,
		},
		{
			name: "Partial board is not full",
			board: Board{
				x, e, e,
				e, o, e,
				e, e, e,
			},
			want: false,
		},
		{
			name: "Full board is full",
			board: Board{
				x, o, x,
				x, o, o,
				o, x, x,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsFull(); got != tt.want {
				t.Errorf("IsFull() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmptyPositions(t *testing.T) {
	b := Board{
		x, e, o,
		e, x, e,
		o, e, e,
	}
	got := b.EmptyPositions()
	want := []int{1, 3, 5, 7, 8}
	if len(got) != len(want) {
		t.Fatalf("EmptyPositions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("EmptyPositions() = %v, want %v", got, want)
		}
	}

	full := Board{x, o, x, x, o, o, o, x, x}
	if n := len(full.EmptyPositions()); n != 0 {
		t.Errorf("EmptyPositions() on a full board returned %d positions", n)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  GameResult
	}{
		{name: "empty", board: NewBoard(), want: InProgress},
		{name: "x row", board: Board{x, x, x, o, o, e, e, e, e}, want: XWins},
		{name: "o column", board: Board{o, x, x, o, x, e, o, e, e}, want: OWins},
		{name: "tie", board: Board{x, o, x, x, o, o, o, x, x}, want: Tie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.Status(); got != tt.want {
				t.Errorf("Status() got = %v, want %v", got, tt.want)
			}
			if got := tt.board.IsTerminal(); got != (tt.want != InProgress) {
				t.Errorf("IsTerminal() got = %v for %v", got, tt.want)
			}
		})
	}
}

func TestApplyMove(t *testing.T) {
	b := NewBoard()

	first, ok := ApplyMove(b, 0)
	if !ok {
		t.Fatal("first move on an empty cell should succeed")
	}
	if first[0] != PlayerX {
		t.Errorf("expected X at 0, got %q", first[0])
	}
	if b[0] != None {
		t.Error("ApplyMove must not modify the caller's board")
	}

	second, ok := ApplyMove(first, 0)
	if ok {
		t.Fatal("second move on the same cell should fail")
	}
	if second != first {
		t.Errorf("board changed on a rejected move: got %v, want %v", second, first)
	}
}

func TestParseBoard(t *testing.T) {
	tests := []struct {
		name    string
		cells   []PlayerMark
		wantErr error
	}{
		{name: "empty board", cells: make([]PlayerMark, Size)},
		{name: "x to move", cells: []PlayerMark{x, o, e, e, e, e, e, e, e}},
		{name: "o to move", cells: []PlayerMark{x, x, e, e, o, e, e, e, e}},
		{name: "too short", cells: []PlayerMark{x, o}, wantErr: ErrInvalidBoard},
		{name: "nil", cells: nil, wantErr: ErrInvalidBoard},
		{name: "unknown value", cells: []PlayerMark{"Z", e, e, e, e, e, e, e, e}, wantErr: ErrInvalidBoard},
		{name: "o ahead", cells: []PlayerMark{o, e, e, e, e, e, e, e, e}, wantErr: ErrInvalidBoard},
		{name: "x two ahead", cells: []PlayerMark{x, x, e, e, e, e, e, e, e}, wantErr: ErrInvalidBoard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBoard(tt.cells)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseBoard() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				for i, cell := range tt.cells {
					if b[i] != cell {
						t.Errorf("cell %d = %q, want %q", i, b[i], cell)
					}
				}
			}
		})
	}
}

func TestValidatePosition(t *testing.T) {
	for p := PositionMin; p <= PositionMax; p++ {
		if err := ValidatePosition(p); err != nil {
			t.Errorf("ValidatePosition(%d) = %v, want nil", p, err)
		}
	}
	for _, p := range []int{-1, 9, 42} {
		if err := ValidatePosition(p); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("ValidatePosition(%d) = %v, want ErrInvalidPosition", p, err)
		}
	}
}
