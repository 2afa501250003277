package game

import "fmt"

// ParseBoard converts caller-supplied cells into a Board and validates it.
func ParseBoard(cells []PlayerMark) (Board, error) {
	var b Board
	if len(cells) != Size {
		return b, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, Size, len(cells))
	}
	for i, cell := range cells {
		if !cell.Valid() {
			return b, fmt.Errorf("%w: cell %d has unknown value %q", ErrInvalidBoard, i, cell)
		}
		b[i] = cell
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks the mark balance. X always moves first, so X may lead O
// by at most one mark and never trail it.
func (b Board) Validate() error {
	var xCount, oCount int
	for i, cell := range b {
		switch cell {
		case PlayerX:
			xCount++
		case PlayerO:
			oCount++
		case None:
		default:
			return fmt.Errorf("%w: cell %d has unknown value %q", ErrInvalidBoard, i, cell)
		}
	}
	if diff := xCount - oCount; diff < 0 || diff > 1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", ErrInvalidBoard, xCount, oCount)
	}
	return nil
}

// ValidatePosition checks that position addresses a cell.
func ValidatePosition(position int) error {
	if position < PositionMin || position > PositionMax {
		return fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidPosition, position, PositionMin, PositionMax)
	}
	return nil
}
