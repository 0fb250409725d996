package model

// Size is the width and height of the board.
const Size = 5

type Color int

const (
	Blue Color = iota
	Red
)

func (c Color) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	default:
		return "n/a"
	}
}

// HomeRow is the row a side starts on.
func (c Color) HomeRow() int {
	if c == Red {
		return Size - 1
	}
	return 0
}

type PawnType int

const (
	Master PawnType = iota
	Student
)

func (t PawnType) String() string {
	switch t {
	case Master:
		return "Master"
	case Student:
		return "Student"
	default:
		return "n/a"
	}
}

type Pawn struct {
	Color Color
	Type  PawnType
}

// Square is a board cell. A nil Pawn means the square is empty.
type Square struct {
	Pawn *Pawn
}

func (s Square) Empty() bool {
	return s.Pawn == nil
}

// Board is indexed [row][col]; row 0 is Blue's home row.
type Board [Size][Size]Square
