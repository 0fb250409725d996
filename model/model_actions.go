package model

// masterCol is the column both masters start on.
const masterCol = Size / 2

// StartingBoard lays out both sides on their home rows. Every call returns
// fresh pawns, so the result shares nothing with other boards.
func StartingBoard() Board {
	var b Board
	for _, color := range []Color{Blue, Red} {
		row := color.HomeRow()
		for c := 0; c < Size; c++ {
			p := &Pawn{Color: color, Type: Student}
			if c == masterCol {
				p.Type = Master
			}
			b[row][c].Pawn = p
		}
	}
	return b
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the square at row, col and whether it is on the board.
func (b *Board) At(row, col int) (Square, bool) {
	if !InBounds(row, col) {
		return Square{}, false
	}
	return b[row][col], true
}

// Clone copies the board, pawns included.
func (b *Board) Clone() Board {
	var out Board
	for r := range b {
		for c, sq := range b[r] {
			if sq.Pawn != nil {
				p := *sq.Pawn
				out[r][c].Pawn = &p
			}
		}
	}
	return out
}

// Count reports how many masters and students of the given color are on the board.
func (b *Board) Count(color Color) (masters, students int) {
	for r := range b {
		for _, sq := range b[r] {
			if sq.Pawn == nil || sq.Pawn.Color != color {
				continue
			}
			if sq.Pawn.Type == Master {
				masters++
			} else {
				students++
			}
		}
	}
	return
}
