package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformedBoard = errors.New("malformed board")

const emptyCode = "[]"

// Code is the two-letter cell code used in the text layout: color initial
// followed by M for a master or s for a student.
func (p Pawn) Code() string {
	color := "b"
	if p.Color == Red {
		color = "r"
	}
	kind := "s"
	if p.Type == Master {
		kind = "M"
	}
	return color + kind
}

func (s Square) Code() string {
	if s.Pawn == nil {
		return emptyCode
	}
	return s.Pawn.Code()
}

func parseCode(code string) (Square, error) {
	switch code {
	case emptyCode:
		return Square{}, nil
	case "bM":
		return Square{Pawn: &Pawn{Color: Blue, Type: Master}}, nil
	case "bs":
		return Square{Pawn: &Pawn{Color: Blue, Type: Student}}, nil
	case "rM":
		return Square{Pawn: &Pawn{Color: Red, Type: Master}}, nil
	case "rs":
		return Square{Pawn: &Pawn{Color: Red, Type: Student}}, nil
	}
	return Square{}, fmt.Errorf("%w: cell %q", ErrMalformedBoard, code)
}

// Rows returns the cell codes row by row.
func (b *Board) Rows() [][]string {
	rows := make([][]string, Size)
	for r := range b {
		rows[r] = make([]string, Size)
		for c, sq := range b[r] {
			rows[r][c] = sq.Code()
		}
	}
	return rows
}

// String renders one line per row, each cell prefixed by a space.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b.Rows() {
		for _, code := range row {
			sb.WriteString(" ")
			sb.WriteString(code)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ParseBoard reads the layout written by Board.String. Blank lines are skipped.
func ParseBoard(reader io.Reader) (Board, error) {
	var b Board
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	row := 0
	for scanner.Scan() {
		cells := strings.Fields(scanner.Text())
		if len(cells) == 0 {
			continue
		}
		if row == Size {
			return Board{}, fmt.Errorf("%w: more than %d rows", ErrMalformedBoard, Size)
		}
		if len(cells) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrMalformedBoard, row, len(cells))
		}
		for c, code := range cells {
			sq, err := parseCode(code)
			if err != nil {
				return Board{}, fmt.Errorf("row %d col %d: %w", row, c, err)
			}
			b[row][c] = sq
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Board{}, err
	}
	if row != Size {
		return Board{}, fmt.Errorf("%w: %d rows", ErrMalformedBoard, row)
	}
	return b, nil
}
