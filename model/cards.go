package model

import (
	"errors"
	"fmt"
	"strings"
)

type Card int

const (
	Tiger Card = iota
	Crab
	Monkey
	Crane
	Dragon
	Elephant
	Mantis
	Boar
	Frog
	Goose
	Horse
	Eel
	Rabbit
	Rooster
	Ox
	Cobra

	NumCards int = iota
)

type Move int

const (
	Left Move = iota
	Up
	Right
	Down

	UpLeft
	UpRight
	DownLeft
	DownRight

	DragonLeft
	DragonRight

	LeftTwo
	UpTwo
	RightTwo

	NumMoves int = iota
)

var ErrUnknownCard = errors.New("unknown card")

// Offset is a board displacement. Positive Row points toward Red's home row,
// positive Col to the right, both seen from Blue's side of the table.
type Offset struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Mirror returns the offset as seen from Red's side. The catalog never
// mirrors; whoever applies a Red move does.
func (o Offset) Mirror() Offset {
	return Offset{Row: -o.Row, Col: o.Col}
}

var cardNames = [NumCards]string{
	Tiger:    "Tiger",
	Crab:     "Crab",
	Monkey:   "Monkey",
	Crane:    "Crane",
	Dragon:   "Dragon",
	Elephant: "Elephant",
	Mantis:   "Mantis",
	Boar:     "Boar",
	Frog:     "Frog",
	Goose:    "Goose",
	Horse:    "Horse",
	Eel:      "Eel",
	Rabbit:   "Rabbit",
	Rooster:  "Rooster",
	Ox:       "Ox",
	Cobra:    "Cobra",
}

var moveNames = [NumMoves]string{
	Left:        "Left",
	Up:          "Up",
	Right:       "Right",
	Down:        "Down",
	UpLeft:      "UpLeft",
	UpRight:     "UpRight",
	DownLeft:    "DownLeft",
	DownRight:   "DownRight",
	DragonLeft:  "DragonLeft",
	DragonRight: "DragonRight",
	LeftTwo:     "LeftTwo",
	UpTwo:       "UpTwo",
	RightTwo:    "RightTwo",
}

var offsets = [NumMoves]Offset{
	Left:        {0, -1},
	Up:          {-1, 0},
	Right:       {0, 1},
	Down:        {1, 0},
	UpLeft:      {-1, -1},
	UpRight:     {-1, 1},
	DownLeft:    {1, -1},
	DownRight:   {1, 1},
	DragonLeft:  {-1, -2},
	DragonRight: {-1, 2},
	LeftTwo:     {0, -2},
	UpTwo:       {-2, 0},
	RightTwo:    {0, 2},
}

// moves is indexed by Card; the array length keeps it in step with the
// enumeration.
var moves = [NumCards][]Move{
	Tiger:    {UpTwo, Down},
	Crab:     {Up, LeftTwo, RightTwo},
	Monkey:   {UpLeft, UpRight, DownLeft, DownRight},
	Crane:    {Up, DownLeft, DownRight},
	Dragon:   {DragonLeft, DragonRight, DownLeft, DownRight},
	Elephant: {UpLeft, UpRight, Left, Right},
	Mantis:   {UpLeft, UpRight, Down},
	Boar:     {Up, Left, Right},
	Frog:     {UpLeft, LeftTwo, DownRight},
	Goose:    {UpLeft, Left, Right, DownRight},
	Horse:    {Up, Left, Down},
	Eel:      {UpLeft, Right, DownLeft},
	Rabbit:   {UpRight, RightTwo, DownLeft},
	Rooster:  {UpRight, Left, Right, DownLeft},
	Ox:       {Up, Right, Down},
	Cobra:    {UpRight, Left, DownRight},
}

func (c Card) Valid() bool {
	return c >= 0 && int(c) < NumCards
}

func (c Card) String() string {
	if c.Valid() {
		return cardNames[c]
	}
	return fmt.Sprintf("Card(%d)", int(c))
}

func (m Move) Valid() bool {
	return m >= 0 && int(m) < NumMoves
}

func (m Move) String() string {
	if m.Valid() {
		return moveNames[m]
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Offset returns the move's displacement from Blue's perspective.
func (m Move) Offset() Offset {
	return offsets[m]
}

// MovesFor returns the card's moves in printed order. The slice is a copy.
func MovesFor(c Card) []Move {
	out := make([]Move, len(moves[c]))
	copy(out, moves[c])
	return out
}

// AllCards returns the 16 cards in box order.
func AllCards() []Card {
	cards := make([]Card, NumCards)
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}

// ParseCard looks a card up by name, ignoring case.
func ParseCard(name string) (Card, error) {
	for i, n := range cardNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Card(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCard, name)
}
