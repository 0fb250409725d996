package model

// MoveInfo is a move with its numeric displacement.
type MoveInfo struct {
	Name   string `json:"name"`
	Offset Offset `json:"offset"`
}

// CardInfo is a card with its moves, as sent to clients.
type CardInfo struct {
	Name  string     `json:"name"`
	Moves []MoveInfo `json:"moves"`
}

// Setup is everything a client needs to start a match.
type Setup struct {
	Seed  int64      `json:"seed"`
	Hand  []CardInfo `json:"hand"`
	Blue  []string   `json:"blue"`
	Red   []string   `json:"red"`
	Side  string     `json:"side"`
	Board [][]string `json:"board"`
}

func NewCardInfo(c Card) CardInfo {
	ms := MovesFor(c)
	info := CardInfo{Name: c.String(), Moves: make([]MoveInfo, 0, len(ms))}
	for _, m := range ms {
		info.Moves = append(info.Moves, MoveInfo{Name: m.String(), Offset: m.Offset()})
	}
	return info
}

func NewSetup(seed int64, hand Hand, board Board) Setup {
	s := Setup{
		Seed:  seed,
		Hand:  make([]CardInfo, 0, HandSize),
		Side:  hand.Side().String(),
		Board: board.Rows(),
	}
	for _, c := range hand {
		s.Hand = append(s.Hand, NewCardInfo(c))
	}
	for _, c := range hand.Blue() {
		s.Blue = append(s.Blue, c.String())
	}
	for _, c := range hand.Red() {
		s.Red = append(s.Red, c.String())
	}
	return s
}
