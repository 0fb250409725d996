package model

// HandSize is how many cards a match is played with.
const HandSize = 5

// Rand is the randomness a deal draws from. *rand.Rand satisfies it.
// Implementations need not be safe for concurrent use; don't share one
// between goroutines that deal at the same time.
type Rand interface {
	Intn(n int) int
}

// Hand holds the dealt cards: two for Blue, two for Red and the side card.
type Hand [HandSize]Card

// DealHand draws HandSize distinct cards, each subset of the deck being
// equally likely. It runs a partial Fisher-Yates shuffle over the deck.
func DealHand(r Rand) Hand {
	deck := AllCards()
	var h Hand
	for i := range h {
		j := i + r.Intn(len(deck)-i)
		deck[i], deck[j] = deck[j], deck[i]
		h[i] = deck[i]
	}
	return h
}

func (h Hand) Cards() []Card {
	return append([]Card(nil), h[:]...)
}

func (h Hand) Blue() [2]Card {
	return [2]Card{h[0], h[1]}
}

func (h Hand) Red() [2]Card {
	return [2]Card{h[2], h[3]}
}

// Side is the card set aside at the start and passed on during play.
func (h Hand) Side() Card {
	return h[4]
}

func (h Hand) Contains(c Card) bool {
	for _, hc := range h {
		if hc == c {
			return true
		}
	}
	return false
}
