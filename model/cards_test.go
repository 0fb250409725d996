package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovesFor(t *testing.T) {
	want := map[Card][]Move{
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
	require.Len(t, want, NumCards)

	for _, c := range AllCards() {
		t.Run(c.String(), func(t *testing.T) {
			got := MovesFor(c)
			assert.NotEmpty(t, got)
			assert.Equal(t, want[c], got)
		})
	}
}

func TestMovesForReturnsCopy(t *testing.T) {
	got := MovesFor(Tiger)
	got[0] = Left

	assert.Equal(t, []Move{UpTwo, Down}, MovesFor(Tiger))
}

func TestDragonOffsets(t *testing.T) {
	var got []Offset
	for _, m := range MovesFor(Dragon) {
		got = append(got, m.Offset())
	}
	assert.Equal(t, []Offset{{-1, -2}, {-1, 2}, {1, -1}, {1, 1}}, got)
}

func TestMoveOffsets(t *testing.T) {
	tests := []struct {
		move Move
		want Offset
	}{
		{Left, Offset{0, -1}},
		{Right, Offset{0, 1}},
		{Up, Offset{-1, 0}},
		{Down, Offset{1, 0}},
		{UpLeft, Offset{-1, -1}},
		{UpRight, Offset{-1, 1}},
		{DownLeft, Offset{1, -1}},
		{DownRight, Offset{1, 1}},
		{LeftTwo, Offset{0, -2}},
		{RightTwo, Offset{0, 2}},
		{UpTwo, Offset{-2, 0}},
		{DragonLeft, Offset{-1, -2}},
		{DragonRight, Offset{-1, 2}},
	}
	require.Len(t, tests, NumMoves)
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.move.Offset(), tt.move.String())
	}
}

func TestOffsetMirror(t *testing.T) {
	assert.Equal(t, Offset{2, 0}, UpTwo.Offset().Mirror())
	assert.Equal(t, Offset{1, -2}, DragonLeft.Offset().Mirror())
	assert.Equal(t, Offset{0, 1}, Right.Offset().Mirror())
}

func TestCardTablesComplete(t *testing.T) {
	for i, name := range cardNames {
		assert.NotEmpty(t, name, "card %d has no name", i)
		assert.NotEmpty(t, moves[i], "card %d has no moves", i)
	}
	for i, name := range moveNames {
		assert.NotEmpty(t, name, "move %d has no name", i)
	}
}

func TestAllCards(t *testing.T) {
	cards := AllCards()
	require.Len(t, cards, 16)
	assert.Equal(t, Tiger, cards[0])
	assert.Equal(t, Cobra, cards[15])

	seen := make(map[Card]bool)
	for _, c := range cards {
		seen[c] = true
	}
	assert.Len(t, seen, 16)
}

func TestParseCard(t *testing.T) {
	for _, c := range AllCards() {
		got, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCard(" dragon ")
	require.NoError(t, err)
	assert.Equal(t, Dragon, got)

	_, err = ParseCard("Phoenix")
	assert.True(t, errors.Is(err, ErrUnknownCard))
}

func TestStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Card(16)", Card(16).String())
	assert.Equal(t, "Move(-1)", Move(-1).String())
	assert.False(t, Card(16).Valid())
	assert.True(t, Cobra.Valid())
}
