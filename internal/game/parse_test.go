package game

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTurn = `30 7 18 25
28 6 19 20
5 3
12 4 0 0 3 4 4 ------ 0 0 0
40 9 1 0 2 2 3 -C---W 0 0 0
71 15 -1 0 5 3 6 ---GL- 1 -2 1
`

func TestParseTurn(t *testing.T) {
	ts, err := ParseTurn(sampleTurn)
	require.NoError(t, err)

	assert.Equal(t, PlayerStatus{Health: 30, Mana: 7, DeckSize: 18, Runes: 25}, ts.Current)
	assert.Equal(t, PlayerStatus{Health: 28, Mana: 6, DeckSize: 19, Runes: 20}, ts.Opponent)
	assert.Equal(t, 5, ts.OpponentHandSize)
	require.Len(t, ts.Cards, 3)
	require.Len(t, ts.Hand, 1)
	require.Len(t, ts.Board, 1)
	require.Len(t, ts.OpponentBoard, 1)

	assert.Equal(t, Card{Number: 12, InstanceID: 4, Location: LocationHand, Cost: 3, Attack: 4, Defense: 4}, ts.Hand[0])
	assert.True(t, ts.Board[0].Abilities.Charge)
	assert.True(t, ts.Board[0].Abilities.Ward)

	opp := ts.OpponentBoard[0]
	assert.Equal(t, Abilities{Guard: true, Lethal: true}, opp.Abilities)
	assert.Equal(t, 1, opp.MyHealthChange)
	assert.Equal(t, -2, opp.OpponentHealthChange)
	assert.Equal(t, 1, opp.CardDraw)
}

func TestTurnReaderMultipleTurns(t *testing.T) {
	// Tokens on one line are as good as tokens on many.
	in := sampleTurn + strings.ReplaceAll(sampleTurn, "\n", " ")
	tr := NewTurnReader(strings.NewReader(in))

	for i := 0; i < 2; i++ {
		ts, err := tr.Next()
		require.NoError(t, err, "turn %d", i)
		assert.Len(t, ts.Cards, 3)
	}
	_, err := tr.Next()
	assert.Equal(t, io.EOF, err)
}

func TestParseTurnMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "empty snapshot"},
		{"short status", "30 7 18", "unexpected end of input"},
		{"not a number", "30 x 18 25", `"x" is not an integer`},
		{"negative count", "30 0 0 0 30 0 0 0 0 -1", "negative card count"},
		{"missing card", "30 0 0 0 30 0 0 0 0 1", "card 0"},
		{"bad type", "30 0 0 0 30 0 0 0 0 1 1 1 0 7 1 1 1 ------ 0 0 0", "unknown card type 7"},
		{"short abilities", "30 0 0 0 30 0 0 0 0 1 1 1 0 0 1 1 1 --- 0 0 0", "bad ability code"},
		{"truncated card", "30 0 0 0 30 0 0 0 0 1 1 1 0 0 1 1 1 ------ 0", "card effects"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTurn(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedInput), "error %v should wrap ErrMalformedInput", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
