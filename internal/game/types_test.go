package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAbilities(t *testing.T) {
	tests := []struct {
		code string
		want Abilities
	}{
		{"------", Abilities{}},
		{"BCDGLW", Abilities{Breakthrough: true, Charge: true, Drain: true, Guard: true, Lethal: true, Ward: true}},
		{"---G--", Abilities{Guard: true}},
		{"-C--L-", Abilities{Charge: true, Lethal: true}},
		// Any non-dash character counts, regardless of letter.
		{"x----?", Abilities{Breakthrough: true, Ward: true}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseAbilities(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAbilitiesWrongLength(t *testing.T) {
	for _, code := range []string{"", "-----", "-------"} {
		_, err := ParseAbilities(code)
		require.Error(t, err, code)
		assert.True(t, errors.Is(err, ErrBadAbilities))
		assert.True(t, errors.Is(err, ErrMalformedInput))
	}
}

func TestAbilitiesString(t *testing.T) {
	ab, err := ParseAbilities("x--G-W")
	require.NoError(t, err)
	assert.Equal(t, "B--G-W", ab.String())
	assert.Equal(t, "------", Abilities{}.String())
}

func TestCardString(t *testing.T) {
	plain := Card{InstanceID: 5, Cost: 3, Attack: 4, Defense: 4}
	assert.Equal(t, "[type0, id5, M3, A4, D4]", plain.String())

	fancy := Card{InstanceID: 7, Type: CardTypeGreenItem, Cost: 2, Abilities: Abilities{Guard: true}, MyHealthChange: 2, CardDraw: 1}
	assert.Equal(t, "[type1, id7, M2, A0, D0](---G--MH2D1)", fancy.String())

	drainOnly := Card{InstanceID: 8, OpponentHealthChange: -3}
	assert.Equal(t, "[type0, id8, M0, A0, D0](OH-3)", drainOnly.String())
}

func TestFormatActions(t *testing.T) {
	assert.Equal(t, "PASS", FormatActions(nil))
	assert.Equal(t, "PICK 2", FormatActions([]Action{Pick(2)}))
	assert.Equal(t, "SUMMON 4;ATTACK 4 -1;ATTACK 9 12",
		FormatActions([]Action{Summon(4), AttackFace(4), Attack(9, 12)}))
	assert.True(t, AttackFace(3).IsFaceAttack())
	assert.False(t, Attack(3, 5).IsFaceAttack())
}

func TestNewTurnStatePartitions(t *testing.T) {
	cards := []Card{
		enemy(t, 1, 1, 1, "------"),
		handCreature(t, 2, 1, 1, 1, "------"),
		boardCreature(t, 3, 1, 1, "------"),
		{InstanceID: 4, Location: 2},
		handCreature(t, 5, 1, 1, 1, "------"),
	}
	ts := NewTurnState(PlayerStatus{}, PlayerStatus{}, 0, cards)

	assert.Len(t, ts.OpponentBoard, 1)
	assert.Len(t, ts.Hand, 2)
	assert.Len(t, ts.Board, 2, "any positive location is the own board")
	assert.Equal(t, len(cards), len(ts.Hand)+len(ts.Board)+len(ts.OpponentBoard))
	assert.Equal(t, 2, ts.Hand[0].InstanceID)
	assert.Equal(t, 5, ts.Hand[1].InstanceID)
}
