package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAttacksEmptyOpponentBoard(t *testing.T) {
	board := []Card{boardCreature(t, 3, 3, 2, "------")}

	plans := ResolveAttacks(board, nil, NewSession())
	assert.Equal(t, []string{"ATTACK 3 -1"}, planStrings(plans))
}

func TestResolveAttacksOverkillFallsBackToGuard(t *testing.T) {
	board := []Card{boardCreature(t, 1, 5, 5, "------")}
	opp := []Card{enemy(t, 20, 1, 3, "---G--")}

	plans := ResolveAttacks(board, opp, NewSession())
	require.Len(t, plans, 1)
	assert.Equal(t, "ATTACK 1 20", plans[0].Action().String())
	assert.Equal(t, -2, plans[0].LifeLeft)
}

func TestResolveAttacksLethalSkipsWard(t *testing.T) {
	board := []Card{boardCreature(t, 1, 1, 1, "----L-")}
	opp := []Card{
		enemy(t, 20, 1, 2, "---G-W"),
		enemy(t, 21, 1, 6, "---G--"),
	}

	plans := ResolveAttacks(board, opp, NewSession())
	require.Len(t, plans, 1)
	assert.Equal(t, "ATTACK 1 21", plans[0].Action().String())
	assert.Zero(t, plans[0].LifeLeft)
}

func TestResolveAttacksLethalWeakestFirst(t *testing.T) {
	board := []Card{
		boardCreature(t, 1, 5, 1, "----L-"),
		boardCreature(t, 2, 1, 1, "----L-"),
		boardCreature(t, 3, 3, 1, "----L-"),
	}
	opp := []Card{
		enemy(t, 20, 1, 4, "---G--"),
		enemy(t, 21, 1, 9, "---G--"),
	}

	plans := ResolveAttacks(board, opp, NewSession())
	// Weakest lethal kills the biggest guard, next kills the other, the
	// strongest goes face.
	assert.Equal(t, []string{"ATTACK 2 21", "ATTACK 3 20", "ATTACK 1 -1"}, planStrings(plans))
}

func TestResolveAttacksLethalAllWardFallsBack(t *testing.T) {
	board := []Card{boardCreature(t, 1, 2, 1, "----L-")}
	opp := []Card{
		enemy(t, 20, 1, 1, "------"),
		enemy(t, 21, 1, 5, "---G-W"),
	}

	plans := ResolveAttacks(board, opp, NewSession())
	require.Len(t, plans, 1)
	assert.Equal(t, "ATTACK 1 21", plans[0].Action().String())
	assert.Equal(t, 3, plans[0].LifeLeft, "default target takes attack damage, not a kill")
}

func TestResolveAttacksTradeAvoidsOverkill(t *testing.T) {
	board := []Card{
		boardCreature(t, 1, 3, 1, "------"),
		boardCreature(t, 2, 3, 1, "------"),
		boardCreature(t, 3, 2, 1, "------"),
		boardCreature(t, 4, 5, 1, "------"),
		boardCreature(t, 5, 1, 1, "------"),
		boardCreature(t, 6, 2, 1, "------"),
	}
	opp := []Card{
		enemy(t, 20, 1, 4, "---G--"),
		enemy(t, 21, 1, 6, "---G--"),
	}

	plans := ResolveAttacks(board, opp, NewSession())
	assert.Equal(t, []string{
		"ATTACK 1 21", // 21: 6 → 3
		"ATTACK 2 20", // 20: 4 → 1
		"ATTACK 3 21", // 21: 3 → 1
		"ATTACK 4 20", // nothing absorbs 5, first live guard: 20: 1 → -4
		"ATTACK 5 21", // 21: 1 → 0
		"ATTACK 6 -1", // no guard left
	}, planStrings(plans))
	assert.Equal(t, []int{3, 1, 1, -4, 0, 0}, []int{
		plans[0].LifeLeft, plans[1].LifeLeft, plans[2].LifeLeft,
		plans[3].LifeLeft, plans[4].LifeLeft, plans[5].LifeLeft,
	})
}

func TestResolveAttacksTradeTieGoesToBoardOrder(t *testing.T) {
	board := []Card{boardCreature(t, 1, 2, 1, "------")}
	opp := []Card{
		enemy(t, 20, 1, 3, "---G--"),
		enemy(t, 21, 1, 3, "---G--"),
	}

	plans := ResolveAttacks(board, opp, NewSession())
	assert.Equal(t, []string{"ATTACK 1 20"}, planStrings(plans))
}

func TestResolveAttacksIgnoresNonGuards(t *testing.T) {
	board := []Card{boardCreature(t, 1, 4, 1, "------")}
	opp := []Card{
		enemy(t, 20, 9, 9, "----LW"),
		enemy(t, 21, 1, 0, "---G--"), // dead on arrival
	}

	plans := ResolveAttacks(board, opp, NewSession())
	assert.Equal(t, []string{"ATTACK 1 -1"}, planStrings(plans))
}

func TestResolveAttacksSkipsSickAndPowerless(t *testing.T) {
	s := NewSession()
	s.MarkSick(2)
	board := []Card{
		boardCreature(t, 1, 0, 5, "------"),
		boardCreature(t, 2, 4, 4, "------"),
		boardCreature(t, 3, 1, 1, "------"),
		{InstanceID: 4, Location: LocationOwnBoard, Type: CardTypeGreenItem, Attack: 3},
	}

	plans := ResolveAttacks(board, nil, s)
	assert.Equal(t, []string{"ATTACK 3 -1"}, planStrings(plans))
}

func TestResolveAttacksNoFaceWhileGuardLives(t *testing.T) {
	board := []Card{
		boardCreature(t, 1, 1, 1, "------"),
		boardCreature(t, 2, 1, 1, "------"),
		boardCreature(t, 3, 1, 1, "------"),
	}
	opp := []Card{enemy(t, 20, 1, 10, "---G-W")}

	plans := ResolveAttacks(board, opp, NewSession())
	for _, p := range plans {
		require.NotNil(t, p.Target, "guard still has life, face is not reachable")
		assert.Equal(t, 20, p.Target.InstanceID)
	}
}

func TestResolveAttacksDeterministic(t *testing.T) {
	board := []Card{
		boardCreature(t, 1, 3, 1, "----L-"),
		boardCreature(t, 2, 2, 1, "------"),
		boardCreature(t, 3, 7, 1, "------"),
		boardCreature(t, 4, 1, 1, "------"),
	}
	opp := []Card{
		enemy(t, 20, 1, 2, "---G--"),
		enemy(t, 21, 1, 2, "---G--"),
		enemy(t, 22, 1, 5, "---G-W"),
		enemy(t, 23, 1, 2, "---G--"),
	}

	s := NewSession()
	first := planStrings(ResolveAttacks(board, opp, s))
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, planStrings(ResolveAttacks(board, opp, s)))
	}
	assert.Equal(t, 5, opp[2].Defense, "opponent board is not mutated")
}

func TestGuards(t *testing.T) {
	opp := []Card{
		enemy(t, 20, 1, 2, "---G--"),
		enemy(t, 21, 1, 2, "------"),
		enemy(t, 22, 1, 5, "---G-W"),
	}
	guards := Guards(opp)
	require.Len(t, guards, 2)
	assert.Equal(t, 20, guards[0].InstanceID)
	assert.Equal(t, 22, guards[1].InstanceID)
	assert.Empty(t, Guards(nil))
}
