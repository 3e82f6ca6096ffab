package game

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// creature builds a creature card. abilities is a 6-character code.
func creature(t *testing.T, id, cost, atk, def int, abilities string, loc Location) Card {
	t.Helper()
	ab, err := ParseAbilities(abilities)
	require.NoError(t, err)
	return Card{
		Number:     id,
		InstanceID: id,
		Location:   loc,
		Type:       CardTypeCreature,
		Cost:       cost,
		Attack:     atk,
		Defense:    def,
		Abilities:  ab,
	}
}

func handCreature(t *testing.T, id, cost, atk, def int, abilities string) Card {
	return creature(t, id, cost, atk, def, abilities, LocationHand)
}

func boardCreature(t *testing.T, id, atk, def int, abilities string) Card {
	return creature(t, id, 1, atk, def, abilities, LocationOwnBoard)
}

func enemy(t *testing.T, id, atk, def int, abilities string) Card {
	return creature(t, id, 1, atk, def, abilities, LocationOpponentBoard)
}

func item(id, cost int, typ CardType) Card {
	return Card{Number: id, InstanceID: id, Location: LocationHand, Type: typ, Cost: cost}
}

// snapshot renders a turn in the host's input format.
func snapshot(mana int, cards ...Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "30 %d 20 25\n30 %d 20 25\n4 %d\n", mana, mana, len(cards))
	for _, c := range cards {
		fmt.Fprintf(&b, "%d %d %d %d %d %d %d %s %d %d %d\n",
			c.Number, c.InstanceID, int(c.Location), int(c.Type), c.Cost, c.Attack, c.Defense,
			c.Abilities, c.MyHealthChange, c.OpponentHealthChange, c.CardDraw)
	}
	return b.String()
}

func actionStrings(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}
	return out
}

func planStrings(plans []AttackPlan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.Action().String()
	}
	return out
}
