package game

import "sort"

// PlanSummons commits hand creatures to the board, most expensive first,
// while their cost fits in the remaining mana. Creatures without charge are
// marked sick in the session. Items are never summoned here.
//
// It returns the summoned creatures in summon order and the mana spent.
func PlanSummons(hand []Card, mana int, s *Session) ([]Card, int) {
	byCost := make([]Card, len(hand))
	copy(byCost, hand)
	sort.SliceStable(byCost, func(i, j int) bool {
		return byCost[i].Cost > byCost[j].Cost
	})

	var summoned []Card
	spent := 0
	for _, c := range byCost {
		if !c.IsCreature() || c.Cost > mana-spent {
			continue
		}
		spent += c.Cost
		if !c.Abilities.Charge {
			s.MarkSick(c.InstanceID)
		}
		summoned = append(summoned, c)
	}
	return summoned, spent
}
