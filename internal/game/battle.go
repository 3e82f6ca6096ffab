package game

import "sort"

// guardLives tracks the remaining life of the opponent's guard creatures
// during one turn's attack resolution. Entries are keyed by instance id and
// iterated in opponent-board order.
type guardLives struct {
	order []int
	life  map[int]int
	cards map[int]Card
}

func newGuardLives(opponentBoard []Card) *guardLives {
	g := &guardLives{
		life:  make(map[int]int),
		cards: make(map[int]Card),
	}
	for _, c := range opponentBoard {
		if !c.IsCreature() || !c.Abilities.Guard {
			continue
		}
		if _, dup := g.life[c.InstanceID]; dup {
			continue
		}
		g.order = append(g.order, c.InstanceID)
		g.life[c.InstanceID] = c.Defense
		g.cards[c.InstanceID] = c
	}
	return g
}

func (g *guardLives) empty() bool {
	return len(g.order) == 0
}

// lethalTarget returns the live non-ward guard with the most remaining life.
func (g *guardLives) lethalTarget() (int, bool) {
	best, found := 0, false
	for _, id := range g.order {
		life := g.life[id]
		if life <= 0 || g.cards[id].Abilities.Ward {
			continue
		}
		if !found || life > g.life[best] {
			best, found = id, true
		}
	}
	return best, found
}

// tradeTarget returns the live guard with the most remaining life that
// can absorb attack without overkill.
func (g *guardLives) tradeTarget(attack int) (int, bool) {
	best, found := 0, false
	for _, id := range g.order {
		life := g.life[id]
		if life <= 0 || life < attack {
			continue
		}
		if !found || life > g.life[best] {
			best, found = id, true
		}
	}
	return best, found
}

// defaultTarget returns the first live guard, in board order.
func (g *guardLives) defaultTarget() (int, bool) {
	for _, id := range g.order {
		if g.life[id] > 0 {
			return id, true
		}
	}
	return 0, false
}

// AttackPlan is one attacker's assignment.
type AttackPlan struct {
	Attacker Card
	Target   *Card // nil for a face attack
	LifeLeft int   // target's remaining life after this attack
}

// Action returns the ATTACK command for the plan.
func (p AttackPlan) Action() Action {
	if p.Target == nil {
		return AttackFace(p.Attacker.InstanceID)
	}
	return Attack(p.Attacker.InstanceID, p.Target.InstanceID)
}

// Guards returns the opponent's guard creatures in board order.
func Guards(opponentBoard []Card) []Card {
	g := newGuardLives(opponentBoard)
	out := make([]Card, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.cards[id])
	}
	return out
}

// ResolveAttacks assigns every creature in attackers that is not sick to a
// guard or to the opponent's face.
//
// Lethal attackers go first, weakest first, each killing the live non-ward
// guard with the most life. The others, in board order and only if they
// have attack, hit the guard with the most life that they do not overkill.
// An attacker with no such guard falls back to the first live guard, and
// to the face once no guard is alive.
func ResolveAttacks(attackers, opponentBoard []Card, s *Session) []AttackPlan {
	var ready []Card
	for _, c := range attackers {
		if c.IsCreature() && !s.IsSick(c.InstanceID) {
			ready = append(ready, c)
		}
	}

	guards := newGuardLives(opponentBoard)
	var plans []AttackPlan

	assign := func(attacker Card, id int, found bool) {
		if !found {
			plans = append(plans, AttackPlan{Attacker: attacker})
			return
		}
		target := guards.cards[id]
		plans = append(plans, AttackPlan{Attacker: attacker, Target: &target, LifeLeft: guards.life[id]})
	}
	fallback := func(attacker Card) {
		id, found := guards.defaultTarget()
		if found {
			guards.life[id] -= attacker.Attack
		}
		assign(attacker, id, found)
	}

	var lethal, others []Card
	for _, c := range ready {
		if c.Abilities.Lethal {
			lethal = append(lethal, c)
		} else {
			others = append(others, c)
		}
	}
	sort.SliceStable(lethal, func(i, j int) bool {
		return lethal[i].Attack < lethal[j].Attack
	})

	for _, c := range lethal {
		if guards.empty() {
			assign(c, 0, false)
			continue
		}
		if id, ok := guards.lethalTarget(); ok {
			guards.life[id] = 0
			assign(c, id, true)
			continue
		}
		fallback(c)
	}

	for _, c := range others {
		if c.Attack <= 0 {
			continue
		}
		if guards.empty() {
			assign(c, 0, false)
			continue
		}
		if id, ok := guards.tradeTarget(c.Attack); ok {
			guards.life[id] -= c.Attack
			assign(c, id, true)
			continue
		}
		fallback(c)
	}

	return plans
}
