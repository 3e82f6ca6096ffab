package game

import "math"

// DefaultAbilityBonus is added to a creature's score for each of lethal,
// guard and ward.
const DefaultAbilityBonus = 0.5

// minDraftScore is the score a creature must strictly beat to be picked.
// Items score 0 and so never qualify.
const minDraftScore = math.SmallestNonzeroFloat64

// DraftScore rates a card for the draft: (attack + defense) per mana for
// creatures, plus bonus for each of lethal, guard and ward. Items score 0.
func DraftScore(c Card, bonus float64) float64 {
	if !c.IsCreature() {
		return 0
	}
	score := float64(c.Attack+c.Defense) / float64(max(c.Cost, 1))
	if c.Abilities.Lethal {
		score += bonus
	}
	if c.Abilities.Guard {
		score += bonus
	}
	if c.Abilities.Ward {
		score += bonus
	}
	return score
}

// DraftChoice is the outcome of evaluating one set of offered cards.
type DraftChoice struct {
	Index  int       // offered index of the pick, or -1 when nothing qualifies
	Score  float64   // score of the pick
	Scores []float64 // score of every offered card, in offered order
}

// Picked reports whether a creature was chosen.
func (d DraftChoice) Picked() bool {
	return d.Index >= 0
}

// Action returns the PICK or PASS command for this choice.
func (d DraftChoice) Action() Action {
	if !d.Picked() {
		return Pass()
	}
	return Pick(d.Index)
}

// ChooseDraft scores the offered cards and keeps the first one whose score
// strictly exceeds every earlier score, so ties go to the earliest offer.
func ChooseDraft(offered []Card, bonus float64) DraftChoice {
	choice := DraftChoice{Index: -1, Score: minDraftScore, Scores: make([]float64, len(offered))}
	for i, c := range offered {
		score := DraftScore(c, bonus)
		choice.Scores[i] = score
		if c.IsCreature() && score > choice.Score {
			choice.Index = i
			choice.Score = score
		}
	}
	if !choice.Picked() {
		choice.Score = 0
	}
	return choice
}
