package game

import "sort"

// Session is the state carried across turns of one game: the drafted deck
// and the ids of creatures that cannot attack this turn.
type Session struct {
	deck []Card
	sick map[int]struct{}
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{sick: make(map[int]struct{})}
}

// AddToDeck records a drafted card.
func (s *Session) AddToDeck(c Card) {
	s.deck = append(s.deck, c)
}

// Deck returns a copy of the cards still believed to be in the deck.
func (s *Session) Deck() []Card {
	out := make([]Card, len(s.deck))
	copy(out, s.deck)
	return out
}

// PruneDrawn removes deck cards whose instance id appears in hand and
// returns how many were removed.
func (s *Session) PruneDrawn(hand []Card) int {
	inHand := make(map[int]struct{}, len(hand))
	for _, c := range hand {
		inHand[c.InstanceID] = struct{}{}
	}
	kept := s.deck[:0]
	for _, c := range s.deck {
		if _, ok := inHand[c.InstanceID]; !ok {
			kept = append(kept, c)
		}
	}
	removed := len(s.deck) - len(kept)
	s.deck = kept
	return removed
}

// ResetSickness clears the summoning sickness set at the start of a turn.
func (s *Session) ResetSickness() {
	clear(s.sick)
}

// MarkSick records that the creature cannot attack this turn.
func (s *Session) MarkSick(id int) {
	s.sick[id] = struct{}{}
}

// IsSick reports whether the creature was summoned this turn without charge.
func (s *Session) IsSick(id int) bool {
	_, ok := s.sick[id]
	return ok
}

// SickIDs returns the sick instance ids in ascending order.
func (s *Session) SickIDs() []int {
	ids := make([]int, 0, len(s.sick))
	for id := range s.sick {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
