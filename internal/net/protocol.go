package net

import (
	"github.com/peterkuimelis/locm/internal/game"
	"github.com/peterkuimelis/locm/internal/log"
)

// JSON views shared by the web and MCP front ends.

// TurnResult is the decision for one submitted turn snapshot.
type TurnResult struct {
	Turn    int          `json:"turn"`
	Phase   string       `json:"phase"`
	Line    string       `json:"line"` // the command line as the host expects it
	Actions []ActionView `json:"actions"`
	Events  []EventView  `json:"events,omitempty"`
}

// ActionView is a single command.
type ActionView struct {
	Type   string `json:"type"`
	Index  *int   `json:"index,omitempty"`
	Card   *int   `json:"card,omitempty"`
	Target *int   `json:"target,omitempty"` // -1 for the opponent's face
}

// EventView is a simplified game event for the client.
type EventView struct {
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Level   string `json:"level"`
	Type    string `json:"type"`
	Card    int    `json:"card,omitempty"`
	Details string `json:"details"`
}

// CardView describes one card instance.
type CardView struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Cost      int    `json:"cost"`
	Attack    int    `json:"attack"`
	Defense   int    `json:"defense"`
	Abilities string `json:"abilities"`
}

// ScoreView is the draft score of one offered card.
type ScoreView struct {
	Index int      `json:"index"`
	Card  CardView `json:"card"`
	Score float64  `json:"score"`
}

// ScoreResult is the draft evaluation of a snapshot's hand.
type ScoreResult struct {
	Scores []ScoreView `json:"scores"`
	Pick   int         `json:"pick"` // -1 when the engine would pass
	Line   string      `json:"line"`
}

// SessionView shows the state an engine carries between turns.
type SessionView struct {
	Turn  int        `json:"turn"`
	Phase string     `json:"phase"`
	Deck  []CardView `json:"deck"`
	Sick  []int      `json:"sick"`
}

// BuildCardView converts a card.
func BuildCardView(c game.Card) CardView {
	return CardView{
		ID:        c.InstanceID,
		Type:      c.Type.String(),
		Cost:      c.Cost,
		Attack:    c.Attack,
		Defense:   c.Defense,
		Abilities: c.Abilities.String(),
	}
}

// BuildActionViews converts a turn's commands.
func BuildActionViews(actions []game.Action) []ActionView {
	views := make([]ActionView, 0, len(actions))
	for _, a := range actions {
		v := ActionView{Type: a.Type.String()}
		switch a.Type {
		case game.ActionPick:
			v.Index = intPtr(a.Index)
		case game.ActionSummon:
			v.Card = intPtr(a.Card)
		case game.ActionAttack:
			v.Card = intPtr(a.Card)
			v.Target = intPtr(a.Target)
		}
		views = append(views, v)
	}
	return views
}

// BuildEventViews converts logged events.
func BuildEventViews(events []log.GameEvent) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			Turn:    e.Turn,
			Phase:   e.Phase,
			Level:   e.Level.String(),
			Type:    e.Type.String(),
			Card:    e.CardID,
			Details: e.Details,
		})
	}
	return views
}

// BuildSessionView converts an engine snapshot.
func BuildSessionView(s game.SessionSnapshot) SessionView {
	sv := SessionView{
		Turn:  s.Turn,
		Phase: s.Phase,
		Deck:  make([]CardView, 0, len(s.Deck)),
		Sick:  s.Sick,
	}
	for _, c := range s.Deck {
		sv.Deck = append(sv.Deck, BuildCardView(c))
	}
	return sv
}

// ScoreHand runs the draft evaluator over a snapshot's hand without
// touching any session.
func ScoreHand(ts *game.TurnState, bonus float64) ScoreResult {
	choice := game.ChooseDraft(ts.Hand, bonus)
	res := ScoreResult{
		Scores: make([]ScoreView, 0, len(ts.Hand)),
		Pick:   choice.Index,
		Line:   game.FormatActions([]game.Action{choice.Action()}),
	}
	for i, c := range ts.Hand {
		res.Scores = append(res.Scores, ScoreView{Index: i, Card: BuildCardView(c), Score: choice.Scores[i]})
	}
	return res
}

// PlaySnapshot runs one turn on eng and reports the events it produced.
func PlaySnapshot(eng *game.Engine, ts *game.TurnState) TurnResult {
	before := len(eng.Logger.Events())
	actions := eng.PlayTurn(ts)
	events := eng.Logger.Events()[before:]
	return TurnResult{
		Turn:    eng.Turn(),
		Phase:   eng.Phase().String(),
		Line:    game.FormatActions(actions),
		Actions: BuildActionViews(actions),
		Events:  BuildEventViews(events),
	}
}

func intPtr(n int) *int {
	return &n
}
