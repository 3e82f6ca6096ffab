package game

import (
	"fmt"

	"github.com/peterkuimelis/locm/internal/log"
)

// DefaultDraftTurns is the number of draft turns before combat begins.
const DefaultDraftTurns = 30

type Phase int

const (
	PhaseDraft Phase = iota
	PhaseBattle
)

func (p Phase) String() string {
	if p == PhaseDraft {
		return "Draft"
	}
	return "Battle"
}

// EngineConfig holds configuration for creating a new engine.
type EngineConfig struct {
	DraftTurns   int     // turns spent drafting before combat (0 = start in combat)
	AbilityBonus float64 // draft score bonus per lethal/guard/ward
	Logger       log.EventLogger
}

// DefaultEngineConfig returns the standard draft length and bonus.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		DraftTurns:   DefaultDraftTurns,
		AbilityBonus: DefaultAbilityBonus,
	}
}

// Engine makes the decisions for one game. It is not safe for concurrent
// use; each game owns its engine.
type Engine struct {
	phase      Phase
	turn       int
	draftTurns int
	bonus      float64
	session    *Session
	Logger     log.EventLogger
}

// NewEngine creates an engine at the start of a game.
func NewEngine(cfg EngineConfig) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	phase := PhaseDraft
	if cfg.DraftTurns <= 0 {
		phase = PhaseBattle
	}
	return &Engine{
		phase:      phase,
		draftTurns: cfg.DraftTurns,
		bonus:      cfg.AbilityBonus,
		session:    NewSession(),
		Logger:     logger,
	}
}

// Phase returns the phase the next turn will be played in.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Turn returns the number of turns played so far.
func (e *Engine) Turn() int {
	return e.turn
}

func (e *Engine) log(event log.GameEvent) {
	e.Logger.Log(event)
}

// PlayTurn decides the commands for one turn. The result is never empty.
func (e *Engine) PlayTurn(ts *TurnState) []Action {
	e.turn++
	e.log(log.NewTurnEvent(e.turn, e.phase.String()))
	e.log(log.NewTurnStateEvent(e.turn, e.phase.String(), ts.String()))

	var actions []Action
	switch e.phase {
	case PhaseDraft:
		actions = e.draft(ts)
		if e.turn >= e.draftTurns {
			e.phase = PhaseBattle
			e.log(log.NewPhaseChangeEvent(e.turn, PhaseDraft.String(), PhaseBattle.String(), len(e.session.deck)))
		}
	default:
		actions = e.battle(ts)
	}
	return actions
}

func (e *Engine) draft(ts *TurnState) []Action {
	choice := ChooseDraft(ts.Hand, e.bonus)
	for i, c := range ts.Hand {
		if c.IsCreature() {
			e.log(log.NewCardScoreEvent(e.turn, c.String(), c.InstanceID, choice.Scores[i]))
		}
	}
	if !choice.Picked() {
		e.log(log.NewPassEvent(e.turn, PhaseDraft.String(), "no creature offered"))
		return []Action{Pass()}
	}
	picked := ts.Hand[choice.Index]
	e.session.AddToDeck(picked)
	e.log(log.NewPickEvent(e.turn, picked.String(), choice.Index, choice.Score))
	return []Action{choice.Action()}
}

func (e *Engine) battle(ts *TurnState) []Action {
	e.session.ResetSickness()
	drawn := e.session.PruneDrawn(ts.Hand)
	e.log(log.NewDeckUpdateEvent(e.turn, drawn, len(e.session.deck)))

	var actions []Action

	summoned, _ := PlanSummons(ts.Hand, ts.Current.Mana, e.session)
	manaLeft := ts.Current.Mana
	for _, c := range summoned {
		manaLeft -= c.Cost
		actions = append(actions, Summon(c.InstanceID))
		e.log(log.NewSummonEvent(e.turn, c.String(), c.InstanceID, manaLeft, e.session.IsSick(c.InstanceID)))
	}

	guards := Guards(ts.OpponentBoard)
	names := make([]string, len(guards))
	for i, g := range guards {
		names[i] = g.String()
	}
	e.log(log.NewDefendersEvent(e.turn, names))

	attackers := make([]Card, 0, len(ts.Board)+len(summoned))
	attackers = append(attackers, ts.Board...)
	attackers = append(attackers, summoned...)
	for _, p := range ResolveAttacks(attackers, ts.OpponentBoard, e.session) {
		actions = append(actions, p.Action())
		if p.Target == nil {
			e.log(log.NewDirectAttackEvent(e.turn, p.Attacker.String(), p.Attacker.InstanceID))
		} else {
			e.log(log.NewAttackEvent(e.turn, p.Attacker.String(), p.Attacker.InstanceID, p.Target.String(), p.LifeLeft))
		}
	}

	if len(actions) == 0 {
		e.log(log.NewPassEvent(e.turn, PhaseBattle.String(), "nothing to summon or attack with"))
		return []Action{Pass()}
	}
	return actions
}

// SessionSnapshot is a read-only view of an engine's carried state.
type SessionSnapshot struct {
	Turn  int
	Phase string
	Deck  []Card
	Sick  []int
}

// Snapshot copies the engine's session state.
func (e *Engine) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		Turn:  e.turn,
		Phase: e.phase.String(),
		Deck:  e.session.Deck(),
		Sick:  e.session.SickIDs(),
	}
}

func (s SessionSnapshot) String() string {
	return fmt.Sprintf("turn %d, %s phase, %d deck cards, sick %v", s.Turn, s.Phase, len(s.Deck), s.Sick)
}
