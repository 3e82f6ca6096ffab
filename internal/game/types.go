package game

import (
	"fmt"
	"strings"
)

// --- Enums ---

type Location int

const (
	LocationOpponentBoard Location = -1
	LocationHand          Location = 0
	LocationOwnBoard      Location = 1
)

func (l Location) String() string {
	switch {
	case l < 0:
		return "Opponent Board"
	case l == 0:
		return "Hand"
	default:
		return "Board"
	}
}

type CardType int

const (
	CardTypeCreature CardType = iota
	CardTypeGreenItem
	CardTypeRareItem
	CardTypeBlueItem
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeCreature:
		return "Creature"
	case CardTypeGreenItem:
		return "Green Item"
	case CardTypeRareItem:
		return "Rare Item"
	case CardTypeBlueItem:
		return "Blue Item"
	default:
		return "Unknown"
	}
}

// --- Abilities ---

// AbilityCodeLen is the length of the positional ability code, e.g. "B-D-L-".
const AbilityCodeLen = 6

// Abilities is the decoded form of an ability code. The code string is
// never consulted again after decoding.
type Abilities struct {
	Breakthrough bool
	Charge       bool
	Drain        bool
	Guard        bool
	Lethal       bool
	Ward         bool
}

var abilityLetters = [AbilityCodeLen]byte{'B', 'C', 'D', 'G', 'L', 'W'}

// ParseAbilities decodes a 6-character code. Any character other than '-'
// marks the ability at that position as present.
func ParseAbilities(code string) (Abilities, error) {
	if len(code) != AbilityCodeLen {
		return Abilities{}, fmt.Errorf("%w: %q has length %d", ErrBadAbilities, code, len(code))
	}
	has := func(i int) bool { return code[i] != '-' }
	return Abilities{
		Breakthrough: has(0),
		Charge:       has(1),
		Drain:        has(2),
		Guard:        has(3),
		Lethal:       has(4),
		Ward:         has(5),
	}, nil
}

// None reports whether no ability is present.
func (a Abilities) None() bool {
	return a == Abilities{}
}

func (a Abilities) flags() [AbilityCodeLen]bool {
	return [AbilityCodeLen]bool{a.Breakthrough, a.Charge, a.Drain, a.Guard, a.Lethal, a.Ward}
}

// String renders the canonical code, e.g. "---G-W".
func (a Abilities) String() string {
	var b [AbilityCodeLen]byte
	for i, set := range a.flags() {
		if set {
			b[i] = abilityLetters[i]
		} else {
			b[i] = '-'
		}
	}
	return string(b[:])
}

// --- Card ---

// Card is one card instance as seen in a single turn snapshot. Two cards
// are the same card iff their InstanceID matches.
type Card struct {
	Number     int
	InstanceID int
	Location   Location
	Type       CardType
	Cost       int
	Attack     int
	Defense    int
	Abilities  Abilities

	MyHealthChange       int
	OpponentHealthChange int
	CardDraw             int
}

// IsCreature reports whether the card can be summoned to the board.
func (c Card) IsCreature() bool {
	return c.Type == CardTypeCreature
}

// HasEffects reports whether the card carries any ability or trigger.
func (c Card) HasEffects() bool {
	return !c.Abilities.None() || c.MyHealthChange != 0 || c.OpponentHealthChange != 0 || c.CardDraw != 0
}

// SimpleString returns the compact stat block used in logs.
func (c Card) SimpleString() string {
	return fmt.Sprintf("[type%d, id%d, M%d, A%d, D%d]", int(c.Type), c.InstanceID, c.Cost, c.Attack, c.Defense)
}

func (c Card) String() string {
	s := c.SimpleString()
	if !c.HasEffects() {
		return s
	}
	var b strings.Builder
	b.WriteString(s)
	b.WriteByte('(')
	if !c.Abilities.None() {
		b.WriteString(c.Abilities.String())
	}
	if c.MyHealthChange != 0 {
		fmt.Fprintf(&b, "MH%d", c.MyHealthChange)
	}
	if c.OpponentHealthChange != 0 {
		fmt.Fprintf(&b, "OH%d", c.OpponentHealthChange)
	}
	if c.CardDraw != 0 {
		fmt.Fprintf(&b, "D%d", c.CardDraw)
	}
	b.WriteByte(')')
	return b.String()
}

// --- Player / turn snapshot ---

// PlayerStatus is one player's counters for the current turn.
type PlayerStatus struct {
	Health   int
	Mana     int
	DeckSize int
	Runes    int
}

func (p PlayerStatus) String() string {
	return fmt.Sprintf("health=%d, mana=%d, deck=%d, runes=%d", p.Health, p.Mana, p.DeckSize, p.Runes)
}

// TurnState is the parsed snapshot for one turn. Hand, Board and
// OpponentBoard partition Cards by location, preserving input order.
type TurnState struct {
	Current          PlayerStatus
	Opponent         PlayerStatus
	OpponentHandSize int

	Cards         []Card
	Hand          []Card
	Board         []Card
	OpponentBoard []Card
}

// NewTurnState partitions cards by location.
func NewTurnState(current, opponent PlayerStatus, opponentHand int, cards []Card) *TurnState {
	ts := &TurnState{
		Current:          current,
		Opponent:         opponent,
		OpponentHandSize: opponentHand,
		Cards:            cards,
	}
	for _, c := range cards {
		switch {
		case c.Location < 0:
			ts.OpponentBoard = append(ts.OpponentBoard, c)
		case c.Location == 0:
			ts.Hand = append(ts.Hand, c)
		default:
			ts.Board = append(ts.Board, c)
		}
	}
	return ts
}

func (ts *TurnState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n- me: %s", ts.Current)
	fmt.Fprintf(&b, "\n- opponent: %s", ts.Opponent)
	fmt.Fprintf(&b, "\n- opponentHand=%d", ts.OpponentHandSize)
	fmt.Fprintf(&b, "\n- cardCount=%d", len(ts.Cards))
	fmt.Fprintf(&b, "\n- hand=%s", cardList(ts.Hand))
	fmt.Fprintf(&b, "\n- board=%s", cardList(ts.Board))
	fmt.Fprintf(&b, "\n- opponentBoard=%s", cardList(ts.OpponentBoard))
	return b.String()
}

func cardList(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// --- Actions ---

type ActionType int

const (
	ActionPass ActionType = iota
	ActionPick
	ActionSummon
	ActionAttack
)

func (a ActionType) String() string {
	switch a {
	case ActionPass:
		return "PASS"
	case ActionPick:
		return "PICK"
	case ActionSummon:
		return "SUMMON"
	case ActionAttack:
		return "ATTACK"
	default:
		return "UNKNOWN"
	}
}

// NoTarget is the target id of an attack on the opponent's face.
const NoTarget = -1

// Action is one command sent to the game host.
type Action struct {
	Type   ActionType
	Index  int // pick index (ActionPick)
	Card   int // instance id (ActionSummon, ActionAttack)
	Target int // defender instance id or NoTarget (ActionAttack)
}

// Pass returns a PASS action.
func Pass() Action { return Action{Type: ActionPass} }

// Pick returns a PICK action for the offered card at index.
func Pick(index int) Action { return Action{Type: ActionPick, Index: index} }

// Summon returns a SUMMON action for the given instance.
func Summon(id int) Action { return Action{Type: ActionSummon, Card: id} }

// Attack returns an ATTACK action against a defender, or the face when
// target is NoTarget.
func Attack(id, target int) Action { return Action{Type: ActionAttack, Card: id, Target: target} }

func AttackFace(id int) Action { return Attack(id, NoTarget) }

func (a Action) IsFaceAttack() bool { return a.Type == ActionAttack && a.Target == NoTarget }

// String renders the action token of the host protocol.
func (a Action) String() string {
	switch a.Type {
	case ActionPick:
		return fmt.Sprintf("PICK %d", a.Index)
	case ActionSummon:
		return fmt.Sprintf("SUMMON %d", a.Card)
	case ActionAttack:
		return fmt.Sprintf("ATTACK %d %d", a.Card, a.Target)
	default:
		return "PASS"
	}
}

// FormatActions joins the actions of one turn into a single output line.
// An empty list is sent as PASS.
func FormatActions(actions []Action) string {
	if len(actions) == 0 {
		return Pass().String()
	}
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.String()
	}
	return strings.Join(parts, ";")
}
