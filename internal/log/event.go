package log

// EventType enumerates all observable bot events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventTurnState
	EventPhaseChange
	EventCardScore
	EventPick
	EventPass
	EventSummon
	EventDefenders
	EventAttack
	EventDirectAttack
	EventDeckUpdate
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventTurnState:
		return "TurnState"
	case EventPhaseChange:
		return "PhaseChange"
	case EventCardScore:
		return "CardScore"
	case EventPick:
		return "Pick"
	case EventPass:
		return "Pass"
	case EventSummon:
		return "Summon"
	case EventDefenders:
		return "Defenders"
	case EventAttack:
		return "Attack"
	case EventDirectAttack:
		return "DirectAttack"
	case EventDeckUpdate:
		return "DeckUpdate"
	default:
		return "Unknown"
	}
}

// Level separates chatty diagnostics from the decisions themselves.
type Level int

const (
	LevelInfo Level = iota
	LevelDebug
)

func (l Level) String() string {
	if l == LevelDebug {
		return "debug"
	}
	return "info"
}

// GameEvent represents a single observable event in a game session.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // "Draft" or "Battle"
	Level   Level     // info or debug
	Type    EventType // event type
	CardID  int       // instance id (if applicable, else 0)
	Details string    // human-readable detail string
}
