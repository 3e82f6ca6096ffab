package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

// TextLogger keeps every event in memory but only writes debug-level
// events when debug is enabled.
type TextLogger struct {
	MemoryLogger
	w     io.Writer
	debug bool
}

func NewTextLogger(w io.Writer, debug bool) *TextLogger {
	return &TextLogger{w: w, debug: debug}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	if event.Level == LevelDebug && !l.debug {
		return
	}
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- SlogLogger: forwards events to a structured logger ---

// SlogLogger is used by the network servers, where many sessions share
// one output stream and need attributes to be told apart.
type SlogLogger struct {
	MemoryLogger
	logger *slog.Logger
}

// NewSlogLogger returns a logger writing through l. A nil l uses slog.Default.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{logger: l}
}

func (l *SlogLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	level := slog.LevelInfo
	if event.Level == LevelDebug {
		level = slog.LevelDebug
	}
	attrs := []slog.Attr{
		slog.Int("turn", event.Turn),
		slog.String("phase", event.Phase),
		slog.String("event", event.Type.String()),
	}
	if event.CardID != 0 {
		attrs = append(attrs, slog.Int("card", event.CardID))
	}
	l.logger.LogAttrs(context.Background(), level, event.Details, attrs...)
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	// Pad phase for alignment
	for len(phase) < 8 {
		phase += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int, phase string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d ===", turn),
	}
}

func NewTurnStateEvent(turn int, phase string, state string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Level:   LevelDebug,
		Type:    EventTurnState,
		Details: "Turn state:" + state,
	}
}

func NewPhaseChangeEvent(turn int, from, to string, deckSize int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   from,
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase %s → %s (deck %d cards)", from, to, deckSize),
	}
}

func NewCardScoreEvent(turn int, card string, id int, score float64) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Draft",
		Level:   LevelDebug,
		Type:    EventCardScore,
		CardID:  id,
		Details: fmt.Sprintf("Card %s efficiency %.3f", card, score),
	}
}

func NewPickEvent(turn int, card string, index int, score float64) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Draft",
		Type:    EventPick,
		Details: fmt.Sprintf("Picking %s at index %d (%.3f)", card, index, score),
	}
}

func NewPassEvent(turn int, phase string, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventPass,
		Details: fmt.Sprintf("Pass (%s)", reason),
	}
}

func NewSummonEvent(turn int, card string, id int, manaLeft int, sick bool) GameEvent {
	detail := fmt.Sprintf("Summon %s, %d mana left", card, manaLeft)
	if !sick {
		detail += ", can attack (charge)"
	}
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Type:    EventSummon,
		CardID:  id,
		Details: detail,
	}
}

func NewDefendersEvent(turn int, defenders []string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Level:   LevelDebug,
		Type:    EventDefenders,
		Details: fmt.Sprintf("Found defenders: [%s]", strings.Join(defenders, ", ")),
	}
}

func NewAttackEvent(turn int, attacker string, id int, defender string, lifeLeft int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Type:    EventAttack,
		CardID:  id,
		Details: fmt.Sprintf("Attack %s → %s (life left %d)", attacker, defender, lifeLeft),
	}
}

func NewDirectAttackEvent(turn int, attacker string, id int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Type:    EventDirectAttack,
		CardID:  id,
		Details: fmt.Sprintf("Direct attack with %s", attacker),
	}
}

func NewDeckUpdateEvent(turn int, drawn, remaining int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Level:   LevelDebug,
		Type:    EventDeckUpdate,
		Details: fmt.Sprintf("Drew %d deck card(s), %d left in deck", drawn, remaining),
	}
}
