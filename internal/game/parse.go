package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrMalformedInput wraps every violation of the host input protocol.
	ErrMalformedInput = errors.New("malformed input")
	// ErrBadAbilities is returned for ability codes of the wrong length.
	ErrBadAbilities = fmt.Errorf("%w: bad ability code", ErrMalformedInput)
)

// TurnReader reads whitespace-delimited turn snapshots from the host.
type TurnReader struct {
	sc *bufio.Scanner
}

// NewTurnReader wraps r. Tokens may be split across lines arbitrarily.
func NewTurnReader(r io.Reader) *TurnReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &TurnReader{sc: sc}
}

// ParseTurn parses exactly one snapshot held in s.
func ParseTurn(s string) (*TurnState, error) {
	ts, err := NewTurnReader(strings.NewReader(s)).Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty snapshot", ErrMalformedInput)
	}
	return ts, err
}

// Next reads the next snapshot. It returns io.EOF, unwrapped, when the
// input ends cleanly before the first token of a turn.
func (tr *TurnReader) Next() (*TurnState, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return nil, fmt.Errorf("read turn: %w", err)
		}
		return nil, io.EOF
	}
	health, err := atoi("current health", tr.sc.Text())
	if err != nil {
		return nil, err
	}

	current := PlayerStatus{Health: health}
	if err := tr.ints("current status", &current.Mana, &current.DeckSize, &current.Runes); err != nil {
		return nil, err
	}
	var opponent PlayerStatus
	if err := tr.ints("opponent status", &opponent.Health, &opponent.Mana, &opponent.DeckSize, &opponent.Runes); err != nil {
		return nil, err
	}

	var opponentHand, cardCount int
	if err := tr.ints("card counts", &opponentHand, &cardCount); err != nil {
		return nil, err
	}
	if cardCount < 0 {
		return nil, fmt.Errorf("%w: negative card count %d", ErrMalformedInput, cardCount)
	}

	cards := make([]Card, 0, cardCount)
	for i := 0; i < cardCount; i++ {
		card, err := tr.card()
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards = append(cards, card)
	}

	return NewTurnState(current, opponent, opponentHand, cards), nil
}

func (tr *TurnReader) card() (Card, error) {
	var c Card
	var location, cardType int
	if err := tr.ints("card header", &c.Number, &c.InstanceID, &location, &cardType, &c.Cost, &c.Attack, &c.Defense); err != nil {
		return Card{}, err
	}
	if cardType < int(CardTypeCreature) || cardType > int(CardTypeBlueItem) {
		return Card{}, fmt.Errorf("%w: unknown card type %d", ErrMalformedInput, cardType)
	}
	c.Location = Location(location)
	c.Type = CardType(cardType)

	code, err := tr.token("abilities")
	if err != nil {
		return Card{}, err
	}
	if c.Abilities, err = ParseAbilities(code); err != nil {
		return Card{}, err
	}

	if err := tr.ints("card effects", &c.MyHealthChange, &c.OpponentHealthChange, &c.CardDraw); err != nil {
		return Card{}, err
	}
	return c, nil
}

func (tr *TurnReader) token(field string) (string, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", field, err)
		}
		return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformedInput, field)
	}
	return tr.sc.Text(), nil
}

func (tr *TurnReader) ints(field string, dst ...*int) error {
	for _, p := range dst {
		tok, err := tr.token(field)
		if err != nil {
			return err
		}
		if *p, err = atoi(field, tok); err != nil {
			return err
		}
	}
	return nil
}

func atoi(field, tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrMalformedInput, field, tok)
	}
	return n, nil
}
