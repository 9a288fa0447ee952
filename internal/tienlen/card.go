package tienlen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card has a score outside 1..13, an unknown suit,
// or notation that cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit is one of the four card suits. The underlying value is the suit's tie-break weight.
type Suit uint8

const (
	Diamond Suit = 1
	Club    Suit = 2
	Heart   Suit = 4
	Spade   Suit = 8
)

// Suits lists every suit in ascending weight.
var Suits = [4]Suit{Diamond, Club, Heart, Spade}

// Weight returns the tie-break magnitude of the suit (Spade > Heart > Club > Diamond).
func (s Suit) Weight() int {
	return int(s)
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	switch s {
	case Diamond, Club, Heart, Spade:
		return true
	}
	return false
}

func (s Suit) String() string {
	switch s {
	case Diamond:
		return "D"
	case Club:
		return "C"
	case Heart:
		return "H"
	case Spade:
		return "S"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// Card is an immutable playing card.
// Score is the face value as dealt: 1=Ace, 2..10, 11=Jack, 12=Queen, 13=King.
type Card struct {
	score int
	suit  Suit
}

// NewCard builds a card, rejecting scores outside 1..13 and unknown suits.
func NewCard(score int, suit Suit) (Card, error) {
	if score < 1 || score > 13 {
		return Card{}, fmt.Errorf("%w: score %d out of range", ErrInvalidCard, score)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: unknown suit %d", ErrInvalidCard, uint8(suit))
	}
	return Card{score: score, suit: suit}, nil
}

// MustCard is like NewCard but panics on invalid input. Intended for literals.
func MustCard(score int, suit Suit) Card {
	c, err := NewCard(score, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Score() int { return c.score }
func (c Card) Suit() Suit { return c.suit }

// Value is the in-game rank: 3..13 keep their score, Ace becomes 14 and Two becomes 15.
func (c Card) Value() int {
	if c.score > 2 {
		return c.score
	}
	return c.score + 13
}

// key orders cards by value first and suit weight second.
func (c Card) key() int {
	return c.Value()*10 + c.suit.Weight()
}

// Compare returns -1, 0 or +1 as c is lower than, equal to or higher than o.
func (c Card) Compare(o Card) int {
	switch a, b := c.key(), o.key(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (c Card) Less(o Card) bool    { return c.key() < o.key() }
func (c Card) Greater(o Card) bool { return c.key() > o.key() }
func (c Card) Equal(o Card) bool   { return c.score == o.score && c.suit == o.suit }

// String renders the card as score followed by suit letter, e.g. "10S" or "1D".
func (c Card) String() string {
	return strconv.Itoa(c.score) + c.suit.String()
}

var faceScores = map[string]int{"A": 1, "T": 10, "J": 11, "Q": 12, "K": 13}

var suitSymbols = map[string]Suit{
	"D": Diamond, "♦": Diamond,
	"C": Club, "♣": Club,
	"H": Heart, "♥": Heart,
	"S": Spade, "♠": Spade,
}

// ParseCard reads a card in "<score><suit>" notation ("3D", "10S", "AH", "Q♠").
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for sym, suit := range suitSymbols {
		if !strings.HasSuffix(s, sym) {
			continue
		}
		head := strings.TrimSuffix(s, sym)
		if score, ok := faceScores[head]; ok {
			return NewCard(score, suit)
		}
		score, err := strconv.Atoi(head)
		if err != nil {
			return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
		}
		return NewCard(score, suit)
	}
	return Card{}, fmt.Errorf("%w: %q has no suit", ErrInvalidCard, s)
}

// ParseCards parses each entry with ParseCard.
func ParseCards(in []string) ([]Card, error) {
	out := make([]Card, 0, len(in))
	for i, s := range in {
		c, err := ParseCard(s)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseHand parses a whitespace or comma separated list of cards.
func ParseHand(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return ParseCards(fields)
}

// NewDeck returns the 52-card deck ordered by score, then suit weight.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for score := 1; score <= 13; score++ {
		for _, s := range Suits {
			deck = append(deck, Card{score: score, suit: s})
		}
	}
	return deck
}

func maxCard(cards []Card) Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Greater(best) {
			best = c
		}
	}
	return best
}

func containsCard(cards []Card, target Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}

func allSameScore(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	s := cards[0].score
	for _, c := range cards {
		if c.score != s {
			return false
		}
	}
	return true
}
