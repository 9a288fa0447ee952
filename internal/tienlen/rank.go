package tienlen

import "fmt"

// Rank is the category of a classified five-card hand. The underlying value is its strength.
type Rank int

const (
	Straight Rank = iota + 1
	RoyalStraight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalStraightFlush
)

// Ranks lists every category from weakest to strongest.
var Ranks = [...]Rank{Straight, RoyalStraight, Flush, FullHouse, FourOfAKind, StraightFlush, RoyalStraightFlush}

// Strength is the comparison weight: a higher strength beats a lower one regardless of card values.
func (r Rank) Strength() int {
	return int(r)
}

// IsBomb reports whether the category may be played over a single Two.
func (r Rank) IsBomb() bool {
	switch r {
	case FourOfAKind, StraightFlush, RoyalStraightFlush:
		return true
	}
	return false
}

func (r Rank) String() string {
	switch r {
	case Straight:
		return "STRAIGHT"
	case RoyalStraight:
		return "ROYAL_STRAIGHT"
	case Flush:
		return "FLUSH"
	case FullHouse:
		return "FULL_HOUSE"
	case FourOfAKind:
		return "FOUR_A_KIND"
	case StraightFlush:
		return "STRAIGHT_FLUSH"
	case RoyalStraightFlush:
		return "ROYAL_STRAIGHT_FLUSH"
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Classification is the category of a five-card hand and the card that breaks ties
// between two hands of the same category.
type Classification struct {
	Rank     Rank
	TieBreak Card
}

// Beats reports whether c wins against o: higher strength, or equal strength with a higher tie-break card.
func (c Classification) Beats(o Classification) bool {
	if c.Rank.Strength() != o.Rank.Strength() {
		return c.Rank.Strength() > o.Rank.Strength()
	}
	return c.TieBreak.Greater(o.TieBreak)
}

func (c Classification) String() string {
	return fmt.Sprintf("%s(%s)", c.Rank, c.TieBreak)
}
