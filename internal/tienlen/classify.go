package tienlen

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnsupportedHandSize is returned when the five-card classifier is given any other number of cards.
var ErrUnsupportedHandSize = errors.New("unsupported hand size")

// StraightMode selects how straights are detected in five-card hands.
type StraightMode int

const (
	// DigitStraights concatenates the sorted scores and looks the digits up in
	// "12345678910111213". It accepts every true run plus A-A-A-2-K.
	DigitStraights StraightMode = iota
	// RunStraights requires five distinct, numerically consecutive scores (or A-10-J-Q-K).
	RunStraights
)

func (m StraightMode) String() string {
	switch m {
	case DigitStraights:
		return "digits"
	case RunStraights:
		return "runs"
	}
	return fmt.Sprintf("StraightMode(%d)", int(m))
}

const (
	digitRun   = "12345678910111213"
	digitRoyal = "110111213"
)

// ClassifyFiveCardHand classifies a five-card hand using digit straight detection.
// The bool result is false when the hand matches no category.
func ClassifyFiveCardHand(hand []Card) (Classification, bool, error) {
	return classifyFive(hand, DigitStraights)
}

// ClassifyFiveCardHand classifies a five-card hand using the configured straight mode.
func (o Options) ClassifyFiveCardHand(hand []Card) (Classification, bool, error) {
	return classifyFive(hand, o.Straights)
}

func classifyFive(hand []Card, mode StraightMode) (Classification, bool, error) {
	if len(hand) != 5 {
		return Classification{}, false, fmt.Errorf("%w: got %d cards, want 5", ErrUnsupportedHandSize, len(hand))
	}

	var (
		straight, royal bool
		high            Card
	)
	if mode == RunStraights {
		straight, royal, high = runStraight(hand)
	} else {
		straight, royal, high = digitStraight(hand)
	}
	flush := isFlush(hand)

	switch {
	case royal && straight && flush:
		return Classification{Rank: RoyalStraightFlush, TieBreak: high}, true, nil
	case straight && flush:
		return Classification{Rank: StraightFlush, TieBreak: high}, true, nil
	case royal && straight:
		return Classification{Rank: RoyalStraight, TieBreak: high}, true, nil
	case straight:
		return Classification{Rank: Straight, TieBreak: high}, true, nil
	case flush:
		return Classification{Rank: Flush, TieBreak: maxCard(hand)}, true, nil
	}

	if c, ok := groupedHand(hand); ok {
		return c, true, nil
	}
	return Classification{}, false, nil
}

// sortedByScore returns a copy ordered by raw score; equal scores keep their input order.
func sortedByScore(hand []Card) []Card {
	out := append([]Card(nil), hand...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].score < out[j].score })
	return out
}

// digitStraight returns (straight, royal, tie-break). The royal tie-break is the Ace,
// any other straight breaks ties on its highest-score card.
func digitStraight(hand []Card) (bool, bool, Card) {
	sorted := sortedByScore(hand)
	var b strings.Builder
	for _, c := range sorted {
		b.WriteString(strconv.Itoa(c.score))
	}
	digits := b.String()

	if digits == digitRoyal {
		return true, true, sorted[0]
	}
	if strings.Contains(digitRun, digits) {
		return true, false, sorted[4]
	}
	return false, false, Card{}
}

func runStraight(hand []Card) (bool, bool, Card) {
	sorted := sortedByScore(hand)
	if sorted[0].score == 1 && sorted[1].score == 10 && sorted[2].score == 11 &&
		sorted[3].score == 12 && sorted[4].score == 13 {
		return true, true, sorted[0]
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].score != sorted[i-1].score+1 {
			return false, false, Card{}
		}
	}
	return true, false, sorted[4]
}

func isFlush(hand []Card) bool {
	var suits Suit
	for _, c := range hand {
		suits |= c.suit
	}
	return suits == hand[0].suit
}

// groupedHand detects a full house (3+2) or four of a kind (4+1), grouping by in-game value.
func groupedHand(hand []Card) (Classification, bool) {
	groups := make(map[int][]Card, 2)
	for _, c := range hand {
		groups[c.Value()] = append(groups[c.Value()], c)
	}
	if len(groups) != 2 {
		return Classification{}, false
	}
	for _, g := range groups {
		switch len(g) {
		case 3:
			return Classification{Rank: FullHouse, TieBreak: maxCard(g)}, true
		case 4:
			return Classification{Rank: FourOfAKind, TieBreak: maxCard(g)}, true
		}
	}
	return Classification{}, false
}
