package tienlen

import (
	"errors"
	"testing"
)

func TestClassifyFiveCardHand(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		want     Rank
		tieBreak string
	}{
		{"royal straight flush", "10D 11D 12D 13D 1D", RoyalStraightFlush, "1D"},
		{"royal straight", "10D 11H 12D 13S 1C", RoyalStraight, "1C"},
		{"straight flush", "5H 6H 7H 8H 9H", StraightFlush, "9H"},
		{"straight", "3D 4S 5H 6C 7D", Straight, "7D"},
		{"ace low straight", "1S 2D 3H 4C 5D", Straight, "5D"},
		{"nine to king straight", "9D 10S 11H 12C 13D", Straight, "13D"},
		{"flush picks highest card", "3S 7S 9S 1S 2S", Flush, "2S"},
		{"four aces", "1D 1H 1S 1C 5D", FourOfAKind, "1S"},
		{"four fives with an ace", "1D 5H 5S 5D 5C", FourOfAKind, "5S"},
		{"full house of aces", "1D 1H 1S 5H 5D", FullHouse, "1S"},
		{"full house over twos", "2C 2H 9S 9D 9C", FullHouse, "9S"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ClassifyFiveCardHand(cards(t, tt.hand))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ok {
				t.Fatalf("expected %s to classify", tt.hand)
			}
			if got.Rank != tt.want {
				t.Errorf("rank = %s, want %s", got.Rank, tt.want)
			}
			if got.TieBreak.String() != tt.tieBreak {
				t.Errorf("tie-break = %s, want %s", got.TieBreak, tt.tieBreak)
			}
		})
	}
}

func TestClassifyFiveCardHandUnclassified(t *testing.T) {
	tests := []struct {
		name string
		hand string
	}{
		{"two pair", "4D 4H 9S 9D 13C"},
		{"three distinct values", "4D 4H 4S 9D 13C"},
		{"high card", "3D 5H 8S 10C 12D"},
		{"wrap past king is not a straight", "12D 13H 1S 2C 3D"},
		{"broken run", "3D 4H 5S 6C 8D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ClassifyFiveCardHand(cards(t, tt.hand))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok {
				t.Fatalf("expected no classification, got %s", got)
			}
		})
	}
}

func TestClassifyFiveCardHandRejectsOtherSizes(t *testing.T) {
	for _, hand := range []string{"", "3D", "3D 4D 5D 6D", "3D 4D 5D 6D 7D 8D"} {
		if _, _, err := ClassifyFiveCardHand(cards(t, hand)); !errors.Is(err, ErrUnsupportedHandSize) {
			t.Errorf("hand %q: error = %v, want ErrUnsupportedHandSize", hand, err)
		}
	}
}

// The digit-concatenation straight check reads A-A-A-2-K as "111213", a substring of the
// run "...10111213". It is the only hand shape where the two straight modes disagree.
func TestDigitStraightsAcceptTripleAceTwoKing(t *testing.T) {
	hand := cards(t, "1D 1H 1S 2C 13D")

	got, ok, err := ClassifyFiveCardHand(hand)
	if err != nil || !ok {
		t.Fatalf("digit mode: expected classification, got ok=%v err=%v", ok, err)
	}
	if got.Rank != Straight || got.TieBreak != MustCard(13, Diamond) {
		t.Fatalf("digit mode = %s, want STRAIGHT(13D)", got)
	}

	runs := Options{Straights: RunStraights}
	if got, ok, _ := runs.ClassifyFiveCardHand(hand); ok {
		t.Fatalf("run mode: expected no classification, got %s", got)
	}
}

func TestStraightModesAgreeOnEveryRunWindow(t *testing.T) {
	modes := []Options{{Straights: DigitStraights}, {Straights: RunStraights}}
	for low := 1; low <= 9; low++ {
		hand := make([]Card, 0, 5)
		for i := 0; i < 5; i++ {
			// Alternate suits so the window is never a flush.
			suit := Diamond
			if i%2 == 1 {
				suit = Spade
			}
			hand = append(hand, MustCard(low+i, suit))
		}
		for _, o := range modes {
			got, ok, err := o.ClassifyFiveCardHand(hand)
			if err != nil || !ok {
				t.Fatalf("%s: window from %d should be a straight", o.Straights, low)
			}
			if got.Rank != Straight || got.TieBreak.Score() != low+4 {
				t.Fatalf("%s: window from %d = %s", o.Straights, low, got)
			}
		}
	}
}

func TestClassifyIsTotalOverDeck(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive five-card enumeration")
	}
	deck := NewDeck()
	counts := make(map[Rank]int)
	var hand [5]Card
	for a := 0; a < len(deck); a++ {
		for b := a + 1; b < len(deck); b++ {
			for c := b + 1; c < len(deck); c++ {
				for d := c + 1; d < len(deck); d++ {
					for e := d + 1; e < len(deck); e++ {
						hand = [5]Card{deck[a], deck[b], deck[c], deck[d], deck[e]}
						got, ok, err := ClassifyFiveCardHand(hand[:])
						if err != nil {
							t.Fatalf("%v: %v", hand, err)
						}
						if ok {
							counts[got.Rank]++
							if !containsCard(hand[:], got.TieBreak) {
								t.Fatalf("%v: tie-break %s not in hand", hand, got.TieBreak)
							}
						}
					}
				}
			}
		}
	}

	want := map[Rank]int{
		RoyalStraightFlush: 4,
		StraightFlush:      9 * 4,
		RoyalStraight:      4*4*4*4*4 - 4,
		// Nine true windows, plus A-A-A-2-K: 4 ace triples * 4 twos * 4 kings.
		Straight:    9*(1024-4) + 64,
		FourOfAKind: 13 * 48,
		FullHouse:   13 * 4 * 12 * 6,
		Flush:       4*1287 - 40,
	}
	for r, n := range want {
		if counts[r] != n {
			t.Errorf("%s count = %d, want %d", r, counts[r], n)
		}
	}
}
