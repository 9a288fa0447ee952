package tienlen

// Options are the table rules a turn is judged under.
type Options struct {
	// TriplesEnabled allows three-of-a-kind plays, both to open and to beat a triple.
	TriplesEnabled bool
	// Straights picks the straight detection used by the five-card classifier.
	Straights StraightMode
}

// Rule names the part of the decision procedure that produced a verdict.
type Rule int

const (
	RuleUnsupported Rule = iota
	RuleOpening
	RuleSingle
	RulePair
	RuleTriple
	RuleFiveCard
	RuleBomb
)

func (r Rule) String() string {
	switch r {
	case RuleOpening:
		return "opening"
	case RuleSingle:
		return "single"
	case RulePair:
		return "pair"
	case RuleTriple:
		return "triple"
	case RuleFiveCard:
		return "five_card"
	case RuleBomb:
		return "bomb"
	}
	return "unsupported"
}

// Verdict is the outcome of judging one (previous, current) pair of plays.
type Verdict struct {
	Valid bool
	Rule  Rule
}

// ThreeOfDiamonds is the card every opening play must contain.
var ThreeOfDiamonds = Card{score: 3, suit: Diamond}

// ValidateTurn reports whether current may be played on top of previous.
// An empty previous means current is the opening play of the round.
func ValidateTurn(previous, current []Card, opts Options) bool {
	return Judge(previous, current, opts).Valid
}

// Judge is ValidateTurn, also reporting which rule decided the outcome.
func Judge(previous, current []Card, opts Options) Verdict {
	switch {
	case len(previous) == 0:
		return Verdict{Valid: IsValidOpening(current, opts), Rule: RuleOpening}
	case len(previous) == 1 && len(current) == 1:
		return Verdict{Valid: CanBeatSingle(previous[0], current[0]), Rule: RuleSingle}
	case len(previous) == 2 && len(current) == 2:
		return Verdict{Valid: CanBeatPair(previous, current), Rule: RulePair}
	case len(previous) == 3 && len(current) == 3 && opts.TriplesEnabled:
		return Verdict{Valid: CanBeatTriple(previous, current), Rule: RuleTriple}
	case len(previous) == 5 && len(current) == 5:
		return Verdict{Valid: CanBeatFiveCard(previous, current, opts.Straights), Rule: RuleFiveCard}
	case len(previous) == 1 && previous[0].score == 2 && len(current) == 5:
		return Verdict{Valid: IsBomb(current, opts.Straights), Rule: RuleBomb}
	}
	return Verdict{Rule: RuleUnsupported}
}

// CanBeatSingle reports whether current is strictly higher than previous.
func CanBeatSingle(previous, current Card) bool {
	return current.Greater(previous)
}

// CanBeatPair requires both plays to be two cards of one score, then compares their highest cards.
func CanBeatPair(previous, current []Card) bool {
	return canBeatSameScore(previous, current, 2)
}

// CanBeatTriple requires both plays to be three cards of one score, then compares their highest cards.
func CanBeatTriple(previous, current []Card) bool {
	return canBeatSameScore(previous, current, 3)
}

func canBeatSameScore(previous, current []Card, size int) bool {
	if len(previous) != size || len(current) != size {
		return false
	}
	// A group that is not score-homogeneous never takes part, whatever its values.
	if !allSameScore(previous) || !allSameScore(current) {
		return false
	}
	return maxCard(previous).Less(maxCard(current))
}

// CanBeatFiveCard classifies both hands; either failing to classify makes the play invalid.
func CanBeatFiveCard(previous, current []Card, mode StraightMode) bool {
	prev, ok, err := classifyFive(previous, mode)
	if err != nil || !ok {
		return false
	}
	cur, ok, err := classifyFive(current, mode)
	if err != nil || !ok {
		return false
	}
	return cur.Beats(prev)
}

// IsBomb reports whether a five-card play is a bomb (four of a kind or a straight flush),
// the only five-card plays allowed over a single Two.
func IsBomb(current []Card, mode StraightMode) bool {
	c, ok, err := classifyFive(current, mode)
	if err != nil || !ok {
		return false
	}
	return c.Rank.IsBomb()
}

// IsValidOpening checks the first play of a round. It must contain the three of diamonds and be
// a lone 3♦, a pair or triple of threes, or a classifiable five-card hand.
func IsValidOpening(current []Card, opts Options) bool {
	if len(current) == 0 || !containsCard(current, ThreeOfDiamonds) {
		return false
	}
	switch len(current) {
	case 1:
		return current[0] == ThreeOfDiamonds
	case 2:
		return allSameScore(current)
	case 3:
		return opts.TriplesEnabled && allSameScore(current)
	case 5:
		_, ok, err := classifyFive(current, opts.Straights)
		return err == nil && ok
	}
	return false
}
