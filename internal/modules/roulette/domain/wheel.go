package domain

// Outcome is the pocket the ball lands in, 0-36.
type Outcome = int

const (
	MinOutcome Outcome = 0
	MaxOutcome Outcome = 36
	// Pockets is the number of pockets on a single-zero wheel
	Pockets = MaxOutcome - MinOutcome + 1
)

// Color represents a pocket color
type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

func (c Color) String() string {
	return string(c)
}

// redPockets is the standard European layout. Red/black does not follow
// a formula, so it is spelled out.
var redPockets = map[Outcome]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {},
	19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {},
}

// columnPockets lists the three table columns
var columnPockets = map[int]map[Outcome]struct{}{
	1: {1: {}, 4: {}, 7: {}, 10: {}, 13: {}, 16: {}, 19: {}, 22: {}, 25: {}, 28: {}, 31: {}, 34: {}},
	2: {2: {}, 5: {}, 8: {}, 11: {}, 14: {}, 17: {}, 20: {}, 23: {}, 26: {}, 29: {}, 32: {}, 35: {}},
	3: {3: {}, 6: {}, 9: {}, 12: {}, 15: {}, 18: {}, 21: {}, 24: {}, 27: {}, 30: {}, 33: {}, 36: {}},
}

// IsValidOutcome checks the pocket exists on the wheel
func IsValidOutcome(o Outcome) bool {
	return o >= MinOutcome && o <= MaxOutcome
}

// ColorOf returns the pocket color; 0 is green.
func ColorOf(o Outcome) Color {
	if o == 0 {
		return ColorGreen
	}
	if _, ok := redPockets[o]; ok {
		return ColorRed
	}
	return ColorBlack
}

// InColumn reports whether o sits in the given column (1-3)
func InColumn(o Outcome, column int) bool {
	pockets, ok := columnPockets[column]
	if !ok {
		return false
	}
	_, in := pockets[o]
	return in
}

// OutcomeGenerator produces one uniformly random pocket per spin
type OutcomeGenerator interface {
	NextOutcome() Outcome
}
