package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BetKind names one of the six bet types
type BetKind string

const (
	BetKindNumber BetKind = "number"
	BetKindColor  BetKind = "color"
	BetKindParity BetKind = "parity"
	BetKindRange  BetKind = "range"
	BetKindDozen  BetKind = "dozen"
	BetKindColumn BetKind = "column"
)

// BetKinds lists every kind in table order
var BetKinds = []BetKind{
	BetKindNumber,
	BetKindColor,
	BetKindParity,
	BetKindRange,
	BetKindDozen,
	BetKindColumn,
}

// PayoutRatios is the amount won per unit staked on a winning bet.
// A winning bet returns stake * (ratio + 1).
var PayoutRatios = map[BetKind]int64{
	BetKindNumber: 35,
	BetKindColor:  1,
	BetKindParity: 1,
	BetKindRange:  1,
	BetKindDozen:  2,
	BetKindColumn: 2,
}

// Selector is what a bet is placed on. The set of implementations is
// closed: NumberSelector, ColorSelector, ParitySelector, RangeSelector,
// DozenSelector and ColumnSelector.
type Selector interface {
	Kind() BetKind
	// Arg is the canonical command argument, e.g. "17", "red", "1-18"
	Arg() string
	selector()
}

type NumberSelector struct{ N int }

type ColorSelector struct{ Color Color }

type Parity string

const (
	ParityEven Parity = "even"
	ParityOdd  Parity = "odd"
)

type ParitySelector struct{ Parity Parity }

type Range string

const (
	RangeLow  Range = "1-18"
	RangeHigh Range = "19-36"
)

type RangeSelector struct{ Range Range }

type DozenSelector struct{ Dozen int }

type ColumnSelector struct{ Column int }

func (NumberSelector) Kind() BetKind { return BetKindNumber }
func (ColorSelector) Kind() BetKind  { return BetKindColor }
func (ParitySelector) Kind() BetKind { return BetKindParity }
func (RangeSelector) Kind() BetKind  { return BetKindRange }
func (DozenSelector) Kind() BetKind  { return BetKindDozen }
func (ColumnSelector) Kind() BetKind { return BetKindColumn }

func (s NumberSelector) Arg() string { return strconv.Itoa(s.N) }
func (s ColorSelector) Arg() string  { return string(s.Color) }
func (s ParitySelector) Arg() string { return string(s.Parity) }
func (s RangeSelector) Arg() string  { return string(s.Range) }
func (s DozenSelector) Arg() string  { return strconv.Itoa(s.Dozen) }
func (s ColumnSelector) Arg() string { return strconv.Itoa(s.Column) }

func (NumberSelector) selector() {}
func (ColorSelector) selector()  {}
func (ParitySelector) selector() {}
func (RangeSelector) selector()  {}
func (DozenSelector) selector()  {}
func (ColumnSelector) selector() {}

// ParseBetKind matches a kind name case-insensitively
func ParseBetKind(name string) (BetKind, error) {
	kind := BetKind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := PayoutRatios[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidBetKind, name)
	}
	return kind, nil
}

// ParseSelector builds the selector for kind from its single argument.
func ParseSelector(kind BetKind, arg string) (Selector, error) {
	arg = strings.TrimSpace(arg)

	switch kind {
	case BetKindNumber:
		n, err := parseIntIn(arg, MinOutcome, MaxOutcome)
		if err != nil {
			return nil, err
		}
		return NumberSelector{N: n}, nil

	case BetKindColor:
		switch c := Color(strings.ToLower(arg)); c {
		case ColorRed, ColorBlack:
			return ColorSelector{Color: c}, nil
		}
		return nil, fmt.Errorf("%w: color must be red or black, got %q", ErrInvalidSelector, arg)

	case BetKindParity:
		switch p := Parity(strings.ToLower(arg)); p {
		case ParityEven, ParityOdd:
			return ParitySelector{Parity: p}, nil
		}
		return nil, fmt.Errorf("%w: parity must be even or odd, got %q", ErrInvalidSelector, arg)

	case BetKindRange:
		switch r := Range(arg); r {
		case RangeLow, RangeHigh:
			return RangeSelector{Range: r}, nil
		}
		return nil, fmt.Errorf("%w: range must be 1-18 or 19-36, got %q", ErrInvalidSelector, arg)

	case BetKindDozen:
		d, err := parseIntIn(arg, 1, 3)
		if err != nil {
			return nil, err
		}
		return DozenSelector{Dozen: d}, nil

	case BetKindColumn:
		c, err := parseIntIn(arg, 1, 3)
		if err != nil {
			return nil, err
		}
		return ColumnSelector{Column: c}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidBetKind, kind)
}

func parseIntIn(arg string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelector, arg)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidSelector, n, lo, hi)
	}
	return n, nil
}
