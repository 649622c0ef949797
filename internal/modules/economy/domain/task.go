package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Difficulty selects the arithmetic and the reward band of a work task
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty falls back to easy for anything it does not know
func ParseDifficulty(s string) Difficulty {
	switch d := Difficulty(strings.ToLower(s)); d {
	case DifficultyMedium, DifficultyHard:
		return d
	default:
		return DifficultyEasy
	}
}

// Task is one arithmetic question. Balance is captured when the task is
// handed out; the reward is a share of it.
type Task struct {
	Difficulty Difficulty
	Question   string
	Answer     int64
	Balance    int64
	MinShare   decimal.Decimal
	MaxShare   decimal.Decimal
}
