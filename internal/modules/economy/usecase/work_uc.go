package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/frankieli/roulette/internal/modules/economy/domain"
	"github.com/frankieli/roulette/pkg/logger"
	"github.com/frankieli/roulette/pkg/service"
	"github.com/shopspring/decimal"
)

// bonusChance is the probability that a correct answer earns a bonus task
const bonusChance = 0.05

// WorkResult is the outcome of answering a task
type WorkResult struct {
	Correct bool
	Invalid bool // answer was not an integer
	Answer  int64
	Bonus   int64
	Earned  int64 // credited to the balance, bonus and multiplier included
	Balance int64
}

type band struct {
	aMin, aMax int
	bMin, bMax int
	ops        []string
	minShare   decimal.Decimal
	maxShare   decimal.Decimal
}

var bands = map[domain.Difficulty]band{
	domain.DifficultyEasy: {
		aMin: 1, aMax: 20, bMin: 1, bMax: 20,
		ops:      []string{"+", "-"},
		minShare: decimal.RequireFromString("0.01"),
		maxShare: decimal.RequireFromString("0.03"),
	},
	domain.DifficultyMedium: {
		aMin: 5, aMax: 50, bMin: 1, bMax: 12,
		ops:      []string{"+", "-", "*"},
		minShare: decimal.RequireFromString("0.03"),
		maxShare: decimal.RequireFromString("0.07"),
	},
	domain.DifficultyHard: {
		aMin: 2, aMax: 20, bMin: 1, bMax: 20,
		ops:      []string{"+", "-", "*", "^"},
		minShare: decimal.RequireFromString("0.05"),
		maxShare: decimal.RequireFromString("0.15"),
	},
}

// WorkUseCase runs the arithmetic minigame that pays a share of the balance
type WorkUseCase struct {
	walletSvc service.WalletService
	profile   *domain.Profile
	rnd       service.Random
}

// NewWorkUseCase creates a new work use case
func NewWorkUseCase(walletSvc service.WalletService, profile *domain.Profile, rnd service.Random) *WorkUseCase {
	return &WorkUseCase{
		walletSvc: walletSvc,
		profile:   profile,
		rnd:       rnd,
	}
}

// NewTask draws a question. Unknown difficulties get an easy one.
func (uc *WorkUseCase) NewTask(ctx context.Context, difficulty string) (*domain.Task, error) {
	balance, err := uc.walletSvc.GetBalance(ctx)
	if err != nil {
		return nil, err
	}
	if balance <= 0 {
		return nil, domain.ErrNothingToLeverage
	}

	d := domain.ParseDifficulty(difficulty)
	b := bands[d]

	x := uc.between(b.aMin, b.aMax)
	y := uc.between(b.bMin, b.bMax)
	if d == domain.DifficultyHard {
		// the exponent is drawn even when another operator wins
		exp := uc.between(2, 3)
		op := b.ops[uc.rnd.Intn(len(b.ops))]
		if op == "^" {
			y = exp
		}
		return newTask(d, x, y, op, balance, b), nil
	}

	op := b.ops[uc.rnd.Intn(len(b.ops))]
	return newTask(d, x, y, op, balance, b), nil
}

func newTask(d domain.Difficulty, x, y int, op string, balance int64, b band) *domain.Task {
	a, c := int64(x), int64(y)
	var answer int64
	switch op {
	case "+":
		answer = a + c
	case "-":
		answer = a - c
	case "*":
		answer = a * c
	case "^":
		answer = 1
		for i := int64(0); i < c; i++ {
			answer *= a
		}
	}

	return &domain.Task{
		Difficulty: d,
		Question:   fmt.Sprintf("%d %s %d", x, op, y),
		Answer:     answer,
		Balance:    balance,
		MinShare:   b.minShare,
		MaxShare:   b.maxShare,
	}
}

// Submit checks an answer and credits the reward when it is right
func (uc *WorkUseCase) Submit(ctx context.Context, task *domain.Task, input string) (*WorkResult, error) {
	ctx = logger.WithFields(ctx, map[string]interface{}{
		"difficulty": string(task.Difficulty),
	})

	given, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		logger.Info(ctx).Str("input", input).Msg("Work answer not a number")
		return &WorkResult{Invalid: true, Answer: task.Answer}, nil
	}
	if given != task.Answer {
		logger.Info(ctx).Int64("given", given).Int64("answer", task.Answer).Msg("Work answer wrong")
		return &WorkResult{Answer: task.Answer}, nil
	}

	share := uc.uniform(task.MinShare, task.MaxShare)
	reward := atLeastOne(decimal.NewFromInt(task.Balance).Mul(share))

	var bonus int64
	if uc.rnd.Float64() < bonusChance {
		factor := uc.uniform(decimal.RequireFromString("0.5"), decimal.RequireFromString("1.5"))
		bonus = atLeastOne(decimal.NewFromInt(reward).Mul(factor))
	}

	earned := decimal.NewFromInt(reward + bonus).Mul(uc.profile.WorkMultiplier).Floor().IntPart()
	balance, err := uc.walletSvc.AddBalance(ctx, earned, "work")
	if err != nil {
		return nil, fmt.Errorf("failed to credit work reward: %w", err)
	}

	logger.Info(ctx).
		Int64("reward", reward).
		Int64("bonus", bonus).
		Int64("earned", earned).
		Int64("balance", balance).
		Msg("💼 Work paid")

	return &WorkResult{
		Correct: true,
		Answer:  task.Answer,
		Bonus:   bonus,
		Earned:  earned,
		Balance: balance,
	}, nil
}

// between draws an int in [lo, hi]
func (uc *WorkUseCase) between(lo, hi int) int {
	return lo + uc.rnd.Intn(hi-lo+1)
}

func (uc *WorkUseCase) uniform(lo, hi decimal.Decimal) decimal.Decimal {
	return lo.Add(hi.Sub(lo).Mul(decimal.NewFromFloat(uc.rnd.Float64())))
}

func atLeastOne(d decimal.Decimal) int64 {
	if v := d.Floor().IntPart(); v > 1 {
		return v
	}
	return 1
}
