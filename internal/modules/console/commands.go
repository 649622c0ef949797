package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	economyDomain "github.com/frankieli/roulette/internal/modules/economy/domain"
	rouletteDomain "github.com/frankieli/roulette/internal/modules/roulette/domain"
	"github.com/frankieli/roulette/internal/modules/wallet"
	"github.com/frankieli/roulette/pkg/logger"
)

const helpText = `Bets:
  number <0-36> <amount>       pays 35:1
  color <red|black> <amount>   pays 1:1
  parity <even|odd> <amount>   pays 1:1 (0 loses)
  range <1-18|19-36> <amount>  pays 1:1
  dozen <1|2|3> <amount>       pays 2:1 (1=>1-12, 2=>13-24, 3=>25-36)
  column <1|2|3> <amount>      pays 2:1
Commands:
  bet <kind> <selector> <amount>  place a bet (many per spin)
  spin                            spin the wheel and resolve bets
  balance                         show balance, savings and owned items
  work [easy|medium|hard]         solve a task for a share of your balance
  invest <amount>                 move money to savings (earns interest)
  withdraw <amount>               move money from savings back to balance
  savings                         show savings balance and interest rate
  shop                            show purchasable items
  buy <item>                      buy an item to boost investments or work
  donate <amount>                 donate money to charity
  history                         show recent spins
  help                            show help
  quit                            exit`

func (h *Handler) bet(ctx context.Context, args []string) bool {
	bet, err := h.rouletteUC.PlaceBet(ctx, args)
	if err != nil {
		h.reject(ctx, err)
		return false
	}
	h.println("Placed:", bet)
	return false
}

func (h *Handler) spin(ctx context.Context, _ []string) bool {
	res, err := h.rouletteUC.Spin(ctx)
	if err != nil {
		h.reject(ctx, err)
		return false
	}

	h.printf("Wheel spins... %d (%s)\n", res.Outcome, res.Color)
	for _, s := range res.Settlements {
		if s.Won {
			h.printf("Bet %s: WIN %d (return %d)\n", s.Bet, s.Net(), s.Return)
		} else {
			h.printf("Bet %s: lose (-%d)\n", s.Bet, s.Bet.Stake)
		}
	}
	h.println("Balance:", res.Balance)

	if res.Balance <= 0 {
		h.println("Bankrupt. Game over.")
		logger.Info(ctx).Str("round_id", res.RoundID).Msg("💸 Player bankrupt")
		return true
	}
	return false
}

func (h *Handler) balance(ctx context.Context, _ []string) bool {
	summary, err := h.economyUC.Summary(ctx)
	if err != nil {
		h.reject(ctx, err)
		return false
	}

	h.println("Balance:", summary.Balance)
	h.printf("Savings: %d (rate %s)\n", summary.Savings, summary.SavingsRate)
	owned := "none"
	if len(summary.Owned) > 0 {
		owned = strings.Join(summary.Owned, ", ")
	}
	h.println("Owned items:", owned)

	bets, err := h.rouletteUC.PendingBets(ctx)
	if err == nil && len(bets) > 0 {
		h.println("Pending bets:")
		for _, b := range bets {
			h.println(" ", b)
		}
	}
	return false
}

func (h *Handler) work(ctx context.Context, args []string) bool {
	difficulty := ""
	if len(args) > 0 {
		difficulty = args[0]
	}

	task, err := h.workUC.NewTask(ctx, difficulty)
	if err != nil {
		h.reject(ctx, err)
		return false
	}

	answer, ok := h.readLine("Solve: " + task.Question + " = ")
	if !ok {
		h.println()
		h.println("Work cancelled.")
		return false
	}

	res, err := h.workUC.Submit(ctx, task, answer)
	if err != nil {
		h.reject(ctx, err)
		return false
	}

	switch {
	case res.Invalid:
		h.printf("Invalid answer. Correct answer was %d.\n", res.Answer)
	case !res.Correct:
		h.printf("Incorrect. The correct answer was %d.\n", res.Answer)
	case res.Bonus > 0:
		h.printf("Correct! Bonus task (+%d). Total gain: %d.\n", res.Bonus, res.Earned)
		h.println("Balance:", res.Balance)
	default:
		h.printf("Correct! You solved the problem and earned %d.\n", res.Earned)
		h.println("Balance:", res.Balance)
	}
	return false
}

func (h *Handler) invest(ctx context.Context, args []string) bool {
	amount, ok := h.amount("invest", args)
	if !ok {
		return false
	}

	savings, err := h.economyUC.Invest(ctx, amount)
	if err != nil {
		h.reject(ctx, err)
		return false
	}
	h.printf("Invested %d. Savings: %d\n", amount, savings)
	return false
}

func (h *Handler) withdraw(ctx context.Context, args []string) bool {
	amount, ok := h.amount("withdraw", args)
	if !ok {
		return false
	}

	if _, err := h.economyUC.Withdraw(ctx, amount); err != nil {
		h.reject(ctx, err)
		return false
	}

	summary, err := h.economyUC.Summary(ctx)
	if err != nil {
		h.reject(ctx, err)
		return false
	}
	h.printf("Withdrew %d. Savings: %d. Balance: %d\n", amount, summary.Savings, summary.Balance)
	return false
}

func (h *Handler) savings(ctx context.Context, _ []string) bool {
	summary, err := h.economyUC.Summary(ctx)
	if err != nil {
		h.reject(ctx, err)
		return false
	}
	h.println("Savings balance:", summary.Savings)
	h.println("Interest rate:", summary.SavingsRate)
	return false
}

func (h *Handler) shop(_ context.Context, _ []string) bool {
	h.println("Items available:")
	for _, item := range h.economyUC.Items() {
		h.printf("  %s: price %d - %s\n", item.Name, item.Price, item.Description)
	}
	return false
}

func (h *Handler) buy(ctx context.Context, args []string) bool {
	if len(args) != 1 {
		h.println("Usage: buy <item>")
		return false
	}

	item, err := h.economyUC.Buy(ctx, args[0])
	if err != nil {
		h.reject(ctx, err)
		return false
	}
	h.printf("Bought %s for %d.\n", item.Name, item.Price)
	return false
}

func (h *Handler) donate(ctx context.Context, args []string) bool {
	amount, ok := h.amount("donate", args)
	if !ok {
		return false
	}

	total, err := h.economyUC.Donate(ctx, amount)
	if err != nil {
		h.reject(ctx, err)
		return false
	}
	h.printf("Donated %d. Thanks! Total donated: %d\n", amount, total)
	return false
}

func (h *Handler) history(ctx context.Context, _ []string) bool {
	spins, err := h.rouletteUC.History(ctx, historyLimit)
	if err != nil {
		h.reject(ctx, err)
		return false
	}
	if len(spins) == 0 {
		h.println("No spins yet.")
		return false
	}

	for _, s := range spins {
		h.printf("%s: %d (%s) bets %d, staked %d, returned %d\n",
			s.RoundID, s.Outcome, s.Color, s.TotalBets, s.TotalStake, s.TotalReturn)
	}
	return false
}

func (h *Handler) help(_ context.Context, _ []string) bool {
	h.println(helpText)
	return false
}

// amount parses the single integer argument of invest, withdraw and donate
func (h *Handler) amount(name string, args []string) (int64, bool) {
	if len(args) != 1 {
		h.printf("Usage: %s <amount>\n", name)
		return 0, false
	}
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		h.println("Invalid amount.")
		return 0, false
	}
	return amount, true
}

// reject prints the player-facing message for err. State is never changed by
// a rejected command, so there is nothing to undo here.
func (h *Handler) reject(ctx context.Context, err error) {
	logger.Warn(ctx).Err(err).Msg("Command rejected")

	switch {
	case errors.Is(err, rouletteDomain.ErrInvalidBetKind),
		errors.Is(err, rouletteDomain.ErrInvalidSelector),
		errors.Is(err, rouletteDomain.ErrInvalidStake):
		h.printf("Invalid bet: %v. See 'help'.\n", err)
	case errors.Is(err, rouletteDomain.ErrNoBets):
		h.println("No bets placed.")
	case errors.Is(err, wallet.ErrInsufficientFunds):
		h.println("Insufficient funds.")
	case errors.Is(err, wallet.ErrInsufficientSavings):
		h.println("Insufficient savings.")
	case errors.Is(err, wallet.ErrInvalidAmount):
		h.println("Amount must be positive.")
	case errors.Is(err, economyDomain.ErrUnknownItem):
		h.println("Unknown item.")
	case errors.Is(err, economyDomain.ErrAlreadyOwned):
		h.println("You already own that item.")
	case errors.Is(err, economyDomain.ErrNothingToLeverage):
		h.println("You have no money to leverage for work.")
	default:
		h.println("Error:", err)
	}
}
