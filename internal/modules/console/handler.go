// Package console is the line-oriented prompt in front of the roulette table
// and the economy.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	economyUseCase "github.com/frankieli/roulette/internal/modules/economy/usecase"
	rouletteUseCase "github.com/frankieli/roulette/internal/modules/roulette/usecase"
	"github.com/frankieli/roulette/pkg/logger"
)

const historyLimit = 10

// command handles one input line. It returns true when the session is over.
type command func(ctx context.Context, args []string) bool

// Handler reads commands from in and writes replies to out
type Handler struct {
	in  *bufio.Scanner
	out io.Writer

	rouletteUC *rouletteUseCase.RouletteUseCase
	economyUC  *economyUseCase.EconomyUseCase
	workUC     *economyUseCase.WorkUseCase

	commands map[string]command
}

// NewHandler creates a new console handler
func NewHandler(
	in io.Reader,
	out io.Writer,
	rouletteUC *rouletteUseCase.RouletteUseCase,
	economyUC *economyUseCase.EconomyUseCase,
	workUC *economyUseCase.WorkUseCase,
) *Handler {
	h := &Handler{
		in:         bufio.NewScanner(in),
		out:        out,
		rouletteUC: rouletteUC,
		economyUC:  economyUC,
		workUC:     workUC,
	}

	h.commands = map[string]command{
		"bet":      h.bet,
		"spin":     h.spin,
		"balance":  h.balance,
		"work":     h.work,
		"invest":   h.invest,
		"withdraw": h.withdraw,
		"savings":  h.savings,
		"shop":     h.shop,
		"store":    h.shop,
		"buy":      h.buy,
		"donate":   h.donate,
		"history":  h.history,
		"help":     h.help,
		"quit":     func(context.Context, []string) bool { return true },
	}
	return h
}

// Run drives the session until quit, bankruptcy or end of input.
func (h *Handler) Run(ctx context.Context) error {
	summary, err := h.economyUC.Summary(ctx)
	if err != nil {
		return err
	}
	h.println("Roulette CLI - starting balance:", summary.Balance)
	h.println("Type 'help' for commands.")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		h.tick(ctx)

		line, ok := h.readLine("> ")
		if !ok {
			h.println()
			return h.in.Err()
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		name := strings.ToLower(parts[0])
		reqCtx := logger.WithRequestID(ctx, logger.GenerateRequestID())
		logger.Debug(reqCtx).Str("command", name).Strs("args", parts[1:]).Msg("Command received")

		cmd, found := h.commands[name]
		if !found {
			h.println("Unknown command. Type 'help'.")
			continue
		}
		if cmd(reqCtx, parts[1:]) {
			logger.Info(reqCtx).Str("command", name).Msg("👋 Session ended")
			return nil
		}
	}
}

// tick accrues savings interest before every prompt
func (h *Handler) tick(ctx context.Context) {
	interest, savings, err := h.economyUC.AccrueInterest(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Interest accrual failed")
		return
	}
	if interest > 0 {
		h.printf("Savings earned interest: %d (savings now %d)\n", interest, savings)
	}
}

func (h *Handler) readLine(prompt string) (string, bool) {
	fmt.Fprint(h.out, prompt)
	if !h.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(h.in.Text()), true
}

func (h *Handler) println(a ...interface{}) {
	fmt.Fprintln(h.out, a...)
}

func (h *Handler) printf(format string, a ...interface{}) {
	fmt.Fprintf(h.out, format, a...)
}
