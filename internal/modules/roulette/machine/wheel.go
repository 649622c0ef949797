package machine

import (
	"github.com/frankieli/roulette/internal/modules/roulette/domain"
	"github.com/frankieli/roulette/pkg/service"
)

// RandomWheel draws pockets uniformly from an injected random source
type RandomWheel struct {
	rnd service.Random
}

// NewRandomWheel creates a wheel backed by rnd
func NewRandomWheel(rnd service.Random) *RandomWheel {
	return &RandomWheel{rnd: rnd}
}

// NextOutcome returns a pocket in [0,36]
func (w *RandomWheel) NextOutcome() domain.Outcome {
	return domain.MinOutcome + w.rnd.Intn(domain.Pockets)
}
