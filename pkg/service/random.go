package service

// Random is the source of every random draw in the game.
// *math/rand.Rand satisfies it; tests substitute a fixed sequence.
type Random interface {
	Intn(n int) int
	Float64() float64
}
