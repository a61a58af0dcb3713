package game

// Input is one tick's worth of player intent, sampled by the host before
// Advance. When both directions are held, left wins.
type Input struct {
	Left  bool
	Right bool
	Shoot bool
}
