package component

import (
	"image"
	"time"
)

// Animation cycles a sprite through an ordered list of frame regions at a
// fixed rate, wrapping at the end.
type Animation struct {
	Frames  []image.Rectangle
	Frame   int
	Elapsed time.Duration
	FPS     int
}
