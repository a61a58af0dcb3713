package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Qu3tzal/sakura-no-hana/common"
)

// inputGuard is how long the results screen ignores the keyboard, so keys
// mashed during the last seconds of a run do not skip it.
const inputGuard = time.Second

// ScoreScreen shows the final score until the player keys back to the menu.
type ScoreScreen struct {
	score   int
	elapsed time.Duration
	copied  bool

	// copyFn puts the score on the clipboard and reports success. Nil when
	// the clipboard is unavailable.
	copyFn func(score int) bool

	scratch []ebiten.Key
}

func NewScoreScreen(score int, copyFn func(int) bool) *ScoreScreen {
	return &ScoreScreen{score: score, copyFn: copyFn}
}

// Update advances the guard timer and reads the keyboard. It returns true
// once the player asks to go back to the menu.
func (s *ScoreScreen) Update(dt time.Duration) bool {
	s.elapsed += dt

	s.scratch = inpututil.AppendJustPressedKeys(s.scratch[:0])
	if s.elapsed <= inputGuard || len(s.scratch) == 0 {
		return false
	}

	for _, k := range s.scratch {
		if k == ebiten.KeyC && s.copyFn != nil {
			s.copied = s.copyFn(s.score)
			return false
		}
	}
	return true
}

func (s *ScoreScreen) Draw(screen *ebiten.Image) {
	str := fmt.Sprintf("Score: %d\nPress any key to go back to the menu.", s.score)
	switch {
	case s.copied:
		str += "\nScore copied to the clipboard."
	case s.copyFn != nil:
		str += "\nPress C to copy the score."
	}

	const size = 30
	w, h := textBounds(str, size)
	drawText(screen,
		str,
		(common.FieldWidth-w)/2,
		(common.FieldHeight-h)/2,
		size,
		color.Black,
	)
}
