package system

import (
	"time"

	"github.com/Qu3tzal/sakura-no-hana/ecs"
)

// AnimationSystem advances sheet animations and writes the current frame
// onto the sprite. The frame hold is strict: a frame is shown for more than
// 1/fps, never less, and the sprite region only changes when a new frame is
// reached.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (as *AnimationSystem) Update(w *ecs.World, dt time.Duration) {
	if as == nil || w == nil {
		return
	}
	for _, e := range w.Entities() {
		sprite := w.Sprites().Get(e)
		anim := w.Animations().Get(e)
		if sprite == nil || anim == nil {
			continue
		}
		if anim.FPS <= 0 || len(anim.Frames) == 0 {
			continue
		}

		anim.Elapsed += dt
		if anim.Elapsed <= time.Second/time.Duration(anim.FPS) {
			continue
		}
		anim.Elapsed = 0

		anim.Frame++
		if anim.Frame >= len(anim.Frames) {
			anim.Frame = 0
		}
		sprite.Region = anim.Frames[anim.Frame]
	}
}
