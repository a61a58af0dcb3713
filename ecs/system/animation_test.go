package system

import (
	"image"
	"testing"
	"time"

	"github.com/Qu3tzal/sakura-no-hana/ecs"
	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
)

func addAnimated(w *ecs.World, fps int, frames ...image.Rectangle) ecs.Entity {
	e := w.NewEntity(ecs.CategoryBox)
	w.Sprites().Set(e, &component.Sprite{Region: frames[0]})
	w.Animations().Set(e, &component.Animation{Frames: frames, FPS: fps})
	return e
}

func TestAnimationHoldsFrameForStrictDuration(t *testing.T) {
	frames := []image.Rectangle{
		image.Rect(0, 0, 32, 32),
		image.Rect(32, 0, 64, 32),
	}

	w := ecs.NewWorld()
	as := NewAnimationSystem()
	e := addAnimated(w, 10, frames...) // 100ms per frame

	// Exactly the hold time is not enough; the comparison is strict.
	as.Update(w, 100*time.Millisecond)
	if got := w.Sprites().Get(e).Region; got != frames[0] {
		t.Fatalf("expected frame 0 still showing, got %v", got)
	}

	as.Update(w, time.Millisecond)
	if got := w.Sprites().Get(e).Region; got != frames[1] {
		t.Fatalf("expected frame 1 after exceeding the hold, got %v", got)
	}
	if anim := w.Animations().Get(e); anim.Elapsed != 0 {
		t.Fatalf("expected elapsed reset to zero, got %v", anim.Elapsed)
	}
}

func TestAnimationWrapsToFirstFrame(t *testing.T) {
	frames := []image.Rectangle{
		image.Rect(0, 0, 32, 32),
		image.Rect(32, 0, 64, 32),
		image.Rect(64, 0, 96, 32),
	}

	w := ecs.NewWorld()
	as := NewAnimationSystem()
	e := addAnimated(w, 10, frames...)
	w.Animations().Get(e).Frame = len(frames) - 1

	as.Update(w, 101*time.Millisecond)

	if anim := w.Animations().Get(e); anim.Frame != 0 {
		t.Fatalf("expected wrap to frame 0, got %d", anim.Frame)
	}
	if got := w.Sprites().Get(e).Region; got != frames[0] {
		t.Fatalf("expected sprite region back on frame 0, got %v", got)
	}
}

func TestAnimationLeavesSpriteAloneBetweenFrames(t *testing.T) {
	frames := []image.Rectangle{
		image.Rect(0, 0, 32, 32),
		image.Rect(32, 0, 64, 32),
	}

	w := ecs.NewWorld()
	as := NewAnimationSystem()
	e := addAnimated(w, 10, frames...)

	// Something else repositions the region mid-hold; the system must not
	// rewrite it until the next frame boundary.
	w.Sprites().Get(e).Region = image.Rect(99, 99, 131, 131)
	as.Update(w, 50*time.Millisecond)

	if got := w.Sprites().Get(e).Region; got != image.Rect(99, 99, 131, 131) {
		t.Fatalf("expected region untouched between frames, got %v", got)
	}
}

func TestAnimationIgnoresDegenerateConfigs(t *testing.T) {
	w := ecs.NewWorld()
	as := NewAnimationSystem()

	noFPS := w.NewEntity(ecs.CategoryBox)
	w.Sprites().Set(noFPS, &component.Sprite{})
	w.Animations().Set(noFPS, &component.Animation{Frames: []image.Rectangle{image.Rect(0, 0, 1, 1)}})

	noFrames := w.NewEntity(ecs.CategoryBox)
	w.Sprites().Set(noFrames, &component.Sprite{})
	w.Animations().Set(noFrames, &component.Animation{FPS: 24})

	as.Update(w, time.Second)

	if anim := w.Animations().Get(noFPS); anim.Frame != 0 || anim.Elapsed != 0 {
		t.Fatalf("zero fps animation must not advance, got %+v", anim)
	}
	if anim := w.Animations().Get(noFrames); anim.Frame != 0 {
		t.Fatalf("empty animation must not advance, got %+v", anim)
	}
}
