package system

import (
	"testing"
	"time"

	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/ecs"
	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
)

// tick makes displacement math round: velocity 100 moves 10 units.
const tick = 100 * time.Millisecond

func addBody(w *ecs.World, cat ecs.Category, rect common.Rect, blocking bool) ecs.Entity {
	e := w.NewEntity(cat)
	w.Hitboxes().Set(e, &component.Hitbox{Rect: rect, Blocking: blocking})
	return e
}

func addMover(w *ecs.World, cat ecs.Category, rect common.Rect, vel common.Vec2, blocking bool) ecs.Entity {
	e := addBody(w, cat, rect, blocking)
	w.Movements().Set(e, &component.Movement{Velocity: vel})
	return e
}

func TestPhysicsContactClamp(t *testing.T) {
	cases := []struct {
		name     string
		mover    common.Rect
		vel      common.Vec2
		obstacle common.Rect
		wantPos  common.Vec2
		wantVel  common.Vec2
	}{
		{
			name:     "falling_onto_floor",
			mover:    common.Rect{X: 0, Y: 0, Width: 10, Height: 10},
			vel:      common.Vec2{Y: 100},
			obstacle: common.Rect{X: 0, Y: 15, Width: 50, Height: 10},
			wantPos:  common.Vec2{X: 0, Y: 5},
			wantVel:  common.Vec2{Y: 50},
		},
		{
			name:     "rising_into_ceiling",
			mover:    common.Rect{X: 0, Y: 20, Width: 10, Height: 10},
			vel:      common.Vec2{Y: -100},
			obstacle: common.Rect{X: 0, Y: 0, Width: 50, Height: 12},
			wantPos:  common.Vec2{X: 0, Y: 12},
			wantVel:  common.Vec2{Y: -80},
		},
		{
			name:     "moving_right_into_wall",
			mover:    common.Rect{X: 0, Y: 0, Width: 10, Height: 10},
			vel:      common.Vec2{X: 100},
			obstacle: common.Rect{X: 14, Y: 0, Width: 10, Height: 12},
			wantPos:  common.Vec2{X: 4, Y: 0},
			wantVel:  common.Vec2{X: 40},
		},
		{
			name:     "moving_left_into_wall",
			mover:    common.Rect{X: 20, Y: 0, Width: 10, Height: 10},
			vel:      common.Vec2{X: -100},
			obstacle: common.Rect{X: 0, Y: 0, Width: 12, Height: 12},
			wantPos:  common.Vec2{X: 12, Y: 0},
			wantVel:  common.Vec2{X: -80},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			ps := NewPhysicsSystem()
			mover := addMover(w, ecs.CategoryBall, c.mover, c.vel, true)
			obstacle := addBody(w, ecs.CategoryBox, c.obstacle, true)

			ps.Update(w, tick)

			got := w.Hitboxes().Get(mover).Rect
			if got.X != c.wantPos.X || got.Y != c.wantPos.Y {
				t.Fatalf("expected mover at (%v, %v), got (%v, %v)", c.wantPos.X, c.wantPos.Y, got.X, got.Y)
			}
			vel := w.Movements().Get(mover).Velocity
			if vel != c.wantVel {
				t.Fatalf("expected velocity %+v, got %+v", c.wantVel, vel)
			}
			pairs := ps.TakeCollisions()
			if len(pairs) != 1 || pairs[0] != (Pair{A: mover, B: obstacle}) {
				t.Fatalf("expected exactly one pair {mover, obstacle}, got %v", pairs)
			}
		})
	}
}

func TestPhysicsNonBlockingOverlapRecordsWithoutClamp(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem()
	petal := addMover(w, ecs.CategoryPetal, common.Rect{X: 0, Y: 20, Width: 10, Height: 10}, common.Vec2{Y: -100}, false)
	ball := addBody(w, ecs.CategoryBall, common.Rect{X: 0, Y: 0, Width: 10, Height: 12}, false)

	ps.Update(w, tick)

	if vel := w.Movements().Get(petal).Velocity; vel != (common.Vec2{Y: -100}) {
		t.Fatalf("non-blocking contact must not touch velocity, got %+v", vel)
	}
	if got := w.Hitboxes().Get(petal).Rect.Y; got != 10 {
		t.Fatalf("expected petal to move the full step to y=10, got %v", got)
	}
	pairs := ps.TakeCollisions()
	if len(pairs) != 1 || pairs[0] != (Pair{A: petal, B: ball}) {
		t.Fatalf("expected the overlap to be recorded, got %v", pairs)
	}
}

func TestPhysicsNoContactKeepsVelocity(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem()
	mover := addMover(w, ecs.CategoryBall, common.Rect{X: 0, Y: 0, Width: 10, Height: 10}, common.Vec2{Y: 100}, true)
	addBody(w, ecs.CategoryBox, common.Rect{X: 0, Y: 100, Width: 10, Height: 10}, true)

	ps.Update(w, tick)

	if vel := w.Movements().Get(mover).Velocity; vel != (common.Vec2{Y: 100}) {
		t.Fatalf("write-back without contact must restore the same velocity, got %+v", vel)
	}
	if got := w.Hitboxes().Get(mover).Rect.Y; got != 10 {
		t.Fatalf("expected full step to y=10, got %v", got)
	}
	if pairs := ps.TakeCollisions(); len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %v", pairs)
	}
}

func TestPhysicsInteriorOverlapPassesThrough(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem()
	mover := addMover(w, ecs.CategoryBall, common.Rect{X: 0, Y: 0, Width: 10, Height: 10}, common.Vec2{X: 50}, true)
	inside := addBody(w, ecs.CategoryBox, common.Rect{X: 5, Y: 0, Width: 10, Height: 10}, true)

	ps.Update(w, tick)

	// Already-overlapping rectangles classify to no side: the contact is
	// recorded but the mover keeps going.
	pairs := ps.TakeCollisions()
	if len(pairs) != 1 || pairs[0] != (Pair{A: mover, B: inside}) {
		t.Fatalf("expected interior contact to be recorded, got %v", pairs)
	}
	if got := w.Hitboxes().Get(mover).Rect.X; got != 5 {
		t.Fatalf("expected mover to keep moving to x=5, got %v", got)
	}
	if vel := w.Movements().Get(mover).Velocity; vel != (common.Vec2{X: 50}) {
		t.Fatalf("interior contact must not change velocity, got %+v", vel)
	}
}

func TestPhysicsHitboxOnlyNeverInitiates(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem()
	addBody(w, ecs.CategoryBox, common.Rect{X: 0, Y: 0, Width: 10, Height: 10}, true)
	addBody(w, ecs.CategoryBox, common.Rect{X: 5, Y: 0, Width: 10, Height: 10}, true)

	ps.Update(w, tick)

	if pairs := ps.TakeCollisions(); len(pairs) != 0 {
		t.Fatalf("entities without movement must not produce pairs, got %v", pairs)
	}
}

func TestPhysicsCorrectionOrderDependence(t *testing.T) {
	// A diagonal mover near two blockers ends up in different places
	// depending on registration order, because each correction overwrites
	// the velocity seen by the next pair.
	moverRect := common.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	vel := common.Vec2{X: 100, Y: 100}
	side := common.Rect{X: 14, Y: 0, Width: 10, Height: 12}
	diag := common.Rect{X: 16, Y: 14, Width: 10, Height: 10}

	cases := []struct {
		name      string
		obstacles []common.Rect
		wantPos   common.Vec2
		wantPairs int
	}{
		{"side_first", []common.Rect{side, diag}, common.Vec2{X: 4, Y: 10}, 1},
		{"diag_first", []common.Rect{diag, side}, common.Vec2{X: 4, Y: 4}, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			ps := NewPhysicsSystem()
			mover := addMover(w, ecs.CategoryBall, moverRect, vel, true)
			for _, r := range c.obstacles {
				addBody(w, ecs.CategoryBox, r, true)
			}

			ps.Update(w, tick)

			got := w.Hitboxes().Get(mover).Rect
			if got.X != c.wantPos.X || got.Y != c.wantPos.Y {
				t.Fatalf("expected mover at (%v, %v), got (%v, %v)", c.wantPos.X, c.wantPos.Y, got.X, got.Y)
			}
			if pairs := ps.TakeCollisions(); len(pairs) != c.wantPairs {
				t.Fatalf("expected %d pairs, got %v", c.wantPairs, pairs)
			}
		})
	}
}

func TestPhysicsTakeCollisionsTransfersOwnership(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem()
	addMover(w, ecs.CategoryBall, common.Rect{X: 0, Y: 0, Width: 10, Height: 10}, common.Vec2{Y: 100}, true)
	addBody(w, ecs.CategoryBox, common.Rect{X: 0, Y: 15, Width: 50, Height: 10}, true)

	ps.Update(w, tick)
	if pairs := ps.TakeCollisions(); len(pairs) != 1 {
		t.Fatalf("expected one pair on first take, got %v", pairs)
	}
	if pairs := ps.TakeCollisions(); pairs != nil {
		t.Fatalf("second take must return nil, got %v", pairs)
	}

	// The mover now rests on the floor; the next tick records the contact
	// again and the record is available again.
	ps.Update(w, tick)
	if pairs := ps.TakeCollisions(); len(pairs) != 1 {
		t.Fatalf("expected the record to refill on the next update, got %v", pairs)
	}
}

func TestPhysicsZeroStepIsInert(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem()
	mover := addMover(w, ecs.CategoryBall, common.Rect{X: 3, Y: 7, Width: 10, Height: 10}, common.Vec2{X: 100}, true)

	ps.Update(w, 0)

	got := w.Hitboxes().Get(mover).Rect
	if got.X != 3 || got.Y != 7 {
		t.Fatalf("zero step must not move anything, got (%v, %v)", got.X, got.Y)
	}
	if pairs := ps.TakeCollisions(); len(pairs) != 0 {
		t.Fatalf("zero step must not record pairs, got %v", pairs)
	}
}
