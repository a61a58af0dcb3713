package system

import (
	"time"

	"github.com/Qu3tzal/sakura-no-hana/ecs"
)

// Pair records one collision found this tick: A is the moving entity whose
// projected hitbox touched B's current one. Records are only meaningful for
// the tick that produced them.
type Pair struct {
	A, B ecs.Entity
}

// PhysicsSystem moves every entity that has both a hitbox and a movement,
// clamping the displacement axis to the exact gap on blocking contact. It is
// a naive all-pairs check; entity counts here stay small.
//
// Resolution is order dependent: each blocking contact overwrites A's
// velocity before the next pair is examined, so when A touches several
// blockers in one tick the last pair in registration order wins. That is
// long-standing behavior and the iteration order must not change.
type PhysicsSystem struct {
	pairs []Pair
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt time.Duration) {
	if ps == nil || w == nil {
		return
	}
	ps.pairs = ps.pairs[:0]
	step := dt.Seconds()
	if step <= 0 {
		return
	}

	entities := w.Entities()
	for _, a := range entities {
		hitbox := w.Hitboxes().Get(a)
		movement := w.Movements().Get(a)
		if hitbox == nil || movement == nil {
			continue
		}

		for _, b := range entities {
			if a == b {
				continue
			}
			other := w.Hitboxes().Get(b)
			if other == nil {
				continue
			}

			// Displacement from the current velocity, which may already
			// carry corrections from earlier pairs this tick.
			disp := movement.Velocity.Scale(step)
			projected := hitbox.Rect.Moved(disp.X, disp.Y)

			if projected.Intersects(other.Rect) {
				// Classify the contact side from the pre-move rectangles.
				switch {
				case hitbox.Rect.Bottom() <= other.Rect.Y:
					// a was above b: clamp the fall to the exact gap.
					disp.Y = other.Rect.Y - hitbox.Rect.Bottom()
				case hitbox.Rect.Y >= other.Rect.Bottom():
					disp.Y = other.Rect.Bottom() - hitbox.Rect.Y
				case hitbox.Rect.Right() <= other.Rect.X:
					disp.X = other.Rect.X - hitbox.Rect.Right()
				case hitbox.Rect.X >= other.Rect.Right():
					disp.X = other.Rect.Right() - hitbox.Rect.X
				default:
					// Interior contact: the rectangles overlapped before the
					// move. Deliberately left unresolved.
				}

				ps.pairs = append(ps.pairs, Pair{A: a, B: b})
			}

			// The write-back runs for every blocking pair, contact or not;
			// without a contact it restores the same velocity.
			if hitbox.Blocking && other.Blocking {
				movement.Velocity = disp.Scale(1 / step)
			}
		}

		final := movement.Velocity.Scale(step)
		hitbox.Rect = hitbox.Rect.Moved(final.X, final.Y)
	}
}

// TakeCollisions hands over this tick's collision record and clears it. The
// record is consumed exactly once; calling again before the next Update
// returns nil.
func (ps *PhysicsSystem) TakeCollisions() []Pair {
	if ps == nil {
		return nil
	}
	pairs := ps.pairs
	ps.pairs = nil
	return pairs
}
