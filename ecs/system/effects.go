package system

import (
	"github.com/Qu3tzal/sakura-no-hana/ecs"
	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
)

// EffectsSystem turns raw collision pairs into gameplay consequences: life
// changes, deletion marks, and events. It owns the record it is handed and
// retains nothing across ticks.
type EffectsSystem struct{}

func NewEffectsSystem() *EffectsSystem {
	return &EffectsSystem{}
}

// Run applies a fixed reaction per recognized category pair. Unrecognized
// pairs are ignored. A petal/ball contact can show up under both orderings
// in the same record when the two move into each other; only the first
// occurrence bursts the ball, otherwise the score would count it twice.
func (es *EffectsSystem) Run(w *ecs.World, pairs []Pair) {
	if es == nil || w == nil {
		return
	}

	var burst map[Pair]bool
	for _, p := range pairs {
		catA, catB := w.Category(p.A), w.Category(p.B)
		switch {
		case catA == ecs.CategoryPetal && catB == ecs.CategoryBall,
			catA == ecs.CategoryBall && catB == ecs.CategoryPetal:
			petal, ball := p.A, p.B
			if catA == ecs.CategoryBall {
				petal, ball = p.B, p.A
			}
			key := Pair{A: petal, B: ball}
			if burst[key] {
				continue
			}
			if burst == nil {
				burst = make(map[Pair]bool)
			}
			burst[key] = true
			es.burstBall(w, petal, ball)

		case catA == ecs.CategoryBall && catB == ecs.CategoryBox:
			es.killBall(w, p.A)
		case catA == ecs.CategoryBox && catB == ecs.CategoryBall:
			es.killBall(w, p.B)

		case catA == ecs.CategoryBall && catB == ecs.CategoryPlayer:
			es.hitPlayer(w, p.A, p.B)
		case catA == ecs.CategoryPlayer && catB == ecs.CategoryBall:
			es.hitPlayer(w, p.B, p.A)
		}
	}
}

// burstBall destroys both the petal and the ball and announces the ball's
// color band and visual center so the world can score it and spawn a burst.
func (es *EffectsSystem) burstBall(w *ecs.World, petal, ball ecs.Entity) {
	if life := w.Lives().Get(ball); life != nil {
		life.Points = 0
	}
	if life := w.Lives().Get(petal); life != nil {
		life.Points = 0
	}
	w.MarkDoomed(ball)
	w.MarkDoomed(petal)

	sprite := w.Sprites().Get(ball)
	if sprite == nil {
		return
	}
	w.Events().Push(ecs.Event{
		Type: ecs.EventBallBurst,
		Burst: &ecs.BallBurst{
			Color:  BallColor(sprite),
			Center: sprite.Bounds().Center(),
		},
	})
}

func (es *EffectsSystem) killBall(w *ecs.World, ball ecs.Entity) {
	if life := w.Lives().Get(ball); life != nil {
		life.Points = 0
	}
	w.MarkDoomed(ball)
}

func (es *EffectsSystem) hitPlayer(w *ecs.World, ball, player ecs.Entity) {
	es.killBall(w, ball)
	if life := w.Lives().Get(player); life != nil {
		life.Points--
	}
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit})
}

// BallColor maps a ball sprite's frame offset to its color band. The ball
// sheet is four 64px columns in the same order the Color constants declare.
func BallColor(sprite *component.Sprite) ecs.Color {
	switch x := sprite.Region.Min.X; {
	case x < 64:
		return ecs.ColorRed
	case x < 128:
		return ecs.ColorBlue
	case x < 192:
		return ecs.ColorGreen
	default:
		return ecs.ColorYellow
	}
}
