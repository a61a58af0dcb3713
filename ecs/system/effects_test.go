package system

import (
	"image"
	"testing"

	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/ecs"
	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
)

func addBall(w *ecs.World, bandX int) ecs.Entity {
	e := w.NewEntity(ecs.CategoryBall)
	w.Lives().Set(e, &component.Life{Points: 1, Alive: true})
	w.Sprites().Set(e, &component.Sprite{
		Region: image.Rect(bandX, 0, bandX+64, 64),
		Pos:    common.Vec2{X: 100, Y: 200},
	})
	return e
}

func addPetal(w *ecs.World) ecs.Entity {
	e := w.NewEntity(ecs.CategoryPetal)
	w.Lives().Set(e, &component.Life{Points: 1, Alive: true})
	return e
}

func drainEvents(w *ecs.World) []ecs.Event {
	var out []ecs.Event
	for {
		evt, ok := w.Events().Poll()
		if !ok {
			return out
		}
		out = append(out, evt)
	}
}

func TestEffectsPetalBallBurst(t *testing.T) {
	w := ecs.NewWorld()
	es := NewEffectsSystem()
	petal := addPetal(w)
	ball := addBall(w, 64)

	es.Run(w, []Pair{{A: petal, B: ball}})

	if pts := w.Lives().Get(ball).Points; pts != 0 {
		t.Fatalf("expected ball life zeroed, got %d", pts)
	}
	if pts := w.Lives().Get(petal).Points; pts != 0 {
		t.Fatalf("expected petal life zeroed, got %d", pts)
	}
	if !w.Doomed().Get(ball).Marked || !w.Doomed().Get(petal).Marked {
		t.Fatalf("expected both entities marked for deletion")
	}

	events := drainEvents(w)
	if len(events) != 1 || events[0].Type != ecs.EventBallBurst {
		t.Fatalf("expected one burst event, got %v", events)
	}
	burst := events[0].Burst
	if burst == nil || burst.Color != ecs.ColorBlue {
		t.Fatalf("expected blue burst payload, got %+v", burst)
	}
	want := common.Vec2{X: 132, Y: 232}
	if burst.Center != want {
		t.Fatalf("expected burst center %+v, got %+v", want, burst.Center)
	}
}

func TestEffectsMirroredPairBurstsOnce(t *testing.T) {
	// The same contact can be recorded under both orderings when petal and
	// ball move into each other in one tick. Only one burst must come out.
	w := ecs.NewWorld()
	es := NewEffectsSystem()
	petal := addPetal(w)
	ball := addBall(w, 0)

	es.Run(w, []Pair{{A: petal, B: ball}, {A: ball, B: petal}})

	if events := drainEvents(w); len(events) != 1 {
		t.Fatalf("expected exactly one burst event for a mirrored pair, got %d", len(events))
	}
}

func TestEffectsTwoPetalsTwoBursts(t *testing.T) {
	// Distinct contacts stay distinct: two petals striking the same ball in
	// one tick both count.
	w := ecs.NewWorld()
	es := NewEffectsSystem()
	first := addPetal(w)
	second := addPetal(w)
	ball := addBall(w, 128)

	es.Run(w, []Pair{{A: first, B: ball}, {A: second, B: ball}})

	if events := drainEvents(w); len(events) != 2 {
		t.Fatalf("expected two burst events, got %d", len(events))
	}
}

func TestEffectsBallIntoWall(t *testing.T) {
	cases := []struct {
		name    string
		swapped bool
	}{
		{"ball_first", false},
		{"wall_first", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			es := NewEffectsSystem()
			ball := addBall(w, 0)
			wall := w.NewEntity(ecs.CategoryBox)

			p := Pair{A: ball, B: wall}
			if c.swapped {
				p = Pair{A: wall, B: ball}
			}
			es.Run(w, []Pair{p})

			if pts := w.Lives().Get(ball).Points; pts != 0 {
				t.Fatalf("expected ball life zeroed, got %d", pts)
			}
			if !w.Doomed().Get(ball).Marked {
				t.Fatalf("expected ball marked for deletion")
			}
			if events := drainEvents(w); len(events) != 0 {
				t.Fatalf("wall hits emit no events, got %v", events)
			}
		})
	}
}

func TestEffectsBallIntoPlayer(t *testing.T) {
	w := ecs.NewWorld()
	es := NewEffectsSystem()
	ball := addBall(w, 0)
	player := w.NewEntity(ecs.CategoryPlayer)
	w.Lives().Set(player, &component.Life{Points: 3, Alive: true})

	es.Run(w, []Pair{{A: ball, B: player}})

	if pts := w.Lives().Get(player).Points; pts != 2 {
		t.Fatalf("expected player life 2, got %d", pts)
	}
	if !w.Doomed().Get(ball).Marked {
		t.Fatalf("expected ball marked for deletion")
	}
	events := drainEvents(w)
	if len(events) != 1 || events[0].Type != ecs.EventPlayerHit {
		t.Fatalf("expected one player-hit event, got %v", events)
	}
}

func TestEffectsUnrecognizedPairsIgnored(t *testing.T) {
	w := ecs.NewWorld()
	es := NewEffectsSystem()
	player := w.NewEntity(ecs.CategoryPlayer)
	w.Lives().Set(player, &component.Life{Points: 3, Alive: true})
	wall := w.NewEntity(ecs.CategoryBox)

	es.Run(w, []Pair{{A: player, B: wall}, {A: wall, B: player}})

	if pts := w.Lives().Get(player).Points; pts != 3 {
		t.Fatalf("expected player life untouched, got %d", pts)
	}
	if events := drainEvents(w); len(events) != 0 {
		t.Fatalf("expected no events, got %v", events)
	}
}

func TestBallColorBands(t *testing.T) {
	cases := []struct {
		name string
		x    int
		want ecs.Color
	}{
		{"first_band", 0, ecs.ColorRed},
		{"second_band", 64, ecs.ColorBlue},
		{"third_band", 128, ecs.ColorGreen},
		{"fourth_band", 192, ecs.ColorYellow},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sprite := &component.Sprite{Region: image.Rect(c.x, 0, c.x+64, 64)}
			if got := BallColor(sprite); got != c.want {
				t.Fatalf("expected %v for offset %d, got %v", c.want, c.x, got)
			}
		})
	}
}
