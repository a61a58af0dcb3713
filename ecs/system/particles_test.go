package system

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/ecs"
	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
)

func TestParticleSeeding(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	center := common.Vec2{X: 300, Y: 400}
	em := component.NewEmitter(color.RGBA{R: 255, A: 255}, center, rng)

	if len(em.Particles) != component.EmitterParticles {
		t.Fatalf("expected %d particles, got %d", component.EmitterParticles, len(em.Particles))
	}
	for i, p := range em.Particles {
		if p.Pos != center {
			t.Fatalf("particle %d not seeded at center: %+v", i, p.Pos)
		}
		if p.Alpha != 255 {
			t.Fatalf("particle %d not opaque: %d", i, p.Alpha)
		}
		speed := math.Hypot(p.Vel.X, p.Vel.Y)
		if speed < 20-1e-9 || speed > 69+1e-9 {
			t.Fatalf("particle %d speed %v outside 20..69", i, speed)
		}
		if p.Life < time.Second || p.Life >= 3*time.Second {
			t.Fatalf("particle %d lifetime %v outside 1s..3s", i, p.Life)
		}
	}
}

func TestParticleAging(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewParticleSystem()
	e := w.NewEntity(ecs.CategoryBurst)
	w.Emitters().Set(e, &component.Emitter{
		Particles: []component.Particle{{
			Vel:   common.Vec2{X: 10},
			Life:  1500 * time.Millisecond,
			Alpha: 255,
		}},
	})

	ps.Update(w, 500*time.Millisecond)
	p := &w.Emitters().Get(e).Particles[0]
	if p.Life != time.Second {
		t.Fatalf("expected 1s left, got %v", p.Life)
	}
	if p.Pos.X != 5 {
		t.Fatalf("expected drift to x=5, got %v", p.Pos.X)
	}
	if p.Alpha != 255 {
		t.Fatalf("a full second left still reads opaque, got %d", p.Alpha)
	}

	ps.Update(w, 500*time.Millisecond)
	if p.Alpha != 127 {
		t.Fatalf("expected alpha 127 at half a second left, got %d", p.Alpha)
	}

	ps.Update(w, 600*time.Millisecond)
	if p.Life >= 0 {
		t.Fatalf("expected expired lifetime, got %v", p.Life)
	}
	if p.Alpha != 0 {
		t.Fatalf("expired particle must clamp to transparent, got %d", p.Alpha)
	}
}

func TestParticleEmitterExpires(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewParticleSystem()
	e := w.NewEntity(ecs.CategoryBurst)
	w.Emitters().Set(e, &component.Emitter{
		Age: component.EmitterTTL - 10*time.Millisecond,
		Particles: []component.Particle{{
			Life:  time.Second,
			Alpha: 255,
		}},
	})

	ps.Update(w, 10*time.Millisecond)

	if !w.Doomed().Get(e).Marked {
		t.Fatalf("expected expired emitter marked for deletion")
	}
	if life := w.Emitters().Get(e).Particles[0].Life; life != time.Second {
		t.Fatalf("expired emitter must skip particle aging, got %v", life)
	}
}
