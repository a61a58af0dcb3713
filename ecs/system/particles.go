package system

import (
	"time"

	"github.com/Qu3tzal/sakura-no-hana/ecs"
	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
)

// ParticleSystem ages burst emitters and their particles. An emitter past
// its time budget is marked for deletion and skipped; live particles drift
// by their velocity and fade out over their last second.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (ps *ParticleSystem) Update(w *ecs.World, dt time.Duration) {
	if ps == nil || w == nil {
		return
	}
	step := dt.Seconds()
	for _, e := range w.Entities() {
		em := w.Emitters().Get(e)
		if em == nil {
			continue
		}

		em.Age += dt
		if em.Age >= component.EmitterTTL {
			w.MarkDoomed(e)
			continue
		}

		for i := range em.Particles {
			p := &em.Particles[i]
			p.Life -= dt
			p.Pos = p.Pos.Add(p.Vel.Scale(step))
			p.Alpha = lifeAlpha(p.Life)
		}
	}
}

// lifeAlpha converts remaining lifetime to opacity: opaque at one second or
// more left, fading linearly to transparent. Both ends clamp so an expired
// particle never wraps back to visible.
func lifeAlpha(life time.Duration) uint8 {
	a := life.Seconds() * 255
	if a <= 0 {
		return 0
	}
	if a >= 255 {
		return 255
	}
	return uint8(a)
}
