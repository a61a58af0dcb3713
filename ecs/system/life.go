package system

import (
	"time"

	"github.com/Qu3tzal/sakura-no-hana/ecs"
)

// LifeSystem flips entities with no life points left to dead and announces
// it. The alive flag makes the death event fire exactly once even when the
// entity lingers at zero points for more ticks.
type LifeSystem struct{}

func NewLifeSystem() *LifeSystem {
	return &LifeSystem{}
}

func (ls *LifeSystem) Update(w *ecs.World, dt time.Duration) {
	if ls == nil || w == nil {
		return
	}
	for _, e := range w.Entities() {
		life := w.Lives().Get(e)
		if life == nil {
			continue
		}
		if life.Points <= 0 && life.Alive {
			life.Alive = false
			w.Events().Push(ecs.Event{Type: ecs.EventDeath, Who: e})
		}
	}
}
