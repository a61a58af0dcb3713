package ecs

import (
	"time"

	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
)

// System transforms world state once per tick.
type System interface {
	Update(w *World, dt time.Duration)
}

// remover lets the deletion sweep clear an entity from every store without
// knowing component types.
type remover interface {
	Remove(e Entity)
}

// World owns entities, their components, and the event queue. Entities are
// iterated in registration order; collision resolution depends on that order
// and it must not change.
type World struct {
	entities entityStore
	live     []Entity
	cats     map[Entity]Category

	hitboxes   *Store[component.Hitbox]
	movements  *Store[component.Movement]
	sprites    *Store[component.Sprite]
	animations *Store[component.Animation]
	lives      *Store[component.Life]
	emitters   *Store[component.Emitter]
	doomed     *Store[component.Doomed]
	stores     []remover

	events EventQueue
}

// NewWorld creates an empty world with every component store ready.
func NewWorld() *World {
	w := &World{
		cats:       make(map[Entity]Category),
		hitboxes:   &Store[component.Hitbox]{},
		movements:  &Store[component.Movement]{},
		sprites:    &Store[component.Sprite]{},
		animations: &Store[component.Animation]{},
		lives:      &Store[component.Life]{},
		emitters:   &Store[component.Emitter]{},
		doomed:     &Store[component.Doomed]{},
	}
	w.stores = []remover{
		w.hitboxes,
		w.movements,
		w.sprites,
		w.animations,
		w.lives,
		w.emitters,
		w.doomed,
	}
	return w
}

// NewEntity allocates an entity with the given category and a fresh deletion
// marker set to false. All entities come through here.
func (w *World) NewEntity(cat Category) Entity {
	e := w.entities.create()
	w.live = append(w.live, e)
	w.cats[e] = cat
	w.doomed.Set(e, &component.Doomed{})
	return e
}

// Entities returns the live entities in registration order. Callers must not
// mutate the slice or hold it across a Sweep.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.live
}

// IsAlive reports whether a handle still refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Category returns the entity's gameplay category, or CategoryNone for dead
// or unknown handles.
func (w *World) Category(e Entity) Category {
	if w == nil {
		return CategoryNone
	}
	return w.cats[e]
}

// MarkDoomed flags an entity for removal at the end of the tick. The entity
// stays fully valid until Sweep runs.
func (w *World) MarkDoomed(e Entity) {
	if w == nil {
		return
	}
	if d := w.doomed.Get(e); d != nil {
		d.Marked = true
	}
}

// Sweep removes every entity whose deletion marker is set, clearing its
// components from all stores. Returns the number of entities removed. Must
// only run between ticks; handles to swept entities are dead afterwards.
func (w *World) Sweep() int {
	if w == nil {
		return 0
	}
	kept := w.live[:0]
	removed := 0
	for _, e := range w.live {
		d := w.doomed.Get(e)
		if d == nil || !d.Marked {
			kept = append(kept, e)
			continue
		}
		for _, s := range w.stores {
			s.Remove(e)
		}
		delete(w.cats, e)
		w.entities.destroy(e)
		removed++
	}
	w.live = kept
	return removed
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
