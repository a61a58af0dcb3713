package ecs

import "github.com/Qu3tzal/sakura-no-hana/ecs/component"

// The component table is closed: one named store per capability. Presence
// checks go through Store.Has and lookups soft-fail with nil, so systems
// guard with a nil check instead of a type assertion.

// Hitboxes returns the hitbox storage.
func (w *World) Hitboxes() *Store[component.Hitbox] {
	if w == nil {
		return nil
	}
	return w.hitboxes
}

// Movements returns the movement storage.
func (w *World) Movements() *Store[component.Movement] {
	if w == nil {
		return nil
	}
	return w.movements
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *Store[component.Sprite] {
	if w == nil {
		return nil
	}
	return w.sprites
}

// Animations returns the animation storage.
func (w *World) Animations() *Store[component.Animation] {
	if w == nil {
		return nil
	}
	return w.animations
}

// Lives returns the life storage.
func (w *World) Lives() *Store[component.Life] {
	if w == nil {
		return nil
	}
	return w.lives
}

// Emitters returns the particle emitter storage.
func (w *World) Emitters() *Store[component.Emitter] {
	if w == nil {
		return nil
	}
	return w.emitters
}

// Doomed returns the deletion marker storage.
func (w *World) Doomed() *Store[component.Doomed] {
	if w == nil {
		return nil
	}
	return w.doomed
}
