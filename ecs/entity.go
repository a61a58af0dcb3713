package ecs

import "strconv"

// Entity is a generational handle. ID identifies the arena slot, Gen guards
// against slot reuse: a handle whose generation no longer matches the slot is
// dead and every lookup through it misses.
type Entity struct {
	ID  int
	Gen int
}

// Valid reports whether the handle was ever issued. It does not mean the
// entity is still alive; see World.IsAlive.
func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "v" + strconv.Itoa(e.Gen)
}

// Category tags an entity for gameplay dispatch. It is the entity's type as
// far as collision reactions are concerned.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryBall
	CategoryPetal
	CategoryBox
	CategoryBurst
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryBall:
		return "ball"
	case CategoryPetal:
		return "petal"
	case CategoryBox:
		return "box"
	case CategoryBurst:
		return "burst"
	default:
		return "none"
	}
}
