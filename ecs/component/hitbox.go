package component

import "github.com/Qu3tzal/sakura-no-hana/common"

// Hitbox is an entity's collision rectangle and the single source of truth
// for its position. Non-blocking hitboxes still register collisions but never
// take part in velocity correction.
type Hitbox struct {
	Rect     common.Rect
	Blocking bool
}
