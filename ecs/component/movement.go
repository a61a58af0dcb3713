package component

import "github.com/Qu3tzal/sakura-no-hana/common"

// Movement is an entity's velocity in px/s. The physics system applies it to
// the hitbox and corrects it on blocking contact.
type Movement struct {
	Velocity common.Vec2
}
