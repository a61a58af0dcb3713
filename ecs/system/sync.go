package system

import (
	"time"

	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/ecs"
)

// SyncSystem copies hitbox positions onto sprites after physics has moved
// them. The hitbox is the only authority on position; sprites just follow.
type SyncSystem struct{}

func NewSyncSystem() *SyncSystem {
	return &SyncSystem{}
}

func (ss *SyncSystem) Update(w *ecs.World, dt time.Duration) {
	if ss == nil || w == nil {
		return
	}
	for _, e := range w.Entities() {
		hitbox := w.Hitboxes().Get(e)
		sprite := w.Sprites().Get(e)
		if hitbox == nil || sprite == nil {
			continue
		}
		sprite.Pos = common.Vec2{X: hitbox.Rect.X, Y: hitbox.Rect.Y}
	}
}
