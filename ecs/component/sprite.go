package component

import (
	"image"

	"github.com/Qu3tzal/sakura-no-hana/common"
)

// Sprite points at a texture by handle and a frame region within it. Pos is
// written from the hitbox by the sync system each tick; the sprite never
// holds authoritative position.
type Sprite struct {
	Texture int
	Region  image.Rectangle
	Pos     common.Vec2
}

// Bounds returns the on-screen rectangle the sprite covers.
func (s *Sprite) Bounds() common.Rect {
	return common.Rect{
		X:      s.Pos.X,
		Y:      s.Pos.Y,
		Width:  float64(s.Region.Dx()),
		Height: float64(s.Region.Dy()),
	}
}
