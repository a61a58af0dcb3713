package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Qu3tzal/sakura-no-hana/assets"
	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
)

// whitePixel is the 1x1 stamp particles are drawn with, tinted per particle
// through the color scale.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// Canvas adapts one ebiten frame to the render systems' sink interface.
// Build a fresh one around the screen every Draw; it holds no state of its
// own.
type Canvas struct {
	screen   *ebiten.Image
	textures *assets.Textures
}

func NewCanvas(screen *ebiten.Image, textures *assets.Textures) *Canvas {
	return &Canvas{screen: screen, textures: textures}
}

// DrawSprite blits one frame region of a texture at the sprite's top-left
// corner.
func (c *Canvas) DrawSprite(texture int, region image.Rectangle, pos common.Vec2) {
	img := c.textures.Image(texture)
	if img == nil || region.Empty() {
		return
	}
	frame, ok := img.SubImage(region).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	c.screen.DrawImage(frame, op)
}

// DrawEmitter draws every live particle of a burst as a single tinted
// pixel, faded by its remaining lifetime.
func (c *Canvas) DrawEmitter(em *component.Emitter) {
	if em == nil {
		return
	}
	for i := range em.Particles {
		p := &em.Particles[i]
		if p.Alpha == 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.Pos.X, p.Pos.Y)
		op.ColorScale.ScaleWithColor(em.Color)
		op.ColorScale.ScaleAlpha(float32(p.Alpha) / 255)
		c.screen.DrawImage(whitePixel, op)
	}
}
