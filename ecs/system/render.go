package system

import (
	"image"
	"time"

	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/ecs"
	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
)

// Canvas is the presentation sink for the render systems. The systems hand
// over final per-frame state; drawing order within a system is registration
// order and the canvas does the actual blitting.
type Canvas interface {
	DrawSprite(texture int, region image.Rectangle, pos common.Vec2)
	DrawEmitter(em *component.Emitter)
}

// SpriteRenderSystem submits every sprite to the canvas. Read-only; it
// mutates no component state.
type SpriteRenderSystem struct {
	canvas Canvas
}

func NewSpriteRenderSystem(canvas Canvas) *SpriteRenderSystem {
	return &SpriteRenderSystem{canvas: canvas}
}

func (rs *SpriteRenderSystem) Update(w *ecs.World, dt time.Duration) {
	if rs == nil || rs.canvas == nil || w == nil {
		return
	}
	for _, e := range w.Entities() {
		sprite := w.Sprites().Get(e)
		if sprite == nil {
			continue
		}
		rs.canvas.DrawSprite(sprite.Texture, sprite.Region, sprite.Pos)
	}
}

// ParticleRenderSystem submits every live emitter to the canvas. The caller
// runs it before the sprite pass so bursts glow behind the playfield.
type ParticleRenderSystem struct {
	canvas Canvas
}

func NewParticleRenderSystem(canvas Canvas) *ParticleRenderSystem {
	return &ParticleRenderSystem{canvas: canvas}
}

func (rs *ParticleRenderSystem) Update(w *ecs.World, dt time.Duration) {
	if rs == nil || rs.canvas == nil || w == nil {
		return
	}
	for _, e := range w.Entities() {
		em := w.Emitters().Get(e)
		if em == nil {
			continue
		}
		rs.canvas.DrawEmitter(em)
	}
}
