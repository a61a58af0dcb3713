package game

import (
	"image"
	"math/rand"
	"time"

	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/ecs"
	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
	"github.com/Qu3tzal/sakura-no-hana/ecs/system"
)

// Backdrop is the menu's ambient world: the wall frame pulsing through its
// animation, with an occasional color burst. No player, no physics, no
// score; the tiles are pure scenery and carry no hitboxes.
type Backdrop struct {
	world      *ecs.World
	animations *system.AnimationSystem
	particles  *system.ParticleSystem
	rng        *rand.Rand

	sinceBurst time.Duration
	nextBurst  time.Duration
}

func NewBackdrop(rng *rand.Rand) *Backdrop {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := &Backdrop{
		world:      ecs.NewWorld(),
		animations: system.NewAnimationSystem(),
		particles:  system.NewParticleSystem(),
		rng:        rng,
	}
	buildBackdropFrame(b.world)
	b.nextBurst = b.rollBurstDelay()
	return b
}

// buildBackdropFrame rings the whole field with scenery tiles. Unlike the
// play field the top edge is closed; nothing has to fall in here.
func buildBackdropFrame(w *ecs.World) {
	for i := 0; i < 12; i++ {
		newBackdropBox(w, 0, float64(common.TileSize*i))
	}
	for i := 1; i < 11; i++ {
		newBackdropBox(w, float64(common.TileSize*i), 704)
	}
	for i := 0; i < 12; i++ {
		newBackdropBox(w, 704, float64(common.TileSize*i))
	}
	for i := 1; i < 11; i++ {
		newBackdropBox(w, float64(common.TileSize*i), 0)
	}
}

func newBackdropBox(w *ecs.World, x, y float64) ecs.Entity {
	e := w.NewEntity(ecs.CategoryBox)
	w.Sprites().Set(e, &component.Sprite{
		Texture: TextureBox,
		Region:  image.Rect(0, 0, common.TileSize, common.TileSize),
		Pos:     common.Vec2{X: x, Y: y},
	})
	w.Animations().Set(e, &component.Animation{
		Frames: boxFrameList(),
		FPS:    boxFPS,
	})
	return e
}

func (b *Backdrop) rollBurstDelay() time.Duration {
	return 2*time.Second + time.Duration(b.rng.Intn(2500))*time.Millisecond
}

// Step advances the scenery by one tick.
func (b *Backdrop) Step(dt time.Duration) {
	if b == nil {
		return
	}
	if dt > maxStep {
		dt = maxStep
	}

	b.sinceBurst += dt
	if b.sinceBurst > b.nextBurst {
		c := ecs.Color(b.rng.Intn(4))
		center := common.Vec2{
			X: float64(b.rng.Intn(common.FieldWidth-2*common.TileSize) + common.TileSize),
			Y: float64(b.rng.Intn(common.FieldHeight-2*common.TileSize) + common.TileSize),
		}
		NewBurst(b.world, c, center, b.rng)
		b.sinceBurst = 0
		b.nextBurst = b.rollBurstDelay()
	}

	b.animations.Update(b.world, dt)
	b.particles.Update(b.world, dt)
	b.world.Sweep()
}

// World exposes the scenery world for rendering.
func (b *Backdrop) World() *ecs.World {
	return b.world
}
