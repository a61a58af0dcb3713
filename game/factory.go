package game

import (
	"image"
	"math/rand"

	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/ecs"
	"github.com/Qu3tzal/sakura-no-hana/ecs/component"
)

// Texture handles shared with the asset builder. Sprites carry these and the
// host's canvas resolves them to real images.
const (
	TextureBox = iota
	TexturePetal
	TexturePlayer
	TextureBalls
	TextureHeart
	TextureSugoi
)

// Wall tile animation: two rows of 18 frames on the box sheet.
const (
	boxFrames       = 36
	boxFramesPerRow = 18
	boxFPS          = 24
)

func boxFrameList() []image.Rectangle {
	frames := make([]image.Rectangle, 0, boxFrames)
	for row := 0; row < boxFrames/boxFramesPerRow; row++ {
		for i := 0; i < boxFramesPerRow; i++ {
			x, y := i*common.TileSize, row*common.TileSize
			frames = append(frames, image.Rect(x, y, x+common.TileSize, y+common.TileSize))
		}
	}
	return frames
}

// ballRegion returns the ball sheet band of a color.
func ballRegion(c ecs.Color) image.Rectangle {
	x := int(c) * common.BallSize
	return image.Rect(x, 0, x+common.BallSize, common.BallSize)
}

// NewPlayer spawns the player at its fixed start position with the preset's
// life points. The player blocks, so balls pile up against it while the
// effects pass eats them.
func NewPlayer(w *ecs.World, life int) ecs.Entity {
	e := w.NewEntity(ecs.CategoryPlayer)
	w.Hitboxes().Set(e, &component.Hitbox{
		Rect:     common.Rect{X: 65, Y: 640, Width: common.PlayerSize, Height: common.PlayerSize},
		Blocking: true,
	})
	w.Movements().Set(e, &component.Movement{})
	w.Sprites().Set(e, &component.Sprite{
		Texture: TexturePlayer,
		Region:  image.Rect(0, 0, common.PlayerSize, common.PlayerSize),
		Pos:     common.Vec2{X: 65, Y: 640},
	})
	w.Lives().Set(e, &component.Life{Points: life, Alive: true})
	return e
}

// NewBox spawns one wall tile at the given position.
func NewBox(w *ecs.World, x, y float64) ecs.Entity {
	e := w.NewEntity(ecs.CategoryBox)
	w.Hitboxes().Set(e, &component.Hitbox{
		Rect:     common.Rect{X: x, Y: y, Width: common.TileSize, Height: common.TileSize},
		Blocking: true,
	})
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

// BuildWalls lines the left, bottom, and right edges of the field with wall
// tiles. The top stays open so balls can enter. Returns the tile count.
func BuildWalls(w *ecs.World) int {
	n := 0
	for i := 0; i < 12; i++ {
		NewBox(w, 0, float64(common.TileSize*i))
		n++
	}
	for i := 1; i < 11; i++ {
		NewBox(w, float64(common.TileSize*i), 704)
		n++
	}
	for i := 0; i < 12; i++ {
		NewBox(w, 704, float64(common.TileSize*i))
		n++
	}
	return n
}

// NewBall spawns a falling ball just above the field at a random column with
// a random color band. Non-blocking: balls overlap everything and the
// effects pass decides what the contact means.
func NewBall(w *ecs.World, rng *rand.Rand, velocity float64) ecs.Entity {
	x := float64(65 + rng.Intn(576))
	c := ecs.Color(rng.Intn(4))
	return NewBallAt(w, x, c, velocity)
}

// NewBallAt spawns a ball of a chosen color at a chosen column. Spawn
// scripts and tests use this; the timed spawner goes through NewBall.
func NewBallAt(w *ecs.World, x float64, c ecs.Color, velocity float64) ecs.Entity {
	e := w.NewEntity(ecs.CategoryBall)
	w.Hitboxes().Set(e, &component.Hitbox{
		Rect: common.Rect{X: x, Y: -common.BallSize, Width: common.BallSize, Height: common.BallSize},
	})
	w.Movements().Set(e, &component.Movement{Velocity: common.Vec2{Y: velocity}})
	w.Sprites().Set(e, &component.Sprite{
		Texture: TextureBalls,
		Region:  ballRegion(c),
		Pos:     common.Vec2{X: x, Y: -common.BallSize},
	})
	w.Lives().Set(e, &component.Life{Points: 1, Alive: true})
	return e
}

// NewPetal spawns a shot petal centered above the player's hitbox, rising at
// the given (negative) velocity. Non-blocking, one life point: the first
// ball it meets consumes it.
func NewPetal(w *ecs.World, player common.Rect, velocity float64) ecs.Entity {
	x := player.X + player.Width/2 - common.PetalSize/2
	y := player.Y - player.Height/2 - common.PetalSize/2
	e := w.NewEntity(ecs.CategoryPetal)
	w.Hitboxes().Set(e, &component.Hitbox{
		Rect: common.Rect{X: x, Y: y, Width: common.PetalSize, Height: common.PetalSize},
	})
	w.Movements().Set(e, &component.Movement{Velocity: common.Vec2{Y: velocity}})
	w.Sprites().Set(e, &component.Sprite{
		Texture: TexturePetal,
		Region:  image.Rect(0, 0, common.PetalSize, common.PetalSize),
		Pos:     common.Vec2{X: x, Y: y},
	})
	w.Lives().Set(e, &component.Life{Points: 1, Alive: true})
	return e
}

// NewBurst spawns a particle explosion of the given color at a point.
func NewBurst(w *ecs.World, c ecs.Color, center common.Vec2, rng *rand.Rand) ecs.Entity {
	e := w.NewEntity(ecs.CategoryBurst)
	w.Emitters().Set(e, component.NewEmitter(c.RGBA(), center, rng))
	return e
}
