package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/ecs"
)

// Texture handles. Sprites refer to textures by these indices and the
// renderer resolves them through Textures.Image.
const (
	TextureBox = iota
	TexturePetal
	TexturePlayer
	TextureBalls
	TextureHeart
	TextureSugoi
	textureCount
)

// Textures owns the full drawn texture set for one process.
type Textures struct {
	images [textureCount]*ebiten.Image
}

// NewTextures draws every texture. Must run on the main goroutine after the
// game window exists.
func NewTextures() *Textures {
	t := &Textures{}
	t.images[TextureBox] = ebiten.NewImageFromImage(BoxSheet())
	t.images[TexturePetal] = ebiten.NewImageFromImage(Petal())
	t.images[TexturePlayer] = ebiten.NewImageFromImage(PlayerFigure())
	t.images[TextureBalls] = ebiten.NewImageFromImage(BallSheet())
	t.images[TextureHeart] = ebiten.NewImageFromImage(Heart())
	t.images[TextureSugoi] = sugoiBanner()
	return t
}

// Image returns the texture behind a handle, or nil for unknown handles.
func (t *Textures) Image(handle int) *ebiten.Image {
	if t == nil || handle < 0 || handle >= len(t.images) {
		return nil
	}
	return t.images[handle]
}

// BallRegion returns the ball sheet band of a color.
func BallRegion(c ecs.Color) image.Rectangle {
	x := int(c) * common.BallSize
	return image.Rect(x, 0, x+common.BallSize, common.BallSize)
}

// BoxFrameRegions returns the wall tile animation frames in play order.
func BoxFrameRegions() []image.Rectangle {
	frames := make([]image.Rectangle, 0, BoxFrames)
	for row := 0; row < BoxFrames/BoxFramesPerRow; row++ {
		for i := 0; i < BoxFramesPerRow; i++ {
			x, y := i*common.TileSize, row*common.TileSize
			frames = append(frames, image.Rect(x, y, x+common.TileSize, y+common.TileSize))
		}
	}
	return frames
}

func sugoiBanner() *ebiten.Image {
	img := ebiten.NewImage(256, 96)
	face := ebtext.NewGoXFace(basicfont.Face7x13)
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(5, 5)
	op.GeoM.Translate(10, 14)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 214, B: 64, A: 255})
	ebtext.Draw(img, "SUGOI !", face, op)
	return img
}
