// Command preview shows the procedurally drawn texture set: the animated
// wall tile, the ball sheet, the petal, the player figure, the heart, and
// the milestone banner. Tab cycles through them.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Qu3tzal/sakura-no-hana/assets"
)

const (
	screenSize = 512
	boxFPS     = 24
)

var sheets = []struct {
	handle int
	name   string
}{
	{assets.TextureBox, "wall tile (animated)"},
	{assets.TexturePetal, "petal"},
	{assets.TexturePlayer, "player"},
	{assets.TextureBalls, "ball sheet"},
	{assets.TextureHeart, "heart"},
	{assets.TextureSugoi, "milestone banner"},
}

type previewGame struct {
	textures *assets.Textures
	current  int
	tick     int
}

func (g *previewGame) Update() error {
	g.tick++
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.current = (g.current + 1) % len(sheets)
		g.tick = 0
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})

	sheet := sheets[g.current]
	img := g.textures.Image(sheet.handle)
	if img == nil {
		return
	}

	if sheet.handle == assets.TextureBox {
		frames := assets.BoxFrameRegions()
		frame := g.tick * boxFPS / ebiten.TPS() % len(frames)
		img = img.SubImage(frames[frame]).(*ebiten.Image)
	}

	const scale = 4
	w := img.Bounds().Dx() * scale
	h := img.Bounds().Dy() * scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(screenSize-w)/2, float64(screenSize-h)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nTab: next", sheet.name))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("texture preview")

	g := &previewGame{textures: assets.NewTextures()}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
