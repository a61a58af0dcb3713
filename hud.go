package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Qu3tzal/sakura-no-hana/assets"
	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/game"
)

// uiFace is the shared pixel face. On-screen character sizes come from
// scaling it, so every size is a multiple of the 13px base.
var uiFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

const uiFaceSize = 13

func textScale(size float64) float64 {
	return size / uiFaceSize
}

// textBounds returns the on-screen size of a string drawn at the given
// character size.
func textBounds(str string, size float64) (float64, float64) {
	w, h := ebtext.Measure(str, uiFace, uiFaceSize)
	s := textScale(size)
	return w * s, h * s
}

// drawText draws str with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.LineSpacing = uiFaceSize
	op.GeoM.Scale(textScale(size), textScale(size))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, str, uiFace, op)
}

// drawTextBox draws str over a translucent black backdrop, the way the
// score and combo counters sit on the playfield.
func drawTextBox(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	w, h := textBounds(str, size)
	bg := &ebiten.DrawImageOptions{}
	bg.GeoM.Scale(w+20, h+20)
	bg.GeoM.Translate(x, y)
	bg.ColorScale.ScaleWithColor(color.RGBA{A: 120})
	screen.DrawImage(whitePixel, bg)

	drawText(screen, str, x, y, size, clr)
}

// HUD draws the session readouts: score, combo, color affinity, hearts,
// and the combo milestone banner.
type HUD struct {
	textures *assets.Textures
}

func NewHUD(textures *assets.Textures) *HUD {
	return &HUD{textures: textures}
}

func (h *HUD) Draw(screen *ebiten.Image, s *game.Session) {
	h.drawScore(screen, s)
	h.drawCombo(screen, s)
	h.drawAffinity(screen, s)
	h.drawLife(screen, s)

	if s.ShowSugoi() {
		h.drawSugoi(screen)
	}
}

func (h *HUD) drawScore(screen *ebiten.Image, s *game.Session) {
	drawTextBox(screen, fmt.Sprintf("Score:%d", s.Score()), 5, 5, 48, color.White)
}

// drawCombo switches to a bigger yellow readout once the streak is past the
// threshold where it starts multiplying the score.
func (h *HUD) drawCombo(screen *ebiten.Image, s *game.Session) {
	if s.Combo() > s.Preset().ComboMin {
		str := fmt.Sprintf("COMBO: +%d", s.Combo())
		drawTextBox(screen, str, 5, 60, 52, color.RGBA{R: 255, G: 255, B: 0, A: 255})
		return
	}
	drawTextBox(screen, fmt.Sprintf("Combo: %d", s.Combo()), 5, 60, 48, color.White)
}

// drawAffinity shows the scoring color as a blown-up ball swatch in the top
// right corner.
func (h *HUD) drawAffinity(screen *ebiten.Image, s *game.Session) {
	sheet := h.textures.Image(assets.TextureBalls)
	if sheet == nil {
		return
	}
	swatch, ok := sheet.SubImage(assets.BallRegion(s.Affinity())).(*ebiten.Image)
	if !ok {
		return
	}
	const scale = 1.5
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(common.FieldWidth-common.BallSize*scale-20, 20)
	screen.DrawImage(swatch, op)
}

func (h *HUD) drawLife(screen *ebiten.Image, s *game.Session) {
	heart := h.textures.Image(assets.TextureHeart)
	if heart == nil {
		return
	}
	for i := 0; i < s.PlayerLife(); i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(20+float64(i)*40, 720)
		screen.DrawImage(heart, op)
	}
}

func (h *HUD) drawSugoi(screen *ebiten.Image) {
	banner := h.textures.Image(assets.TextureSugoi)
	if banner == nil {
		return
	}
	b := banner.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(common.FieldWidth-b.Dx())/2,
		float64(common.FieldHeight-b.Dy())/2,
	)
	screen.DrawImage(banner, op)
}
