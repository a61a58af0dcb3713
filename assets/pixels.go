package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/ecs"
)

// Textures are drawn at startup rather than loaded from files. These
// builders are pure pixel work so they stay testable without a display.

// BoxFrames is the number of animation frames on the wall box sheet, laid
// out in two rows.
const (
	BoxFrames       = 36
	BoxFramesPerRow = 18
	BoxFPS          = 24
)

var (
	petalPink  = color.RGBA{R: 255, G: 183, B: 197, A: 255}
	petalCore  = color.RGBA{R: 255, G: 228, B: 235, A: 255}
	playerBody = color.RGBA{R: 92, G: 84, B: 160, A: 255}
	playerTrim = color.RGBA{R: 228, G: 222, B: 255, A: 255}
	boxFill    = color.RGBA{R: 52, G: 48, B: 70, A: 255}
	boxRim     = color.RGBA{R: 150, G: 140, B: 200, A: 255}
	heartRed   = color.RGBA{R: 214, G: 48, B: 76, A: 255}
)

// BallSheet draws the four-band ball sheet, one band per color in rotation
// order, so a band's x offset is 64 times its color index.
func BallSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4*common.BallSize, common.BallSize))
	for i, c := range []ecs.Color{ecs.ColorRed, ecs.ColorBlue, ecs.ColorGreen, ecs.ColorYellow} {
		cx := i*common.BallSize + common.BallSize/2
		cy := common.BallSize / 2
		fillCircle(img, cx, cy, 26, c.RGBA())
		fillCircle(img, cx-8, cy-8, 8, shade(c.RGBA(), 0.45))
	}
	return img
}

// BoxSheet draws the animated wall tile: a rim that pulses once across the
// frame sequence.
func BoxSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BoxFramesPerRow*common.TileSize, 2*common.TileSize))
	for frame := 0; frame < BoxFrames; frame++ {
		ox := (frame % BoxFramesPerRow) * common.TileSize
		oy := (frame / BoxFramesPerRow) * common.TileSize

		pulse := float32(0.5 + 0.5*math.Sin(2*math.Pi*float64(frame)/BoxFrames))
		rim := shade(boxRim, 0.3*pulse)

		for y := 0; y < common.TileSize; y++ {
			for x := 0; x < common.TileSize; x++ {
				edge := x < 4 || y < 4 || x >= common.TileSize-4 || y >= common.TileSize-4
				if edge {
					img.SetRGBA(ox+x, oy+y, rim)
				} else {
					img.SetRGBA(ox+x, oy+y, boxFill)
				}
			}
		}
	}
	return img
}

// Petal draws the player's shot: a teardrop pointing up.
func Petal() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, common.PetalSize, common.PetalSize))
	tip := point{16, 2}
	left := point{7, 18}
	right := point{25, 18}
	for y := 0; y < common.PetalSize; y++ {
		for x := 0; x < common.PetalSize; x++ {
			p := point{x, y}
			if inCircle(p, 16, 19, 11) || inTriangle(p, tip, left, right) {
				img.SetRGBA(x, y, petalPink)
			}
		}
	}
	fillCircle(img, 14, 18, 4, petalCore)
	return img
}

// PlayerFigure draws the player: a round head over a tapered body.
func PlayerFigure() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, common.PlayerSize, common.PlayerSize))
	body := point{32, 44}
	shoulderL := point{14, 62}
	shoulderR := point{50, 62}
	top := point{32, 20}
	for y := 0; y < common.PlayerSize; y++ {
		for x := 0; x < common.PlayerSize; x++ {
			p := point{x, y}
			if inTriangle(p, top, shoulderL, shoulderR) || inCircle(p, body.x, body.y, 12) {
				img.SetRGBA(x, y, playerBody)
			}
		}
	}
	fillCircle(img, 32, 14, 10, playerTrim)
	fillCircle(img, 32, 14, 7, playerBody)
	return img
}

// Heart draws one HUD life icon.
func Heart() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, common.HeartSize, common.HeartSize))
	bottom := point{16, 29}
	left := point{3, 13}
	right := point{29, 13}
	for y := 0; y < common.HeartSize; y++ {
		for x := 0; x < common.HeartSize; x++ {
			p := point{x, y}
			if inCircle(p, 10, 11, 7) || inCircle(p, 22, 11, 7) || inTriangle(p, left, right, bottom) {
				img.SetRGBA(x, y, heartRed)
			}
		}
	}
	return img
}

type point struct {
	x, y int
}

func inCircle(p point, cx, cy, r int) bool {
	dx, dy := p.x-cx, p.y-cy
	return dx*dx+dy*dy <= r*r
}

func inTriangle(p, a, b, c point) bool {
	s1 := cross(a, b, p)
	s2 := cross(b, c, p)
	s3 := cross(c, a, p)
	hasNeg := s1 < 0 || s2 < 0 || s3 < 0
	hasPos := s1 > 0 || s2 > 0 || s3 > 0
	return !(hasNeg && hasPos)
}

func cross(a, b, p point) int {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

func fillCircle(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if !image.Pt(x, y).In(img.Bounds()) {
				continue
			}
			if inCircle(point{x, y}, cx, cy, r) {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// shade lightens a color toward white by t.
func shade(col color.RGBA, t float32) color.RGBA {
	return color.RGBA{
		R: uint8(common.Lerp(float32(col.R), 255, t)),
		G: uint8(common.Lerp(float32(col.G), 255, t)),
		B: uint8(common.Lerp(float32(col.B), 255, t)),
		A: col.A,
	}
}
