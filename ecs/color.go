package ecs

import "image/color"

// Color is one of the four ball colors. The world's affinity is the color
// that currently scores.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
)

// Next returns the color the affinity rotates to after c.
func (c Color) Next() Color {
	switch c {
	case ColorRed:
		return ColorBlue
	case ColorBlue:
		return ColorGreen
	case ColorGreen:
		return ColorYellow
	default:
		return ColorRed
	}
}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// RGBA returns the display color of the band, shared by the ball textures
// and the burst particles so they always agree.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{R: 222, G: 64, B: 82, A: 255}
	case ColorBlue:
		return color.RGBA{R: 66, G: 126, B: 222, A: 255}
	case ColorGreen:
		return color.RGBA{R: 84, G: 190, B: 112, A: 255}
	case ColorYellow:
		return color.RGBA{R: 236, G: 202, B: 72, A: 255}
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}
