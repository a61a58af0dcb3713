package main

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/Qu3tzal/sakura-no-hana/assets"
	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/config"
	"github.com/Qu3tzal/sakura-no-hana/ecs/system"
	"github.com/Qu3tzal/sakura-no-hana/game"
)

var (
	menuInk       = color.NRGBA{R: 42, G: 42, B: 42, A: 255}
	menuHighlight = color.NRGBA{R: 158, G: 104, B: 148, A: 255}
)

// Menu is the title screen: difficulty buttons over a slice of animated
// wall scenery with petals drifting down in front of it.
type Menu struct {
	ui       *ebitenui.UI
	textures *assets.Textures

	backdrop *game.Backdrop
	drift    *game.Drift

	chosen config.Difficulty
	done   bool
	quit   bool
}

func NewMenu(textures *assets.Textures, rng *rand.Rand) *Menu {
	m := &Menu{
		textures: textures,
		backdrop: game.NewBackdrop(rng),
		drift:    game.NewDrift(rng),
		chosen:   config.Normal,
	}
	m.ui = m.buildUI()
	return m
}

// HasChosen reports whether a difficulty button has been clicked.
func (m *Menu) HasChosen() bool {
	return m.done
}

// ChosenDifficulty returns the difficulty of the last click.
func (m *Menu) ChosenDifficulty() config.Difficulty {
	return m.chosen
}

// QuitRequested reports whether the quit button has been clicked.
func (m *Menu) QuitRequested() bool {
	return m.quit
}

// Reset clears the selection back to normal for the next visit.
func (m *Menu) Reset() {
	m.done = false
	m.chosen = config.Normal
}

func (m *Menu) Update(dt time.Duration) {
	m.backdrop.Step(dt)
	m.drift.Step(dt)
	m.ui.Update()
}

func (m *Menu) Draw(screen *ebiten.Image) {
	canvas := NewCanvas(screen, m.textures)
	world := m.backdrop.World()
	system.NewParticleRenderSystem(canvas).Update(world, 0)
	system.NewSpriteRenderSystem(canvas).Update(world, 0)

	m.drawDrift(screen)
	m.ui.Draw(screen)
	m.drawTitle(screen)
	m.drawCursor(screen)
}

func (m *Menu) drawDrift(screen *ebiten.Image) {
	petal := m.textures.Image(assets.TexturePetal)
	if petal == nil {
		return
	}
	for _, pos := range m.drift.Positions() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(petal, op)
	}
}

// drawTitle draws the game title and the edition badge. The pixel face has
// no CJK glyphs, so the kanji name stays in the window title.
func (m *Menu) drawTitle(screen *ebiten.Image) {
	const title = "Sakura no Hana"
	const titleSize = 34

	w, h := textBounds(title, titleSize)
	x := (common.FieldWidth - w) / 2
	drawText(screen, title, x, 150-h/2, titleSize, menuHighlight)

	const sub = "~ cherry blossom ~"
	sw, _ := textBounds(sub, titleSize)
	drawText(screen, sub, (common.FieldWidth-sw)/2, 150+h/2+20, titleSize, menuHighlight)

	// The badge hangs off the title's right edge, tilted around its own
	// center.
	m.drawBadge(screen, "TOKYO EDITION", titleSize*0.75, 20*math.Pi/180, x+w, 150)
}

func (m *Menu) drawBadge(screen *ebiten.Image, str string, size, angle, x, y float64) {
	w, h := textBounds(str, size)
	op := &ebtext.DrawOptions{}
	op.LineSpacing = uiFaceSize
	op.GeoM.Scale(textScale(size), textScale(size))
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 255, G: 255, B: 0, A: 255})
	ebtext.Draw(screen, str, uiFace, op)
}

func (m *Menu) drawCursor(screen *ebiten.Image) {
	petal := m.textures.Image(assets.TexturePetal)
	if petal == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(mx)-common.PetalSize/2,
		float64(my)-common.PetalSize/2,
	)
	screen.DrawImage(petal, op)
}

// escPressed reports whether the close shortcut was hit this frame.
func escPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// buildUI lays out the difficulty column on the left and the quit button in
// the lower right, using colored nine-slices and no embedded theme fonts.
func (m *Menu) buildUI() *ebitenui.UI {
	idleImg := imageui.NewNineSliceColor(color.NRGBA{})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 158, G: 104, B: 148, A: 40})

	btnImage := &widget.ButtonImage{Idle: idleImg, Hover: hoverImg, Pressed: hoverImg}
	btnTextColor := &widget.ButtonTextColor{Idle: menuInk, Hover: menuHighlight, Pressed: menuHighlight}

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(35),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 250, Left: 100}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	labels := map[config.Difficulty]string{
		config.Easy:     "Easy",
		config.Normal:   "Normal",
		config.Hard:     "Hard",
		config.Japanese: "Japanese",
	}
	for _, d := range config.Difficulties() {
		d := d
		column.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImage),
			widget.ButtonOpts.Text(labels[d], &uiFace, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 40)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				m.chosen = d
				m.done = true
			}),
		))
	}

	quitPanel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Right: 100, Bottom: 180}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	quitPanel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(btnImage),
		widget.ButtonOpts.Text("Quit", &uiFace, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 40)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			m.quit = true
		}),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(column)
	root.AddChild(quitPanel)

	return &ebitenui.UI{Container: root}
}
