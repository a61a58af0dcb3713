package main

import (
	"image/color"
	"math/rand"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.design/x/clipboard"

	"github.com/Qu3tzal/sakura-no-hana/assets"
	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/config"
	"github.com/Qu3tzal/sakura-no-hana/ecs/system"
	"github.com/Qu3tzal/sakura-no-hana/game"
)

type appState uint8

const (
	stateMenu appState = iota
	statePlaying
	stateResults
)

// GameConfig carries everything main resolves before the window opens.
type GameConfig struct {
	Log         *zap.Logger
	Presets     map[config.Difficulty]config.Preset
	ConfigPath  string
	Watcher     *config.Watcher
	Audio       game.Audio
	Director    *game.Director
	Rng         *rand.Rand
	ClipboardOK bool
}

// Game drives the three screens: the menu, a running session, and the
// results. It owns the shared collaborators and the real-time clock the
// screens tick on.
type Game struct {
	log *zap.Logger

	textures   *assets.Textures
	audio      game.Audio
	presets    map[config.Difficulty]config.Preset
	configPath string
	watcher    *config.Watcher
	director   *game.Director
	rng        *rand.Rand

	clipboardOK bool

	state   appState
	menu    *Menu
	hud     *HUD
	session *game.Session
	results *ScoreScreen

	lastTick time.Time
}

func NewGame(cfg GameConfig) *Game {
	textures := assets.NewTextures()
	g := &Game{
		log:         cfg.Log,
		textures:    textures,
		audio:       cfg.Audio,
		presets:     cfg.Presets,
		configPath:  cfg.ConfigPath,
		watcher:     cfg.Watcher,
		director:    cfg.Director,
		rng:         cfg.Rng,
		clipboardOK: cfg.ClipboardOK,
		state:       stateMenu,
		menu:        NewMenu(textures, cfg.Rng),
		hud:         NewHUD(textures),
		lastTick:    time.Now(),
	}
	if g.audio == nil {
		g.audio = game.NopAudio{}
	}
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastTick)
	g.lastTick = now
	if dt < 0 {
		dt = 0
	}

	g.pollConfigEvents()

	switch g.state {
	case stateMenu:
		if escPressed() {
			return ebiten.Termination
		}
		g.menu.Update(dt)
		if g.menu.QuitRequested() {
			return ebiten.Termination
		}
		if g.menu.HasChosen() {
			g.startSession(g.menu.ChosenDifficulty())
		}

	case statePlaying:
		if escPressed() {
			return ebiten.Termination
		}
		g.session.Advance(dt, readInput())
		if !g.session.Running() {
			g.endSession()
		}

	case stateResults:
		if g.results.Update(dt) {
			g.results = nil
			g.session = nil
			g.state = stateMenu
		}
	}

	return nil
}

func (g *Game) startSession(d config.Difficulty) {
	preset := g.presets[d]
	g.menu.Reset()

	g.session = game.NewSession(preset, g.audio, g.rng)
	g.session.SetDirector(g.director)
	g.state = statePlaying

	g.log.Info("session start",
		zap.Stringer("difficulty", d),
		zap.Int("life", preset.PlayerLife),
		zap.Float64("ball_velocity", preset.BallVelocity),
	)
}

func (g *Game) endSession() {
	score := g.session.Score()
	g.log.Info("session over", zap.Int("score", score))

	g.results = NewScoreScreen(score, g.scoreCopier())
	g.audio.Play(game.CueGameOver)
	g.state = stateResults
}

// scoreCopier returns the clipboard hook for the results screen, or nil
// when the clipboard never came up.
func (g *Game) scoreCopier() func(int) bool {
	if !g.clipboardOK {
		return nil
	}
	return func(score int) bool {
		clipboard.Write(clipboard.FmtText, []byte(strconv.Itoa(score)))
		return true
	}
}

// pollConfigEvents drains the preset watcher without blocking the frame.
// Reloads only affect sessions started afterwards.
func (g *Game) pollConfigEvents() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			table, err := config.Load(g.configPath)
			if err != nil {
				g.log.Warn("preset reload failed", zap.String("file", path), zap.Error(err))
				continue
			}
			g.presets = table
			g.log.Info("presets reloaded", zap.String("file", path))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("preset watcher", zap.Error(err))
		default:
			return
		}
	}
}

// readInput samples the movement and shoot keys. Q and D are the primary
// bindings; the arrows mirror them for non-AZERTY keyboards.
func readInput() game.Input {
	return game.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Shoot: ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	switch g.state {
	case stateMenu:
		g.menu.Draw(screen)
	case statePlaying:
		g.drawSession(screen)
	case stateResults:
		g.results.Draw(screen)
	}
}

// drawSession renders bursts under the entities, then the HUD on top.
func (g *Game) drawSession(screen *ebiten.Image) {
	canvas := NewCanvas(screen, g.textures)
	world := g.session.World()
	system.NewParticleRenderSystem(canvas).Update(world, 0)
	system.NewSpriteRenderSystem(canvas).Update(world, 0)

	g.hud.Draw(screen, g.session)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.FieldWidth, common.FieldHeight
}
