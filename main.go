package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.design/x/clipboard"

	"github.com/Qu3tzal/sakura-no-hana/assets"
	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/config"
	"github.com/Qu3tzal/sakura-no-hana/game"
)

func main() {
	configPath := flag.String("config", "", "difficulty preset file (empty = built-in presets)")
	pattern := flag.String("pattern", "", "ball spawn pattern script")
	seed := flag.Int64("seed", 0, "rng seed (0 = time-based)")
	mute := flag.Bool("mute", false, "disable all audio")
	profileMode := flag.String("profile", "", "write a profile: cpu or mem")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(".")).Stop()
	default:
		logger.Fatal("unknown profile mode", zap.String("mode", *profileMode))
	}

	presets, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load presets", zap.Error(err))
	}

	var watcher *config.Watcher
	if *configPath != "" {
		watcher, err = config.NewWatcher(filepath.Dir(*configPath))
		if err != nil {
			logger.Warn("preset watching disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	var director *game.Director
	if *pattern != "" {
		src, err := os.ReadFile(*pattern)
		if err != nil {
			logger.Fatal("read pattern script", zap.String("file", *pattern), zap.Error(err))
		}
		director, err = game.NewDirector(src, logger)
		if err != nil {
			logger.Fatal("load pattern script", zap.String("file", *pattern), zap.Error(err))
		}
		logger.Info("pattern script loaded", zap.String("file", *pattern))
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	logger.Debug("rng seeded", zap.Int64("seed", *seed))

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable", zap.Error(err))
		clipboardOK = false
	}

	var audio game.Audio = game.NopAudio{}
	if !*mute {
		audio = assets.NewJukebox()
	}

	ebiten.SetWindowSize(common.FieldWidth, common.FieldHeight)
	ebiten.SetWindowTitle("桜の花 TOKYO EDITION | Sakura no Hana")
	// The menu draws its own petal cursor.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	g := NewGame(GameConfig{
		Log:         logger,
		Presets:     presets,
		ConfigPath:  *configPath,
		Watcher:     watcher,
		Audio:       audio,
		Director:    director,
		Rng:         rng,
		ClipboardOK: clipboardOK,
	})

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncoderConfig.ConsoleSeparator = "  "
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
