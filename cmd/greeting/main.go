package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/greeting/app"
	"github.com/lixenwraith/greeting/audio"
	"github.com/lixenwraith/greeting/config"
	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "greeting: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := setupLogging(cfg.LogFile, cfg.Level())
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := applyColorMode(cfg.Color); err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Panic Recovery: restore the terminal before the crash report
	core.SetCrashHandler(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	deps := app.Deps{
		Screen: screen,
		Store:  store,
		Track:  track(cfg),
	}
	if !cfg.Mute {
		sound := audio.NewSoundManager()
		defer sound.Cleanup()
		deps.Output = sound
	}

	a := app.New(cfg, deps)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logrus.WithFields(logrus.Fields{
		"function": "run",
		"page":     cfg.Page,
		"reduced":  cfg.ReducedMotion,
		"session":  cfg.SessionID,
	}).Info("Greeting started")

	return a.Run(ctx)
}

type closableStore interface {
	session.Store
	Close() error
}

// openStore keeps the navigation flag in sqlite when a path is configured
func openStore(cfg config.Config) (closableStore, error) {
	if cfg.SessionDB == "" {
		return session.NewMemoryStore(), nil
	}
	store, err := session.OpenSQLite(cfg.SessionDB, cfg.SessionID)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return store, nil
}

func track(cfg config.Config) audio.Track {
	if cfg.Track == "" {
		return audio.Chime{}
	}
	return audio.FileTrack{Path: cfg.Track}
}

// applyColorMode steers tcell's terminfo colour detection
func applyColorMode(mode string) error {
	var err error
	switch mode {
	case config.Color256:
		err = os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		err = os.Setenv("COLORTERM", "truecolor")
	}
	if err != nil {
		return fmt.Errorf("apply color mode %s: %w", mode, err)
	}
	return nil
}
