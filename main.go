// dungeoncrawl runs the game in the local terminal.
//
//	go run . [-config dungeon.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/logging"
	"dungeoncrawl/internal/persist"
	"dungeoncrawl/internal/term"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	cfgFile := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	if err := run(*cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	// The screen owns stdout, so diagnostics always go to a file.
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = "dungeoncrawl.log"
	}
	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, File: logFile, Development: true})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := persist.Open(ctx, cfg.Save, "")
	if err != nil {
		return err
	}
	defer store.Close()

	engine, err := game.New(ctx, cfg, game.WithStore(store), game.WithLogger(logger))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	if err := term.New(screen, engine).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game stopped", zap.Error(err))
		return err
	}
	return nil
}
