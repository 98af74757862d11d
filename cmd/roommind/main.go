package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"roommind/internal/adapters/editor"
	"roommind/internal/adapters/tui"
	"roommind/internal/bootstrap"
	"roommind/internal/config"
	"roommind/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFlag := flag.String("config", config.Path(), "path to the config file")
	anchorsFlag := flag.String("anchors", "", "path to a YAML anchors file, watched for changes")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *anchorsFlag != "" {
		cfg.AnchorsFile = config.ExpandHome(*anchorsFlag)
	}

	// The alternate screen owns the terminal, so only log to a file
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Quiet: true})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize adapters
	rt, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	seed, err := rt.Seed(ctx)
	if err != nil {
		return err
	}
	updates, err := rt.Anchors.Watch(ctx)
	if err != nil {
		return err
	}

	// Create and run TUI app
	app := tui.NewApp(ctx, rt.AI, seed,
		tui.WithEditor(editor.NewOpener()),
		tui.WithLogger(logger.Named("tui")),
		tui.WithAnchorUpdates(updates),
		tui.WithModelName(rt.ModelName),
	)

	logger.Info("starting dashboard", zap.String("model", rt.ModelName), zap.Int("anchors", len(seed.Anchors)))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
