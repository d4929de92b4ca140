// Command hades runs the editor: an ECS world with a demo scene, drawn with
// Ebiten and inspected through Dear ImGui panels.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/hades/internal/config"
	"github.com/plus3/hades/internal/logging"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "hades:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(config.NewFlagSet("hades"), args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	editor, err := buildEditor(cfg)
	if err != nil {
		return err
	}
	logger.Info("world ready",
		slog.Int("entities", len(editor.world.ActiveEntities())),
		slog.Int("systems", editor.world.Systems().Len()),
		slog.Int("max_entities", cfg.ECS.MaxEntities),
	)

	game := newGame(cfg, logger, editor)

	ebiten.SetTPS(cfg.Loop.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	logger.Info("editor closed", slog.Int64("frames", editor.world.Systems().Stats().Frames))
	return nil
}
