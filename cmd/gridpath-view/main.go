// Command gridpath-view opens an interactive window for editing a grid and
// watching the shortest path update.
//
// Left mouse draws and erases barriers or drags the start and end cells.
// A toggles step-by-step animation, C clears the board, Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/internal/cli"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/internal/prefs"
	"github.com/katalvlaran/gridpath/pathfinder"
	"github.com/katalvlaran/gridpath/scenario"
)

const (
	summary = "gridpath-view - interactive shortest path viewer."
	appName = "gridpath"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

func run(args []string) error {
	var noPrefs bool
	cfg, shouldExit, err := cli.Parse("gridpath-view", summary, args, os.Stderr, func(fs *flag.FlagSet) {
		fs.BoolVar(&noPrefs, "no-prefs", false, "Do not load or save viewer preferences.")
	})
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	var scn *scenario.Scenario
	if cfg.Default() {
		scn, err = scenario.File{}.Resolve()
	} else {
		scn, err = scenario.Load(cfg.ScenarioPath)
	}
	if err != nil {
		return err
	}

	var pm *prefs.Manager
	if noPrefs {
		pm = prefs.New(nil, logger)
	} else {
		pm = prefs.Open(appName, logger)
	}
	animate := scn.Animate
	if p := pm.Get(); p.Set {
		animate = p.Animate
	}

	queue := pathfinder.NewMainQueue()
	finder := pathfinder.NewFinder(pathfinder.WithDispatcher(queue), pathfinder.WithFinderLogger(logger))
	b, err := board.New(scn.Cells, scn.Start, scn.End,
		board.WithFinder(finder),
		board.WithLogger(logger),
		board.WithAnimated(animate))
	if err != nil {
		return err
	}
	defer b.Close()

	g := newGame(b, queue, pm, scn.TileSize, scn.StepInterval)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("gridpath - %s", scn.Name))

	logger.Info("viewer started",
		slog.String("scenario", scn.Name),
		slog.Int("rows", scn.Rows()),
		slog.Int("columns", scn.Columns()),
		slog.Bool("animate", animate))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
