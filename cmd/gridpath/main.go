// Command gridpath loads a grid scenario, finds the shortest 8-connected
// path between its start and end cells, and prints the annotated grid.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/cli"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/pathfinder"
	"github.com/katalvlaran/gridpath/scenario"
)

const summary = "gridpath - shortest path finder for 8-connected grids."

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run parses args, solves the scenario and writes the report to outW.
// Logs go to stderr.
func run(outW io.Writer, args []string) error {
	var (
		timeout time.Duration
		visited bool
	)
	cfg, shouldExit, err := cli.Parse("gridpath", summary, args, outW, func(fs *flag.FlagSet) {
		fs.DurationVar(&timeout, "timeout", 10*time.Second, "Give up if the search takes longer than this.")
		fs.BoolVar(&visited, "visited", false, "Mark cells the search visited with '+'.")
	})
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	if timeout <= 0 {
		return &cli.ExitError{Code: cli.ExitUsage, Message: "invalid timeout: must be positive"}
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx, cancel := context.WithTimeout(logging.WithLogger(context.Background(), logger), timeout)
	defer cancel()

	scn, err := load(ctx, cfg)
	if err != nil {
		return err
	}
	b, res, err := solve(ctx, scn)
	if err != nil {
		return err
	}

	cells := b.Snapshot()
	if visited {
		for _, c := range res.Steps {
			if cells[c.Row][c.Column] == gridgraph.Empty {
				cells[c.Row][c.Column] = gridgraph.Checking
			}
		}
	}
	report(outW, scn, cells, res)
	return nil
}

// load reads the configured scenario or builds the default board.
func load(ctx context.Context, cfg *cli.Config) (*scenario.Scenario, error) {
	logger := logging.FromContext(ctx)
	if cfg.Default() {
		logger.Debug("using default board")
		return scenario.File{}.Resolve()
	}
	scn, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("scenario loaded",
		slog.String("path", cfg.ScenarioPath),
		slog.String("name", scn.Name),
		slog.Int("rows", scn.Rows()),
		slog.Int("columns", scn.Columns()))
	return scn, nil
}

// solve runs one search on a board and waits for its result on the calling
// goroutine.
func solve(ctx context.Context, scn *scenario.Scenario) (*board.Board, pathfinder.Result, error) {
	logger := logging.FromContext(ctx)
	q := pathfinder.NewMainQueue()
	f := pathfinder.NewFinder(pathfinder.WithDispatcher(q), pathfinder.WithFinderLogger(logger))

	done := make(chan pathfinder.Result, 1)
	b, err := board.New(scn.Cells, scn.Start, scn.End,
		board.WithFinder(f),
		board.WithLogger(logger),
		board.WithOnResult(func(res pathfinder.Result) { done <- res }))
	if err != nil {
		return nil, pathfinder.Result{}, err
	}

	for {
		select {
		case res := <-done:
			return b, res, nil
		case <-q.Notify():
			q.Drain()
		case <-ctx.Done():
			b.Close()
			f.Wait()
			return nil, pathfinder.Result{}, fmt.Errorf("search did not finish: %w", ctx.Err())
		}
	}
}

func report(w io.Writer, scn *scenario.Scenario, cells [][]gridgraph.CellState, res pathfinder.Result) {
	fmt.Fprintf(w, "scenario: %s (%dx%d)\n", scn.Name, scn.Rows(), scn.Columns())
	fmt.Fprintln(w, gridgraph.FormatCells(cells))
	fmt.Fprintf(w, "visited: %d cells\n", len(res.Steps))
	if !res.Found() {
		fmt.Fprintln(w, "path: none")
		return
	}
	fmt.Fprintf(w, "path: %d cells, cost %.3f\n", len(res.Path), res.Cost)
}
