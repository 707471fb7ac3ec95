package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gonuts/commander"
	"github.com/sirupsen/logrus"

	mazesearch "github.com/Ahsan-Aziz-Ishan/MazeGame-Heuristic-Search"
	"github.com/Ahsan-Aziz-Ishan/MazeGame-Heuristic-Search/internal/scenario"
)

var (
	solveSize  int
	solveRatio float64
	solveSeed  int64
	solveAlgo  string
	solveConf  string
	solveLimit int
	solvePrint bool
)

func SolveCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       cmdSolve,
		UsageLine: "solve [options]",
		Short:     "generate a maze and search it with one algorithm",
		Long: `
generate a random obstacle maze and route from the top-left to the
bottom-right corner with a single search variant

	$ mazesearch solve -size 20 -ratio 0.3 -algo astar
	$ mazesearch solve -conf scenario.yml -algo greedy
`,
	}
	cmd.Flag.IntVar(&solveSize, "size", 10, "side length of the square maze")
	cmd.Flag.Float64Var(&solveRatio, "ratio", 0.3, "obstacle ratio in [0,1]")
	cmd.Flag.Int64Var(&solveSeed, "seed", 0, "random seed; 0 derives one from the wall clock")
	cmd.Flag.StringVar(&solveAlgo, "algo", "astar", "search variant: best-first, astar, greedy, uniform-cost")
	cmd.Flag.StringVar(&solveConf, "conf", "", "YAML scenario file; overrides the grid flags")
	cmd.Flag.IntVar(&solveLimit, "max-expansions", 0, "abort after this many expansions; 0 = unlimited")
	cmd.Flag.BoolVar(&solvePrint, "print", false, "print the found path cell by cell")
	return cmd
}

func cmdSolve(cmd *commander.Command, args []string) error {
	scn := &scenario.Scenario{
		Size:          solveSize,
		ObstacleRatio: solveRatio,
		Seed:          solveSeed,
		MaxExpansions: solveLimit,
	}
	if solveConf != "" {
		loaded, err := scenario.Load(solveConf)
		if err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
		scn = loaded
	}
	variant, err := mazesearch.ParseVariant(solveAlgo)
	if err != nil {
		return err
	}

	grid, err := buildGrid(scn)
	if err != nil {
		return err
	}
	started := time.Now()
	res, err := mazesearch.Search(context.Background(), grid, variant, grid.StartState(), searchOptions(scn)...)
	mazesearch.Observe(variant, res, err, time.Since(started))
	reportResult(variant, res, err)
	if solvePrint && res.Found {
		fmt.Println(formatPath(res.Path))
	}
	return nil
}

func buildGrid(scn *scenario.Scenario) (*mazesearch.Grid, error) {
	if scn.Seed == 0 {
		scn.Seed = time.Now().UnixNano()
	}
	grid, err := mazesearch.Generate(scn.Size, scn.ObstacleRatio, scn.Seed)
	if err != nil {
		return nil, fmt.Errorf("generate maze: %w", err)
	}
	log.WithFields(logrus.Fields{
		"size":      scn.Size,
		"ratio":     scn.ObstacleRatio,
		"seed":      scn.Seed,
		"obstacles": len(grid.Obstacles()),
	}).Info("maze generated")
	log.Debug("\n" + grid.String())
	return grid, nil
}

func searchOptions(scn *scenario.Scenario) []mazesearch.Option {
	if scn.MaxExpansions > 0 {
		return []mazesearch.Option{mazesearch.WithMaxExpansions(scn.MaxExpansions)}
	}
	return nil
}

func reportResult(v mazesearch.Variant, res mazesearch.Result, err error) {
	entry := log.WithFields(logrus.Fields{
		"variant":  v.String(),
		"expanded": res.Metrics.NodesExpanded,
		"frontier": res.Metrics.MaxFrontier,
	})
	switch {
	case err != nil:
		entry.Errorf("search aborted: %v", err)
	case !res.Found:
		entry.Warn("no path exists")
	default:
		entry.WithFields(logrus.Fields{
			"steps": len(res.Path) - 1,
			"cost":  res.TotalCost,
		}).Info("path found")
	}
}

func formatPath(path []mazesearch.State) string {
	parts := make([]string, len(path))
	for i, st := range path {
		parts[i] = fmt.Sprintf("(%d,%d)", st.Cell.Row, st.Cell.Col)
	}
	return strings.Join(parts, " -> ")
}
