package cli

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pcpbnp/solver/bnp"
	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/instance"
	"github.com/pcpbnp/solver/metrics"
	"github.com/pcpbnp/solver/pcperr"
	"github.com/pcpbnp/solver/pcpgraph"
	"github.com/pcpbnp/solver/pricing"
)

type solveOptions struct {
	timeLimit        float64
	format           string
	debug            bool
	metricsAddr      string
	poolSize         int
	branchingTieBreak string
}

func newSolveCommand() *cobra.Command {
	opts := &solveOptions{format: "pcp", poolSize: pricing.DefaultPoolSize, branchingTieBreak: "ascending-id"}

	cmd := &cobra.Command{
		Use:   "solve <instance-path>",
		Short: "Solve a PCP instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.timeLimit, "time-limit", 60, "time limit in seconds")
	cmd.Flags().StringVar(&opts.format, "format", "pcp", "instance format: pcp or json")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging and reduced-cost assertions")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (host:port) for the duration of the solve")
	cmd.Flags().IntVar(&opts.poolSize, "pool-size", pricing.DefaultPoolSize, "pricing solution pool size K")
	cmd.Flags().StringVar(&opts.branchingTieBreak, "branching-tie-break", "ascending-id", "documented for parity with the original CLI; this implementation always breaks ties by ascending vertex id")

	return cmd
}

func runSolve(path string, opts *solveOptions) error {
	if opts.debug {
		pricing.Debug = true
	}

	f, err := os.Open(path)
	if err != nil {
		return newExitError(ExitInputError, fmt.Errorf("pcpsolve: %w", err))
	}
	defer f.Close()

	g, err := parseInstance(f, opts.format)
	if err != nil {
		return newExitError(ExitInputError, err)
	}

	var collector *metrics.Collector
	if opts.metricsAddr != "" {
		collector = metrics.New()
		server := &http.Server{Addr: opts.metricsAddr, Handler: collector.Handler()}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("pcpsolve: metrics server error: %v", err)
			}
		}()
		defer server.Close()
	}

	controller := bnp.New(g, opts.poolSize)
	controller.Debug = opts.debug
	controller.Metrics = collector

	deadline := time.Now().Add(time.Duration(opts.timeLimit * float64(time.Second)))
	result := controller.Solve(deadline)

	printResult(g, result)

	switch result.Status {
	case bnp.StatusOptimal:
		return nil
	case bnp.StatusFeasible:
		return newExitError(ExitFeasible, nil)
	case bnp.StatusNoSolution:
		return newExitError(ExitNoSolution, nil)
	default:
		return newExitError(ExitSolverError, result.Err)
	}
}

func parseInstance(f *os.File, format string) (*pcpgraph.Graph, error) {
	switch strings.ToLower(format) {
	case "pcp", "":
		return instance.ParsePCP(f)
	case "json":
		return instance.ParseJSON(f)
	default:
		return nil, pcperr.Input("pcpsolve.parseInstance", fmt.Errorf("unknown format %q", format))
	}
}

func printResult(g *pcpgraph.Graph, result bnp.Result) {
	fmt.Printf("status: %s\n", result.Status)
	fmt.Printf("objective: %v\n", result.Objective)
	fmt.Printf("lower_bound: %v\n", result.GlobalLowerBound)
	fmt.Printf("nodes_created: %d\n", result.Statistics.NodesCreated)
	fmt.Printf("nodes_processed: %d\n", result.Statistics.NodesProcessed)
	fmt.Printf("nodes_pruned: %d\n", result.Statistics.NodesPruned)
	fmt.Printf("run_id: %s\n", result.RunID)

	for _, c := range sortedByValue(result.Columns, result.Solution) {
		fmt.Printf("column %d (value=%.4f): %v\n", c.ID, result.Solution[c.ID], c.Vertices)
	}
}

func sortedByValue(cols []*column.Column, primal map[column.ID]float64) []*column.Column {
	out := append([]*column.Column(nil), cols...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && primal[out[j].ID] > primal[out[j-1].ID]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
