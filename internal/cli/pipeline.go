package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/eograph"
	"github.com/SeamusWaldron/eograph/internal/artifact"
	"github.com/SeamusWaldron/eograph/internal/storage"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Build, store, reload and analyze the graph",
		Long: `Build the full transition graph, store it, load it back from the store
and report the maximum solving length with every farthest state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd.Context(), opts, cmd)
		},
	}
}

func newBuildCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the transition graph and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx, opts)
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := buildAndSave(ctx, store)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored graph %s\n", id)
			return nil
		},
	}
}

func newAnalyzeCmd(opts *globalOptions) *cobra.Command {
	var graphID string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Search a stored graph and report the farthest states",
		Long: `Load a stored graph (the latest one unless --graph is given), run a
breadth-first search from the oriented state and report the farthest states.

Examples:
  eograph analyze
  eograph analyze --graph <graph_id>
  eograph analyze --store file --dir ./graphs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStore(ctx, opts)
			if err != nil {
				return err
			}
			defer store.Close()

			return analyzeStored(ctx, store, graphID, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&graphID, "graph", "", "Graph ID to analyze (default: latest)")
	return cmd
}

// runPipeline builds, stores, reloads and analyzes the graph.
func runPipeline(ctx context.Context, opts *globalOptions, cmd *cobra.Command) error {
	store, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := buildAndSave(ctx, store)
	if err != nil {
		return err
	}
	return analyzeStored(ctx, store, id, cmd.OutOrStdout())
}

// openStore opens the backend selected by the flags.
func openStore(ctx context.Context, opts *globalOptions) (artifact.Store, error) {
	logger := loggerFromContext(ctx)
	store, err := artifact.Open(opts.storeConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open graph store: %w", err)
	}
	logger.Debug("opened graph store", "backend", opts.storeKind)
	return store, nil
}

// buildAndSave builds the graph for the default generators and stores it.
func buildAndSave(ctx context.Context, store artifact.Store) (string, error) {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	b, err := eograph.NewBuilder(eograph.DefaultGenerators(), eograph.WithLogger(logger))
	if err != nil {
		return "", err
	}
	g := b.Build()
	if err := g.Validate(b.Degree()); err != nil {
		return "", err
	}
	prog.done("Built transition graph", "nodes", g.NumNodes(), "arcs", g.NumArcs())

	prog = newProgress(logger)
	id, err := store.Save(ctx, g)
	if err != nil {
		return "", fmt.Errorf("failed to store graph: %w", err)
	}
	prog.done("Stored graph", "id", id)
	return id, nil
}

// loadGraph loads graphID, or the latest graph when graphID is empty.
func loadGraph(ctx context.Context, store artifact.Store, graphID string) (string, *eograph.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var g *eograph.Graph
	var err error
	if graphID == "" {
		graphID, g, err = artifact.LoadLatest(ctx, store)
	} else {
		g, err = store.Load(ctx, graphID)
	}
	if errors.Is(err, artifact.ErrNotFound) && graphID == "" {
		return "", nil, fmt.Errorf("no stored graph; run 'eograph build' first: %w", err)
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to load graph: %w", err)
	}

	// A graph missing arcs would search only part of the state space.
	degree := len(eograph.DefaultGenerators()) * len(eograph.Turns)
	if err := g.Validate(degree); err != nil {
		return "", nil, fmt.Errorf("graph %s: %w: %w", graphID, artifact.ErrCorrupt, err)
	}

	prog.done("Loaded graph", "id", graphID, "nodes", g.NumNodes())
	return graphID, g, nil
}

// analyzeStored loads a graph, searches it, records the result when the
// store is the SQLite database, and writes the report to out.
func analyzeStored(ctx context.Context, store artifact.Store, graphID string, out io.Writer) error {
	logger := loggerFromContext(ctx)

	graphID, g, err := loadGraph(ctx, store, graphID)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	res, rep, err := eograph.Analyze(g, eograph.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	prog.done("Searched graph", "reachable", rep.Reachable, "max_length", rep.MaxLength)

	if s, ok := store.(*artifact.SQLiteStore); ok {
		analysisID, err := storage.NewAnalysisRepository(s.DB()).Create(graphID, rep)
		if err != nil {
			return fmt.Errorf("failed to record analysis: %w", err)
		}
		logger.Debug("recorded analysis", "id", analysisID)
	}

	renderReport(out, graphID, g.NumNodes(), rep, eograph.Histogram(res))
	return nil
}
