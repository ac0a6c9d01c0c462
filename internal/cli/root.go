// Package cli implements the command-line interface for eograph.
//
// Running eograph with no subcommand builds the edge-orientation graph,
// stores it, reloads it and reports the farthest states. The build,
// analyze, solve and status subcommands run the stages separately.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/eograph/internal/artifact"
)

const version = "0.1.0"

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	dbPath    string
	storeKind string
	dir       string
	redisAddr string
	verbose   bool
}

// storeConfig maps the flags onto an artifact backend.
func (o *globalOptions) storeConfig() artifact.Config {
	return artifact.Config{
		Kind:      o.storeKind,
		DBPath:    o.dbPath,
		Dir:       o.dir,
		RedisAddr: o.redisAddr,
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "eograph",
		Short: "Edge orientation state graph and diameter search",
		Long: `eograph builds the state graph of 3x3x3 edge orientations under the
six face turns, stores it, and searches it breadth-first from the oriented
state to find the states that need the most moves.

With no subcommand it runs the whole pipeline.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd.Context(), opts, cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Database file path (default: ~/.eograph/eograph.db)")
	root.PersistentFlags().StringVar(&opts.storeKind, "store", artifact.KindSQLite, "Graph store backend (sqlite, file, redis)")
	root.PersistentFlags().StringVar(&opts.dir, "dir", "eograph-graphs", "Directory for the file store")
	root.PersistentFlags().StringVar(&opts.redisAddr, "redis-addr", "localhost:6379", "Redis address for the redis store")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newBuildCmd(opts))
	root.AddCommand(newAnalyzeCmd(opts))
	root.AddCommand(newSolveCmd(opts))
	root.AddCommand(newStatusCmd(opts))

	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
