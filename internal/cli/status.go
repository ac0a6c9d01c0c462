package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/eograph/internal/storage"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored graphs and the last analysis",
		Long:  `Display the database path, the most recently stored graphs and the result of the last recorded analysis.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			dbPath := opts.dbPath
			if dbPath == "" {
				defaultPath, err := storage.DefaultDBPath()
				if err != nil {
					return err
				}
				dbPath = defaultPath
			}

			fmt.Fprintln(out, "eograph Status")
			fmt.Fprintln(out, "==============")
			fmt.Fprintf(out, "Database: %s\n", dbPath)
			fmt.Fprintln(out)

			db, err := storage.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.MigrateUp(); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			graphs, err := storage.NewGraphRepository(db).List(5)
			if err != nil {
				return err
			}
			if len(graphs) == 0 {
				fmt.Fprintln(out, "No stored graphs")
			} else {
				fmt.Fprintf(out, "Recent graphs (%d):\n", len(graphs))
				for _, g := range graphs {
					fmt.Fprintf(out, "  - %s  %s  %d states, %d arcs\n",
						g.GraphID, g.CreatedAt.Format(time.RFC3339), g.NodeCount, g.ArcCount)
				}
			}
			fmt.Fprintln(out)

			last, err := storage.NewAnalysisRepository(db).GetLast()
			if err != nil {
				return err
			}
			if last == nil {
				fmt.Fprintln(out, "No analyses recorded")
				return nil
			}

			fmt.Fprintf(out, "Last analysis: %s (graph %s)\n", last.CreatedAt.Format(time.RFC3339), last.GraphID)
			fmt.Fprintf(out, "  Max length: %d\n", last.MaxLength)
			fmt.Fprintf(out, "  Reachable:  %d\n", last.Reachable)
			fmt.Fprintf(out, "  Farthest:   %d states\n", len(last.Farthest))
			return nil
		},
	}
}
