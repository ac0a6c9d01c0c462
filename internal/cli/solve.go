package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/eograph"
)

func newSolveCmd(opts *globalOptions) *cobra.Command {
	var graphID string

	cmd := &cobra.Command{
		Use:   "solve <state>",
		Short: "Show a shortest move sequence for one orientation state",
		Long: `Look up a 12-character orientation state ('0' oriented, '1' flipped) in
a stored graph and print its distance from the oriented state, a shortest
scramble reaching it, and the inverse sequence that orients it.

Examples:
  eograph solve 111111111111
  eograph solve 110000000000 --graph <graph_id>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := eograph.ParseState(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(ctx, opts)
			if err != nil {
				return err
			}
			defer store.Close()

			_, g, err := loadGraph(ctx, store, graphID)
			if err != nil {
				return err
			}

			res, err := eograph.ShortestPaths(g, eograph.Solved)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := newReportStyles(out)
			d, ok := res.Distance(target)
			if !ok {
				fmt.Fprintf(out, "%s %s is not reachable from %s\n", st.label.Render("State:"), target, eograph.Solved)
				return nil
			}

			fmt.Fprintf(out, "%s %s\n", st.label.Render("State:    "), target)
			fmt.Fprintf(out, "%s %s\n", st.label.Render("Distance: "), st.value.Render(fmt.Sprint(d)))
			fmt.Fprintf(out, "%s %s\n", st.label.Render("Scramble: "), st.moves.Render(orNone(res.Algorithm(target))))
			fmt.Fprintf(out, "%s %s\n", st.label.Render("Solution: "), st.moves.Render(orNone(eograph.ConcatMoves(res.Solution(target)))))
			return nil
		},
	}

	cmd.Flags().StringVar(&graphID, "graph", "", "Graph ID to search (default: latest)")
	return cmd
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
