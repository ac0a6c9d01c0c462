package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/eograph"
)

// reportStyles holds the styles for one output writer.
type reportStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	state lipgloss.Style
	moves lipgloss.Style
	muted lipgloss.Style
}

// newReportStyles binds styles to w so color is only emitted to terminals.
func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		label: r.NewStyle().Foreground(lipgloss.Color("241")),
		value: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		state: r.NewStyle().Foreground(lipgloss.Color("252")),
		moves: r.NewStyle().Foreground(lipgloss.Color("82")),
		muted: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// renderReport writes the maximum length, the distance histogram and every
// farthest state with its move sequence.
func renderReport(w io.Writer, graphID string, nodes int, rep eograph.Report, hist []int) {
	st := newReportStyles(w)

	fmt.Fprintln(w, st.title.Render("Edge Orientation Analysis"))
	fmt.Fprintln(w, st.muted.Render(strings.Repeat("=", 25)))
	fmt.Fprintf(w, "%s %s\n", st.label.Render("Graph:        "), graphID)
	fmt.Fprintf(w, "%s %s\n", st.label.Render("Start:        "), rep.Start)
	fmt.Fprintf(w, "%s %d / %d\n", st.label.Render("Reachable:    "), rep.Reachable, nodes)
	fmt.Fprintf(w, "%s %s\n", st.label.Render("Max length:   "), st.value.Render(fmt.Sprint(rep.MaxLength)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, st.title.Render("Distance histogram"))
	for d, n := range hist {
		fmt.Fprintf(w, "  %2d  %5d\n", d, n)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("Farthest states (%d)", len(rep.Farthest))))
	for _, wt := range rep.Farthest {
		moves := wt.Moves
		if moves == "" {
			moves = "(none)"
		}
		fmt.Fprintf(w, "  %s  %s\n", st.state.Render(wt.State.String()), st.moves.Render(moves))
	}
}
