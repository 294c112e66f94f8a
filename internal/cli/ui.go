package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/heliosviz/graphkit/pkg/analysis"
	"github.com/heliosviz/graphkit/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleTableHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleTableCell   = lipgloss.NewStyle().Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(24)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints graph statistics on a single line.
func printStats(w io.Writer, stats pipeline.Stats, cached bool) {
	parts := []string{
		fmt.Sprintf("%d nodes", stats.NodeCount),
		fmt.Sprintf("%d edges", stats.EdgeCount),
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}
	parts = append(parts, statusStyle.Render(status))

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Fprintln(w, line)
}

// =============================================================================
// Tables
// =============================================================================

// printTable renders rows under headers in a rounded lipgloss table.
func printTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader.Padding(0, 1)
			}
			if col == 0 {
				return styleTableCell.Foreground(colorWhite)
			}
			return styleTableCell.Foreground(colorCyan)
		})
	fmt.Fprintln(w, t.Render())
}

// =============================================================================
// Reports
// =============================================================================

func fmtMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// printReport prints an analysis report as metric tables.
func printReport(w io.Writer, r *pipeline.Report) {
	fmt.Fprintln(w, StyleTitle.Render("Network"))
	printTable(w, []string{"Metric", "Value"}, [][]string{
		{"nodes", strconv.Itoa(r.Metrics.NodeCount)},
		{"edges", strconv.Itoa(r.Metrics.EdgeCount)},
		{"density", fmtMetric(r.Metrics.Density)},
		{"clustering coefficient", fmtMetric(r.Metrics.ClusteringCoefficient)},
		{"average path length", fmtMetric(r.Metrics.AveragePathLength)},
		{"components", strconv.Itoa(r.Components)},
	})

	fmt.Fprintln(w, StyleTitle.Render("Layout"))
	printTable(w, []string{"Metric", "Value"}, [][]string{
		{"edge crossings (edge pairs)", strconv.Itoa(r.Visualization.EdgeCrossings)},
		{"segment crossings", strconv.Itoa(r.Crossings)},
		{"node overlaps", strconv.Itoa(r.Visualization.NodeOverlaps)},
		{"layout quality", fmtMetric(r.Visualization.LayoutQuality)},
	})

	if len(r.Centrality) > 0 {
		fmt.Fprintln(w, StyleTitle.Render("Centrality"))
		printCentrality(w, r.Centrality, centralityBy["betweenness"], 10)
	}

	for _, is := range r.Issues {
		printWarning(w, "%s", is)
	}
	printStats(w, r.Stats, r.CacheHit)
}

// printCentrality prints the top nodes ranked by the by measure.
func printCentrality(w io.Writer, scores map[string]analysis.CentralityMeasures, by func(analysis.CentralityMeasures) float64, top int) {
	ranked := analysis.RankedCentrality(scores, by)
	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}
	rows := make([][]string, len(ranked))
	for i, id := range ranked {
		m := scores[id]
		rows[i] = []string{id, fmtMetric(m.Degree), fmtMetric(m.Betweenness), fmtMetric(m.Closeness)}
	}
	printTable(w, []string{"Node", "Degree", "Betweenness", "Closeness"}, rows)
}

// printClusterReport prints one row per cluster and the quality scores.
func printClusterReport(w io.Writer, r *pipeline.ClusterReport) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Clusters (%s)", r.Algorithm)))
	rows := make([][]string, len(r.Clusters))
	for i, members := range r.Clusters {
		rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(len(members)), joinIDs(members, 8)}
	}
	printTable(w, []string{"#", "Size", "Members"}, rows)
	printKeyValue(w, "silhouette", fmtMetric(r.Silhouette))
	printKeyValue(w, "modularity", fmtMetric(r.Modularity))
	printKeyValue(w, "iterations", strconv.Itoa(r.Iterations))
	printStats(w, r.Stats, r.CacheHit)
}

// printPathReport prints the route between source and target.
func printPathReport(w io.Writer, r *pipeline.PathReport) {
	if !r.Reachable {
		printWarning(w, "%s is not reachable from %s", r.Target, r.Source)
		printStats(w, r.Stats, r.CacheHit)
		return
	}
	printSuccess(w, "%d hop(s) from %s to %s", r.Length, r.Source, r.Target)
	printDetail(w, "%s", joinPath(r.Hops))
	if r.Weighted != nil {
		printKeyValue(w, "weighted cost", fmtMetric(r.Weighted.Cost))
		printDetail(w, "%s", joinPath(r.Weighted.Nodes))
	}
	printStats(w, r.Stats, r.CacheHit)
}

// =============================================================================
// Utilities
// =============================================================================

// joinIDs joins at most limit ids, summarizing the rest.
func joinIDs(ids []string, limit int) string {
	s := ""
	for i, id := range ids {
		if limit > 0 && i == limit {
			return s + fmt.Sprintf(", … (+%d)", len(ids)-limit)
		}
		if i > 0 {
			s += ", "
		}
		s += id
	}
	return s
}

func joinPath(ids []string) string {
	s := ""
	for i, id := range ids {
		if i > 0 {
			s += " " + iconArrow + " "
		}
		s += id
	}
	return s
}
