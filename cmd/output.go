package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	sim "github.com/mess-sim/mess-sim/sim"
	"github.com/mess-sim/mess-sim/sim/report"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// printReport renders the metrics block, the completion table, the 5-minute
// histogram, and the cumulative completion curve.
func printReport(rs sim.ResultSet, sum *report.Summary) {
	_, _ = bold.Println("Serving duty report")
	fmt.Printf("Target:   %.0f min\n", sum.TargetMinutes)
	fmt.Printf("Realized: %.2f min (%+.2f min)\n", sum.RealizedMinutes, sum.SlackMinutes)
	if sum.TargetMet {
		_, _ = green.Println("Status:   target met")
	} else {
		_, _ = red.Println("Status:   target exceeded")
	}
	fmt.Printf("Tables:   %d\n\n", sum.TableCount)

	printCompletions(rs)
	printHistogram(sum)
	printCurve(sum)
}

// printCompletions lists every table with its absolute finish time and its
// offset from the duty start.
func printCompletions(rs sim.ResultSet) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Table", "Finished At", "Offset (min)")
	for _, r := range rs.Records() {
		_ = table.Append(
			fmt.Sprintf("%d", r.TableID),
			r.FinishedClock(),
			fmt.Sprintf("%.2f", r.OffsetMinutes),
		)
	}
	if err := table.Render(); err != nil {
		_, _ = red.Println("error rendering completion table:", err)
	}
	fmt.Println()
}

// printHistogram draws one bar per 5-minute window.
func printHistogram(sum *report.Summary) {
	_, _ = bold.Println("Completions per 5-minute window")
	for _, b := range sum.Histogram {
		fmt.Printf("%3.0f-%-3.0f | %3d %s\n",
			b.StartMinute, b.StartMinute+report.BucketMinutes, b.Count, strings.Repeat("#", b.Count))
	}
	fmt.Println()
}

// printCurve samples the cumulative completion curve at each window edge.
func printCurve(sum *report.Summary) {
	_, _ = bold.Println("Cumulative completions")
	if len(sum.Curve) == 0 {
		fmt.Println()
		return
	}
	idx := 0
	completed := 0
	for edge := report.BucketMinutes; ; edge += report.BucketMinutes {
		for idx < len(sum.Curve) && sum.Curve[idx].OffsetMinutes <= edge {
			completed = sum.Curve[idx].Completed
			idx++
		}
		fmt.Printf("by %3.0f min: %d\n", edge, completed)
		if idx >= len(sum.Curve) {
			break
		}
	}
	fmt.Println()
}
