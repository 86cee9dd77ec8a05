package verify

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteChiSquaredReport renders the trial outcomes as a table.
func WriteChiSquaredReport(w io.Writer, name string, trials []ChiSquaredTrial) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"Trial", "Statistic", "DoF", "p-value", "Alpha", "Verdict"})

	for _, trial := range trials {
		verdict := "pass"
		if !trial.Passed {
			verdict = trial.Reason
			if trial.DumpPath != "" {
				verdict = fmt.Sprintf("%s (tables: %s)", trial.Reason, trial.DumpPath)
			}
		}
		table.Append([]string{
			fmt.Sprintf("%d", trial.Trial),
			fmt.Sprintf("%.2f", trial.Statistic),
			fmt.Sprintf("%d", trial.Dof),
			fmt.Sprintf("%.5f", trial.PValue),
			fmt.Sprintf("%.5f", trial.Alpha),
			verdict,
		})
	}

	fmt.Fprintf(w, "chi-squared: %s\n", name)
	table.Render()
}

// WriteEnergyReport renders the per-direction energy estimates as a table.
func WriteEnergyReport(w io.Writer, name string, results []EnergyResult) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"Direction", "Mean energy", "Consistent", "Verdict"})

	for _, result := range results {
		verdict := "pass"
		if !result.Passed {
			verdict = "energy gain"
		}
		table.Append([]string{
			fmt.Sprintf("%d", result.Direction),
			fmt.Sprintf("%.5f", result.Mean),
			fmt.Sprintf("%.1f%%", 100*result.ConsistentFraction),
			verdict,
		})
	}

	fmt.Fprintf(w, "energy conservation: %s\n", name)
	table.Render()
}

// Passed reports whether every trial in a chi-squared run passed.
func Passed(trials []ChiSquaredTrial) bool {
	for _, trial := range trials {
		if !trial.Passed {
			return false
		}
	}
	return len(trials) > 0
}

// EnergyPassed reports whether every direction in an energy run passed.
func EnergyPassed(results []EnergyResult) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return len(results) > 0
}
