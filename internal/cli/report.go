package cli

import (
	"fmt"
	"io"

	"gradegen/internal/core"
)

// WriteReport renders the human-readable summary: one numbered line per
// record in input order, then the category totals, the final grade, the
// scaled score, the verdict, and the resubmission recommendation. All
// numerics print to two decimals.
func WriteReport(w io.Writer, assignments []core.Assignment, s core.Summary) {
	fmt.Fprintln(w, "\n--- Grade Summary ---")
	for i, a := range assignments {
		fmt.Fprintf(w, "%d. %s [%s] Grade: %.2f | Weight: %.2f | Weighted: %.2f\n",
			i+1, a.Name, a.Category, a.Grade, a.Weight, a.WeightedScore())
	}

	fmt.Fprintf(w, "\nFA total: %.2f / %.2f\n", s.FATotal, s.FAWeight)
	fmt.Fprintf(w, "SA total: %.2f / %.2f\n", s.SATotal, s.SAWeight)
	fmt.Fprintf(w, "Final grade: %.2f\n", s.FinalGrade)
	fmt.Fprintf(w, "GPA (5-point scale): %.2f\n", s.ScaledScore)
	fmt.Fprintf(w, "Pass status: %s\n", verdict(s.Passed))
	fmt.Fprintf(w, "Resubmission: %s\n", s.Resubmission)
}

func verdict(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
