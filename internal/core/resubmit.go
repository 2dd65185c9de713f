package core

import (
	"fmt"
	"strings"
)

// NoFailedFormatives is the recommendation when no formative assignment
// scored below the failing threshold. The exact string is part of the
// output contract.
const NoFailedFormatives = "no failed formative assignments"

// failingGrade is the threshold below which a formative assignment becomes
// a resubmission candidate.
const failingGrade = 50

// Recommend selects which failed formative assignment to resubmit.
//
// Candidates are the formative assignments with Grade < 50, kept in input
// order. With no candidates the fixed NoFailedFormatives string is returned;
// with exactly one, that assignment is named. Otherwise the highest-weight
// candidate wins, and candidates tied for the highest weight are all listed
// in input order.
//
// The tie test uses exact float64 equality. No epsilon: two weights are tied
// only when their bits compare equal.
func Recommend(assignments []Assignment) string {
	var failed []Assignment
	for _, a := range assignments {
		if a.Category == Formative && a.Grade < failingGrade {
			failed = append(failed, a)
		}
	}

	switch len(failed) {
	case 0:
		return NoFailedFormatives
	case 1:
		return fmt.Sprintf("resubmit %q", failed[0].Name)
	}

	maxWeight := failed[0].Weight
	for _, a := range failed[1:] {
		if a.Weight > maxWeight {
			maxWeight = a.Weight
		}
	}

	var tied []string
	for _, a := range failed {
		if a.Weight == maxWeight {
			tied = append(tied, fmt.Sprintf("%q", a.Name))
		}
	}

	if len(tied) == 1 {
		return fmt.Sprintf("resubmit %s (highest-weight failed formative)", tied[0])
	}
	return fmt.Sprintf("resubmit one of %s (tied for highest weight among failed formatives)",
		strings.Join(tied, ", "))
}
