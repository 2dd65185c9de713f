package core

// Summary is the complete outcome of one run over an ordered list of
// assignments.
type Summary struct {
	// FAWeight and SAWeight are the per-category weight sums
	// (0 when a category has no assignments).
	FAWeight float64
	SAWeight float64

	// FATotal and SATotal are the per-category weighted-score sums.
	FATotal float64
	SATotal float64

	// FinalGrade is FATotal + SATotal.
	FinalGrade float64

	// ScaledScore is FinalGrade rescaled onto a 5-point range:
	// (FinalGrade / 100) * 5. It is not clamped; when weights sum past
	// 100 it can exceed 5.
	ScaledScore float64

	// FAPass and SAPass hold per-category verdicts: a category passes
	// when its weighted total reaches half its weight. A category with
	// zero total weight trivially passes.
	FAPass bool
	SAPass bool

	// Passed is FAPass && SAPass.
	Passed bool

	// Resubmission is the recommendation produced by Recommend.
	Resubmission string
}

// Summarize computes the category totals, the final grade, the scaled score,
// the pass/fail verdict, and the resubmission recommendation for an ordered,
// non-empty list of assignments.
//
// Summarize is pure: it never mutates its input, and the same list always
// yields the same Summary. Callers must short-circuit the empty list before
// invoking; an empty list has no meaningful summary.
func Summarize(assignments []Assignment) Summary {
	var s Summary
	for _, a := range assignments {
		switch a.Category {
		case Formative:
			s.FAWeight += a.Weight
			s.FATotal += a.WeightedScore()
		case Summative:
			s.SAWeight += a.Weight
			s.SATotal += a.WeightedScore()
		}
	}

	s.FinalGrade = s.FATotal + s.SATotal
	s.ScaledScore = (s.FinalGrade / 100) * 5

	s.FAPass = s.FAWeight == 0 || s.FATotal >= 0.5*s.FAWeight
	s.SAPass = s.SAWeight == 0 || s.SATotal >= 0.5*s.SAWeight
	s.Passed = s.FAPass && s.SAPass

	s.Resubmission = Recommend(assignments)
	return s
}
