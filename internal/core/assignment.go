package core

// Category classifies an assignment by stakes.
type Category string

const (
	// Formative marks low-stakes practice work.
	Formative Category = "FA"
	// Summative marks final, high-stakes work.
	Summative Category = "SA"
)

// Assignment is one graded piece of work.
//
// Invariants, established at the input boundary and not re-checked here:
//   - Name is non-empty (uniqueness is not required).
//   - Grade is within [0, 100].
//   - Weight is strictly positive.
//
// Values are immutable once constructed; the summarizer and the exporter
// only read them.
type Assignment struct {
	Name     string
	Category Category
	Grade    float64
	Weight   float64
}

// WeightedScore is the assignment's contribution to the final grade:
// (Grade / 100) * Weight. Derived on demand, never stored.
func (a Assignment) WeightedScore() float64 {
	return (a.Grade / 100) * a.Weight
}
