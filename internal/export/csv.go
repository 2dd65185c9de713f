// Package export persists collected assignment records as a CSV artifact.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"gradegen/internal/core"
)

// DefaultPath is the CSV filename used when no override is configured.
const DefaultPath = "grades.csv"

// header is the fixed first row of the artifact. Field order and spelling
// are part of the byte-exact output contract.
var header = []string{"Assignment", "Category", "Grade", "Weight"}

// WriteCSV writes one row per assignment, in input order, with Grade and
// Weight formatted to exactly two decimals. Lines end in CRLF and fields are
// quoted only when they contain separators or quotes, so repeated runs over
// the same records produce byte-identical files.
func WriteCSV(path string, assignments []core.Assignment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := writeRows(f, assignments); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func writeRows(f *os.File, assignments []core.Assignment) error {
	w := csv.NewWriter(f)
	w.UseCRLF = true

	if err := w.Write(header); err != nil {
		return err
	}
	for _, a := range assignments {
		row := []string{
			a.Name,
			string(a.Category),
			fmt.Sprintf("%.2f", a.Grade),
			fmt.Sprintf("%.2f", a.Weight),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
