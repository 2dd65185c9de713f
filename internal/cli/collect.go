package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"gradegen/internal/core"
)

// assignmentInput is the validation boundary for one collected record. The
// tags state the contract every record must satisfy before it reaches the
// summarizer: non-empty name, known category, grade in [0,100], positive
// weight.
type assignmentInput struct {
	Name     string  `validate:"required"`
	Category string  `validate:"required,oneof=FA SA"`
	Grade    float64 `validate:"gte=0,lte=100"`
	Weight   float64 `validate:"gt=0"`
}

var validate = validator.New()

// InputError reports that the interactive session failed before the operator
// finished entering records (a read error on the input stream).
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return fmt.Sprintf("input aborted: %v", e.Err) }
func (e *InputError) Unwrap() error { return e.Err }

// errSessionEnded marks a cleanly closed input stream: the session simply
// has no more lines. A record half-entered at that point is discarded.
var errSessionEnded = errors.New("input closed")

// Collector runs the interactive prompt loop over an arbitrary
// reader/writer pair so tests can script a whole session.
type Collector struct {
	in  *bufio.Reader
	out io.Writer
}

func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{in: bufio.NewReader(in), out: out}
}

// Collect prompts for records until the operator declines to add another or
// the input stream ends. Every prompt retries until it receives a valid
// value, and each assembled record passes the assignmentInput validation
// gate before it joins the list.
//
// Answers of "y", "yes", or an empty line (case-insensitive) continue the
// loop; anything else stops it.
func (c *Collector) Collect() ([]core.Assignment, error) {
	var assignments []core.Assignment
	fmt.Fprintln(c.out, "Enter assignments. When finished, type 'n' when asked to add another.")

	for {
		rec, err := c.collectOne()
		if errors.Is(err, errSessionEnded) {
			return assignments, nil
		}
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, rec)

		again, err := c.readLine("Add another assignment? (y/n): ")
		if errors.Is(err, errSessionEnded) {
			return assignments, nil
		}
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(again) {
		case "y", "yes", "":
		default:
			return assignments, nil
		}
	}
}

func (c *Collector) collectOne() (core.Assignment, error) {
	for {
		name, err := c.promptNonEmpty("Assignment name: ")
		if err != nil {
			return core.Assignment{}, err
		}
		category, err := c.promptCategory()
		if err != nil {
			return core.Assignment{}, err
		}
		grade, err := c.promptFloat("Grade (0-100): ", 0, ptr(100.0), false)
		if err != nil {
			return core.Assignment{}, err
		}
		weight, err := c.promptFloat("Weight (positive number): ", 0, nil, true)
		if err != nil {
			return core.Assignment{}, err
		}

		in := assignmentInput{Name: name, Category: category, Grade: grade, Weight: weight}
		if err := validate.Struct(in); err != nil {
			// Backstop for values the per-prompt range checks cannot
			// reject: a NaN grade or weight fails every ordered
			// comparison, so only the gate catches it.
			fmt.Fprintf(c.out, "Invalid assignment (%v). Please re-enter it.\n", err)
			continue
		}
		return core.Assignment{
			Name:     name,
			Category: core.Category(category),
			Grade:    grade,
			Weight:   weight,
		}, nil
	}
}

func (c *Collector) promptNonEmpty(prompt string) (string, error) {
	for {
		v, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		fmt.Fprintln(c.out, "Value cannot be empty. Please try again.")
	}
}

func (c *Collector) promptCategory() (string, error) {
	for {
		v, err := c.readLine(`Category ("FA" or "SA"): `)
		if err != nil {
			return "", err
		}
		switch cat := strings.ToUpper(v); cat {
		case string(core.Formative), string(core.Summative):
			return cat, nil
		}
		fmt.Fprintln(c.out, `Invalid category. Please enter "FA" or "SA".`)
	}
}

// promptFloat retries until it reads a number within bounds. With
// strictGreater the value must exceed min; otherwise min is inclusive.
// A nil max leaves the value unbounded above.
func (c *Collector) promptFloat(prompt string, min float64, max *float64, strictGreater bool) (float64, error) {
	for {
		raw, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a numeric value.")
			continue
		}
		if strictGreater && v <= min {
			fmt.Fprintf(c.out, "Value must be greater than %g.\n", min)
			continue
		}
		if !strictGreater && v < min {
			fmt.Fprintf(c.out, "Value must be at least %g.\n", min)
			continue
		}
		if max != nil && v > *max {
			fmt.Fprintf(c.out, "Value must be at most %g.\n", *max)
			continue
		}
		return v, nil
	}
}

// readLine writes the prompt and returns the next input line, whitespace
// trimmed. A final unterminated line is still returned; end of input maps to
// errSessionEnded and other failures to InputError.
func (c *Collector) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	trimmed := strings.TrimSpace(line)
	if err != nil {
		if errors.Is(err, io.EOF) {
			if trimmed != "" {
				return trimmed, nil
			}
			return "", errSessionEnded
		}
		return "", &InputError{Err: err}
	}
	return trimmed, nil
}

func ptr(f float64) *float64 { return &f }
