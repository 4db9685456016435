package grader

import (
	"slices"
	"strconv"
	"strings"
)

// Report splits graded line numbers into correct and wrong, each ascending.
type Report struct {
	Correct []int
	Wrong   []int
}

// Summarize builds a Report from Grade's verdicts.
func Summarize(verdicts map[int]bool) Report {
	r := Report{Correct: []int{}, Wrong: []int{}}
	for idx, ok := range verdicts {
		if ok {
			r.Correct = append(r.Correct, idx)
		} else {
			r.Wrong = append(r.Wrong, idx)
		}
	}
	slices.Sort(r.Correct)
	slices.Sort(r.Wrong)
	return r
}

// Total returns the number of graded lines.
func (r Report) Total() int { return len(r.Correct) + len(r.Wrong) }

// String renders the report in the Grade.txt format:
//
//	Correct: 5 (1, 3, 5, 7, 9)
//	Wrong: 5 (2, 4, 6, 8, 10)
func (r Report) String() string {
	var b strings.Builder
	writeLine(&b, "Correct", r.Correct)
	b.WriteByte('\n')
	writeLine(&b, "Wrong", r.Wrong)
	return b.String()
}

func writeLine(b *strings.Builder, label string, idx []int) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(strconv.Itoa(len(idx)))
	b.WriteString(" (")
	for i, n := range idx {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(')')
}
