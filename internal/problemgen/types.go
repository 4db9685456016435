package problemgen

import (
	"strings"

	"github.com/abhisek/mathex/internal/expr"
	"github.com/abhisek/mathex/internal/rational"
)

// Exercise is a generated problem ready for the worksheet.
type Exercise struct {
	// Expression is the rendered problem, e.g. "1/2 + 1'1/3 =".
	// Operators use the display glyphs + - × ÷.
	Expression string

	// Answer is the exact value of Expression.
	Answer rational.Rational

	// Index is the 1-based position on the worksheet. It is a display
	// field only and never takes part in deduplication.
	Index int
}

// Key returns the deduplication key: the normalized expression.
func (e Exercise) Key() string {
	return expr.Normalize(e.Expression)
}

// Shape is where parentheses go in a rendered expression.
type Shape int

const (
	// Flat has no parentheses.
	Flat Shape = iota

	// GroupFirst wraps the first pair: (a op b) op c op d.
	GroupFirst

	// GroupMiddle wraps the middle pair: a op (b op c) op d.
	GroupMiddle
)

func (s Shape) String() string {
	switch s {
	case GroupFirst:
		return "group-first"
	case GroupMiddle:
		return "group-middle"
	}
	return "flat"
}

// Candidate is an exercise under construction.
type Candidate struct {
	Operands []rational.Rational
	Ops      []expr.Op
	Shape    Shape

	// Expression is the rendered text, filled by Render.
	Expression string

	// Answer is the authoritative (unrestricted) value of Expression.
	Answer rational.Rational

	// Range is the exclusive bound the exercise was drawn for.
	Range int
}

// Render writes the operands and operators left to right in source order
// and terminates the text with " =".
func (c *Candidate) Render() string {
	var b strings.Builder
	for i, v := range c.Operands {
		if i > 0 {
			b.WriteByte(' ')
			b.WriteString(c.Ops[i-1].Glyph())
			b.WriteByte(' ')
		}
		if c.opens(i) {
			b.WriteByte('(')
		}
		b.WriteString(v.String())
		if c.closes(i) {
			b.WriteByte(')')
		}
	}
	b.WriteString(" =")
	c.Expression = b.String()
	return c.Expression
}

func (c *Candidate) opens(i int) bool {
	switch c.Shape {
	case GroupFirst:
		return i == 0
	case GroupMiddle:
		return i == 1
	}
	return false
}

func (c *Candidate) closes(i int) bool {
	switch c.Shape {
	case GroupFirst:
		return i == 1
	case GroupMiddle:
		return i == 2
	}
	return false
}

// hasDivision reports whether any operator is ÷.
func (c *Candidate) hasDivision() bool {
	for _, op := range c.Ops {
		if op == expr.Div {
			return true
		}
	}
	return false
}
