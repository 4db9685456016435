// Package expr tokenizes and evaluates four-operation arithmetic over exact
// rationals, honoring operator precedence and parentheses.
package expr

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/mathex/internal/rational"
)

// Op is a binary arithmetic operator.
type Op byte

const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'
)

// Ops lists the operators in display order.
var Ops = []Op{Add, Sub, Mul, Div}

// Glyph returns the display form of op: + - × ÷.
func (op Op) Glyph() string {
	switch op {
	case Mul:
		return "×"
	case Div:
		return "÷"
	}
	return string(rune(op))
}

func (op Op) String() string { return op.Glyph() }

// precedence orders ×/÷ above +/-.
func (op Op) precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	}
	return 0
}

// apply computes left op right.
func (op Op) apply(left, right rational.Rational) (rational.Rational, error) {
	switch op {
	case Add:
		return left.Add(right)
	case Sub:
		return left.Sub(right)
	case Mul:
		return left.Mul(right)
	case Div:
		return left.Div(right)
	}
	return rational.Rational{}, &SyntaxError{Reason: "unknown operator " + string(rune(op))}
}

// opFromRune maps an operator glyph (display or ASCII) to its Op.
func opFromRune(r rune) (Op, bool) {
	switch r {
	case '+':
		return Add, true
	case '-':
		return Sub, true
	case '×', '*':
		return Mul, true
	case '÷', '/':
		return Div, true
	}
	return 0, false
}

// Kind classifies a token.
type Kind int

const (
	Number Kind = iota
	Operator
	LParen
	RParen
)

// Token is a lexical element of an expression.
type Token struct {
	Kind  Kind
	Text  string
	Pos   int // byte offset in the source
	Op    Op
	Value rational.Rational
}

// Tokenize splits s into tokens. Whitespace separates tokens and '=' is
// ignored. Inside a run of digits '/' is a fraction bar and '\'' joins the
// whole part of a mixed number; a '/' that starts a token is division.
func Tokenize(s string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r), r == '=':
			i += size
		case r == '(':
			toks = append(toks, Token{Kind: LParen, Text: "(", Pos: i})
			i += size
		case r == ')':
			toks = append(toks, Token{Kind: RParen, Text: ")", Pos: i})
			i += size
		case r >= '0' && r <= '9':
			j := i
			for j < len(s) && (isDigit(s[j]) || s[j] == '/' || s[j] == '\'') {
				j++
			}
			lit := s[i:j]
			v, err := rational.Parse(lit)
			if err != nil {
				return nil, &SyntaxError{Expr: s, Pos: i, Reason: "bad number " + lit, Err: err}
			}
			toks = append(toks, Token{Kind: Number, Text: lit, Pos: i, Value: v})
			i = j
		default:
			op, ok := opFromRune(r)
			if !ok {
				return nil, &SyntaxError{Expr: s, Pos: i, Reason: "unexpected character " + string(r)}
			}
			toks = append(toks, Token{Kind: Operator, Text: string(r), Pos: i, Op: op})
			i += size
		}
	}
	return toks, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Normalize returns the deduplication key of an expression: whitespace
// removed and × ÷ mapped to * /.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
		case r == '×':
			b.WriteByte('*')
		case r == '÷':
			b.WriteByte('/')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CountOperators returns the number of binary operators in s, or -1 if s
// does not tokenize.
func CountOperators(s string) int {
	toks, err := Tokenize(s)
	if err != nil {
		return -1
	}
	n := 0
	for _, t := range toks {
		if t.Kind == Operator {
			n++
		}
	}
	return n
}
