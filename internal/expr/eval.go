package expr

import (
	"github.com/abhisek/mathex/internal/rational"
)

// Evaluate computes the value of s with no restrictions on intermediate
// results. A trailing "=" is allowed.
func Evaluate(s string) (rational.Rational, error) {
	return EvaluateWith(s, Lenient)
}

// EvaluateWith computes the value of s, consulting policy on every operand
// and on every operator application.
func EvaluateWith(s string, policy Policy) (rational.Rational, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return rational.Rational{}, err
	}
	if policy == nil {
		policy = Lenient
	}

	m := machine{src: s, policy: policy}
	for _, t := range toks {
		if err := m.feed(t); err != nil {
			return rational.Rational{}, err
		}
	}
	return m.finish()
}

// machine is the two-stack shunting-yard evaluator. Operators are held as
// tokens so that "(" can live on the same stack as a sentinel.
type machine struct {
	src      string
	policy   Policy
	operands []rational.Rational
	ops      []Token
}

func (m *machine) feed(t Token) error {
	switch t.Kind {
	case Number:
		if err := m.policy.CheckOperand(t.Value); err != nil {
			return err
		}
		m.operands = append(m.operands, t.Value)

	case LParen:
		m.ops = append(m.ops, t)

	case RParen:
		for {
			if len(m.ops) == 0 {
				return m.syntaxErr(t.Pos, "unmatched )")
			}
			if m.ops[len(m.ops)-1].Kind == LParen {
				m.ops = m.ops[:len(m.ops)-1]
				break
			}
			if err := m.reduce(); err != nil {
				return err
			}
		}

	case Operator:
		for len(m.ops) > 0 {
			top := m.ops[len(m.ops)-1]
			if top.Kind == LParen || top.Op.precedence() < t.Op.precedence() {
				break
			}
			if err := m.reduce(); err != nil {
				return err
			}
		}
		m.ops = append(m.ops, t)
	}
	return nil
}

func (m *machine) finish() (rational.Rational, error) {
	for len(m.ops) > 0 {
		if top := m.ops[len(m.ops)-1]; top.Kind == LParen {
			return rational.Rational{}, m.syntaxErr(top.Pos, "unmatched (")
		}
		if err := m.reduce(); err != nil {
			return rational.Rational{}, err
		}
	}
	switch len(m.operands) {
	case 0:
		return rational.Rational{}, m.syntaxErr(len(m.src), "empty expression")
	case 1:
		return m.operands[0], nil
	}
	return rational.Rational{}, m.syntaxErr(len(m.src), "missing operator")
}

// reduce pops one operator and two operands (right first) and pushes the
// result.
func (m *machine) reduce() error {
	op := m.ops[len(m.ops)-1]
	m.ops = m.ops[:len(m.ops)-1]
	if len(m.operands) < 2 {
		return m.syntaxErr(op.Pos, "missing operand for "+op.Text)
	}
	right := m.operands[len(m.operands)-1]
	left := m.operands[len(m.operands)-2]
	m.operands = m.operands[:len(m.operands)-2]

	result, err := op.Op.apply(left, right)
	if err != nil {
		return err
	}
	if err := m.policy.CheckStep(op.Op, left, right, result); err != nil {
		return err
	}
	m.operands = append(m.operands, result)
	return nil
}

func (m *machine) syntaxErr(pos int, reason string) error {
	return &SyntaxError{Expr: m.src, Pos: pos, Reason: reason}
}
