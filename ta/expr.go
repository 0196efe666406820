package ta

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadExpression indicates an expression string that cannot be parsed
// against the current context.
var ErrBadExpression = errors.New("ta: malformed expression")

// CompareOp is a comparison operator of a constraint.
type CompareOp uint8

// Comparison operators, in UPPAAL textual order.
const (
	Lt CompareOp = iota // <
	Le                  // <=
	Eq                  // ==
	Ge                  // >=
	Gt                  // >
)

var compareOpNames = [...]string{"<", "<=", "==", ">=", ">"}

// String returns the textual operator form.
func (op CompareOp) String() string {
	if int(op) < len(compareOpNames) {
		return compareOpNames[op]
	}
	return "?"
}

func parseCompareOp(tok string) (CompareOp, error) {
	for i, name := range compareOpNames {
		if tok == name {
			return CompareOp(i), nil
		}
	}
	return 0, fmt.Errorf("%w: comparison operator %q", ErrBadExpression, tok)
}

// Side tags which side of a constraint holds the threshold.
type Side uint8

// Threshold sides.
const (
	Left Side = iota
	Right
)

// ConstraintKind discriminates the two constraint families, decided once
// at parse time.
type ConstraintKind uint8

const (
	// DataConstraint compares non-clock operands and is statically evaluable.
	DataConstraint ConstraintKind = iota

	// ClockConstraint compares a clock, or a clock difference x-y, against
	// a threshold. Never statically evaluable.
	ClockConstraint
)

// Tokenize splits an expression at its first operator character. If the
// following character is also an operator character the two form one
// two-character operator (e.g. "<=", "==", "+=").
func Tokenize(s, opChars string) (lhs, op, rhs string, err error) {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(opChars, s[i]) < 0 {
			continue
		}
		lhs = strings.TrimSpace(s[:i])
		op = s[i : i+1]
		rhs = strings.TrimSpace(s[i+1:])
		if i+1 < len(s) && strings.IndexByte(opChars, s[i+1]) >= 0 {
			op = s[i : i+2]
			rhs = strings.TrimSpace(s[i+2:])
		}
		return lhs, op, rhs, nil
	}
	return "", "", "", fmt.Errorf("%w: no operator in %q", ErrBadExpression, s)
}

// Constraint is one simple comparison from a guard or invariant.
//
// For ClockKind constraints, Clocks holds one clock name (plain constraint)
// or two (difference Clocks[0]-Clocks[1]), and ThresholdSide tags the side
// holding the threshold expression. Data constraints leave Clocks empty.
type Constraint struct {
	Kind ConstraintKind

	// LHS and RHS are the trimmed textual sides of the comparison.
	LHS, RHS string

	Op CompareOp

	Clocks        []string
	ThresholdSide Side
}

// constraintDelim joins simple constraints into guard/invariant labels.
const constraintDelim = " && "

// ParseConstraint parses one simple constraint, choosing ClockConstraint
// when either side, split further on '-' to catch differences, names a
// clock in ctx.
func ParseConstraint(s string, ctx *Context) (*Constraint, error) {
	lhs, opTok, rhs, err := Tokenize(s, "<>=")
	if err != nil {
		return nil, err
	}
	op, err := parseCompareOp(opTok)
	if err != nil {
		return nil, err
	}
	if sideHasClock(lhs, ctx) || sideHasClock(rhs, ctx) {
		return newClockConstraint(lhs, op, rhs, ctx)
	}
	return &Constraint{Kind: DataConstraint, LHS: lhs, Op: op, RHS: rhs}, nil
}

// ParseConstraints parses a "&&"-joined guard or invariant label.
func ParseConstraints(s string, ctx *Context) ([]*Constraint, error) {
	parts := strings.Split(s, strings.TrimSpace(constraintDelim))
	out := make([]*Constraint, 0, len(parts))
	for _, part := range parts {
		c, err := ParseConstraint(strings.TrimSpace(part), ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func sideHasClock(side string, ctx *Context) bool {
	for _, part := range strings.Split(side, "-") {
		if ctx.IsClock(strings.TrimSpace(part)) {
			return true
		}
	}
	return false
}

func newClockConstraint(lhs string, op CompareOp, rhs string, ctx *Context) (*Constraint, error) {
	c := &Constraint{Kind: ClockConstraint, LHS: lhs, Op: op, RHS: rhs}

	// The threshold is whichever side does not hold the clock(s).
	clockSide := rhs
	c.ThresholdSide = Left
	if !ctx.IsConstant(lhs) && !IsLiteral(lhs) && !ctx.IsVariable(lhs) {
		clockSide = lhs
		c.ThresholdSide = Right
	}

	for _, part := range strings.Split(clockSide, "-") {
		name := strings.TrimSpace(part)
		if !ctx.IsClock(name) {
			return nil, fmt.Errorf("%w: %q is not a clock in %q", ErrBadExpression, name, lhs+" "+op.String()+" "+rhs)
		}
		c.Clocks = append(c.Clocks, name)
	}
	if len(c.Clocks) > 2 {
		return nil, fmt.Errorf("%w: clock difference with more than two clocks", ErrBadExpression)
	}
	if ctx.IsClock(c.Threshold()) {
		return nil, fmt.Errorf("%w: clock-valued threshold %q", ErrBadExpression, c.Threshold())
	}
	return c, nil
}

// Threshold returns the side of the constraint not holding the clock(s).
func (c *Constraint) Threshold() string {
	if c.ThresholdSide == Left {
		return c.LHS
	}
	return c.RHS
}

// SetThreshold rewrites the threshold side in place.
func (c *Constraint) SetThreshold(v string) {
	if c.ThresholdSide == Left {
		c.LHS = v
		return
	}
	c.RHS = v
}

// Strict reports whether the comparison is a strict inequality.
func (c *Constraint) Strict() bool {
	return c.Op == Lt || c.Op == Gt
}

// Eval statically evaluates a data constraint against ctx.
// Clock constraints cannot be statically checked and return ErrClockValue.
func (c *Constraint) Eval(ctx *Context) (bool, error) {
	if c.Kind == ClockConstraint {
		return false, fmt.Errorf("%w: constraint %q", ErrClockValue, c.String())
	}
	lhs, err := ctx.Value(c.LHS)
	if err != nil {
		return false, err
	}
	rhs, err := ctx.Value(c.RHS)
	if err != nil {
		return false, err
	}
	switch c.Op {
	case Lt:
		return lhs < rhs, nil
	case Le:
		return lhs <= rhs, nil
	case Eq:
		return lhs == rhs, nil
	case Ge:
		return lhs >= rhs, nil
	default:
		return lhs > rhs, nil
	}
}

// String returns the textual "lhs op rhs" form.
func (c *Constraint) String() string {
	return c.LHS + " " + c.Op.String() + " " + c.RHS
}

// JoinConstraints renders simple constraints back into one label string.
func JoinConstraints(cs []*Constraint) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, constraintDelim)
}

// AssignOp is the operator of an update expression.
type AssignOp uint8

// Assignment operators.
const (
	Assign    AssignOp = iota // =
	AddAssign                 // +=
	SubAssign                 // -=
)

var assignOpNames = [...]string{"=", "+=", "-="}

// String returns the textual operator form.
func (op AssignOp) String() string {
	if int(op) < len(assignOpNames) {
		return assignOpNames[op]
	}
	return "?"
}

// Update is one assignment from a transition's update label. An Update
// whose target is a clock is a clock reset; reset lists are expected to
// carry only true resets of the form "clock = 0".
type Update struct {
	Target  string
	Op      AssignOp
	Operand string

	// Reset marks updates whose Target is a clock.
	Reset bool
}

// updateDelim joins updates into assignment labels; executed left to right.
const updateDelim = ", "

// ParseUpdate parses one update expression against ctx.
func ParseUpdate(s string, ctx *Context) (*Update, error) {
	lhs, opTok, rhs, err := Tokenize(s, "=<>!+-")
	if err != nil {
		return nil, err
	}
	u := &Update{Target: lhs, Operand: rhs, Reset: ctx.IsClock(lhs)}
	switch opTok {
	case "=":
		u.Op = Assign
	case "+=":
		u.Op = AddAssign
	case "-=":
		u.Op = SubAssign
	default:
		return nil, fmt.Errorf("%w: assignment operator %q", ErrBadExpression, opTok)
	}
	if ctx.IsConstant(lhs) {
		return nil, fmt.Errorf("%w: constant %q is not assignable", ErrBadExpression, lhs)
	}
	return u, nil
}

// ParseUpdates parses a comma-joined update label.
func ParseUpdates(s string, ctx *Context) ([]*Update, error) {
	parts := strings.Split(s, strings.TrimSpace(updateDelim))
	out := make([]*Update, 0, len(parts))
	for _, part := range parts {
		u, err := ParseUpdate(strings.TrimSpace(part), ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// Apply executes the update against m. Literals, constants, and variables
// on the operand side resolve uniformly through Context.Value. Clock
// resets are not applicable here; the realizability engine handles them
// through variable bookkeeping instead.
func (u *Update) Apply(m *MutableContext) error {
	if u.Reset {
		return fmt.Errorf("%w: clock reset %q applied as data update", ErrBadExpression, u.String())
	}
	operand, err := m.Value(u.Operand)
	if err != nil {
		return err
	}
	switch u.Op {
	case Assign:
		m.SetVal(u.Target, operand)
		return nil
	default:
		cur, err := m.Value(u.Target)
		if err != nil {
			return err
		}
		if u.Op == AddAssign {
			m.SetVal(u.Target, cur+operand)
		} else {
			m.SetVal(u.Target, cur-operand)
		}
		return nil
	}
}

// String returns the textual "target op operand" form.
func (u *Update) String() string {
	return u.Target + " " + u.Op.String() + " " + u.Operand
}

// JoinUpdates renders updates back into one label string.
func JoinUpdates(us []*Update) string {
	parts := make([]string, len(us))
	for i, u := range us {
		parts[i] = u.String()
	}
	return strings.Join(parts, updateDelim)
}
