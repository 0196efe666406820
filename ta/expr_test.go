package ta_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ntago/ntago/ta"
)

func exprContext(t *testing.T) *ta.Context {
	t.Helper()
	ctx, err := ta.ParseDeclarations("clock x, y;\nconst int N = 10;\nint v = 3;")
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}

// TestTokenize covers one- and two-character operators and the
// no-operator error.
func TestTokenize(t *testing.T) {
	cases := []struct {
		in            string
		lhs, op, rhs  string
	}{
		{"x < 5", "x", "<", "5"},
		{"x<=5", "x", "<=", "5"},
		{"n == 3", "n", "==", "3"},
		{"v += 2", "v", "+=", "2"},
		{"x-y>=1", "x", "-", "y>=1"}, // first operator wins; callers choose opChars
	}
	for _, tc := range cases {
		lhs, op, rhs, err := ta.Tokenize(tc.in, "<>=+-")
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tc.in, err)
		}
		if lhs != tc.lhs || op != tc.op || rhs != tc.rhs {
			t.Errorf("Tokenize(%q) = (%q, %q, %q); want (%q, %q, %q)",
				tc.in, lhs, op, rhs, tc.lhs, tc.op, tc.rhs)
		}
	}
	if _, _, _, err := ta.Tokenize("just text", "<>="); !errors.Is(err, ta.ErrBadExpression) {
		t.Errorf("no operator: want ErrBadExpression, got %v", err)
	}
}

// TestParseConstraint_Clock covers plain clock constraints on either side.
func TestParseConstraint_Clock(t *testing.T) {
	ctx := exprContext(t)

	c, err := ta.ParseConstraint("x <= 10", ctx)
	assert.NoError(t, err)
	assert.Equal(t, ta.ClockConstraint, c.Kind)
	assert.Equal(t, ta.Le, c.Op)
	assert.Equal(t, []string{"x"}, c.Clocks)
	assert.Equal(t, ta.Right, c.ThresholdSide)
	assert.Equal(t, "10", c.Threshold())

	// Threshold on the left: "10 > x" means x is bounded above by 10.
	c, err = ta.ParseConstraint("10 > x", ctx)
	assert.NoError(t, err)
	assert.Equal(t, ta.Left, c.ThresholdSide)
	assert.Equal(t, "10", c.Threshold())
	assert.Equal(t, []string{"x"}, c.Clocks)

	// Constant threshold.
	c, err = ta.ParseConstraint("x >= N", ctx)
	assert.NoError(t, err)
	assert.Equal(t, "N", c.Threshold())
}

// TestParseConstraint_Difference covers the two-clock difference form.
func TestParseConstraint_Difference(t *testing.T) {
	ctx := exprContext(t)
	c, err := ta.ParseConstraint("x - y < 5", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.Clocks, []string{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Clocks = %v; want %v", got, want)
	}
	if !c.Strict() {
		t.Errorf("'<' should be strict")
	}
	// Mixing clocks and non-clocks on the clock side is rejected.
	if _, err = ta.ParseConstraint("x - v < 5", ctx); !errors.Is(err, ta.ErrBadExpression) {
		t.Errorf("mixed difference: want ErrBadExpression, got %v", err)
	}
	// A clock cannot serve as threshold.
	if _, err = ta.ParseConstraint("x < y", ctx); !errors.Is(err, ta.ErrBadExpression) {
		t.Errorf("clock threshold: want ErrBadExpression, got %v", err)
	}
}

// TestConstraint_Eval covers static evaluation of data constraints and
// the clock-constraint refusal.
func TestConstraint_Eval(t *testing.T) {
	ctx := exprContext(t)

	c, err := ta.ParseConstraint("v <= N", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if c.Kind != ta.DataConstraint {
		t.Fatalf("Kind = %v; want DataConstraint", c.Kind)
	}
	ok, err := c.Eval(ctx)
	if err != nil || !ok {
		t.Errorf("Eval(v <= N) = %v, %v; want true, nil", ok, err)
	}

	c, err = ta.ParseConstraint("v == 4", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ = c.Eval(ctx); ok {
		t.Errorf("Eval(v == 4) with v=3 should be false")
	}

	c, err = ta.ParseConstraint("x <= 10", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = c.Eval(ctx); !errors.Is(err, ta.ErrClockValue) {
		t.Errorf("clock Eval: want ErrClockValue, got %v", err)
	}
}

// TestParseConstraints_Conjunction covers the " && " joined label form
// and its round-trip through JoinConstraints.
func TestParseConstraints_Conjunction(t *testing.T) {
	ctx := exprContext(t)
	label := "x <= 10 && v == 3"
	cs, err := ta.ParseConstraints(label, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 2 {
		t.Fatalf("len = %d; want 2", len(cs))
	}
	if got := ta.JoinConstraints(cs); got != label {
		t.Errorf("round-trip = %q; want %q", got, label)
	}
}

// TestParseUpdate covers assignment forms, reset detection, and the
// constant-target rejection.
func TestParseUpdate(t *testing.T) {
	ctx := exprContext(t)

	u, err := ta.ParseUpdate("x = 0", ctx)
	assert.NoError(t, err)
	assert.True(t, u.Reset)
	assert.Equal(t, "x", u.Target)

	u, err = ta.ParseUpdate("v += N", ctx)
	assert.NoError(t, err)
	assert.False(t, u.Reset)
	assert.Equal(t, ta.AddAssign, u.Op)

	_, err = ta.ParseUpdate("N = 1", ctx)
	assert.ErrorIs(t, err, ta.ErrBadExpression)
}

// TestUpdate_Apply runs a sequence of data updates against a mutable
// context and confirms clock resets refuse to apply.
func TestUpdate_Apply(t *testing.T) {
	ctx := exprContext(t)
	m := ctx.Mutable()

	us, err := ta.ParseUpdates("v = N, v -= 4", ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range us {
		if err = u.Apply(m); err != nil {
			t.Fatalf("Apply(%s): %v", u, err)
		}
	}
	if v, _ := m.Value("v"); v != 6 {
		t.Errorf("v = %d after 'v = N, v -= 4'; want 6", v)
	}

	reset, err := ta.ParseUpdate("x = 0", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err = reset.Apply(m); !errors.Is(err, ta.ErrBadExpression) {
		t.Errorf("reset Apply: want ErrBadExpression, got %v", err)
	}
}
