package ta

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for declaration parsing and identifier lookups.
var (
	// ErrBadDeclaration indicates a declaration line that cannot be parsed.
	ErrBadDeclaration = errors.New("ta: malformed declaration")

	// ErrRedeclared indicates an identifier declared in more than one category.
	ErrRedeclared = errors.New("ta: identifier redeclared")

	// ErrUndefined indicates a lookup of an identifier that is not declared.
	ErrUndefined = errors.New("ta: undefined identifier")

	// ErrClockValue indicates a static value lookup on a clock.
	// Clocks have no scalar value outside an LP variable layout.
	ErrClockValue = errors.New("ta: clock has no static value")
)

// Context is the immutable record of declared clocks, constants, and
// integer variables of one template, with their initial values.
//
// It is built once (from declaration text or NewContext) and consumed
// read-only. Simulating updates along a path goes through Mutable, which
// never aliases the original.
type Context struct {
	clocks    map[string]struct{}
	constants map[string]int64
	vars      map[string]int64
}

// EmptyContext returns a Context with no declarations.
func EmptyContext() *Context {
	return &Context{
		clocks:    make(map[string]struct{}),
		constants: make(map[string]int64),
		vars:      make(map[string]int64),
	}
}

// NewContext builds a Context from explicit declaration sets.
// Returns ErrRedeclared if any identifier appears in more than one category.
func NewContext(clocks []string, constants, vars map[string]int64) (*Context, error) {
	ctx := EmptyContext()
	for _, c := range clocks {
		if err := ctx.declareClock(c); err != nil {
			return nil, err
		}
	}
	for id, v := range constants {
		if err := ctx.declareConstant(id, v); err != nil {
			return nil, err
		}
	}
	for id, v := range vars {
		if err := ctx.declareVariable(id, v); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

// ParseDeclarations scans declaration text line by line and registers
// clocks ("clock x, y;"), constants ("const int n = 4;"), and variables
// ("int v = 2, w;"). Omitted initializers default to 0. Lines not starting
// with one of the three keywords are ignored; this is a deliberate
// simplification, not a C-subset parser.
func ParseDeclarations(text string) (*Context, error) {
	ctx := EmptyContext()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(line, " \t")
		var err error
		switch {
		case strings.HasPrefix(line, "clock"):
			err = ctx.parseClocks(line)
		case strings.HasPrefix(line, "const int"):
			err = ctx.parseBindings(line, "const int", ctx.declareConstant)
		case strings.HasPrefix(line, "int"):
			err = ctx.parseBindings(line, "int", ctx.declareVariable)
		}
		if err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

// declBody cuts the text between a declaration keyword and the terminating ';'.
func declBody(line, keyword string) (string, error) {
	semi := strings.IndexByte(line, ';')
	if semi < 0 {
		return "", fmt.Errorf("%w: missing ';' in %q", ErrBadDeclaration, line)
	}
	return line[len(keyword):semi], nil
}

func (c *Context) parseClocks(line string) error {
	body, err := declBody(line, "clock")
	if err != nil {
		return err
	}
	for _, name := range strings.Split(body, ",") {
		if err = c.declareClock(strings.TrimSpace(name)); err != nil {
			return err
		}
	}
	return nil
}

// parseBindings parses "name [= value]" items and registers each via declare.
func (c *Context) parseBindings(line, keyword string, declare func(string, int64) error) error {
	body, err := declBody(line, keyword)
	if err != nil {
		return err
	}
	for _, item := range strings.Split(body, ",") {
		name, init := item, "0"
		if eq := strings.IndexByte(item, '='); eq >= 0 {
			name, init = item[:eq], item[eq+1:]
		}
		val, err := strconv.ParseInt(strings.TrimSpace(init), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: bad initializer in %q", ErrBadDeclaration, item)
		}
		if err = declare(strings.TrimSpace(name), val); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) declareClock(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty clock name", ErrBadDeclaration)
	}
	if c.IsDefined(name) {
		return fmt.Errorf("%w: %q", ErrRedeclared, name)
	}
	c.clocks[name] = struct{}{}
	return nil
}

func (c *Context) declareConstant(name string, val int64) error {
	if name == "" {
		return fmt.Errorf("%w: empty constant name", ErrBadDeclaration)
	}
	if c.IsDefined(name) {
		return fmt.Errorf("%w: %q", ErrRedeclared, name)
	}
	c.constants[name] = val
	return nil
}

func (c *Context) declareVariable(name string, val int64) error {
	if name == "" {
		return fmt.Errorf("%w: empty variable name", ErrBadDeclaration)
	}
	if c.IsDefined(name) {
		return fmt.Errorf("%w: %q", ErrRedeclared, name)
	}
	c.vars[name] = val
	return nil
}

// IsClock reports whether id is a declared clock.
func (c *Context) IsClock(id string) bool {
	_, ok := c.clocks[id]
	return ok
}

// IsConstant reports whether id is a declared constant.
func (c *Context) IsConstant(id string) bool {
	_, ok := c.constants[id]
	return ok
}

// IsVariable reports whether id is a declared mutable variable.
func (c *Context) IsVariable(id string) bool {
	_, ok := c.vars[id]
	return ok
}

// IsDefined reports whether id is a clock, constant, or variable.
func (c *Context) IsDefined(id string) bool {
	return c.IsClock(id) || c.IsConstant(id) || c.IsVariable(id)
}

// IsLiteral reports whether s parses as a base-10 integer.
func IsLiteral(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// Value resolves a literal, constant, or variable to its current value.
// Returns ErrClockValue for clocks and ErrUndefined for unknown identifiers.
func (c *Context) Value(id string) (int64, error) {
	if IsLiteral(id) {
		v, _ := strconv.ParseInt(id, 10, 64)
		return v, nil
	}
	if c.IsClock(id) {
		return 0, fmt.Errorf("%w: %q", ErrClockValue, id)
	}
	if v, ok := c.constants[id]; ok {
		return v, nil
	}
	if v, ok := c.vars[id]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUndefined, id)
}

// Clocks returns the declared clock names in ascending order.
func (c *Context) Clocks() []string {
	out := make([]string, 0, len(c.clocks))
	for name := range c.clocks {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Mutable deep-copies the context into a MutableContext. Mutating the
// clone never affects the original.
func (c *Context) Mutable() *MutableContext {
	m := &MutableContext{Context: *EmptyContext()}
	for name := range c.clocks {
		m.clocks[name] = struct{}{}
	}
	for name, v := range c.constants {
		m.constants[name] = v
	}
	for name, v := range c.vars {
		m.vars[name] = v
	}
	return m
}

// MutableContext is a Context clone whose variables can be reassigned,
// used to simulate variable updates while walking a path.
type MutableContext struct {
	Context
}

// SetVal assigns a variable. Unknown identifiers are created as variables;
// constants and clocks are never assignable through updates, which
// ParseUpdate guarantees by construction.
func (m *MutableContext) SetVal(id string, val int64) {
	m.vars[id] = val
}
