package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vk/designspace/internal/expr"
)

// Unbounded is the textual form of a missing bound.
const Unbounded = "*"

// Endpoint is one side of an interval. The zero value is unbounded.
//
// A bounded endpoint keeps its source text. Endpoints without parameter
// references are folded to a number when they are created; the others keep
// their compiled expression until Resolve substitutes concrete values.
type Endpoint struct {
	text  string
	expr  *expr.Expression
	value float64
	known bool
}

// Number returns a concrete endpoint.
func Number(v float64) Endpoint {
	return Endpoint{text: strconv.FormatFloat(v, 'g', -1, 64), value: v, known: true}
}

// ParseEndpoint compiles a textual endpoint. "" and "*" are unbounded.
func ParseEndpoint(text string) (Endpoint, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == Unbounded {
		return Endpoint{}, nil
	}
	e, err := expr.Compile(text)
	if err != nil {
		return Endpoint{}, fmt.Errorf("invalid bound %q: %w", text, err)
	}
	ep := Endpoint{text: text, expr: e}
	if e.IsConstant() {
		v, err := e.Eval(nil)
		if err != nil {
			return Endpoint{}, fmt.Errorf("invalid bound %q: %w", text, err)
		}
		ep.value, ep.known = v, true
	}
	return ep, nil
}

// NewEndpoint builds an endpoint from a Go number, an expression string, or
// nil for an unbounded side.
func NewEndpoint(v any) (Endpoint, error) {
	switch t := v.(type) {
	case nil:
		return Endpoint{}, nil
	case Endpoint:
		return t, nil
	case string:
		return ParseEndpoint(t)
	case int:
		return Number(float64(t)), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case float32:
		return Number(float64(t)), nil
	case float64:
		if math.IsNaN(t) {
			return Endpoint{}, fmt.Errorf("bound cannot be NaN")
		}
		return Number(t), nil
	default:
		return Endpoint{}, fmt.Errorf("unsupported bound type %T", v)
	}
}

// IsUnbounded reports whether the endpoint places no limit on its side.
func (e Endpoint) IsUnbounded() bool {
	return e.text == ""
}

// IsResolved reports whether the endpoint is unbounded or has a concrete value.
func (e Endpoint) IsResolved() bool {
	return e.IsUnbounded() || e.known
}

// Value returns the concrete value of a resolved, bounded endpoint.
func (e Endpoint) Value() (float64, bool) {
	return e.value, e.known
}

// Expression returns the compiled expression, if the endpoint was parsed from
// text.
func (e Endpoint) Expression() *expr.Expression {
	return e.expr
}

// Dependencies returns the parameter identifiers referenced by a deferred
// endpoint.
func (e Endpoint) Dependencies() []string {
	if e.expr == nil || e.known {
		return nil
	}
	return e.expr.Dependencies()
}

// Resolve evaluates a deferred endpoint. Resolved endpoints are returned
// unchanged.
func (e Endpoint) Resolve(vars map[string]float64) (Endpoint, error) {
	if e.IsResolved() {
		return e, nil
	}
	v, err := e.expr.Eval(vars)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{text: e.text, expr: e.expr, value: v, known: true}, nil
}

// String returns the source text of the endpoint, or "*" when unbounded.
func (e Endpoint) String() string {
	if e.IsUnbounded() {
		return Unbounded
	}
	return e.text
}

