package expr

import (
	"fmt"
	"math"
)

// node is a compiled expression tree element.
type node interface {
	eval(vars map[string]float64) (float64, error)
}

type numberLit struct {
	val float64
}

func (n *numberLit) eval(map[string]float64) (float64, error) {
	return n.val, nil
}

type constant struct {
	name string
	val  float64
}

func (c *constant) eval(map[string]float64) (float64, error) {
	return c.val, nil
}

type ident struct {
	name string
}

func (n *ident) eval(vars map[string]float64) (float64, error) {
	v, ok := vars[n.name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownIdentifier, n.name)
	}
	return v, nil
}

type unary struct {
	op      tokenKind
	operand node
}

func (u *unary) eval(vars map[string]float64) (float64, error) {
	v, err := u.operand.eval(vars)
	if err != nil {
		return 0, err
	}
	if u.op == tokMinus {
		return -v, nil
	}
	return v, nil
}

type binary struct {
	op       tokenKind
	lhs, rhs node
}

func (b *binary) eval(vars map[string]float64) (float64, error) {
	l, err := b.lhs.eval(vars)
	if err != nil {
		return 0, err
	}
	r, err := b.rhs.eval(vars)
	if err != nil {
		return 0, err
	}
	switch b.op {
	case tokPlus:
		return l + r, nil
	case tokMinus:
		return l - r, nil
	case tokStar:
		return l * r, nil
	case tokSlash:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return l / r, nil
	default:
		return math.NaN(), fmt.Errorf("%w: unsupported operator %s", ErrSyntax, b.op)
	}
}

type call struct {
	name string
	fn   function
	args []node
}

func (c *call) eval(vars map[string]float64) (float64, error) {
	args := make([]float64, len(c.args))
	for i, a := range c.args {
		v, err := a.eval(vars)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return c.fn.call(args), nil
}
