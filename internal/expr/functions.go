package expr

import (
	"math"
	"strings"
)

// Namespace is the prefix under which the math library is exposed.
const Namespace = "Math"

// function is one allow-listed math function. arity < 0 means variadic with
// at least one argument.
type function struct {
	arity int
	call  func(args []float64) float64
}

func unaryFn(f func(float64) float64) function {
	return function{arity: 1, call: func(a []float64) float64 { return f(a[0]) }}
}

func binaryFn(f func(float64, float64) float64) function {
	return function{arity: 2, call: func(a []float64) float64 { return f(a[0], a[1]) }}
}

var functions = map[string]function{
	"abs":       unaryFn(math.Abs),
	"acos":      unaryFn(math.Acos),
	"asin":      unaryFn(math.Asin),
	"atan":      unaryFn(math.Atan),
	"atan2":     binaryFn(math.Atan2),
	"cbrt":      unaryFn(math.Cbrt),
	"ceil":      unaryFn(math.Ceil),
	"cos":       unaryFn(math.Cos),
	"cosh":      unaryFn(math.Cosh),
	"exp":       unaryFn(math.Exp),
	"floor":     unaryFn(math.Floor),
	"hypot":     binaryFn(math.Hypot),
	"log":       unaryFn(math.Log),
	"log10":     unaryFn(math.Log10),
	"pow":       binaryFn(math.Pow),
	"round":     unaryFn(func(x float64) float64 { return math.Floor(x + 0.5) }),
	"signum":    unaryFn(signum),
	"sin":       unaryFn(math.Sin),
	"sinh":      unaryFn(math.Sinh),
	"sqrt":      unaryFn(math.Sqrt),
	"tan":       unaryFn(math.Tan),
	"tanh":      unaryFn(math.Tanh),
	"toDegrees": unaryFn(func(x float64) float64 { return x * 180 / math.Pi }),
	"toRadians": unaryFn(func(x float64) float64 { return x * math.Pi / 180 }),
	"max": {arity: -1, call: func(a []float64) float64 {
		m := a[0]
		for _, v := range a[1:] {
			m = math.Max(m, v)
		}
		return m
	}},
	"min": {arity: -1, call: func(a []float64) float64 {
		m := a[0]
		for _, v := range a[1:] {
			m = math.Min(m, v)
		}
		return m
	}},
}

var constants = map[string]float64{
	"PI": math.Pi,
	"E":  math.E,
}

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// IsNamespaced reports whether name refers to the math library rather than to
// a parameter.
func IsNamespaced(name string) bool {
	return name == Namespace || strings.HasPrefix(name, Namespace+".")
}

// member strips the namespace prefix from a Math reference.
func member(name string) string {
	return strings.TrimPrefix(name, Namespace+".")
}
