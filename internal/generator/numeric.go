package generator

import (
	"fmt"
	"math"

	"github.com/vk/designspace/internal/interval"
	"github.com/vk/designspace/internal/param"
)

// intLimits returns the default domain of an integer type.
func intLimits(t param.Type) (int64, int64) {
	switch t {
	case param.Short:
		return math.MinInt16, math.MaxInt16
	case param.Integer:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

// floatLimits returns the default domain of a floating type.
func floatLimits(t param.Type) (float64, float64) {
	if t == param.Float {
		return -math.MaxFloat32, math.MaxFloat32
	}
	return -math.MaxFloat64, math.MaxFloat64
}

type intRange struct {
	lo, hi int64
	empty  bool
}

type floatRange struct {
	lo, hi      float64
	loExclusive bool
	hiExclusive bool
}

func (r floatRange) empty() bool {
	if r.hi == r.lo {
		return r.loExclusive || r.hiExclusive
	}
	return r.hi < r.lo
}

func (r floatRange) contains(v float64) bool {
	if v < r.lo || v > r.hi {
		return false
	}
	if r.loExclusive && v == r.lo {
		return false
	}
	return !(r.hiExclusive && v == r.hi)
}

// resolveRanges substitutes dependency values into every alternative of p.
func resolveRanges(p *param.Param, dep map[string]any) ([]interval.Interval, error) {
	ranges := p.Ranges()
	for i, r := range ranges {
		if r.IsResolved() {
			continue
		}
		vars := make(map[string]float64)
		for _, token := range r.Dependencies() {
			id := p.Ref(token)
			v, ok := dep[id]
			if !ok {
				return nil, fmt.Errorf("%w: %s needs %s", ErrMissingDependency, p.ID(), id)
			}
			f, ok := toFloat(v)
			if !ok {
				return nil, fmt.Errorf("%w: %s needs %s, got %T", ErrNotNumeric, p.ID(), id, v)
			}
			vars[token] = f
		}
		resolved, err := r.Resolve(vars)
		if err != nil {
			return nil, fmt.Errorf("resolving range of %s: %w", p.ID(), err)
		}
		ranges[i] = resolved
	}
	return ranges, nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

// intBounds tightens one resolved alternative to the integer range it admits
// within the domain of t.
func intBounds(t param.Type, r interval.Interval) intRange {
	lo, hi := intLimits(t)
	out := intRange{lo: lo, hi: hi}

	if v, ok := r.Min.Value(); ok {
		f := math.Ceil(v)
		if r.MinExclusive {
			f = math.Floor(v) + 1
		}
		switch {
		case math.IsNaN(f) || f > float64(hi):
			out.empty = true
		case f >= float64(hi):
			out.lo = hi
		case f > float64(lo):
			out.lo = int64(f)
		}
	}
	if v, ok := r.Max.Value(); ok {
		f := math.Floor(v)
		if r.MaxExclusive {
			f = math.Ceil(v) - 1
		}
		switch {
		case math.IsNaN(f) || f < float64(lo):
			out.empty = true
		case f <= float64(lo):
			out.hi = lo
		case f < float64(hi):
			out.hi = int64(f)
		}
	}
	if out.lo > out.hi {
		out.empty = true
	}
	return out
}

func floatBounds(t param.Type, r interval.Interval) floatRange {
	lo, hi := floatLimits(t)
	out := floatRange{lo: lo, hi: hi}
	if v, ok := r.Min.Value(); ok {
		out.lo, out.loExclusive = v, r.MinExclusive
	}
	if v, ok := r.Max.Value(); ok {
		out.hi, out.hiExclusive = v, r.MaxExclusive
	}
	return out
}

func rangeValid(t param.Type, r interval.Interval) bool {
	if t.IsInteger() {
		return !intBounds(t, r).empty
	}
	fr := floatBounds(t, r)
	return !math.IsNaN(fr.lo) && !math.IsNaN(fr.hi) && !fr.empty()
}

func (g *Generator) drawInt(t param.Type, r intRange) any {
	span := uint64(r.hi) - uint64(r.lo)
	var v int64
	if span == math.MaxUint64 {
		v = int64(g.rng.Uint64())
	} else {
		v = int64(uint64(r.lo) + g.rng.Uint64N(span+1))
	}
	switch t {
	case param.Short:
		return int16(v)
	case param.Integer:
		return int32(v)
	default:
		return v
	}
}

// maxResamples bounds the retries spent avoiding an exclusive endpoint.
const maxResamples = 64

func (g *Generator) drawFloat(t param.Type, r floatRange) any {
	var v float64
	for range maxResamples {
		u := g.rng.Float64()
		v = r.lo*(1-u) + r.hi*u
		v = math.Min(math.Max(v, r.lo), r.hi)
		if t == param.Float {
			v = float64(float32(v))
		}
		if r.contains(v) {
			break
		}
	}
	if !r.contains(v) {
		v = r.lo/2 + r.hi/2
	}
	return param.Convert(t, v)
}
