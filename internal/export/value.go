package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/designspace/internal/design"
	"github.com/vk/designspace/internal/generator"
	"github.com/vk/designspace/internal/paramid"
)

// ChoiceKey holds the selected variant of a structural value.
const ChoiceKey = "_choice"

// tree groups design values by path segment. Values reachable through an
// enclosing value stored in the design are left to that value.
func tree(d *design.Design) map[string]any {
	values := d.Values()
	root := make(map[string]any)

	for _, key := range d.Keys() {
		parts := strings.Split(key, paramid.Separator)
		cur := root
		covered := false
		for _, part := range parts[:len(parts)-1] {
			next, exists := cur[part]
			if !exists {
				m := make(map[string]any)
				cur[part] = m
				cur = m
				continue
			}
			m, ok := next.(map[string]any)
			if !ok {
				covered = true
				break
			}
			cur = m
		}
		last := parts[len(parts)-1]
		if _, exists := cur[last]; !covered && !exists {
			cur[last] = values[key]
		}
	}
	return root
}

// ToCty converts a design value to a cty.Value.
func ToCty(v any) (cty.Value, error) {
	switch t := v.(type) {
	case nil:
		return cty.NullVal(cty.String), nil
	case bool:
		return cty.BoolVal(t), nil
	case string:
		return cty.StringVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int16:
		return cty.NumberIntVal(int64(t)), nil
	case int32:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case float32:
		return floatVal(float64(t))
	case float64:
		return floatVal(t)
	case []any:
		if len(t) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(t))
		for i, e := range t {
			ev, err := ToCty(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i+1, err)
			}
			elems[i] = ev
		}
		return cty.TupleVal(elems), nil
	case *generator.Struct:
		if t == nil {
			return cty.NullVal(cty.String), nil
		}
		attrs := make(map[string]any, len(t.Values)+1)
		for k, cv := range t.Values {
			attrs[k] = cv
		}
		if t.Choice != "" {
			attrs[ChoiceKey] = string(t.Choice)
		}
		return ToCty(attrs)
	case map[string]any:
		if len(t) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(t))
		for k, cv := range t {
			av, err := ToCty(cv)
			if err != nil {
				return cty.NilVal, fmt.Errorf("%s: %w", k, err)
			}
			attrs[k] = av
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
	}
}

// floatVal rejects NaN and infinities, which cty numbers cannot hold.
func floatVal(f float64) (cty.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return cty.NilVal, fmt.Errorf("non-finite number %v", f)
	}
	return cty.NumberFloatVal(f), nil
}

// toPlain converts a design value to plain maps and slices for YAML.
func toPlain(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = toPlain(e)
		}
		return out
	case *generator.Struct:
		if t == nil {
			return nil
		}
		out := make(map[string]any, len(t.Values)+1)
		for k, cv := range t.Values {
			out[k] = toPlain(cv)
		}
		if t.Choice != "" {
			out[ChoiceKey] = string(t.Choice)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, cv := range t {
			out[k] = toPlain(cv)
		}
		return out
	default:
		return v
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
