package design

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vk/designspace/internal/generator"
	"github.com/vk/designspace/internal/paramid"
)

// Design is a set of parameter values. It is safe for concurrent use.
type Design struct {
	mu        sync.RWMutex
	id        string
	values    map[string]any
	readOnly  bool
	extends   []*Design
	supported map[string]struct{}
}

// Option configures a Design.
type Option func(*Design)

// WithSupportedIDs restricts SetValue to the given parameter IDs and paths
// below them.
func WithSupportedIDs(ids []string) Option {
	return func(d *Design) {
		d.supported = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			d.supported[id] = struct{}{}
		}
	}
}

// New creates a design holding values. An empty id is replaced by a random
// UUID. The map is taken over by the design.
func New(id string, values map[string]any, opts ...Option) *Design {
	if id == "" {
		id = uuid.NewString()
	}
	if values == nil {
		values = make(map[string]any)
	}
	d := &Design{id: id, values: values}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID returns the design ID.
func (d *Design) ID() string { return d.id }

// Keys returns the IDs stored directly in the design, sorted.
func (d *Design) Keys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetValue returns the value for id, searching element and child paths and
// then the extending designs.
func (d *Design) GetValue(id string) (any, bool) {
	return d.getValue(id, map[*Design]bool{})
}

func (d *Design) getValue(id string, seen map[*Design]bool) (any, bool) {
	if seen[d] {
		return nil, false
	}
	seen[d] = true

	d.mu.RLock()
	v, ok := lookup(d.values, id)
	extends := append([]*Design(nil), d.extends...)
	d.mu.RUnlock()

	if ok {
		return v, true
	}
	for _, e := range extends {
		if v, ok := e.getValue(id, seen); ok {
			return v, true
		}
	}
	return nil, false
}

// SetValue stores v under id without type checks. Element and child paths
// write into the enclosing array or struct.
func (d *Design) SetValue(id string, v any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.readOnly {
		return fmt.Errorf("%w: %s", ErrReadOnly, d.id)
	}
	if d.supported != nil && !d.supports(id) {
		return fmt.Errorf("%w: %s", ErrUnknownParam, id)
	}

	if _, exists := d.values[id]; exists {
		d.values[id] = v
		return nil
	}
	key, rest, ok := splitStored(d.values, id)
	if !ok {
		d.values[id] = v
		return nil
	}
	return assign(d.values[key], rest, v, id)
}

func (d *Design) supports(id string) bool {
	for key := id; key != ""; key = paramid.Parent(key) {
		if _, ok := d.supported[key]; ok {
			return true
		}
	}
	return false
}

// SetReadOnly locks the design against writes. It cannot be undone.
func (d *Design) SetReadOnly() {
	d.mu.Lock()
	d.readOnly = true
	d.mu.Unlock()
}

// IsReadOnly reports whether the design is locked.
func (d *Design) IsReadOnly() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.readOnly
}

// ExtendScope adds other as a fallback for lookups. Adding nil, the design
// itself or a design already present does nothing.
func (d *Design) ExtendScope(other *Design) {
	if other == nil || other == d {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, e := range d.extends {
		if e == other {
			return
		}
	}
	d.extends = append(d.extends, other)
}

// ReduceScope removes other from the fallbacks.
func (d *Design) ReduceScope(other *Design) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, e := range d.extends {
		if e == other {
			d.extends = append(d.extends[:i:i], d.extends[i+1:]...)
			return
		}
	}
}

// Values returns a shallow copy of the stored values.
func (d *Design) Values() map[string]any {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// splitStored finds the longest stored key that is a proper prefix of id and
// returns the remaining path.
func splitStored(values map[string]any, id string) (string, []paramid.Segment, bool) {
	addr, err := paramid.Parse(id)
	if err != nil {
		return "", nil, false
	}
	for n := len(addr.Path) - 1; n > 0; n-- {
		key := (&paramid.Address{Path: addr.Path[:n]}).String()
		if _, ok := values[key]; ok {
			return key, addr.Path[n:], true
		}
	}
	return "", nil, false
}

func lookup(values map[string]any, id string) (any, bool) {
	if v, ok := values[id]; ok {
		return v, true
	}
	key, rest, ok := splitStored(values, id)
	if !ok {
		return nil, false
	}
	v := values[key]
	for _, seg := range rest {
		if v, ok = step(v, seg); !ok {
			return nil, false
		}
	}
	return v, true
}

func step(v any, seg paramid.Segment) (any, bool) {
	if seg.IsIndex() {
		arr, ok := v.([]any)
		if !ok || seg.Index > len(arr) {
			return nil, false
		}
		return arr[seg.Index-1], true
	}
	s, ok := v.(*generator.Struct)
	if !ok {
		return nil, false
	}
	return s.Get(seg.Name)
}

func assign(root any, rest []paramid.Segment, v any, id string) error {
	container := root
	for _, seg := range rest[:len(rest)-1] {
		next, ok := step(container, seg)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidPath, id)
		}
		container = next
	}

	last := rest[len(rest)-1]
	if last.IsIndex() {
		arr, ok := container.([]any)
		if !ok || last.Index > len(arr) {
			return fmt.Errorf("%w: %s", ErrInvalidPath, id)
		}
		arr[last.Index-1] = v
		return nil
	}
	s, ok := container.(*generator.Struct)
	if !ok || s == nil {
		return fmt.Errorf("%w: %s", ErrInvalidPath, id)
	}
	if s.Values == nil {
		s.Values = make(map[string]any)
	}
	if _, exists := s.Values[last.Name]; !exists {
		s.Order = append(s.Order, last.Name)
	}
	s.Values[last.Name] = v
	return nil
}
