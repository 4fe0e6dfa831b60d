package designspace

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/vk/designspace/internal/ctxlog"
	"github.com/vk/designspace/internal/design"
	"github.com/vk/designspace/internal/generator"
	"github.com/vk/designspace/internal/param"
	"github.com/vk/designspace/internal/paramid"
	"github.com/vk/designspace/internal/paramstore"
)

// Space wraps one finalized store.
type Space struct {
	id    string
	store *paramstore.Store
	gen   *generator.Generator
}

// Option configures a Space.
type Option func(*Space)

// WithID sets the space ID.
func WithID(id string) Option {
	return func(s *Space) { s.id = id }
}

// WithRand sets the random source used for generation.
func WithRand(rng *rand.Rand) Option {
	return func(s *Space) { s.gen = generator.New(rng) }
}

// WithSeed makes generation deterministic.
func WithSeed(seed uint64) Option {
	return func(s *Space) { s.gen = generator.NewSeeded(seed) }
}

// New finalizes store and wraps it. Without WithID the space gets a random
// UUID.
func New(ctx context.Context, store *paramstore.Store, opts ...Option) (*Space, error) {
	if err := store.Finalize(ctx); err != nil {
		return nil, fmt.Errorf("finalizing parameter store: %w", err)
	}
	s := &Space{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.gen == nil {
		s.gen = generator.New(nil)
	}
	ctxlog.FromContext(ctx).Debug("Created design space.", "id", s.id, "params", len(store.SupportedParamIDs()))
	return s, nil
}

// ID returns the space ID.
func (s *Space) ID() string { return s.id }

// Store returns the underlying store.
func (s *Space) Store() *paramstore.Store { return s.store }

// SupportedParamIDs returns every param ID, sorted.
func (s *Space) SupportedParamIDs() []string {
	return s.store.SupportedParamIDs()
}

// InitializationOrder returns the dependency waves of the store.
func (s *Space) InitializationOrder(ctx context.Context) ([][]string, error) {
	return s.store.InitializationOrder(ctx)
}

// SetFixed sets or clears the fixed value of a param.
func (s *Space) SetFixed(ctx context.Context, id string, v any) error {
	return s.store.SetFixed(ctx, id, v)
}

// Next generates a value for id. An unknown id yields ok == false and no
// error.
func (s *Space) Next(ctx context.Context, id string) (any, bool, error) {
	if _, ok := s.store.Param(id); !ok {
		return nil, false, nil
	}
	r := s.newResolver(ctx)
	if err := r.resolve(id); err != nil {
		return nil, false, err
	}
	return r.scratch[id], true, nil
}

// NextDesign generates every top-level param into a new design. An empty id
// is replaced by a random UUID.
func (s *Space) NextDesign(ctx context.Context, id string) (*design.Design, error) {
	r := s.newResolver(ctx)
	for _, p := range s.store.TopLevel() {
		if err := r.resolve(p.ID()); err != nil {
			return nil, err
		}
	}

	values := make(map[string]any, len(r.scratch))
	for key, v := range r.scratch {
		if !r.covered(key) {
			values[key] = v
		}
	}
	d := design.New(id, values, design.WithSupportedIDs(s.store.SupportedParamIDs()))
	ctxlog.FromContext(ctx).Debug("Generated design.", "space", s.id, "design", d.ID(), "values", len(values))
	return d, nil
}

// NextEmptyDesign returns a design mapping every param ID to nil.
func (s *Space) NextEmptyDesign(id string) *design.Design {
	ids := s.store.SupportedParamIDs()
	values := make(map[string]any, len(ids))
	for _, pid := range ids {
		values[pid] = nil
	}
	return design.New(id, values, design.WithSupportedIDs(ids))
}

type resolver struct {
	ctx     context.Context
	space   *Space
	scratch map[string]any
	active  map[string]bool
	// nested marks IDs whose value is part of a generated enclosing struct.
	nested map[string]bool
}

func (s *Space) newResolver(ctx context.Context) *resolver {
	return &resolver{
		ctx:     ctxlog.With(ctx, "space", s.id),
		space:   s,
		scratch: make(map[string]any),
		active:  make(map[string]bool),
		nested:  make(map[string]bool),
	}
}

func (r *resolver) resolve(id string) error {
	if _, done := r.scratch[id]; done {
		return nil
	}
	store := r.space.store

	if root := r.structRoot(id); root != "" && !r.active[root] && !r.reachesActive(root) {
		if err := r.resolve(root); err != nil {
			return err
		}
		if _, done := r.scratch[id]; done {
			return nil
		}
	}

	if r.active[id] {
		return fmt.Errorf("%w: %s", paramstore.ErrCircularDependency, id)
	}
	r.active[id] = true
	defer delete(r.active, id)

	p, ok := store.Param(id)
	if !ok {
		return fmt.Errorf("%w: %s", paramstore.ErrUnknownParam, id)
	}
	deps, err := store.DependenciesOf(id)
	if err != nil {
		return err
	}
	for _, d := range deps {
		if err := r.resolve(d); err != nil {
			return err
		}
	}

	v, err := r.space.gen.NextValue(p, r.scratch)
	if err != nil {
		return fmt.Errorf("generating %s: %w", id, err)
	}
	r.scratch[id] = v
	ctxlog.FromContext(r.ctx).Debug("Generated value.", "param", id, "value", v)

	if st, ok := v.(*generator.Struct); ok {
		st.Walk(id, func(childID string, cv any) {
			if _, done := r.scratch[childID]; !done {
				r.scratch[childID] = cv
			}
			r.nested[childID] = true
		})
	}
	return nil
}

// reachesActive reports whether resolving id would lead back into an ID that
// is currently being resolved. A struct child is then generated on its own
// and the struct picks it up later.
func (r *resolver) reachesActive(id string) bool {
	seen := make(map[string]bool)
	var walk func(id string) bool
	walk = func(id string) bool {
		if seen[id] {
			return false
		}
		seen[id] = true
		if r.active[id] {
			return true
		}
		if _, done := r.scratch[id]; done {
			return false
		}
		if root := r.structRoot(id); root != "" && walk(root) {
			return true
		}
		deps, err := r.space.store.DependenciesOf(id)
		if err != nil {
			return false
		}
		for _, d := range deps {
			if walk(d) {
				return true
			}
		}
		return false
	}
	return walk(id)
}

// structRoot returns the outermost structural ancestor of id, or "".
func (r *resolver) structRoot(id string) string {
	root := ""
	for parent := paramid.Parent(id); parent != ""; parent = paramid.Parent(parent) {
		if p, ok := r.space.store.Param(parent); ok && p.Type() == param.Structural {
			root = parent
		}
	}
	return root
}

// covered reports whether key is reachable through an enclosing value that
// is also part of the result.
func (r *resolver) covered(key string) bool {
	if !r.nested[key] {
		return false
	}
	for parent := paramid.Parent(key); parent != ""; parent = paramid.Parent(parent) {
		if _, ok := r.scratch[parent]; ok {
			return true
		}
	}
	return false
}
