package paramstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/designspace/internal/ctxlog"
	"github.com/vk/designspace/internal/param"
)

// Store holds params keyed by absolute ID. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	params    map[string]*param.Param
	topLevel  []*param.Param
	deps      map[string]map[string]struct{} // Key: param ID, Value: set of dependency IDs
	waves     [][]string
	finalized bool
}

// New creates an empty store.
func New() *Store {
	return &Store{
		params: make(map[string]*param.Param),
		deps:   make(map[string]map[string]struct{}),
	}
}

// AddParam registers params together with their nested children. Either all
// of them are added or none is.
func (s *Store) AddParam(ctx context.Context, params ...*param.Param) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return ErrFinalized
	}

	pending := make(map[string]*param.Param)
	var collect func(p *param.Param) error
	collect = func(p *param.Param) error {
		id := p.ID()
		if _, exists := s.params[id]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateParam, id)
		}
		if _, exists := pending[id]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateParam, id)
		}
		pending[id] = p
		for _, c := range p.Nested() {
			if err := collect(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, p := range params {
		if p == nil {
			return fmt.Errorf("nil parameter")
		}
		if err := collect(p); err != nil {
			return err
		}
	}

	for id, p := range pending {
		s.params[id] = p
	}
	for _, p := range params {
		if p.IsTopLevel() {
			s.topLevel = append(s.topLevel, p)
		}
	}
	ctxlog.FromContext(ctx).Debug("Added parameters.", "count", len(pending))
	return nil
}

// Param returns the param registered under id.
func (s *Store) Param(id string) (*param.Param, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.params[id]
	return p, ok
}

// SupportedParamIDs returns every registered ID in sorted order.
func (s *Store) SupportedParamIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.params))
	for id := range s.params {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TopLevel returns the params without a parent scope, in insertion order.
func (s *Store) TopLevel() []*param.Param {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*param.Param(nil), s.topLevel...)
}

// IsFinalized reports whether Finalize has succeeded.
func (s *Store) IsFinalized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.finalized
}

// DependenciesOf returns the sorted absolute IDs that id depends on. It is
// only populated once the store is finalized.
func (s *Store) DependenciesOf(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.params[id]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParam, id)
	}
	return sortedKeys(s.deps[id]), nil
}

// SetFixed sets or clears the fixed value of a param. It is allowed after
// Finalize.
func (s *Store) SetFixed(ctx context.Context, id string, v any) error {
	s.mu.RLock()
	p, ok := s.params[id]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, id)
	}
	if err := p.SetFixed(v); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Set fixed value.", "param", id, "value", v)
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
