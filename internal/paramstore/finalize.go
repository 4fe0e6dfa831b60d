package paramstore

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/vk/designspace/internal/ctxlog"
	"github.com/vk/designspace/internal/generator"
	"github.com/vk/designspace/internal/param"
	"github.com/vk/designspace/internal/paramid"
)

// Finalize validates the store and computes the initialization order. It is
// idempotent. On error the store stays open and nothing is committed.
func (s *Store) Finalize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.finalizeLocked(ctx)
}

func (s *Store) finalizeLocked(ctx context.Context) error {
	if s.finalized {
		return nil
	}
	logger := ctxlog.FromContext(ctx)
	ids := sortedKeys(keySet(s.params))

	logger.Debug("Resolving parameter references.", "params", len(ids))
	refs, err := s.resolveRefs(ids)
	if err != nil {
		return err
	}
	previous := s.installRefs(refs)
	committed := false
	defer func() {
		if !committed {
			s.installRefs(previous)
		}
	}()

	deps, err := s.dependencyMap(ids)
	if err != nil {
		return err
	}

	logger.Debug("Validating independent parameter ranges.")
	for _, id := range ids {
		p := s.params[id]
		if len(deps[id]) > 0 || p.IsFixed() {
			continue
		}
		ok, err := generator.IsValid(p, nil)
		if err != nil {
			return fmt.Errorf("validating %s: %w", id, err)
		}
		if !ok {
			return fmt.Errorf("%w: %s %s", ErrEmptyRange, id, rangeSpecs(p))
		}
	}

	logger.Debug("Computing dependency depths.")
	depth, err := longestPaths(ids, deps)
	if err != nil {
		return err
	}

	s.deps = deps
	s.waves = buildWaves(ids, depth)
	s.finalized = true
	committed = true
	logger.Debug("Finalized parameter store.", "params", len(ids), "waves", len(s.waves))
	return nil
}

// resolveRefs maps every written reference of every param to an absolute ID.
// Nothing is installed, so an unresolved reference leaves the params as they
// were.
func (s *Store) resolveRefs(ids []string) (map[string]map[string]string, error) {
	known := func(id string) bool {
		_, ok := s.params[id]
		return ok
	}

	all := make(map[string]map[string]string, len(ids))
	for _, id := range ids {
		refs := make(map[string]string)
		for _, token := range s.params[id].Dependees() {
			abs, ok := paramid.Resolve(token, id, known)
			if !ok {
				return nil, fmt.Errorf("%w: %s references %q", ErrUnresolvedDependency, id, token)
			}
			refs[token] = abs
		}
		all[id] = refs
	}
	return all, nil
}

// installRefs sets the given mappings and returns the ones they replaced.
func (s *Store) installRefs(refs map[string]map[string]string) map[string]map[string]string {
	previous := make(map[string]map[string]string, len(refs))
	for id, r := range refs {
		p := s.params[id]
		previous[id] = p.Refs()
		p.SetRefs(r)
	}
	return previous
}

// dependencyMap returns the absolute dependencies of every param. Refs must
// be installed.
func (s *Store) dependencyMap(ids []string) (map[string]map[string]struct{}, error) {
	deps := make(map[string]map[string]struct{}, len(ids))
	for _, id := range ids {
		set := make(map[string]struct{})
		for _, d := range s.params[id].Dependencies() {
			if d != id && paramid.IsWithin(id, d) {
				return nil, fmt.Errorf("%w: %s depends on its enclosing parameter %s", ErrCircularDependency, id, d)
			}
			set[d] = struct{}{}
		}
		deps[id] = set
	}
	return deps, nil
}

// longestPaths returns the length of the longest dependency chain below every
// ID. A chain that revisits one of its own ancestors is a cycle.
func longestPaths(ids []string, deps map[string]map[string]struct{}) (map[string]int, error) {
	depth := make(map[string]int, len(ids))

	var visit func(id string, path []string) (int, error)
	visit = func(id string, path []string) (int, error) {
		if d, done := depth[id]; done {
			return d, nil
		}
		if i := slices.Index(path, id); i >= 0 {
			cycle := append(slices.Clone(path[i:]), id)
			return 0, fmt.Errorf("%w: %s", ErrCircularDependency, strings.Join(cycle, " -> "))
		}

		path = append(path, id)
		longest := 0
		for _, dep := range sortedKeys(deps[id]) {
			d, err := visit(dep, path)
			if err != nil {
				return 0, err
			}
			longest = max(longest, d+1)
		}
		depth[id] = longest
		return longest, nil
	}

	for _, id := range ids {
		if _, err := visit(id, nil); err != nil {
			return nil, err
		}
	}
	return depth, nil
}

func buildWaves(ids []string, depth map[string]int) [][]string {
	count := 0
	for _, d := range depth {
		count = max(count, d+1)
	}
	waves := make([][]string, count)
	for _, id := range ids {
		waves[depth[id]] = append(waves[depth[id]], id)
	}
	return waves
}

// InitializationOrder finalizes the store if needed and returns the waves.
// Wave 0 holds params without dependencies; every param sits in a higher wave
// than all of its dependencies.
func (s *Store) InitializationOrder(ctx context.Context) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.finalizeLocked(ctx); err != nil {
		return nil, err
	}
	out := make([][]string, len(s.waves))
	for i, w := range s.waves {
		out[i] = slices.Clone(w)
	}
	return out, nil
}

func keySet(m map[string]*param.Param) map[string]struct{} {
	set := make(map[string]struct{}, len(m))
	for k := range m {
		set[k] = struct{}{}
	}
	return set
}

func rangeSpecs(p *param.Param) string {
	specs := make([]string, 0, len(p.Ranges()))
	for _, r := range p.Ranges() {
		specs = append(specs, r.Spec())
	}
	return strings.Join(specs, " ")
}
