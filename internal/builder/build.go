package builder

import (
	"context"
	"fmt"

	"github.com/vk/designspace/internal/config"
	"github.com/vk/designspace/internal/ctxlog"
	"github.com/vk/designspace/internal/designspace"
	"github.com/vk/designspace/internal/param"
	"github.com/vk/designspace/internal/paramstore"
)

// Build constructs a complete, validated design space from a config model.
func Build(ctx context.Context, model *config.Model, opts ...designspace.Option) (*designspace.Space, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting design space construction.")

	params, err := Params(model.Params)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Parameter construction complete.", "top_level", len(params))

	store := paramstore.New()
	if err := store.AddParam(ctx, params...); err != nil {
		return nil, fmt.Errorf("error registering parameters: %w", err)
	}

	space, err := designspace.New(ctx, store, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Design space construction successful.", "params", len(store.SupportedParamIDs()))
	return space, nil
}

// Params converts definitions into params, recursing into nested and choice
// definitions.
func Params(defs []*config.ParamDefinition) ([]*param.Param, error) {
	out := make([]*param.Param, 0, len(defs))
	for _, def := range defs {
		p, err := newParam(def)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func newParam(def *config.ParamDefinition) (*param.Param, error) {
	opts := []param.Option{
		param.WithInclMin(def.InclMin...),
		param.WithExclMin(def.ExclMin...),
		param.WithInclMax(def.InclMax...),
		param.WithExclMax(def.ExclMax...),
		param.WithRange(def.Ranges...),
		param.WithFixed(def.Fixed),
	}

	if len(def.Nested) > 0 {
		children, err := Params(def.Nested)
		if err != nil {
			return nil, err
		}
		opts = append(opts, param.WithNested(children...))
	}
	for _, choice := range def.Choices {
		children, err := Params(choice.Params)
		if err != nil {
			return nil, err
		}
		opts = append(opts, param.WithChoice(param.StructuralKind(choice.Kind), children...))
	}

	p, err := param.New(def.Name, def.Type, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", def, err)
	}
	return p, nil
}
