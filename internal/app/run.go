package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/designspace/internal/builder"
	"github.com/vk/designspace/internal/design"
	"github.com/vk/designspace/internal/designspace"
	"github.com/vk/designspace/internal/export"
)

// Run loads the design space and writes the requested output.
func (a *App) Run(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Run method started.")

	space, err := a.Space(ctx)
	if err != nil {
		return err
	}

	waves, err := space.InitializationOrder(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute initialization order: %w", err)
	}
	for i, wave := range waves {
		a.logger.Debug("Initialization wave.", "index", i, "params", wave)
	}

	var designs []*design.Design
	if a.config.Param != "" {
		d, err := a.single(ctx, space)
		if err != nil {
			return err
		}
		designs = append(designs, d)
	} else {
		a.logger.Info("Generating designs.", "count", a.config.Count)
		for i := range a.config.Count {
			d, err := space.NextDesign(ctx, fmt.Sprintf("design-%d", i+1))
			if err != nil {
				return fmt.Errorf("failed to generate design %d: %w", i+1, err)
			}
			designs = append(designs, d)
		}
	}

	format, err := export.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}
	if err := export.Encode(a.outW, designs, format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// Space loads the definitions, builds the design space, and applies the
// configured fixed values.
func (a *App) Space(ctx context.Context) (*designspace.Space, error) {
	ctx = a.withLogger(ctx)

	model, err := a.loader.Load(ctx, a.config.SpacePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration loaded and translated into unified model.", "params", len(model.Params))

	var opts []designspace.Option
	if a.config.Seed != nil {
		opts = append(opts, designspace.WithSeed(*a.config.Seed))
	}
	space, err := builder.Build(ctx, model, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build design space: %w", err)
	}
	a.logger.Info("Design space ready.", "space", space.ID(), "params", len(space.SupportedParamIDs()))

	ids := make([]string, 0, len(a.config.Fixed))
	for id := range a.config.Fixed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := space.SetFixed(ctx, id, a.config.Fixed[id]); err != nil {
			return nil, fmt.Errorf("failed to fix %s: %w", id, err)
		}
		a.logger.Debug("Fixed value applied.", "param", id, "value", a.config.Fixed[id])
	}
	return space, nil
}

func (a *App) single(ctx context.Context, space *designspace.Space) (*design.Design, error) {
	v, ok, err := space.Next(ctx, a.config.Param)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", a.config.Param, err)
	}
	if !ok {
		return nil, fmt.Errorf("unknown param %q", a.config.Param)
	}
	return design.New("design-1", map[string]any{a.config.Param: v}), nil
}
