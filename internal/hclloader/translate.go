// This file translates HCL blocks into the format-agnostic configuration
// model defined in the config package.

package hclloader

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/designspace/internal/config"
	"github.com/vk/designspace/internal/ctxlog"
)

// translateBlocks converts param and struct blocks in declaration order.
// Choice blocks are only valid inside a struct and are rejected here.
func (l *Loader) translateBlocks(ctx context.Context, blocks hclsyntax.Blocks, src []byte, inStruct bool) ([]*config.ParamDefinition, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var defs []*config.ParamDefinition

	for _, block := range blocks {
		if len(block.Labels) != 1 && (block.Type == blockParam || block.Type == blockStruct) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing name",
				Detail:   fmt.Sprintf("A %s block requires exactly one label: its name.", block.Type),
				Subject:  block.DefRange().Ptr(),
			})
			continue
		}

		switch block.Type {
		case blockParam:
			def, blockDiags := l.translateParam(ctx, block, src)
			diags = append(diags, blockDiags...)
			if def != nil {
				defs = append(defs, def)
			}
		case blockStruct:
			def, blockDiags := l.translateStruct(ctx, block, src)
			diags = append(diags, blockDiags...)
			if def != nil {
				defs = append(defs, def)
			}
		case blockChoice:
			if inStruct {
				// Handled by translateStruct.
				continue
			}
			fallthrough
		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported block type",
				Detail:   fmt.Sprintf("Blocks of type %q are not expected here.", block.Type),
				Subject:  block.TypeRange.Ptr(),
			})
		}
	}
	return defs, diags
}

// translateParam converts a `param` block into the agnostic model.
func (l *Loader) translateParam(ctx context.Context, block *hclsyntax.Block, src []byte) (*config.ParamDefinition, hcl.Diagnostics) {
	name := block.Labels[0]
	logger := ctxlog.FromContext(ctx).With("param", name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL param to internal config model.")

	var pb paramBlock
	diags := gohcl.DecodeBody(block.Body, nil, &pb)
	if diags.HasErrors() {
		return nil, diags
	}

	def := &config.ParamDefinition{
		Name:   name,
		Type:   exprText(pb.Type, src),
		Source: block.DefRange().String(),
	}

	var d hcl.Diagnostics
	def.InclMin, d = exprList(ctx, pb.InclMin, "incl_min", src)
	diags = append(diags, d...)
	def.ExclMin, d = exprList(ctx, pb.ExclMin, "excl_min", src)
	diags = append(diags, d...)
	def.InclMax, d = exprList(ctx, pb.InclMax, "incl_max", src)
	diags = append(diags, d...)
	def.ExclMax, d = exprList(ctx, pb.ExclMax, "excl_max", src)
	diags = append(diags, d...)

	ranges, d := exprList(ctx, pb.Range, "range", src)
	diags = append(diags, d...)
	for _, r := range ranges {
		s, ok := r.(string)
		if !ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid range",
				Detail:   "The range attribute takes interval strings such as \"[0,1[\".",
				Subject:  pb.Range.Range().Ptr(),
			})
			continue
		}
		def.Ranges = append(def.Ranges, s)
	}

	if isExprDefined(ctx, pb.Fixed, attrFixed) {
		def.Fixed, d = exprValue(pb.Fixed, src)
		diags = append(diags, d...)
	}
	return def, diags
}

// translateStruct converts a `struct` block, keeping the declared order of
// its nested blocks.
func (l *Loader) translateStruct(ctx context.Context, block *hclsyntax.Block, src []byte) (*config.ParamDefinition, hcl.Diagnostics) {
	name := block.Labels[0]
	logger := ctxlog.FromContext(ctx).With("struct", name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL struct to internal config model.")

	def := &config.ParamDefinition{
		Name:   name,
		Type:   defaultStructType,
		Source: block.DefRange().String(),
	}

	var diags hcl.Diagnostics
	for attrName, attr := range block.Body.Attributes {
		switch attrName {
		case attrType:
			def.Type = exprText(attr.Expr, src)
		case attrFixed:
			v, d := exprValue(attr.Expr, src)
			diags = append(diags, d...)
			def.Fixed = v
		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported argument",
				Detail:   fmt.Sprintf("An argument named %q is not expected in a struct block.", attrName),
				Subject:  attr.NameRange.Ptr(),
			})
		}
	}

	nested, d := l.translateBlocks(ctx, block.Body.Blocks, src, true)
	diags = append(diags, d...)
	def.Nested = nested

	for _, child := range block.Body.Blocks {
		if child.Type != blockChoice {
			continue
		}
		if len(child.Labels) != 1 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing choice kind",
				Detail:   "A choice block requires exactly one label: its kind.",
				Subject:  child.DefRange().Ptr(),
			})
			continue
		}
		if len(child.Body.Attributes) > 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported argument",
				Detail:   "Choice blocks only contain param and struct blocks.",
				Subject:  child.DefRange().Ptr(),
			})
		}
		params, d := l.translateBlocks(ctx, child.Body.Blocks, src, false)
		diags = append(diags, d...)
		def.Choices = append(def.Choices, &config.ChoiceDefinition{Kind: child.Labels[0], Params: params})
	}

	logger.Debug("Translated struct.", "nested", len(def.Nested), "choices", len(def.Choices))
	return def, diags
}
