package hclloader

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/designspace/internal/ctxlog"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The decoder populates omitted optional fields with zero-width
// placeholder expressions, so a nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// exprValue converts an attribute expression to a Go value. Expressions that
// reference variables are returned as their source text.
func exprValue(expr hcl.Expression, src []byte) (any, hcl.Diagnostics) {
	if len(expr.Variables()) > 0 {
		return string(expr.Range().SliceBytes(src)), nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	v, err := ctyToGo(val)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported value",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return v, nil
}

// exprList converts a scalar or tuple expression to a list of values.
func exprList(ctx context.Context, expr hcl.Expression, attrName string, src []byte) ([]any, hcl.Diagnostics) {
	if !isExprDefined(ctx, expr, attrName) {
		return nil, nil
	}

	items := []hcl.Expression{expr}
	if tuple, ok := expr.(*hclsyntax.TupleConsExpr); ok {
		items = make([]hcl.Expression, len(tuple.Exprs))
		for i, e := range tuple.Exprs {
			items[i] = e
		}
	}

	var diags hcl.Diagnostics
	out := make([]any, 0, len(items))
	for _, item := range items {
		v, itemDiags := exprValue(item, src)
		diags = append(diags, itemDiags...)
		if itemDiags.HasErrors() {
			continue
		}
		if _, nested := v.([]any); nested {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid bound",
				Detail:   fmt.Sprintf("The %q attribute takes a value or a flat list of values.", attrName),
				Subject:  item.Range().Ptr(),
			})
			continue
		}
		out = append(out, v)
	}
	return out, diags
}

// exprText returns a string literal, or the source text of any other
// expression. It lets `type = integer` and `type = "integer"` mean the same.
func exprText(expr hcl.Expression, src []byte) string {
	if len(expr.Variables()) == 0 {
		if val, diags := expr.Value(nil); !diags.HasErrors() && val.Type() == cty.String && !val.IsNull() {
			return val.AsString()
		}
	}
	return string(expr.Range().SliceBytes(src))
}

func ctyToGo(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := val.Type()
	switch {
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return nil, err
		}
		return f, nil
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty.IsTupleType() || ty.IsListType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			v, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %s", ty.FriendlyName())
	}
}
