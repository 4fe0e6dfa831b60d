package export

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/vk/designspace/internal/design"
	"github.com/vk/designspace/internal/generator"
)

func sampleDesigns() []*design.Design {
	return []*design.Design{
		design.New("d1", map[string]any{
			"A":     int64(3),
			"B":     2.5,
			"C":     true,
			"Arr":   []any{int32(1), int32(2)},
			"Empty": nil,
			"S": &generator.Struct{
				Choice: "circle",
				Values: map[string]any{"R": 1.5},
				Order:  []string{"R"},
			},
			"S.R":         1.5,
			"Shape.Scale": int16(2),
		}),
		design.New("d2", map[string]any{"A": int64(4)}),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "hcl", want: HCL},
		{in: "JSON", want: JSON},
		{in: " yaml ", want: YAML},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleDesigns(), JSON))

	var got []struct {
		ID     string         `json:"id"`
		Values map[string]any `json:"values"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "d1", first.ID)
	assert.Equal(t, 3.0, first.Values["A"])
	assert.Equal(t, 2.5, first.Values["B"])
	assert.Equal(t, true, first.Values["C"])
	assert.Equal(t, []any{1.0, 2.0}, first.Values["Arr"])
	assert.Contains(t, first.Values, "Empty")
	assert.Nil(t, first.Values["Empty"])
	assert.Equal(t, map[string]any{"R": 1.5, ChoiceKey: "circle"}, first.Values["S"])
	assert.Equal(t, map[string]any{"Scale": 2.0}, first.Values["Shape"])
	assert.NotContains(t, first.Values, "S.R")

	assert.Equal(t, "d2", got[1].ID)
	assert.Equal(t, map[string]any{"A": 4.0}, got[1].Values)
}

func TestEncode_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, JSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleDesigns(), YAML))

	var got []struct {
		ID     string         `yaml:"id"`
		Values map[string]any `yaml:"values"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "d1", first.ID)
	assert.Equal(t, 3, first.Values["A"])
	assert.Equal(t, 2.5, first.Values["B"])
	assert.Equal(t, []any{1, 2}, first.Values["Arr"])
	assert.Equal(t, map[string]any{"R": 1.5, ChoiceKey: "circle"}, first.Values["S"])
	assert.Equal(t, map[string]any{"Scale": 2}, first.Values["Shape"])
}

func TestEncode_HCL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleDesigns(), HCL))

	file, diags := hclparse.NewParser().ParseHCL(buf.Bytes(), "out.hcl")
	require.False(t, diags.HasErrors(), diags.Error())
	body := file.Body.(*hclsyntax.Body)
	require.Len(t, body.Blocks, 2)

	block := body.Blocks[0]
	assert.Equal(t, "design", block.Type)
	assert.Equal(t, []string{"d1"}, block.Labels)

	value := func(name string) cty.Value {
		attr, ok := block.Body.Attributes[name]
		require.True(t, ok, "missing attribute %s", name)
		v, diags := attr.Expr.Value(nil)
		require.False(t, diags.HasErrors(), diags.Error())
		return v
	}
	assert.True(t, value("A").Equals(cty.NumberIntVal(3)).True())
	assert.True(t, value("C").True())
	assert.True(t, value("Empty").IsNull())
	assert.Equal(t, "circle", value("S").GetAttr(ChoiceKey).AsString())
	assert.True(t, value("Shape").GetAttr("Scale").Equals(cty.NumberIntVal(2)).True())
	assert.Equal(t, 2, value("Arr").LengthInt())

	assert.Equal(t, []string{"d2"}, body.Blocks[1].Labels)
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, Encode(&buf, sampleDesigns(), Format("xml")))
}

func TestToCty_Unsupported(t *testing.T) {
	_, err := ToCty(struct{}{})
	require.Error(t, err)

	_, err = ToCty([]any{1, struct{}{}})
	require.ErrorContains(t, err, "element 2")
}

func TestToCty_NonFinite(t *testing.T) {
	for _, v := range []any{math.NaN(), math.Inf(1), float32(math.Inf(-1))} {
		_, err := ToCty(v)
		require.ErrorContains(t, err, "non-finite")
	}
}

func TestEncode_NonFiniteValue(t *testing.T) {
	designs := []*design.Design{
		design.New("d1", map[string]any{"D": math.NaN()}),
	}
	nested := []*design.Design{
		design.New("d2", map[string]any{
			"S": &generator.Struct{Values: map[string]any{"R": math.Inf(1)}, Order: []string{"R"}},
		}),
	}

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.ErrorContains(t, Encode(&buf, designs, format), "design d1")
			require.ErrorContains(t, Encode(&buf, nested, format), "design d2")
		})
	}
}
