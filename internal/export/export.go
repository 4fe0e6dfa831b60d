package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"

	"github.com/vk/designspace/internal/design"
)

// Format is an output encoding.
type Format string

const (
	HCL  Format = "hcl"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{HCL, JSON, YAML}

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q: must be one of hcl, json, yaml", s)
}

// Encode writes designs to w in the given format.
func Encode(w io.Writer, designs []*design.Design, format Format) error {
	switch format {
	case HCL:
		return encodeHCL(w, designs)
	case JSON:
		return encodeJSON(w, designs)
	case YAML:
		return encodeYAML(w, designs)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// encodeHCL writes one `design "<id>"` block per design.
func encodeHCL(w io.Writer, designs []*design.Design) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()
	for i, d := range designs {
		if i > 0 {
			root.AppendNewline()
		}
		block := root.AppendNewBlock("design", []string{d.ID()})
		values := tree(d)
		for _, k := range sortedKeys(values) {
			v, err := ToCty(values[k])
			if err != nil {
				return fmt.Errorf("design %s, %s: %w", d.ID(), k, err)
			}
			block.Body().SetAttributeValue(k, v)
		}
	}
	_, err := w.Write(f.Bytes())
	return err
}

// encodeJSON writes a JSON array of {"id", "values"} objects.
func encodeJSON(w io.Writer, designs []*design.Design) error {
	records := make([]cty.Value, 0, len(designs))
	for _, d := range designs {
		values, err := ToCty(tree(d))
		if err != nil {
			return fmt.Errorf("design %s: %w", d.ID(), err)
		}
		records = append(records, cty.ObjectVal(map[string]cty.Value{
			"id":     cty.StringVal(d.ID()),
			"values": values,
		}))
	}

	all := cty.EmptyTupleVal
	if len(records) > 0 {
		all = cty.TupleVal(records)
	}
	b, err := ctyjson.Marshal(all, all.Type())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

type yamlRecord struct {
	ID     string         `yaml:"id"`
	Values map[string]any `yaml:"values"`
}

// encodeYAML writes a YAML sequence of id/values records.
func encodeYAML(w io.Writer, designs []*design.Design) error {
	records := make([]yamlRecord, 0, len(designs))
	for _, d := range designs {
		if _, err := ToCty(tree(d)); err != nil {
			return fmt.Errorf("design %s: %w", d.ID(), err)
		}
		records = append(records, yamlRecord{
			ID:     d.ID(),
			Values: toPlain(tree(d)).(map[string]any),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
