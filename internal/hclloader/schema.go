package hclloader

import "github.com/hashicorp/hcl/v2"

// paramBlock is the decoded body of a `param` block.
type paramBlock struct {
	Type    hcl.Expression `hcl:"type"`
	InclMin hcl.Expression `hcl:"incl_min,optional"`
	ExclMin hcl.Expression `hcl:"excl_min,optional"`
	InclMax hcl.Expression `hcl:"incl_max,optional"`
	ExclMax hcl.Expression `hcl:"excl_max,optional"`
	Range   hcl.Expression `hcl:"range,optional"`
	Fixed   hcl.Expression `hcl:"fixed,optional"`
}

const (
	blockParam  = "param"
	blockStruct = "struct"
	blockChoice = "choice"

	attrType  = "type"
	attrFixed = "fixed"

	defaultStructType = "struct"
)
