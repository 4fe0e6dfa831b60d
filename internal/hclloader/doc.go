// Package hclloader reads parameter definitions from HCL files.
//
// A file holds `param` and `struct` blocks in any order:
//
//	param "C" {
//	  type     = "integer"
//	  incl_min = 5
//	  incl_max = 7
//	}
//
//	param "A" {
//	  type     = "double"
//	  excl_min = C - 5
//	  excl_max = [10, "Math.pow(C, 2)"]
//	}
//
//	struct "Shape" {
//	  param "Scale" {
//	    type  = "double"
//	    range = "]0,1]"
//	  }
//	  choice "circle" {
//	    param "Radius" {
//	      type     = "double"
//	      incl_min = 0
//	      incl_max = Scale * 10
//	    }
//	  }
//	  choice "square" {
//	    param "Side" {
//	      type  = "double"
//	      range = "[0,Scale]"
//	    }
//	  }
//	}
//
// Bound attributes accept a number, an expression string, an unquoted
// expression (kept as its source text) or a tuple of these for disjoint
// range alternatives. Calls into the Math namespace must be quoted, since
// HCL has no namespaced function syntax.
package hclloader
