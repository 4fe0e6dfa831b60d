package expr

import (
	"fmt"
	"strconv"
)

// parser is a recursive-descent parser over a token slice:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | ident [ "(" [ expr { "," expr } ] ")" ] | "(" expr ")"
type parser struct {
	tokens []token
	pos    int
	deps   map[string]struct{}
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, fmt.Errorf("%w: expected %s, found %s at offset %d", ErrSyntax, kind, t.kind, t.pos)
	}
	return t, nil
}

func (p *parser) parseExpr() (node, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		k := p.peek().kind
		if k != tokPlus && k != tokMinus {
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		lhs = &binary{op: k, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseTerm() (node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		k := p.peek().kind
		if k != tokStar && k != tokSlash {
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = &binary{op: k, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseUnary() (node, error) {
	if k := p.peek().kind; k == tokMinus || k == tokPlus {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &unary{op: k, operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q at offset %d", ErrSyntax, t.text, t.pos)
		}
		return &numberLit{val: v}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(t)
		}
		if IsNamespaced(t.text) {
			v, ok := constants[member(t.text)]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, t.text)
			}
			return &constant{name: t.text, val: v}, nil
		}
		p.deps[t.text] = struct{}{}
		return &ident{name: t.text}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %s at offset %d", ErrSyntax, t.kind, t.pos)
	}
}

func (p *parser) parseCall(name token) (node, error) {
	if !IsNamespaced(name.text) {
		return nil, fmt.Errorf("%w: %q is not a %s function", ErrUnknownFunction, name.text, Namespace)
	}
	fn, ok := functions[member(name.text)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name.text)
	}
	p.next() // (

	var args []node
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}

	if (fn.arity >= 0 && len(args) != fn.arity) || (fn.arity < 0 && len(args) == 0) {
		return nil, fmt.Errorf("%w: %s called with %d argument(s)", ErrSyntax, name.text, len(args))
	}
	return &call{name: name.text, fn: fn, args: args}, nil
}
