package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned by Parse for malformed expressions.
var ErrSyntax = errors.New("expression syntax error")

// Parse reads an expression in the infix notation produced by String:
//
//	A- & {@B+} & (C+ or [D+]0.5 or [[E+]])
//
// Operators are "&" (or "and") and "or", with "&" binding tighter. Brackets
// add one to the cost of the enclosed expression, or the number following
// the closing bracket instead; a word following it is a tag. Braces mark an
// optional expression and "()" is the empty conjunction. Connector names are
// interned in tbl.
func Parse(tbl *DescTable, s string) (Node, error) {
	p := &parser{tbl: tbl, src: s}
	n, err := p.or()
	if err != nil {
		return nil, err
	}
	p.space()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(tbl *DescTable, s string) Node {
	n, err := Parse(tbl, s)
	if err != nil {
		panic(err)
	}
	return n
}

type parser struct {
	tbl *DescTable
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) space() {
	for p.pos < len(p.src) && strings.IndexByte(" \t\r\n", p.src[p.pos]) >= 0 {
		p.pos++
	}
}

// keyword consumes kw if it is the next token.
func (p *parser) keyword(kw string) bool {
	p.space()
	if !strings.HasPrefix(p.src[p.pos:], kw) {
		return false
	}
	end := p.pos + len(kw)
	if isIdent(kw[0]) && end < len(p.src) && isIdent(p.src[end]) {
		return false
	}
	p.pos = end
	return true
}

func (p *parser) or() (Node, error) {
	first, err := p.and()
	if err != nil {
		return nil, err
	}
	ops := []Node{first}
	for p.keyword("or") {
		n, err := p.and()
		if err != nil {
			return nil, err
		}
		ops = append(ops, n)
	}
	if len(ops) == 1 {
		return first, nil
	}
	return NewOr(ops...), nil
}

func (p *parser) and() (Node, error) {
	first, err := p.unary()
	if err != nil {
		return nil, err
	}
	ops := []Node{first}
	for p.keyword("&") || p.keyword("and") {
		n, err := p.unary()
		if err != nil {
			return nil, err
		}
		ops = append(ops, n)
	}
	if len(ops) == 1 {
		return first, nil
	}
	return NewAnd(ops...), nil
}

func (p *parser) unary() (Node, error) {
	p.space()
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of expression")
	}

	switch p.src[p.pos] {
	case '(':
		p.pos++
		if p.keyword(")") {
			return NewAnd(), nil
		}
		n, err := p.or()
		if err != nil {
			return nil, err
		}
		if !p.keyword(")") {
			return nil, p.errorf("missing )")
		}
		return n, nil
	case '{':
		p.pos++
		n, err := p.or()
		if err != nil {
			return nil, err
		}
		if !p.keyword("}") {
			return nil, p.errorf("missing }")
		}
		if o, ok := n.(*Or); ok && o.Cost == 0 && o.Tag == "" {
			return NewOr(append([]Node{NewAnd()}, o.Operands...)...), nil
		}
		return Optional(n), nil
	case '[':
		p.pos++
		n, err := p.or()
		if err != nil {
			return nil, err
		}
		if !p.keyword("]") {
			return nil, p.errorf("missing ]")
		}
		return p.bracketSuffix(n)
	default:
		return p.connector()
	}
}

// bracketSuffix applies the cost or tag following a closing bracket.
func (p *parser) bracketSuffix(n Node) (Node, error) {
	start := p.pos
	for p.pos < len(p.src) && strings.IndexByte("0123456789.-", p.src[p.pos]) >= 0 {
		p.pos++
	}
	if p.pos > start {
		text := p.src[start:p.pos]
		cost, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.pos = start
			return nil, p.errorf("bad cost %q", text)
		}
		return addCost(n, cost), nil
	}

	for p.pos < len(p.src) && isIdent(p.src[p.pos]) {
		p.pos++
	}
	if p.pos > start {
		return setTag(n, p.src[start:p.pos]), nil
	}
	return addCost(n, 1), nil
}

func (p *parser) connector() (Node, error) {
	multi := false
	if p.src[p.pos] == '@' {
		multi = true
		p.pos++
	}

	start := p.pos
	for p.pos < len(p.src) && (isIdent(p.src[p.pos]) || p.src[p.pos] == '*') {
		p.pos++
	}
	if p.pos == start || p.pos >= len(p.src) {
		return nil, p.errorf("expected connector")
	}

	var dir Dir
	switch p.src[p.pos] {
	case '-':
		dir = Left
	case '+':
		dir = Right
	default:
		return nil, p.errorf("connector %q has no direction", p.src[start:p.pos])
	}
	name := p.src[start:p.pos]
	p.pos++

	desc, err := p.tbl.Intern(name)
	if err != nil {
		return nil, err
	}
	c := NewConnector(desc, dir)
	c.Multi = multi
	return c, nil
}

func addCost(n Node, cost float64) Node {
	switch v := n.(type) {
	case *And:
		v.Cost += cost
	case *Or:
		v.Cost += cost
	case *Connector:
		v.Cost += cost
	}
	return n
}

func setTag(n Node, tag string) Node {
	switch v := n.(type) {
	case *And:
		v.Tag = tag
	case *Or:
		v.Tag = tag
	case *Connector:
		v.Tag = tag
	}
	return n
}

func isIdent(b byte) bool {
	return b == '_' || '0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
