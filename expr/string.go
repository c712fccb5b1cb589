package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const costEpsilon = 1e-5

// String renders n in dictionary infix notation. Costs are shown as bracket
// nesting for small integral costs and as a numeric suffix otherwise; an Or of
// the empty And and one operand is shown as {operand}.
func String(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n, false)
	return sb.String()
}

// costForm returns the number of brackets and the numeric suffix for cost.
func costForm(cost float64) (int, string) {
	switch {
	case cost < -costEpsilon:
		return 1, formatCost(cost)
	case math.Abs(cost) < costEpsilon:
		return 0, ""
	}
	whole := math.Trunc(cost)
	if cost-whole > costEpsilon {
		return 1, formatCost(cost)
	}
	if whole > 4 {
		return 1, formatCost(whole)
	}
	return int(whole), ""
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

func writeNode(sb *strings.Builder, n Node, nested bool) {
	brackets, suffix := costForm(n.NodeCost())
	tag := n.NodeTag()
	if tag != "" {
		sb.WriteByte('[')
	}
	sb.WriteString(strings.Repeat("[", brackets))

	parens := false
	switch v := n.(type) {
	case *Connector:
		if v.Multi {
			sb.WriteByte('@')
		}
		if v.Desc != nil {
			sb.WriteString(v.Desc.Name)
		} else {
			sb.WriteString("(null)")
		}
		sb.WriteByte(byte(v.Dir))
	case *And:
		parens = nested && brackets == 0 && len(v.Operands) > 1
		writeOperands(sb, v.Operands, " & ", parens, n)
	case *Or:
		if isOptional(v) {
			sb.WriteByte('{')
			writeOperands(sb, v.Operands[1:], " or ", false, n)
			sb.WriteByte('}')
			break
		}
		parens = nested && brackets == 0 && len(v.Operands) > 1
		writeOperands(sb, v.Operands, " or ", parens, n)
	default:
		panic(fmt.Sprintf("expr: unknown node type %T", n))
	}

	sb.WriteString(strings.Repeat("]", brackets))
	sb.WriteString(suffix)
	if tag != "" {
		sb.WriteByte(']')
		sb.WriteString(tag)
	}
}

func writeOperands(sb *strings.Builder, ops []Node, sep string, parens bool, parent Node) {
	if len(ops) == 0 {
		sb.WriteString("()")
		return
	}
	if parens {
		sb.WriteByte('(')
	}
	for i, op := range ops {
		if i > 0 {
			sb.WriteString(sep)
		}
		// Same-type children associate and need no parentheses.
		writeNode(sb, op, !sameKind(op, parent))
	}
	if parens {
		sb.WriteByte(')')
	}
}

func isOptional(o *Or) bool {
	if len(o.Operands) < 2 {
		return false
	}
	a, ok := o.Operands[0].(*And)
	return ok && len(a.Operands) == 0 && a.Cost == 0 && a.Tag == ""
}

func sameKind(a, b Node) bool {
	switch a.(type) {
	case *And:
		_, ok := b.(*And)
		return ok
	case *Or:
		_, ok := b.(*Or)
		return ok
	}
	return false
}
