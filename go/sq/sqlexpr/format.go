/*
Copyright 2026 The Squall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sqlexpr

import (
	"strings"
)

const (
	precOr = iota + 1
	precAnd
	precNot
	precCompare
	precAdd
	precMult
	precLeaf
)

// String returns the SQL text of an expression.
func String(e Expr) string {
	if e == nil {
		return ""
	}
	var buf strings.Builder
	e.format(&buf)
	return buf.String()
}

// formatChild wraps child in parens when it binds weaker than its parent,
// or equally when it sits on the right of a non-associative operator.
func formatChild(buf *strings.Builder, parent int, child Expr, right bool) {
	p := child.precedence()
	if p < parent || (right && p == parent) {
		buf.WriteByte('(')
		child.format(buf)
		buf.WriteByte(')')
		return
	}
	child.format(buf)
}

func (c *ColName) format(buf *strings.Builder) { buf.WriteString(c.ID()) }
func (c *ColName) precedence() int             { return precLeaf }

func (l *Literal) format(buf *strings.Builder) { buf.WriteString(l.Val.String()) }
func (l *Literal) precedence() int             { return precLeaf }

func (b *BinaryExpr) format(buf *strings.Builder) {
	p := b.precedence()
	formatChild(buf, p, b.Left, false)
	buf.WriteByte(' ')
	buf.WriteString(b.Operator.String())
	buf.WriteByte(' ')
	formatChild(buf, p, b.Right, true)
}

func (b *BinaryExpr) precedence() int {
	if b.Operator == MultOp || b.Operator == DivOp {
		return precMult
	}
	return precAdd
}

func (f *FuncExpr) format(buf *strings.Builder) {
	buf.WriteString(f.Name)
	buf.WriteByte('(')
	for i, arg := range f.Exprs {
		if i > 0 {
			buf.WriteString(", ")
		}
		arg.format(buf)
	}
	buf.WriteByte(')')
}

func (f *FuncExpr) precedence() int { return precLeaf }

func (c *ComparisonExpr) format(buf *strings.Builder) {
	formatChild(buf, precCompare, c.Left, true)
	buf.WriteByte(' ')
	buf.WriteString(c.Operator.String())
	buf.WriteByte(' ')
	formatChild(buf, precCompare, c.Right, true)
}

func (c *ComparisonExpr) precedence() int { return precCompare }

func (a *AndExpr) format(buf *strings.Builder) {
	formatChild(buf, precAnd, a.Left, false)
	buf.WriteString(" and ")
	formatChild(buf, precAnd, a.Right, false)
}

func (a *AndExpr) precedence() int { return precAnd }

func (o *OrExpr) format(buf *strings.Builder) {
	formatChild(buf, precOr, o.Left, false)
	buf.WriteString(" or ")
	formatChild(buf, precOr, o.Right, false)
}

func (o *OrExpr) precedence() int { return precOr }

func (n *NotExpr) format(buf *strings.Builder) {
	buf.WriteString("not ")
	formatChild(buf, precNot, n.Expr, false)
}

func (n *NotExpr) precedence() int { return precNot }
