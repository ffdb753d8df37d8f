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

// Visit is called for every node of a tree in pre-order. Returning false
// skips the children of the node.
type Visit func(node Expr) bool

// Walk traverses the given expressions in pre-order.
func Walk(visit Visit, exprs ...Expr) {
	for _, e := range exprs {
		walk(visit, e)
	}
}

func walk(visit Visit, e Expr) {
	if e == nil || !visit(e) {
		return
	}
	switch e := e.(type) {
	case *BinaryExpr:
		walk(visit, e.Left)
		walk(visit, e.Right)
	case *FuncExpr:
		for _, arg := range e.Exprs {
			walk(visit, arg)
		}
	case *ComparisonExpr:
		walk(visit, e.Left)
		walk(visit, e.Right)
	case *AndExpr:
		walk(visit, e.Left)
		walk(visit, e.Right)
	case *OrExpr:
		walk(visit, e.Left)
		walk(visit, e.Right)
	case *NotExpr:
		walk(visit, e.Expr)
	}
}

// SplitAndExpression breaks up the Expr into AND-separated conditions
// and appends them to filters. Outer parenthesis are removed.
func SplitAndExpression(filters []Expr, node Expr) []Expr {
	if node == nil {
		return filters
	}
	if and, ok := node.(*AndExpr); ok {
		filters = SplitAndExpression(filters, and.Left)
		return SplitAndExpression(filters, and.Right)
	}
	return append(filters, node)
}

// AndExpressions ands together the given expressions, left-deep, skipping
// nils. It returns nil if there is nothing to and.
func AndExpressions(exprs ...Expr) Expr {
	var result Expr
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if result == nil {
			result = e
			continue
		}
		result = &AndExpr{Left: result, Right: e}
	}
	return result
}

// Columns returns every column reference of the given expressions, in
// traversal order and including repeats.
func Columns(exprs ...Expr) []*ColName {
	var cols []*ColName
	Walk(func(node Expr) bool {
		if col, ok := node.(*ColName); ok {
			cols = append(cols, col)
		}
		return true
	}, exprs...)
	return cols
}

// Qualifiers returns the distinct column qualifiers (component names) the
// expressions refer to, in order of first appearance.
func Qualifiers(exprs ...Expr) []string {
	var names []string
	seen := map[string]bool{}
	for _, col := range Columns(exprs...) {
		if !seen[col.Qualifier] {
			seen[col.Qualifier] = true
			names = append(names, col.Qualifier)
		}
	}
	return names
}

// IsColName returns true if the Expr is a *ColName.
func IsColName(node Expr) bool {
	_, ok := node.(*ColName)
	return ok
}
