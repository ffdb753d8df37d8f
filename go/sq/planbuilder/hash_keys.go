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

package planbuilder

import (
	"slices"

	"github.com/lianhuiwang/squall/go/sq/operators"
	"github.com/lianhuiwang/squall/go/sq/plan"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// joinTerm is one equality of a join condition with its operands resolved
// to the data sources they read.
type joinTerm struct {
	expr        *sqlexpr.ComparisonExpr
	left, right plan.SourceSet
}

// splitJoinCondition checks that condition is a conjunction of equalities,
// each comparing an operand of left with an operand of right.
func (g *Generator) splitJoinCondition(left, right *plan.Component, condition sqlexpr.Expr) ([]joinTerm, error) {
	if condition == nil {
		return nil, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.BadJoinCondition,
			"join of %s and %s has no condition", left.Name, right.Name)
	}
	var terms []joinTerm
	for _, e := range sqlexpr.SplitAndExpression(nil, condition) {
		cmp, ok := e.(*sqlexpr.ComparisonExpr)
		if !ok || cmp.Operator != sqlexpr.EqualOp {
			return nil, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.BadJoinCondition,
				"%s is not an equality", sqlexpr.String(e))
		}
		l, err := g.operandSources(cmp.Left)
		if err != nil {
			return nil, err
		}
		r, err := g.operandSources(cmp.Right)
		if err != nil {
			return nil, err
		}
		crosses := l.IsSolvedBy(left.Ancestors) && r.IsSolvedBy(right.Ancestors) ||
			l.IsSolvedBy(right.Ancestors) && r.IsSolvedBy(left.Ancestors)
		if !crosses {
			return nil, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.BadJoinCondition,
				"%s does not compare a column of %s with a column of %s", sqlexpr.String(e), left.Name, right.Name)
		}
		terms = append(terms, joinTerm{expr: cmp, left: l, right: r})
	}
	return terms, nil
}

func (g *Generator) operandSources(e sqlexpr.Expr) (plan.SourceSet, error) {
	names := sqlexpr.Qualifiers(e)
	if len(names) == 0 {
		return plan.EmptySourceSet, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.BadJoinCondition,
			"join operand %s does not refer to any column", sqlexpr.String(e))
	}
	set, err := g.plan.SourceSetOf(names...)
	if err != nil {
		return plan.EmptySourceSet, sqerrors.Wrapf(err, "resolving join operand %s", sqlexpr.String(e))
	}
	return set, nil
}

// deriveHashKey builds the partitioning key of c, one input of a join, from
// the join terms relevant to it. The key is a list of schema positions when
// every operand of every relevant term is a bare column, and a list of
// compiled expressions otherwise. Both inputs walk the terms in the same
// order, so their keys line up.
func (g *Generator) deriveHashKey(c *plan.Component, terms []joinTerm) (*operators.HashKey, error) {
	var operands []sqlexpr.Expr
	computed := false
	for _, term := range terms {
		var mine sqlexpr.Expr
		switch {
		case term.left.IsSolvedBy(c.Ancestors):
			mine = term.expr.Left
		case term.right.IsSolvedBy(c.Ancestors):
			mine = term.expr.Right
		default:
			continue
		}
		operands = append(operands, mine)
		if !sqlexpr.IsColName(term.expr.Left) || !sqlexpr.IsColName(term.expr.Right) {
			computed = true
		}
	}
	if len(operands) == 0 {
		return nil, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.BadJoinCondition,
			"join condition has no term for %s", c.Name)
	}

	schema := g.costs[c.Name].Schema
	if computed {
		exprs := make([]operators.ValueExpression, 0, len(operands))
		for _, operand := range operands {
			v, err := g.compiler.CompileValue(c.Name, schema, operand)
			if err != nil {
				return nil, sqerrors.Wrapf(err, "compiling hash key of %s", c.Name)
			}
			exprs = append(exprs, v)
		}
		return operators.NewExpressionKey(exprs...), nil
	}

	indexes := make([]int, 0, len(operands))
	for _, operand := range operands {
		id := operand.(*sqlexpr.ColName).ID()
		idx := slices.Index(schema, id)
		if idx < 0 {
			return nil, sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.UnknownColumn,
				"column %s not found in component %s", id, c.Name)
		}
		indexes = append(indexes, idx)
	}
	return operators.NewIndexKey(indexes...), nil
}
