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

package estimator

import (
	"math"

	"github.com/lianhuiwang/squall/go/sq/catalog"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// epsilon keeps estimates strictly positive so that downstream cardinality
// products never collapse to zero.
const epsilon = 1e-10

// SelingerEstimator estimates comparisons from catalog column statistics in
// the manner of System R: 1/distinct for equality, linear interpolation over
// [min, max] for ranges, and the configured defaults when statistics are
// missing or the operands are computed expressions.
type SelingerEstimator struct {
	stats    catalog.StatsProvider
	aliases  catalog.Aliases
	defaults Defaults
}

var _ SelectivityEstimator = (*SelingerEstimator)(nil)

// NewSelingerEstimator builds an estimator over cat. A catalog without
// column statistics degrades to the defaults.
func NewSelingerEstimator(cat catalog.Catalog, aliases catalog.Aliases, defaults Defaults) *SelingerEstimator {
	stats, _ := cat.(catalog.StatsProvider)
	return &SelingerEstimator{stats: stats, aliases: aliases, defaults: defaults}
}

// Estimate implements SelectivityEstimator.
func (e *SelingerEstimator) Estimate(expr sqlexpr.Expr) (float64, error) {
	s, err := combine(expr, e.comparison)
	if err != nil {
		return 0, err
	}
	return math.Max(s, epsilon), nil
}

func (e *SelingerEstimator) comparison(cmp *sqlexpr.ComparisonExpr) (float64, error) {
	op := cmp.Operator
	col, lit := columnAndLiteral(cmp.Left, cmp.Right)
	if col == nil {
		if col, lit = columnAndLiteral(cmp.Right, cmp.Left); col != nil {
			op = flip(op)
		}
	}

	switch {
	case col != nil && lit != nil:
		return e.columnLiteral(col, op, lit), nil
	case sqlexpr.IsColName(cmp.Left) && sqlexpr.IsColName(cmp.Right):
		return e.columnColumn(cmp.Left.(*sqlexpr.ColName), op, cmp.Right.(*sqlexpr.ColName)), nil
	}
	return e.defaults.forOperator(op), nil
}

func (e *SelingerEstimator) columnLiteral(col *sqlexpr.ColName, op sqlexpr.ComparisonOp, lit *sqlexpr.Literal) float64 {
	cs, ok := e.columnStats(col)
	switch {
	case op == sqlexpr.EqualOp:
		if ok && cs.Distinct > 0 {
			return 1 / cs.Distinct
		}
		return e.defaults.Equal
	case op == sqlexpr.NotEqualOp:
		if ok && cs.Distinct > 0 {
			return 1 - 1/cs.Distinct
		}
		return e.defaults.NotEqual
	}

	if !ok || !cs.HasRange || cs.Max <= cs.Min || !lit.Val.IsNumeric() {
		return e.defaults.Range
	}
	v, _ := lit.Val.ToFloat64()
	var frac float64
	switch op {
	case sqlexpr.LessThanOp, sqlexpr.LessEqualOp:
		frac = (v - cs.Min) / (cs.Max - cs.Min)
	default:
		frac = (cs.Max - v) / (cs.Max - cs.Min)
	}
	return math.Min(math.Max(frac, 0), 1)
}

func (e *SelingerEstimator) columnColumn(left *sqlexpr.ColName, op sqlexpr.ComparisonOp, right *sqlexpr.ColName) float64 {
	if op != sqlexpr.EqualOp {
		return e.defaults.forOperator(op)
	}
	var distinct float64
	if cs, ok := e.columnStats(left); ok {
		distinct = cs.Distinct
	}
	if cs, ok := e.columnStats(right); ok {
		distinct = math.Max(distinct, cs.Distinct)
	}
	if distinct == 0 {
		return e.defaults.Equal
	}
	return 1 / distinct
}

func (e *SelingerEstimator) columnStats(col *sqlexpr.ColName) (catalog.ColumnStats, bool) {
	if e.stats == nil {
		return catalog.ColumnStats{}, false
	}
	return e.stats.ColumnStats(e.aliases.SchemaName(col.Qualifier), col.Name)
}

func columnAndLiteral(a, b sqlexpr.Expr) (*sqlexpr.ColName, *sqlexpr.Literal) {
	col, ok := a.(*sqlexpr.ColName)
	if !ok {
		return nil, nil
	}
	lit, ok := b.(*sqlexpr.Literal)
	if !ok {
		return nil, nil
	}
	return col, lit
}

// flip mirrors a comparison so that `lit op col` can be read as `col op' lit`.
func flip(op sqlexpr.ComparisonOp) sqlexpr.ComparisonOp {
	switch op {
	case sqlexpr.LessThanOp:
		return sqlexpr.GreaterThanOp
	case sqlexpr.LessEqualOp:
		return sqlexpr.GreaterEqualOp
	case sqlexpr.GreaterThanOp:
		return sqlexpr.LessThanOp
	case sqlexpr.GreaterEqualOp:
		return sqlexpr.LessEqualOp
	}
	return op
}
