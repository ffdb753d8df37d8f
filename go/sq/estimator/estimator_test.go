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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lianhuiwang/squall/go/sq/catalog"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

const statsCatalog = `
tables:
  r:
    cardinality: 1000
    columns: [a, b, c]
    stats:
      a: {distinct: 100, min: 0, max: 1000}
      b: {distinct: 10}
  s:
    cardinality: 2000
    columns: [a, d]
    stats:
      a: {distinct: 400}
`

func newSelinger(t *testing.T) *SelingerEstimator {
	t.Helper()
	cat, err := catalog.Parse([]byte(statsCatalog))
	require.NoError(t, err)
	return NewSelingerEstimator(cat, catalog.Aliases{"R1": "r", "R": "r", "S": "s"}, DefaultSelectivities)
}

func col(id string) *sqlexpr.ColName { return sqlexpr.NewColName(id) }

func TestSelingerComparisons(t *testing.T) {
	est := newSelinger(t)
	tcases := []struct {
		name string
		expr sqlexpr.Expr
		want float64
	}{{
		name: "equality uses distinct count",
		expr: sqlexpr.Equals(col("R.a"), sqlexpr.NewIntLiteral(7)),
		want: 0.01,
	}, {
		name: "alias resolves to the same table",
		expr: sqlexpr.Equals(col("R1.b"), sqlexpr.NewIntLiteral(7)),
		want: 0.1,
	}, {
		name: "literal on the left",
		expr: sqlexpr.Equals(sqlexpr.NewIntLiteral(7), col("R.a")),
		want: 0.01,
	}, {
		name: "not equal",
		expr: sqlexpr.NewComparison(sqlexpr.NotEqualOp, col("R.b"), sqlexpr.NewIntLiteral(1)),
		want: 0.9,
	}, {
		name: "no stats falls back to default",
		expr: sqlexpr.Equals(col("R.c"), sqlexpr.NewIntLiteral(1)),
		want: DefaultSelectivities.Equal,
	}, {
		name: "range interpolates",
		expr: sqlexpr.NewComparison(sqlexpr.LessThanOp, col("R.a"), sqlexpr.NewIntLiteral(250)),
		want: 0.25,
	}, {
		name: "flipped range interpolates",
		expr: sqlexpr.NewComparison(sqlexpr.LessThanOp, sqlexpr.NewIntLiteral(250), col("R.a")),
		want: 0.75,
	}, {
		name: "range beyond max clamps",
		expr: sqlexpr.NewComparison(sqlexpr.GreaterEqualOp, col("R.a"), sqlexpr.NewIntLiteral(5000)),
		want: epsilon,
	}, {
		name: "range without bounds",
		expr: sqlexpr.NewComparison(sqlexpr.GreaterThanOp, col("R.b"), sqlexpr.NewIntLiteral(3)),
		want: DefaultSelectivities.Range,
	}, {
		name: "range over a string literal",
		expr: sqlexpr.NewComparison(sqlexpr.GreaterThanOp, col("R.a"), sqlexpr.NewStrLiteral("x")),
		want: DefaultSelectivities.Range,
	}, {
		name: "column equality uses the larger distinct count",
		expr: sqlexpr.Equals(col("R.a"), col("S.a")),
		want: 1.0 / 400,
	}, {
		name: "computed operand",
		expr: sqlexpr.Equals(&sqlexpr.BinaryExpr{Operator: sqlexpr.PlusOp, Left: col("R.a"), Right: sqlexpr.NewIntLiteral(1)}, col("S.a")),
		want: DefaultSelectivities.Equal,
	}}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := est.Estimate(tc.expr)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestSelingerConnectives(t *testing.T) {
	est := newSelinger(t)
	eqA := sqlexpr.Equals(col("R.a"), sqlexpr.NewIntLiteral(1)) // 0.01
	eqB := sqlexpr.Equals(col("R.b"), sqlexpr.NewIntLiteral(1)) // 0.1

	got, err := est.Estimate(&sqlexpr.AndExpr{Left: eqA, Right: eqB})
	require.NoError(t, err)
	assert.InDelta(t, 0.001, got, 1e-12)

	got, err = est.Estimate(&sqlexpr.OrExpr{Left: eqA, Right: eqB})
	require.NoError(t, err)
	assert.InDelta(t, 0.01+0.1-0.001, got, 1e-12)

	got, err = est.Estimate(&sqlexpr.NotExpr{Expr: eqB})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, got, 1e-12)
}

func TestSelingerWithoutStats(t *testing.T) {
	cat, err := catalog.Parse([]byte("tables:\n  r:\n    cardinality: 10\n    columns: [a]\n"))
	require.NoError(t, err)
	est := NewSelingerEstimator(catalog.Catalog(plain{cat}), nil, DefaultSelectivities)

	got, err := est.Estimate(sqlexpr.Equals(col("r.a"), sqlexpr.NewIntLiteral(1)))
	require.NoError(t, err)
	assert.Equal(t, DefaultSelectivities.Equal, got)
}

type plain struct{ catalog.Catalog }

func TestUnsupportedExpressions(t *testing.T) {
	est := newSelinger(t)
	_, err := est.Estimate(col("R.a"))
	require.Error(t, err)
	assert.Equal(t, sqerrors.Unimplemented, sqerrors.ErrCode(err))
	assert.Equal(t, sqerrors.UnsupportedExpression, sqerrors.ErrState(err))

	_, err = est.Estimate(&sqlexpr.AndExpr{Left: sqlexpr.Equals(col("R.a"), col("S.a")), Right: sqlexpr.NewIntLiteral(1)})
	require.ErrorContains(t, err, "non-boolean expression 1")

	_, err = est.Estimate(nil)
	assert.Equal(t, sqerrors.InvalidArgument, sqerrors.ErrCode(err))
}

func TestConfigEstimator(t *testing.T) {
	est := NewConfigEstimator(Defaults{Equal: 0.2, NotEqual: 0.8, Range: 0.5})
	expr := &sqlexpr.OrExpr{
		Left:  sqlexpr.Equals(col("R.a"), sqlexpr.NewIntLiteral(1)),
		Right: sqlexpr.NewComparison(sqlexpr.LessThanOp, col("R.b"), sqlexpr.NewIntLiteral(1)),
	}
	got, err := est.Estimate(expr)
	require.NoError(t, err)
	assert.InDelta(t, 0.2+0.5-0.1, got, 1e-12)

	got, err = est.Estimate(sqlexpr.NewComparison(sqlexpr.NotEqualOp, col("R.a"), col("R.b")))
	require.NoError(t, err)
	assert.Equal(t, 0.8, got)
}

func TestConfigEstimatorStaysPositive(t *testing.T) {
	est := NewConfigEstimator(Defaults{Equal: 1, NotEqual: 1, Range: 1})
	got, err := est.Estimate(&sqlexpr.NotExpr{Expr: sqlexpr.Equals(col("R.a"), sqlexpr.NewIntLiteral(1))})
	require.NoError(t, err)
	assert.Equal(t, epsilon, got)
}

func TestNew(t *testing.T) {
	cat, err := catalog.Parse([]byte(statsCatalog))
	require.NoError(t, err)

	est, err := New(Selinger, cat, nil, DefaultSelectivities)
	require.NoError(t, err)
	assert.IsType(t, &SelingerEstimator{}, est)

	est, err = New(Config, cat, nil, DefaultSelectivities)
	require.NoError(t, err)
	assert.IsType(t, &ConfigEstimator{}, est)

	_, err = New("histogram", cat, nil, DefaultSelectivities)
	require.ErrorContains(t, err, `unknown estimator "histogram"`)

	_, err = New(Config, cat, nil, Defaults{Equal: 0, NotEqual: 0.5, Range: 0.5})
	require.ErrorContains(t, err, "selectivity.equal must be in (0, 1]")
}
