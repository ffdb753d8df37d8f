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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

func TestBuildPredicateIndex(t *testing.T) {
	where := and(
		eqInt("R.a", 1),
		eqInt("S.c", 2),
		eqInt("R.b", 3),
		&sqlexpr.OrExpr{Left: eqInt("R.a", 1), Right: eqInt("S.c", 2)},
		sqlexpr.NewComparison(sqlexpr.LessThanOp, col("S.a"), col("R.a")),
		eq("T.a", "R.a"),
	)
	idx, err := BuildPredicateIndex(where)
	require.NoError(t, err)

	require.Len(t, idx.Conjuncts, 2)
	assert.Equal(t, "R.a = 1 and R.b = 3", sqlexpr.String(idx.Conjuncts["R"]))
	assert.Equal(t, "S.c = 2", sqlexpr.String(idx.Conjuncts["S"]))

	require.Len(t, idx.Disjuncts, 2)
	assert.Equal(t, []string{"R", "S"}, idx.Disjuncts[0].Components)
	assert.Equal(t, "(R.a = 1 or S.c = 2) and S.a < R.a", sqlexpr.String(idx.Disjuncts[0].Expr))
	assert.Equal(t, []string{"R", "T"}, idx.Disjuncts[1].Components)
	assert.Equal(t, 4, idx.Len())
}

func TestBuildPredicateIndexErrors(t *testing.T) {
	_, err := BuildPredicateIndex(sqlexpr.Equals(sqlexpr.NewIntLiteral(1), sqlexpr.NewIntLiteral(1)))
	assert.Equal(t, sqerrors.UnsupportedExpression, sqerrors.ErrState(err))
	assert.ErrorContains(t, err, "1 = 1 does not refer to any component")

	_, err = BuildPredicateIndex(and(eqInt("R.a", 1), sqlexpr.Equals(sqlexpr.NewColName("b"), sqlexpr.NewIntLiteral(1))))
	assert.ErrorContains(t, err, "unqualified column")

	idx, err := BuildPredicateIndex(nil)
	require.NoError(t, err)
	assert.Zero(t, idx.Len())
}
