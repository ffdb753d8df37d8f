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
	"testing"

	"github.com/stretchr/testify/assert"
)

func col(id string) *ColName { return NewColName(id) }

func TestString(t *testing.T) {
	testcases := []struct {
		expr Expr
		want string
	}{{
		expr: Equals(col("R.a"), col("S.a")),
		want: "R.a = S.a",
	}, {
		expr: &AndExpr{
			Left:  NewComparison(LessThanOp, col("R.b"), NewIntLiteral(10)),
			Right: &OrExpr{Left: Equals(col("R.c"), NewStrLiteral("x")), Right: NewComparison(GreaterThanOp, col("S.d"), NewFloatLiteral(1.5))},
		},
		want: `R.b < 10 and (R.c = "x" or S.d > 1.5)`,
	}, {
		expr: &OrExpr{Left: &AndExpr{Left: Equals(col("a"), NewIntLiteral(1)), Right: Equals(col("b"), NewIntLiteral(2))}, Right: &NotExpr{Expr: Equals(col("c"), NewIntLiteral(3))}},
		want: "a = 1 and b = 2 or not c = 3",
	}, {
		expr: &NotExpr{Expr: &OrExpr{Left: col("a"), Right: col("b")}},
		want: "not (a or b)",
	}, {
		expr: Equals(&BinaryExpr{Operator: MultOp, Left: &BinaryExpr{Operator: PlusOp, Left: col("R.a"), Right: NewIntLiteral(1)}, Right: NewIntLiteral(2)}, &FuncExpr{Name: "abs", Exprs: []Expr{col("S.a")}}),
		want: "(R.a + 1) * 2 = abs(S.a)",
	}, {
		expr: &BinaryExpr{Operator: MinusOp, Left: col("a"), Right: &BinaryExpr{Operator: MinusOp, Left: col("b"), Right: col("c")}},
		want: "a - (b - c)",
	}}
	for _, tc := range testcases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, String(tc.expr))
		})
	}
	assert.Equal(t, "", String(nil))
}

func TestSplitAndAndExpressions(t *testing.T) {
	a := Equals(col("R.a"), NewIntLiteral(1))
	b := Equals(col("S.b"), NewIntLiteral(2))
	c := &OrExpr{Left: Equals(col("R.c"), col("S.c")), Right: Equals(col("R.d"), NewIntLiteral(4))}

	anded := AndExpressions(a, nil, b, c)
	assert.Equal(t, "R.a = 1 and S.b = 2 and (R.c = S.c or R.d = 4)", String(anded))
	assert.Equal(t, []Expr{a, b, c}, SplitAndExpression(nil, anded))
	assert.Nil(t, AndExpressions())
	assert.Nil(t, AndExpressions(nil, nil))
	assert.Same(t, a, AndExpressions(a))
	assert.Empty(t, SplitAndExpression(nil, nil))
}

func TestQualifiersAndColumns(t *testing.T) {
	e := &AndExpr{
		Left:  Equals(&FuncExpr{Name: "lower", Exprs: []Expr{col("S.name")}}, col("R.name")),
		Right: &NotExpr{Expr: Equals(col("S.id"), col("T.id"))},
	}
	assert.Equal(t, []string{"S", "R", "T"}, Qualifiers(e))

	var ids []string
	for _, c := range Columns(e) {
		ids = append(ids, c.ID())
	}
	assert.Equal(t, []string{"S.name", "R.name", "S.id", "T.id"}, ids)

	assert.True(t, IsColName(col("R.a")))
	assert.False(t, IsColName(NewIntLiteral(1)))
}

func TestNewColName(t *testing.T) {
	assert.Equal(t, &ColName{Qualifier: "R", Name: "a"}, NewColName("R.a"))
	assert.Equal(t, &ColName{Name: "a"}, NewColName("a"))
	assert.Equal(t, "a", NewColName("a").ID())
	assert.True(t, GreaterEqualOp.IsRange())
	assert.False(t, NotEqualOp.IsRange())
}
