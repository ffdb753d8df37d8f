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

package querydef

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lianhuiwang/squall/go/sq/catalog"
	"github.com/lianhuiwang/squall/go/sq/planbuilder"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
	"github.com/lianhuiwang/squall/go/sq/sqltypes"
)

const q3 = `
sources:
  - {alias: C, table: customer}
  - {alias: O, table: orders}
  - {alias: L, table: lineitem}
joins:
  - left: C
    right: O
    on: {eq: [{col: C.custkey}, {col: O.custkey}]}
  - left: C_O
    right: L
    on: {eq: [{col: O.orderkey}, {col: L.orderkey}]}
where:
  and:
    - {eq: [{col: C.mktsegment}, {str: BUILDING}]}
    - {lt: [{col: O.orderdate}, {int: 19950315}]}
    - {gt: [{col: L.shipdate}, {int: 19950315}]}
`

const tpch = `
tables:
  customer:
    cardinality: 150000
    columns: [custkey, mktsegment]
  orders:
    cardinality: 1500000
    columns: [orderkey, custkey, orderdate]
  lineitem:
    cardinality: 6000000
    columns: [orderkey, shipdate]
ratios:
  - {left: customer, right: orders, ratio: 10}
  - {left: orders, right: lineitem, ratio: 4}
`

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/queries/q3.yaml", []byte(q3), 0o644))

	def, err := Load(fs, "/queries/q3.yaml")
	require.NoError(t, err)
	assert.Equal(t, "q3", def.Name)
	assert.Equal(t, []Source{{"C", "customer"}, {"O", "orders"}, {"L", "lineitem"}}, def.Sources)

	q, err := def.Query()
	require.NoError(t, err)
	require.Len(t, q.Joins, 2)
	assert.Equal(t, "C.custkey = O.custkey", sqlexpr.String(q.Joins[0].Condition))
	assert.Equal(t, "C_O", q.Joins[1].Left)
	assert.Equal(t,
		`C.mktsegment = "BUILDING" and O.orderdate < 19950315 and L.shipdate > 19950315`,
		sqlexpr.String(q.Where))

	_, err = Load(fs, "/queries/missing.yaml")
	require.ErrorContains(t, err, "reading query /queries/missing.yaml")
}

func TestLoadedQueryPlans(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tpch.yaml", []byte(tpch), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/q3.yaml", []byte(q3), 0o644))

	schema, err := catalog.Load(fs, "/tpch.yaml")
	require.NoError(t, err)
	def, err := Load(fs, "/q3.yaml")
	require.NoError(t, err)
	q, err := def.Query()
	require.NoError(t, err)

	g, err := planbuilder.Plan(q, planbuilder.Options{Catalog: schema})
	require.NoError(t, err)
	root, err := g.Root()
	require.NoError(t, err)
	assert.Equal(t, "C_O_L", root.Name)
	assert.Empty(t, g.UnroutedPredicates())

	c, ok := g.QueryPlan().Component("C")
	require.True(t, ok)
	require.Len(t, c.Operators, 1)
	assert.Equal(t, "customer", c.SchemaName)
}

func TestNodeExpr(t *testing.T) {
	str := func(s string) *string { return &s }
	i64 := func(v int64) *int64 { return &v }

	cases := []struct {
		name string
		node *Node
		want sqlexpr.Expr
	}{{
		name: "column",
		node: &Node{Col: str("R.a")},
		want: &sqlexpr.ColName{Qualifier: "R", Name: "a"},
	}, {
		name: "null",
		node: &Node{Null: true},
		want: &sqlexpr.Literal{Val: sqltypes.NULL},
	}, {
		name: "single conjunct",
		node: &Node{And: []*Node{{Ne: []*Node{{Col: str("R.a")}, {Int: i64(3)}}}}},
		want: sqlexpr.NewComparison(sqlexpr.NotEqualOp, sqlexpr.NewColName("R.a"), sqlexpr.NewIntLiteral(3)),
	}, {
		name: "function",
		node: &Node{Func: &FuncCall{Name: "abs", Args: []*Node{{Col: str("R.a")}}}},
		want: &sqlexpr.FuncExpr{Name: "abs", Exprs: []sqlexpr.Expr{sqlexpr.NewColName("R.a")}},
	}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.node.Expr()
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(sqltypes.Value{})); diff != "" {
				t.Errorf("Expr() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseExpressions(t *testing.T) {
	def, err := Parse([]byte(`
sources: [{alias: R}, {alias: S}]
where:
  or:
    - {ge: [{mul: [{add: [{col: R.a}, {int: 1}]}, {float: 2.5}]}, {col: S.b}]}
    - not: {le: [{div: [{col: R.b}, {sub: [{col: S.c}, {int: 1}]}]}, {int: 0}]}
    - {eq: [{func: {name: upper, args: [{col: R.c}]}}, {str: X}]}
`))
	require.NoError(t, err)
	q, err := def.Query()
	require.NoError(t, err)
	assert.Equal(t, []planbuilder.Source{{Name: "R"}, {Name: "S"}}, q.Sources)
	assert.Equal(t,
		`(R.a + 1) * 2.5 >= S.b or not R.b / (S.c - 1) <= 0 or upper(R.c) = "X"`,
		sqlexpr.String(q.Where))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name, yaml, want string
	}{
		{"no sources", `joins: []`, "has no sources"},
		{"unknown field", "sources: [{alias: R}]\nlimit: 10", "invalid query definition"},
		{"no alias", `sources: [{table: r}]`, "source 0 has no alias"},
		{"half join", "sources: [{alias: R}]\njoins: [{left: R, on: {eq: [{col: R.a}, {col: R.a}]}}]", "needs both left and right"},
		{"no condition", "sources: [{alias: R}]\njoins: [{left: R, right: S}]", "join R_S has no condition"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.ErrorContains(t, err, tc.want)
			assert.Equal(t, sqerrors.InvalidArgument, sqerrors.ErrCode(err))
		})
	}
}

func TestQueryExpressionErrors(t *testing.T) {
	cases := []struct {
		name, yaml, want string
	}{
		{"two keys", `{col: R.a, int: 1}`, "expression sets col, int, want exactly one"},
		{"empty", `{}`, "empty expression"},
		{"arity", `{eq: [{col: R.a}]}`, "eq takes 2 operands, got 1"},
		{"empty and", `{and: []}`, "and needs at least one operand"},
		{"empty column", `{col: ""}`, "empty column name"},
		{"nameless func", `{func: {args: [{int: 1}]}}`, "func needs a name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Parse([]byte("sources: [{alias: R}]\nwhere: " + tc.yaml))
			require.NoError(t, err)
			_, err = def.Query()
			require.ErrorContains(t, err, tc.want)
		})
	}
}
