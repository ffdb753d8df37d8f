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
	"strings"

	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
	"github.com/lianhuiwang/squall/go/sq/sqltypes"
)

// Node is an expression in a query definition. Exactly one field is set.
type Node struct {
	Col   *string  `json:"col,omitempty"`
	Int   *int64   `json:"int,omitempty"`
	Float *float64 `json:"float,omitempty"`
	Str   *string  `json:"str,omitempty"`
	Null  bool     `json:"null,omitempty"`

	Eq []*Node `json:"eq,omitempty"`
	Ne []*Node `json:"ne,omitempty"`
	Lt []*Node `json:"lt,omitempty"`
	Le []*Node `json:"le,omitempty"`
	Gt []*Node `json:"gt,omitempty"`
	Ge []*Node `json:"ge,omitempty"`

	Add []*Node `json:"add,omitempty"`
	Sub []*Node `json:"sub,omitempty"`
	Mul []*Node `json:"mul,omitempty"`
	Div []*Node `json:"div,omitempty"`

	And []*Node `json:"and,omitempty"`
	Or  []*Node `json:"or,omitempty"`
	Not *Node   `json:"not,omitempty"`

	Func *FuncCall `json:"func,omitempty"`
}

type FuncCall struct {
	Name string  `json:"name"`
	Args []*Node `json:"args,omitempty"`
}

type builder func() (sqlexpr.Expr, error)

// Expr converts the node to an expression tree.
func (n *Node) Expr() (sqlexpr.Expr, error) {
	if n == nil {
		return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "empty expression")
	}

	var set []string
	var build builder
	choose := func(key string, present bool, b builder) {
		if present {
			set = append(set, key)
			build = b
		}
	}

	choose("col", n.Col != nil, func() (sqlexpr.Expr, error) {
		if *n.Col == "" {
			return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "empty column name")
		}
		return sqlexpr.NewColName(*n.Col), nil
	})
	choose("int", n.Int != nil, func() (sqlexpr.Expr, error) { return sqlexpr.NewIntLiteral(*n.Int), nil })
	choose("float", n.Float != nil, func() (sqlexpr.Expr, error) { return sqlexpr.NewFloatLiteral(*n.Float), nil })
	choose("str", n.Str != nil, func() (sqlexpr.Expr, error) { return sqlexpr.NewStrLiteral(*n.Str), nil })
	choose("null", n.Null, func() (sqlexpr.Expr, error) { return &sqlexpr.Literal{Val: sqltypes.NULL}, nil })

	for _, cmp := range []struct {
		key  string
		args []*Node
		op   sqlexpr.ComparisonOp
	}{
		{"eq", n.Eq, sqlexpr.EqualOp},
		{"ne", n.Ne, sqlexpr.NotEqualOp},
		{"lt", n.Lt, sqlexpr.LessThanOp},
		{"le", n.Le, sqlexpr.LessEqualOp},
		{"gt", n.Gt, sqlexpr.GreaterThanOp},
		{"ge", n.Ge, sqlexpr.GreaterEqualOp},
	} {
		choose(cmp.key, cmp.args != nil, func() (sqlexpr.Expr, error) {
			l, r, err := pair(cmp.key, cmp.args)
			if err != nil {
				return nil, err
			}
			return sqlexpr.NewComparison(cmp.op, l, r), nil
		})
	}

	for _, arith := range []struct {
		key  string
		args []*Node
		op   sqlexpr.ArithOp
	}{
		{"add", n.Add, sqlexpr.PlusOp},
		{"sub", n.Sub, sqlexpr.MinusOp},
		{"mul", n.Mul, sqlexpr.MultOp},
		{"div", n.Div, sqlexpr.DivOp},
	} {
		choose(arith.key, arith.args != nil, func() (sqlexpr.Expr, error) {
			l, r, err := pair(arith.key, arith.args)
			if err != nil {
				return nil, err
			}
			return &sqlexpr.BinaryExpr{Operator: arith.op, Left: l, Right: r}, nil
		})
	}

	choose("and", n.And != nil, func() (sqlexpr.Expr, error) {
		return fold("and", n.And, func(l, r sqlexpr.Expr) sqlexpr.Expr { return &sqlexpr.AndExpr{Left: l, Right: r} })
	})
	choose("or", n.Or != nil, func() (sqlexpr.Expr, error) {
		return fold("or", n.Or, func(l, r sqlexpr.Expr) sqlexpr.Expr { return &sqlexpr.OrExpr{Left: l, Right: r} })
	})
	choose("not", n.Not != nil, func() (sqlexpr.Expr, error) {
		inner, err := n.Not.Expr()
		if err != nil {
			return nil, err
		}
		return &sqlexpr.NotExpr{Expr: inner}, nil
	})
	choose("func", n.Func != nil, func() (sqlexpr.Expr, error) {
		if n.Func.Name == "" {
			return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "func needs a name")
		}
		args, err := exprs(n.Func.Args)
		if err != nil {
			return nil, err
		}
		return &sqlexpr.FuncExpr{Name: n.Func.Name, Exprs: args}, nil
	})

	switch len(set) {
	case 0:
		return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "empty expression")
	case 1:
		return build()
	default:
		return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "expression sets %s, want exactly one", strings.Join(set, ", "))
	}
}

func exprs(nodes []*Node) ([]sqlexpr.Expr, error) {
	out := make([]sqlexpr.Expr, 0, len(nodes))
	for _, n := range nodes {
		e, err := n.Expr()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func pair(key string, nodes []*Node) (sqlexpr.Expr, sqlexpr.Expr, error) {
	if len(nodes) != 2 {
		return nil, nil, sqerrors.Errorf(sqerrors.InvalidArgument, "%s takes 2 operands, got %d", key, len(nodes))
	}
	args, err := exprs(nodes)
	if err != nil {
		return nil, nil, err
	}
	return args[0], args[1], nil
}

// fold combines the operands left to right; a single operand stands alone.
func fold(key string, nodes []*Node, combine func(l, r sqlexpr.Expr) sqlexpr.Expr) (sqlexpr.Expr, error) {
	if len(nodes) == 0 {
		return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "%s needs at least one operand", key)
	}
	args, err := exprs(nodes)
	if err != nil {
		return nil, err
	}
	out := args[0]
	for _, e := range args[1:] {
		out = combine(out, e)
	}
	return out, nil
}
