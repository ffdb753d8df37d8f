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

// Package sqlexpr defines the immutable expression trees that describe WHERE
// clauses and join conditions. The set of node types is closed: column
// references, literals, arithmetic, function calls, comparisons and the
// boolean connectives.
package sqlexpr

import (
	"strings"

	"github.com/lianhuiwang/squall/go/sq/sqltypes"
)

// Expr is a node of an expression tree.
type Expr interface {
	iExpr()
	format(buf *strings.Builder)
	precedence() int
}

type (
	// ColName is a column reference qualified by the component (table alias)
	// it belongs to.
	ColName struct {
		Qualifier string
		Name      string
	}

	// Literal is a constant.
	Literal struct {
		Val sqltypes.Value
	}

	// BinaryExpr is an arithmetic operation.
	BinaryExpr struct {
		Operator    ArithOp
		Left, Right Expr
	}

	// FuncExpr is a scalar function call.
	FuncExpr struct {
		Name  string
		Exprs []Expr
	}

	// ComparisonExpr compares two scalar expressions.
	ComparisonExpr struct {
		Operator    ComparisonOp
		Left, Right Expr
	}

	AndExpr struct {
		Left, Right Expr
	}

	OrExpr struct {
		Left, Right Expr
	}

	NotExpr struct {
		Expr Expr
	}
)

func (*ColName) iExpr()        {}
func (*Literal) iExpr()        {}
func (*BinaryExpr) iExpr()     {}
func (*FuncExpr) iExpr()       {}
func (*ComparisonExpr) iExpr() {}
func (*AndExpr) iExpr()        {}
func (*OrExpr) iExpr()         {}
func (*NotExpr) iExpr()        {}

// ComparisonOp is the operator of a ComparisonExpr.
type ComparisonOp int8

const (
	EqualOp ComparisonOp = iota
	NotEqualOp
	LessThanOp
	LessEqualOp
	GreaterThanOp
	GreaterEqualOp
)

var comparisonOps = [...]string{
	EqualOp:        "=",
	NotEqualOp:     "!=",
	LessThanOp:     "<",
	LessEqualOp:    "<=",
	GreaterThanOp:  ">",
	GreaterEqualOp: ">=",
}

func (op ComparisonOp) String() string {
	return comparisonOps[op]
}

// IsRange reports whether op is one of < <= > >=.
func (op ComparisonOp) IsRange() bool {
	return op >= LessThanOp
}

// ArithOp is the operator of a BinaryExpr.
type ArithOp int8

const (
	PlusOp ArithOp = iota
	MinusOp
	MultOp
	DivOp
)

var arithOps = [...]string{
	PlusOp:  "+",
	MinusOp: "-",
	MultOp:  "*",
	DivOp:   "/",
}

func (op ArithOp) String() string {
	return arithOps[op]
}

// NewColName builds a column reference from a qualified id such as "R.a".
// An id without a dot yields an unqualified column.
func NewColName(id string) *ColName {
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		return &ColName{Qualifier: id[:i], Name: id[i+1:]}
	}
	return &ColName{Name: id}
}

// ID returns the qualified column id, as used in component schemas.
func (c *ColName) ID() string {
	if c.Qualifier == "" {
		return c.Name
	}
	return c.Qualifier + "." + c.Name
}

func NewIntLiteral(v int64) *Literal {
	return &Literal{Val: sqltypes.NewInt64(v)}
}

func NewFloatLiteral(v float64) *Literal {
	return &Literal{Val: sqltypes.NewFloat64(v)}
}

func NewStrLiteral(v string) *Literal {
	return &Literal{Val: sqltypes.NewVarChar(v)}
}

// NewComparison is a shorthand for &ComparisonExpr{...}.
func NewComparison(op ComparisonOp, left, right Expr) *ComparisonExpr {
	return &ComparisonExpr{Operator: op, Left: left, Right: right}
}

// Equals builds `left = right`.
func Equals(left, right Expr) *ComparisonExpr {
	return NewComparison(EqualOp, left, right)
}
