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

package operators

import (
	"strings"

	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// Compiler translates sqlexpr trees into predicates and value expressions
// whose column references are bound to offsets of a component schema.
type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// CompileFilter builds the SelectOperator that evaluates expr over rows of
// the given component schema.
func (c *Compiler) CompileFilter(component string, schema []string, expr sqlexpr.Expr) (*SelectOperator, error) {
	pred, err := translatePredicate(expr, newSchemaLookup(component, schema))
	if err != nil {
		return nil, err
	}
	return &SelectOperator{Component: component, Expr: expr, Predicate: pred}, nil
}

// CompileValue binds a scalar expression to the given component schema.
func (c *Compiler) CompileValue(component string, schema []string, expr sqlexpr.Expr) (ValueExpression, error) {
	return translateValue(expr, newSchemaLookup(component, schema))
}

type schemaLookup struct {
	component string
	schema    []string
	offsets   map[string]int
}

func newSchemaLookup(component string, schema []string) *schemaLookup {
	offsets := make(map[string]int, len(schema))
	for i, id := range schema {
		offsets[id] = i
	}
	return &schemaLookup{component: component, schema: schema, offsets: offsets}
}

// ColumnLookup returns the offset of col. Unqualified columns match when
// exactly one schema entry carries that column name.
func (l *schemaLookup) ColumnLookup(col *sqlexpr.ColName) (int, error) {
	if col.Qualifier != "" {
		if off, ok := l.offsets[col.ID()]; ok {
			return off, nil
		}
		return -1, l.unknown(col)
	}

	found := -1
	for i, id := range l.schema {
		if id == col.Name || strings.HasSuffix(id, "."+col.Name) {
			if found >= 0 {
				return -1, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.UnsupportedExpression, "column %s is ambiguous in component %s", col.Name, l.component)
			}
			found = i
		}
	}
	if found < 0 {
		return -1, l.unknown(col)
	}
	return found, nil
}

func (l *schemaLookup) unknown(col *sqlexpr.ColName) error {
	return sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.UnknownColumn, "column %s not found in component %s", col.ID(), l.component)
}

func translateValue(e sqlexpr.Expr, lookup *schemaLookup) (ValueExpression, error) {
	switch e := e.(type) {
	case *sqlexpr.ColName:
		off, err := lookup.ColumnLookup(e)
		if err != nil {
			return nil, err
		}
		return &Column{Offset: off, Name: e.ID()}, nil
	case *sqlexpr.Literal:
		return &Constant{Val: e.Val}, nil
	case *sqlexpr.BinaryExpr:
		left, err := translateValue(e.Left, lookup)
		if err != nil {
			return nil, err
		}
		right, err := translateValue(e.Right, lookup)
		if err != nil {
			return nil, err
		}
		return &Arithmetic{Op: e.Operator, Left: left, Right: right}, nil
	case *sqlexpr.FuncExpr:
		fn, err := lookupBuiltin(e.Name, len(e.Exprs))
		if err != nil {
			return nil, err
		}
		args := make([]ValueExpression, 0, len(e.Exprs))
		for _, arg := range e.Exprs {
			v, err := translateValue(arg, lookup)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		return &Function{Name: strings.ToLower(e.Name), Args: args, fn: fn}, nil
	case nil:
		return nil, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.UnsupportedExpression, "cannot compile an empty expression")
	}
	return nil, sqerrors.NewErrorf(sqerrors.Unimplemented, sqerrors.UnsupportedExpression, "%s is not a scalar expression", sqlexpr.String(e))
}

func translatePredicate(e sqlexpr.Expr, lookup *schemaLookup) (Predicate, error) {
	switch e := e.(type) {
	case *sqlexpr.ComparisonExpr:
		left, err := translateValue(e.Left, lookup)
		if err != nil {
			return nil, err
		}
		right, err := translateValue(e.Right, lookup)
		if err != nil {
			return nil, err
		}
		return &Comparison{Op: e.Operator, Left: left, Right: right}, nil
	case *sqlexpr.AndExpr:
		left, right, err := translatePair(e.Left, e.Right, lookup)
		if err != nil {
			return nil, err
		}
		return &And{Left: left, Right: right}, nil
	case *sqlexpr.OrExpr:
		left, right, err := translatePair(e.Left, e.Right, lookup)
		if err != nil {
			return nil, err
		}
		return &Or{Left: left, Right: right}, nil
	case *sqlexpr.NotExpr:
		inner, err := translatePredicate(e.Expr, lookup)
		if err != nil {
			return nil, err
		}
		return &Not{Inner: inner}, nil
	case nil:
		return nil, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.UnsupportedExpression, "cannot compile an empty filter")
	}
	return nil, sqerrors.NewErrorf(sqerrors.Unimplemented, sqerrors.UnsupportedExpression, "%s is not a boolean expression", sqlexpr.String(e))
}

func translatePair(l, r sqlexpr.Expr, lookup *schemaLookup) (Predicate, Predicate, error) {
	left, err := translatePredicate(l, lookup)
	if err != nil {
		return nil, nil, err
	}
	right, err := translatePredicate(r, lookup)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}
