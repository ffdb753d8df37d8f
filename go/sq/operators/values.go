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

// Package operators holds the runtime artifacts a plan attaches to its
// components: compiled filters (SelectOperator) and partitioning keys
// (HashKey). Expressions are compiled against a component schema so that
// column references become row offsets.
package operators

import (
	"fmt"
	"strings"

	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
	"github.com/lianhuiwang/squall/go/sq/sqltypes"
)

// ValueExpression is a scalar expression bound to row offsets.
type ValueExpression interface {
	Eval(row sqltypes.Row) (sqltypes.Value, error)
	String() string
}

type (
	// Column reads the value at Offset.
	Column struct {
		Offset int
		Name   string
	}

	// Constant always evaluates to Val.
	Constant struct {
		Val sqltypes.Value
	}

	// Arithmetic applies + - * or / to two operands. A NULL operand or a
	// division by zero yields NULL.
	Arithmetic struct {
		Op          sqlexpr.ArithOp
		Left, Right ValueExpression
	}

	// Function calls a builtin scalar function.
	Function struct {
		Name string
		Args []ValueExpression

		fn builtin
	}
)

var (
	_ ValueExpression = (*Column)(nil)
	_ ValueExpression = (*Constant)(nil)
	_ ValueExpression = (*Arithmetic)(nil)
	_ ValueExpression = (*Function)(nil)
)

func (c *Column) Eval(row sqltypes.Row) (sqltypes.Value, error) {
	if c.Offset < 0 || c.Offset >= len(row) {
		return sqltypes.NULL, sqerrors.Errorf(sqerrors.OutOfRange, "column %s at offset %d is out of range for a row of %d values", c.Name, c.Offset, len(row))
	}
	return row[c.Offset], nil
}

func (c *Column) String() string {
	return fmt.Sprintf("%s:%d", c.Name, c.Offset)
}

func (c *Constant) Eval(sqltypes.Row) (sqltypes.Value, error) {
	return c.Val, nil
}

func (c *Constant) String() string {
	return c.Val.String()
}

func (a *Arithmetic) Eval(row sqltypes.Row) (sqltypes.Value, error) {
	l, err := a.Left.Eval(row)
	if err != nil {
		return sqltypes.NULL, err
	}
	r, err := a.Right.Eval(row)
	if err != nil {
		return sqltypes.NULL, err
	}
	if l.IsNull() || r.IsNull() {
		return sqltypes.NULL, nil
	}
	if !l.IsNumeric() || !r.IsNumeric() {
		return sqltypes.NULL, sqerrors.Errorf(sqerrors.InvalidArgument, "cannot apply %s to %s and %s", a.Op, l.Type(), r.Type())
	}

	if l.Type() == sqltypes.Int64 && r.Type() == sqltypes.Int64 && a.Op != sqlexpr.DivOp {
		li, _ := l.ToInt64()
		ri, _ := r.ToInt64()
		switch a.Op {
		case sqlexpr.PlusOp:
			return sqltypes.NewInt64(li + ri), nil
		case sqlexpr.MinusOp:
			return sqltypes.NewInt64(li - ri), nil
		default:
			return sqltypes.NewInt64(li * ri), nil
		}
	}

	lf, _ := l.ToFloat64()
	rf, _ := r.ToFloat64()
	switch a.Op {
	case sqlexpr.PlusOp:
		return sqltypes.NewFloat64(lf + rf), nil
	case sqlexpr.MinusOp:
		return sqltypes.NewFloat64(lf - rf), nil
	case sqlexpr.MultOp:
		return sqltypes.NewFloat64(lf * rf), nil
	}
	if rf == 0 {
		return sqltypes.NULL, nil
	}
	return sqltypes.NewFloat64(lf / rf), nil
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left, a.Op, a.Right)
}

func (f *Function) Eval(row sqltypes.Row) (sqltypes.Value, error) {
	args := make([]sqltypes.Value, len(f.Args))
	for i, arg := range f.Args {
		v, err := arg.Eval(row)
		if err != nil {
			return sqltypes.NULL, err
		}
		args[i] = v
	}
	return f.fn.call(args)
}

func (f *Function) String() string {
	args := make([]string, len(f.Args))
	for i, arg := range f.Args {
		args[i] = arg.String()
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}
