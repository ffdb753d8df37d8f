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
	"fmt"

	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
	"github.com/lianhuiwang/squall/go/sq/sqltypes"
)

// Predicate is a boolean expression bound to row offsets. Comparisons
// involving NULL are false.
type Predicate interface {
	Test(row sqltypes.Row) (bool, error)
	String() string
}

type (
	Comparison struct {
		Op          sqlexpr.ComparisonOp
		Left, Right ValueExpression
	}

	And struct {
		Left, Right Predicate
	}

	Or struct {
		Left, Right Predicate
	}

	Not struct {
		Inner Predicate
	}
)

var (
	_ Predicate = (*Comparison)(nil)
	_ Predicate = (*And)(nil)
	_ Predicate = (*Or)(nil)
	_ Predicate = (*Not)(nil)
)

func (c *Comparison) Test(row sqltypes.Row) (bool, error) {
	l, err := c.Left.Eval(row)
	if err != nil {
		return false, err
	}
	r, err := c.Right.Eval(row)
	if err != nil {
		return false, err
	}
	if l.IsNull() || r.IsNull() {
		return false, nil
	}
	cmp, err := sqltypes.Compare(l, r)
	if err != nil {
		return false, err
	}
	switch c.Op {
	case sqlexpr.EqualOp:
		return cmp == 0, nil
	case sqlexpr.NotEqualOp:
		return cmp != 0, nil
	case sqlexpr.LessThanOp:
		return cmp < 0, nil
	case sqlexpr.LessEqualOp:
		return cmp <= 0, nil
	case sqlexpr.GreaterThanOp:
		return cmp > 0, nil
	default:
		return cmp >= 0, nil
	}
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)
}

func (a *And) Test(row sqltypes.Row) (bool, error) {
	ok, err := a.Left.Test(row)
	if err != nil || !ok {
		return false, err
	}
	return a.Right.Test(row)
}

func (a *And) String() string {
	return fmt.Sprintf("(%s and %s)", a.Left, a.Right)
}

func (o *Or) Test(row sqltypes.Row) (bool, error) {
	ok, err := o.Left.Test(row)
	if err != nil || ok {
		return ok, err
	}
	return o.Right.Test(row)
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s or %s)", o.Left, o.Right)
}

func (n *Not) Test(row sqltypes.Row) (bool, error) {
	ok, err := n.Inner.Test(row)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (n *Not) String() string {
	return fmt.Sprintf("not %s", n.Inner)
}

// SelectOperator filters the tuples flowing through a component.
type SelectOperator struct {
	// Component is the name of the component the filter is attached to.
	Component string
	// Expr is the source expression, kept for display.
	Expr      sqlexpr.Expr
	Predicate Predicate
}

// Accept reports whether row survives the filter.
func (s *SelectOperator) Accept(row sqltypes.Row) (bool, error) {
	return s.Predicate.Test(row)
}

func (s *SelectOperator) String() string {
	return "Select(" + sqlexpr.String(s.Expr) + ")"
}
