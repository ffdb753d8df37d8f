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

// Package plan holds the query plan DAG: data sources at the leaves, binary
// equi-joins above them. The QueryPlan owns every component; joins only
// link to their parents.
package plan

import (
	"fmt"

	"github.com/lianhuiwang/squall/go/sq/operators"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// ComponentKind discriminates the Component variants.
type ComponentKind int8

const (
	DataSourceKind ComponentKind = iota
	EquiJoinKind
)

func (k ComponentKind) String() string {
	switch k {
	case DataSourceKind:
		return "DataSource"
	case EquiJoinKind:
		return "EquiJoin"
	}
	return fmt.Sprintf("ComponentKind(%d)", int8(k))
}

// Component is a node of the plan. Name, Ancestors, Operators and HashKey
// are shared by all kinds; the remaining fields belong to one kind only.
type Component struct {
	Kind ComponentKind
	Name string

	// Ancestors is the set of data sources at or below this component,
	// computed once at construction.
	Ancestors SourceSet

	// Operators are the filters applied to the component's output.
	Operators []*operators.SelectOperator

	// HashKey partitions the component's output for the join consuming it.
	HashKey *operators.HashKey

	// DataSource payload.
	SchemaName string
	SourcePath string

	// EquiJoin payload.
	Left, Right   *Component
	JoinCondition sqlexpr.Expr
}

func (c *Component) IsDataSource() bool { return c.Kind == DataSourceKind }

func (c *Component) IsEquiJoin() bool { return c.Kind == EquiJoinKind }

// Parents returns the join inputs, left first. Data sources have none.
func (c *Component) Parents() []*Component {
	if c.Kind != EquiJoinKind {
		return nil
	}
	return []*Component{c.Left, c.Right}
}

// AddOperator appends a filter to the component.
func (c *Component) AddOperator(op *operators.SelectOperator) {
	c.Operators = append(c.Operators, op)
}

// SetHashKey replaces the component's partitioning key.
func (c *Component) SetHashKey(key *operators.HashKey) {
	c.HashKey = key
}

// ShortDescription is a one-line summary used when rendering the plan.
func (c *Component) ShortDescription() string {
	switch c.Kind {
	case DataSourceKind:
		return fmt.Sprintf("%s %s (%s)", c.Kind, c.Name, c.SourcePath)
	case EquiJoinKind:
		return fmt.Sprintf("%s %s (%s)", c.Kind, c.Name, sqlexpr.String(c.JoinCondition))
	}
	return c.Name
}

func (c *Component) String() string {
	return c.Name
}
