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
	"slices"

	"github.com/lianhuiwang/squall/go/sq/plan"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// CostParams is the cost record of one component.
//
// For a data source, Cardinality is the table size and Selectivity the
// product of the estimates of the filters attached to it. For a join,
// Selectivity starts as the output/input rate relative to the sum of the
// input cardinalities and Cardinality is Selectivity * (left + right) at the
// time the join was added.
type CostParams struct {
	Cardinality float64
	// Schema holds the qualified output columns, "alias.column".
	Schema      []string
	Selectivity float64
	// Parallelism is the task count chosen by the ParallelismAssigner.
	Parallelism int
}

func (cp *CostParams) clone() CostParams {
	out := *cp
	out.Schema = slices.Clone(cp.Schema)
	return out
}

func qualify(alias string, columns []string) []string {
	schema := make([]string, len(columns))
	for i, c := range columns {
		schema[i] = alias + "." + c
	}
	return schema
}

// dataSourceCost reads the size and columns of the table behind a data source.
func (g *Generator) dataSourceCost(name, schemaName string) (*CostParams, error) {
	card, err := g.catalog.TableCardinality(schemaName)
	if err != nil {
		return nil, sqerrors.Wrapf(err, "adding data source %s", name)
	}
	columns, err := g.catalog.TableSchema(schemaName)
	if err != nil {
		return nil, sqerrors.Wrapf(err, "adding data source %s", name)
	}
	return &CostParams{
		Cardinality: card,
		Schema:      qualify(name, columns),
		Selectivity: 1,
	}, nil
}

// joinSchemaNames resolves the schema name of the single data source each
// side contributes to condition. It reads no catalog state, so it runs
// before the condition's terms are validated.
func (g *Generator) joinSchemaNames(left, right *plan.Component, condition sqlexpr.Expr) (string, string, error) {
	names := sqlexpr.Qualifiers(condition)
	if _, err := g.plan.SourceSetOf(names...); err != nil {
		return "", "", sqerrors.Wrapf(err, "resolving join condition %s", sqlexpr.String(condition))
	}
	leftSchema, err := g.joinSchemaName(names, left)
	if err != nil {
		return "", "", err
	}
	rightSchema, err := g.joinSchemaName(names, right)
	if err != nil {
		return "", "", err
	}
	return leftSchema, rightSchema, nil
}

// equiJoinCost computes the record of the join of left and right without
// storing it.
func (g *Generator) equiJoinCost(left, right *plan.Component, leftSchema, rightSchema string) (*CostParams, error) {
	lc, rc := g.costs[left.Name], g.costs[right.Name]
	schema := make([]string, 0, len(lc.Schema)+len(rc.Schema))
	schema = append(schema, lc.Schema...)
	schema = append(schema, rc.Schema...)

	cl, cr := lc.Cardinality, rc.Cardinality
	var selectivity float64
	if leftSchema == rightSchema {
		// Modeled as a filtered cross product.
		selectivity = cl * cr / (cl + cr)
	} else {
		ratio, err := g.catalog.JoinRatio(leftSchema, rightSchema)
		if err != nil {
			return nil, sqerrors.Wrapf(err, "joining %s and %s", left.Name, right.Name)
		}
		selectivity = cl * ratio / (cl + cr)
	}
	if cl+cr == 0 {
		selectivity = 0
	}

	return &CostParams{
		Cardinality: selectivity * (cl + cr),
		Schema:      schema,
		Selectivity: selectivity,
	}, nil
}

// joinSchemaName returns the schema name of the single data source of side
// that the join condition refers to.
func (g *Generator) joinSchemaName(names []string, side *plan.Component) (string, error) {
	var matches []*plan.Component
	for _, name := range names {
		c, ok := g.plan.Component(name)
		if ok && c.IsDataSource() && c.Ancestors.IsSolvedBy(side.Ancestors) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return "", sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.BadJoinCondition,
			"join condition does not refer to any data source of %s", side.Name)
	case 1:
		return matches[0].SchemaName, nil
	}
	err := sqerrors.NewErrorf(sqerrors.FailedPrecondition, sqerrors.CyclicQuery,
		"cannot estimate join selectivity if a query is cyclic: join condition refers to %d data sources of %s", len(matches), side.Name)
	return "", err
}
