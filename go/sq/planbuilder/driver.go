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
	"maps"

	"github.com/lianhuiwang/squall/go/sq/catalog"
	"github.com/lianhuiwang/squall/go/sq/plan"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// Source is a data source of a Query: a component name and the table it
// reads. An empty Table means the name is the table.
type Source struct {
	Name  string
	Table string
}

// Join joins two components by name. Joins are named left_right, so later
// joins can refer to earlier ones.
type Join struct {
	Left, Right string
	Condition   sqlexpr.Expr
}

// Query is a declarative plan: sources are added first, then joins in the
// given order.
type Query struct {
	Sources []Source
	Joins   []Join
	Where   sqlexpr.Expr
}

// Plan builds q and returns the generator holding the finished plan. It
// fails when a WHERE fragment found no component or when the joins do not
// connect every source into a single root.
func Plan(q *Query, opts Options) (*Generator, error) {
	aliases := catalog.Aliases{}
	maps.Copy(aliases, opts.Aliases)
	for _, src := range q.Sources {
		if src.Table != "" {
			aliases[src.Name] = src.Table
		}
	}
	opts.Aliases = aliases

	if opts.Predicates == nil {
		idx, err := BuildPredicateIndex(q.Where)
		if err != nil {
			return nil, err
		}
		opts.Predicates = idx
	}

	g, err := NewGenerator(opts)
	if err != nil {
		return nil, err
	}
	for _, src := range q.Sources {
		if _, err := g.AddDataSource(src.Name); err != nil {
			return g, err
		}
	}
	for _, j := range q.Joins {
		left, err := g.frontierComponent(j.Left)
		if err != nil {
			return g, err
		}
		right, err := g.frontierComponent(j.Right)
		if err != nil {
			return g, err
		}
		if _, err := g.AddEquiJoin(left, right, j.Condition); err != nil {
			return g, err
		}
	}

	root, err := g.Root()
	if err != nil {
		return g, err
	}
	if len(q.Joins) == 0 {
		if err := g.assigner.SetParallelism(root, g.costs); err != nil {
			return g, sqerrors.Wrapf(err, "assigning parallelism to %s", root.Name)
		}
	}
	if unrouted := g.UnroutedPredicates(); len(unrouted) > 0 {
		return g, sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.UnknownComponent,
			"filters refer to components that are not in the plan: %v", unrouted)
	}
	return g, nil
}

func (g *Generator) frontierComponent(name string) (*plan.Component, error) {
	c, ok := g.plan.Component(name)
	if !ok {
		return nil, sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.UnknownComponent, "component %s not found", name)
	}
	return c, nil
}
