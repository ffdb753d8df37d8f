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

// Package planbuilder grows a query plan one component at a time. Every
// data source and every equi-join gets a cost record (cardinality, schema,
// selectivity), the filters of the WHERE clause are pushed to the first
// component able to evaluate them, and the inputs of each join receive
// aligned hash keys.
package planbuilder

//go:generate mockgen -destination mock_planbuilder_test.go -package planbuilder github.com/lianhuiwang/squall/go/sq/planbuilder Compiler,ParallelismAssigner

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/lianhuiwang/squall/go/sq/catalog"
	"github.com/lianhuiwang/squall/go/sq/estimator"
	"github.com/lianhuiwang/squall/go/sq/log"
	"github.com/lianhuiwang/squall/go/sq/operators"
	"github.com/lianhuiwang/squall/go/sq/plan"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// Compiler turns expressions bound to a component schema into runtime
// operators.
type Compiler interface {
	CompileFilter(component string, schema []string, expr sqlexpr.Expr) (*operators.SelectOperator, error)
	CompileValue(component string, schema []string, expr sqlexpr.Expr) (operators.ValueExpression, error)
}

// ParallelismAssigner is notified after every join with the full set of
// cost records and may set their Parallelism.
type ParallelismAssigner interface {
	SetParallelism(c *plan.Component, costs map[string]*CostParams) error
}

var _ Compiler = (*operators.Compiler)(nil)

// Options configures a Generator. Only Catalog is required.
type Options struct {
	Catalog catalog.Catalog
	Aliases catalog.Aliases

	// DataPath and Extension locate the file a data source reads:
	// DataPath + lower(schema name) + Extension.
	DataPath  string
	Extension string

	Predicates *PredicateIndex

	// Estimator defaults to the estimator named by EstimatorKind, built over
	// Catalog and Aliases with the Selectivity defaults.
	Estimator     estimator.SelectivityEstimator
	EstimatorKind estimator.Kind
	Selectivity   estimator.Defaults

	Compiler Compiler
	Assigner ParallelismAssigner
	Metrics  *Metrics
}

// Generator builds one plan. It is not safe for concurrent use; independent
// plans use independent Generators.
type Generator struct {
	catalog    catalog.Catalog
	aliases    catalog.Aliases
	dataPath   string
	extension  string
	predicates *PredicateIndex
	estimator  estimator.SelectivityEstimator
	compiler   Compiler
	assigner   ParallelismAssigner
	metrics    *Metrics

	plan     *plan.QueryPlan
	costs    map[string]*CostParams
	subPlans []*plan.Component
	// routed records the predicate fragments that found a component.
	routed map[string]bool
}

func NewGenerator(opts Options) (*Generator, error) {
	if opts.Catalog == nil {
		return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "planbuilder: a catalog is required")
	}
	g := &Generator{
		catalog:    opts.Catalog,
		aliases:    opts.Aliases,
		dataPath:   opts.DataPath,
		extension:  opts.Extension,
		predicates: opts.Predicates,
		estimator:  opts.Estimator,
		compiler:   opts.Compiler,
		assigner:   opts.Assigner,
		metrics:    opts.Metrics,
		plan:       plan.NewQueryPlan(),
		costs:      map[string]*CostParams{},
		routed:     map[string]bool{},
	}
	if g.predicates == nil {
		g.predicates = NewPredicateIndex()
	}
	if g.estimator == nil {
		defaults := opts.Selectivity
		if defaults == (estimator.Defaults{}) {
			defaults = estimator.DefaultSelectivities
		}
		est, err := estimator.New(opts.EstimatorKind, opts.Catalog, opts.Aliases, defaults)
		if err != nil {
			return nil, err
		}
		g.estimator = est
	}
	if g.compiler == nil {
		g.compiler = operators.NewCompiler()
	}
	if g.assigner == nil {
		g.assigner = NewProportionalAssigner(DefaultTotalTasks, 0)
	}
	return g, nil
}

// AddDataSource adds the leaf called name, reading the table that name is
// an alias of, and attaches the filters that refer to it alone.
func (g *Generator) AddDataSource(name string) (*plan.Component, error) {
	c, err := g.addDataSource(name)
	g.metrics.failed(err)
	return c, err
}

func (g *Generator) addDataSource(name string) (*plan.Component, error) {
	if _, exists := g.plan.Component(name); exists {
		return nil, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.DuplicateComponent, "component %s already exists", name)
	}
	schemaName := g.aliases.SchemaName(name)
	cost, err := g.dataSourceCost(name, schemaName)
	if err != nil {
		return nil, err
	}

	path := g.dataPath + strings.ToLower(schemaName) + g.extension
	c, err := g.plan.NewDataSource(name, schemaName, path)
	if err != nil {
		return nil, err
	}
	g.costs[name] = cost
	g.subPlans = append(g.subPlans, c)
	g.metrics.componentAdded(c.Kind)
	log.DebugS("added data source", "component", name, "path", path, "cardinality", cost.Cardinality)

	if err := g.routeWhere(c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddEquiJoin joins two components of the frontier on condition, a
// conjunction of equalities between their columns. The join replaces its
// inputs on the frontier.
func (g *Generator) AddEquiJoin(left, right *plan.Component, condition sqlexpr.Expr) (*plan.Component, error) {
	c, err := g.addEquiJoin(left, right, condition)
	g.metrics.failed(err)
	if sqerrors.ErrState(err) == sqerrors.CyclicQuery {
		log.WarnS("rejected cyclic join", "left", left.Name, "right", right.Name, "condition", sqlexpr.String(condition))
	}
	return c, err
}

func (g *Generator) addEquiJoin(left, right *plan.Component, condition sqlexpr.Expr) (*plan.Component, error) {
	for _, parent := range []*plan.Component{left, right} {
		if parent == nil || !slices.Contains(g.subPlans, parent) {
			return nil, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.ComponentNotInFrontier,
				"component %v is not on the frontier", parent)
		}
	}
	if left == right {
		return nil, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.ComponentNotInFrontier,
			"cannot join %s with itself", left.Name)
	}

	leftSchema, rightSchema, err := g.joinSchemaNames(left, right, condition)
	if err != nil {
		return nil, err
	}
	terms, err := g.splitJoinCondition(left, right, condition)
	if err != nil {
		return nil, err
	}
	cost, err := g.equiJoinCost(left, right, leftSchema, rightSchema)
	if err != nil {
		return nil, err
	}
	leftKey, err := g.deriveHashKey(left, terms)
	if err != nil {
		return nil, err
	}
	rightKey, err := g.deriveHashKey(right, terms)
	if err != nil {
		return nil, err
	}

	c, err := g.plan.NewEquiJoin(left, right, condition)
	if err != nil {
		return nil, err
	}
	g.costs[c.Name] = cost
	g.subPlans = slices.DeleteFunc(g.subPlans, func(sp *plan.Component) bool {
		return sp == left || sp == right
	})
	g.subPlans = append(g.subPlans, c)
	g.metrics.componentAdded(c.Kind)
	if log.Enabled(slog.LevelDebug) {
		log.DebugS("added join", "component", c.Name, "condition", sqlexpr.String(condition), "selectivity", cost.Selectivity)
	}

	routeErr := g.routeWhere(c)
	left.SetHashKey(leftKey)
	right.SetHashKey(rightKey)

	if err := g.assigner.SetParallelism(c, g.costs); err != nil {
		if routeErr != nil {
			log.WarnS("filter routing failed before parallelism assignment", "component", c.Name, "err", routeErr)
			return nil, sqerrors.Wrapf(err, "assigning parallelism to %s (after %v)", c.Name, routeErr)
		}
		return nil, sqerrors.Wrapf(err, "assigning parallelism to %s", c.Name)
	}
	if routeErr != nil {
		return nil, routeErr
	}
	return c, nil
}

// CostParameters returns a copy of the cost record of the named component.
// Records outlive the frontier: components absorbed by a join keep theirs.
func (g *Generator) CostParameters(name string) (CostParams, bool) {
	cp, ok := g.costs[name]
	if !ok {
		return CostParams{}, false
	}
	return cp.clone(), true
}

// CostParams returns a copy of every cost record.
func (g *Generator) CostParams() map[string]CostParams {
	out := make(map[string]CostParams, len(g.costs))
	for name, cp := range g.costs {
		out[name] = cp.clone()
	}
	return out
}

// QueryPlan returns the plan being built.
func (g *Generator) QueryPlan() *plan.QueryPlan {
	return g.plan
}

// SubPlans returns the frontier: the components not yet consumed by a join.
func (g *Generator) SubPlans() []*plan.Component {
	return slices.Clone(g.subPlans)
}

// Root returns the single component left on the frontier once every input
// has been joined.
func (g *Generator) Root() (*plan.Component, error) {
	if len(g.subPlans) != 1 {
		names := make([]string, len(g.subPlans))
		for i, sp := range g.subPlans {
			names[i] = sp.Name
		}
		return nil, sqerrors.Errorf(sqerrors.FailedPrecondition, "plan has %d sub-plans %v, want exactly one", len(names), names)
	}
	return g.subPlans[0], nil
}

// UnroutedPredicates returns the WHERE fragments that no component has
// been able to evaluate so far, sorted by the components they refer to.
func (g *Generator) UnroutedPredicates() []string {
	var out []string
	for _, name := range slices.Sorted(maps.Keys(g.predicates.Conjuncts)) {
		if !g.routed[name] {
			out = append(out, sqlexpr.String(g.predicates.Conjuncts[name]))
		}
	}
	for _, sp := range g.predicates.Disjuncts {
		if !g.routed[sp.key()] {
			out = append(out, sqlexpr.String(sp.Expr))
		}
	}
	return out
}
