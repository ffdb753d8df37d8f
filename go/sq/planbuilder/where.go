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
	"log/slog"

	"github.com/lianhuiwang/squall/go/sq/log"
	"github.com/lianhuiwang/squall/go/sq/plan"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// routeWhere attaches to c the part of the WHERE clause that c is the
// first component able to evaluate, and folds its estimated selectivity
// into c's cost record.
func (g *Generator) routeWhere(c *plan.Component) error {
	expr, disjuncts := g.whereFor(c)
	if expr == nil {
		return nil
	}

	cost := g.costs[c.Name]
	op, err := g.compiler.CompileFilter(c.Name, cost.Schema, expr)
	if err != nil {
		return localFailure(c.Name, err)
	}
	selectivity, err := g.estimator.Estimate(expr)
	if err != nil {
		return localFailure(c.Name, err)
	}

	c.AddOperator(op)
	cost.Selectivity *= selectivity

	if _, ok := g.predicates.Conjuncts[c.Name]; ok {
		g.routed[c.Name] = true
	}
	for _, i := range disjuncts {
		g.routed[g.predicates.Disjuncts[i].key()] = true
	}
	g.metrics.filterAttached()
	if log.Enabled(slog.LevelDebug) {
		log.DebugS("attached filter", "component", c.Name, "filter", op.String(), "selectivity", cost.Selectivity)
	}
	return nil
}

// whereFor returns the conjunct keyed by c ANDed with every set predicate
// for which c is the least common merge point, plus the indexes of those
// set predicates.
func (g *Generator) whereFor(c *plan.Component) (sqlexpr.Expr, []int) {
	expr := g.predicates.Conjuncts[c.Name]
	var matched []int
	for i, sp := range g.predicates.Disjuncts {
		deps, ok := g.sourceSet(sp.Components)
		if !ok || !isLCM(c, deps) {
			continue
		}
		expr = sqlexpr.AndExpressions(expr, sp.Expr)
		matched = append(matched, i)
	}
	return expr, matched
}

// sourceSet resolves component names to data sources; it reports false
// while any of them has not been added yet.
func (g *Generator) sourceSet(names []string) (plan.SourceSet, bool) {
	set, err := g.plan.SourceSetOf(names...)
	if err != nil {
		return plan.EmptySourceSet, false
	}
	return set, true
}

// isLCM reports whether c is the lowest component covering deps: c covers
// them and neither of its parents does.
func isLCM(c *plan.Component, deps plan.SourceSet) bool {
	if !deps.IsSolvedBy(c.Ancestors) {
		return false
	}
	for _, parent := range c.Parents() {
		if deps.IsSolvedBy(parent.Ancestors) {
			return false
		}
	}
	return true
}

// localFailure marks err as a failure confined to the current call.
func localFailure(component string, err error) error {
	switch sqerrors.ErrState(err) {
	case sqerrors.UnsupportedExpression, sqerrors.EstimationFailed:
		return sqerrors.Wrapf(err, "routing filter to %s", component)
	}
	code := sqerrors.ErrCode(err)
	if code == sqerrors.Unknown || code == sqerrors.OK {
		code = sqerrors.InvalidArgument
	}
	return sqerrors.NewErrorf(code, sqerrors.EstimationFailed, "routing filter to %s: %v", component, err)
}

// IsFatal reports whether err leaves the plan unusable. Estimation and
// compilation failures are local to the call that raised them.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	switch sqerrors.ErrState(err) {
	case sqerrors.UnsupportedExpression, sqerrors.EstimationFailed:
		return false
	}
	return true
}
