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
	"math"

	"github.com/lianhuiwang/squall/go/sq/plan"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
)

// DefaultTotalTasks is the task budget of the default ParallelismAssigner.
const DefaultTotalTasks = 32

// ProportionalAssigner splits a task budget over the components of a
// sub-plan in proportion to the number of tuples each one processes: its
// table size for a data source, the sum of its inputs for a join. Every
// component gets at least one task.
type ProportionalAssigner struct {
	TotalTasks int
	// MaxPerComponent caps the tasks of one component; 0 means no cap.
	MaxPerComponent int
}

var _ ParallelismAssigner = (*ProportionalAssigner)(nil)

func NewProportionalAssigner(totalTasks, maxPerComponent int) *ProportionalAssigner {
	return &ProportionalAssigner{TotalTasks: totalTasks, MaxPerComponent: maxPerComponent}
}

// SetParallelism assigns tasks to c and every component below it.
func (a *ProportionalAssigner) SetParallelism(c *plan.Component, costs map[string]*CostParams) error {
	if a.TotalTasks <= 0 {
		return sqerrors.Errorf(sqerrors.InvalidArgument, "total tasks must be positive, got %d", a.TotalTasks)
	}

	var subtree []*plan.Component
	seen := map[string]bool{}
	var walk func(*plan.Component)
	walk = func(c *plan.Component) {
		if seen[c.Name] {
			return
		}
		seen[c.Name] = true
		subtree = append(subtree, c)
		for _, p := range c.Parents() {
			walk(p)
		}
	}
	walk(c)

	loads := make([]float64, len(subtree))
	var total float64
	for i, comp := range subtree {
		load, err := componentLoad(comp, costs)
		if err != nil {
			return err
		}
		loads[i] = load
		total += load
	}

	for i, comp := range subtree {
		tasks := 1
		if total > 0 {
			tasks = max(1, int(math.Round(float64(a.TotalTasks)*loads[i]/total)))
		}
		if a.MaxPerComponent > 0 {
			tasks = min(tasks, a.MaxPerComponent)
		}
		costs[comp.Name].Parallelism = tasks
	}
	return nil
}

func componentLoad(c *plan.Component, costs map[string]*CostParams) (float64, error) {
	if _, ok := costs[c.Name]; !ok {
		return 0, missingCost(c.Name)
	}
	inputs := []*plan.Component{c}
	if c.IsEquiJoin() {
		inputs = c.Parents()
	}
	var load float64
	for _, in := range inputs {
		cp, ok := costs[in.Name]
		if !ok {
			return 0, missingCost(in.Name)
		}
		load += cp.Cardinality
	}
	return load, nil
}

func missingCost(name string) error {
	return sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.UnknownComponent, "no cost record for %s", name)
}
