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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lianhuiwang/squall/go/sq/plan"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
)

// Metrics counts planner activity. A nil *Metrics records nothing.
type Metrics struct {
	components *prometheus.CounterVec
	filters    prometheus.Counter
	errors     *prometheus.CounterVec
}

// NewMetrics creates the planner counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		components: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "squall",
			Subsystem: "planner",
			Name:      "components_total",
			Help:      "Number of plan components created, by kind.",
		}, []string{"kind"}),
		filters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "squall",
			Subsystem: "planner",
			Name:      "filters_total",
			Help:      "Number of filter operators attached to components.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "squall",
			Subsystem: "planner",
			Name:      "errors_total",
			Help:      "Number of failed builder operations, by error state.",
		}, []string{"state"}),
	}
	if reg != nil {
		reg.MustRegister(m.components, m.filters, m.errors)
	}
	return m
}

func (m *Metrics) componentAdded(kind plan.ComponentKind) {
	if m == nil {
		return
	}
	m.components.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) filterAttached() {
	if m == nil {
		return
	}
	m.filters.Inc()
}

func (m *Metrics) failed(err error) {
	if m == nil || err == nil {
		return
	}
	m.errors.WithLabelValues(sqerrors.ErrState(err).String()).Inc()
}
