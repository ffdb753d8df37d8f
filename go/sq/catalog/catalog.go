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

// Package catalog defines the read-only schema service the planner consults
// for table sizes, column lists and pairwise join ratios, together with a
// YAML-backed implementation and a caching decorator.
package catalog

//go:generate mockgen -destination catalogtest/mock_catalog.go -package catalogtest github.com/lianhuiwang/squall/go/sq/catalog Catalog

// Catalog answers the size and shape questions of the cost model. It must
// not change while a plan is being built.
type Catalog interface {
	// TableCardinality returns the estimated number of rows of a table.
	TableCardinality(table string) (float64, error)
	// TableSchema returns the ordered, unqualified column names of a table.
	TableSchema(table string) ([]string, error)
	// JoinRatio returns r such that |left JOIN right| ~= |left| * r.
	JoinRatio(left, right string) (float64, error)
}

// ColumnStats holds the optional per-column statistics used by analytic
// selectivity estimation.
type ColumnStats struct {
	// Distinct is the number of distinct values, 0 if unknown.
	Distinct float64 `json:"distinct,omitempty"`
	// Min and Max bound numeric columns when HasRange is set.
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	HasRange bool    `json:"-"`
}

// StatsProvider is implemented by catalogs that keep column statistics.
type StatsProvider interface {
	ColumnStats(table, column string) (ColumnStats, bool)
}

// Aliases maps component names (table aliases) to the schema name of the
// table they read. A name without an entry is its own schema name.
type Aliases map[string]string

// SchemaName resolves a component name.
func (a Aliases) SchemaName(alias string) string {
	if table, ok := a[alias]; ok {
		return table
	}
	return alias
}
