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

package catalog

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/lianhuiwang/squall/go/sq/sqerrors"
)

var (
	_ Catalog       = (*Schema)(nil)
	_ StatsProvider = (*Schema)(nil)
)

// Schema is an in-memory Catalog, usually loaded from a YAML file such as:
//
//	tables:
//	  customer:
//	    cardinality: 150000
//	    columns: [custkey, name, nationkey]
//	    stats:
//	      nationkey: {distinct: 25, min: 0, max: 24}
//	ratios:
//	  - {left: customer, right: orders, ratio: 10}
//
// Table names are case-insensitive.
type Schema struct {
	Tables map[string]*TableDef `json:"tables"`
	Ratios []RatioDef           `json:"ratios,omitempty"`

	ratios map[[2]string]float64
}

// TableDef describes one table.
type TableDef struct {
	Cardinality float64                    `json:"cardinality"`
	Columns     []string                   `json:"columns"`
	Stats       map[string]json.RawMessage `json:"stats,omitempty"`

	stats map[string]ColumnStats
}

// RatioDef is the join ratio of an ordered pair of tables.
type RatioDef struct {
	Left  string  `json:"left"`
	Right string  `json:"right"`
	Ratio float64 `json:"ratio"`
}

type rawStats struct {
	Distinct float64  `json:"distinct"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
}

// Load reads and parses a catalog file from fs.
func Load(fs afero.Fs, path string) (*Schema, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, sqerrors.Wrapf(err, "reading catalog %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, sqerrors.Wrapf(err, "parsing catalog %s", path)
	}
	return s, nil
}

// Parse decodes a YAML (or JSON) catalog and validates it.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "invalid catalog: %v", err)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewSchema builds a Schema from table definitions and ratios.
func NewSchema(tables map[string]*TableDef, ratios ...RatioDef) (*Schema, error) {
	s := &Schema{Tables: tables, Ratios: ratios}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schema) init() error {
	tables := make(map[string]*TableDef, len(s.Tables))
	for name, def := range s.Tables {
		if def == nil {
			return sqerrors.Errorf(sqerrors.InvalidArgument, "table %s has no definition", name)
		}
		if def.Cardinality < 0 {
			return sqerrors.Errorf(sqerrors.InvalidArgument, "table %s has negative cardinality %v", name, def.Cardinality)
		}
		if len(def.Columns) == 0 {
			return sqerrors.Errorf(sqerrors.InvalidArgument, "table %s has no columns", name)
		}
		seen := map[string]bool{}
		for _, c := range def.Columns {
			if seen[c] {
				return sqerrors.Errorf(sqerrors.InvalidArgument, "table %s declares column %s twice", name, c)
			}
			seen[c] = true
		}
		def.stats = make(map[string]ColumnStats, len(def.Stats))
		for c, raw := range def.Stats {
			if !seen[c] {
				return sqerrors.Errorf(sqerrors.InvalidArgument, "stats for unknown column %s.%s", name, c)
			}
			var rs rawStats
			if err := json.Unmarshal(raw, &rs); err != nil {
				return sqerrors.Errorf(sqerrors.InvalidArgument, "invalid stats for %s.%s: %v", name, c, err)
			}
			cs := ColumnStats{Distinct: rs.Distinct}
			if rs.Min != nil && rs.Max != nil {
				cs.Min, cs.Max, cs.HasRange = *rs.Min, *rs.Max, true
			}
			def.stats[c] = cs
		}
		tables[strings.ToLower(name)] = def
	}
	s.Tables = tables

	s.ratios = make(map[[2]string]float64, len(s.Ratios))
	for _, r := range s.Ratios {
		key := [2]string{strings.ToLower(r.Left), strings.ToLower(r.Right)}
		for _, t := range key {
			if _, ok := s.Tables[t]; !ok {
				return sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.UnknownTable, "join ratio refers to unknown table %s", t)
			}
		}
		if r.Ratio < 0 {
			return sqerrors.Errorf(sqerrors.InvalidArgument, "negative join ratio for (%s, %s)", r.Left, r.Right)
		}
		s.ratios[key] = r.Ratio
	}
	return nil
}

func (s *Schema) table(name string) (*TableDef, error) {
	def, ok := s.Tables[strings.ToLower(name)]
	if !ok {
		return nil, sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.UnknownTable, "table %s not found in catalog", name)
	}
	return def, nil
}

// TableCardinality implements Catalog.
func (s *Schema) TableCardinality(table string) (float64, error) {
	def, err := s.table(table)
	if err != nil {
		return 0, err
	}
	return def.Cardinality, nil
}

// TableSchema implements Catalog.
func (s *Schema) TableSchema(table string) ([]string, error) {
	def, err := s.table(table)
	if err != nil {
		return nil, err
	}
	return slices.Clone(def.Columns), nil
}

// JoinRatio implements Catalog. When only the reverse pair is known the
// ratio is derived from it, since |l JOIN r| = |l|*r(l,r) = |r|*r(r,l).
func (s *Schema) JoinRatio(left, right string) (float64, error) {
	l, r := strings.ToLower(left), strings.ToLower(right)
	if ratio, ok := s.ratios[[2]string{l, r}]; ok {
		return ratio, nil
	}
	if reverse, ok := s.ratios[[2]string{r, l}]; ok {
		lcard, err := s.TableCardinality(l)
		if err != nil {
			return 0, err
		}
		rcard, err := s.TableCardinality(r)
		if err != nil {
			return 0, err
		}
		if lcard > 0 {
			return reverse * rcard / lcard, nil
		}
	}
	return 0, sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.NoJoinRatio, "no join ratio for (%s, %s)", left, right)
}

// ColumnStats implements StatsProvider.
func (s *Schema) ColumnStats(table, column string) (ColumnStats, bool) {
	def, err := s.table(table)
	if err != nil {
		return ColumnStats{}, false
	}
	cs, ok := def.stats[column]
	return cs, ok
}

// TableNames returns the table names, sorted.
func (s *Schema) TableNames() []string {
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Schema) String() string {
	return fmt.Sprintf("catalog(%d tables, %d ratios)", len(s.Tables), len(s.ratios))
}

// SetColumnStats records statistics for an existing column.
func (s *Schema) SetColumnStats(table, column string, cs ColumnStats) error {
	def, err := s.table(table)
	if err != nil {
		return err
	}
	if !slices.Contains(def.Columns, column) {
		return sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.UnknownColumn, "column %s.%s not found in catalog", table, column)
	}
	def.stats[column] = cs
	return nil
}
