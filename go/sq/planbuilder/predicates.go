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
	"strings"

	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// SetPredicate is a WHERE fragment that refers to several components. It
// is attached at the lowest component whose data sources cover Components.
type SetPredicate struct {
	Components []string
	Expr       sqlexpr.Expr
}

// PredicateIndex is the WHERE clause decomposed for routing. Conjuncts are
// keyed by the single component they refer to; Disjuncts are kept in
// insertion order.
type PredicateIndex struct {
	Conjuncts map[string]sqlexpr.Expr
	Disjuncts []SetPredicate
}

// NewPredicateIndex returns an empty index.
func NewPredicateIndex() *PredicateIndex {
	return &PredicateIndex{Conjuncts: map[string]sqlexpr.Expr{}}
}

// BuildPredicateIndex splits where on AND and files every conjunct under
// the set of components it refers to. Conjuncts with the same set are ANDed
// together.
func BuildPredicateIndex(where sqlexpr.Expr) (*PredicateIndex, error) {
	idx := NewPredicateIndex()
	for _, filter := range sqlexpr.SplitAndExpression(nil, where) {
		if err := idx.Add(filter); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Add files one conjunct.
func (idx *PredicateIndex) Add(filter sqlexpr.Expr) error {
	names := sqlexpr.Qualifiers(filter)
	switch {
	case len(names) == 0:
		return sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.UnsupportedExpression,
			"filter %s does not refer to any component", sqlexpr.String(filter))
	case slices.Contains(names, ""):
		return sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.UnsupportedExpression,
			"filter %s has an unqualified column", sqlexpr.String(filter))
	case len(names) == 1:
		idx.Conjuncts[names[0]] = sqlexpr.AndExpressions(idx.Conjuncts[names[0]], filter)
		return nil
	}

	slices.Sort(names)
	for i := range idx.Disjuncts {
		if slices.Equal(idx.Disjuncts[i].Components, names) {
			idx.Disjuncts[i].Expr = sqlexpr.AndExpressions(idx.Disjuncts[i].Expr, filter)
			return nil
		}
	}
	idx.Disjuncts = append(idx.Disjuncts, SetPredicate{Components: names, Expr: filter})
	return nil
}

// Len is the number of routable fragments.
func (idx *PredicateIndex) Len() int {
	return len(idx.Conjuncts) + len(idx.Disjuncts)
}

func (sp SetPredicate) key() string {
	return strings.Join(sp.Components, ",")
}
