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

// Package estimator turns filter expressions into selectivity estimates:
// the fraction of a component's rows expected to survive the filter.
package estimator

//go:generate mockgen -destination estimatortest/mock_estimator.go -package estimatortest github.com/lianhuiwang/squall/go/sq/estimator SelectivityEstimator

import (
	"github.com/lianhuiwang/squall/go/sq/catalog"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// SelectivityEstimator estimates the survival rate of a filter expression.
// Results are in (0, 1] for well-formed filters.
type SelectivityEstimator interface {
	Estimate(expr sqlexpr.Expr) (float64, error)
}

// Kind names an estimator implementation.
type Kind string

const (
	// Selinger uses catalog column statistics when present.
	Selinger Kind = "selinger"
	// Config uses fixed per-operator constants.
	Config Kind = "config"
)

// Defaults are the per-operator selectivities used when nothing better is
// known about an expression.
type Defaults struct {
	Equal    float64 `mapstructure:"equal"`
	NotEqual float64 `mapstructure:"not-equal"`
	Range    float64 `mapstructure:"range"`
}

// DefaultSelectivities are the classic System R constants.
var DefaultSelectivities = Defaults{
	Equal:    0.1,
	NotEqual: 0.9,
	Range:    1.0 / 3,
}

func (d Defaults) validate() error {
	for name, v := range map[string]float64{"equal": d.Equal, "not-equal": d.NotEqual, "range": d.Range} {
		if v <= 0 || v > 1 {
			return sqerrors.Errorf(sqerrors.InvalidArgument, "selectivity.%s must be in (0, 1], got %v", name, v)
		}
	}
	return nil
}

// New builds the estimator named by kind. The catalog and aliases are only
// consulted by the Selinger estimator.
func New(kind Kind, cat catalog.Catalog, aliases catalog.Aliases, defaults Defaults) (SelectivityEstimator, error) {
	if err := defaults.validate(); err != nil {
		return nil, err
	}
	switch kind {
	case Selinger, "":
		return NewSelingerEstimator(cat, aliases, defaults), nil
	case Config:
		return NewConfigEstimator(defaults), nil
	}
	return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "unknown estimator %q: expected %q or %q", kind, Selinger, Config)
}

// combine folds the boolean connectives, delegating leaf comparisons.
func combine(expr sqlexpr.Expr, leaf func(*sqlexpr.ComparisonExpr) (float64, error)) (float64, error) {
	switch expr := expr.(type) {
	case *sqlexpr.ComparisonExpr:
		return leaf(expr)
	case *sqlexpr.AndExpr:
		l, err := combine(expr.Left, leaf)
		if err != nil {
			return 0, err
		}
		r, err := combine(expr.Right, leaf)
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case *sqlexpr.OrExpr:
		l, err := combine(expr.Left, leaf)
		if err != nil {
			return 0, err
		}
		r, err := combine(expr.Right, leaf)
		if err != nil {
			return 0, err
		}
		return l + r - l*r, nil
	case *sqlexpr.NotExpr:
		s, err := combine(expr.Expr, leaf)
		if err != nil {
			return 0, err
		}
		return 1 - s, nil
	case nil:
		return 0, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.UnsupportedExpression, "cannot estimate an empty expression")
	}
	return 0, sqerrors.NewErrorf(sqerrors.Unimplemented, sqerrors.UnsupportedExpression,
		"cannot estimate selectivity of non-boolean expression %s", sqlexpr.String(expr))
}
