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

package estimator

import (
	"math"

	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// ConfigEstimator applies a fixed selectivity per comparison operator.
type ConfigEstimator struct {
	defaults Defaults
}

var _ SelectivityEstimator = (*ConfigEstimator)(nil)

func NewConfigEstimator(defaults Defaults) *ConfigEstimator {
	return &ConfigEstimator{defaults: defaults}
}

// Estimate implements SelectivityEstimator.
func (e *ConfigEstimator) Estimate(expr sqlexpr.Expr) (float64, error) {
	s, err := combine(expr, func(cmp *sqlexpr.ComparisonExpr) (float64, error) {
		return e.defaults.forOperator(cmp.Operator), nil
	})
	if err != nil {
		return 0, err
	}
	return math.Max(s, epsilon), nil
}

func (d Defaults) forOperator(op sqlexpr.ComparisonOp) float64 {
	switch {
	case op == sqlexpr.EqualOp:
		return d.Equal
	case op == sqlexpr.NotEqualOp:
		return d.NotEqual
	default:
		return d.Range
	}
}
