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

package operators

import (
	"strconv"
	"strings"

	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqltypes"
)

// HashKey selects the values a join input is partitioned on. Either Indexes
// or Expressions is set, never both.
type HashKey struct {
	Indexes     []int
	Expressions []ValueExpression
}

// NewIndexKey partitions on the columns at the given row offsets.
func NewIndexKey(indexes ...int) *HashKey {
	return &HashKey{Indexes: indexes}
}

// NewExpressionKey partitions on computed values.
func NewExpressionKey(exprs ...ValueExpression) *HashKey {
	return &HashKey{Expressions: exprs}
}

// IsExpression reports whether the key is computed.
func (k *HashKey) IsExpression() bool {
	return len(k.Expressions) > 0
}

// Len is the number of key parts.
func (k *HashKey) Len() int {
	if k.IsExpression() {
		return len(k.Expressions)
	}
	return len(k.Indexes)
}

// Values extracts the key tuple of row.
func (k *HashKey) Values(row sqltypes.Row) ([]sqltypes.Value, error) {
	values := make([]sqltypes.Value, 0, k.Len())
	if k.IsExpression() {
		for _, expr := range k.Expressions {
			v, err := expr.Eval(row)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	}
	for _, idx := range k.Indexes {
		if idx < 0 || idx >= len(row) {
			return nil, sqerrors.Errorf(sqerrors.OutOfRange, "hash index %d is out of range for a row of %d values", idx, len(row))
		}
		values = append(values, row[idx])
	}
	return values, nil
}

// Hash hashes the key tuple of row. Rows from both inputs of a join hash
// alike when their key tuples are equal.
func (k *HashKey) Hash(row sqltypes.Row) (uint64, error) {
	values, err := k.Values(row)
	if err != nil {
		return 0, err
	}
	return sqltypes.HashRow(values...), nil
}

// Partition maps row to one of tasks consumers.
func (k *HashKey) Partition(row sqltypes.Row, tasks int) (int, error) {
	if tasks <= 0 {
		return 0, sqerrors.Errorf(sqerrors.InvalidArgument, "cannot partition over %d tasks", tasks)
	}
	h, err := k.Hash(row)
	if err != nil {
		return 0, err
	}
	return int(h % uint64(tasks)), nil
}

func (k *HashKey) String() string {
	parts := make([]string, 0, k.Len())
	if k.IsExpression() {
		for _, expr := range k.Expressions {
			parts = append(parts, expr.String())
		}
	} else {
		for _, idx := range k.Indexes {
			parts = append(parts, strconv.Itoa(idx))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
