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

package plan

import (
	"github.com/lianhuiwang/squall/go/sq/bitset"
)

// SourceSet is the set of data sources below a component, encoded by the
// ordinals the QueryPlan hands out. It is immutable and comparable.
type SourceSet bitset.Bitset

// EmptySourceSet contains no sources.
const EmptySourceSet = SourceSet("")

// SingleSource returns a set holding only the given ordinal.
func SingleSource(ordinal int) SourceSet {
	return SourceSet(bitset.Single(ordinal))
}

// Merge returns the union of the two sets.
func (ss SourceSet) Merge(other SourceSet) SourceSet {
	return SourceSet(bitset.Bitset(ss).Or(bitset.Bitset(other)))
}

// IsSolvedBy returns true if all sources in ss are contained in other.
func (ss SourceSet) IsSolvedBy(other SourceSet) bool {
	return bitset.Bitset(ss).IsContainedBy(bitset.Bitset(other))
}

// Overlaps reports whether the sets share a source.
func (ss SourceSet) Overlaps(other SourceSet) bool {
	return bitset.Bitset(ss).Overlaps(bitset.Bitset(other))
}

// Intersect returns the sources present in both sets.
func (ss SourceSet) Intersect(other SourceSet) SourceSet {
	return SourceSet(bitset.Bitset(ss).And(bitset.Bitset(other)))
}

// NumberOfSources returns the number of sources in the set.
func (ss SourceSet) NumberOfSources() int {
	return bitset.Bitset(ss).Popcount()
}

// IsEmpty reports whether the set has no sources.
func (ss SourceSet) IsEmpty() bool {
	return ss == EmptySourceSet
}

// ForEachSource calls fn with every ordinal in ascending order.
func (ss SourceSet) ForEachSource(fn func(ordinal int)) {
	bitset.Bitset(ss).ForEach(fn)
}
