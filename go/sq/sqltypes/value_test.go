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

package sqltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	testcases := []struct {
		a, b Value
		want int
	}{
		{NewInt64(1), NewInt64(2), -1},
		{NewInt64(2), NewInt64(2), 0},
		{NewInt64(3), NewFloat64(2.5), 1},
		{NewFloat64(2), NewInt64(2), 0},
		{NewVarChar("abc"), NewVarChar("abd"), -1},
		{NewVarChar("b"), NewVarChar("a"), 1},
	}
	for _, tc := range testcases {
		t.Run(tc.a.String()+" vs "+tc.b.String(), func(t *testing.T) {
			got, err := Compare(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := Compare(NULL, NewInt64(1))
	assert.Error(t, err)
	_, err = Compare(NewVarChar("1"), NewInt64(1))
	assert.Error(t, err)
}

func TestConversions(t *testing.T) {
	i, err := NewVarChar("42").ToInt64()
	require.NoError(t, err)
	assert.EqualValues(t, 42, i)

	f, err := NewInt64(3).ToFloat64()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = NewVarChar("x").ToFloat64()
	assert.Error(t, err)
	_, err = NULL.ToInt64()
	assert.Error(t, err)

	assert.Equal(t, "null", NULL.String())
	assert.Equal(t, `"a"`, NewVarChar("a").String())
	assert.Equal(t, "1.5", NewFloat64(1.5).String())
	assert.True(t, NULL.IsNull())
	assert.Equal(t, "VARCHAR", VarChar.String())
}

func TestHash(t *testing.T) {
	assert.Equal(t, NewInt64(7).Hash(), NewFloat64(7).Hash())
	assert.NotEqual(t, NewInt64(7).Hash(), NewFloat64(7.5).Hash())
	assert.NotEqual(t, NewInt64(7).Hash(), NewVarChar("7").Hash())
	assert.Equal(t, NewVarChar("x").Hash(), NewVarChar("x").Hash())

	assert.Equal(t, HashRow(NewInt64(1), NewVarChar("a")), HashRow(NewFloat64(1), NewVarChar("a")))
	assert.NotEqual(t, HashRow(NewVarChar("ab"), NewVarChar("c")), HashRow(NewVarChar("a"), NewVarChar("bc")))
}
