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

package sqerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeAndState(t *testing.T) {
	testcases := []struct {
		name  string
		err   error
		code  Code
		state State
	}{{
		name: "nil",
		code: OK,
	}, {
		name: "foreign error",
		err:  errors.New("boom"),
		code: Unknown,
	}, {
		name: "code only",
		err:  Errorf(NotFound, "table %s not found", "r"),
		code: NotFound,
	}, {
		name:  "code and state",
		err:   NewErrorf(FailedPrecondition, CyclicQuery, "cyclic"),
		code:  FailedPrecondition,
		state: CyclicQuery,
	}, {
		name:  "wrapped",
		err:   Wrapf(NewErrorf(InvalidArgument, DuplicateComponent, "dup"), "adding %s", "R"),
		code:  InvalidArgument,
		state: DuplicateComponent,
	}, {
		name:  "std wrapped",
		err:   fmt.Errorf("outer: %w", NewErrorf(NotFound, UnknownTable, "missing")),
		code:  NotFound,
		state: UnknownTable,
	}}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, ErrCode(tc.err))
			assert.Equal(t, tc.state, ErrState(tc.err))
		})
	}
}

func TestMessages(t *testing.T) {
	err := Wrapf(NewErrorf(NotFound, UnknownTable, "table %q not found", "r"), "adding data source %s", "R")
	assert.Equal(t, `adding data source R: table "r" not found`, err.Error())
	assert.Nil(t, Wrapf(nil, "nothing"))

	withStack := fmt.Sprintf("%+v", New(Internal, "bug"))
	require.Contains(t, withStack, "bug")
	assert.Contains(t, withStack, "TestMessages")
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "FAILED_PRECONDITION", FailedPrecondition.String())
	assert.Equal(t, "Code(99)", Code(99).String())
	assert.Equal(t, "CyclicQuery", CyclicQuery.String())
	assert.Equal(t, "State(?)", NumOfStates.String())
}
