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
	"math"
	"strings"

	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqltypes"
)

type builtin struct {
	arity int
	call  func(args []sqltypes.Value) (sqltypes.Value, error)
}

var builtins = map[string]builtin{
	"abs":   {arity: 1, call: builtinAbs},
	"lower": {arity: 1, call: builtinCase(strings.ToLower)},
	"upper": {arity: 1, call: builtinCase(strings.ToUpper)},
	"mod":   {arity: 2, call: builtinMod},
}

func lookupBuiltin(name string, nargs int) (builtin, error) {
	fn, ok := builtins[strings.ToLower(name)]
	if !ok {
		return builtin{}, sqerrors.NewErrorf(sqerrors.Unimplemented, sqerrors.UnsupportedExpression, "unknown function %s", name)
	}
	if fn.arity != nargs {
		return builtin{}, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.UnsupportedExpression, "function %s takes %d argument(s), got %d", name, fn.arity, nargs)
	}
	return fn, nil
}

func builtinAbs(args []sqltypes.Value) (sqltypes.Value, error) {
	v := args[0]
	switch v.Type() {
	case sqltypes.Null:
		return sqltypes.NULL, nil
	case sqltypes.Int64:
		i, _ := v.ToInt64()
		if i < 0 {
			i = -i
		}
		return sqltypes.NewInt64(i), nil
	}
	f, err := v.ToFloat64()
	if err != nil {
		return sqltypes.NULL, err
	}
	return sqltypes.NewFloat64(math.Abs(f)), nil
}

func builtinCase(fn func(string) string) func([]sqltypes.Value) (sqltypes.Value, error) {
	return func(args []sqltypes.Value) (sqltypes.Value, error) {
		if args[0].IsNull() {
			return sqltypes.NULL, nil
		}
		return sqltypes.NewVarChar(fn(args[0].ToString())), nil
	}
}

func builtinMod(args []sqltypes.Value) (sqltypes.Value, error) {
	a, b := args[0], args[1]
	if a.IsNull() || b.IsNull() {
		return sqltypes.NULL, nil
	}
	if a.Type() == sqltypes.Int64 && b.Type() == sqltypes.Int64 {
		ai, _ := a.ToInt64()
		bi, _ := b.ToInt64()
		if bi == 0 {
			return sqltypes.NULL, nil
		}
		return sqltypes.NewInt64(ai % bi), nil
	}
	af, err := a.ToFloat64()
	if err != nil {
		return sqltypes.NULL, err
	}
	bf, err := b.ToFloat64()
	if err != nil {
		return sqltypes.NULL, err
	}
	if bf == 0 {
		return sqltypes.NULL, nil
	}
	return sqltypes.NewFloat64(math.Mod(af, bf)), nil
}
