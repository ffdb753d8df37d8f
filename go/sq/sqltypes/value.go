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

// Package sqltypes implements the scalar values that flow through compiled
// filter and hash-key expressions.
package sqltypes

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lianhuiwang/squall/go/sq/sqerrors"
)

// Type is the type of a Value.
type Type int8

const (
	Null Type = iota
	Int64
	Float64
	VarChar
)

func (t Type) String() string {
	switch t {
	case Null:
		return "NULL"
	case Int64:
		return "INT64"
	case Float64:
		return "FLOAT64"
	case VarChar:
		return "VARCHAR"
	}
	return fmt.Sprintf("Type(%d)", int8(t))
}

// Value is an immutable scalar. The zero Value is NULL.
type Value struct {
	typ Type
	i   int64
	f   float64
	s   string
}

// Row is a tuple of values positioned by a component schema.
type Row []Value

// NULL is the NULL value.
var NULL = Value{}

// NewInt64 builds an INT64 Value.
func NewInt64(v int64) Value {
	return Value{typ: Int64, i: v}
}

// NewFloat64 builds a FLOAT64 Value.
func NewFloat64(v float64) Value {
	return Value{typ: Float64, f: v}
}

// NewVarChar builds a VARCHAR Value.
func NewVarChar(v string) Value {
	return Value{typ: VarChar, s: v}
}

func (v Value) Type() Type { return v.typ }

func (v Value) IsNull() bool { return v.typ == Null }

func (v Value) IsNumeric() bool { return v.typ == Int64 || v.typ == Float64 }

// ToInt64 returns the value as an int64. Floats are truncated.
func (v Value) ToInt64() (int64, error) {
	switch v.typ {
	case Int64:
		return v.i, nil
	case Float64:
		return int64(v.f), nil
	case VarChar:
		i, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return 0, sqerrors.Errorf(sqerrors.InvalidArgument, "cannot convert %q to INT64", v.s)
		}
		return i, nil
	}
	return 0, sqerrors.Errorf(sqerrors.InvalidArgument, "cannot convert NULL to INT64")
}

// ToFloat64 returns the value as a float64.
func (v Value) ToFloat64() (float64, error) {
	switch v.typ {
	case Int64:
		return float64(v.i), nil
	case Float64:
		return v.f, nil
	case VarChar:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, sqerrors.Errorf(sqerrors.InvalidArgument, "cannot convert %q to FLOAT64", v.s)
		}
		return f, nil
	}
	return 0, sqerrors.Errorf(sqerrors.InvalidArgument, "cannot convert NULL to FLOAT64")
}

// ToString returns the textual form of the value; NULL is the empty string.
func (v Value) ToString() string {
	switch v.typ {
	case Int64:
		return strconv.FormatInt(v.i, 10)
	case Float64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case VarChar:
		return v.s
	}
	return ""
}

// String returns a printable SQL literal for the value.
func (v Value) String() string {
	switch v.typ {
	case Null:
		return "null"
	case VarChar:
		return strconv.Quote(v.s)
	}
	return v.ToString()
}

// Compare returns -1, 0 or 1 comparing a to b. Numbers compare numerically
// across INT64 and FLOAT64; strings compare bytewise. NULLs and mixed
// string/number comparisons are errors.
func Compare(a, b Value) (int, error) {
	if a.IsNull() || b.IsNull() {
		return 0, sqerrors.Errorf(sqerrors.InvalidArgument, "cannot compare NULL")
	}
	switch {
	case a.typ == Int64 && b.typ == Int64:
		return cmp3(a.i < b.i, a.i > b.i), nil
	case a.IsNumeric() && b.IsNumeric():
		af, _ := a.ToFloat64()
		bf, _ := b.ToFloat64()
		return cmp3(af < bf, af > bf), nil
	case a.typ == VarChar && b.typ == VarChar:
		return cmp3(a.s < b.s, a.s > b.s), nil
	}
	return 0, sqerrors.Errorf(sqerrors.InvalidArgument, "cannot compare %s with %s", a.typ, b.typ)
}

func cmp3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

// integral reports whether f has an exact int64 representation.
func integral(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
