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
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	tagNull byte = iota
	tagInt
	tagFloat
	tagString
)

// Hash returns a 64-bit hash of v. Values that compare equal hash equally,
// so an INT64 and an integral FLOAT64 of the same magnitude collide on purpose.
func (v Value) Hash() uint64 {
	d := xxhash.New()
	v.writeHash(d)
	return d.Sum64()
}

// HashRow hashes the values of a key tuple in order.
func HashRow(values ...Value) uint64 {
	d := xxhash.New()
	for _, v := range values {
		v.writeHash(d)
	}
	return d.Sum64()
}

func (v Value) writeHash(d *xxhash.Digest) {
	var buf [9]byte
	switch v.typ {
	case Int64:
		buf[0] = tagInt
		binary.BigEndian.PutUint64(buf[1:], uint64(v.i))
		_, _ = d.Write(buf[:])
	case Float64:
		if i, ok := integral(v.f); ok {
			buf[0] = tagInt
			binary.BigEndian.PutUint64(buf[1:], uint64(i))
		} else {
			buf[0] = tagFloat
			binary.BigEndian.PutUint64(buf[1:], math.Float64bits(v.f))
		}
		_, _ = d.Write(buf[:])
	case VarChar:
		buf[0] = tagString
		binary.BigEndian.PutUint64(buf[1:], uint64(len(v.s)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(v.s)
	default:
		_, _ = d.Write([]byte{tagNull})
	}
}
