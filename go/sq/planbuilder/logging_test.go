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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lianhuiwang/squall/go/sq/log"
)

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	restore := log.SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer restore()

	g := newGenerator(t, eqInt("R.a", 1))
	srcs := addSources(t, g, "R", "S")
	_, err := g.AddEquiJoin(srcs[0], srcs[1], eq("R.a", "S.a"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"added data source","component":"R","path":"/data/r.tbl"`)
	assert.Contains(t, out, `"msg":"attached filter","component":"R","filter":"Select(R.a = 1)"`)
	assert.Contains(t, out, `"msg":"added join","component":"R_S","condition":"R.a = S.a"`)
}

func TestDebugLoggingDisabled(t *testing.T) {
	var buf bytes.Buffer
	restore := log.SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer restore()

	g := newGenerator(t, eqInt("R.a", 1))
	addSources(t, g, "R")
	assert.Empty(t, buf.String())
}
