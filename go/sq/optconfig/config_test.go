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

package optconfig

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lianhuiwang/squall/go/sq/estimator"
	"github.com/lianhuiwang/squall/go/sq/planbuilder"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
)

const testCatalog = `
tables:
  r:
    cardinality: 1000
    columns: [a, b]
  s:
    cardinality: 2000
    columns: [a, c]
ratios:
  - {left: r, right: s, ratio: 0.5}
`

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, ".tbl", cfg.Extension)
	assert.Equal(t, estimator.Selinger, cfg.Estimator)
	assert.Equal(t, estimator.DefaultSelectivities, cfg.Selectivity)
	assert.Equal(t, planbuilder.DefaultTotalTasks, cfg.Parallelism.TotalTasks)
	assert.Zero(t, cfg.Parallelism.MaxPerComponent)
	assert.Zero(t, cfg.CatalogCacheTTL)
}

func TestLoadPrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/squall.yaml", []byte(`
data-path: /data/
extension: .csv
estimator: config
selectivity:
  equal: 0.2
  not-equal: 0.8
  range: 0.25
parallelism:
  total-tasks: 64
  max-per-component: 16
catalog-file: /etc/tpch.yaml
catalog-cache-ttl: 5m
`), 0o644))

	t.Setenv("SQUALL_PARALLELISM_TOTAL_TASKS", "48")
	t.Setenv("SQUALL_EXTENSION", ".dat")

	cfg, err := Load(fs, newFlags(t, "--config", "/etc/squall.yaml", "--extension", ".tsv"))
	require.NoError(t, err)

	assert.Equal(t, "/data/", cfg.DataPath)
	// flag beats env, env beats file
	assert.Equal(t, ".tsv", cfg.Extension)
	assert.Equal(t, 48, cfg.Parallelism.TotalTasks)
	assert.Equal(t, 16, cfg.Parallelism.MaxPerComponent)
	assert.Equal(t, estimator.Config, cfg.Estimator)
	assert.Equal(t, estimator.Defaults{Equal: 0.2, NotEqual: 0.8, Range: 0.25}, cfg.Selectivity)
	assert.Equal(t, "/etc/tpch.yaml", cfg.CatalogFile)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
}

func TestLoadWithoutFlags(t *testing.T) {
	t.Setenv("SQUALL_ESTIMATOR", "config")
	cfg, err := Load(afero.NewMemMapFs(), nil)
	require.NoError(t, err)
	assert.Equal(t, estimator.Config, cfg.Estimator)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), newFlags(t, "--config", "/missing.yaml"))
	require.ErrorContains(t, err, "reading config /missing.yaml")

	_, err = Load(afero.NewMemMapFs(), newFlags(t, "--estimator", "magic"))
	require.ErrorContains(t, err, `unknown estimator "magic"`)
	assert.Equal(t, sqerrors.InvalidArgument, sqerrors.ErrCode(err))

	_, err = Load(afero.NewMemMapFs(), newFlags(t, "--total-tasks", "0"))
	require.ErrorContains(t, err, "total-tasks must be positive")

	_, err = Load(afero.NewMemMapFs(), newFlags(t, "--max-per-component", "-1"))
	require.ErrorContains(t, err, "must not be negative")
}

func TestOpenCatalogAndPlan(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tpch.yaml", []byte(testCatalog), 0o644))

	cfg, err := Load(fs, newFlags(t, "-c", "/tpch.yaml", "--data-path", "/data/", "--estimator", "config"))
	require.NoError(t, err)

	schema, cat, err := cfg.OpenCatalog(fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "s"}, schema.TableNames())

	opts := cfg.PlannerOptions(cat, nil)
	opts.Aliases = map[string]string{"R": "r", "S": "s"}
	g, err := planbuilder.NewGenerator(opts)
	require.NoError(t, err)
	_, err = g.AddDataSource("R")
	require.NoError(t, err)

	c, ok := g.QueryPlan().Component("R")
	require.True(t, ok)
	assert.Equal(t, "/data/r.tbl", c.SourcePath)

	_, _, err = (&Config{}).OpenCatalog(fs)
	require.ErrorContains(t, err, "no catalog file configured")
}
