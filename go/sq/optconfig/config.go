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

// Package optconfig loads the planner configuration from flags, SQUALL_*
// environment variables and an optional YAML file, in that order of
// precedence.
package optconfig

import (
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lianhuiwang/squall/go/sq/catalog"
	"github.com/lianhuiwang/squall/go/sq/estimator"
	"github.com/lianhuiwang/squall/go/sq/planbuilder"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
)

// EnvPrefix prefixes the environment variables read by Load. A key such as
// parallelism.total-tasks is read from SQUALL_PARALLELISM_TOTAL_TASKS.
const EnvPrefix = "SQUALL"

// Config is the planner configuration.
type Config struct {
	DataPath        string             `mapstructure:"data-path"`
	Extension       string             `mapstructure:"extension"`
	Estimator       estimator.Kind     `mapstructure:"estimator"`
	Selectivity     estimator.Defaults `mapstructure:"selectivity"`
	Parallelism     Parallelism        `mapstructure:"parallelism"`
	CatalogFile     string             `mapstructure:"catalog-file"`
	CatalogCacheTTL time.Duration      `mapstructure:"catalog-cache-ttl"`
}

type Parallelism struct {
	TotalTasks      int `mapstructure:"total-tasks"`
	MaxPerComponent int `mapstructure:"max-per-component"`
}

var defaults = map[string]any{
	"data-path":                     "",
	"extension":                     ".tbl",
	"estimator":                     string(estimator.Selinger),
	"selectivity.equal":             estimator.DefaultSelectivities.Equal,
	"selectivity.not-equal":         estimator.DefaultSelectivities.NotEqual,
	"selectivity.range":             estimator.DefaultSelectivities.Range,
	"parallelism.total-tasks":       planbuilder.DefaultTotalTasks,
	"parallelism.max-per-component": 0,
	"catalog-file":                  "",
	"catalog-cache-ttl":             time.Duration(0),
}

// flagKeys maps flag names to the configuration keys they set.
var flagKeys = map[string]string{
	"data-path":         "data-path",
	"extension":         "extension",
	"estimator":         "estimator",
	"total-tasks":       "parallelism.total-tasks",
	"catalog":           "catalog-file",
	"max-per-component": "parallelism.max-per-component",
	"catalog-cache-ttl": "catalog-cache-ttl",
}

// RegisterFlags installs the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML configuration file")
	fs.String("data-path", "", "directory prefix of data source files")
	fs.String("extension", ".tbl", "file extension of data source files")
	fs.String("estimator", string(estimator.Selinger), "selectivity estimator: selinger or config")
	fs.Int("total-tasks", planbuilder.DefaultTotalTasks, "task budget split across the components of a plan")
	fs.Int("max-per-component", 0, "upper bound on the tasks of a single component, 0 for none")
	fs.StringP("catalog", "c", "", "catalog file")
	fs.Duration("catalog-cache-ttl", 0, "how long catalog lookups are cached, 0 to cache forever")
}

// Load builds the configuration. flags may be nil; the config file named
// by --config is read from fs.
func Load(fs afero.Fs, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, sqerrors.Wrapf(err, "binding flag --%s", name)
				}
			}
		}
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, sqerrors.Wrapf(err, "reading config %s", f.Value.String())
			}
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "invalid configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that the planner cannot recover from.
func (c *Config) Validate() error {
	switch c.Estimator {
	case estimator.Selinger, estimator.Config:
	default:
		return sqerrors.Errorf(sqerrors.InvalidArgument, "unknown estimator %q", c.Estimator)
	}
	if c.Parallelism.TotalTasks <= 0 {
		return sqerrors.Errorf(sqerrors.InvalidArgument, "parallelism.total-tasks must be positive, got %d", c.Parallelism.TotalTasks)
	}
	if c.Parallelism.MaxPerComponent < 0 {
		return sqerrors.Errorf(sqerrors.InvalidArgument, "parallelism.max-per-component must not be negative, got %d", c.Parallelism.MaxPerComponent)
	}
	if c.CatalogCacheTTL < 0 {
		return sqerrors.Errorf(sqerrors.InvalidArgument, "catalog-cache-ttl must not be negative, got %v", c.CatalogCacheTTL)
	}
	return nil
}

// OpenCatalog loads the catalog file from fs. The returned Catalog caches
// the lookups of the Schema for CatalogCacheTTL, or forever when it is 0.
func (c *Config) OpenCatalog(fs afero.Fs) (*catalog.Schema, catalog.Catalog, error) {
	if c.CatalogFile == "" {
		return nil, nil, sqerrors.Errorf(sqerrors.InvalidArgument, "no catalog file configured")
	}
	schema, err := catalog.Load(fs, c.CatalogFile)
	if err != nil {
		return nil, nil, err
	}
	return schema, catalog.NewCachingCatalog(schema, c.CatalogCacheTTL), nil
}

// PlannerOptions returns the generator options for this configuration.
func (c *Config) PlannerOptions(cat catalog.Catalog, metrics *planbuilder.Metrics) planbuilder.Options {
	return planbuilder.Options{
		Catalog:       cat,
		DataPath:      c.DataPath,
		Extension:     c.Extension,
		EstimatorKind: c.Estimator,
		Selectivity:   c.Selectivity,
		Assigner:      planbuilder.NewProportionalAssigner(c.Parallelism.TotalTasks, c.Parallelism.MaxPerComponent),
		Metrics:       metrics,
	}
}
