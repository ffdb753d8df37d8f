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

package command

import (
	"fmt"
	"io"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lianhuiwang/squall/go/sq/log"
	"github.com/lianhuiwang/squall/go/sq/optconfig"
	"github.com/lianhuiwang/squall/go/sq/plan"
	"github.com/lianhuiwang/squall/go/sq/planbuilder"
	"github.com/lianhuiwang/squall/go/sq/querydef"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
)

type planOptions struct {
	concurrency int
	metrics     bool
}

type plannedQuery struct {
	name string
	gen  *planbuilder.Generator
}

// Plan returns the plan command.
func Plan(fs afero.Fs) *cobra.Command {
	opts := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan [--concurrency N] [--metrics] <query.yaml> ...",
		Short: "Plans every query definition and prints the plan trees with their costs.",
		Long: `Plans every query definition and prints the plan trees with their costs.

Queries are planned concurrently, each by its own generator, against the
catalog given by --catalog. Output follows the order of the arguments.`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, fs, opts, args)
		},
	}
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", runtime.GOMAXPROCS(0), "maximum number of queries planned at once")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print planner metrics in the Prometheus text format")
	return cmd
}

func runPlan(cmd *cobra.Command, fs afero.Fs, opts *planOptions, args []string) error {
	if opts.concurrency <= 0 {
		return sqerrors.Errorf(sqerrors.InvalidArgument, "--concurrency must be positive, got %d", opts.concurrency)
	}
	cfg, err := optconfig.Load(fs, cmd.Flags())
	if err != nil {
		return err
	}
	schema, cat, err := cfg.OpenCatalog(fs)
	if err != nil {
		return err
	}
	log.InfoS("planning queries", "count", len(args), "catalog", schema.String())

	reg := prometheus.NewRegistry()
	metrics := planbuilder.NewMetrics(reg)

	planned := make([]plannedQuery, len(args))
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(opts.concurrency)
	for i, path := range args {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			def, err := querydef.Load(fs, path)
			if err != nil {
				return err
			}
			q, err := def.Query()
			if err != nil {
				return sqerrors.Wrapf(err, "query %s", def.Name)
			}
			g, err := planbuilder.Plan(q, cfg.PlannerOptions(cat, metrics))
			if err != nil {
				return sqerrors.Wrapf(err, "planning %s", def.Name)
			}
			planned[i] = plannedQuery{name: def.Name, gen: g}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, pq := range planned {
		if err := printPlan(out, pq); err != nil {
			return err
		}
	}
	if opts.metrics {
		return writeMetrics(out, reg)
	}
	return nil
}

func printPlan(w io.Writer, pq plannedQuery) error {
	qp := pq.gen.QueryPlan()
	root, err := pq.gen.Root()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Query %s (plan %s)\n\n", pq.name, qp.ID)
	fmt.Fprintln(w, plan.ToTree(root))

	table := tablewriter.NewWriter(w)
	table.Header("Component", "Kind", "Cardinality", "Selectivity", "Parallelism", "Columns")
	for _, c := range qp.Components() {
		cost, ok := pq.gen.CostParameters(c.Name)
		if !ok {
			return sqerrors.NewErrorf(sqerrors.Internal, sqerrors.UnknownComponent, "no cost parameters for %s", c.Name)
		}
		if err := table.Append([]string{
			c.Name,
			c.Kind.String(),
			humanize.CommafWithDigits(cost.Cardinality, 2),
			fmt.Sprintf("%.4g", cost.Selectivity),
			humanize.Comma(int64(cost.Parallelism)),
			humanize.Comma(int64(len(cost.Schema))),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return sqerrors.Wrapf(err, "gathering metrics")
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return sqerrors.Wrapf(err, "encoding metric %s", mf.GetName())
		}
	}
	return nil
}
