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
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lianhuiwang/squall/go/sq/optconfig"
)

// Catalog returns the catalog command.
func Catalog(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:                   "catalog",
		Short:                 "Prints the tables and join ratios of the catalog given by --catalog.",
		DisableFlagsInUseLine: true,
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := optconfig.Load(fs, cmd.Flags())
			if err != nil {
				return err
			}
			schema, _, err := cfg.OpenCatalog(fs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, schema)

			tables := tablewriter.NewWriter(out)
			tables.Header("Table", "Cardinality", "Columns")
			for _, name := range schema.TableNames() {
				def := schema.Tables[name]
				if err := tables.Append([]string{
					name,
					humanize.CommafWithDigits(def.Cardinality, 2),
					strings.Join(def.Columns, ", "),
				}); err != nil {
					return err
				}
			}
			if err := tables.Render(); err != nil {
				return err
			}

			if len(schema.Ratios) == 0 {
				return nil
			}
			ratios := tablewriter.NewWriter(out)
			ratios.Header("Left", "Right", "Ratio")
			for _, r := range schema.Ratios {
				if err := ratios.Append([]string{r.Left, r.Right, humanize.Ftoa(r.Ratio)}); err != nil {
					return err
				}
			}
			return ratios.Render()
		},
	}
}
