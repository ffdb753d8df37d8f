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
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lianhuiwang/squall/go/sq/log"
	"github.com/lianhuiwang/squall/go/sq/optconfig"
)

// Main returns the root command. Catalogs, queries and config files are
// read from fs.
func Main(fs afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "squallplan",
		Short: "Builds cost-annotated squall query plans.",
		Long: `Builds cost-annotated squall query plans.

Every query definition names its data sources, its equi-joins in the order
they are built and a WHERE clause. The planner attaches each filter to the
smallest component that can evaluate it, keys every join input by its join
columns and splits the task budget by estimated cardinality.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	log.RegisterFlags(rootCmd.PersistentFlags())
	optconfig.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.MarkPersistentFlagFilename("catalog", "yaml", "yml", "json")
	rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")

	rootCmd.AddCommand(Plan(fs))
	rootCmd.AddCommand(Catalog(fs))
	return rootCmd
}
