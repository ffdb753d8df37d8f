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

// squallplan builds cost-annotated query plans for squall topologies from
// YAML query definitions and a table catalog.
package main

import (
	"flag"
	"os"

	"github.com/spf13/afero"

	"github.com/lianhuiwang/squall/go/cmd/squallplan/command"
	"github.com/lianhuiwang/squall/go/sq/log"
)

func main() {
	root := command.Main(afero.NewOsFs())

	// glog registers -v and friends on the standard flag set.
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// hack to get rid of an "ERROR: logging before flag.Parse"
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	if err := root.Execute(); err != nil {
		log.ErrorS("squallplan failed", "err", err)
		log.Flush()
		os.Exit(1)
	}
	log.Flush()
}
