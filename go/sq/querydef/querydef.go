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

/*
Package querydef reads query definitions from YAML files and turns them into
planbuilder queries. A definition names its data sources, the joins in the
order they are built, and an optional WHERE clause:

	name: q3
	sources:
	  - {alias: C, table: customer}
	  - {alias: O, table: orders}
	joins:
	  - left: C
	    right: O
	    on: {eq: [{col: C.custkey}, {col: O.custkey}]}
	where:
	  and:
	    - {eq: [{col: C.mktsegment}, {str: BUILDING}]}
	    - {lt: [{col: O.orderdate}, {int: 19950315}]}

Expressions are maps with exactly one key. Leaves are col, int, float, str
and "null" (quoted, so YAML reads it as a key); comparisons are eq, ne, lt, le, gt and ge; arithmetic is add, sub,
mul and div; and, or and not combine predicates; func calls a builtin.
*/
package querydef

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/lianhuiwang/squall/go/sq/planbuilder"
	"github.com/lianhuiwang/squall/go/sq/sqerrors"
)

// Definition is one query file.
type Definition struct {
	Name    string    `json:"name,omitempty"`
	Sources []Source  `json:"sources"`
	Joins   []JoinDef `json:"joins,omitempty"`
	Where   *Node     `json:"where,omitempty"`
}

// Source is a data source. An empty Table means the alias is the table.
type Source struct {
	Alias string `json:"alias"`
	Table string `json:"table,omitempty"`
}

// JoinDef joins two components, either sources or earlier joins named
// left_right.
type JoinDef struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	On    *Node  `json:"on"`
}

// Load reads a definition from fs. A definition without a name is named
// after its file.
func Load(fs afero.Fs, path string) (*Definition, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, sqerrors.Wrapf(err, "reading query %s", path)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, sqerrors.Wrapf(err, "parsing query %s", path)
	}
	if def.Name == "" {
		base := filepath.Base(path)
		def.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return def, nil
}

func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.UnmarshalStrict(data, &def); err != nil {
		return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "invalid query definition: %v", err)
	}
	if len(def.Sources) == 0 {
		return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "query definition has no sources")
	}
	for i, src := range def.Sources {
		if src.Alias == "" {
			return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "source %d has no alias", i)
		}
	}
	for i, j := range def.Joins {
		if j.Left == "" || j.Right == "" {
			return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "join %d needs both left and right", i)
		}
		if j.On == nil {
			return nil, sqerrors.Errorf(sqerrors.InvalidArgument, "join %s_%s has no condition", j.Left, j.Right)
		}
	}
	return &def, nil
}

// Query converts the definition to a planbuilder query.
func (d *Definition) Query() (*planbuilder.Query, error) {
	q := &planbuilder.Query{}
	for _, src := range d.Sources {
		q.Sources = append(q.Sources, planbuilder.Source{Name: src.Alias, Table: src.Table})
	}
	for _, j := range d.Joins {
		cond, err := j.On.Expr()
		if err != nil {
			return nil, sqerrors.Wrapf(err, "join %s_%s", j.Left, j.Right)
		}
		q.Joins = append(q.Joins, planbuilder.Join{Left: j.Left, Right: j.Right, Condition: cond})
	}
	if d.Where != nil {
		where, err := d.Where.Expr()
		if err != nil {
			return nil, sqerrors.Wrapf(err, "where")
		}
		q.Where = where
	}
	return q, nil
}
