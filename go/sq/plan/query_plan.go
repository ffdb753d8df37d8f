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

package plan

import (
	"slices"

	"github.com/google/uuid"
	"github.com/xlab/treeprint"

	"github.com/lianhuiwang/squall/go/sq/sqerrors"
	"github.com/lianhuiwang/squall/go/sq/sqlexpr"
)

// QueryPlan owns the components of one plan and numbers its data sources.
type QueryPlan struct {
	ID uuid.UUID

	components []*Component
	byName     map[string]*Component
	// sources maps a data source ordinal to its component name.
	sources []string
}

func NewQueryPlan() *QueryPlan {
	return &QueryPlan{
		ID:     uuid.New(),
		byName: map[string]*Component{},
	}
}

// JoinName is the name given to the join of left and right. Names are not
// escaped, so component names containing "_" can make two different joins
// share a name; NewEquiJoin rejects the second one.
func JoinName(left, right string) string {
	return left + "_" + right
}

// NewDataSource adds a leaf reading schemaName from sourcePath.
func (p *QueryPlan) NewDataSource(name, schemaName, sourcePath string) (*Component, error) {
	if err := p.checkUnique(name); err != nil {
		return nil, err
	}
	c := &Component{
		Kind:       DataSourceKind,
		Name:       name,
		Ancestors:  SingleSource(len(p.sources)),
		SchemaName: schemaName,
		SourcePath: sourcePath,
	}
	p.sources = append(p.sources, name)
	p.add(c)
	return c, nil
}

// NewEquiJoin adds the join of two components of this plan.
func (p *QueryPlan) NewEquiJoin(left, right *Component, condition sqlexpr.Expr) (*Component, error) {
	for _, parent := range []*Component{left, right} {
		if parent == nil || p.byName[parent.Name] != parent {
			return nil, sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.UnknownComponent, "component %v does not belong to plan %s", parent, p.ID)
		}
	}
	name := JoinName(left.Name, right.Name)
	if taken, ok := p.byName[name]; ok {
		return nil, sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.DuplicateComponent,
			"join of %s and %s would be named %s, which is taken by %s", left.Name, right.Name, name, taken.ShortDescription())
	}
	c := &Component{
		Kind:          EquiJoinKind,
		Name:          name,
		Ancestors:     left.Ancestors.Merge(right.Ancestors),
		Left:          left,
		Right:         right,
		JoinCondition: condition,
	}
	p.add(c)
	return c, nil
}

func (p *QueryPlan) checkUnique(name string) error {
	if name == "" {
		return sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.DuplicateComponent, "component name must not be empty")
	}
	if _, ok := p.byName[name]; ok {
		return sqerrors.NewErrorf(sqerrors.InvalidArgument, sqerrors.DuplicateComponent, "component %s already exists", name)
	}
	return nil
}

func (p *QueryPlan) add(c *Component) {
	p.components = append(p.components, c)
	p.byName[c.Name] = c
}

// Component looks a component up by name.
func (p *QueryPlan) Component(name string) (*Component, bool) {
	c, ok := p.byName[name]
	return c, ok
}

// Components returns all components in creation order.
func (p *QueryPlan) Components() []*Component {
	return slices.Clone(p.components)
}

// Len is the number of components.
func (p *QueryPlan) Len() int {
	return len(p.components)
}

// DataSources returns the data source components in ordinal order.
func (p *QueryPlan) DataSources() []*Component {
	out := make([]*Component, 0, len(p.sources))
	for _, name := range p.sources {
		out = append(out, p.byName[name])
	}
	return out
}

// SourceSetOf returns the set of the named data sources.
func (p *QueryPlan) SourceSetOf(names ...string) (SourceSet, error) {
	set := EmptySourceSet
	for _, name := range names {
		c, ok := p.byName[name]
		if !ok || !c.IsDataSource() {
			return EmptySourceSet, sqerrors.NewErrorf(sqerrors.NotFound, sqerrors.UnknownComponent, "data source %s not found", name)
		}
		set = set.Merge(c.Ancestors)
	}
	return set, nil
}

// SourceNames lists the data source names in set, in ordinal order.
func (p *QueryPlan) SourceNames(set SourceSet) []string {
	var names []string
	set.ForEachSource(func(ordinal int) {
		if ordinal < len(p.sources) {
			names = append(names, p.sources[ordinal])
		}
	})
	return names
}

// ToTree renders the plan below root.
func ToTree(root *Component) string {
	return asTree(root, nil).String()
}

func asTree(c *Component, root treeprint.Tree) treeprint.Tree {
	var branch treeprint.Tree
	if root == nil {
		branch = treeprint.NewWithRoot(c.ShortDescription())
	} else {
		branch = root.AddBranch(c.ShortDescription())
	}
	for _, op := range c.Operators {
		branch.AddNode(op.String())
	}
	if c.HashKey != nil {
		branch.AddNode("HashKey " + c.HashKey.String())
	}
	for _, parent := range c.Parents() {
		asTree(parent, branch)
	}
	return branch
}
