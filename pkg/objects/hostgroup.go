package objects

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/overseer-monitoring/overseer-go/pkg/object"
	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

// HostGroup is a node in the host group hierarchy. The server does not
// guarantee host group names are unique (two groups under different parents
// may share a name), so the collection key is qualified with the id or ref.
type HostGroup struct {
	ID  *wire.Uint `json:"id,omitempty"`
	Ref string     `json:"ref,omitempty"`

	Name   string        `json:"name"`
	Parent *HostGroupRef `json:"parent,omitempty"`

	// MatPath is the materialized path from the root group, maintained by
	// the server.
	MatPath string `json:"matpath,omitempty"`

	Uncommitted *wire.Bool `json:"uncommitted,omitempty"`
}

var (
	_ object.Persistent                = (*HostGroup)(nil)
	_ object.Referencer[*HostGroupRef] = (*HostGroup)(nil)
)

// UniqueName implements object.Object. The name is qualified with the id
// (or, before an id exists, the ref) so two remote groups sharing a display
// name never collide in a local collection.
func (g *HostGroup) UniqueName() string {
	if g.ID != nil {
		return fmt.Sprintf("%s-%d", g.Name, g.ID.Uint64())
	}
	if g.Ref != "" {
		return g.Name + "-" + g.Ref
	}
	return g.Name
}

// ConfigPath implements object.Persistent.
func (g *HostGroup) ConfigPath() string { return "/config/hostgroup" }

// ObjectID implements object.Persistent.
func (g *HostGroup) ObjectID() (uint64, bool) {
	if g.ID == nil {
		return 0, false
	}
	return g.ID.Uint64(), true
}

// ObjectRef implements object.Persistent.
func (g *HostGroup) ObjectRef() string { return g.Ref }

// ObjectName implements object.Persistent.
func (g *HostGroup) ObjectName() string { return g.Name }

// ClearReadonly implements object.Persistent.
func (g *HostGroup) ClearReadonly() {
	g.ID = nil
	g.Ref = ""
	g.MatPath = ""
	g.Uncommitted = nil
}

// Reference derives the projection used when a host group nests inside
// another entity.
func (g *HostGroup) Reference() *HostGroupRef {
	return &HostGroupRef{Name: g.Name, Ref: g.Ref, MatPath: g.MatPath}
}

// HostGroupRef is the reference variant of HostGroup. MatPath is carried so
// embedding entities can distinguish same-named groups.
type HostGroupRef struct {
	Name    string `json:"name,omitempty"`
	Ref     string `json:"ref,omitempty"`
	MatPath string `json:"matpath,omitempty"`
}

// UniqueName implements object.Object. Qualified with the ref for the same
// reason as the full entity.
func (r *HostGroupRef) UniqueName() string {
	if r.Ref != "" {
		return r.Name + "-" + r.Ref
	}
	return r.Name
}

// HostGroupBuilder assembles a validated HostGroup.
type HostGroupBuilder struct {
	group HostGroup
}

// NewHostGroupBuilder returns an empty builder.
func NewHostGroupBuilder() *HostGroupBuilder {
	return &HostGroupBuilder{}
}

// Name sets the display name.
func (b *HostGroupBuilder) Name(name string) *HostGroupBuilder {
	b.group.Name = name
	return b
}

// Parent sets the parent group reference.
func (b *HostGroupBuilder) Parent(parent *HostGroupRef) *HostGroupBuilder {
	b.group.Parent = parent
	return b
}

// Build validates every field and returns the group with server-assigned
// fields unset.
func (b *HostGroupBuilder) Build() (*HostGroup, error) {
	g := b.group
	g.ClearReadonly()

	if err := validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.Required,
			validation.Length(1, 128), validation.Match(nameRe)),
	); err != nil {
		return nil, err
	}
	return &g, nil
}

// MinimalHostGroup constructs the smallest valid host group.
func MinimalHostGroup(name string) (*HostGroup, error) {
	return NewHostGroupBuilder().Name(name).Build()
}
