package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overseer-monitoring/overseer-go/pkg/object"
	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

func TestHostGroup_UniqueNameQualifiedByID(t *testing.T) {
	id7 := wire.Uint(7)
	id9 := wire.Uint(9)

	a := &HostGroup{Name: "Edge", ID: &id7}
	b := &HostGroup{Name: "Edge", ID: &id9}

	assert.Equal(t, "Edge-7", a.UniqueName())
	assert.Equal(t, "Edge-9", b.UniqueName())

	m := object.NewMap[*HostGroup]()
	m.Add(a)
	m.Add(b)
	assert.Equal(t, 2, m.Len())
}

func TestHostGroup_UniqueNameFallsBackToRef(t *testing.T) {
	g := &HostGroup{Name: "Edge", Ref: "/rest/config/hostgroup/7"}
	assert.Equal(t, "Edge-/rest/config/hostgroup/7", g.UniqueName())
}

func TestHostGroup_UniqueNameUnpersisted(t *testing.T) {
	g := &HostGroup{Name: "Edge"}
	assert.Equal(t, "Edge", g.UniqueName())
}

func TestHostGroupBuilder_Build(t *testing.T) {
	parent := &HostGroupRef{Name: "Root", Ref: "/rest/config/hostgroup/1"}

	g, err := NewHostGroupBuilder().Name("Production").Parent(parent).Build()
	require.NoError(t, err)
	assert.Equal(t, "Production", g.Name)
	assert.Same(t, parent, g.Parent)
}

func TestHostGroupBuilder_RequiredName(t *testing.T) {
	_, err := NewHostGroupBuilder().Build()
	assert.Error(t, err)
}

func TestHostGroup_ClearReadonlyResetsMatPath(t *testing.T) {
	id := wire.Uint(7)
	g := &HostGroup{ID: &id, Ref: "/rest/config/hostgroup/7", Name: "Edge", MatPath: "Root,Edge,"}

	g.ClearReadonly()

	assert.Nil(t, g.ID)
	assert.Empty(t, g.Ref)
	assert.Empty(t, g.MatPath)
	assert.Equal(t, "Edge", g.Name)
}

func TestHostGroupRef_UniqueNameQualifiedByRef(t *testing.T) {
	a := &HostGroupRef{Name: "Edge", Ref: "/rest/config/hostgroup/7"}
	b := &HostGroupRef{Name: "Edge", Ref: "/rest/config/hostgroup/9"}

	refs := object.NewRefMap[*HostGroupRef]()
	refs.Add(a)
	refs.Add(b)
	assert.Equal(t, 2, refs.Len())
}
