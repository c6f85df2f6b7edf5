package objects

import (
	"encoding/json"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overseer-monitoring/overseer-go/pkg/object"
	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

func TestHostBuilder_Build(t *testing.T) {
	group := &HostGroupRef{Name: "Production", Ref: "/rest/config/hostgroup/2"}

	h, err := NewHostBuilder().
		Name("web01").
		Alias("Primary web server").
		Address("10.0.0.5").
		HostGroup(group).
		CheckInterval(300).
		Enabled(true).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "web01", h.Name)
	assert.Equal(t, "10.0.0.5", h.Address)
	assert.Same(t, group, h.HostGroup)
	assert.Equal(t, uint64(300), h.CheckInterval.Uint64())

	// Server-assigned fields are never set by the builder.
	_, hasID := h.ObjectID()
	assert.False(t, hasID)
	assert.Empty(t, h.ObjectRef())
}

func TestHostBuilder_RequiredName(t *testing.T) {
	_, err := NewHostBuilder().Alias("no name").Build()

	var fieldErrs validation.Errors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "name")
}

func TestHostBuilder_NameRegex(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "web01"},
		{name: "web-01.example_com"},
		{name: "-leading-dash", wantErr: true},
		{name: "spa ce", wantErr: true},
	}

	for _, tt := range tests {
		_, err := MinimalHost(tt.name)
		if tt.wantErr {
			assert.Error(t, err, "name %q should be rejected", tt.name)
		} else {
			assert.NoError(t, err, "name %q should be accepted", tt.name)
		}
	}
}

func TestMinimalHost(t *testing.T) {
	h, err := MinimalHost("web01")
	require.NoError(t, err)
	assert.Equal(t, "web01", h.UniqueName())
	assert.Nil(t, h.CheckInterval)
	assert.Nil(t, h.HostGroup)
}

func TestHost_Reference(t *testing.T) {
	h := &Host{Name: "web01", Ref: "/rest/config/host/12", Address: "10.0.0.5"}

	ref := h.Reference()

	assert.Equal(t, h.Name, ref.Name)
	assert.Equal(t, h.Ref, ref.Ref)
	assert.Equal(t, h.Address, ref.Address)
}

func TestHost_Clone(t *testing.T) {
	id := wire.Uint(12)
	uncommitted := wire.Bool(true)
	h := &Host{
		ID:          &id,
		Ref:         "/rest/config/host/12",
		Name:        "web01",
		Alias:       "Primary",
		Uncommitted: &uncommitted,
	}

	clone := h.Clone("web02")

	assert.Equal(t, "web02", clone.Name)
	assert.Equal(t, "Primary", clone.Alias)
	assert.Nil(t, clone.ID)
	assert.Empty(t, clone.Ref)
	assert.Nil(t, clone.Uncommitted)

	// The original keeps its server-assigned identity.
	assert.Equal(t, "web01", h.Name)
	assert.NotNil(t, h.ID)
}

func TestHost_WireDecoding(t *testing.T) {
	payload := `{
		"id": "12",
		"ref": "/rest/config/host/12",
		"name": "web01",
		"ip": "10.0.0.5",
		"check_interval": "300",
		"enabled": "1",
		"uncommitted": "0",
		"hostgroup": {"name": "Production", "ref": "/rest/config/hostgroup/2"},
		"snmpinterfaces": [{"interface": "eth0", "active": "1"}]
	}`

	var h Host
	require.NoError(t, json.Unmarshal([]byte(payload), &h))

	id, ok := h.ObjectID()
	require.True(t, ok)
	assert.Equal(t, uint64(12), id)
	assert.True(t, h.Enabled.Bool())
	assert.False(t, h.Uncommitted.Bool())
	assert.Equal(t, "Production", h.HostGroup.Name)
	require.Len(t, h.SNMPInterfaces, 1)
	assert.Equal(t, "eth0", h.SNMPInterfaces[0].UniqueName())
}

func TestHostReferences_FromMap(t *testing.T) {
	hosts := object.NewMap[*Host]()
	hosts.Add(&Host{Name: "web01", Ref: "/rest/config/host/1"})
	hosts.Add(&Host{Name: "web02", Ref: "/rest/config/host/2"})

	refs := object.References[*HostRef](hosts)

	assert.Equal(t, 2, refs.Len())
	ref, ok := refs.Get("web01")
	require.True(t, ok)
	assert.Equal(t, "/rest/config/host/1", ref.Ref)
}
