package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overseer-monitoring/overseer-go/pkg/object"
)

func memberHosts(names ...string) *object.RefMap[*HostRef] {
	m := object.NewRefMap[*HostRef]()
	for _, n := range names {
		m.Add(&HostRef{Name: n})
	}
	return m
}

func TestBSMComponentBuilder_ValidQuorum(t *testing.T) {
	tests := []struct {
		name    string
		hosts   []string
		quorum  string
		wantErr bool
	}{
		{name: "two thirds of three", hosts: []string{"a", "b", "c"}, quorum: "66.67"},
		{name: "all of three", hosts: []string{"a", "b", "c"}, quorum: "100"},
		{name: "none", hosts: []string{"a", "b", "c"}, quorum: "0"},
		{name: "half of two", hosts: []string{"a", "b"}, quorum: "50"},
		{name: "unachievable for three", hosts: []string{"a", "b", "c"}, quorum: "50", wantErr: true},
		{name: "not a number", hosts: []string{"a"}, quorum: "lots", wantErr: true},
		{name: "out of range", hosts: []string{"a"}, quorum: "150", wantErr: true},
		{name: "quorum without hosts", hosts: nil, quorum: "50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBSMComponentBuilder().Name("checkout").QuorumPct(tt.quorum)
			if len(tt.hosts) > 0 {
				b = b.Hosts(memberHosts(tt.hosts...))
			}
			_, err := b.Build()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBSMComponentBuilder_QuorumOptional(t *testing.T) {
	c, err := NewBSMComponentBuilder().Name("checkout").Hosts(memberHosts("a")).Build()
	require.NoError(t, err)
	assert.Empty(t, c.QuorumPct)
}

func TestMinimalBSMComponent(t *testing.T) {
	c, err := MinimalBSMComponent("checkout")
	require.NoError(t, err)
	assert.Equal(t, "checkout", c.UniqueName())
}
