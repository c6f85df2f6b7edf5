package objects

import (
	"github.com/overseer-monitoring/overseer-go/pkg/object"
	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

// SNMPInterface is a polled interface on a host. It exists only embedded in a
// Host's snmpinterfaces list and has no standalone REST collection: Exists,
// Fetch, Create, and FetchAll all fail with object.ErrNoConfigPath, which
// callers must treat as a usage error rather than a network failure.
type SNMPInterface struct {
	Interface string `json:"interface"`

	Active *wire.Bool `json:"active,omitempty"`

	ThrottleWarning  string `json:"throughput_warning,omitempty"`
	ThrottleCritical string `json:"throughput_critical,omitempty"`
}

var _ object.Persistent = (*SNMPInterface)(nil)

// UniqueName implements object.Object.
func (s *SNMPInterface) UniqueName() string { return s.Interface }

// ConfigPath implements object.Persistent. Always "" — the type is
// embedded-only.
func (s *SNMPInterface) ConfigPath() string { return "" }

// ObjectID implements object.Persistent. SNMP interfaces carry no
// server-assigned id.
func (s *SNMPInterface) ObjectID() (uint64, bool) { return 0, false }

// ObjectRef implements object.Persistent.
func (s *SNMPInterface) ObjectRef() string { return "" }

// ObjectName implements object.Persistent.
func (s *SNMPInterface) ObjectName() string { return s.Interface }

// ClearReadonly implements object.Persistent. Nothing on an SNMP interface is
// server-assigned.
func (s *SNMPInterface) ClearReadonly() {}
