package objects

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/overseer-monitoring/overseer-go/pkg/object"
	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

// nameRe constrains display names across entity types: leading alphanumeric,
// then alphanumerics, dots, dashes, underscores.
var nameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Host is a monitored host.
type Host struct {
	// ID is assigned by the server on creation.
	ID *wire.Uint `json:"id,omitempty"`

	// Ref is assigned by the server on creation.
	Ref string `json:"ref,omitempty"`

	// Name is the display name, unique per instance for hosts.
	Name string `json:"name"`

	Alias          string        `json:"alias,omitempty"`
	Address        string        `json:"ip,omitempty"`
	OtherAddresses string        `json:"other_addresses,omitempty"`
	HostGroup      *HostGroupRef `json:"hostgroup,omitempty"`

	CheckInterval *wire.Uint `json:"check_interval,omitempty"`
	CheckAttempts *wire.Uint `json:"check_attempts,omitempty"`
	Enabled       *wire.Bool `json:"enabled,omitempty"`

	Hashtags       *object.RefMap[*HashtagRef] `json:"hashtags,omitempty"`
	SNMPInterfaces []*SNMPInterface            `json:"snmpinterfaces,omitempty"`

	// Uncommitted is maintained by the server; it flags pending config
	// changes not yet applied to the monitoring engine.
	Uncommitted *wire.Bool `json:"uncommitted,omitempty"`
}

var (
	_ object.Persistent           = (*Host)(nil)
	_ object.Referencer[*HostRef] = (*Host)(nil)
)

// UniqueName implements object.Object. Host names are unique per instance, so
// the name alone is the collection key.
func (h *Host) UniqueName() string { return h.Name }

// ConfigPath implements object.Persistent.
func (h *Host) ConfigPath() string { return "/config/host" }

// ObjectID implements object.Persistent.
func (h *Host) ObjectID() (uint64, bool) {
	if h.ID == nil {
		return 0, false
	}
	return h.ID.Uint64(), true
}

// ObjectRef implements object.Persistent.
func (h *Host) ObjectRef() string { return h.Ref }

// ObjectName implements object.Persistent.
func (h *Host) ObjectName() string { return h.Name }

// ClearReadonly implements object.Persistent.
func (h *Host) ClearReadonly() {
	h.ID = nil
	h.Ref = ""
	h.Uncommitted = nil
}

// Reference derives the projection used when a host nests inside another
// entity.
func (h *Host) Reference() *HostRef {
	return &HostRef{Name: h.Name, Ref: h.Ref, Address: h.Address}
}

// Clone returns a copy of h under a new name with all server-assigned fields
// unset, ready to be created as a new host.
func (h *Host) Clone(name string) *Host {
	clone := *h
	clone.Name = name
	clone.ClearReadonly()
	return &clone
}

// HostRef is the reference variant of Host. It carries the address as a
// denormalized convenience for embedding entities that display it.
type HostRef struct {
	Name    string `json:"name,omitempty"`
	Ref     string `json:"ref,omitempty"`
	Address string `json:"ip,omitempty"`
}

// UniqueName implements object.Object.
func (r *HostRef) UniqueName() string { return r.Name }

// HostBuilder assembles a validated Host. No field is committed until Build.
type HostBuilder struct {
	host Host
}

// NewHostBuilder returns an empty builder.
func NewHostBuilder() *HostBuilder {
	return &HostBuilder{}
}

// Name sets the display name.
func (b *HostBuilder) Name(name string) *HostBuilder {
	b.host.Name = name
	return b
}

// Alias sets the descriptive alias.
func (b *HostBuilder) Alias(alias string) *HostBuilder {
	b.host.Alias = alias
	return b
}

// Address sets the primary address.
func (b *HostBuilder) Address(addr string) *HostBuilder {
	b.host.Address = addr
	return b
}

// HostGroup sets the owning host group reference.
func (b *HostBuilder) HostGroup(ref *HostGroupRef) *HostBuilder {
	b.host.HostGroup = ref
	return b
}

// CheckInterval sets the check interval in seconds.
func (b *HostBuilder) CheckInterval(seconds uint64) *HostBuilder {
	v := wire.Uint(seconds)
	b.host.CheckInterval = &v
	return b
}

// CheckAttempts sets the retry attempt count.
func (b *HostBuilder) CheckAttempts(attempts uint64) *HostBuilder {
	v := wire.Uint(attempts)
	b.host.CheckAttempts = &v
	return b
}

// Enabled sets whether the host is actively monitored.
func (b *HostBuilder) Enabled(enabled bool) *HostBuilder {
	v := wire.Bool(enabled)
	b.host.Enabled = &v
	return b
}

// Hashtags sets the hashtag references.
func (b *HostBuilder) Hashtags(tags *object.RefMap[*HashtagRef]) *HostBuilder {
	b.host.Hashtags = tags
	return b
}

// SNMPInterfaces sets the embedded SNMP interfaces.
func (b *HostBuilder) SNMPInterfaces(ifaces ...*SNMPInterface) *HostBuilder {
	b.host.SNMPInterfaces = ifaces
	return b
}

// Build validates every field and returns the host, or a validation.Errors
// naming each violated field. Server-assigned fields are always unset on the
// result.
func (b *HostBuilder) Build() (*Host, error) {
	h := b.host
	h.ClearReadonly()

	if err := validation.ValidateStruct(&h,
		validation.Field(&h.Name, validation.Required,
			validation.Length(1, 64), validation.Match(nameRe)),
		validation.Field(&h.Alias, validation.Length(0, 255)),
		validation.Field(&h.Address, validation.Length(0, 255)),
	); err != nil {
		return nil, err
	}
	return &h, nil
}

// MinimalHost constructs the smallest valid host: a name and defaults for
// everything else.
func MinimalHost(name string) (*Host, error) {
	return NewHostBuilder().Name(name).Build()
}
