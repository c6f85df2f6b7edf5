package objects

import (
	"fmt"
	"math"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/overseer-monitoring/overseer-go/pkg/object"
	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

// BSMComponent groups hosts into a business service with a quorum: the
// component is healthy while at least quorum_pct of its members are up.
type BSMComponent struct {
	ID  *wire.Uint `json:"id,omitempty"`
	Ref string     `json:"ref,omitempty"`

	Name  string                   `json:"name"`
	Hosts *object.RefMap[*HostRef] `json:"hosts,omitempty"`

	// QuorumPct is a percentage with two decimal places, e.g. "66.67". It
	// must correspond to an achievable ratio k/n for the component's n
	// member hosts.
	QuorumPct string `json:"quorum_pct,omitempty"`

	Uncommitted *wire.Bool `json:"uncommitted,omitempty"`
}

var (
	_ object.Persistent                   = (*BSMComponent)(nil)
	_ object.Referencer[*BSMComponentRef] = (*BSMComponent)(nil)
)

// UniqueName implements object.Object.
func (b *BSMComponent) UniqueName() string { return b.Name }

// ConfigPath implements object.Persistent.
func (b *BSMComponent) ConfigPath() string { return "/config/bsmcomponent" }

// ObjectID implements object.Persistent.
func (b *BSMComponent) ObjectID() (uint64, bool) {
	if b.ID == nil {
		return 0, false
	}
	return b.ID.Uint64(), true
}

// ObjectRef implements object.Persistent.
func (b *BSMComponent) ObjectRef() string { return b.Ref }

// ObjectName implements object.Persistent.
func (b *BSMComponent) ObjectName() string { return b.Name }

// ClearReadonly implements object.Persistent.
func (b *BSMComponent) ClearReadonly() {
	b.ID = nil
	b.Ref = ""
	b.Uncommitted = nil
}

// Reference derives the projection used when a component nests inside a
// business service.
func (b *BSMComponent) Reference() *BSMComponentRef {
	return &BSMComponentRef{Name: b.Name, Ref: b.Ref}
}

// BSMComponentRef is the reference variant of BSMComponent.
type BSMComponentRef struct {
	Name string `json:"name,omitempty"`
	Ref  string `json:"ref,omitempty"`
}

// UniqueName implements object.Object.
func (r *BSMComponentRef) UniqueName() string { return r.Name }

// BSMComponentBuilder assembles a validated BSMComponent.
type BSMComponentBuilder struct {
	component BSMComponent
}

// NewBSMComponentBuilder returns an empty builder.
func NewBSMComponentBuilder() *BSMComponentBuilder {
	return &BSMComponentBuilder{}
}

// Name sets the component name.
func (b *BSMComponentBuilder) Name(name string) *BSMComponentBuilder {
	b.component.Name = name
	return b
}

// Hosts sets the member host references.
func (b *BSMComponentBuilder) Hosts(hosts *object.RefMap[*HostRef]) *BSMComponentBuilder {
	b.component.Hosts = hosts
	return b
}

// QuorumPct sets the quorum percentage, e.g. "66.67".
func (b *BSMComponentBuilder) QuorumPct(pct string) *BSMComponentBuilder {
	b.component.QuorumPct = pct
	return b
}

// Build validates every field, including that the quorum percentage is an
// achievable ratio for the number of member hosts, and returns the component
// with server-assigned fields unset.
func (b *BSMComponentBuilder) Build() (*BSMComponent, error) {
	c := b.component
	c.ClearReadonly()

	members := 0
	if c.Hosts != nil {
		members = c.Hosts.Len()
	}

	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required,
			validation.Length(1, 64), validation.Match(nameRe)),
		validation.Field(&c.QuorumPct, validation.By(quorumRule(members))),
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// quorumRule validates that a quorum percentage equals k/n for some k of the
// n member hosts, to two decimal places.
func quorumRule(members int) validation.RuleFunc {
	return func(value interface{}) error {
		pct, _ := value.(string)
		if pct == "" {
			return nil
		}
		if members == 0 {
			return validation.NewError("validation_quorum_no_hosts",
				"quorum_pct requires at least one member host")
		}

		f, err := strconv.ParseFloat(pct, 64)
		if err != nil || f < 0 || f > 100 {
			return validation.NewError("validation_quorum_invalid",
				fmt.Sprintf("quorum_pct %q is not a valid percentage", pct))
		}

		for k := 0; k <= members; k++ {
			want := math.Round(float64(k)/float64(members)*10000) / 100
			if math.Abs(f-want) < 0.005 {
				return nil
			}
		}
		return validation.NewError("validation_quorum_unachievable",
			fmt.Sprintf("quorum_pct %q is not achievable with %d hosts", pct, members))
	}
}

// MinimalBSMComponent constructs the smallest valid component.
func MinimalBSMComponent(name string) (*BSMComponent, error) {
	return NewBSMComponentBuilder().Name(name).Build()
}
