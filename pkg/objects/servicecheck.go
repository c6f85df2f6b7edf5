package objects

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/overseer-monitoring/overseer-go/pkg/object"
	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

// ServiceCheck is a check definition applied to hosts.
type ServiceCheck struct {
	ID  *wire.Uint `json:"id,omitempty"`
	Ref string     `json:"ref,omitempty"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Args        string `json:"args,omitempty"`

	CheckInterval *wire.Uint `json:"check_interval,omitempty"`
	RetryInterval *wire.Uint `json:"retry_check_interval,omitempty"`
	CheckAttempts *wire.Uint `json:"check_attempts,omitempty"`

	Hashtags *object.RefMap[*HashtagRef] `json:"hashtags,omitempty"`

	Uncommitted *wire.Bool `json:"uncommitted,omitempty"`
}

var (
	_ object.Persistent                   = (*ServiceCheck)(nil)
	_ object.Referencer[*ServiceCheckRef] = (*ServiceCheck)(nil)
)

// UniqueName implements object.Object.
func (s *ServiceCheck) UniqueName() string { return s.Name }

// ConfigPath implements object.Persistent.
func (s *ServiceCheck) ConfigPath() string { return "/config/servicecheck" }

// ObjectID implements object.Persistent.
func (s *ServiceCheck) ObjectID() (uint64, bool) {
	if s.ID == nil {
		return 0, false
	}
	return s.ID.Uint64(), true
}

// ObjectRef implements object.Persistent.
func (s *ServiceCheck) ObjectRef() string { return s.Ref }

// ObjectName implements object.Persistent.
func (s *ServiceCheck) ObjectName() string { return s.Name }

// ClearReadonly implements object.Persistent.
func (s *ServiceCheck) ClearReadonly() {
	s.ID = nil
	s.Ref = ""
	s.Uncommitted = nil
}

// Reference derives the projection used when a service check nests inside
// another entity.
func (s *ServiceCheck) Reference() *ServiceCheckRef {
	return &ServiceCheckRef{Name: s.Name, Ref: s.Ref}
}

// ServiceCheckRef is the reference variant of ServiceCheck.
type ServiceCheckRef struct {
	Name string `json:"name,omitempty"`
	Ref  string `json:"ref,omitempty"`
}

// UniqueName implements object.Object.
func (r *ServiceCheckRef) UniqueName() string { return r.Name }

// ServiceCheckBuilder assembles a validated ServiceCheck.
type ServiceCheckBuilder struct {
	check ServiceCheck
}

// NewServiceCheckBuilder returns an empty builder.
func NewServiceCheckBuilder() *ServiceCheckBuilder {
	return &ServiceCheckBuilder{}
}

// Name sets the display name.
func (b *ServiceCheckBuilder) Name(name string) *ServiceCheckBuilder {
	b.check.Name = name
	return b
}

// Description sets the description.
func (b *ServiceCheckBuilder) Description(desc string) *ServiceCheckBuilder {
	b.check.Description = desc
	return b
}

// Args sets the plugin arguments.
func (b *ServiceCheckBuilder) Args(args string) *ServiceCheckBuilder {
	b.check.Args = args
	return b
}

// CheckInterval sets the check interval in seconds. Zero is rejected at
// Build; omit the call to use the server default.
func (b *ServiceCheckBuilder) CheckInterval(seconds uint64) *ServiceCheckBuilder {
	v := wire.Uint(seconds)
	b.check.CheckInterval = &v
	return b
}

// RetryInterval sets the retry interval in seconds.
func (b *ServiceCheckBuilder) RetryInterval(seconds uint64) *ServiceCheckBuilder {
	v := wire.Uint(seconds)
	b.check.RetryInterval = &v
	return b
}

// Hashtags sets the hashtag references.
func (b *ServiceCheckBuilder) Hashtags(tags *object.RefMap[*HashtagRef]) *ServiceCheckBuilder {
	b.check.Hashtags = tags
	return b
}

// Build validates every field and returns the check with server-assigned
// fields unset.
func (b *ServiceCheckBuilder) Build() (*ServiceCheck, error) {
	s := b.check
	s.ClearReadonly()

	if err := validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required,
			validation.Length(1, 64), validation.Match(nameRe)),
		validation.Field(&s.Description, validation.Length(0, 255)),
		validation.Field(&s.CheckInterval, validation.By(nonZeroInterval)),
		validation.Field(&s.RetryInterval, validation.By(nonZeroInterval)),
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// nonZeroInterval rejects an explicitly-set zero interval; an unset interval
// means "use the server default" and passes.
func nonZeroInterval(value interface{}) error {
	var n uint64
	switch v := value.(type) {
	case wire.Uint:
		n = v.Uint64()
	case *wire.Uint:
		if v == nil {
			return nil
		}
		n = v.Uint64()
	default:
		return nil
	}
	if n == 0 {
		return validation.NewError("validation_interval_zero", "interval must be greater than zero")
	}
	return nil
}

// MinimalServiceCheck constructs the smallest valid service check.
func MinimalServiceCheck(name string) (*ServiceCheck, error) {
	return NewServiceCheckBuilder().Name(name).Build()
}
