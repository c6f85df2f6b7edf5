package objects

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/overseer-monitoring/overseer-go/pkg/object"
	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

// Hashtag labels hosts and service checks for dashboard grouping.
type Hashtag struct {
	ID  *wire.Uint `json:"id,omitempty"`
	Ref string     `json:"ref,omitempty"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Enabled          *wire.Bool `json:"enabled,omitempty"`
	AllServiceChecks *wire.Bool `json:"all_servicechecks,omitempty"`
	Public           *wire.Bool `json:"public,omitempty"`

	Uncommitted *wire.Bool `json:"uncommitted,omitempty"`
}

var (
	_ object.Persistent              = (*Hashtag)(nil)
	_ object.Referencer[*HashtagRef] = (*Hashtag)(nil)
)

// UniqueName implements object.Object.
func (h *Hashtag) UniqueName() string { return h.Name }

// ConfigPath implements object.Persistent.
func (h *Hashtag) ConfigPath() string { return "/config/keyword" }

// ObjectID implements object.Persistent.
func (h *Hashtag) ObjectID() (uint64, bool) {
	if h.ID == nil {
		return 0, false
	}
	return h.ID.Uint64(), true
}

// ObjectRef implements object.Persistent.
func (h *Hashtag) ObjectRef() string { return h.Ref }

// ObjectName implements object.Persistent.
func (h *Hashtag) ObjectName() string { return h.Name }

// ClearReadonly implements object.Persistent.
func (h *Hashtag) ClearReadonly() {
	h.ID = nil
	h.Ref = ""
	h.Uncommitted = nil
}

// Reference derives the projection used when a hashtag nests inside another
// entity.
func (h *Hashtag) Reference() *HashtagRef {
	return &HashtagRef{Name: h.Name, Ref: h.Ref}
}

// HashtagRef is the reference variant of Hashtag.
type HashtagRef struct {
	Name string `json:"name,omitempty"`
	Ref  string `json:"ref,omitempty"`
}

// UniqueName implements object.Object.
func (r *HashtagRef) UniqueName() string { return r.Name }

// HashtagBuilder assembles a validated Hashtag.
type HashtagBuilder struct {
	tag Hashtag
}

// NewHashtagBuilder returns an empty builder.
func NewHashtagBuilder() *HashtagBuilder {
	return &HashtagBuilder{}
}

// Name sets the hashtag name.
func (b *HashtagBuilder) Name(name string) *HashtagBuilder {
	b.tag.Name = name
	return b
}

// Description sets the description.
func (b *HashtagBuilder) Description(desc string) *HashtagBuilder {
	b.tag.Description = desc
	return b
}

// Enabled sets whether the hashtag is active.
func (b *HashtagBuilder) Enabled(enabled bool) *HashtagBuilder {
	v := wire.Bool(enabled)
	b.tag.Enabled = &v
	return b
}

// AllServiceChecks applies the hashtag to every service check on its hosts.
func (b *HashtagBuilder) AllServiceChecks(all bool) *HashtagBuilder {
	v := wire.Bool(all)
	b.tag.AllServiceChecks = &v
	return b
}

// Public makes the hashtag visible to unauthenticated dashboard viewers.
func (b *HashtagBuilder) Public(public bool) *HashtagBuilder {
	v := wire.Bool(public)
	b.tag.Public = &v
	return b
}

// Build validates every field and returns the hashtag with server-assigned
// fields unset.
func (b *HashtagBuilder) Build() (*Hashtag, error) {
	h := b.tag
	h.ClearReadonly()

	if err := validation.ValidateStruct(&h,
		validation.Field(&h.Name, validation.Required,
			validation.Length(1, 64), validation.Match(nameRe)),
		validation.Field(&h.Description, validation.Length(0, 255)),
	); err != nil {
		return nil, err
	}
	return &h, nil
}

// MinimalHashtag constructs the smallest valid hashtag.
func MinimalHashtag(name string) (*Hashtag, error) {
	return NewHashtagBuilder().Name(name).Build()
}
