package objects

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/overseer-monitoring/overseer-go/pkg/object"
	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

// Contact is a notification recipient account.
type Contact struct {
	ID  *wire.Uint `json:"id,omitempty"`
	Ref string     `json:"ref,omitempty"`

	Name     string `json:"name"`
	FullName string `json:"fullname,omitempty"`
	Email    string `json:"email,omitempty"`
	Language string `json:"language,omitempty"`

	Enabled *wire.Bool `json:"enabled,omitempty"`

	Uncommitted *wire.Bool `json:"uncommitted,omitempty"`
}

var (
	_ object.Persistent              = (*Contact)(nil)
	_ object.Referencer[*ContactRef] = (*Contact)(nil)
)

// UniqueName implements object.Object.
func (c *Contact) UniqueName() string { return c.Name }

// ConfigPath implements object.Persistent.
func (c *Contact) ConfigPath() string { return "/config/contact" }

// ObjectID implements object.Persistent.
func (c *Contact) ObjectID() (uint64, bool) {
	if c.ID == nil {
		return 0, false
	}
	return c.ID.Uint64(), true
}

// ObjectRef implements object.Persistent.
func (c *Contact) ObjectRef() string { return c.Ref }

// ObjectName implements object.Persistent.
func (c *Contact) ObjectName() string { return c.Name }

// ClearReadonly implements object.Persistent.
func (c *Contact) ClearReadonly() {
	c.ID = nil
	c.Ref = ""
	c.Uncommitted = nil
}

// Reference derives the projection used when a contact nests inside another
// entity.
func (c *Contact) Reference() *ContactRef {
	return &ContactRef{Name: c.Name, Ref: c.Ref}
}

// Clone returns a copy of c under a new name with all server-assigned fields
// unset, ready to be created as a new contact.
func (c *Contact) Clone(name string) *Contact {
	clone := *c
	clone.Name = name
	clone.ClearReadonly()
	return &clone
}

// ContactRef is the reference variant of Contact.
type ContactRef struct {
	Name string `json:"name,omitempty"`
	Ref  string `json:"ref,omitempty"`
}

// UniqueName implements object.Object.
func (r *ContactRef) UniqueName() string { return r.Name }

// ContactBuilder assembles a validated Contact.
type ContactBuilder struct {
	contact Contact
}

// NewContactBuilder returns an empty builder.
func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{}
}

// Name sets the account name.
func (b *ContactBuilder) Name(name string) *ContactBuilder {
	b.contact.Name = name
	return b
}

// FullName sets the display name.
func (b *ContactBuilder) FullName(fullName string) *ContactBuilder {
	b.contact.FullName = fullName
	return b
}

// Email sets the notification address.
func (b *ContactBuilder) Email(email string) *ContactBuilder {
	b.contact.Email = email
	return b
}

// Language sets the UI language code.
func (b *ContactBuilder) Language(lang string) *ContactBuilder {
	b.contact.Language = lang
	return b
}

// Enabled sets whether the contact receives notifications.
func (b *ContactBuilder) Enabled(enabled bool) *ContactBuilder {
	v := wire.Bool(enabled)
	b.contact.Enabled = &v
	return b
}

// Build validates every field and returns the contact with server-assigned
// fields unset.
func (b *ContactBuilder) Build() (*Contact, error) {
	c := b.contact
	c.ClearReadonly()

	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required,
			validation.Length(1, 64), validation.Match(nameRe)),
		validation.Field(&c.FullName, validation.Length(0, 128)),
		validation.Field(&c.Email, is.Email),
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// MinimalContact constructs the smallest valid contact.
func MinimalContact(name string) (*Contact, error) {
	return NewContactBuilder().Name(name).Build()
}
