package entity

import "encoding/json"

// Contact é um vCard enviado em sendContact.
// Organization, Email e URL só entram no payload quando não são nil; string vazia é valor válido.
type Contact struct {
	FullName     string
	Wuid         string
	PhoneNumber  string
	Organization *string
	Email        *string
	URL          *string
}

type ContactOption func(*Contact)

func WithOrganization(organization string) ContactOption {
	return func(c *Contact) { c.Organization = &organization }
}

func WithEmail(email string) ContactOption {
	return func(c *Contact) { c.Email = &email }
}

func WithURL(url string) ContactOption {
	return func(c *Contact) { c.URL = &url }
}

func NewContact(fullName, wuid, phoneNumber string, opts ...ContactOption) Contact {
	contact := Contact{
		FullName:    fullName,
		Wuid:        wuid,
		PhoneNumber: phoneNumber,
	}
	for _, opt := range opts {
		opt(&contact)
	}
	return contact
}

func (c Contact) ToMap() map[string]any {
	data := map[string]any{
		"fullName":    c.FullName,
		"wuid":        c.Wuid,
		"phoneNumber": c.PhoneNumber,
	}
	if c.Organization != nil {
		data["organization"] = *c.Organization
	}
	if c.Email != nil {
		data["email"] = *c.Email
	}
	if c.URL != nil {
		data["url"] = *c.URL
	}
	return data
}

func (c Contact) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToMap())
}
