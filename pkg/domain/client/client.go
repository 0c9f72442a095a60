// Package client holds the Client entity and its construction rules.
// A client is a registered person owning exactly one account; the account
// itself lives in the account package and is linked by ClientID.
package client

import (
	"errors"
	"time"
)

// DOBLayout is the only accepted wire format for a client's date of birth.
const DOBLayout = "2006-01-02"

var (
	// ErrClientNotFound is returned when a client id does not resolve to a record.
	ErrClientNotFound = errors.New("client not found")

	// ErrUsernameTaken is returned when a registration collides with an
	// existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidDOB is returned when the date of birth is not a YYYY-MM-DD date.
	ErrInvalidDOB = errors.New("dob must be a YYYY-MM-DD date")
)

// Client represents a registered person.
//
// Invariants:
// - Username is unique and never changes after registration.
// - Password holds a bcrypt hash, never the raw credential.
// - Phones and Emails are ordered lists and are the only mutable fields.
type Client struct {
	ID        uint
	Username  string
	Password  string
	Name      string
	DOB       time.Time
	Phones    []string
	Emails    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New builds a Client from registration input. The dob string must be a
// calendar date in YYYY-MM-DD form; the password is expected to be hashed
// already by the caller.
func New(username, hashedPassword, name, dob string, phones, emails []string) (*Client, error) {
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	if hashedPassword == "" {
		return nil, errors.New("password cannot be empty")
	}
	if name == "" {
		return nil, errors.New("name cannot be empty")
	}
	parsed, err := time.Parse(DOBLayout, dob)
	if err != nil {
		return nil, ErrInvalidDOB
	}
	now := time.Now().UTC()
	return &Client{
		Username:  username,
		Password:  hashedPassword,
		Name:      name,
		DOB:       parsed,
		Phones:    phones,
		Emails:    emails,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateContacts replaces the phone and/or email lists. A nil slice leaves the
// corresponding field untouched so callers can update either list on its own.
func (c *Client) UpdateContacts(phones, emails []string) {
	if phones != nil {
		c.Phones = phones
	}
	if emails != nil {
		c.Emails = emails
	}
	c.UpdatedAt = time.Now().UTC()
}
