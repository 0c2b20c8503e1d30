package client

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

const (
	minNameLength    = 2
	minAddressLength = 5
)

var (
	// ErrClientIsNotConstructed is returned when a Client instance was not
	// created through NewClient or RestoreClient.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Client is a party that may send or receive letters.
//
// Invariants:
//   - name has at least 2 characters
//   - email is well-formed and stored lowercased; uniqueness is enforced at
//     the store level
//   - birth date is never in the future
//   - address has at least 5 characters
type Client struct {
	id        int64
	name      string
	email     string
	birthDate time.Time
	address   string
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewClient registers a new client.
// Basic field failures are batched as joined ValidationErrors.
func NewClient(name string, email string, birthDate time.Time, address string) (*Client, error) {
	c := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setBirthDate(birthDate),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a client from persistence.
func RestoreClient(
	id int64,
	name string,
	email string,
	birthDate time.Time,
	address string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Client, error) {
	c := &Client{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setBirthDate(birthDate),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Client was created through a constructor.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// IsEqual compares two clients by identity.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id != 0 && c.id == other.id
}

// ID returns the client's surrogate identity (0 until persisted).
func (c *Client) ID() int64 {
	return c.id
}

// Name returns the client's name.
func (c *Client) Name() string {
	return c.name
}

// Email returns the case-normalized email address.
func (c *Client) Email() string {
	return c.email
}

// BirthDate returns the client's birth date.
func (c *Client) BirthDate() time.Time {
	return c.birthDate
}

// Address returns the postal address.
func (c *Client) Address() string {
	return c.address
}

// CreatedAt returns the creation timestamp recorded by the store.
func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last-update timestamp recorded by the store.
func (c *Client) UpdatedAt() time.Time {
	return c.updatedAt
}

// SetName changes the client's name.
func (c *Client) SetName(name string) error {
	return c.setName(name)
}

// SetEmail changes the email address, re-normalizing it.
// The caller re-checks uniqueness (excluding this client) before persisting.
func (c *Client) SetEmail(email string) error {
	return c.setEmail(email)
}

// SetBirthDate changes the birth date.
func (c *Client) SetBirthDate(birthDate time.Time) error {
	return c.setBirthDate(birthDate)
}

// SetAddress changes the postal address.
func (c *Client) SetAddress(address string) error {
	return c.setAddress(address)
}

// NormalizeEmail lowercases and trims an email address the way the aggregate
// stores it, so uniqueness lookups compare like with like.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < minNameLength {
		return errs.NewValidationError("name", "name must have at least 2 characters")
	}

	c.name = name
	return nil
}

func (c *Client) setEmail(email string) error {
	email = NormalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return errs.NewValidationError("email", "email format is invalid")
	}

	c.email = email
	return nil
}

func (c *Client) setBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return errs.NewValidationError("birthDate", "birth date is required")
	}
	if birthDate.After(time.Now()) {
		return errs.NewValidationError("birthDate", "birth date must not be in the future")
	}

	c.birthDate = birthDate
	return nil
}

func (c *Client) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if len([]rune(address)) < minAddressLength {
		return errs.NewValidationError("address", "address must have at least 5 characters")
	}

	c.address = address
	return nil
}
