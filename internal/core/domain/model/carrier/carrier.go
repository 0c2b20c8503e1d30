package carrier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

// retiredState names the frozen lifecycle state in illegal-state errors.
const retiredState = "retired"

var (
	// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
	// created through NewCarrier or RestoreCarrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
)

// Carrier is a delivery pigeon. It is an aggregate root holding the
// availability flags that gate letter assignment.
//
// Invariants:
//   - nickname is non-empty (uniqueness is enforced at the policy/store level)
//   - speed is positive
//   - available for new assignment iff active && !retired
//   - once retired, no field may ever be mutated again; retirement is one-way
//   - the record is never hard-deleted, only deactivated
type Carrier struct {
	id        int64
	nickname  string
	speed     float64
	birthDate time.Time
	photoURL  *string
	active    bool
	retired   bool
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCarrier registers a new carrier, active and not retired.
// Basic field failures are batched as joined ValidationErrors.
func NewCarrier(nickname string, speed float64, birthDate time.Time, photoURL *string) (*Carrier, error) {
	c := &Carrier{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setNickname(nickname),
		c.setSpeed(speed),
		c.setBirthDate(birthDate),
	); err != nil {
		return nil, err
	}

	c.photoURL = photoURL
	return c, nil
}

// RestoreCarrier reconstructs a carrier from persistence.
func RestoreCarrier(
	id int64,
	nickname string,
	speed float64,
	birthDate time.Time,
	photoURL *string,
	active bool,
	retired bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Carrier, error) {
	c := &Carrier{
		id:        id,
		photoURL:  photoURL,
		active:    active,
		retired:   retired,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setNickname(nickname),
		c.setSpeed(speed),
		c.setBirthDate(birthDate),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Carrier was created through a constructor.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares two carriers by identity.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id != 0 && c.id == other.id
}

// ID returns the carrier's surrogate identity (0 until persisted).
func (c *Carrier) ID() int64 {
	return c.id
}

// Nickname returns the unique nickname.
func (c *Carrier) Nickname() string {
	return c.nickname
}

// Speed returns the carrier's flight speed.
func (c *Carrier) Speed() float64 {
	return c.speed
}

// BirthDate returns the carrier's birth date.
func (c *Carrier) BirthDate() time.Time {
	return c.birthDate
}

// PhotoURL returns the optional photo reference.
func (c *Carrier) PhotoURL() *string {
	return c.photoURL
}

// IsActive reports the active flag.
func (c *Carrier) IsActive() bool {
	return c.active
}

// IsRetired reports the retired flag.
func (c *Carrier) IsRetired() bool {
	return c.retired
}

// CreatedAt returns the creation timestamp recorded by the store.
func (c *Carrier) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last-update timestamp recorded by the store.
func (c *Carrier) UpdatedAt() time.Time {
	return c.updatedAt
}

// IsAvailable reports whether the carrier may be assigned to a new letter:
// active and not retired.
func (c *Carrier) IsAvailable() bool {
	return c.active && !c.retired
}

// Rename changes the nickname. Blocked once retired.
func (c *Carrier) Rename(nickname string) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}
	return c.setNickname(nickname)
}

// SetSpeed changes the flight speed. Blocked once retired.
func (c *Carrier) SetSpeed(speed float64) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}
	return c.setSpeed(speed)
}

// SetBirthDate changes the birth date. Blocked once retired.
func (c *Carrier) SetBirthDate(birthDate time.Time) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}
	return c.setBirthDate(birthDate)
}

// SetPhotoURL changes the photo reference. Blocked once retired.
func (c *Carrier) SetPhotoURL(photoURL *string) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}
	c.photoURL = photoURL
	return nil
}

// Retire permanently freezes the carrier: active becomes false and retired
// becomes true in one step, so no partial state is ever observable.
// Fails with an IllegalStateError when already retired.
func (c *Carrier) Retire() error {
	if c.retired {
		return errs.NewIllegalStateError("retire carrier", retiredState)
	}

	c.active = false
	c.retired = true
	return nil
}

// Deactivate performs the soft-delete: the row stays for referential history,
// only the active flag drops. Idempotent, including for retired carriers
// whose active flag is already down.
func (c *Carrier) Deactivate() {
	c.active = false
}

func (c *Carrier) ensureMutable() error {
	if c.retired {
		return errs.NewIllegalStateError("edit carrier", retiredState)
	}
	return nil
}

func (c *Carrier) setNickname(nickname string) error {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return errs.NewValidationError("nickname", "nickname is required")
	}

	c.nickname = nickname
	return nil
}

func (c *Carrier) setSpeed(speed float64) error {
	if speed <= 0 {
		return errs.NewValidationErrorWithCause(
			"speed",
			"speed must be positive",
			fmt.Errorf("%v is not greater than 0", speed),
		)
	}

	c.speed = speed
	return nil
}

func (c *Carrier) setBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return errs.NewValidationError("birthDate", "birth date is required")
	}

	c.birthDate = birthDate
	return nil
}
