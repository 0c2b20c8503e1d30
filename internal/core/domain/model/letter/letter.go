package letter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

const (
	// MaxMessageLength is the upper bound on a letter's message body.
	MaxMessageLength = 1000

	// OverdueThreshold is how long a dispatched letter may stay in flight
	// before it counts as overdue.
	OverdueThreshold = 24 * time.Hour
)

var (
	// ErrLetterIsNotConstructed is returned when a Letter instance was not
	// created through NewLetter or RestoreLetter.
	ErrLetterIsNotConstructed = errors.New("Letter must be created via NewLetter constructor")
)

// Letter is the unit of delivery work: a message moving between two clients
// via one carrier. It is the aggregate root of the lifecycle state machine.
//
// Invariants:
//   - message is non-empty and at most MaxMessageLength characters
//   - sender and recipient are distinct clients
//   - status only moves along the transition graph in Status
//   - dispatchedAt is set exactly when the letter enters Dispatched, and
//     deliveredAt when it enters Delivered; a recall clears both
//   - once Delivered, neither status nor message can change
type Letter struct {
	id          int64
	message     string
	senderID    int64
	recipientID int64
	carrierID   int64
	status      Status

	dispatchedAt *time.Time
	deliveredAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// DeliveryTime is the elapsed interval between dispatch and delivery,
// with the floor representations the reporting layer exposes.
type DeliveryTime struct {
	Duration     time.Duration
	Milliseconds int64
	Seconds      int64
	Minutes      int64
	Hours        int64
}

// NewLetter creates a letter in Queued status with no timestamps.
//
// Field-level validation failures are batched: all failing basic checks are
// reported together as joined ValidationErrors. Relationship checks (sender,
// recipient, and carrier existence, carrier availability) are the caller's
// responsibility since they require lookups.
func NewLetter(message string, senderID int64, recipientID int64, carrierID int64) (*Letter, error) {
	l := &Letter{
		status: Queued,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setMessage(message),
		l.setParticipants(senderID, recipientID),
		l.setCarrierID(carrierID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLetter reconstructs a letter from persistence without re-running
// creation-time relationship checks. The stored status must still be valid.
func RestoreLetter(
	id int64,
	message string,
	senderID int64,
	recipientID int64,
	carrierID int64,
	status Status,
	dispatchedAt *time.Time,
	deliveredAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Letter, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	l := &Letter{
		id:           id,
		status:       status,
		dispatchedAt: dispatchedAt,
		deliveredAt:  deliveredAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setMessage(message),
		l.setParticipants(senderID, recipientID),
		l.setCarrierID(carrierID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Letter was created through a constructor.
func (l *Letter) Validate() error {
	if l == nil {
		return ErrLetterIsNotConstructed
	}
	return l.guard.Validate(ErrLetterIsNotConstructed)
}

// IsEqual compares two letters by identity.
func (l *Letter) IsEqual(other *Letter) bool {
	return other != nil && l.id != 0 && l.id == other.id
}

// ID returns the letter's surrogate identity (0 until persisted).
func (l *Letter) ID() int64 {
	return l.id
}

// Message returns the message body.
func (l *Letter) Message() string {
	return l.message
}

// SenderID returns the sending client's identity.
func (l *Letter) SenderID() int64 {
	return l.senderID
}

// RecipientID returns the receiving client's identity.
func (l *Letter) RecipientID() int64 {
	return l.recipientID
}

// CarrierID returns the assigned carrier's identity.
func (l *Letter) CarrierID() int64 {
	return l.carrierID
}

// Status returns the current lifecycle status.
func (l *Letter) Status() Status {
	return l.status
}

// DispatchedAt returns when the letter entered Dispatched, or nil.
func (l *Letter) DispatchedAt() *time.Time {
	return l.dispatchedAt
}

// DeliveredAt returns when the letter entered Delivered, or nil.
func (l *Letter) DeliveredAt() *time.Time {
	return l.deliveredAt
}

// CreatedAt returns the creation timestamp recorded by the store.
func (l *Letter) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns the last-update timestamp recorded by the store.
func (l *Letter) UpdatedAt() time.Time {
	return l.updatedAt
}

// ChangeStatus moves the letter along the transition graph and applies the
// timestamp side effects of the transition:
//
//   - Queued -> Dispatched stamps dispatchedAt = now
//   - Dispatched -> Delivered stamps deliveredAt = now
//   - Dispatched -> Queued (recall) clears both timestamps
//
// The letter is left untouched when the transition is rejected.
func (l *Letter) ChangeStatus(next Status, now time.Time) error {
	newStatus, err := l.status.TransitionTo(next)
	if err != nil {
		return err
	}

	switch {
	case l.status == Queued && newStatus == Dispatched:
		stamp := now
		l.dispatchedAt = &stamp
	case l.status == Dispatched && newStatus == Delivered:
		stamp := now
		l.deliveredAt = &stamp
	case l.status == Dispatched && newStatus == Queued:
		l.dispatchedAt = nil
		l.deliveredAt = nil
	}

	l.status = newStatus
	return nil
}

// EditMessage replaces the message body. Allowed only while Queued.
func (l *Letter) EditMessage(message string) error {
	if l.status != Queued {
		return errs.NewIllegalStateError("edit message", l.status.String())
	}
	return l.setMessage(message)
}

// EnsureDeletable reports whether the letter may be removed.
// Only queued letters can be deleted.
func (l *Letter) EnsureDeletable() error {
	if l.status != Queued {
		return errs.NewIllegalStateError("delete letter", l.status.String())
	}
	return nil
}

// DeliveryTimeSpent returns the measured delivery interval, defined only for
// delivered letters carrying both timestamps. Returns nil otherwise, including
// for delivered rows missing a stamp (a data anomaly the engine never produces).
func (l *Letter) DeliveryTimeSpent() *DeliveryTime {
	if l.status != Delivered || l.dispatchedAt == nil || l.deliveredAt == nil {
		return nil
	}

	d := l.deliveredAt.Sub(*l.dispatchedAt)
	return &DeliveryTime{
		Duration:     d,
		Milliseconds: d.Milliseconds(),
		Seconds:      int64(d.Seconds()),
		Minutes:      int64(d.Minutes()),
		Hours:        int64(d.Hours()),
	}
}

// IsOverdue reports whether the letter has been in flight longer than
// OverdueThreshold as of now. Always false for queued and delivered letters.
func (l *Letter) IsOverdue(now time.Time) bool {
	if l.status != Dispatched || l.dispatchedAt == nil {
		return false
	}
	return now.Sub(*l.dispatchedAt) > OverdueThreshold
}

func (l *Letter) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValidationError("message", "message is required")
	}
	if len([]rune(message)) > MaxMessageLength {
		return errs.NewValidationErrorWithCause(
			"message",
			"message is too long",
			fmt.Errorf("%d characters exceeds the maximum of %d", len([]rune(message)), MaxMessageLength),
		)
	}

	l.message = message
	return nil
}

func (l *Letter) setParticipants(senderID int64, recipientID int64) error {
	var errList []error
	if senderID <= 0 {
		errList = append(errList, errs.NewValidationError("senderId", "sender is required"))
	}
	if recipientID <= 0 {
		errList = append(errList, errs.NewValidationError("recipientId", "recipient is required"))
	}
	if senderID > 0 && senderID == recipientID {
		errList = append(errList, errs.NewValidationError("recipientId", "sender and recipient must differ"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	l.senderID = senderID
	l.recipientID = recipientID
	return nil
}

func (l *Letter) setCarrierID(carrierID int64) error {
	if carrierID <= 0 {
		return errs.NewValidationError("carrierId", "carrier is required")
	}
	l.carrierID = carrierID
	return nil
}
