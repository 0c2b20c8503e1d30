// Package letter contains the Letter aggregate and its lifecycle state
// machine. A letter carries a message from a sender client to a recipient
// client via exactly one carrier, progressing queued -> dispatched ->
// delivered with a single allowed regression (dispatched -> queued recall).
//
// The package also holds the derived, side-effect-free computations over a
// letter's recorded state: the measured delivery time of a delivered letter
// and the 24-hour overdue check for dispatched ones. Overdue detection is
// computed on demand from timestamps; nothing in this package schedules work.
package letter
