package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether s is one of the recognized status values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus resolves the status a new booking is persisted with.
// A recognized requested value is honored verbatim; anything else falls
// back to pending. The public flow intentionally requests confirmed so
// the slot is held as soon as WhatsApp contact is initiated.
func InitialStatus(requested string) Status {
	if s := Status(requested); s.IsValid() {
		return s
	}
	return StatusPending
}

// CanTransitionTo limits owner/admin status updates: a stored booking
// only ever moves to confirmed or cancelled, never back to pending, and
// bookings are never hard-deleted here.
func CanTransitionTo(target Status) bool {
	return target == StatusConfirmed || target == StatusCancelled
}
