package booking

// Business error codes returned by the engine. Handlers map them onto
// HTTP statuses; nothing is swallowed inside the engine itself.
const (
	// NotFound class: a referenced entity does not exist.
	CodeCourtNotFound  = "court_not_found"
	CodeBranchNotFound = "branch_not_found"
	CodeArenaNotFound  = "arena_not_found"

	// ContextMismatch: court, branch and arena all exist but are not
	// linked to each other as the request claims.
	CodeContextMismatch = "booking_context_mismatch"

	// SlotTaken: a non-cancelled booking already holds the slot. The
	// client re-fetches availability and picks another slot.
	CodeSlotTaken = "slot_taken"

	// ValidationError class.
	CodeMissingFields   = "missing_required_fields"
	CodeInvalidDate     = "invalid_date"
	CodeInvalidSchedule = "invalid_schedule"
	CodeInvalidStatus   = "invalid_status"
)
