package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/httpresp"
	ucBooking "github.com/playspot/arena-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler serves the owner/admin booking surface. The public
// booking surface lives in PublicHandler; both run through the same
// admission use case.
type BookingHandler struct {
	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateStatus
	list         *ucBooking.ListBookings
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateStatus,
	list *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		updateStatus: updateStatus,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CourtID  uint `json:"court_id" binding:"required"`
	BranchID uint `json:"branch_id" binding:"required"`
	ArenaID  uint `json:"arena_id" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`

	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time"`
	Duration  int    `json:"duration" binding:"required"`
	Price     int    `json:"price"`

	PaymentReferenceID string `json:"payment_reference_id"`
	NumberOfPlayers    int    `json:"number_of_players"`

	// Optional; honored verbatim when recognized, otherwise pending.
	Status string `json:"status"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	a := currentActor(c)

	filter := domain.BookingFilter{
		ArenaID: queryID(c, "arenaId"),
		CourtID: queryID(c, "courtId"),
		Date:    c.Query("date"),
	}

	if a.isAdmin() {
		filter.OwnerID = queryID(c, "ownerId")
	} else {
		// Owners only ever see their own bookings.
		filter.OwnerID = a.OwnerID
	}

	bookings, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to fetch bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// CREATE (admission)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CourtID:  req.CourtID,
		BranchID: req.BranchID,
		ArenaID:  req.ArenaID,

		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,

		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Duration:  req.Duration,
		Price:     req.Price,

		PaymentReferenceID: req.PaymentReferenceID,
		NumberOfPlayers:    req.NumberOfPlayers,

		Status: req.Status,
	})
	if err != nil {
		writeAdmissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// STATUS UPDATE
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	a := currentActor(c)

	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	actorOwnerID := a.OwnerID
	if a.isAdmin() {
		actorOwnerID = 0
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), ucBooking.UpdateStatusInput{
		BookingID:    id,
		Status:       req.Status,
		ActorOwnerID: actorOwnerID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, domain.CodeInvalidStatus):
			httperr.BadRequest(c, domain.CodeInvalidStatus, "Status must be confirmed or cancelled.")
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "unauthorized"):
			httperr.Unauthorized(c, "unauthorized", "Not your booking.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Failed to update booking.")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// HELPERS
// ======================================================

// writeAdmissionError maps the admission controller's business codes to
// HTTP responses. SlotTaken and ContextMismatch are 400-class and never
// retried server-side.
func writeAdmissionError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, domain.CodeCourtNotFound):
		httperr.NotFound(c, domain.CodeCourtNotFound, "Court not found.")
	case httperr.IsBusiness(err, domain.CodeBranchNotFound):
		httperr.NotFound(c, domain.CodeBranchNotFound, "Branch not found.")
	case httperr.IsBusiness(err, domain.CodeArenaNotFound):
		httperr.NotFound(c, domain.CodeArenaNotFound, "Arena not found.")
	case httperr.IsBusiness(err, domain.CodeContextMismatch):
		httperr.BadRequest(c, domain.CodeContextMismatch, "Court, branch and arena do not match.")
	case httperr.IsBusiness(err, domain.CodeSlotTaken):
		httperr.BadRequest(c, domain.CodeSlotTaken, "This slot is already booked.")
	case httperr.IsBusiness(err, domain.CodeMissingFields):
		httperr.BadRequest(c, domain.CodeMissingFields, "Missing required booking fields.")
	case httperr.IsBusiness(err, domain.CodeInvalidDate):
		httperr.BadRequest(c, domain.CodeInvalidDate, "Invalid date.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
	}
}

func queryID(c *gin.Context, name string) uint {
	v := c.Query(name)
	if v == "" {
		return 0
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
