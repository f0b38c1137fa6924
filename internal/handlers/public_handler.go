package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/httperr"
	ucBooking "github.com/playspot/arena-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler is the unauthenticated booking surface: the arena page,
// the availability query and the public booking flow.
type PublicHandler struct {
	repo         domain.Repository
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
}

func NewPublicHandler(
	repo domain.Repository,
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availability,
		create:       create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicBookingRequest struct {
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
}

////////////////////////////////////////////////////////
// ARENA PAGE
////////////////////////////////////////////////////////

// GetArena returns the public booking page payload. Only approved
// active arenas with at least one approved branch are visible.
func (h *PublicHandler) GetArena(c *gin.Context) {
	slug := c.Param("slug")

	arena, err := h.repo.GetActiveArenaBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "arena_not_found", "Arena not found.")
		return
	}

	branches, err := h.repo.ListApprovedBranches(c.Request.Context(), arena.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_arena", "Failed to fetch arena details.")
		return
	}

	if len(branches) == 0 {
		httperr.NotFound(c, "arena_not_available",
			"This arena is not yet available for booking.")
		return
	}

	courts, err := h.repo.ListActiveCourts(c.Request.Context(), arena.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_arena", "Failed to fetch arena details.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"arena":    arena,
		"branches": branches,
		"courts":   courts,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	courtID := queryID(c, "courtId")
	date := c.Query("date")

	if courtID == 0 || date == "" {
		httperr.BadRequest(c, "missing_params", "courtId and date are required.")
		return
	}

	result, err := h.availability.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		CourtID: courtID,
		Date:    date,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, domain.CodeCourtNotFound):
			httperr.NotFound(c, domain.CodeCourtNotFound, "Court not found.")
		case httperr.IsBusiness(err, domain.CodeInvalidDate):
			httperr.BadRequest(c, domain.CodeInvalidDate, "Invalid date.")
		default:
			httperr.Internal(c, "availability_failed", "Failed to compute slots.")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

// CreateBooking admits a public booking as confirmed so the slot is
// held as soon as WhatsApp contact is initiated.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
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

		Status: string(domain.StatusConfirmed),
	})
	if err != nil {
		writeAdmissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking request submitted",
		"booking": b,
	})
}
