package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/playspot/arena-scheduler/internal/audit"
	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/httpresp"
	"github.com/playspot/arena-scheduler/internal/models"
)

type CourtHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCourtHandler(db *gorm.DB, audit *audit.Dispatcher) *CourtHandler {
	return &CourtHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CourtRequest struct {
	BranchID uint `json:"branch_id" binding:"required"`

	Name      string `json:"name" binding:"required"`
	SportType string `json:"sport_type" binding:"required"`

	BasePrice    int `json:"base_price" binding:"required"`
	SlotDuration int `json:"slot_duration"`

	Schedule   models.WeekSchedule    `json:"schedule"`
	DayPrices  []models.DayPrice      `json:"day_prices"`
	TimePrices []models.TimeSlabPrice `json:"time_prices"`

	MaxPlayers int    `json:"max_players"`
	CourtNotes string `json:"court_notes"`
}

// --------- Handlers ---------

func (h *CourtHandler) List(c *gin.Context) {
	a := currentActor(c)

	q := h.db.Order("id ASC")

	if branchID := c.Query("branchId"); branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}

	if !a.isAdmin() {
		var arenaIDs []uint
		h.db.Model(&models.Arena{}).
			Where("owner_id = ?", a.OwnerID).
			Pluck("id", &arenaIDs)

		if len(arenaIDs) == 0 {
			httpresp.List(c, []models.Court{})
			return
		}
		q = q.Where("arena_id IN ?", arenaIDs)
	}

	var courts []models.Court
	if err := q.Find(&courts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_courts", "Failed to fetch courts.")
		return
	}

	httpresp.List(c, courts)
}

func (h *CourtHandler) Create(c *gin.Context) {
	a := currentActor(c)

	var req CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var branch models.Branch
	if err := h.db.First(&branch, req.BranchID).Error; err != nil {
		httperr.NotFound(c, "branch_not_found", "Branch not found.")
		return
	}

	arena, allowed := ownsArena(h.db, a, branch.ArenaID)
	if !allowed {
		httperr.NotFound(c, "branch_not_found", "Branch not found.")
		return
	}

	schedule := req.Schedule
	if len(schedule) == 0 {
		schedule = models.DefaultWeekSchedule()
	}

	warnings, err := validateCourtRules(schedule, req.SlotDuration, req.TimePrices)
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule", "Open days need openingTime < closingTime.")
		return
	}

	slotDuration := req.SlotDuration
	if slotDuration <= 0 {
		slotDuration = 60
	}

	court := models.Court{
		BranchID:     branch.ID,
		ArenaID:      arena.ID,
		Name:         req.Name,
		SportType:    req.SportType,
		BasePrice:    req.BasePrice,
		SlotDuration: slotDuration,
		Schedule:     schedule,
		DayPrices:    req.DayPrices,
		TimePrices:   req.TimePrices,
		MaxPlayers:   req.MaxPlayers,
		CourtNotes:   req.CourtNotes,
		IsActive:     true,
	}

	if err := h.db.Create(&court).Error; err != nil {
		httperr.Internal(c, "failed_to_create_court", "Failed to create court.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ArenaID:  arena.ID,
		OwnerID:  &a.OwnerID,
		Action:   "court_created",
		Entity:   "court",
		EntityID: &court.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"court":    court,
		"warnings": warnings,
	})
}

func (h *CourtHandler) Get(c *gin.Context) {
	a := currentActor(c)

	court, ok := h.courtForActor(c, a)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, court)
}

// Update replaces the schedule and price rules wholesale; partial rule
// edits are not supported.
func (h *CourtHandler) Update(c *gin.Context) {
	a := currentActor(c)

	court, ok := h.courtForActor(c, a)
	if !ok {
		return
	}

	var req CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	schedule := req.Schedule
	if len(schedule) == 0 {
		schedule = court.Schedule
	}

	warnings, err := validateCourtRules(schedule, req.SlotDuration, req.TimePrices)
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule", "Open days need openingTime < closingTime.")
		return
	}

	court.Name = req.Name
	court.SportType = req.SportType
	court.BasePrice = req.BasePrice
	if req.SlotDuration > 0 {
		court.SlotDuration = req.SlotDuration
	}
	court.Schedule = schedule
	court.DayPrices = req.DayPrices
	court.TimePrices = req.TimePrices
	court.MaxPlayers = req.MaxPlayers
	court.CourtNotes = req.CourtNotes

	if err := h.db.Save(court).Error; err != nil {
		httperr.Internal(c, "failed_to_update_court", "Failed to update court.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"court":    court,
		"warnings": warnings,
	})
}

func (h *CourtHandler) Delete(c *gin.Context) {
	a := currentActor(c)

	court, ok := h.courtForActor(c, a)
	if !ok {
		return
	}

	court.IsActive = false
	if err := h.db.Save(court).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_court", "Failed to delete court.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Court deactivated"})
}

func (h *CourtHandler) courtForActor(c *gin.Context, a actor) (*models.Court, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid court id.")
		return nil, false
	}

	var court models.Court
	if err := h.db.First(&court, id).Error; err != nil {
		httperr.NotFound(c, "court_not_found", "Court not found.")
		return nil, false
	}

	if _, allowed := ownsArena(h.db, a, court.ArenaID); !allowed {
		httperr.NotFound(c, "court_not_found", "Court not found.")
		return nil, false
	}

	return &court, true
}

// validateCourtRules enforces the schedule invariant and collects
// slab-overlap warnings. Overlapping slabs are legal (first declared
// wins at pricing time) but almost always a configuration mistake.
func validateCourtRules(
	schedule models.WeekSchedule,
	slotDuration int,
	slabs []models.TimeSlabPrice,
) ([]string, error) {

	if err := domain.ValidateWeekSchedule(schedule); err != nil {
		return nil, err
	}
	if slotDuration < 0 {
		return nil, httperr.ErrBusiness(domain.CodeInvalidSchedule)
	}

	var warnings []string
	for _, overlap := range domain.OverlappingSlabs(slabs) {
		warnings = append(warnings, slabOverlapWarning(slabs, overlap))
	}
	return warnings, nil
}

func slabOverlapWarning(slabs []models.TimeSlabPrice, o domain.SlabOverlap) string {
	first := slabs[o.First]
	second := slabs[o.Second]
	return "time price " + second.FromTime + "-" + second.ToTime +
		" overlaps " + first.FromTime + "-" + first.ToTime +
		" on " + o.Day + "; the earlier rule wins for shared slots"
}
