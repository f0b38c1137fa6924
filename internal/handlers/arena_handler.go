package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/playspot/arena-scheduler/internal/audit"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/httpresp"
	"github.com/playspot/arena-scheduler/internal/models"
)

type ArenaHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewArenaHandler(db *gorm.DB, audit *audit.Dispatcher) *ArenaHandler {
	return &ArenaHandler{db: db, audit: audit}
}

// --------- Requests ---------

type ArenaRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description" binding:"required"`
	Logo        string `json:"logo"`
}

// --------- Handlers ---------

func (h *ArenaHandler) List(c *gin.Context) {
	a := currentActor(c)

	q := h.db.Order("created_at DESC")
	if !a.isAdmin() {
		q = q.Where("owner_id = ?", a.OwnerID)
	}

	var arenas []models.Arena
	if err := q.Find(&arenas).Error; err != nil {
		httperr.Internal(c, "failed_to_list_arenas", "Failed to fetch arenas.")
		return
	}

	httpresp.List(c, arenas)
}

func (h *ArenaHandler) Create(c *gin.Context) {
	a := currentActor(c)

	var req ArenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.Arena{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "An arena with this slug already exists.")
		return
	}

	arena := models.Arena{
		OwnerID:     a.OwnerID,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Logo:        req.Logo,
		IsApproved:  false,
		IsActive:    true,
	}

	if err := h.db.Create(&arena).Error; err != nil {
		httperr.Internal(c, "failed_to_create_arena", "Failed to create arena.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ArenaID:  arena.ID,
		OwnerID:  &a.OwnerID,
		Action:   "arena_created",
		Entity:   "arena",
		EntityID: &arena.ID,
	})

	c.JSON(http.StatusCreated, arena)
}

func (h *ArenaHandler) Get(c *gin.Context) {
	a := currentActor(c)

	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid arena id.")
		return
	}

	arena, allowed := ownsArena(h.db, a, id)
	if !allowed {
		httperr.NotFound(c, "arena_not_found", "Arena not found.")
		return
	}

	c.JSON(http.StatusOK, arena)
}

func (h *ArenaHandler) Update(c *gin.Context) {
	a := currentActor(c)

	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid arena id.")
		return
	}

	arena, allowed := ownsArena(h.db, a, id)
	if !allowed {
		httperr.NotFound(c, "arena_not_found", "Arena not found.")
		return
	}

	var req ArenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	arena.Name = req.Name
	arena.Description = req.Description
	arena.Logo = req.Logo

	if err := h.db.Save(arena).Error; err != nil {
		httperr.Internal(c, "failed_to_update_arena", "Failed to update arena.")
		return
	}

	c.JSON(http.StatusOK, arena)
}

// Delete deactivates the arena rather than removing rows; bookings keep
// referencing it for history.
func (h *ArenaHandler) Delete(c *gin.Context) {
	a := currentActor(c)

	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid arena id.")
		return
	}

	arena, allowed := ownsArena(h.db, a, id)
	if !allowed {
		httperr.NotFound(c, "arena_not_found", "Arena not found.")
		return
	}

	arena.IsActive = false
	if err := h.db.Save(arena).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_arena", "Failed to delete arena.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Arena deactivated"})
}
