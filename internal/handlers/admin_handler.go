package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/playspot/arena-scheduler/internal/audit"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// AdminHandler holds the approval switches. Arenas and branches start
// unapproved and stay invisible to the public surface until an admin
// flips them here.
type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, audit *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, audit: audit}
}

type ApprovalRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

type OwnerActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ======================================================
// ARENA APPROVAL
// ======================================================

func (h *AdminHandler) SetArenaApproval(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid arena id.")
		return
	}

	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var arena models.Arena
	if err := h.db.First(&arena, id).Error; err != nil {
		httperr.NotFound(c, "arena_not_found", "Arena not found.")
		return
	}

	arena.IsApproved = *req.IsApproved
	if err := h.db.Save(&arena).Error; err != nil {
		httperr.Internal(c, "failed_to_update_arena", "Failed to update arena.")
		return
	}

	action := "arena_approved"
	if !arena.IsApproved {
		action = "arena_unapproved"
	}
	h.audit.Dispatch(audit.Event{
		ArenaID:  arena.ID,
		Action:   action,
		Entity:   "arena",
		EntityID: &arena.ID,
	})

	c.JSON(http.StatusOK, arena)
}

// ======================================================
// BRANCH APPROVAL
// ======================================================

func (h *AdminHandler) SetBranchApproval(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid branch id.")
		return
	}

	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var branch models.Branch
	if err := h.db.First(&branch, id).Error; err != nil {
		httperr.NotFound(c, "branch_not_found", "Branch not found.")
		return
	}

	branch.IsApproved = *req.IsApproved
	if err := h.db.Save(&branch).Error; err != nil {
		httperr.Internal(c, "failed_to_update_branch", "Failed to update branch.")
		return
	}

	action := "branch_approved"
	if !branch.IsApproved {
		action = "branch_unapproved"
	}
	h.audit.Dispatch(audit.Event{
		ArenaID:  branch.ArenaID,
		Action:   action,
		Entity:   "branch",
		EntityID: &branch.ID,
	})

	c.JSON(http.StatusOK, branch)
}

// ======================================================
// OWNER ACTIVATION
// ======================================================

// SetOwnerActive blocks or restores an owner account. Deactivated
// owners fail login; their arenas are untouched.
func (h *AdminHandler) SetOwnerActive(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid owner id.")
		return
	}

	var req OwnerActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var owner models.Owner
	if err := h.db.First(&owner, id).Error; err != nil {
		httperr.NotFound(c, "owner_not_found", "Owner not found.")
		return
	}

	owner.IsActive = *req.IsActive
	if err := h.db.Save(&owner).Error; err != nil {
		httperr.Internal(c, "failed_to_update_owner", "Failed to update owner.")
		return
	}

	c.JSON(http.StatusOK, owner)
}

// ======================================================
// OWNER LISTING
// ======================================================

func (h *AdminHandler) ListOwners(c *gin.Context) {
	var owners []models.Owner
	if err := h.db.Order("created_at DESC").Find(&owners).Error; err != nil {
		httperr.Internal(c, "failed_to_list_owners", "Failed to fetch owners.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": owners, "count": len(owners)})
}
