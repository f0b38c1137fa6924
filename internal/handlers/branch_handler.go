package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/playspot/arena-scheduler/internal/audit"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/httpresp"
	"github.com/playspot/arena-scheduler/internal/models"
	"github.com/playspot/arena-scheduler/internal/storage"
)

type BranchHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	uploader *storage.Uploader
}

func NewBranchHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	uploader *storage.Uploader,
) *BranchHandler {
	return &BranchHandler{db: db, audit: audit, uploader: uploader}
}

// --------- Requests ---------

type BranchRequest struct {
	ArenaID        uint   `json:"arena_id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	GoogleMapLink  string `json:"google_map_link"`
	City           string `json:"city" binding:"required"`
	Area           string `json:"area" binding:"required"`
	WhatsappNumber string `json:"whatsapp_number" binding:"required"`

	PaymentBankName      string `json:"payment_bank_name"`
	PaymentAccountNumber string `json:"payment_account_number"`
	PaymentIban          string `json:"payment_iban"`
	PaymentAccountTitle  string `json:"payment_account_title"`
	PaymentOtherMethods  string `json:"payment_other_methods"`
}

// --------- Handlers ---------

func (h *BranchHandler) List(c *gin.Context) {
	a := currentActor(c)

	q := h.db.Order("created_at DESC")

	if arenaID := c.Query("arenaId"); arenaID != "" {
		q = q.Where("arena_id = ?", arenaID)
	}

	if !a.isAdmin() {
		var arenaIDs []uint
		h.db.Model(&models.Arena{}).
			Where("owner_id = ?", a.OwnerID).
			Pluck("id", &arenaIDs)

		if len(arenaIDs) == 0 {
			httpresp.List(c, []models.Branch{})
			return
		}
		q = q.Where("arena_id IN ?", arenaIDs)
	}

	var branches []models.Branch
	if err := q.Find(&branches).Error; err != nil {
		httperr.Internal(c, "failed_to_list_branches", "Failed to fetch branches.")
		return
	}

	httpresp.List(c, branches)
}

func (h *BranchHandler) Create(c *gin.Context) {
	a := currentActor(c)

	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	arena, allowed := ownsArena(h.db, a, req.ArenaID)
	if !allowed {
		httperr.NotFound(c, "arena_not_found", "Arena not found.")
		return
	}

	branch := models.Branch{
		ArenaID:        arena.ID,
		Name:           req.Name,
		Address:        req.Address,
		GoogleMapLink:  req.GoogleMapLink,
		City:           req.City,
		Area:           req.Area,
		WhatsappNumber: req.WhatsappNumber,

		PaymentBankName:      req.PaymentBankName,
		PaymentAccountNumber: req.PaymentAccountNumber,
		PaymentIban:          req.PaymentIban,
		PaymentAccountTitle:  req.PaymentAccountTitle,
		PaymentOtherMethods:  req.PaymentOtherMethods,

		IsApproved: false,
		IsActive:   true,
	}

	if err := h.db.Create(&branch).Error; err != nil {
		httperr.Internal(c, "failed_to_create_branch", "Failed to create branch.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ArenaID:  arena.ID,
		OwnerID:  &a.OwnerID,
		Action:   "branch_created",
		Entity:   "branch",
		EntityID: &branch.ID,
	})

	c.JSON(http.StatusCreated, branch)
}

func (h *BranchHandler) Get(c *gin.Context) {
	a := currentActor(c)

	branch, ok := h.branchForActor(c, a)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, branch)
}

func (h *BranchHandler) Update(c *gin.Context) {
	a := currentActor(c)

	branch, ok := h.branchForActor(c, a)
	if !ok {
		return
	}

	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	branch.Name = req.Name
	branch.Address = req.Address
	branch.GoogleMapLink = req.GoogleMapLink
	branch.City = req.City
	branch.Area = req.Area
	branch.WhatsappNumber = req.WhatsappNumber
	branch.PaymentBankName = req.PaymentBankName
	branch.PaymentAccountNumber = req.PaymentAccountNumber
	branch.PaymentIban = req.PaymentIban
	branch.PaymentAccountTitle = req.PaymentAccountTitle
	branch.PaymentOtherMethods = req.PaymentOtherMethods

	if err := h.db.Save(branch).Error; err != nil {
		httperr.Internal(c, "failed_to_update_branch", "Failed to update branch.")
		return
	}

	c.JSON(http.StatusOK, branch)
}

func (h *BranchHandler) Delete(c *gin.Context) {
	a := currentActor(c)

	branch, ok := h.branchForActor(c, a)
	if !ok {
		return
	}

	branch.IsActive = false
	if err := h.db.Save(branch).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_branch", "Failed to delete branch.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Branch deactivated"})
}

// UploadImage stores one branch photo: multipart field "image",
// re-encoded as webp and served from the configured bucket.
func (h *BranchHandler) UploadImage(c *gin.Context) {
	a := currentActor(c)

	if h.uploader == nil {
		httperr.Internal(c, "uploads_disabled", "Image storage is not configured.")
		return
	}

	branch, ok := h.branchForActor(c, a)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), "branches", file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Failed to store image.")
		return
	}

	branch.Images = append(branch.Images, url)
	if err := h.db.Save(branch).Error; err != nil {
		httperr.Internal(c, "failed_to_update_branch", "Failed to attach image.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url, "images": branch.Images})
}

// branchForActor loads the branch from :id and checks arena ownership.
// It writes the error response itself when the branch is unavailable.
func (h *BranchHandler) branchForActor(c *gin.Context, a actor) (*models.Branch, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid branch id.")
		return nil, false
	}

	var branch models.Branch
	if err := h.db.First(&branch, id).Error; err != nil {
		httperr.NotFound(c, "branch_not_found", "Branch not found.")
		return nil, false
	}

	if _, allowed := ownsArena(h.db, a, branch.ArenaID); !allowed {
		httperr.NotFound(c, "branch_not_found", "Branch not found.")
		return nil, false
	}

	return &branch, true
}
