package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/playspot/arena-scheduler/internal/config"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/middleware"
	"github.com/playspot/arena-scheduler/internal/models"
	"github.com/playspot/arena-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.Owner{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to create account.")
		return
	}

	owner := models.Owner{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         middleware.RoleOwner,
		AccountType:  "free",
		IsActive:     true,
	}

	if err := h.db.Create(&owner).Error; err != nil {
		httperr.Internal(c, "failed_to_create_owner", "Failed to create account.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Account created successfully",
		"owner_id": owner.ID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Admin credentials come from the environment, not the database.
	if h.config.AdminEmail != "" &&
		email == strings.ToLower(h.config.AdminEmail) &&
		req.Password == h.config.AdminPassword {

		token, err := h.generateToken(0, middleware.RoleAdmin)
		if err != nil {
			httperr.Internal(c, "failed_to_generate_token", "Login failed.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  gin.H{"email": email, "role": middleware.RoleAdmin},
			"token": token,
		})
		return
	}

	var owner models.Owner
	if err := h.db.Where("email = ?", email).First(&owner).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	if !owner.IsActive {
		httperr.Unauthorized(c, "account_deactivated", "Your account has been deactivated.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(owner.ID, owner.Role)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Login failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    owner.ID,
			"name":  owner.Name,
			"email": owner.Email,
			"phone": owner.Phone,
			"role":  owner.Role,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(ownerID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  ownerID,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
