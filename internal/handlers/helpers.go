package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/playspot/arena-scheduler/internal/middleware"
	"github.com/playspot/arena-scheduler/internal/models"
)

// actor is the authenticated caller: an owner with a record id, or the
// env-credentialed admin (OwnerID 0).
type actor struct {
	OwnerID uint
	Role    string
}

func (a actor) isAdmin() bool {
	return a.Role == middleware.RoleAdmin
}

func currentActor(c *gin.Context) actor {
	return actor{
		OwnerID: c.MustGet(middleware.ContextOwnerID).(uint),
		Role:    c.MustGet(middleware.ContextUserRole).(string),
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ownsArena reports whether the actor may manage the arena. Admins may
// manage everything.
func ownsArena(db *gorm.DB, a actor, arenaID uint) (*models.Arena, bool) {
	var arena models.Arena
	if err := db.First(&arena, arenaID).Error; err != nil {
		return nil, false
	}
	if a.isAdmin() || arena.OwnerID == a.OwnerID {
		return &arena, true
	}
	return nil, false
}
