package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/playspot/arena-scheduler/internal/models"
)

type Logger struct {
	db *gorm.DB
}

// New builds an audit logger. A nil db turns it into a no-op.
func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	arenaID uint,
	ownerID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	if l.db == nil {
		return nil
	}

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ArenaID:  arenaID,
		OwnerID:  ownerID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
