package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/playspot/arena-scheduler/internal/config"
	"github.com/playspot/arena-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Owner{},
		&models.Arena{},
		&models.Branch{},
		&models.Court{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// At most one non-cancelled booking per (court, date, startTime).
	// Cancelled rows fall outside the index so a cancelled slot can be
	// rebooked, and a concurrent double-write fails fast with a unique
	// violation instead of double-booking.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
        ON bookings (court_id, date, start_time)
        WHERE status <> 'cancelled'
    `).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create slot uniqueness index")
	}

	return db
}
