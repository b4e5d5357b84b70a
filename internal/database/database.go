package database

import (
	"fmt"
	"time"

	"control-room-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool. Zero fields take the package defaults.
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

func (o Options) withDefaults() Options {
	if o.LogLevel == 0 {
		o.LogLevel = logger.Error
	}
	if o.MaxOpenConns == 0 {
		o.MaxOpenConns = 20
	}
	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 10
	}
	if o.ConnMaxLifetime == 0 {
		o.ConnMaxLifetime = 30 * time.Minute
	}
	if o.ConnMaxIdleTime == 0 {
		o.ConnMaxIdleTime = 10 * time.Minute
	}
	return o
}

// Models lists every table in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Position{},
		&models.Employee{},
		&models.ShiftGroup{},
		&models.GroupMembership{},
		&models.Shift{},
		&models.ShiftAttendance{},
		&models.Equipment{},
		&models.Tank{},
		&models.ScheduledTask{},
		&models.OperationalParameter{},
		&models.EquipmentStatusLog{},
		&models.EventLog{},
		&models.TaskLog{},
		&models.NoveltyLog{},
		&models.GenerationRamp{},
		&models.TankReading{},
		&models.OperationalReading{},
		&models.MaintenanceTicket{},
		&models.License{},
	}
}

// Initialize connects to Postgres and, unless SkipMigrate is set, brings the schema up to date.
// TranslateError surfaces unique and foreign key violations as gorm.ErrDuplicatedKey
// and gorm.ErrForeignKeyViolated.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(o.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(o.ConnMaxIdleTime)

	if o.SkipMigrate {
		return db, nil
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates tables and the constraints AutoMigrate cannot express
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// At most one shift may be OPEN at any time
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_shifts_single_open ON shifts (status) WHERE status = 'OPEN'`).Error; err != nil {
		return fmt.Errorf("create single open shift index: %w", err)
	}

	return nil
}
