package infra

import (
	"time"

	"fabricpos/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update both tables, then applies the idempotent column patches that
// bring a pre-split sales_records table forward.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	// Recycle connections so a restarted or failed-over Postgres doesn't leave
	// the pool holding dead sockets.
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(&model.Inventory{}, &model.SalesRecord{}); err != nil {
		return nil, err
	}

	applySalesColumnPatches(db)

	return db, nil
}

// applySalesColumnPatches adds the split-linkage and label columns that were
// introduced after the first deployment, so an old sales_records table keeps
// working without a manual migration. ADD COLUMN IF NOT EXISTS makes every
// statement idempotent. Failures are logged and skipped — startup must never
// block on a schema that is merely older than the code.
func applySalesColumnPatches(db *gorm.DB) {
	patches := []string{
		`ALTER TABLE sales_records ADD COLUMN IF NOT EXISTS inventory_id INTEGER REFERENCES inventory(id)`,
		`ALTER TABLE sales_records ADD COLUMN IF NOT EXISTS company_name VARCHAR(255)`,
		`ALTER TABLE sales_records ADD COLUMN IF NOT EXISTS design_code VARCHAR(100)`,
		`ALTER TABLE sales_records ADD COLUMN IF NOT EXISTS kameez_inventory_id INTEGER REFERENCES inventory(id)`,
		`ALTER TABLE sales_records ADD COLUMN IF NOT EXISTS shalwar_inventory_id INTEGER REFERENCES inventory(id)`,
		`ALTER TABLE sales_records ADD COLUMN IF NOT EXISTS kameez_company_name VARCHAR(255)`,
		`ALTER TABLE sales_records ADD COLUMN IF NOT EXISTS kameez_design_code VARCHAR(100)`,
		`ALTER TABLE sales_records ADD COLUMN IF NOT EXISTS shalwar_company_name VARCHAR(255)`,
		`ALTER TABLE sales_records ADD COLUMN IF NOT EXISTS shalwar_design_code VARCHAR(100)`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			log.Warn().Err(err).Str("patch", sql).Msg("schema patch skipped")
		}
	}
}
