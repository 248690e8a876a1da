package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory is one lot of cloth: a company + design code batch bought as
// whole thans and tracked in meters. TotalMeters and TotalStockValue are
// denormalized caches recomputed on every write — never set independently.
type Inventory struct {
	ID                uint            `gorm:"primaryKey"`
	CompanyName       string          `gorm:"size:255;not null"`
	DesignCode        string          `gorm:"size:100;not null"`
	TotalThans        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MetersPerThan     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalMeters       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CostPricePerMeter decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalStockValue   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt         time.Time
}

// TableName overrides GORM's default pluralization (inventories → inventory).
func (Inventory) TableName() string { return "inventory" }
