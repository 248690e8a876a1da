package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one bill: a kameez cut plus a shalwar cut sold together.
//
// Two linkage schemes coexist. Legacy rows carry only InventoryID and draw
// both cuts from that single lot. Split rows carry KameezInventoryID and/or
// ShalwarInventoryID, each cut drawn from its own lot. A record never uses
// both schemes at once — bill creation rejects the combination — so the
// read-time aggregation subsets are a true partition of the sales set.
//
// Company/design labels are snapshots taken at billing time; later inventory
// edits do not retouch them. Records are immutable once created.
type SalesRecord struct {
	ID                 uint            `gorm:"primaryKey"`
	InventoryID        *uint           `gorm:"index"`
	KameezInventoryID  *uint           `gorm:"index"`
	ShalwarInventoryID *uint           `gorm:"index"`
	CompanyName        *string         `gorm:"size:255"`
	DesignCode         *string         `gorm:"size:100"`
	KameezCompanyName  *string         `gorm:"size:255"`
	KameezDesignCode   *string         `gorm:"size:100"`
	ShalwarCompanyName *string         `gorm:"size:255"`
	ShalwarDesignCode  *string         `gorm:"size:100"`
	KameezMeters       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	KameezRate         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	KameezTotal        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ShalwarMeters      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ShalwarRate        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ShalwarTotal       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	GrandTotal         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt          time.Time

	Lot        *Inventory `gorm:"foreignKey:InventoryID"`
	KameezLot  *Inventory `gorm:"foreignKey:KameezInventoryID"`
	ShalwarLot *Inventory `gorm:"foreignKey:ShalwarInventoryID"`
}

func (SalesRecord) TableName() string { return "sales_records" }
