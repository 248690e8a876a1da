package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBillRequest describes one composite sale. Linkage is optional and
// mutually exclusive: either the legacy whole-bill InventoryID, or the split
// per-cut ids, or none at all (labels then come from the caller).
type CreateBillRequest struct {
	InventoryID        *uint           `json:"inventory_id"`
	KameezInventoryID  *uint           `json:"kameez_inventory_id"`
	ShalwarInventoryID *uint           `json:"shalwar_inventory_id"`
	CompanyName        *string         `json:"company_name"`
	DesignCode         *string         `json:"design_code"`
	KameezCompanyName  *string         `json:"kameez_company_name"`
	KameezDesignCode   *string         `json:"kameez_design_code"`
	ShalwarCompanyName *string         `json:"shalwar_company_name"`
	ShalwarDesignCode  *string         `json:"shalwar_design_code"`
	KameezMeters       decimal.Decimal `json:"kameez_meters"  validate:"min=0"`
	KameezRate         decimal.Decimal `json:"kameez_rate"    validate:"min=0"`
	ShalwarMeters      decimal.Decimal `json:"shalwar_meters" validate:"min=0"`
	ShalwarRate        decimal.Decimal `json:"shalwar_rate"   validate:"min=0"`
}

type BillResponse struct {
	ID                 uint            `json:"id"`
	InventoryID        *uint           `json:"inventory_id"`
	KameezInventoryID  *uint           `json:"kameez_inventory_id"`
	ShalwarInventoryID *uint           `json:"shalwar_inventory_id"`
	CompanyName        *string         `json:"company_name"`
	DesignCode         *string         `json:"design_code"`
	KameezCompanyName  *string         `json:"kameez_company_name"`
	KameezDesignCode   *string         `json:"kameez_design_code"`
	ShalwarCompanyName *string         `json:"shalwar_company_name"`
	ShalwarDesignCode  *string         `json:"shalwar_design_code"`
	KameezMeters       decimal.Decimal `json:"kameez_meters"`
	KameezRate         decimal.Decimal `json:"kameez_rate"`
	KameezTotal        decimal.Decimal `json:"kameez_total"`
	ShalwarMeters      decimal.Decimal `json:"shalwar_meters"`
	ShalwarRate        decimal.Decimal `json:"shalwar_rate"`
	ShalwarTotal       decimal.Decimal `json:"shalwar_total"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
	CreatedAt          time.Time       `json:"created_at"`
}
