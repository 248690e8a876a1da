package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddStockRequest struct {
	CompanyName       string          `json:"company_name"         validate:"required,max=255"`
	DesignCode        string          `json:"design_code"          validate:"required,max=100"`
	TotalThans        decimal.Decimal `json:"total_thans"          validate:"min=0"`
	MetersPerThan     decimal.Decimal `json:"meters_per_than"      validate:"min=0"`
	CostPricePerMeter decimal.Decimal `json:"cost_price_per_meter" validate:"min=0"`
}

// UpdateStockRequest carries a partial update; nil fields keep their stored
// values. Derived fields are always recomputed from the post-update inputs.
type UpdateStockRequest struct {
	CompanyName       *string          `json:"company_name"         validate:"omitempty,max=255"`
	DesignCode        *string          `json:"design_code"          validate:"omitempty,max=100"`
	TotalThans        *decimal.Decimal `json:"total_thans"`
	MetersPerThan     *decimal.Decimal `json:"meters_per_than"`
	CostPricePerMeter *decimal.Decimal `json:"cost_price_per_meter"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InventoryResponse struct {
	ID                uint            `json:"id"`
	CompanyName       string          `json:"company_name"`
	DesignCode        string          `json:"design_code"`
	TotalThans        decimal.Decimal `json:"total_thans"`
	MetersPerThan     decimal.Decimal `json:"meters_per_than"`
	TotalMeters       decimal.Decimal `json:"total_meters"`
	CostPricePerMeter decimal.Decimal `json:"cost_price_per_meter"`
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`
	CreatedAt         time.Time       `json:"created_at"`
}

// InventoryStatusResponse is a lot plus its computed sold/remaining figures.
type InventoryStatusResponse struct {
	ID                  uint            `json:"id"`
	CompanyName         string          `json:"company_name"`
	DesignCode          string          `json:"design_code"`
	TotalThans          decimal.Decimal `json:"total_thans"`
	MetersPerThan       decimal.Decimal `json:"meters_per_than"`
	TotalMeters         decimal.Decimal `json:"total_meters"`
	CostPricePerMeter   decimal.Decimal `json:"cost_price_per_meter"`
	TotalStockValue     decimal.Decimal `json:"total_stock_value"`
	SoldMeters          decimal.Decimal `json:"sold_meters"`
	RemainingMeters     decimal.Decimal `json:"remaining_meters"`
	RemainingStockValue decimal.Decimal `json:"remaining_stock_value"`
}

// InventorySimpleResponse is the reduced listing used by the billing UI
// dropdown; only lots with remaining stock are returned.
type InventorySimpleResponse struct {
	ID              uint            `json:"id"`
	CompanyName     string          `json:"company_name"`
	DesignCode      string          `json:"design_code"`
	RemainingMeters decimal.Decimal `json:"remaining_meters"`
}

type DeleteStockResponse struct {
	Message string `json:"message"`
}
