package dto

import "github.com/shopspring/decimal"

// ProfitLossRow is one per-design line of the profit/loss report. Lots with
// zero meters sold never appear.
type ProfitLossRow struct {
	CompanyName       string          `json:"company_name"`
	DesignCode        string          `json:"design_code"`
	MetersSold        decimal.Decimal `json:"meters_sold"`
	CostPricePerMeter decimal.Decimal `json:"cost_price_per_meter"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	Profit            decimal.Decimal `json:"profit"`
	ProfitPercentage  decimal.Decimal `json:"profit_percentage"`
}
