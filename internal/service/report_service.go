package service

import (
	"context"

	"fabricpos/internal/dto"
	"fabricpos/internal/repository"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ReportService produces the per-design profit/loss rollup.
type ReportService interface {
	ProfitLoss(ctx context.Context) ([]dto.ProfitLossRow, error)
}

type reportService struct {
	lots  repository.InventoryRepository
	sales repository.SalesRepository
}

func NewReportService(lots repository.InventoryRepository, sales repository.SalesRepository) ReportService {
	return &reportService{lots: lots, sales: sales}
}

// ProfitLoss walks every lot, partitions its sales by linkage scheme, and
// rolls up revenue, cost and profit. Lots with nothing sold are omitted.
func (s *reportService) ProfitLoss(ctx context.Context) ([]dto.ProfitLossRow, error) {
	lots, err := s.lots.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ProfitLossRow, 0, len(lots))
	for i := range lots {
		lot := &lots[i]

		var sales lotSales
		if sales.legacy, err = s.sales.ListByLegacyLot(ctx, lot.ID); err != nil {
			return nil, err
		}
		if sales.kameez, err = s.sales.ListByKameezLot(ctx, lot.ID); err != nil {
			return nil, err
		}
		if sales.shalwar, err = s.sales.ListByShalwarLot(ctx, lot.ID); err != nil {
			return nil, err
		}

		metersSold, revenue, cost := profitLoss(lot, sales)
		if !metersSold.IsPositive() {
			continue
		}

		profit := revenue.Sub(cost)
		pct := decimal.Zero
		if cost.IsPositive() {
			pct = profit.Div(cost).Mul(oneHundred)
		}

		result = append(result, dto.ProfitLossRow{
			CompanyName:       lot.CompanyName,
			DesignCode:        lot.DesignCode,
			MetersSold:        metersSold,
			CostPricePerMeter: lot.CostPricePerMeter,
			TotalCost:         cost,
			TotalRevenue:      revenue,
			Profit:            profit,
			ProfitPercentage:  pct,
		})
	}
	return result, nil
}
