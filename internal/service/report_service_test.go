package service_test

import (
	"context"
	"testing"

	"fabricpos/internal/dto"
	"fabricpos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService() (service.ReportService, *lotStore, *salesStore) {
	lots := newLotStore()
	sales := newSalesStore()
	return service.NewReportService(lots, sales), lots, sales
}

func TestProfitLossSplitSale(t *testing.T) {
	svc, lots, sales := newReportService()
	id := lots.addLot("Gul Ahmed", "GA-101", "5", "20", "50") // 100m @ 50/m
	billingSvc := service.NewBillingService(lots, sales)

	// 10m kameez at 100/m: revenue 1000, cost 500, profit 500 (100%).
	_, err := billingSvc.CreateBill(context.Background(), dto.CreateBillRequest{
		KameezInventoryID: &id,
		KameezMeters:      dec("10"),
		KameezRate:        dec("100"),
	})
	require.NoError(t, err)

	rows, err := svc.ProfitLoss(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Gul Ahmed", row.CompanyName)
	assert.True(t, row.MetersSold.Equal(dec("10")), "meters_sold = %s", row.MetersSold)
	assert.True(t, row.TotalRevenue.Equal(dec("1000")), "revenue = %s", row.TotalRevenue)
	assert.True(t, row.TotalCost.Equal(dec("500")), "cost = %s", row.TotalCost)
	assert.True(t, row.Profit.Equal(dec("500")), "profit = %s", row.Profit)
	assert.True(t, row.ProfitPercentage.Equal(dec("100")), "pct = %s", row.ProfitPercentage)
}

func TestProfitLossLegacySaleUsesGrandTotal(t *testing.T) {
	svc, lots, sales := newReportService()
	id := lots.addLot("Gul Ahmed", "GA-101", "5", "20", "50") // 100m @ 50/m
	billingSvc := service.NewBillingService(lots, sales)

	// Legacy sale: 5m @ 100 + 5m @ 90 = 950 revenue for 10m drawn.
	_, err := billingSvc.CreateBill(context.Background(), dto.CreateBillRequest{
		InventoryID:   &id,
		KameezMeters:  dec("5"),
		KameezRate:    dec("100"),
		ShalwarMeters: dec("5"),
		ShalwarRate:   dec("90"),
	})
	require.NoError(t, err)

	rows, err := svc.ProfitLoss(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.True(t, row.MetersSold.Equal(dec("10")))
	assert.True(t, row.TotalRevenue.Equal(dec("950")), "revenue = %s", row.TotalRevenue)
	assert.True(t, row.TotalCost.Equal(dec("500")))
	assert.True(t, row.Profit.Equal(dec("450")))
	assert.True(t, row.ProfitPercentage.Equal(dec("90")), "pct = %s", row.ProfitPercentage)
}

func TestProfitLossSplitBillContributesToBothLots(t *testing.T) {
	svc, lots, sales := newReportService()
	kameezLot := lots.addLot("Gul Ahmed", "GA-101", "5", "20", "50")
	shalwarLot := lots.addLot("Al Karam", "AK-550", "5", "20", "40")
	billingSvc := service.NewBillingService(lots, sales)

	_, err := billingSvc.CreateBill(context.Background(), dto.CreateBillRequest{
		KameezInventoryID:  &kameezLot,
		ShalwarInventoryID: &shalwarLot,
		KameezMeters:       dec("4"),
		KameezRate:         dec("100"),
		ShalwarMeters:      dec("6"),
		ShalwarRate:        dec("80"),
	})
	require.NoError(t, err)

	rows, err := svc.ProfitLoss(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Each lot sees only its own cut: 4m @ 100 vs cost 50, 6m @ 80 vs cost 40.
	assert.Equal(t, "GA-101", rows[0].DesignCode)
	assert.True(t, rows[0].TotalRevenue.Equal(dec("400")))
	assert.True(t, rows[0].TotalCost.Equal(dec("200")))

	assert.Equal(t, "AK-550", rows[1].DesignCode)
	assert.True(t, rows[1].TotalRevenue.Equal(dec("480")))
	assert.True(t, rows[1].TotalCost.Equal(dec("240")))
}

func TestProfitLossOmitsUnsoldLots(t *testing.T) {
	svc, lots, _ := newReportService()
	lots.addLot("Gul Ahmed", "GA-101", "5", "20", "50")

	rows, err := svc.ProfitLoss(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestProfitLossZeroCostYieldsZeroPercentage(t *testing.T) {
	svc, lots, sales := newReportService()
	id := lots.addLot("Sample", "FREE-1", "5", "20", "0") // cost 0/m
	billingSvc := service.NewBillingService(lots, sales)

	_, err := billingSvc.CreateBill(context.Background(), dto.CreateBillRequest{
		KameezInventoryID: &id,
		KameezMeters:      dec("10"),
		KameezRate:        dec("100"),
	})
	require.NoError(t, err)

	rows, err := svc.ProfitLoss(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].Profit.Equal(dec("1000")))
	assert.True(t, rows[0].ProfitPercentage.Equal(dec("0")), "pct = %s", rows[0].ProfitPercentage)
}
