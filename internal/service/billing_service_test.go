package service_test

import (
	"context"
	"testing"

	"fabricpos/internal/dto"
	"fabricpos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBillingService() (service.BillingService, *lotStore, *salesStore) {
	lots := newLotStore()
	sales := newSalesStore()
	return service.NewBillingService(lots, sales), lots, sales
}

func TestCreateBillTotals(t *testing.T) {
	svc, _, _ := newBillingService()

	// No linkage: totals only, no stock validation.
	resp, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		CompanyName:   ptr("Gul Ahmed"),
		DesignCode:    ptr("GA-101"),
		KameezMeters:  dec("5"),
		KameezRate:    dec("100"),
		ShalwarMeters: dec("3"),
		ShalwarRate:   dec("150"),
	})
	require.NoError(t, err)

	assert.True(t, resp.KameezTotal.Equal(dec("500")), "kameez_total = %s", resp.KameezTotal)
	assert.True(t, resp.ShalwarTotal.Equal(dec("450")), "shalwar_total = %s", resp.ShalwarTotal)
	assert.True(t, resp.GrandTotal.Equal(dec("950")), "grand_total = %s", resp.GrandTotal)
	assert.Equal(t, "Gul Ahmed", *resp.CompanyName)
}

func TestCreateBillSplitInsufficientStock(t *testing.T) {
	svc, lots, _ := newBillingService()
	id := lots.addLot("Gul Ahmed", "GA-101", "5", "20", "100") // 100m

	_, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		KameezInventoryID: &id,
		KameezMeters:      dec("101"),
		KameezRate:        dec("200"),
	})
	var insufficient *service.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Kameez: Insufficient stock. Available: 100m, Required: 101m", err.Error())
}

func TestCreateBillShalwarInsufficientStock(t *testing.T) {
	svc, lots, _ := newBillingService()
	id := lots.addLot("Nishat", "NS-7", "1", "10", "85.50") // 10m

	_, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		ShalwarInventoryID: &id,
		ShalwarMeters:      dec("10.5"),
		ShalwarRate:        dec("120"),
	})
	require.EqualError(t, err, "Shalwar: Insufficient stock. Available: 10m, Required: 10.5m")
}

func TestCreateBillLegacyValidatesCombinedCuts(t *testing.T) {
	svc, lots, _ := newBillingService()
	id := lots.addLot("Nishat", "NS-7", "1", "10", "85.50") // 10m

	// 6 + 5 = 11m against 10m remaining. No cut prefix on the legacy message.
	_, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		InventoryID:   &id,
		KameezMeters:  dec("6"),
		KameezRate:    dec("100"),
		ShalwarMeters: dec("5"),
		ShalwarRate:   dec("100"),
	})
	require.EqualError(t, err, "Insufficient stock. Available: 10m, Required: 11m")
}

func TestCreateBillSplitCountsPriorLegacyDraws(t *testing.T) {
	svc, lots, _ := newBillingService()
	id := lots.addLot("Gul Ahmed", "GA-101", "5", "20", "100") // 100m

	// Legacy sale: 60 + 30 = 90m drawn from the lot.
	_, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		InventoryID:   &id,
		KameezMeters:  dec("60"),
		KameezRate:    dec("150"),
		ShalwarMeters: dec("30"),
		ShalwarRate:   dec("120"),
	})
	require.NoError(t, err)

	// A split kameez cut only competes with the 60m of legacy kameez draws,
	// so 40m is still available to it.
	resp, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		KameezInventoryID: &id,
		KameezMeters:      dec("40"),
		KameezRate:        dec("150"),
	})
	require.NoError(t, err)
	assert.True(t, resp.KameezTotal.Equal(dec("6000")))

	_, err = svc.CreateBill(context.Background(), dto.CreateBillRequest{
		KameezInventoryID: &id,
		KameezMeters:      dec("1"),
		KameezRate:        dec("150"),
	})
	require.EqualError(t, err, "Kameez: Insufficient stock. Available: 0m, Required: 1m")
}

func TestCreateBillDefaultsLabelsFromLot(t *testing.T) {
	svc, lots, _ := newBillingService()
	kameezLot := lots.addLot("Gul Ahmed", "GA-101", "5", "20", "100")
	shalwarLot := lots.addLot("Al Karam", "AK-550", "3.5", "25.5", "150.75")

	resp, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		KameezInventoryID:  &kameezLot,
		ShalwarInventoryID: &shalwarLot,
		KameezMeters:       dec("2.5"),
		KameezRate:         dec("200"),
		ShalwarMeters:      dec("2"),
		ShalwarRate:        dec("180"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.KameezCompanyName)
	assert.Equal(t, "Gul Ahmed", *resp.KameezCompanyName)
	assert.Equal(t, "GA-101", *resp.KameezDesignCode)
	assert.Equal(t, "Al Karam", *resp.ShalwarCompanyName)
	assert.Equal(t, "AK-550", *resp.ShalwarDesignCode)
}

func TestCreateBillKeepsCallerLabels(t *testing.T) {
	svc, lots, _ := newBillingService()
	id := lots.addLot("Gul Ahmed", "GA-101", "5", "20", "100")

	resp, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		KameezInventoryID: &id,
		KameezCompanyName: ptr("Custom Label"),
		KameezMeters:      dec("2.5"),
		KameezRate:        dec("200"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Custom Label", *resp.KameezCompanyName)
	// Omitted design code still falls back to the lot.
	assert.Equal(t, "GA-101", *resp.KameezDesignCode)
}

func TestCreateBillRejectsMixedLinkage(t *testing.T) {
	svc, lots, _ := newBillingService()
	id := lots.addLot("Gul Ahmed", "GA-101", "5", "20", "100")

	_, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		InventoryID:       &id,
		KameezInventoryID: &id,
		KameezMeters:      dec("1"),
		KameezRate:        dec("100"),
	})
	var ambiguous *service.AmbiguousLinkageError
	require.ErrorAs(t, err, &ambiguous)
}

func TestCreateBillLotNotFound(t *testing.T) {
	svc, _, _ := newBillingService()

	missing := uint(77)
	_, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		KameezInventoryID: &missing,
		KameezMeters:      dec("1"),
		KameezRate:        dec("100"),
	})
	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Kameez inventory item not found", nf.Detail)

	_, err = svc.CreateBill(context.Background(), dto.CreateBillRequest{
		InventoryID:  &missing,
		KameezMeters: dec("1"),
		KameezRate:   dec("100"),
	})
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Inventory item not found", nf.Detail)
}
