package service

import (
	"fabricpos/internal/model"

	"github.com/shopspring/decimal"
)

// lotSales holds the sales referencing one lot, partitioned by linkage
// scheme. legacy rows drew BOTH cuts from the lot; kameez/shalwar rows drew
// only the matching cut. The subsets are disjoint (write-time exclusivity).
type lotSales struct {
	legacy  []model.SalesRecord
	kameez  []model.SalesRecord
	shalwar []model.SalesRecord
}

// soldMeters sums the meters drawn from the lot across all three subsets.
func soldMeters(s lotSales) decimal.Decimal {
	sold := decimal.Zero
	for _, rec := range s.legacy {
		sold = sold.Add(rec.KameezMeters).Add(rec.ShalwarMeters)
	}
	for _, rec := range s.kameez {
		sold = sold.Add(rec.KameezMeters)
	}
	for _, rec := range s.shalwar {
		sold = sold.Add(rec.ShalwarMeters)
	}
	return sold
}

// profitLoss rolls up revenue and cost for one lot. Legacy rows attribute
// their full stored grand total as revenue; split rows attribute only the
// matching cut priced at its billed rate. Cost is always drawn meters times
// the lot's cost price.
func profitLoss(lot *model.Inventory, s lotSales) (metersSold, revenue, cost decimal.Decimal) {
	metersSold, revenue, cost = decimal.Zero, decimal.Zero, decimal.Zero

	for _, rec := range s.legacy {
		m := rec.KameezMeters.Add(rec.ShalwarMeters)
		metersSold = metersSold.Add(m)
		revenue = revenue.Add(rec.GrandTotal)
		cost = cost.Add(m.Mul(lot.CostPricePerMeter))
	}
	for _, rec := range s.kameez {
		metersSold = metersSold.Add(rec.KameezMeters)
		revenue = revenue.Add(rec.KameezMeters.Mul(rec.KameezRate))
		cost = cost.Add(rec.KameezMeters.Mul(lot.CostPricePerMeter))
	}
	for _, rec := range s.shalwar {
		metersSold = metersSold.Add(rec.ShalwarMeters)
		revenue = revenue.Add(rec.ShalwarMeters.Mul(rec.ShalwarRate))
		cost = cost.Add(rec.ShalwarMeters.Mul(lot.CostPricePerMeter))
	}
	return metersSold, revenue, cost
}

// soldCutMeters sums one cut's meters over a pre-filtered draw set (the
// "split-linked OR legacy-and-not-yet-split" rows used by bill validation).
func soldCutMeters(draws []model.SalesRecord, pick func(model.SalesRecord) decimal.Decimal) decimal.Decimal {
	sold := decimal.Zero
	for _, rec := range draws {
		sold = sold.Add(pick(rec))
	}
	return sold
}
