package service_test

import (
	"context"
	"sort"

	"fabricpos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. They mirror the SQL filters of the real
// repositories so the services can be exercised without a database.

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

type lotStore struct {
	lots   map[uint]model.Inventory
	nextID uint
}

func newLotStore() *lotStore {
	return &lotStore{lots: make(map[uint]model.Inventory)}
}

// addLot seeds a lot with derived fields computed from thans, meters/than and
// cost, the same way AddStock does.
func (s *lotStore) addLot(company, design, thans, perThan, cost string) uint {
	t, p, c := dec(thans), dec(perThan), dec(cost)
	meters := t.Mul(p)
	s.nextID++
	s.lots[s.nextID] = model.Inventory{
		ID:                s.nextID,
		CompanyName:       company,
		DesignCode:        design,
		TotalThans:        t,
		MetersPerThan:     p,
		TotalMeters:       meters,
		CostPricePerMeter: c,
		TotalStockValue:   meters.Mul(c),
	}
	return s.nextID
}

func (s *lotStore) Create(_ context.Context, lot *model.Inventory) error {
	s.nextID++
	lot.ID = s.nextID
	s.lots[lot.ID] = *lot
	return nil
}

func (s *lotStore) FindByID(_ context.Context, id uint) (*model.Inventory, error) {
	lot, ok := s.lots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &lot, nil
}

func (s *lotStore) Save(_ context.Context, lot *model.Inventory) error {
	s.lots[lot.ID] = *lot
	return nil
}

func (s *lotStore) Delete(_ context.Context, id uint) error {
	delete(s.lots, id)
	return nil
}

func (s *lotStore) ListAll(_ context.Context) ([]model.Inventory, error) {
	out := make([]model.Inventory, 0, len(s.lots))
	for _, lot := range s.lots {
		out = append(out, lot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type salesStore struct {
	recs   []model.SalesRecord
	nextID uint
}

func newSalesStore() *salesStore { return &salesStore{} }

func (s *salesStore) Create(_ context.Context, rec *model.SalesRecord) error {
	s.nextID++
	rec.ID = s.nextID
	s.recs = append(s.recs, *rec)
	return nil
}

func (s *salesStore) filter(keep func(model.SalesRecord) bool) []model.SalesRecord {
	var out []model.SalesRecord
	for _, rec := range s.recs {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *salesStore) ListByLegacyLot(_ context.Context, lotID uint) ([]model.SalesRecord, error) {
	return s.filter(func(r model.SalesRecord) bool {
		return r.InventoryID != nil && *r.InventoryID == lotID
	}), nil
}

func (s *salesStore) ListByKameezLot(_ context.Context, lotID uint) ([]model.SalesRecord, error) {
	return s.filter(func(r model.SalesRecord) bool {
		return r.KameezInventoryID != nil && *r.KameezInventoryID == lotID
	}), nil
}

func (s *salesStore) ListByShalwarLot(_ context.Context, lotID uint) ([]model.SalesRecord, error) {
	return s.filter(func(r model.SalesRecord) bool {
		return r.ShalwarInventoryID != nil && *r.ShalwarInventoryID == lotID
	}), nil
}

func (s *salesStore) ListKameezDraws(_ context.Context, lotID uint) ([]model.SalesRecord, error) {
	return s.filter(func(r model.SalesRecord) bool {
		if r.KameezInventoryID != nil && *r.KameezInventoryID == lotID {
			return true
		}
		return r.InventoryID != nil && *r.InventoryID == lotID && r.KameezInventoryID == nil
	}), nil
}

func (s *salesStore) ListShalwarDraws(_ context.Context, lotID uint) ([]model.SalesRecord, error) {
	return s.filter(func(r model.SalesRecord) bool {
		if r.ShalwarInventoryID != nil && *r.ShalwarInventoryID == lotID {
			return true
		}
		return r.InventoryID != nil && *r.InventoryID == lotID && r.ShalwarInventoryID == nil
	}), nil
}

func (s *salesStore) CountByAnyLot(_ context.Context, lotID uint) (int64, error) {
	matches := s.filter(func(r model.SalesRecord) bool {
		return (r.InventoryID != nil && *r.InventoryID == lotID) ||
			(r.KameezInventoryID != nil && *r.KameezInventoryID == lotID) ||
			(r.ShalwarInventoryID != nil && *r.ShalwarInventoryID == lotID)
	})
	return int64(len(matches)), nil
}
