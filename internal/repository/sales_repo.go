package repository

import (
	"context"

	"fabricpos/internal/model"

	"gorm.io/gorm"
)

// SalesRepository reads sales by linkage scheme. The three ListBy*Lot subsets
// are disjoint because bill creation never stores legacy and split ids on the
// same record; ListKameezDraws / ListShalwarDraws additionally fold in legacy
// rows for the stock-sufficiency check at billing time.
type SalesRepository interface {
	Create(ctx context.Context, rec *model.SalesRecord) error
	ListByLegacyLot(ctx context.Context, lotID uint) ([]model.SalesRecord, error)
	ListByKameezLot(ctx context.Context, lotID uint) ([]model.SalesRecord, error)
	ListByShalwarLot(ctx context.Context, lotID uint) ([]model.SalesRecord, error)
	ListKameezDraws(ctx context.Context, lotID uint) ([]model.SalesRecord, error)
	ListShalwarDraws(ctx context.Context, lotID uint) ([]model.SalesRecord, error)
	CountByAnyLot(ctx context.Context, lotID uint) (int64, error)
}

type salesRepo struct{ db *gorm.DB }

func NewSalesRepository(db *gorm.DB) SalesRepository { return &salesRepo{db: db} }

func (r *salesRepo) Create(ctx context.Context, rec *model.SalesRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *salesRepo) ListByLegacyLot(ctx context.Context, lotID uint) ([]model.SalesRecord, error) {
	var recs []model.SalesRecord
	err := r.db.WithContext(ctx).Where("inventory_id = ?", lotID).Find(&recs).Error
	return recs, err
}

func (r *salesRepo) ListByKameezLot(ctx context.Context, lotID uint) ([]model.SalesRecord, error) {
	var recs []model.SalesRecord
	err := r.db.WithContext(ctx).Where("kameez_inventory_id = ?", lotID).Find(&recs).Error
	return recs, err
}

func (r *salesRepo) ListByShalwarLot(ctx context.Context, lotID uint) ([]model.SalesRecord, error) {
	var recs []model.SalesRecord
	err := r.db.WithContext(ctx).Where("shalwar_inventory_id = ?", lotID).Find(&recs).Error
	return recs, err
}

// ListKameezDraws returns every record whose kameez cut was drawn from the lot:
// split-linked rows plus legacy rows that predate the split columns.
func (r *salesRepo) ListKameezDraws(ctx context.Context, lotID uint) ([]model.SalesRecord, error) {
	var recs []model.SalesRecord
	err := r.db.WithContext(ctx).
		Where("kameez_inventory_id = ? OR (inventory_id = ? AND kameez_inventory_id IS NULL)", lotID, lotID).
		Find(&recs).Error
	return recs, err
}

func (r *salesRepo) ListShalwarDraws(ctx context.Context, lotID uint) ([]model.SalesRecord, error) {
	var recs []model.SalesRecord
	err := r.db.WithContext(ctx).
		Where("shalwar_inventory_id = ? OR (inventory_id = ? AND shalwar_inventory_id IS NULL)", lotID, lotID).
		Find(&recs).Error
	return recs, err
}

func (r *salesRepo) CountByAnyLot(ctx context.Context, lotID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.SalesRecord{}).
		Where("inventory_id = ? OR kameez_inventory_id = ? OR shalwar_inventory_id = ?", lotID, lotID, lotID).
		Count(&n).Error
	return n, err
}
