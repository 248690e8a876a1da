package repository

import (
	"context"

	"fabricpos/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(ctx context.Context, lot *model.Inventory) error
	FindByID(ctx context.Context, id uint) (*model.Inventory, error)
	Save(ctx context.Context, lot *model.Inventory) error
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]model.Inventory, error)
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, lot *model.Inventory) error {
	return r.db.WithContext(ctx).Create(lot).Error
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uint) (*model.Inventory, error) {
	var lot model.Inventory
	err := r.db.WithContext(ctx).First(&lot, id).Error
	return &lot, err
}

func (r *inventoryRepo) Save(ctx context.Context, lot *model.Inventory) error {
	return r.db.WithContext(ctx).Save(lot).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Inventory{}, id).Error
}

func (r *inventoryRepo) ListAll(ctx context.Context) ([]model.Inventory, error) {
	var lots []model.Inventory
	err := r.db.WithContext(ctx).Order("id").Find(&lots).Error
	return lots, err
}
