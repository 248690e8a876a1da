package service

import (
	"context"
	"errors"
	"fmt"

	"fabricpos/internal/dto"
	"fabricpos/internal/model"
	"fabricpos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockService owns the inventory lifecycle and the derived sold/remaining
// listings.
type StockService interface {
	AddStock(ctx context.Context, req dto.AddStockRequest) (*dto.InventoryResponse, error)
	UpdateStock(ctx context.Context, id uint, req dto.UpdateStockRequest) (*dto.InventoryResponse, error)
	DeleteStock(ctx context.Context, id uint) (*dto.DeleteStockResponse, error)
	ListInventory(ctx context.Context) ([]dto.InventoryStatusResponse, error)
	ListInventorySimple(ctx context.Context) ([]dto.InventorySimpleResponse, error)
}

type stockService struct {
	lots  repository.InventoryRepository
	sales repository.SalesRepository
}

func NewStockService(lots repository.InventoryRepository, sales repository.SalesRepository) StockService {
	return &stockService{lots: lots, sales: sales}
}

func (s *stockService) AddStock(ctx context.Context, req dto.AddStockRequest) (*dto.InventoryResponse, error) {
	totalMeters := req.TotalThans.Mul(req.MetersPerThan)
	lot := &model.Inventory{
		CompanyName:       req.CompanyName,
		DesignCode:        req.DesignCode,
		TotalThans:        req.TotalThans,
		MetersPerThan:     req.MetersPerThan,
		TotalMeters:       totalMeters,
		CostPricePerMeter: req.CostPricePerMeter,
		TotalStockValue:   totalMeters.Mul(req.CostPricePerMeter),
	}
	if err := s.lots.Create(ctx, lot); err != nil {
		return nil, err
	}
	return lotToResponse(lot), nil
}

func (s *stockService) UpdateStock(ctx context.Context, id uint, req dto.UpdateStockRequest) (*dto.InventoryResponse, error) {
	lot, err := s.lots.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Detail: "Stock item not found"}
		}
		return nil, err
	}

	if req.CompanyName != nil {
		lot.CompanyName = *req.CompanyName
	}
	if req.DesignCode != nil {
		lot.DesignCode = *req.DesignCode
	}
	if req.TotalThans != nil {
		lot.TotalThans = *req.TotalThans
	}
	if req.MetersPerThan != nil {
		lot.MetersPerThan = *req.MetersPerThan
	}
	if req.CostPricePerMeter != nil {
		lot.CostPricePerMeter = *req.CostPricePerMeter
	}

	// Derived fields always follow the post-update inputs.
	lot.TotalMeters = lot.TotalThans.Mul(lot.MetersPerThan)
	lot.TotalStockValue = lot.TotalMeters.Mul(lot.CostPricePerMeter)

	if err := s.lots.Save(ctx, lot); err != nil {
		return nil, err
	}
	return lotToResponse(lot), nil
}

func (s *stockService) DeleteStock(ctx context.Context, id uint) (*dto.DeleteStockResponse, error) {
	if _, err := s.lots.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Detail: fmt.Sprintf("Stock item with ID %d not found", id)}
		}
		return nil, err
	}

	refs, err := s.sales.CountByAnyLot(ctx, id)
	if err != nil {
		return nil, err
	}
	if refs > 0 {
		return nil, &ConflictError{Refs: refs}
	}

	if err := s.lots.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeleteStockResponse{Message: fmt.Sprintf("Stock item %d deleted successfully", id)}, nil
}

func (s *stockService) ListInventory(ctx context.Context) ([]dto.InventoryStatusResponse, error) {
	lots, err := s.lots.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.InventoryStatusResponse, 0, len(lots))
	for i := range lots {
		lot := &lots[i]
		sold, err := s.soldMetersForLot(ctx, lot.ID)
		if err != nil {
			return nil, err
		}
		remaining := lot.TotalMeters.Sub(sold)
		result = append(result, dto.InventoryStatusResponse{
			ID:                  lot.ID,
			CompanyName:         lot.CompanyName,
			DesignCode:          lot.DesignCode,
			TotalThans:          lot.TotalThans,
			MetersPerThan:       lot.MetersPerThan,
			TotalMeters:         lot.TotalMeters,
			CostPricePerMeter:   lot.CostPricePerMeter,
			TotalStockValue:     lot.TotalStockValue,
			SoldMeters:          sold,
			RemainingMeters:     remaining,
			RemainingStockValue: remaining.Mul(lot.CostPricePerMeter),
		})
	}
	return result, nil
}

func (s *stockService) ListInventorySimple(ctx context.Context) ([]dto.InventorySimpleResponse, error) {
	lots, err := s.lots.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.InventorySimpleResponse, 0, len(lots))
	for i := range lots {
		lot := &lots[i]
		sold, err := s.soldMetersForLot(ctx, lot.ID)
		if err != nil {
			return nil, err
		}
		remaining := lot.TotalMeters.Sub(sold)
		if !remaining.IsPositive() {
			continue
		}
		result = append(result, dto.InventorySimpleResponse{
			ID:              lot.ID,
			CompanyName:     lot.CompanyName,
			DesignCode:      lot.DesignCode,
			RemainingMeters: remaining,
		})
	}
	return result, nil
}

// soldMetersForLot fetches the three linkage subsets for the lot and sums the
// meters drawn from it.
func (s *stockService) soldMetersForLot(ctx context.Context, lotID uint) (sold decimal.Decimal, err error) {
	sales, err := s.collectLotSales(ctx, lotID)
	if err != nil {
		return decimal.Zero, err
	}
	return soldMeters(sales), nil
}

func (s *stockService) collectLotSales(ctx context.Context, lotID uint) (lotSales, error) {
	var sales lotSales
	var err error
	if sales.legacy, err = s.sales.ListByLegacyLot(ctx, lotID); err != nil {
		return sales, err
	}
	if sales.kameez, err = s.sales.ListByKameezLot(ctx, lotID); err != nil {
		return sales, err
	}
	if sales.shalwar, err = s.sales.ListByShalwarLot(ctx, lotID); err != nil {
		return sales, err
	}
	return sales, nil
}

func lotToResponse(lot *model.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:                lot.ID,
		CompanyName:       lot.CompanyName,
		DesignCode:        lot.DesignCode,
		TotalThans:        lot.TotalThans,
		MetersPerThan:     lot.MetersPerThan,
		TotalMeters:       lot.TotalMeters,
		CostPricePerMeter: lot.CostPricePerMeter,
		TotalStockValue:   lot.TotalStockValue,
		CreatedAt:         lot.CreatedAt,
	}
}
