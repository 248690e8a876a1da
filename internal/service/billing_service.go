package service

import (
	"context"
	"errors"

	"fabricpos/internal/dto"
	"fabricpos/internal/model"
	"fabricpos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillingService creates composite sales. Each cut is validated against the
// remaining meters of its own lot; under legacy linkage both cuts together
// are validated against the single lot.
type BillingService interface {
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (*dto.BillResponse, error)
}

type billingService struct {
	lots  repository.InventoryRepository
	sales repository.SalesRepository
}

func NewBillingService(lots repository.InventoryRepository, sales repository.SalesRepository) BillingService {
	return &billingService{lots: lots, sales: sales}
}

// CreateBill validates stock per the linkage scheme in the request, then
// inserts a single immutable sales record:
//
//  1. Split ids: each cut checked against its lot's remaining meters, where
//     already-sold = split-linked draws + legacy draws not yet split-linked.
//     Cut labels default from the lot when the caller omits them.
//  2. Legacy id only: both cuts combined checked against the one lot's
//     remaining meters over legacy-linked sales; both labels default.
//  3. No linkage: no validation, labels come from the caller.
//
// Mixing the legacy id with a split id is rejected outright so that a record
// is never reachable from one lot through two linkage paths.
//
// Note the known race: the sufficiency check and the insert are not
// serialized against concurrent bills on the same lot.
func (s *billingService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*dto.BillResponse, error) {
	splitLinked := req.KameezInventoryID != nil || req.ShalwarInventoryID != nil
	if req.InventoryID != nil && splitLinked {
		return nil, &AmbiguousLinkageError{}
	}

	kameezCompany := req.KameezCompanyName
	kameezDesign := req.KameezDesignCode
	shalwarCompany := req.ShalwarCompanyName
	shalwarDesign := req.ShalwarDesignCode

	if req.KameezInventoryID != nil {
		lot, err := s.findLot(ctx, *req.KameezInventoryID, "Kameez inventory item not found")
		if err != nil {
			return nil, err
		}
		draws, err := s.sales.ListKameezDraws(ctx, lot.ID)
		if err != nil {
			return nil, err
		}
		sold := soldCutMeters(draws, func(rec model.SalesRecord) decimal.Decimal { return rec.KameezMeters })
		remaining := lot.TotalMeters.Sub(sold)
		if req.KameezMeters.GreaterThan(remaining) {
			return nil, &InsufficientStockError{Cut: "Kameez", Available: remaining, Required: req.KameezMeters}
		}
		kameezCompany = defaultLabel(kameezCompany, lot.CompanyName)
		kameezDesign = defaultLabel(kameezDesign, lot.DesignCode)
	}

	if req.ShalwarInventoryID != nil {
		lot, err := s.findLot(ctx, *req.ShalwarInventoryID, "Shalwar inventory item not found")
		if err != nil {
			return nil, err
		}
		draws, err := s.sales.ListShalwarDraws(ctx, lot.ID)
		if err != nil {
			return nil, err
		}
		sold := soldCutMeters(draws, func(rec model.SalesRecord) decimal.Decimal { return rec.ShalwarMeters })
		remaining := lot.TotalMeters.Sub(sold)
		if req.ShalwarMeters.GreaterThan(remaining) {
			return nil, &InsufficientStockError{Cut: "Shalwar", Available: remaining, Required: req.ShalwarMeters}
		}
		shalwarCompany = defaultLabel(shalwarCompany, lot.CompanyName)
		shalwarDesign = defaultLabel(shalwarDesign, lot.DesignCode)
	}

	company := req.CompanyName
	design := req.DesignCode
	if req.InventoryID != nil {
		lot, err := s.findLot(ctx, *req.InventoryID, "Inventory item not found")
		if err != nil {
			return nil, err
		}
		legacy, err := s.sales.ListByLegacyLot(ctx, lot.ID)
		if err != nil {
			return nil, err
		}
		sold := soldMeters(lotSales{legacy: legacy})
		remaining := lot.TotalMeters.Sub(sold)
		needed := req.KameezMeters.Add(req.ShalwarMeters)
		if needed.GreaterThan(remaining) {
			return nil, &InsufficientStockError{Available: remaining, Required: needed}
		}
		company = defaultLabel(company, lot.CompanyName)
		design = defaultLabel(design, lot.DesignCode)
	}

	kameezTotal := req.KameezMeters.Mul(req.KameezRate)
	shalwarTotal := req.ShalwarMeters.Mul(req.ShalwarRate)

	rec := &model.SalesRecord{
		InventoryID:        req.InventoryID,
		KameezInventoryID:  req.KameezInventoryID,
		ShalwarInventoryID: req.ShalwarInventoryID,
		CompanyName:        company,
		DesignCode:         design,
		KameezCompanyName:  kameezCompany,
		KameezDesignCode:   kameezDesign,
		ShalwarCompanyName: shalwarCompany,
		ShalwarDesignCode:  shalwarDesign,
		KameezMeters:       req.KameezMeters,
		KameezRate:         req.KameezRate,
		KameezTotal:        kameezTotal,
		ShalwarMeters:      req.ShalwarMeters,
		ShalwarRate:        req.ShalwarRate,
		ShalwarTotal:       shalwarTotal,
		GrandTotal:         kameezTotal.Add(shalwarTotal),
	}
	if err := s.sales.Create(ctx, rec); err != nil {
		return nil, err
	}
	return billToResponse(rec), nil
}

func (s *billingService) findLot(ctx context.Context, id uint, notFoundMsg string) (*model.Inventory, error) {
	lot, err := s.lots.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Detail: notFoundMsg}
		}
		return nil, err
	}
	return lot, nil
}

func defaultLabel(given *string, fallback string) *string {
	if given != nil && *given != "" {
		return given
	}
	return &fallback
}

func billToResponse(rec *model.SalesRecord) *dto.BillResponse {
	return &dto.BillResponse{
		ID:                 rec.ID,
		InventoryID:        rec.InventoryID,
		KameezInventoryID:  rec.KameezInventoryID,
		ShalwarInventoryID: rec.ShalwarInventoryID,
		CompanyName:        rec.CompanyName,
		DesignCode:         rec.DesignCode,
		KameezCompanyName:  rec.KameezCompanyName,
		KameezDesignCode:   rec.KameezDesignCode,
		ShalwarCompanyName: rec.ShalwarCompanyName,
		ShalwarDesignCode:  rec.ShalwarDesignCode,
		KameezMeters:       rec.KameezMeters,
		KameezRate:         rec.KameezRate,
		KameezTotal:        rec.KameezTotal,
		ShalwarMeters:      rec.ShalwarMeters,
		ShalwarRate:        rec.ShalwarRate,
		ShalwarTotal:       rec.ShalwarTotal,
		GrandTotal:         rec.GrandTotal,
		CreatedAt:          rec.CreatedAt,
	}
}
