package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/access"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La eliminación es directa,
// sin chequeo de dependientes (los productos se tratan como datos hoja).
type ProductUseCase struct {
	repo          repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, warehouseRepo repository.WarehouseRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create crea un producto en un galpón visible para el actor.
func (uc *ProductUseCase) Create(actor access.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanSee(actor, warehouse) {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		CostPrice:   in.CostPrice,
		Stock:       in.Stock,
		Weight:      in.Weight,
		ImageURL:    in.ImageURL,
		WarehouseID: in.WarehouseID,
		Status:      entity.StatusActive,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto visible para el actor.
func (uc *ProductUseCase) GetByID(actor access.Actor, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if !access.CanSee(actor, product) {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// List lista productos según el ámbito: app_admin todos, warehouse_admin solo
// los de sus galpones.
func (uc *ProductUseCase) List(actor access.Actor, limit, offset int) (*dto.ProductListResponse, error) {
	var (
		list []*entity.Product
		err  error
	)
	switch actor.Role {
	case entity.RoleAppAdmin:
		list, err = uc.repo.List(limit, offset)
	case entity.RoleWarehouseAdmin:
		if len(actor.WarehouseIDs) == 0 {
			list = nil
		} else {
			list, err = uc.repo.ListByWarehouses(actor.WarehouseIDs, limit, offset)
		}
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return toProductList(list, limit, offset), nil
}

// ListByWarehouse lista los productos de un galpón visible para el actor.
func (uc *ProductUseCase) ListByWarehouse(actor access.Actor, warehouseID string) (*dto.ProductListResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanSee(actor, warehouse) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return toProductList(list, 0, 0), nil
}

// ListActiveByWarehouse lista solo productos activos de un galpón (catálogo público).
func (uc *ProductUseCase) ListActiveByWarehouse(warehouseID string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListActiveByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return toProductList(list, 0, 0), nil
}

// Update aplica un merge parcial sobre un producto visible para el actor.
// Reactivar un producto de un galpón desactivado es válido: la reactivación es
// siempre manual por producto.
func (uc *ProductUseCase) Update(actor access.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if !access.CanSee(actor, product) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Weight != nil {
		product.Weight = *in.Weight
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto visible para el actor, sin chequeo de dependientes.
func (uc *ProductUseCase) Delete(actor access.Actor, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !access.CanSee(actor, product) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toProductList(list []*entity.Product, limit, offset int) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: len(items)},
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		Stock:       p.Stock,
		Weight:      p.Weight,
		ImageURL:    p.ImageURL,
		WarehouseID: p.WarehouseID,
		Status:      p.Status,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
