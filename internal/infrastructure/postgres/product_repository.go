package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, category, price, cost_price, stock, weight, image_url, warehouse_id, status, created_by, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Category, product.Price,
		product.CostPrice, product.Stock, product.Weight, product.ImageURL, product.WarehouseID,
		product.Status, product.CreatedBy, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Price,
		&p.CostPrice, &p.Stock, &p.Weight, &p.ImageURL, &p.WarehouseID,
		&p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, category = $4, price = $5, cost_price = $6,
			stock = $7, weight = $8, image_url = $9, warehouse_id = $10, status = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Category, product.Price,
		product.CostPrice, product.Stock, product.Weight, product.ImageURL, product.WarehouseID,
		product.Status, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListByWarehouse lista todos los productos de un galpón (sin paginar, lo usa la cascada).
func (r *ProductRepo) ListByWarehouse(warehouseID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE warehouse_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list products by warehouse: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListByWarehouses lista productos de varios galpones con paginación.
func (r *ProductRepo) ListByWarehouses(warehouseIDs []string, limit, offset int) ([]*entity.Product, error) {
	if len(warehouseIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE warehouse_id = ANY($1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products by warehouses: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListActiveByWarehouse lista solo los productos activos de un galpón (catálogo público).
func (r *ProductRepo) ListActiveByWarehouse(warehouseID string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE warehouse_id = $1 AND status = $2 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, warehouseID, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price,
			&p.CostPrice, &p.Stock, &p.Weight, &p.ImageURL, &p.WarehouseID,
			&p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
