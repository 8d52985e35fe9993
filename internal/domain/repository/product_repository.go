package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Direcciones de orden aceptadas en ProductFilter.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ProductFilter especifica de forma explícita los filtros, el orden y la
// paginación de un listado de productos. Los campos puntero son opcionales:
// nil significa "no filtrar / no ordenar por este campo".
type ProductFilter struct {
	Page            int
	Limit           int
	Category        *string // igualdad exacta
	Search          *string // substring case-insensitive sobre name O description
	SortByPrice     *string // SortAsc | SortDesc
	SortByCreatedAt *string // SortAsc | SortDesc; price tiene precedencia si ambos
}

// Normalize aplica los valores por defecto de paginación (page=1, limit=10).
func (f *ProductFilter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 10
	}
}

// Offset calcula el desplazamiento SQL: (page-1)*limit.
func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto con status activo y asigna su ID generado.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID busca por ID sin importar el status (los soft-deleted siguen
	// siendo direccionables para update/delete). Devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetActiveByID busca por ID solo entre activos (status = 1). nil, nil si no existe.
	GetActiveByID(ctx context.Context, id int64) (*entity.Product, error)
	// List devuelve la página de resultados según el filtro y el total de
	// registros que cumplen el filtro ignorando la paginación.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int, error)
	// ListAllActive devuelve todos los productos activos ordenados por categoría
	// y nombre (exportación del catálogo).
	ListAllActive(ctx context.Context) ([]*entity.Product, error)
	// Update persiste todos los campos mutables del producto.
	Update(ctx context.Context, product *entity.Product) error
}
