package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required"`
}

// UpdateProductRequest entrada para actualización parcial. El ID viaja en el
// cuerpo; solo los campos no nulos se aplican, el resto conserva su valor.
type UpdateProductRequest struct {
	ID          int64            `json:"id" validate:"required"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
}

// DeleteProductRequest entrada para soft delete.
type DeleteProductRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// ListProductsRequest parámetros de query para el listado.
type ListProductsRequest struct {
	Page            int    `query:"page"`
	Limit           int    `query:"limit"`
	Category        string `query:"category"`
	Search          string `query:"search"`
	SortByPrice     string `query:"sortByPrice"`     // asc | desc
	SortByCreatedAt string `query:"sortByCreatedAt"` // asc | desc
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Status      int             `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListResponse salida del listado paginado.
type ProductListResponse struct {
	Data       []ProductResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}
