package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product. No hay borrado físico: Delete
// cambia Status a StatusDeleted y el registro queda excluido de
// los listados y lecturas por defecto.
const (
	StatusActive  = 1
	StatusDeleted = -1
)

// Product representa un artículo del catálogo.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Category    string
	Status      int // StatusActive | StatusDeleted
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDeleted indica si el producto fue eliminado (soft delete).
func (p *Product) IsDeleted() bool {
	return p.Status == StatusDeleted
}
