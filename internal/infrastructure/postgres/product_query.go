package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

const productColumns = "id, name, description, price, category, status, created_at, updated_at"

// buildProductListQuery traduce un ProductFilter a las sentencias SQL del listado
// y del conteo total. Ambas comparten el WHERE; el listado añade ORDER BY,
// LIMIT y OFFSET.
//
// Reglas:
//   - filtro base: status = 1 (los soft-deleted nunca aparecen en listados)
//   - category: igualdad exacta si está presente
//   - search: ILIKE sobre name O description con %term%
//   - orden: price primero si se pide, luego created_at; sin orden explícito
//     se usa id ASC para que las páginas sean deterministas
func buildProductListQuery(f repository.ProductFilter) (listSQL string, listArgs []interface{}, countSQL string, countArgs []interface{}) {
	where := []string{"status = 1"}
	args := []interface{}{}

	if f.Category != nil && *f.Category != "" {
		args = append(args, *f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Search != nil && *f.Search != "" {
		args = append(args, "%"+*f.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	whereClause := strings.Join(where, " AND ")

	orderBy := []string{}
	if dir, ok := sortDirection(f.SortByPrice); ok {
		orderBy = append(orderBy, "price "+dir)
	}
	if dir, ok := sortDirection(f.SortByCreatedAt); ok {
		orderBy = append(orderBy, "created_at "+dir)
	}
	if len(orderBy) == 0 {
		orderBy = append(orderBy, "id ASC")
	}

	countSQL = "SELECT COUNT(*) FROM products WHERE " + whereClause
	countArgs = args

	listArgs = make([]interface{}, len(args), len(args)+2)
	copy(listArgs, args)
	listArgs = append(listArgs, f.Limit, f.Offset())
	listSQL = fmt.Sprintf(
		"SELECT %s FROM products WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		productColumns, whereClause, strings.Join(orderBy, ", "), len(listArgs)-1, len(listArgs),
	)
	return listSQL, listArgs, countSQL, countArgs
}

// sortDirection valida una dirección de orden opcional. Cualquier valor no vacío
// distinto de "asc" se interpreta como DESC.
func sortDirection(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	if strings.EqualFold(*s, repository.SortAsc) {
		return "ASC", true
	}
	return "DESC", true
}
