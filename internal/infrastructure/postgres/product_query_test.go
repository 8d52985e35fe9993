package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// buildProductListQuery — composición de WHERE, ORDER BY y paginación
// ──────────────────────────────────────────────────────────────────────────────

// Sin filtros opcionales: solo status = 1, orden determinista por id y
// paginación por defecto (page=1, limit=10 -> OFFSET 0).
func TestBuildProductListQuery_SoloDefaults(t *testing.T) {
	f := repository.ProductFilter{}
	f.Normalize()

	listSQL, listArgs, countSQL, countArgs := buildProductListQuery(f)

	assert.Contains(t, listSQL, "WHERE status = 1")
	assert.Contains(t, listSQL, "ORDER BY id ASC")
	assert.Contains(t, listSQL, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []interface{}{10, 0}, listArgs)

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE status = 1", countSQL)
	assert.Empty(t, countArgs)
}

// Categoría: igualdad exacta parametrizada, compartida entre listado y conteo.
func TestBuildProductListQuery_FiltroCategoria(t *testing.T) {
	f := repository.ProductFilter{Category: strPtr("electronica")}
	f.Normalize()

	listSQL, listArgs, countSQL, countArgs := buildProductListQuery(f)

	assert.Contains(t, listSQL, "category = $1")
	assert.Contains(t, countSQL, "category = $1")
	assert.Equal(t, []interface{}{"electronica", 10, 0}, listArgs)
	assert.Equal(t, []interface{}{"electronica"}, countArgs)
}

// Búsqueda: ILIKE sobre name O description con el mismo placeholder %term%.
func TestBuildProductListQuery_Busqueda(t *testing.T) {
	f := repository.ProductFilter{Search: strPtr("laptop")}
	f.Normalize()

	listSQL, listArgs, countSQL, _ := buildProductListQuery(f)

	assert.Contains(t, listSQL, "(name ILIKE $1 OR description ILIKE $1)")
	assert.Contains(t, countSQL, "(name ILIKE $1 OR description ILIKE $1)")
	assert.Equal(t, "%laptop%", listArgs[0])
}

// Categoría + búsqueda: los placeholders se numeran en orden de inserción.
func TestBuildProductListQuery_CategoriaYBusqueda(t *testing.T) {
	f := repository.ProductFilter{
		Category: strPtr("hogar"),
		Search:   strPtr("mesa"),
	}
	f.Normalize()

	listSQL, listArgs, _, countArgs := buildProductListQuery(f)

	assert.Contains(t, listSQL, "category = $1")
	assert.Contains(t, listSQL, "(name ILIKE $2 OR description ILIKE $2)")
	assert.Contains(t, listSQL, "LIMIT $3 OFFSET $4")
	assert.Equal(t, []interface{}{"hogar", "%mesa%", 10, 0}, listArgs)
	assert.Equal(t, []interface{}{"hogar", "%mesa%"}, countArgs)
}

// Orden: price tiene precedencia sobre created_at cuando se piden ambos.
func TestBuildProductListQuery_PrecedenciaDeOrden(t *testing.T) {
	f := repository.ProductFilter{
		SortByPrice:     strPtr("desc"),
		SortByCreatedAt: strPtr("asc"),
	}
	f.Normalize()

	listSQL, _, _, _ := buildProductListQuery(f)

	assert.Contains(t, listSQL, "ORDER BY price DESC, created_at ASC")
}

// Cualquier dirección no vacía distinta de "asc" se interpreta como DESC.
func TestBuildProductListQuery_DireccionInvalidaEsDesc(t *testing.T) {
	f := repository.ProductFilter{SortByCreatedAt: strPtr("descendente")}
	f.Normalize()

	listSQL, _, _, _ := buildProductListQuery(f)

	assert.Contains(t, listSQL, "ORDER BY created_at DESC")
	assert.NotContains(t, listSQL, "id ASC")
}

// Paginación: offset = (page-1)*limit.
func TestBuildProductListQuery_Offset(t *testing.T) {
	f := repository.ProductFilter{Page: 3, Limit: 25}
	f.Normalize()

	_, listArgs, _, _ := buildProductListQuery(f)

	require.Len(t, listArgs, 2)
	assert.Equal(t, 25, listArgs[0])
	assert.Equal(t, 50, listArgs[1])
}

// Normalize aplica los defaults de la paginación sin tocar valores válidos.
func TestProductFilter_Normalize(t *testing.T) {
	f := repository.ProductFilter{Page: 0, Limit: -5}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)

	g := repository.ProductFilter{Page: 2, Limit: 1}
	g.Normalize()
	assert.Equal(t, 2, g.Page)
	assert.Equal(t, 1, g.Limit)
	assert.Equal(t, 1, g.Offset())
}
