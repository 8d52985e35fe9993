package usecase_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory del puerto ProductRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	seq      int64
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.seq++
	p.ID = r.seq
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetActiveByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, _ := r.GetByID(ctx, id)
	if p == nil || p.Status != entity.StatusActive {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	var matches []*entity.Product
	for _, p := range r.products {
		if p.Status != entity.StatusActive {
			continue
		}
		if f.Category != nil && p.Category != *f.Category {
			continue
		}
		if f.Search != nil {
			term := strings.ToLower(*f.Search)
			if !strings.Contains(strings.ToLower(p.Name), term) &&
				!strings.Contains(strings.ToLower(p.Description), term) {
				continue
			}
		}
		cp := *p
		matches = append(matches, &cp)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if f.SortByPrice != nil {
			if c := a.Price.Cmp(b.Price); c != 0 {
				if *f.SortByPrice == repository.SortAsc {
					return c < 0
				}
				return c > 0
			}
		}
		if f.SortByCreatedAt != nil && !a.CreatedAt.Equal(b.CreatedAt) {
			if *f.SortByCreatedAt == repository.SortAsc {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	total := len(matches)
	start := f.Offset()
	if start > total {
		start = total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return matches[start:end], total, nil
}

func (r *fakeProductRepo) ListAllActive(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.Status == entity.StatusActive {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newUC(repo repository.ProductRepository) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(repo, nil, stubPDFGen{})
}

type stubPDFGen struct{}

func (stubPDFGen) GenerateCatalogPDF(_ context.Context, products []*entity.Product) ([]byte, error) {
	return []byte("pdf"), nil
}

func createProduct(t *testing.T, uc *usecase.ProductUseCase, name, category string, price int64) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:        name,
		Description: "descripción de " + name,
		Price:       decimal.NewFromInt(price),
		Category:    category,
	})
	require.NoError(t, err)
	// CreatedAt distinto por producto para que el orden por fecha sea observable
	time.Sleep(time.Millisecond)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_CreateAsignaStatusActivo(t *testing.T) {
	uc := newUC(newFakeProductRepo())

	out := createProduct(t, uc, "Teclado", "electronica", 30)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestProductUseCase_GetByID_NoEncontrado(t *testing.T) {
	uc := newUC(newFakeProductRepo())

	_, err := uc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Soft delete
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar y luego consultar por ID devuelve NotFound; eliminar de nuevo
// devuelve ErrAlreadyDeleted (BadRequest en la capa HTTP).
func TestProductUseCase_DeleteDosVeces(t *testing.T) {
	uc := newUC(newFakeProductRepo())
	p := createProduct(t, uc, "Silla", "hogar", 50)

	deleted, err := uc.Delete(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDeleted, deleted.Status)

	_, err = uc.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Delete(context.Background(), p.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyDeleted)
}

func TestProductUseCase_Delete_NoEncontrado(t *testing.T) {
	uc := newUC(newFakeProductRepo())

	_, err := uc.Delete(context.Background(), 123)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un producto soft-deleted sigue siendo actualizable (la búsqueda de Update
// ignora el status).
func TestProductUseCase_UpdateSobreEliminado(t *testing.T) {
	uc := newUC(newFakeProductRepo())
	p := createProduct(t, uc, "Mesa", "hogar", 80)

	_, err := uc.Delete(context.Background(), p.ID)
	require.NoError(t, err)

	nuevoNombre := "Mesa plegable"
	out, err := uc.Update(context.Background(), dto.UpdateProductRequest{ID: p.ID, Name: &nuevoNombre})
	require.NoError(t, err)
	assert.Equal(t, "Mesa plegable", out.Name)
	assert.Equal(t, entity.StatusDeleted, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

// Solo los campos presentes cambian; los omitidos conservan su valor.
func TestProductUseCase_UpdateParcial(t *testing.T) {
	uc := newUC(newFakeProductRepo())
	p := createProduct(t, uc, "Monitor", "electronica", 200)

	nuevoPrecio := decimal.NewFromInt(180)
	out, err := uc.Update(context.Background(), dto.UpdateProductRequest{
		ID:    p.ID,
		Price: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.True(t, out.Price.Equal(nuevoPrecio))
	assert.Equal(t, "Monitor", out.Name)
	assert.Equal(t, "electronica", out.Category)
	assert.Equal(t, p.Description, out.Description)
	assert.True(t, out.UpdatedAt.After(p.UpdatedAt) || out.UpdatedAt.Equal(p.UpdatedAt))
}

func TestProductUseCase_Update_NoEncontrado(t *testing.T) {
	uc := newUC(newFakeProductRepo())

	nombre := "x"
	_, err := uc.Update(context.Background(), dto.UpdateProductRequest{ID: 7, Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — filtros, orden y paginación
// ──────────────────────────────────────────────────────────────────────────────

// category=A con sortByPrice=desc sobre precios {10, 20} devuelve [20, 10].
func TestProductUseCase_ListCategoriaOrdenPrecioDesc(t *testing.T) {
	uc := newUC(newFakeProductRepo())
	p1 := createProduct(t, uc, "Producto uno", "A", 10)
	p2 := createProduct(t, uc, "Producto dos", "A", 20)
	createProduct(t, uc, "Otro", "B", 15)

	out, err := uc.List(context.Background(), dto.ListProductsRequest{
		Category:    "A",
		SortByPrice: "desc",
	})
	require.NoError(t, err)

	require.Len(t, out.Data, 2)
	assert.Equal(t, p2.ID, out.Data[0].ID)
	assert.Equal(t, p1.ID, out.Data[1].ID)
	assert.Equal(t, 2, out.Pagination.Total)
}

// La búsqueda es case-insensitive y cubre name O description.
func TestProductUseCase_ListBusquedaCaseInsensitive(t *testing.T) {
	uc := newUC(newFakeProductRepo())
	createProduct(t, uc, "Laptop Gamer", "electronica", 900)
	createProduct(t, uc, "Mouse", "electronica", 20) // "descripción de Mouse"
	createProduct(t, uc, "Silla", "hogar", 40)

	out, err := uc.List(context.Background(), dto.ListProductsRequest{Search: "LAPTOP"})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Laptop Gamer", out.Data[0].Name)

	out, err = uc.List(context.Background(), dto.ListProductsRequest{Search: "de mouse"})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Mouse", out.Data[0].Name)
}

// Los soft-deleted quedan excluidos de todo listado.
func TestProductUseCase_ListExcluyeEliminados(t *testing.T) {
	uc := newUC(newFakeProductRepo())
	createProduct(t, uc, "Activo", "A", 10)
	p := createProduct(t, uc, "Eliminado", "A", 10)
	_, err := uc.Delete(context.Background(), p.ID)
	require.NoError(t, err)

	out, err := uc.List(context.Background(), dto.ListProductsRequest{Category: "A"})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Activo", out.Data[0].Name)
}

// page=2, limit=1 sobre 3 productos devuelve el segundo y totalPages=3.
func TestProductUseCase_ListPaginacion(t *testing.T) {
	uc := newUC(newFakeProductRepo())
	createProduct(t, uc, "Primero", "A", 1)
	segundo := createProduct(t, uc, "Segundo", "A", 2)
	createProduct(t, uc, "Tercero", "A", 3)

	out, err := uc.List(context.Background(), dto.ListProductsRequest{Page: 2, Limit: 1})
	require.NoError(t, err)

	require.Len(t, out.Data, 1)
	assert.Equal(t, segundo.ID, out.Data[0].ID)
	assert.Equal(t, 3, out.Pagination.Total)
	assert.Equal(t, 2, out.Pagination.Page)
	assert.Equal(t, 1, out.Pagination.Limit)
	assert.Equal(t, 3, out.Pagination.TotalPages)
}

// Una página sin resultados (más allá de la última) es NotFound, no lista vacía.
func TestProductUseCase_ListPaginaVaciaEsNotFound(t *testing.T) {
	uc := newUC(newFakeProductRepo())
	createProduct(t, uc, "Único", "A", 10)

	_, err := uc.List(context.Background(), dto.ListProductsRequest{Page: 5, Limit: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Orden combinado: price primero, created_at desempata.
func TestProductUseCase_ListOrdenCombinado(t *testing.T) {
	uc := newUC(newFakeProductRepo())
	a := createProduct(t, uc, "A", "X", 10) // más viejo
	b := createProduct(t, uc, "B", "X", 10) // mismo precio, más nuevo
	c := createProduct(t, uc, "C", "X", 5)

	out, err := uc.List(context.Background(), dto.ListProductsRequest{
		SortByPrice:     "asc",
		SortByCreatedAt: "desc",
	})
	require.NoError(t, err)

	require.Len(t, out.Data, 3)
	assert.Equal(t, c.ID, out.Data[0].ID)
	assert.Equal(t, b.ID, out.Data[1].ID)
	assert.Equal(t, a.ID, out.Data[2].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// ExportPDF
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_ExportPDF(t *testing.T) {
	uc := newUC(newFakeProductRepo())
	createProduct(t, uc, "Teclado", "electronica", 30)

	pdfBytes, err := uc.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
