package usecase

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/cache"
)

// CatalogPDFGenerator puerto para la exportación del catálogo en PDF.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, products []*entity.Product) ([]byte, error)
}

// ProductUseCase casos de uso CRUD y listado del catálogo de productos.
// El borrado es lógico: Delete cambia status a -1 y el registro deja de ser
// visible en List/GetByID pero sigue siendo actualizable.
type ProductUseCase struct {
	repo   repository.ProductRepository
	cache  *cache.ListingCache // nil = cache deshabilitado
	pdfGen CatalogPDFGenerator
}

// NewProductUseCase construye el caso de uso. cache y pdfGen pueden ser nil.
func NewProductUseCase(repo repository.ProductRepository, listingCache *cache.ListingCache, pdfGen CatalogPDFGenerator) *ProductUseCase {
	return &ProductUseCase{repo: repo, cache: listingCache, pdfGen: pdfGen}
}

// Create crea un nuevo producto con status activo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Status:      entity.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto activo por ID. Los soft-deleted se reportan
// como domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List ejecuta el listado filtrado/ordenado/paginado. Una página sin
// resultados devuelve domain.ErrNotFound. El resultado se cachea por filtro.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	filter := toFilter(in)
	filter.Normalize()

	key := filterCacheKey(filter)
	var cached dto.ProductListResponse
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}

	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	out := &dto.ProductListResponse{
		Data: items,
		Pagination: dto.PaginationResponse{
			Total:      total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: (total + filter.Limit - 1) / filter.Limit,
		},
	}
	uc.cache.Set(ctx, key, out)
	return out, nil
}

// Update aplica una actualización parcial: solo los campos no nulos del
// request. La búsqueda ignora el status, así que un producto soft-deleted
// sigue siendo actualizable.
func (uc *ProductUseCase) Update(ctx context.Context, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx)
	return toProductResponse(product), nil
}

// Delete marca el producto como eliminado (status -1). Devuelve
// domain.ErrNotFound si no existe y domain.ErrAlreadyDeleted si ya estaba
// eliminado. No existe operación de restauración.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.IsDeleted() {
		return nil, domain.ErrAlreadyDeleted
	}
	product.Status = entity.StatusDeleted
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx)
	return toProductResponse(product), nil
}

// ExportPDF genera el PDF del catálogo activo completo.
func (uc *ProductUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.ListAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateCatalogPDF(ctx, list)
}

func toFilter(in dto.ListProductsRequest) repository.ProductFilter {
	f := repository.ProductFilter{Page: in.Page, Limit: in.Limit}
	if in.Category != "" {
		f.Category = &in.Category
	}
	if in.Search != "" {
		f.Search = &in.Search
	}
	if in.SortByPrice != "" {
		f.SortByPrice = &in.SortByPrice
	}
	if in.SortByCreatedAt != "" {
		f.SortByCreatedAt = &in.SortByCreatedAt
	}
	return f
}

// filterCacheKey serializa el filtro a su forma canónica para el cache.
// url.Values escapa los valores, de modo que un category o search que
// contenga '&' o '=' no puede colisionar con la clave de otro filtro.
func filterCacheKey(f repository.ProductFilter) string {
	v := url.Values{
		"page":  {strconv.Itoa(f.Page)},
		"limit": {strconv.Itoa(f.Limit)},
	}
	set := func(name string, s *string) {
		if s != nil {
			v.Set(name, *s)
		}
	}
	set("category", f.Category)
	set("search", f.Search)
	set("price", f.SortByPrice)
	set("created", f.SortByCreatedAt)
	return v.Encode()
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
