// Package pdf implementa la exportación del catálogo de productos activos
// como documento PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la aplicación + fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | Categoría | Precio | Creado            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos activos                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// CatalogPDFGenerator genera la representación PDF del catálogo usando Maroto v2.
type CatalogPDFGenerator struct {
	appName string
}

// NewCatalogPDFGenerator construye el generador.
func NewCatalogPDFGenerator(appName string) *CatalogPDFGenerator {
	return &CatalogPDFGenerator{appName: appName}
}

// GenerateCatalogPDF genera el PDF del catálogo y devuelve sus bytes.
func (g *CatalogPDFGenerator) GenerateCatalogPDF(_ context.Context, products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la aplicación (izq) y fecha de generación (der).
func headerRow(appName string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Catálogo de productos", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(appName, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(1).Add(text.New("ID", header)),
		col.New(4).Add(text.New("Nombre", header)),
		col.New(3).Add(text.New("Categoría", header)),
		col.New(2).Add(text.New("Precio", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
		col.New(2).Add(text.New("Creado", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
	)
}

func productRow(p *entity.Product) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.ID), cell)),
		col.New(4).Add(text.New(p.Name, cell)),
		col.New(3).Add(text.New(p.Category, cell)),
		col.New(2).Add(text.New(p.Price.StringFixed(2), props.Text{
			Size: 8, Top: 1, Align: align.Right,
		})),
		col.New(2).Add(text.New(p.CreatedAt.Format("02/01/2006"), props.Text{
			Size: 8, Top: 1, Align: align.Right, Color: colorGray,
		})),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de productos activos: %d", total), props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
		),
	)
}
