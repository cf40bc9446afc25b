// Package pdf implementa la ficha imprimible del escandallo de una receta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre receta  │  Fecha de generación              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: PVP / Base imponible / IVA / Margen / Rentab.     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ingrediente | Cantidad                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE: Costo | Margen | IVA (porciones del PVP)         │
//	│  FOOTER: costo real reconciliado o aviso de datos faltantes │
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

	"github.com/tu-usuario/barra-pro/internal/domain/costing"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 60, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.EscandalloPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateEscandalloPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateEscandalloPDF(
	_ context.Context,
	recipe *entity.Recipe,
	result *costing.EscandalloResult,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Escandallo "+recipe.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(recipe))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(result))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de ingredientes
	m.AddRows(tableHeaderRow())
	for _, r := range ingredientRows(recipe) {
		m.AddRows(r)
	}

	// Desglose del PVP
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(breakdownRow(result.Breakdown))

	// Costo real reconciliado
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(realCostRow(result))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la receta (izq) y fecha de generación (der).
func headerRow(recipe *entity.Recipe) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(16).Add(
		col.New(8).Add(
			text.New("ESCANDALLO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(recipe.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d ingredientes", len(recipe.Ingredients)), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: bloque financiero del informe.
func summaryRow(result *costing.EscandalloResult) core.Row {
	rep := result.Report
	cell := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		cell("COSTO", rep.Costo.StringFixed(2)+" €"),
		cell("PVP", rep.PrecioVenta.StringFixed(2)+" €"),
		cell("BASE IMP.", rep.BaseImponible.StringFixed(2)+" €"),
		cell("IVA 21%", rep.IVASoportado.StringFixed(2)+" €"),
		cell("MARGEN", rep.MargenBruto.StringFixed(2)+" €"),
		cell("RENTAB.", rep.Rentabilidad.StringFixed(1)+" %"),
	)
}

// tableHeaderRow: cabecera de la tabla de ingredientes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ingrediente", 8, align.Left),
		h("Cantidad", 4, align.Right),
	)
}

// ingredientRows: una fila por línea de receta.
func ingredientRows(recipe *entity.Recipe) []core.Row {
	result := make([]core.Row, 0, len(recipe.Ingredients))
	for _, ri := range recipe.Ingredients {
		result = append(result, row.New(6).Add(
			col.New(8).Add(text.New(
				ri.IngredientName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				ri.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// breakdownRow: porciones del PVP (costo, margen, IVA).
func breakdownRow(slices []costing.BreakdownSlice) core.Row {
	cols := make([]core.Col, 0, len(slices))
	for _, s := range slices {
		cols = append(cols, col.New(4).Add(
			text.New(s.Label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(s.Value.StringFixed(2)+" €", props.Text{
				Size: 9, Align: align.Center, Top: 6,
			}),
		))
	}
	return row.New(13).Add(cols...)
}

// realCostRow: costo real reconciliado contra el catálogo, con aviso si hay
// ingredientes sin precio resoluble.
func realCostRow(result *costing.EscandalloResult) core.Row {
	if result.RealCost == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New(
				fmt.Sprintf("Costo real no disponible: %d ingrediente(s) sin precio en el catálogo.", result.MissingCount),
				props.Text{Style: fontstyle.Bold, Size: 8, Color: colorAlert, Top: 2},
			),
		))
	}

	c := col.New(12).Add(
		text.New("Costo real reconciliado: "+result.RealCost.StringFixed(2)+" €", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	)
	if result.MissingCount > 0 {
		c.Add(text.New(
			fmt.Sprintf("Parcial: %d ingrediente(s) sin precio no incluidos.", result.MissingCount),
			props.Text{Size: 7, Color: colorAlert, Top: 8},
		))
	}
	return row.New(12).Add(c)
}
