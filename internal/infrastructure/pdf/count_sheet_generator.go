// Package pdf genera la hoja de conteo físico en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + tipo de conteo │ Fecha + total de renglones│
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por bodega:                                                 │
//	│    Nombre de la bodega (n renglones)                         │
//	│    TABLA: Artículo | Categoría | Resp. | Frec | Unidad |     │
//	│           En libros | Conteo físico | Diferencia             │
//	│    Línea de firma                                            │
//	└─────────────────────────────────────────────────────────────┘
//
// Las columnas de conteo físico y diferencia van en blanco: se llenan a mano
// durante el recorrido.
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/tu-usuario/hotel-stock/internal/application/exporting"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// CountSheetGenerator genera el PDF de una hoja de conteo.
//
// TODO: embeber NotoSansTC vía WithCustomFonts para glifos zh-Hant correctos;
// helvetica los degrada al renderizar.
type CountSheetGenerator struct{}

// NewCountSheetGenerator construye el generador.
func NewCountSheetGenerator() *CountSheetGenerator { return &CountSheetGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *CountSheetGenerator) Generate(_ context.Context, sheet *exporting.CountSheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(sheet.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range sheet.Sections {
		m.AddRows(sectionTitleRow(&section))
		m.AddRows(tableHeaderRow())
		for _, r := range tableLineRows(section.Lines) {
			m.AddRows(r)
		}
		m.AddRows(signatureRow())
		m.AddRows(line.NewRow(2))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + tipo (izq) y fecha + total de renglones (der).
func headerRow(sheet *exporting.CountSheet) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(sheet.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("盤點類型: "+sheet.TierLabel, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("盤點日期: "+sheet.Date, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("總品項數: %d 項", sheet.TotalLines), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9,
			}),
		),
	)
}

// sectionTitleRow: nombre de la bodega con su conteo de renglones.
func sectionTitleRow(section *report.Section) core.Row {
	title := fmt.Sprintf("%s（%d 項）", section.Warehouse.Name, len(section.Lines))
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de renglones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("品名", 3, align.Left),
		h("分類", 2, align.Left),
		h("負責人", 1, align.Center),
		h("頻率", 1, align.Center),
		h("單位", 1, align.Center),
		h("帳面數量", 1, align.Right),
		h("實盤數量", 1, align.Right),
		h("差異", 2, align.Right),
	)
}

// tableLineRows: una fila por renglón; conteo físico y diferencia en blanco.
func tableLineRows(lines []report.Line) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				l.Item.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Item.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				l.Manager,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				entity.FrequencyLabel(l.Item.Frequency),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				l.Item.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				strconv.FormatInt(l.Quantity, 10),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				"______",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				"______",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// signatureRow: línea de firma del conteo por bodega.
func signatureRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("盤點人簽名: ____________________    日期: ____________________", props.Text{
				Size: 9, Top: 6, Color: colorGray,
			}),
		),
	)
}
