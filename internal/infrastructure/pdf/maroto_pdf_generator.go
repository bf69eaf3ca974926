// Package pdf genera los reportes imprimibles del almacén con Maroto v2.
//
// Layout del tablero de antigüedad (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Planta + clase      │  Generado + totales          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tramo | Tipo | Gramaje | Ancho | Rollos | Peso       │
//	│    (una fila por tramo, tipo, gramaje y ancho)               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rollstock-api/internal/application/report"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorBand    = &props.Color{Red: 225, Green: 235, Blue: 245}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera el tablero de antigüedad y las etiquetas de ítems.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// AgingDashboardPDF tablero de antigüedad en una tabla anidada tramo → tipo → gramaje → ancho.
func (g *MarotoPDFGenerator) AgingDashboardPDF(_ context.Context, dash *report.AgingDashboard) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Antigüedad de stock "+dash.Plant, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(dashboardHeaderRow(dash))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, b := range dash.Buckets {
		m.AddRows(bucketRows(b)...)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(dash.Total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar tablero: %w", err)
	}
	return doc.GetBytes(), nil
}

// ItemLabelPDF etiqueta de un rollo o pallet con QR del código para los escáneres.
func (g *MarotoPDFGenerator) ItemLabelPDF(_ context.Context, item *entity.StockItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(6).WithRightMargin(6).
		WithTopMargin(6).WithBottomMargin(6).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(item.Code, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New(item.Code, props.Text{Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: colorPrimary}),
	)))
	m.AddRows(row.New(55).Add(col.New(12).Add(code.NewQr(item.Code, props.Rect{Percent: 90, Center: true}))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	recv := "-"
	if item.GoodsReceiveDate != nil {
		recv = item.GoodsReceiveDate.Format("02/01/2006")
	}
	for _, kv := range [][2]string{
		{"Planta", item.Plant},
		{"Ubicación", nonEmpty(item.BinLocation, "-")},
		{"Tipo / Gramaje", nonEmpty(item.Kind, "-") + " / " + numberOr(item.GSM, "-")},
		{"Ancho", numberOr(item.Width, "-")},
		{"Peso", formatWeight(decimal.NewFromFloat(item.Weight))},
		{"Recepción", recv},
	} {
		m.AddRows(row.New(6).Add(
			col.New(5).Add(text.New(kv[0], props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1})),
			col.New(7).Add(text.New(kv[1], props.Text{Size: 9, Top: 1})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// dashboardHeaderRow: planta y clase (izq), fecha y totales (der).
func dashboardHeaderRow(dash *report.AgingDashboard) core.Row {
	title := "Paper Roll"
	if dash.Class == entity.ClassFinishedGood {
		title = "Finished Goods"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ANTIGÜEDAD DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title+"  |  Planta "+dash.Plant, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+dash.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d ítems  |  %s", dash.Total.Rolls, formatWeight(dash.Total.Weight)), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tramo (días)", 2, align.Left),
		h("Tipo", 3, align.Left),
		h("Gramaje", 2, align.Center),
		h("Ancho", 1, align.Center),
		h("Ítems", 1, align.Right),
		h("Peso", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// bucketRows: fila resumen del tramo y una fila por cada nivel del árbol.
func bucketRows(b *report.BucketStat) []core.Row {
	rows := []core.Row{
		detailRow(b.Bucket, "", "", "", b.Tally, true).WithStyle(&props.Cell{BackgroundColor: colorBand}),
	}
	for _, k := range b.Kinds {
		rows = append(rows, detailRow("", k.Kind, "", "", k.Tally, true))
		for _, gs := range k.GSMs {
			rows = append(rows, detailRow("", "", gs.GSM, "", gs.Tally, false))
			for _, w := range gs.Widths {
				rows = append(rows, detailRow("", "", "", w.Width, w.Tally, false))
			}
		}
	}
	return rows
}

func detailRow(bucket, kind, gsm, width string, t report.Tally, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: style, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		cell(bucket, 2, align.Left),
		cell(kind, 3, align.Left),
		cell(gsm, 2, align.Center),
		cell(width, 1, align.Center),
		cell(strconv.Itoa(t.Rolls), 1, align.Right),
		cell(formatWeight(t.Weight), 3, align.Right),
	)
}

func totalRow(t report.Tally) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(1).Add(text.New(strconv.Itoa(t.Rolls), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1,
		})),
		col.New(3).Add(text.New(formatWeight(t.Weight), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func numberOr(f float64, fallback string) string {
	if f == 0 {
		return fallback
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatWeight kilos redondeados con puntos de miles. Ej: 1234567.8 → "1.234.568 kg"
func formatWeight(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg, s = true, s[1:]
	}
	s = groupThousands(s)
	if neg {
		s = "-" + s
	}
	return s + " kg"
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
