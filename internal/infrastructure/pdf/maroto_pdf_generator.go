// Package pdf implementa la representación imprimible de un romaneo de carga.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: RifaPro + ROMANEO DE CARGA + N° + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Ciudad/Estado                            │
//	│  CAMIÓN: Placa + Modelo   MOTORISTA: CPF/CNH + Teléfono     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VIAJE: Status | Salida | Retorno | Sincronización          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL ROMANEO                                          │
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

	"github.com/rifapro/rifapro-api/internal/application/usecase"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
)

var _ usecase.NotePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 183, Green: 28, Blue: 28}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.NotePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateNotePDF genera el PDF del romaneo y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateNotePDF(
	_ context.Context,
	note *entity.Note,
	truck *entity.Truck,
	driver *entity.Driver,
	client *entity.Client,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Romaneo de carga", true).
		WithAuthor("RifaPro", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(note))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(transportRow(truck, driver))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tripRow(note))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(note))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y N° de romaneo + fecha (der).
func headerRow(note *entity.Note) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("RifaPro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestión logística", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ROMANEO DE CARGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(note.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+note.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente del viaje.
func clientRow(client *entity.Client) core.Row {
	name, location := "—", "—"
	if client != nil {
		name = client.Name
		location = nonEmpty(client.City, "—") + " / " + nonEmpty(client.State, "—")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", name, location),
				props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	)
}

// transportRow: camión (izq) y motorista (der).
func transportRow(truck *entity.Truck, driver *entity.Driver) core.Row {
	truckLine := "—"
	if truck != nil {
		truckLine = fmt.Sprintf("Placa: %s   |   Modelo: %s",
			nonEmpty(truck.Plate, "—"), nonEmpty(truck.Model, "—"))
	}
	driverLine := "—"
	if driver != nil {
		driverLine = fmt.Sprintf("CPF: %s   |   CNH: %s   |   Tel: %s",
			nonEmpty(driver.CPF, "—"), nonEmpty(driver.CNH, "—"), nonEmpty(driver.Phone, "—"))
	}
	return row.New(14).Add(
		col.New(6).Add(
			text.New("CAMIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(truckLine, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("MOTORISTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(driverLine, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tripRow: estado del viaje y fechas de salida/retorno.
func tripRow(note *entity.Note) core.Row {
	cell := func(label, value string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(value, props.Text{Size: 9, Top: 7}),
		)
	}
	return row.New(14).Add(
		cell("STATUS", note.Status, 3),
		cell("SALIDA", formatDate(note.DepartureDate), 3),
		cell("RETORNO", formatDate(note.ReturnDate), 3),
		cell("SINCRONIZACIÓN", note.SyncStatus, 3),
	)
}

// totalRow: monto total del romaneo.
func totalRow(note *entity.Note) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TOTAL DEL ROMANEO", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
			}),
			text.New("$ "+note.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Right: 1, Top: 6,
				Color: colorPrimary,
			}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02/01/2006 15:04")
}
