// Package pdf implementa la representación imprimible de la factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Deportes  │  Referencia + Fecha de emisión          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + NIT + Dirección                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Descripción | Cant | P.Unit | Desc | Sub  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / TOTAL                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER FEL: Autorización + QR + leyenda (si certificada)    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/BILLYG1010/deportes-facturador/internal/application/facturacion"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// nombreEmpresa razón social fija del emisor.
const nombreEmpresa = "Deportes"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa facturacion.GeneradorPDF usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarFacturaPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarFacturaPDF(_ context.Context, datos *facturacion.DatosPDF) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+datos.Referencia, true).
		WithAuthor(nombreEmpresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(datos))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(datos.Cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(datos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRow(&datos.Factura))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range felFooterRows(&datos.Factura) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social (izq) y referencia + fecha (der).
func headerRow(datos *facturacion.DatosPDF) core.Row {
	fecha := "-"
	if datos.Factura.FechaEmision != nil {
		fecha = datos.Factura.FechaEmision.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(nombreEmpresa, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(datos.Factura.EtiquetaEstado(), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA ELECTRÓNICA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(datos.Referencia, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del receptor.
func clienteRow(cliente *entity.Cliente) core.Row {
	nombre, nit, direccion := "Consumidor final", "CF", "-"
	if cliente != nil {
		nombre = cliente.Nombre
		nit = nonEmpty(cliente.NIT, "CF")
		direccion = nonEmpty(cliente.Direccion, "-")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIT: %s   |   Dirección: %s", nit, direccion),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Producto", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Desc.", 1, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea de la factura.
func tableDetailRows(datos *facturacion.DatosPDF) []core.Row {
	result := make([]core.Row, 0, len(datos.Lineas))
	for _, l := range datos.Lineas {
		producto := "-"
		if l.IDProducto != nil {
			if p, ok := datos.Productos[*l.IDProducto]; ok {
				producto = p.Nombre
			}
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				producto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				l.Descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				l.Cantidad.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"Q "+formatQuetzales(l.PrecioUnitario.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				"Q "+formatQuetzales(l.Descuento.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"Q "+formatQuetzales(l.CalcularSubtotal().Round(2).StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalesRow: bloque de totales alineado a la derecha.
func totalesRow(f *entity.Factura) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(18).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value("Q "+formatQuetzales(f.Subtotal.StringFixed(2))),
			grandValue("Q "+formatQuetzales(f.Total.StringFixed(2))),
		),
	)
}

// felFooterRows: autorización FEL + QR + leyenda, solo si está certificada.
func felFooterRows(f *entity.Factura) []core.Row {
	if !f.EstaCertificada() {
		return []core.Row{
			row.New(10).Add(col.New(12).Add(
				text.New("DOCUMENTO SIN CERTIFICAR - no tiene validez fiscal",
					props.Text{
						Style: fontstyle.Bold, Size: 9, Align: align.Center,
						Color: colorGray, Top: 2,
					}),
			)),
		}
	}

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CERTIFICACIÓN FEL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("Número de autorización: "+f.NumeroAutorizacion, props.Text{
				Size: 7.5, Top: 1, Left: 2,
			}),
		)),
	}
	if f.CodigoCertificacion != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Código de certificación: "+f.CodigoCertificacion, props.Text{
				Size: 7.5, Top: 1, Left: 2, Color: colorGray,
			}),
		)))
	}
	if f.FechaCertificacion != nil {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Certificada el "+f.FechaCertificacion.Format("02/01/2006 15:04"), props.Text{
				Size: 7.5, Top: 1, Left: 2, Color: colorGray,
			}),
		)))
	}

	rows = append(rows, row.New(3))
	rows = append(rows, row.New(45).Add(
		col.New(4).Add(code.NewQr(datosQR(f), props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código QR para verificar\nla autorización de esta factura.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("FACTURA ELECTRÓNICA CERTIFICADA", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 22,
				Left: 3, Color: colorPrimary,
			}),
		),
	))
	return rows
}

// datosQR arma el contenido del QR: autorización, referencia y uuid si existe.
func datosQR(f *entity.Factura) string {
	partes := []string{"aut=" + f.NumeroAutorizacion, "ref=" + f.Referencia()}
	if f.UUID != nil {
		partes = append(partes, "uuid="+*f.UUID)
	}
	return strings.Join(partes, "&")
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatQuetzales inserta comas de miles en un monto "1234.56" → "1,234.56".
func formatQuetzales(s string) string {
	entero, dec, _ := strings.Cut(s, ".")
	n := len(entero)
	if n <= 3 {
		if dec != "" {
			return entero + "." + dec
		}
		return entero
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, entero[i])
	}
	if dec != "" {
		return string(buf) + "." + dec
	}
	return string(buf)
}
