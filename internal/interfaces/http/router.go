package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BILLYG1010/deportes-facturador/internal/application/catalogo"
	"github.com/BILLYG1010/deportes-facturador/internal/application/facturacion"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CargarUC     *facturacion.CargarFacturaUseCase
	GuardarUC    *facturacion.GuardarFacturaUseCase
	CertificarUC *facturacion.CertificarFacturaUseCase
	ConsultaUC   *facturacion.ConsultaFacturasUseCase
	PDFUC        *facturacion.PDFUseCase
	ClientesUC   *catalogo.ClientesUseCase
	ProductosUC  *catalogo.ProductosUseCase
	Emisor       EmisorConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clientes
	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClientesUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Patch("/:id", clienteHandler.Update)

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductosUC)
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Create)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Facturas
	facturas := api.Group("/facturas")
	facturaHandler := NewFacturaHandler(
		deps.CargarUC, deps.GuardarUC, deps.CertificarUC, deps.ConsultaUC,
		deps.PDFUC, deps.ClientesUC, deps.ProductosUC, deps.Emisor,
	)
	facturas.Get("/", facturaHandler.List)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Put("/:id", facturaHandler.Update)
	facturas.Patch("/:id/anular", facturaHandler.Anular)
	facturas.Post("/:id/certificar", facturaHandler.Certificar)
	facturas.Get("/:id/pdf", facturaHandler.PDF)
}
