package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/BILLYG1010/deportes-facturador/internal/application/catalogo"
	"github.com/BILLYG1010/deportes-facturador/internal/application/facturacion"
	infrafel "github.com/BILLYG1010/deportes-facturador/internal/infrastructure/fel"
	infrapdf "github.com/BILLYG1010/deportes-facturador/internal/infrastructure/pdf"
	"github.com/BILLYG1010/deportes-facturador/internal/infrastructure/restapi"
	httpRouter "github.com/BILLYG1010/deportes-facturador/internal/interfaces/http"
	"github.com/BILLYG1010/deportes-facturador/pkg/config"
	"github.com/BILLYG1010/deportes-facturador/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	// Backend REST de persistencia
	client := restapi.NewClient(
		cfg.Backend.BaseURL,
		cfg.Backend.APIKey,
		time.Duration(cfg.Backend.TimeoutSegundos)*time.Second,
	)
	facturaRepo := restapi.NewFacturaRESTRepository(client)
	detalleRepo := restapi.NewDetalleRESTRepository(client)
	clienteRepo := restapi.NewClienteRESTRepository(client)
	productoRepo := restapi.NewProductoRESTRepository(client)

	// Certificador FEL (simulado) y generador de PDF
	certificador := infrafel.NewCertificadorSimulado(
		time.Duration(cfg.FEL.RetrasoMs)*time.Millisecond, log,
	)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	// Casos de uso
	cargarUC := facturacion.NewCargarFacturaUseCase(facturaRepo, detalleRepo)
	guardarUC := facturacion.NewGuardarFacturaUseCase(facturaRepo, detalleRepo, log)
	certificarUC := facturacion.NewCertificarFacturaUseCase(facturaRepo, certificador, log)
	consultaUC := facturacion.NewConsultaFacturasUseCase(facturaRepo)
	pdfUC := facturacion.NewPDFUseCase(pdfGenerator)
	clientesUC := catalogo.NewClientesUseCase(clienteRepo)
	productosUC := catalogo.NewProductosUseCase(productoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // el PDF y la certificación pueden tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Deportes Facturador API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CargarUC:     cargarUC,
		GuardarUC:    guardarUC,
		CertificarUC: certificarUC,
		ConsultaUC:   consultaUC,
		PDFUC:        pdfUC,
		ClientesUC:   clientesUC,
		ProductosUC:  productosUC,
		Emisor: httpRouter.EmisorConfig{
			Serie:           cfg.FEL.Serie,
			IDClienteEmisor: cfg.FEL.IDClienteEmisor,
			IDUsuario:       cfg.FEL.IDUsuario,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
