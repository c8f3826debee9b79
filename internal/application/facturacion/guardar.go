package facturacion

import (
	"context"
	"fmt"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
	"github.com/BILLYG1010/deportes-facturador/pkg/logger"
)

// GuardarFacturaUseCase ejecuta la secuencia de guardado contra el backend.
// Cabecera y líneas son recursos CRUD separados en el backend, así que el
// guardado es una secuencia ordenada de llamadas, no una transacción:
//
//	1. borrar cada id del libro de eliminaciones
//	2. upsert de la cabecera (crear si es nueva) y obtener el id canónico
//	3. actualizar o crear cada línea superviviente
//	4. vaciar el libro de eliminaciones
//
// Cualquier fallo corta la secuencia en ese punto y deja el libro y las líneas
// como estaban antes del intento; las llamadas ya aplicadas en el backend no se
// deshacen (entrega at-least-once: el usuario reintenta el guardado).
type GuardarFacturaUseCase struct {
	facturas repository.FacturaRepository
	detalles repository.DetalleFacturaRepository
	log      *logger.Logger
}

// NewGuardarFacturaUseCase construye el caso de uso.
func NewGuardarFacturaUseCase(
	facturas repository.FacturaRepository,
	detalles repository.DetalleFacturaRepository,
	log *logger.Logger,
) *GuardarFacturaUseCase {
	return &GuardarFacturaUseCase{facturas: facturas, detalles: detalles, log: log}
}

// Guardar valida el borrador y ejecuta la secuencia de guardado. La validación
// ocurre antes de cualquier llamada de red. Mientras el guardado está en vuelo
// se rechazan guardados o certificaciones reentrantes sobre la misma sesión.
func (uc *GuardarFacturaUseCase) Guardar(ctx context.Context, s *Sesion) (errGuardar error) {
	if err := s.comenzarOperacion(false); err != nil {
		return err
	}
	defer func() { s.terminarOperacion(errGuardar) }()

	if err := s.validarParaGuardar(); err != nil {
		return err
	}

	factura := s.Factura()
	lineas := s.Lineas()
	eliminadas := s.IdsEliminados()

	// 1) Borrados primero: evita conflictos referenciales en el backend antes
	// de tocar las líneas que sobreviven.
	for _, idDetalle := range eliminadas {
		if err := uc.detalles.Eliminar(ctx, idDetalle); err != nil {
			return fmt.Errorf("eliminar detalle %d: %w", idDetalle, err)
		}
	}

	// 2) Upsert de la cabecera. El backend exige siempre un número de
	// autorización: si no hay uno, viaja un relleno temporal.
	numeroEnvio := factura.NumeroAutorizacion
	if numeroEnvio == "" {
		numeroEnvio = entity.NuevaAutorizacionTemporal()
	}
	cabecera := factura
	cabecera.NumeroAutorizacion = numeroEnvio
	cabecera.Correlativo = nil // lo asigna el backend

	var canonica *entity.Factura
	var err error
	if factura.ID == nil {
		canonica, err = uc.facturas.Crear(ctx, &cabecera)
	} else {
		canonica, err = uc.facturas.Actualizar(ctx, *factura.ID, &cabecera)
	}
	if err != nil {
		return fmt.Errorf("guardar cabecera: %w", err)
	}
	if canonica == nil || canonica.ID == nil {
		return fmt.Errorf("no se pudo obtener el id de la factura")
	}
	idFactura := *canonica.ID

	// 3) Líneas supervivientes: update si ya tienen id de backend, create si
	// no. El orden relativo entre líneas no importa.
	for i := range lineas {
		linea := lineas[i]
		linea.IDFactura = &idFactura
		linea.Subtotal = linea.CalcularSubtotal().Round(2)
		if linea.IDDetalle != nil {
			if err := uc.detalles.Actualizar(ctx, &linea); err != nil {
				return fmt.Errorf("actualizar detalle %d: %w", *linea.IDDetalle, err)
			}
			continue
		}
		creada, err := uc.detalles.Crear(ctx, &linea)
		if err != nil {
			return fmt.Errorf("crear detalle: %w", err)
		}
		if creada == nil || creada.IDDetalle == nil {
			return fmt.Errorf("el backend no devolvió id para la línea creada")
		}
		s.fijarLineaPersistida(linea.LocalID, *creada.IDDetalle, idFactura)
	}

	// 4) Secuencia completa sin error: la sesión se reapunta al id canónico y
	// el libro de eliminaciones se vacía.
	s.aplicarResultadoGuardado(canonica, numeroEnvio)

	if uc.log != nil {
		uc.log.Info().
			Int64("id_factura", idFactura).
			Int("lineas", len(lineas)).
			Int("eliminadas", len(eliminadas)).
			Msg("factura guardada")
	}
	return nil
}

// ── Aplicación de resultados sobre la sesión ──────────────────────────────────

// fijarLineaPersistida estampa el id de backend en la línea recién creada.
func (s *Sesion) fijarLineaPersistida(localID string, idDetalle, idFactura int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if linea := s.buscarLinea(localID); linea != nil {
		linea.IDDetalle = &idDetalle
		linea.IDFactura = &idFactura
	}
}

// aplicarResultadoGuardado estampa los campos canónicos del backend tras un
// guardado completo y vacía el libro de eliminaciones.
func (s *Sesion) aplicarResultadoGuardado(canonica *entity.Factura, numeroEnviado string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.factura.ID = canonica.ID
	if canonica.UUID != nil {
		s.factura.UUID = canonica.UUID
	}
	if canonica.FechaEmision != nil {
		s.factura.FechaEmision = canonica.FechaEmision
	}
	if canonica.Correlativo != nil {
		s.factura.Correlativo = canonica.Correlativo
	}
	s.factura.NumeroAutorizacion = numeroEnviado
	s.idsEliminados = nil
}
