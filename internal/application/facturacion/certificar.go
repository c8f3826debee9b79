package facturacion

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BILLYG1010/deportes-facturador/internal/domain"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
	"github.com/BILLYG1010/deportes-facturador/pkg/logger"
)

// plazoCertificacion acota la certificación completa (certificador + upsert de
// confirmación): la operación falla en vez de colgarse indefinidamente.
const plazoCertificacion = 30 * time.Second

// CertificarFacturaUseCase ejecuta el flujo de certificación FEL:
// llama al certificador, aplica los sellos de forma optimista sobre la sesión
// y confirma persistiendo la cabecera con el mismo upsert del guardado normal.
//
// Si la confirmación contra el backend falla, la sesión se revierte al estado
// guardado-sin-certificar y el error se muestra al usuario; no se deja la
// factura certificada solo del lado del cliente.
type CertificarFacturaUseCase struct {
	facturas     repository.FacturaRepository
	certificador Certificador
	log          *logger.Logger

	mu      sync.Mutex
	enCurso map[int64]struct{} // facturas con certificación en vuelo
}

// NewCertificarFacturaUseCase construye el caso de uso.
func NewCertificarFacturaUseCase(
	facturas repository.FacturaRepository,
	certificador Certificador,
	log *logger.Logger,
) *CertificarFacturaUseCase {
	return &CertificarFacturaUseCase{
		facturas:     facturas,
		certificador: certificador,
		log:          log,
		enCurso:      make(map[int64]struct{}),
	}
}

// EnCurso indica si la factura tiene una certificación en vuelo.
func (uc *CertificarFacturaUseCase) EnCurso(idFactura int64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.enCurso[idFactura]
	return ok
}

func (uc *CertificarFacturaUseCase) marcarEnCurso(idFactura int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.enCurso[idFactura]; ok {
		return domain.ErrOperacionEnCurso
	}
	uc.enCurso[idFactura] = struct{}{}
	return nil
}

func (uc *CertificarFacturaUseCase) desmarcarEnCurso(idFactura int64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.enCurso, idFactura)
}

// Certificar ejecuta el flujo completo de forma síncrona.
// Una factura nunca guardada no puede certificarse: se rechaza localmente con
// un error de validación, sin ninguna llamada de red.
func (uc *CertificarFacturaUseCase) Certificar(ctx context.Context, s *Sesion) (errCert error) {
	factura := s.Factura()
	if factura.ID == nil {
		return domain.NuevaValidacion("Primero guarda la factura antes de certificar.")
	}
	idFactura := *factura.ID

	if err := uc.marcarEnCurso(idFactura); err != nil {
		return err
	}
	defer uc.desmarcarEnCurso(idFactura)

	if err := s.comenzarOperacion(true); err != nil {
		return err
	}
	defer func() { s.terminarOperacion(errCert) }()

	resultado, err := uc.certificador.Certificar(ctx, idFactura)
	if err != nil {
		return fmt.Errorf("certificador: %w", err)
	}

	// Sellos optimistas: el editor refleja la certificación de inmediato,
	// con la confirmación del backend todavía pendiente.
	previa := s.Factura()
	s.aplicarCertificacionOptimista(resultado)

	cabecera := s.Factura()
	canonica, err := uc.facturas.Actualizar(ctx, idFactura, &cabecera)
	if err != nil {
		s.revertirCertificacion(previa)
		return fmt.Errorf("confirmar certificación: %w", err)
	}
	s.confirmarCertificacion(canonica)

	if uc.log != nil {
		uc.log.Info().
			Int64("id_factura", idFactura).
			Str("autorizacion", resultado.NumeroAutorizacion).
			Msg("factura certificada")
	}
	return nil
}

// CertificarAsync valida localmente y dispara la certificación en una
// goroutine independiente con su propio contexto y plazo, desacoplada del
// ciclo HTTP. El resultado queda en el backend (y en el log si falla).
func (uc *CertificarFacturaUseCase) CertificarAsync(s *Sesion) error {
	factura := s.Factura()
	if factura.ID == nil {
		return domain.NuevaValidacion("Primero guarda la factura antes de certificar.")
	}
	if uc.EnCurso(*factura.ID) {
		return domain.ErrOperacionEnCurso
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), plazoCertificacion)
		defer cancel()
		if err := uc.Certificar(ctx, s); err != nil && uc.log != nil {
			uc.log.Error().Err(err).
				Int64("id_factura", *factura.ID).
				Msg("certificación fallida; la factura sigue sin certificar")
		}
	}()
	return nil
}

// ── Mutaciones de certificación sobre la sesión ───────────────────────────────

func (s *Sesion) aplicarCertificacionOptimista(r *ResultadoCertificacion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fecha := r.FechaCertificacion
	s.factura.Estado = entity.EstadoCertificada
	s.factura.NumeroAutorizacion = r.NumeroAutorizacion
	s.factura.FechaCertificacion = &fecha
	s.factura.CodigoCertificacion = r.CodigoCertificacion
	s.pendienteConfirmar = true
}

// revertirCertificacion devuelve la cabecera al estado previo al intento.
func (s *Sesion) revertirCertificacion(previa entity.Factura) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.factura.Estado = previa.Estado
	s.factura.NumeroAutorizacion = previa.NumeroAutorizacion
	s.factura.FechaCertificacion = previa.FechaCertificacion
	s.factura.CodigoCertificacion = previa.CodigoCertificacion
	s.pendienteConfirmar = false
}

func (s *Sesion) confirmarCertificacion(canonica *entity.Factura) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if canonica != nil {
		if canonica.UUID != nil {
			s.factura.UUID = canonica.UUID
		}
		if canonica.Correlativo != nil {
			s.factura.Correlativo = canonica.Correlativo
		}
	}
	s.pendienteConfirmar = false
}

// PendienteConfirmar indica si hay sellos optimistas aún sin confirmación del
// backend (solo observable en medio de una certificación).
func (s *Sesion) PendienteConfirmar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendienteConfirmar
}
