// Package fel contiene el certificador de facturas electrónicas. La
// implementación actual es un simulador local: espera una latencia
// configurable y emite sellos con el formato del certificador real, sin
// hablar con ningún servicio externo.
package fel

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/BILLYG1010/deportes-facturador/internal/application/facturacion"
	"github.com/BILLYG1010/deportes-facturador/pkg/logger"
)

// RetrasoPorDefecto es la latencia simulada si no se configura otra.
const RetrasoPorDefecto = 1200 * time.Millisecond

// CertificadorSimulado implementa facturacion.Certificador sin red.
type CertificadorSimulado struct {
	retraso time.Duration
	log     *logger.Logger
}

// NewCertificadorSimulado construye el simulador. retraso <= 0 usa el valor
// por defecto.
func NewCertificadorSimulado(retraso time.Duration, log *logger.Logger) *CertificadorSimulado {
	if retraso <= 0 {
		retraso = RetrasoPorDefecto
	}
	return &CertificadorSimulado{retraso: retraso, log: log}
}

// Certificar simula la certificación FEL: espera la latencia configurada y
// devuelve código, autorización y fecha. Respeta la cancelación del contexto
// durante la espera.
func (c *CertificadorSimulado) Certificar(ctx context.Context, idFactura int64) (*facturacion.ResultadoCertificacion, error) {
	timer := time.NewTimer(c.retraso)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("fel: certificación de la factura %d interrumpida: %w", idFactura, ctx.Err())
	case <-timer.C:
	}

	resultado := &facturacion.ResultadoCertificacion{
		CodigoCertificacion: fmt.Sprintf("FEL-%06d-%d", idFactura, rand.Intn(9000)+1000),
		NumeroAutorizacion:  fmt.Sprintf("AUT-%d", rand.Intn(900000)+100000),
		FechaCertificacion:  time.Now(),
	}
	if c.log != nil {
		c.log.Info().
			Int64("id_factura", idFactura).
			Str("codigo", resultado.CodigoCertificacion).
			Msg("certificación simulada emitida")
	}
	return resultado, nil
}
