package facturacion

import (
	"context"
	"fmt"
	"sync"

	"github.com/BILLYG1010/deportes-facturador/internal/domain"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

// fakeFacturas implementa repository.FacturaRepository en memoria y registra
// cada llamada en ops para verificar el orden de la secuencia de guardado.
type fakeFacturas struct {
	mu          sync.Mutex
	ops         *[]string
	siguienteID int64
	facturas    map[int64]*entity.Factura

	errActualizar error
}

func newFakeFacturas(ops *[]string) *fakeFacturas {
	return &fakeFacturas{ops: ops, siguienteID: 100, facturas: make(map[int64]*entity.Factura)}
}

func (f *fakeFacturas) anotar(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ops != nil {
		*f.ops = append(*f.ops, op)
	}
}

func (f *fakeFacturas) Listar(context.Context) ([]*entity.Factura, error) {
	f.anotar("listar facturas")
	out := make([]*entity.Factura, 0, len(f.facturas))
	for _, fac := range f.facturas {
		out = append(out, fac)
	}
	return out, nil
}

func (f *fakeFacturas) Obtener(_ context.Context, id int64) (*entity.Factura, error) {
	f.anotar(fmt.Sprintf("obtener factura %d", id))
	fac, ok := f.facturas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *fac
	return &copia, nil
}

func (f *fakeFacturas) Crear(_ context.Context, fac *entity.Factura) (*entity.Factura, error) {
	f.anotar("crear factura")
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.siguienteID
	f.siguienteID++

	canonica := *fac
	canonica.ID = &id
	uuid := fmt.Sprintf("uuid-%d", id)
	canonica.UUID = &uuid
	correlativo := id
	canonica.Correlativo = &correlativo
	f.facturas[id] = &canonica
	copia := canonica
	return &copia, nil
}

func (f *fakeFacturas) Actualizar(_ context.Context, id int64, fac *entity.Factura) (*entity.Factura, error) {
	f.anotar(fmt.Sprintf("actualizar factura %d", id))
	if f.errActualizar != nil {
		return nil, f.errActualizar
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	canonica := *fac
	canonica.ID = &id
	f.facturas[id] = &canonica
	copia := canonica
	return &copia, nil
}

func (f *fakeFacturas) Anular(_ context.Context, id int64) error {
	f.anotar(fmt.Sprintf("anular factura %d", id))
	if fac, ok := f.facturas[id]; ok {
		fac.Estado = entity.EstadoAnulada
	}
	return nil
}

// fakeDetalles implementa repository.DetalleFacturaRepository en memoria.
type fakeDetalles struct {
	mu          sync.Mutex
	ops         *[]string
	siguienteID int64

	errEliminar error
	errCrear    error
}

func newFakeDetalles(ops *[]string) *fakeDetalles {
	return &fakeDetalles{ops: ops, siguienteID: 500}
}

func (f *fakeDetalles) anotar(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ops != nil {
		*f.ops = append(*f.ops, op)
	}
}

func (f *fakeDetalles) ListarPorFactura(_ context.Context, idFactura int64) ([]*entity.DetalleFactura, error) {
	f.anotar(fmt.Sprintf("listar detalles %d", idFactura))
	return nil, nil
}

func (f *fakeDetalles) Crear(_ context.Context, d *entity.DetalleFactura) (*entity.DetalleFactura, error) {
	f.anotar("crear detalle")
	if f.errCrear != nil {
		return nil, f.errCrear
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.siguienteID
	f.siguienteID++
	creada := *d
	creada.IDDetalle = &id
	return &creada, nil
}

func (f *fakeDetalles) Actualizar(_ context.Context, d *entity.DetalleFactura) error {
	f.anotar(fmt.Sprintf("actualizar detalle %d", *d.IDDetalle))
	return nil
}

func (f *fakeDetalles) Eliminar(_ context.Context, idDetalle int64) error {
	f.anotar(fmt.Sprintf("eliminar detalle %d", idDetalle))
	return f.errEliminar
}

// fakeCertificador implementa Certificador con resultado o error fijos.
type fakeCertificador struct {
	resultado *ResultadoCertificacion
	err       error
	llamadas  int
}

func (f *fakeCertificador) Certificar(context.Context, int64) (*ResultadoCertificacion, error) {
	f.llamadas++
	if f.err != nil {
		return nil, f.err
	}
	return f.resultado, nil
}
