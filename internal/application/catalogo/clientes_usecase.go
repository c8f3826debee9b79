package catalogo

import (
	"context"
	"strings"

	"github.com/BILLYG1010/deportes-facturador/internal/domain"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
)

// ClientesUseCase operaciones del catálogo de clientes sobre el backend.
type ClientesUseCase struct {
	clientes repository.ClienteRepository
}

// NewClientesUseCase construye el caso de uso.
func NewClientesUseCase(clientes repository.ClienteRepository) *ClientesUseCase {
	return &ClientesUseCase{clientes: clientes}
}

// Listar busca clientes con filtros y paginación. Límite por defecto: 20.
func (uc *ClientesUseCase) Listar(ctx context.Context, filtro repository.FiltroClientes) ([]*entity.Cliente, *repository.MetaPagina, error) {
	if filtro.Limite <= 0 {
		filtro.Limite = 20
	}
	if filtro.Offset < 0 {
		filtro.Offset = 0
	}
	return uc.clientes.Listar(ctx, filtro)
}

// Obtener devuelve un cliente por id.
func (uc *ClientesUseCase) Obtener(ctx context.Context, id int64) (*entity.Cliente, error) {
	cliente, err := uc.clientes.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return cliente, nil
}

// Crear registra un cliente nuevo. NIT y nombre son obligatorios; se valida
// localmente antes de la llamada de red.
func (uc *ClientesUseCase) Crear(ctx context.Context, c *entity.Cliente) (*entity.Cliente, error) {
	c.NIT = strings.TrimSpace(c.NIT)
	c.Nombre = strings.TrimSpace(c.Nombre)
	if c.NIT == "" {
		return nil, domain.NuevaValidacion("El NIT es obligatorio.")
	}
	if c.Nombre == "" {
		return nil, domain.NuevaValidacion("El nombre es obligatorio.")
	}
	return uc.clientes.Crear(ctx, c)
}

// ActualizarParcial envía solo los campos presentes (PATCH). Un cambio sin
// ningún campo es un error de validación, no un viaje en vano al backend.
func (uc *ClientesUseCase) ActualizarParcial(ctx context.Context, id int64, cambios repository.CambiosCliente) (*entity.Cliente, error) {
	if cambios.Vacio() {
		return nil, domain.NuevaValidacion("No se enviaron campos para actualizar.")
	}
	return uc.clientes.ActualizarParcial(ctx, id, cambios)
}
