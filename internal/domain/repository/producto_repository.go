package repository

import (
	"context"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

// ProductoRepository define el puerto hacia el endpoint /productos del backend.
type ProductoRepository interface {
	Listar(ctx context.Context) ([]*entity.Producto, error)
	Obtener(ctx context.Context, id int64) (*entity.Producto, error)
	Crear(ctx context.Context, p *entity.Producto) (*entity.Producto, error)
	Actualizar(ctx context.Context, id int64, p *entity.Producto) (*entity.Producto, error)
	Eliminar(ctx context.Context, id int64) error
}
