package facturacion

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BILLYG1010/deportes-facturador/internal/domain"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

// Estados de certificación visibles en la pestaña FEL del editor.
// Son mutuamente excluyentes.
const (
	CertSinCertificar = "sin_certificar"
	CertEnProceso     = "certificando"
	CertCertificada   = "certificada"
)

// Sesion es la sesión de edición de una factura: cabecera, libro de líneas y
// libro de eliminaciones. Es dueña exclusiva de ese estado; el mutex solo
// protege lecturas concurrentes mientras un guardado o certificación está en
// vuelo. Toda mutación del libro recalcula los totales de forma síncrona, de
// modo que nunca se observa una línea y un total inconsistentes.
type Sesion struct {
	mu      sync.Mutex
	factura entity.Factura
	lineas  []*entity.DetalleFactura

	// idsEliminados acumula los id_detalle persistidos que el usuario quitó
	// desde el último guardado exitoso. Solo entran ids ya persistidos y cada
	// id entra una sola vez. Se vacía al completar un guardado.
	idsEliminados []int64

	guardando          bool
	certificando       bool
	pendienteConfirmar bool // certificación aplicada localmente, sin confirmar por el backend
	ultimoError        string
}

// NuevaSesion crea la sesión de una factura nueva (sin id, estado pendiente,
// autorización temporal).
func NuevaSesion(idEmisor, idUsuario int64, serie string) *Sesion {
	if serie == "" {
		serie = "A"
	}
	return &Sesion{
		factura: entity.Factura{
			IDClienteEmisor:    idEmisor,
			IDUsuario:          idUsuario,
			Serie:              serie,
			Estado:             entity.EstadoPendiente,
			Subtotal:           decimal.Zero,
			Total:              decimal.Zero,
			NumeroAutorizacion: entity.NuevaAutorizacionTemporal(),
		},
	}
}

// SesionDesdeFactura crea la sesión de una factura ya existente: las líneas
// cargadas del backend son la línea base contra la cual se difiere al guardar.
func SesionDesdeFactura(f *entity.Factura, detalles []*entity.DetalleFactura) *Sesion {
	s := &Sesion{factura: *f}
	// Una autorización vacía solo se rellena con el placeholder temporal si la
	// factura no está certificada: estado=1 sin autorización sigue certificada.
	if s.factura.NumeroAutorizacion == "" && !s.factura.EstaCertificada() {
		s.factura.NumeroAutorizacion = entity.NuevaAutorizacionTemporal()
	}
	// El backend no guarda un código de certificación aparte: para una factura
	// certificada se muestra el número de autorización como código.
	if s.factura.CodigoCertificacion == "" && s.factura.EstaCertificada() {
		s.factura.CodigoCertificacion = s.factura.NumeroAutorizacion
	}
	for _, d := range detalles {
		linea := *d
		if linea.LocalID == "" {
			linea.LocalID = uuid.New().String()
		}
		linea.Subtotal = linea.CalcularSubtotal()
		s.lineas = append(s.lineas, &linea)
	}
	s.recalcularTotales()
	return s
}

// ── Libro de líneas ───────────────────────────────────────────────────────────

// AgregarLinea agrega una línea vacía (cantidad 1, montos en cero) con un
// identificador local nuevo y devuelve una copia de la línea creada.
func (s *Sesion) AgregarLinea() entity.DetalleFactura {
	s.mu.Lock()
	defer s.mu.Unlock()

	linea := &entity.DetalleFactura{
		LocalID:        uuid.New().String(),
		Cantidad:       decimal.NewFromInt(1),
		PrecioUnitario: decimal.Zero,
		Descuento:      decimal.Zero,
		Subtotal:       decimal.Zero,
	}
	s.lineas = append(s.lineas, linea)
	s.recalcularTotales()
	return *linea
}

// PatchLinea son los campos a fusionar en una línea; los nil no se tocan.
type PatchLinea struct {
	IDProducto     *int64
	Descripcion    *string
	Cantidad       *decimal.Decimal
	PrecioUnitario *decimal.Decimal
	Descuento      *decimal.Decimal
}

// ActualizarLinea fusiona los campos del patch en la línea con ese LocalID,
// recalcula su subtotal y los totales de la factura. Si el LocalID no existe
// es un no-op silencioso: no debería ocurrir con un cliente correcto, pero no
// debe reventar la sesión.
func (s *Sesion) ActualizarLinea(localID string, p PatchLinea) {
	s.mu.Lock()
	defer s.mu.Unlock()

	linea := s.buscarLinea(localID)
	if linea == nil {
		return
	}
	if p.IDProducto != nil {
		id := *p.IDProducto
		linea.IDProducto = &id
	}
	if p.Descripcion != nil {
		linea.Descripcion = *p.Descripcion
	}
	if p.Cantidad != nil {
		linea.Cantidad = *p.Cantidad
	}
	if p.PrecioUnitario != nil {
		linea.PrecioUnitario = *p.PrecioUnitario
	}
	if p.Descuento != nil {
		linea.Descuento = *p.Descuento
	}
	linea.Subtotal = linea.CalcularSubtotal()
	s.recalcularTotales()
}

// SeleccionarProducto aplica un producto del catálogo a la línea: fija el id
// de producto y el precio unitario, y rellena la descripción solo si estaba
// vacía (el usuario puede haberla escrito a mano).
func (s *Sesion) SeleccionarProducto(localID string, producto *entity.Producto) {
	s.mu.Lock()
	defer s.mu.Unlock()

	linea := s.buscarLinea(localID)
	if linea == nil || producto == nil {
		return
	}
	id := producto.ID
	linea.IDProducto = &id
	if linea.Descripcion == "" {
		linea.Descripcion = producto.Nombre
	}
	linea.PrecioUnitario = producto.PrecioUnitario
	linea.Subtotal = linea.CalcularSubtotal()
	s.recalcularTotales()
}

// EliminarLinea quita la línea del libro activo. Si la línea ya estaba
// persistida, su id de backend pasa al libro de eliminaciones (una sola vez)
// para borrarla en el próximo guardado.
func (s *Sesion) EliminarLinea(localID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.lineas {
		if l.LocalID != localID {
			continue
		}
		if l.IDDetalle != nil {
			s.anotarEliminada(*l.IDDetalle)
		}
		s.lineas = append(s.lineas[:i], s.lineas[i+1:]...)
		s.recalcularTotales()
		return
	}
}

func (s *Sesion) buscarLinea(localID string) *entity.DetalleFactura {
	for _, l := range s.lineas {
		if l.LocalID == localID {
			return l
		}
	}
	return nil
}

func (s *Sesion) anotarEliminada(idDetalle int64) {
	for _, id := range s.idsEliminados {
		if id == idDetalle {
			return
		}
	}
	s.idsEliminados = append(s.idsEliminados, idDetalle)
}

// recalcularTotales suma los subtotales de línea con precisión completa y
// fija subtotal y total (iguales: sin IVA) redondeados a 2 decimales.
// El caller debe tener el lock.
func (s *Sesion) recalcularTotales() {
	suma := decimal.Zero
	for _, l := range s.lineas {
		suma = suma.Add(l.CalcularSubtotal())
	}
	suma = suma.Round(2)
	s.factura.Subtotal = suma
	s.factura.Total = suma
}

// ── Cabecera ──────────────────────────────────────────────────────────────────

// SeleccionarReceptor fija el cliente receptor de la factura.
func (s *Sesion) SeleccionarReceptor(idCliente int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.factura.IDClienteReceptor = idCliente
}

// EditarObservaciones reemplaza el texto libre de observaciones.
func (s *Sesion) EditarObservaciones(texto string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.factura.Observaciones = texto
}

// ── Lecturas (permitidas aun con guardado/certificación en vuelo) ─────────────

// Factura devuelve una copia de la cabecera actual.
func (s *Sesion) Factura() entity.Factura {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.factura
}

// Lineas devuelve copias de las líneas activas, en orden.
func (s *Sesion) Lineas() []entity.DetalleFactura {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.DetalleFactura, len(s.lineas))
	for i, l := range s.lineas {
		out[i] = *l
	}
	return out
}

// IdsEliminados devuelve una copia del libro de eliminaciones pendientes.
func (s *Sesion) IdsEliminados() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.idsEliminados))
	copy(out, s.idsEliminados)
	return out
}

// EsNueva indica si la factura nunca se ha guardado (sin id de backend).
func (s *Sesion) EsNueva() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.factura.ID == nil
}

// EstadoCertificacion devuelve el estado de la pestaña FEL:
// certificando mientras hay una certificación en vuelo, certificada cuando la
// factura lo está de verdad, y sin_certificar en cualquier otro caso.
func (s *Sesion) EstadoCertificacion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.certificando:
		return CertEnProceso
	case s.factura.EstaCertificada():
		return CertCertificada
	default:
		return CertSinCertificar
	}
}

// UltimoError devuelve el último error de operación para el banner del editor
// (vacío si la última operación terminó bien).
func (s *Sesion) UltimoError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ultimoError
}

// ── Validación local ──────────────────────────────────────────────────────────

// validarParaGuardar aplica las precondiciones de guardado. Se evalúa antes de
// cualquier llamada de red: un borrador inválido nunca gasta un viaje al backend.
func (s *Sesion) validarParaGuardar() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.factura.IDClienteReceptor == 0 {
		return domain.NuevaValidacion("Debes seleccionar un cliente.")
	}
	if len(s.lineas) == 0 {
		return domain.NuevaValidacion("Agrega al menos una línea de producto.")
	}
	for _, l := range s.lineas {
		if l.Descripcion == "" {
			return domain.NuevaValidacion("Cada línea requiere una descripción.")
		}
		if !l.Cantidad.IsPositive() {
			return domain.NuevaValidacion("La cantidad debe ser mayor a 0.")
		}
	}
	return nil
}

// ── Coordinación de operaciones en vuelo ──────────────────────────────────────

// comenzarOperacion marca la sesión como ocupada; rechaza reentradas de
// guardado o certificación mientras otra operación está en vuelo.
func (s *Sesion) comenzarOperacion(certificacion bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guardando || s.certificando {
		return domain.ErrOperacionEnCurso
	}
	if certificacion {
		s.certificando = true
	} else {
		s.guardando = true
	}
	s.ultimoError = ""
	return nil
}

func (s *Sesion) terminarOperacion(errOperacion error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guardando = false
	s.certificando = false
	if errOperacion != nil {
		s.ultimoError = errOperacion.Error()
	}
}
