package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageRequest parámetros de paginación y filtro para listados.
type PageRequest struct {
	Busqueda string `query:"q"`
	Limite   int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset   int    `query:"offset" validate:"omitempty,gte=0"`
	OrdenPor string `query:"sort_by"`
	Orden    string `query:"order" validate:"omitempty,oneof=asc desc"`
}

// DefaultPage aplica los valores por defecto del backend.
func DefaultPage(p PageRequest) PageRequest {
	if p.Limite <= 0 {
		p.Limite = 20
	}
	if p.Orden == "" {
		p.Orden = "asc"
	}
	return p
}

// PageMeta metadatos de paginación devueltos por los listados.
type PageMeta struct {
	Total  int `json:"total"`
	Limite int `json:"limit"`
	Offset int `json:"offset"`
}

// PageResponse envoltura items/meta de los listados paginados.
type PageResponse[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}
