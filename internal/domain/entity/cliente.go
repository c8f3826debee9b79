package entity

import "time"

// Cliente es un cliente de facturación (emisor o receptor).
// Tipo: true = EMPRESA, false = INDIVIDUO (el backend lo maneja como bit).
type Cliente struct {
	ID        int64
	NIT       string
	Nombre    string
	Direccion string
	Correo    string
	Telefono  string
	Tipo      bool
	FotoURL   string
	Activo    bool

	CreadoEn      *time.Time
	ActualizadoEn *time.Time
}
