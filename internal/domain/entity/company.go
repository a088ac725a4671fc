package entity

import "time"

// Company representa una empresa/tenant del sistema. Todo dato de inventario
// está ligado a exactamente una empresa (tabla heredada `empresas`).
type Company struct {
	ID        int64
	Name      string
	NIT       string // NIT colombiano (con o sin dígito de verificación)
	Status    string // activa, suspendida, inactiva
	CreatedAt time.Time
	UpdatedAt time.Time
}
