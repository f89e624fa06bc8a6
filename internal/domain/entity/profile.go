package entity

import "time"

// Profile dueño/creador de las demás entidades. Solo actúa como llave foránea;
// la autenticación queda fuera de este servicio.
type Profile struct {
	ID        string
	Name      string
	Email     string // único
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
