package medicines

import "time"

// Medicine representa un medicamento registrado por el usuario.
// El ID lo asigna el storage al crear (0 = aún no persistido).
type Medicine struct {
	ID int64

	Name   string
	Dosage string // texto libre: "500 mg", "2 ml", etc.

	Notes string

	CreatedAt time.Time
}
