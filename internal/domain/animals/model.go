package animals

import "time"

// Animal representa un registro de animal publicado para adopción.
// ID y OwnerID son inmutables después de la creación; Status solo
// cambia vía UpdateStatus y solo por el owner.
type Animal struct {
	ID      string
	OwnerID string

	Name        string
	Type        string // dog, cat, etc. (texto libre, también dimensión de filtro)
	Gender      string
	Race        string
	Description string

	// Referencias al media store, en el mismo orden en que se subieron.
	Pictures []string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
