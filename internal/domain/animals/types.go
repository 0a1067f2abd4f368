package animals

import "strings"

// Status define los estados de adopción de un animal.
// @Enum available, pending, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

// ParseStatus valida un status crudo contra el enum.
// No hay grafo de transiciones: cualquier status válido es alcanzable
// desde cualquier otro (decisión de producto pendiente).
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.TrimSpace(raw)) {
	case StatusAvailable:
		return StatusAvailable, true
	case StatusPending:
		return StatusPending, true
	case StatusAdopted:
		return StatusAdopted, true
	default:
		return "", false
	}
}
