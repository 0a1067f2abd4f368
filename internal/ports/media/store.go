package media

import "context"

// Store persiste payloads binarios (fotos) y devuelve una referencia
// estable (key/URL) para guardar en el registro del animal.
type Store interface {
	Save(ctx context.Context, payload []byte, filename string) (string, error)
}
