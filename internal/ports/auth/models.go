package auth

// Claims es la identidad extraída del token del usuario.
// UserID es lo único que el dominio necesita (es el owner de los animales).
type Claims struct {
	UserID string
	Email  string
}
