package animals

import "fmt"

// FailureKind clasifica una falla de dominio para que el adapter HTTP
// pueda mapearla a un status sin inspeccionar texto libre.
type FailureKind string

const (
	FailureValidation    FailureKind = "validation"
	FailureNotFound      FailureKind = "not_found"
	FailureForbidden     FailureKind = "forbidden"
	FailureInvalidStatus FailureKind = "invalid_status"
)

// Failure es la variante de error de dominio del Result.
// Siempre lleva una razón legible además del kind.
type Failure struct {
	Kind   FailureKind
	Reason string
}

func (f Failure) Error() string {
	return f.Reason
}

// Result es el sobre éxito/falla que devuelve cada operación del servicio.
// Solo se construye vía Ok o Fail; acceder a la variante equivocada
// es un bug del caller y paniquea.
//
// Las fallas de dominio (input inválido, not found, forbidden) viajan acá.
// Los errores de dependencias (repo, media store) viajan como error normal
// en la segunda posición de retorno del servicio.
type Result[T any] struct {
	ok      bool
	value   T
	failure Failure
}

func Ok[T any](v T) Result[T] {
	return Result[T]{ok: true, value: v}
}

func Fail[T any](kind FailureKind, reason string) Result[T] {
	return Result[T]{failure: Failure{Kind: kind, Reason: reason}}
}

func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value devuelve el payload de éxito. Panic si el Result es falla.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("animals: Value() sobre un Result fallido (%s: %s)", r.failure.Kind, r.failure.Reason))
	}
	return r.value
}

// Failure devuelve la falla de dominio. Panic si el Result es éxito.
func (r Result[T]) Failure() Failure {
	if r.ok {
		panic("animals: Failure() sobre un Result exitoso")
	}
	return r.failure
}
