package backend

import (
    "errors"
    "fmt"
)

// Sentinel errors used by handlers to pick the user-facing message.  The
// backend's own error text is preserved in StatusError.Mensaje and is
// surfaced verbatim when no specific mapping exists.
var (
    // ErrConexion marks transport-level failures: the backend was never
    // reached or the response never arrived.
    ErrConexion = errors.New("error de conexión con el servidor")
    // ErrNoAutenticado corresponds to HTTP 401.
    ErrNoAutenticado = errors.New("no autenticado")
    // ErrNoEncontrado corresponds to HTTP 404.
    ErrNoEncontrado = errors.New("no encontrado")
    // ErrProhibido corresponds to HTTP 403.
    ErrProhibido = errors.New("prohibido")
)

// StatusError carries a non-success backend response: the status code and
// the response body text exactly as the server wrote it.
type StatusError struct {
    Status  int
    Mensaje string
}

func (e *StatusError) Error() string {
    if e.Mensaje == "" {
        return fmt.Sprintf("backend respondió %d", e.Status)
    }
    return fmt.Sprintf("backend respondió %d: %s", e.Status, e.Mensaje)
}

// Is lets errors.Is match the well-known statuses against the sentinels
// above without losing the verbatim message.
func (e *StatusError) Is(target error) bool {
    switch target {
    case ErrNoAutenticado:
        return e.Status == 401
    case ErrNoEncontrado:
        return e.Status == 404
    case ErrProhibido:
        return e.Status == 403
    }
    return false
}

// Mensaje extracts the server's error text from err, or the empty string
// when err carries none (transport failures, nil).
func Mensaje(err error) string {
    var se *StatusError
    if errors.As(err, &se) {
        return se.Mensaje
    }
    return ""
}
