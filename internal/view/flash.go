package view

import "time"

// Message kinds.  They map onto the styles of the original screens.
const (
    MensajeError   = "error"
    MensajeExito   = "success"
    MensajeAviso   = "warning"
)

// Mensaje is a transient inline notice.  DismissAfterMS tells the page how
// long to keep it visible; the gateway never sleeps on it.
type Mensaje struct {
    Tipo           string `json:"tipo"`
    Texto          string `json:"texto"`
    DismissAfterMS int64  `json:"dismissAfterMs,omitempty"`
}

// Error builds an error notice with the given dismissal timer.
func Error(texto string, ttl time.Duration) Mensaje {
    return Mensaje{Tipo: MensajeError, Texto: texto, DismissAfterMS: ttl.Milliseconds()}
}

// Exito builds a success notice.
func Exito(texto string, ttl time.Duration) Mensaje {
    return Mensaje{Tipo: MensajeExito, Texto: texto, DismissAfterMS: ttl.Milliseconds()}
}

// Aviso builds a warning notice, used for rejected-but-harmless actions
// such as removing the last ticket tier.
func Aviso(texto string, ttl time.Duration) Mensaje {
    return Mensaje{Tipo: MensajeAviso, Texto: texto, DismissAfterMS: ttl.Milliseconds()}
}

// Redireccion asks the page to navigate after a short delay, leaving time
// for a success message to display.
type Redireccion struct {
    URL     string `json:"url"`
    DelayMS int64  `json:"delayMs"`
}
