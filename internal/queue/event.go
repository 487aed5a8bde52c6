// Package queue defines message payloads exchanged over the message broker.
package queue

// Audit actions published by the gateway when an administrator mutates
// backend state through the panel.
const (
    AccionUsuarioEliminado = "usuario.eliminado"
    AccionEventoCreado     = "evento.creado"
    AccionEventoEditado    = "evento.editado"
    AccionEventoEliminado  = "evento.eliminado"
)

// AuditEvent records one admin mutation.  It carries enough information
// for downstream consumers to log or alert without calling the backend.
type AuditEvent struct {
    Accion     string `json:"accion"`
    Actor      string `json:"actor"`              // email of the admin who acted
    Objetivo   string `json:"objetivo"`           // user email or event id affected
    Detalle    string `json:"detalle,omitempty"`  // free-form context (event name, type, ...)
    OcurridoEn string `json:"ocurrido_en"`        // RFC 3339 UTC timestamp
}
