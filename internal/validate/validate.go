// Package validate implements the local pre-validation rules applied before
// any call leaves for the backend.  A non-empty return value is the inline
// message to show the user; the empty string means the input may be
// submitted.  All authoritative validation still happens server-side.
package validate

import (
    "regexp"
    "strings"
    "time"
)

// MinPasswordLen is the registration password floor.
const MinPasswordLen = 6

// emailPattern requires at least one character before and after the @, no
// whitespace anywhere, and a final dot-separated suffix of length >= 2.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// Email reports whether s has a plausible mailbox shape.
func Email(s string) bool {
    return emailPattern.MatchString(s)
}

// Login checks the login form.  Both fields must be present and the email
// must be well shaped.
func Login(email, password string) string {
    if strings.TrimSpace(email) == "" || password == "" {
        return "Completa todos los campos."
    }
    if !Email(email) {
        return "Formato de correo no válido. Ejemplo: usuario@eventzone.com"
    }
    return ""
}

// Registro checks the registration form: every field present, email well
// shaped, password long enough and equal to its confirmation.
func Registro(nombre, email, password, confirm string) string {
    if strings.TrimSpace(nombre) == "" || strings.TrimSpace(email) == "" || password == "" || confirm == "" {
        return "Por favor, completa todos los campos."
    }
    if !Email(email) {
        return "Formato de correo no válido."
    }
    if len(password) < MinPasswordLen {
        return "La contraseña debe tener al menos 6 caracteres."
    }
    if password != confirm {
        return "Las contraseñas no coinciden."
    }
    return ""
}

// FechaEvento warns when the event date lies in the past.  Dates use the
// backend's yyyy-MM-dd format; an unparsable or empty value is left for the
// backend to reject.
func FechaEvento(fecha string) string {
    d, err := time.Parse("2006-01-02", fecha)
    if err != nil {
        return ""
    }
    hoy := time.Now().Truncate(24 * time.Hour)
    if d.Before(hoy) {
        return "La fecha del evento no puede ser anterior a hoy"
    }
    return ""
}

// FechaFin warns when a festival's end date precedes its start date.
func FechaFin(fecha, fechaFin string) string {
    ini, err1 := time.Parse("2006-01-02", fecha)
    fin, err2 := time.Parse("2006-01-02", fechaFin)
    if err1 != nil || err2 != nil {
        return ""
    }
    if fin.Before(ini) {
        return "La fecha de fin no puede ser anterior a la fecha de inicio"
    }
    return ""
}
