package model // package model defines the wire-level records exchanged with the EventZone backend

// Roles assigned by the backend.  Only these two values appear in the
// "rol" claim and in user listings.
const (
    RolAdmin = "ADMIN"
    RolUser  = "USER"
)

// Rol is the nested role object returned by GET /usuarios/todos.
type Rol struct {
    Nombre string `json:"nombre"`
}

// Usuario is one entry of the admin user listing.  Fields arrive verbatim
// from the backend; the gateway never edits them.
type Usuario struct {
    Nombre   string `json:"nombre"`
    Email    string `json:"email"`
    Telefono string `json:"telefono,omitempty"`
    Ciudad   string `json:"ciudad,omitempty"`
    Rol      Rol    `json:"rol"`
}

// EsAdmin reports whether the user holds the ADMIN role.  Admin accounts
// never carry a delete action in the panel.
func (u Usuario) EsAdmin() bool {
    return u.Rol.Nombre == RolAdmin
}

// Perfil is the flat profile record served by GET /usuarios/me and accepted
// by PUT /usuarios/me.  Rol is a plain string here, unlike the listing.
type Perfil struct {
    Nombre          string `json:"nombre"`
    Email           string `json:"email"`
    Rol             string `json:"rol,omitempty"`
    Telefono        string `json:"telefono,omitempty"`
    Ciudad          string `json:"ciudad,omitempty"`
    Bio             string `json:"bio,omitempty"`
    FechaNacimiento string `json:"fechaNacimiento,omitempty"`
}
