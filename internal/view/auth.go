package view

// Auth panel modes. The login and register forms live in the same
// container and swap without losing the ability to return to the
// original login markup.
const (
	ModoLogin    = "login"
	ModoRegistro = "registro"
)

// AuthView describes which form the auth container currently shows.
type AuthView struct {
	Modo string `json:"modo"`
}

// NuevoAuthView starts on the login form.
func NuevoAuthView() AuthView {
	return AuthView{Modo: ModoLogin}
}

// CambiarModo switches the container to the given form. Unknown modes
// are ignored so the panel never ends up empty.
func (v *AuthView) CambiarModo(modo string) bool {
	if modo != ModoLogin && modo != ModoRegistro {
		return false
	}
	v.Modo = modo
	return true
}
