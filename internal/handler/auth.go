// Package handler defines the HTTP handlers of the EventZone web gateway.
// Handlers validate input locally, call the EventZone backend and shape
// view models the pages can render directly.
package handler

import (
	"context"  // context with cancellation for backend calls
	"errors"   // sentinel matching on backend errors
	"net/http" // HTTP status codes and cookies
	"strings"  // input normalization
	"time"     // backend timeouts and cookie lifetimes

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/eventzone/eventzone-web/internal/backend"    // EventZone backend client
	"github.com/eventzone/eventzone-web/internal/config"     // app configuration
	"github.com/eventzone/eventzone-web/internal/middleware" // session context keys
	"github.com/eventzone/eventzone-web/internal/model"      // roles
	"github.com/eventzone/eventzone-web/internal/validate"   // local field validation
	"github.com/eventzone/eventzone-web/internal/view"       // view models
)

// Connection failures to the backend always surface this exact text.
const errConexionTexto = "Error de conexión con el servidor."

// AuthHandler bundles dependencies for the login and register endpoints.
type AuthHandler struct {
	Cfg config.Config
	API *backend.Client
}

func NewAuthHandler(cfg config.Config, api *backend.Client) *AuthHandler {
	return &AuthHandler{Cfg: cfg, API: api}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type registroReq struct {
	Nombre   string `json:"nombre" form:"nombre"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Confirm  string `json:"confirmPassword" form:"confirmPassword"`
}

type loginResp struct {
	Mensaje     view.Mensaje     `json:"mensaje"`
	Redireccion view.Redireccion `json:"redireccion"`
}

// Vista handles GET /usuarios/login. The optional "modo" query swaps the
// container between the login and register forms; an unknown value keeps
// the login form so the panel can always be restored.
func (h *AuthHandler) Vista(c echo.Context) error {
	v := view.NuevoAuthView()
	if modo := c.QueryParam("modo"); modo != "" {
		v.CambiarModo(modo)
	}
	return c.JSON(http.StatusOK, v)
}

// Login handles POST /usuarios/login. Local validation runs first and a
// failure never reaches the backend. On success the session cookie is set
// and the page is told where to navigate after the success notice.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if msg := validate.Login(req.Email, req.Password); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"mensaje": view.Error(msg, h.Cfg.MessageTTL),
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	ses, err := h.API.Login(ctx, req.Email, req.Password)
	if err != nil {
		status, texto := loginError(err)
		return c.JSON(status, echo.Map{"mensaje": view.Error(texto, h.Cfg.MessageTTL)})
	}

	c.SetCookie(sessionCookie(ses.Token, 24*time.Hour))

	destino := "/usuarios/profile"
	if ses.Rol == model.RolAdmin {
		destino = "/admin/panel"
	}
	return c.JSON(http.StatusOK, loginResp{
		Mensaje:     view.Exito("Inicio de sesión exitoso. Redirigiendo...", h.Cfg.MessageTTL),
		Redireccion: view.Redireccion{URL: destino, DelayMS: h.Cfg.RedirectDelay.Milliseconds()},
	})
}

// Registro handles POST /usuarios/registro. After a successful signup the
// container swaps back to the login form once the notice has been shown.
func (h *AuthHandler) Registro(c echo.Context) error {
	var req registroReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if msg := validate.Registro(req.Nombre, req.Email, req.Password, req.Confirm); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"mensaje": view.Error(msg, h.Cfg.MessageTTL),
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	if err := h.API.Registro(ctx, req.Nombre, req.Email, req.Password); err != nil {
		status, texto := registroError(err)
		return c.JSON(status, echo.Map{"mensaje": view.Error(texto, h.Cfg.MessageTTL)})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"mensaje": view.Exito("¡Registro exitoso! Ahora puedes iniciar sesión.", h.Cfg.MessageTTL),
		"vista":   view.AuthView{Modo: view.ModoLogin},
	})
}

// Logout handles POST /usuarios/logout. Like the deletions, the first call
// without "confirm" only returns the question. The backend call itself is
// best effort: the cookie is cleared and the page sent to the login screen
// even when the backend is unreachable.
func (h *AuthHandler) Logout(c echo.Context) error {
	if !confirmado(c) {
		return c.JSON(http.StatusPreconditionRequired, echo.Map{
			"confirmacion": "¿Seguro que quieres cerrar sesión?",
		})
	}

	token, _ := c.Get(middleware.CtxToken).(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()
	if err := h.API.Logout(ctx, token); err != nil {
		c.Logger().Warnf("logout backend: %v", err)
	}

	c.SetCookie(sessionCookie("", -time.Hour))
	return c.JSON(http.StatusOK, echo.Map{
		"redireccion": view.Redireccion{URL: "/usuarios/login"},
	})
}

// loginError maps backend login failures to the exact texts the login
// screen shows for each case.
func loginError(err error) (int, string) {
	switch {
	case errors.Is(err, backend.ErrNoEncontrado):
		return http.StatusNotFound, "Usuario no registrado."
	case errors.Is(err, backend.ErrNoAutenticado):
		return http.StatusUnauthorized, "Contraseña incorrecta."
	case errors.Is(err, backend.ErrConexion):
		return http.StatusBadGateway, errConexionTexto
	}
	if msg := backend.Mensaje(err); msg != "" {
		return statusDe(err), msg
	}
	return http.StatusInternalServerError, "Error al iniciar sesión."
}

func registroError(err error) (int, string) {
	if errors.Is(err, backend.ErrConexion) {
		return http.StatusBadGateway, errConexionTexto
	}
	if msg := backend.Mensaje(err); msg != "" {
		return statusDe(err), msg
	}
	return http.StatusInternalServerError, "Error al registrar el usuario."
}

// statusDe recovers the backend status for pass-through errors.
func statusDe(err error) int {
	var se *backend.StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return http.StatusInternalServerError
}

// sessionCookie builds the jwt session cookie. A negative maxAge clears it.
func sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
