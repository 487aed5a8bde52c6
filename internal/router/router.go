// Package router maps HTTP routes onto the gateway handlers.  Routes live
// in a single enumerable table instead of scattered registration calls:
// the table can be listed, tested and registered in one loop.
package router

import (
	"net/http" // method constants

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/eventzone/eventzone-web/internal/handler" // import the handlers that implement the gateway logic
)

// Route is one entry of the dispatch table.
type Route struct {
	Method      string
	Path        string
	Handler     echo.HandlerFunc
	Middlewares []echo.MiddlewareFunc
}

// Table is the full dispatch table of the gateway.
type Table []Route

// Register installs every route of the table on the Echo instance.
func (t Table) Register(e *echo.Echo) {
	for _, r := range t {
		e.Add(r.Method, r.Path, r.Handler, r.Middlewares...)
	}
}

// Middlewares groups the cross-cutting middleware the table wires onto
// route sets: session verification, admin gating, the listing cache and
// the auth rate limit.
type Middlewares struct {
	Session   echo.MiddlewareFunc
	SoloAdmin echo.MiddlewareFunc
	Cache     echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc
}

// Nueva builds the dispatch table for the given handlers.
func Nueva(a *handler.AuthHandler, ad *handler.AdminHandler, ev *handler.EventosHandler, p *handler.PerfilHandler, mw Middlewares) Table {
	ses := mw.Session
	admin := []echo.MiddlewareFunc{mw.Session, mw.SoloAdmin}

	return Table{
		{http.MethodGet, "/healthz", handler.Health, nil},

		// Auth container: the login/register panel and its submissions.
		{http.MethodGet, "/usuarios/login", a.Vista, nil},
		{http.MethodPost, "/usuarios/login", a.Login, []echo.MiddlewareFunc{mw.RateLimit}},
		{http.MethodPost, "/usuarios/registro", a.Registro, []echo.MiddlewareFunc{mw.RateLimit}},
		{http.MethodPost, "/usuarios/logout", a.Logout, []echo.MiddlewareFunc{ses}},

		// Profile editor.
		{http.MethodGet, "/usuarios/profile", p.Ver, []echo.MiddlewareFunc{ses}},
		{http.MethodPost, "/usuarios/profile/editar", p.Editar, []echo.MiddlewareFunc{ses}},
		{http.MethodPost, "/usuarios/profile/cancelar", p.Cancelar, []echo.MiddlewareFunc{ses}},
		{http.MethodPut, "/usuarios/profile", p.Guardar, []echo.MiddlewareFunc{ses}},
		{http.MethodPost, "/usuarios/profile/favoritos/quitar", p.QuitarFavorito, []echo.MiddlewareFunc{ses}},

		// Public catalogue.  Listings sit behind the response cache.
		{http.MethodGet, "/eventos", ev.Listado, []echo.MiddlewareFunc{mw.Cache}},
		{http.MethodGet, "/eventos/:id", ev.Detalle, []echo.MiddlewareFunc{mw.Cache}},

		// Event creation form: state, tiers, preview and the draft.
		{http.MethodGet, "/eventos/form", ev.Formulario, admin},
		{http.MethodPost, "/eventos/form/tiers", ev.Tiers, admin},
		{http.MethodPost, "/eventos/form/preview", ev.Preview, admin},
		{http.MethodPost, "/eventos/borrador", ev.GuardarBorrador, admin},
		{http.MethodPost, "/eventos/borrador/restaurar", ev.RestaurarBorrador, admin},
		{http.MethodDelete, "/eventos/borrador", ev.DescartarBorrador, admin},
		{http.MethodPost, "/eventos/crear", ev.Crear, admin},
		{http.MethodPut, "/eventos/:id", ev.Editar, admin},

		// Admin panel.
		{http.MethodGet, "/admin/panel", ad.Panel, admin},
		{http.MethodGet, "/admin/usuarios", ad.Usuarios, admin},
		{http.MethodGet, "/admin/eventos", ad.Eventos, append(admin, mw.Cache)},
		{http.MethodDelete, "/admin/usuarios/:email", ad.EliminarUsuario, admin},
		{http.MethodDelete, "/admin/eventos/:id", ad.EliminarEvento, admin},
		{http.MethodGet, "/admin/eventos/:id/estadisticas", ad.Estadisticas, admin},
	}
}
