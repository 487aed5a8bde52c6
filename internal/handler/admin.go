package handler

import (
	"context"  // context with cancellation for backend calls
	"errors"   // sentinel matching on backend errors
	"net/http" // status code constants
	"strconv"  // string-to-integer conversion
	"time"     // audit timestamps

	"github.com/labstack/echo/v4" // echo provides request/response handling

	"github.com/eventzone/eventzone-web/internal/backend"       // EventZone backend client
	"github.com/eventzone/eventzone-web/internal/config"        // app configuration
	"github.com/eventzone/eventzone-web/internal/middleware"    // session context keys
	"github.com/eventzone/eventzone-web/internal/queue"         // audit event shape
	"github.com/eventzone/eventzone-web/internal/service/audit" // audit queue publisher
	"github.com/eventzone/eventzone-web/internal/view"          // cards, tabs and notices
)

// AdminHandler bundles dependencies for the admin panel endpoints.
type AdminHandler struct {
	Cfg config.Config
	API *backend.Client
}

func NewAdminHandler(cfg config.Config, api *backend.Client) *AdminHandler {
	return &AdminHandler{Cfg: cfg, API: api}
}

// Panel handles GET /admin/panel. It returns the tab strip of the panel;
// the optional "tab" query activates one of them, unknown ids keep the
// current selection.
func (h *AdminHandler) Panel(c echo.Context) error {
	tabs := view.NuevoTabSet("usuarios",
		view.Tab{ID: "usuarios", Titulo: "Usuarios"},
		view.Tab{ID: "eventos", Titulo: "Eventos"},
		view.Tab{ID: "crear", Titulo: "Crear evento"},
	)
	if id := c.QueryParam("tab"); id != "" {
		tabs.Activar(id)
	}
	return c.JSON(http.StatusOK, echo.Map{"tabs": tabs})
}

// Usuarios handles GET /admin/usuarios. Load failures return the fixed
// error text of the users tab instead of raw backend details.
func (h *AdminHandler) Usuarios(c echo.Context) error {
	token, _ := c.Get(middleware.CtxToken).(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	us, err := h.API.Usuarios(ctx, token)
	if err != nil {
		c.Logger().Errorf("cargar usuarios: %v", err)
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(view.ErrorCargaUsuarios, h.Cfg.MessageTTL),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"usuarios": view.TarjetasUsuarios(us)})
}

// Eventos handles GET /admin/eventos. An empty catalogue is not an error:
// the tab shows its placeholder text instead of cards.
func (h *AdminHandler) Eventos(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	evs, err := h.API.Eventos(ctx)
	if err != nil {
		c.Logger().Errorf("cargar eventos: %v", err)
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(view.ErrorCargaEventos, h.Cfg.MessageTTL),
		})
	}
	resp := echo.Map{"eventos": view.TarjetasEventos(evs)}
	if len(evs) == 0 {
		resp["mensaje"] = view.Mensaje{Tipo: view.MensajeAviso, Texto: view.SinEventos}
	}
	return c.JSON(http.StatusOK, resp)
}

// EliminarUsuario handles DELETE /admin/usuarios/:email. The first call
// without "confirm" returns the confirmation question and changes nothing;
// only the confirmed call reaches the backend.
func (h *AdminHandler) EliminarUsuario(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email requerido"})
	}
	if !confirmado(c) {
		return c.JSON(http.StatusPreconditionRequired, echo.Map{
			"confirmacion": "¿Seguro que quieres eliminar a " + email + "?",
		})
	}

	token, _ := c.Get(middleware.CtxToken).(string)
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	if _, err := h.API.EliminarUsuario(ctx, token, email); err != nil {
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(eliminarTexto(err, "No se pudo eliminar el usuario."), h.Cfg.MessageTTL),
		})
	}

	publicarAuditoria(c, h.Cfg.BackendTimeout, queue.AccionUsuarioEliminado, email, "")

	return c.JSON(http.StatusOK, echo.Map{
		"mensaje":   view.Exito("Usuario eliminado correctamente.", h.Cfg.MessageTTL),
		"eliminado": email,
	})
}

// EliminarEvento handles DELETE /admin/eventos/:id with the same
// confirm-then-delete flow as user deletion.
func (h *AdminHandler) EliminarEvento(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}
	if !confirmado(c) {
		return c.JSON(http.StatusPreconditionRequired, echo.Map{
			"confirmacion": "¿Seguro que quieres eliminar este evento?",
		})
	}

	token, _ := c.Get(middleware.CtxToken).(string)
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	if err := h.API.Eliminar(ctx, token, id); err != nil {
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(eliminarTexto(err, "No se pudo eliminar el evento."), h.Cfg.MessageTTL),
		})
	}

	publicarAuditoria(c, h.Cfg.BackendTimeout, queue.AccionEventoEliminado, strconv.FormatUint(id, 10), "")

	return c.JSON(http.StatusOK, echo.Map{
		"mensaje":   view.Exito("Evento eliminado correctamente.", h.Cfg.MessageTTL),
		"eliminado": id,
	})
}

// Estadisticas handles GET /admin/eventos/:id/estadisticas.
func (h *AdminHandler) Estadisticas(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	token, _ := c.Get(middleware.CtxToken).(string)
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	st, err := h.API.Estadisticas(ctx, token, id)
	if err != nil {
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(backendTexto(err, "Error al cargar las estadísticas."), h.Cfg.MessageTTL),
		})
	}
	return c.JSON(http.StatusOK, st)
}

// publicarAuditoria sends an audit event without blocking the response
// path. Publish failures are logged inside the publisher.
func publicarAuditoria(c echo.Context, timeout time.Duration, accion, objetivo, detalle string) {
	actor, _ := c.Get(middleware.CtxEmail).(string)
	ev := queue.AuditEvent{
		Accion:     accion,
		Actor:      actor,
		Objetivo:   objetivo,
		Detalle:    detalle,
		OcurridoEn: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_ = audit.Publish(ctx, ev)
	}()
}

// confirmado reports whether the request carries the confirmation flag,
// either as a form field or a query parameter.
func confirmado(c echo.Context) bool {
	v := c.FormValue("confirm")
	if v == "" {
		v = c.QueryParam("confirm")
	}
	switch v {
	case "1", "true", "si", "sí", "yes":
		return true
	}
	return false
}

// eliminarTexto keeps the card in place with a readable reason: a missing
// resource reports the backend's own text, connection failures the fixed
// connection message and anything else the fallback.
func eliminarTexto(err error, fallback string) string {
	if errors.Is(err, backend.ErrConexion) {
		return errConexionTexto
	}
	if msg := backend.Mensaje(err); msg != "" {
		return msg
	}
	return fallback
}

func backendTexto(err error, fallback string) string {
	return eliminarTexto(err, fallback)
}
