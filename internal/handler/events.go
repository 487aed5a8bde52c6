package handler

import (
	"context"  // context with cancellation for backend calls
	"net/http" // status code constants
	"strconv"  // string-to-integer conversion

	"github.com/labstack/echo/v4" // echo provides request/response handling

	"github.com/eventzone/eventzone-web/internal/backend"    // EventZone backend client
	"github.com/eventzone/eventzone-web/internal/config"     // app configuration
	"github.com/eventzone/eventzone-web/internal/draft"      // draft persistence
	"github.com/eventzone/eventzone-web/internal/form"       // event form state
	"github.com/eventzone/eventzone-web/internal/middleware" // session context keys
	"github.com/eventzone/eventzone-web/internal/model"      // event models
	"github.com/eventzone/eventzone-web/internal/queue"      // audit actions
	"github.com/eventzone/eventzone-web/internal/validate"   // date checks
	"github.com/eventzone/eventzone-web/internal/view"       // notices and preview
)

// Multipart file field carrying the event image on typed create routes.
const campoImagen = "imagenFile"

// EventosHandler bundles dependencies for the event catalogue and the
// creation form endpoints.
type EventosHandler struct {
	Cfg    config.Config
	API    *backend.Client
	Drafts *draft.Store
}

func NewEventosHandler(cfg config.Config, api *backend.Client, drafts *draft.Store) *EventosHandler {
	return &EventosHandler{Cfg: cfg, API: api, Drafts: drafts}
}

// Listado handles GET /eventos. The public catalogue needs no session.
func (h *EventosHandler) Listado(c echo.Context) error {
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

// Detalle handles GET /eventos/:id.
func (h *EventosHandler) Detalle(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	ev, err := h.API.Detalle(ctx, id)
	if err != nil {
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(backendTexto(err, "Error al cargar el evento."), h.Cfg.MessageTTL),
		})
	}
	return c.JSON(http.StatusOK, ev)
}

// Crear handles POST /eventos/crear. The submitted form is validated
// locally first; only a clean form reaches the backend. With an image
// attached the payload travels as multipart to the typed route, otherwise
// as JSON.
func (h *EventosHandler) Crear(c echo.Context) error {
	f, resp := h.parse(c)
	if resp != nil {
		return resp(c)
	}

	p, err := f.Payload()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"mensaje": view.Error(err.Error(), h.Cfg.MessageTTL),
		})
	}

	token, _ := c.Get(middleware.CtxToken).(string)
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	ev, err := h.enviar(ctx, c, token, p)
	if err != nil {
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(backendTexto(err, "Error al crear el evento."), h.Cfg.MessageTTL),
		})
	}

	h.limpiarBorrador(c)
	publicarAuditoria(c, h.Cfg.BackendTimeout, queue.AccionEventoCreado, ev.Nombre, p.TipoEvento())

	f.Reset()
	return c.JSON(http.StatusCreated, echo.Map{
		"mensaje":    view.Exito("Evento creado correctamente.", h.Cfg.MessageTTL),
		"evento":     ev,
		"formulario": f,
	})
}

// Editar handles PUT /eventos/:id with the same form pipeline as Crear.
func (h *EventosHandler) Editar(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	f, resp := h.parse(c)
	if resp != nil {
		return resp(c)
	}
	p, err := f.Payload()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"mensaje": view.Error(err.Error(), h.Cfg.MessageTTL),
		})
	}

	token, _ := c.Get(middleware.CtxToken).(string)
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	ev, err := h.API.Editar(ctx, token, id, p)
	if err != nil {
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(backendTexto(err, "Error al actualizar el evento."), h.Cfg.MessageTTL),
		})
	}

	publicarAuditoria(c, h.Cfg.BackendTimeout, queue.AccionEventoEditado, strconv.FormatUint(id, 10), p.TipoEvento())

	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": view.Exito("Evento actualizado correctamente.", h.Cfg.MessageTTL),
		"evento":  ev,
	})
}

// ----- form state endpoints -----

// Formulario handles GET /eventos/form: a fresh form plus whether a saved
// draft exists so the page can offer to restore it.
func (h *EventosHandler) Formulario(c echo.Context) error {
	f := form.Nuevo()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()
	_, hayBorrador, err := h.Drafts.Load(ctx, h.claveBorrador(c))
	if err != nil {
		c.Logger().Warnf("leer borrador: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"formulario":  f,
		"grupos":      f.Grupos(),
		"hayBorrador": hayBorrador,
	})
}

// Tiers handles POST /eventos/form/tiers. The page posts the whole form
// state plus accion=add|remove; removing the last row is rejected with a
// warning and the form comes back unchanged.
func (h *EventosHandler) Tiers(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "formulario inválido"})
	}
	f := form.ParseForm(values)

	switch c.FormValue("accion") {
	case "add":
		f.AddTier()
	case "remove":
		i, _ := strconv.Atoi(c.FormValue("indice"))
		if err := f.RemoveTier(i); err != nil {
			return c.JSON(http.StatusOK, echo.Map{
				"mensaje":    view.Aviso(err.Error(), h.Cfg.MessageTTL),
				"formulario": f,
			})
		}
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "acción desconocida"})
	}

	return c.JSON(http.StatusOK, echo.Map{"formulario": f})
}

// Preview handles POST /eventos/form/preview, rebuilding the live summary
// card from the current form state.
func (h *EventosHandler) Preview(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "formulario inválido"})
	}
	f := form.ParseForm(values)
	return c.JSON(http.StatusOK, echo.Map{
		"preview": view.PreviewDe(f),
		"grupos":  f.Grupos(),
	})
}

// ----- draft endpoints -----

// GuardarBorrador handles POST /eventos/borrador, persisting the current
// form values for this session.
func (h *EventosHandler) GuardarBorrador(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "formulario inválido"})
	}
	f := form.ParseForm(values)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()
	if err := h.Drafts.Save(ctx, h.claveBorrador(c), f.Flatten()); err != nil {
		c.Logger().Errorf("guardar borrador: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"mensaje": view.Error("No se pudo guardar el borrador.", h.Cfg.MessageTTL),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": view.Exito("Borrador guardado correctamente.", h.Cfg.MessageTTL),
	})
}

// RestaurarBorrador handles POST /eventos/borrador/restaurar. The restored
// state comes back as a full form view so the page can redraw every field,
// the visible group and the preview in one step.
func (h *EventosHandler) RestaurarBorrador(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	values, ok, err := h.Drafts.Load(ctx, h.claveBorrador(c))
	if err != nil {
		c.Logger().Errorf("leer borrador: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"mensaje": view.Error("No se pudo recuperar el borrador.", h.Cfg.MessageTTL),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"mensaje": view.Aviso("No hay ningún borrador guardado.", h.Cfg.MessageTTL),
		})
	}

	f := form.Restaurar(values)
	return c.JSON(http.StatusOK, echo.Map{
		"formulario": f,
		"grupos":     f.Grupos(),
		"preview":    view.PreviewDe(f),
	})
}

// DescartarBorrador handles DELETE /eventos/borrador.
func (h *EventosHandler) DescartarBorrador(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()
	if err := h.Drafts.Clear(ctx, h.claveBorrador(c)); err != nil {
		c.Logger().Warnf("descartar borrador: %v", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- helpers -----

// parse reads the submitted form and runs the local checks that block a
// submit: the date checks of the original form. It returns a non-nil
// responder when the request is already answered.
func (h *EventosHandler) parse(c echo.Context) (*form.EventForm, echo.HandlerFunc) {
	values, err := c.FormParams()
	if err != nil {
		return nil, func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "formulario inválido"})
		}
	}
	f := form.ParseForm(values)

	var aviso string
	if msg := validate.FechaEvento(f.Comunes.Fecha); msg != "" {
		aviso = msg
	} else if f.Tipo == model.TipoFestival {
		if msg := validate.FechaFin(f.Comunes.Fecha, f.Festival.FechaFin); msg != "" {
			aviso = msg
		}
	}
	if aviso != "" {
		texto := aviso
		return nil, func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"mensaje": view.Error(texto, h.Cfg.MessageTTL),
			})
		}
	}
	return f, nil
}

// enviar picks the transport: an attached image forces multipart on the
// typed route, everything else goes as JSON to the generic one.
func (h *EventosHandler) enviar(ctx context.Context, c echo.Context, token string, p model.Payload) (model.Evento, error) {
	fh, err := c.FormFile(campoImagen)
	if err != nil || fh == nil {
		return h.API.Crear(ctx, token, p)
	}
	src, err := fh.Open()
	if err != nil {
		return model.Evento{}, err
	}
	defer func() { _ = src.Close() }()
	return h.API.CrearConImagen(ctx, token, p, fh.Filename, src)
}

// claveBorrador scopes the draft to the signed-in user. The key keeps the
// historical eventDraft name the pages already used.
func (h *EventosHandler) claveBorrador(c echo.Context) string {
	email, _ := c.Get(middleware.CtxEmail).(string)
	return "eventDraft:" + email
}

func (h *EventosHandler) limpiarBorrador(c echo.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), h.Cfg.BackendTimeout)
	defer cancel()
	if err := h.Drafts.Clear(ctx, h.claveBorrador(c)); err != nil {
		c.Logger().Warnf("limpiar borrador: %v", err)
	}
}

