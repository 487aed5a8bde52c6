package handler

import (
	"context"  // context with cancellation for backend calls
	"net/http" // status code constants
	"strconv"  // favorite id parsing
	"strings"  // input normalization

	"github.com/labstack/echo/v4" // echo provides request/response handling

	"github.com/eventzone/eventzone-web/internal/backend"    // EventZone backend client
	"github.com/eventzone/eventzone-web/internal/config"     // app configuration
	"github.com/eventzone/eventzone-web/internal/draft"      // snapshot persistence
	"github.com/eventzone/eventzone-web/internal/middleware" // session context keys
	"github.com/eventzone/eventzone-web/internal/model"      // profile model
	"github.com/eventzone/eventzone-web/internal/view"       // profile view models
)

// PerfilHandler bundles dependencies for the profile editor endpoints.
// Snapshots holds the pre-edit values between the edit and cancel/save
// requests so cancel never needs the backend.
type PerfilHandler struct {
	Cfg       config.Config
	API       *backend.Client
	Snapshots *draft.Store
}

func NewPerfilHandler(cfg config.Config, api *backend.Client, snaps *draft.Store) *PerfilHandler {
	return &PerfilHandler{Cfg: cfg, API: api, Snapshots: snaps}
}

type perfilReq struct {
	Nombre          string `json:"nombre" form:"nombre"`
	Telefono        string `json:"telefono" form:"telefono"`
	Ciudad          string `json:"ciudad" form:"ciudad"`
	Bio             string `json:"bio" form:"bio"`
	FechaNacimiento string `json:"fechaNacimiento" form:"fechaNacimiento"`
}

// Ver handles GET /usuarios/profile: the profile in viewing state.
func (h *PerfilHandler) Ver(c echo.Context) error {
	token, _ := c.Get(middleware.CtxToken).(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	p, err := h.API.Me(ctx, token)
	if err != nil {
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(backendTexto(err, "Error al cargar el perfil."), h.Cfg.MessageTTL),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"perfil": view.NuevoPerfilView(p)})
}

// Editar handles POST /usuarios/profile/editar. The current values are
// snapshotted so Cancelar can restore them without another backend call.
func (h *PerfilHandler) Editar(c echo.Context) error {
	token, _ := c.Get(middleware.CtxToken).(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	p, err := h.API.Me(ctx, token)
	if err != nil {
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(backendTexto(err, "Error al cargar el perfil."), h.Cfg.MessageTTL),
		})
	}

	if err := h.Snapshots.SaveJSON(ctx, h.claveSnapshot(c), p); err != nil {
		c.Logger().Errorf("guardar snapshot de perfil: %v", err)
	}

	v := view.NuevoPerfilView(p)
	v.Editar()
	return c.JSON(http.StatusOK, echo.Map{"perfil": v})
}

// Cancelar handles POST /usuarios/profile/cancelar: the snapshotted values
// come back and editing ends, with no write to the backend.
func (h *PerfilHandler) Cancelar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	var p model.Perfil
	ok, err := h.Snapshots.LoadJSON(ctx, h.claveSnapshot(c), &p)
	if err != nil {
		c.Logger().Errorf("leer snapshot de perfil: %v", err)
	}
	if !ok {
		// No edit in flight; fall back to the stored profile.
		token, _ := c.Get(middleware.CtxToken).(string)
		if p, err = h.API.Me(ctx, token); err != nil {
			return c.JSON(statusDe(err), echo.Map{
				"mensaje": view.Error(backendTexto(err, "Error al cargar el perfil."), h.Cfg.MessageTTL),
			})
		}
	}

	if err := h.Snapshots.Clear(ctx, h.claveSnapshot(c)); err != nil {
		c.Logger().Warnf("limpiar snapshot de perfil: %v", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"perfil": view.NuevoPerfilView(p)})
}

// Guardar handles PUT /usuarios/profile. On success the editor returns to
// viewing with the sidebar rebuilt from the submitted values; on failure
// it stays in editing with the same values so nothing typed is lost.
func (h *PerfilHandler) Guardar(c echo.Context) error {
	var req perfilReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if req.Nombre == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"mensaje": view.Error("El nombre no puede estar vacío.", h.Cfg.MessageTTL),
		})
	}

	token, _ := c.Get(middleware.CtxToken).(string)
	email, _ := c.Get(middleware.CtxEmail).(string)

	campos := model.Perfil{
		Nombre:          req.Nombre,
		Email:           email,
		Telefono:        strings.TrimSpace(req.Telefono),
		Ciudad:          strings.TrimSpace(req.Ciudad),
		Bio:             strings.TrimSpace(req.Bio),
		FechaNacimiento: strings.TrimSpace(req.FechaNacimiento),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.BackendTimeout)
	defer cancel()

	v := view.NuevoPerfilView(campos)
	v.Editar()
	v.Guardar(campos)

	actualizado, err := h.API.ActualizarMe(ctx, token, campos)
	if err != nil {
		v.GuardadoFallo()
		return c.JSON(statusDe(err), echo.Map{
			"mensaje": view.Error(backendTexto(err, "Error al guardar los cambios."), h.Cfg.MessageTTL),
			"perfil":  v,
		})
	}

	v.Guardar(actualizado)
	v.GuardadoOK()
	if err := h.Snapshots.Clear(ctx, h.claveSnapshot(c)); err != nil {
		c.Logger().Warnf("limpiar snapshot de perfil: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": view.Exito("Perfil actualizado correctamente.", h.Cfg.MessageTTL),
		"perfil":  v,
	})
}

// QuitarFavorito handles POST /usuarios/profile/favoritos/quitar. The
// favorites list lives on the page, so the request carries it along with
// the id to drop; the handler returns the pruned list and counter. Like
// the other destructive actions, the first call without confirm answers
// with the question instead of removing anything.
func (h *PerfilHandler) QuitarFavorito(c echo.Context) error {
	if !confirmado(c) {
		return c.JSON(http.StatusPreconditionRequired, echo.Map{
			"confirmacion": "¿Deseas eliminar este evento de favoritos?",
		})
	}

	var req struct {
		Items []view.Favorito `json:"items"`
		ID    uint64          `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		// Form fallback: id plus repeated item fields is more than the
		// page needs, so only JSON is accepted here.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}
	if req.ID == 0 {
		if id, err := strconv.ParseUint(c.QueryParam("id"), 10, 64); err == nil {
			req.ID = id
		}
	}

	favs := view.NuevosFavoritos(req.Items)
	if !favs.Quitar(req.ID) {
		return c.JSON(http.StatusOK, echo.Map{
			"favoritos": favs,
			"mensaje":   view.Aviso("Ese evento ya no está en favoritos.", h.Cfg.MessageTTL),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"favoritos": favs})
}

func (h *PerfilHandler) claveSnapshot(c echo.Context) string {
	email, _ := c.Get(middleware.CtxEmail).(string)
	return "perfilSnapshot:" + email
}
