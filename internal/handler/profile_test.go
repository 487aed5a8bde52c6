package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventzone/eventzone-web/internal/draft"
	"github.com/eventzone/eventzone-web/internal/middleware"
	"github.com/eventzone/eventzone-web/internal/model"
)

func newPerfilHandler(t *testing.T, stub http.HandlerFunc) (*PerfilHandler, testEnv) {
	t.Helper()
	env := newTestEnv(t, stub)
	return NewPerfilHandler(env.Cfg, env.API, draft.NewStore(nil, time.Hour)), env
}

func sesionUsuario(c echo.Context) {
	c.Set(middleware.CtxToken, "tok123")
	c.Set(middleware.CtxEmail, "ana@eventzone.com")
	c.Set(middleware.CtxRol, model.RolUser)
}

func perfilBackend() model.Perfil {
	return model.Perfil{Nombre: "Ana García", Email: "ana@eventzone.com", Ciudad: "Sevilla"}
}

func TestVerPerfil(t *testing.T) {
	h, _ := newPerfilHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usuarios/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(perfilBackend())
	})
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/usuarios/profile", nil), rec)
	sesionUsuario(c)

	require.NoError(t, h.Ver(c))
	require.Equal(t, http.StatusOK, rec.Code)

	perfil := decodeBody(t, rec)["perfil"].(map[string]any)
	assert.EqualValues(t, 0, perfil["estado"]) // viewing
	sidebar := perfil["sidebar"].(map[string]any)
	assert.Equal(t, "AG", sidebar["iniciales"])
}

func TestEditarYCancelar(t *testing.T) {
	h, _ := newPerfilHandler(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(perfilBackend())
	})
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/usuarios/profile/editar", nil), rec)
	sesionUsuario(c)
	require.NoError(t, h.Editar(c))

	perfil := decodeBody(t, rec)["perfil"].(map[string]any)
	assert.EqualValues(t, 1, perfil["estado"]) // editing

	// Cancel restores the snapshot without asking the backend again.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/usuarios/profile/cancelar", nil), rec)
	sesionUsuario(c)
	require.NoError(t, h.Cancelar(c))

	perfil = decodeBody(t, rec)["perfil"].(map[string]any)
	assert.EqualValues(t, 0, perfil["estado"])
	campos := perfil["campos"].(map[string]any)
	assert.Equal(t, "Ana García", campos["nombre"])
}

func TestGuardarOK(t *testing.T) {
	h, _ := newPerfilHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/usuarios/me", r.URL.Path)

		var p model.Perfil
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		_ = json.NewEncoder(w).Encode(p)
	})
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/usuarios/profile",
		`{"nombre":"Ana María García","ciudad":"Huelva"}`), rec)
	sesionUsuario(c)

	require.NoError(t, h.Guardar(c))
	require.Equal(t, http.StatusOK, rec.Code)

	perfil := decodeBody(t, rec)["perfil"].(map[string]any)
	assert.EqualValues(t, 0, perfil["estado"])
	sidebar := perfil["sidebar"].(map[string]any)
	assert.Equal(t, "Ana María García", sidebar["nombre"])
	assert.Equal(t, "AMG", sidebar["iniciales"])
}

func TestGuardarFalloMantieneEdicion(t *testing.T) {
	h, _ := newPerfilHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nombre demasiado largo", http.StatusBadRequest)
	})
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/usuarios/profile", `{"nombre":"Rechazado"}`), rec)
	sesionUsuario(c)

	require.NoError(t, h.Guardar(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "nombre demasiado largo", mensajeTexto(t, body))

	// The editor stays open with the typed values.
	perfil := body["perfil"].(map[string]any)
	assert.EqualValues(t, 1, perfil["estado"])
	assert.Equal(t, "Rechazado", perfil["campos"].(map[string]any)["nombre"])
}

func TestGuardarNombreVacio(t *testing.T) {
	h, env := newPerfilHandler(t, nil)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/usuarios/profile", `{"nombre":"   "}`), rec)
	sesionUsuario(c)

	require.NoError(t, h.Guardar(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, 0, env.Llamadas.Load())
}

func TestQuitarFavoritoPideConfirmacion(t *testing.T) {
	h, _ := newPerfilHandler(t, nil)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/usuarios/profile/favoritos/quitar",
		`{"id":2,"items":[{"id":1,"nombre":"Concierto A"},{"id":2,"nombre":"Festival B"}]}`), rec)
	sesionUsuario(c)

	require.NoError(t, h.QuitarFavorito(c))
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["confirmacion"], "favoritos")
}

func TestQuitarFavorito(t *testing.T) {
	h, _ := newPerfilHandler(t, nil)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/usuarios/profile/favoritos/quitar?confirm=1",
		`{"id":2,"items":[{"id":1,"nombre":"Concierto A"},{"id":2,"nombre":"Festival B"}]}`), rec)
	sesionUsuario(c)

	require.NoError(t, h.QuitarFavorito(c))
	require.Equal(t, http.StatusOK, rec.Code)

	favs := decodeBody(t, rec)["favoritos"].(map[string]any)
	assert.EqualValues(t, 1, favs["contador"])
	items := favs["items"].([]any)
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0].(map[string]any)["id"])
}
