package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventzone/eventzone-web/internal/draft"
	"github.com/eventzone/eventzone-web/internal/middleware"
	"github.com/eventzone/eventzone-web/internal/model"
)

func newEventosHandler(t *testing.T, stub http.HandlerFunc) (*EventosHandler, testEnv) {
	t.Helper()
	env := newTestEnv(t, stub)
	return NewEventosHandler(env.Cfg, env.API, draft.NewStore(nil, time.Hour)), env
}

func sesionAdmin(c echo.Context) {
	c.Set(middleware.CtxToken, "tok123")
	c.Set(middleware.CtxEmail, "admin@eventzone.com")
	c.Set(middleware.CtxRol, model.RolAdmin)
}

func TestCrearSinTipo(t *testing.T) {
	h, env := newEventosHandler(t, nil)
	e := echo.New()

	body := url.Values{"nombre": {"Algo"}}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/eventos/crear", body.Encode()), rec)
	sesionAdmin(c)

	require.NoError(t, h.Crear(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Selecciona un tipo de evento", mensajeTexto(t, decodeBody(t, rec)))
	assert.EqualValues(t, 0, env.Llamadas.Load())
}

func TestCrearFechaPasada(t *testing.T) {
	h, env := newEventosHandler(t, nil)
	e := echo.New()

	ayer := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	body := url.Values{
		"eventType":          {"concierto"},
		"nombre":             {"Tarde"},
		"fecha":              {ayer},
		"ticketTypeName":     {"General"},
		"ticketTypePrice":    {"10"},
		"ticketTypeQuantity": {"50"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/eventos/crear", body.Encode()), rec)
	sesionAdmin(c)

	require.NoError(t, h.Crear(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "La fecha del evento no puede ser anterior a hoy", mensajeTexto(t, decodeBody(t, rec)))
	assert.EqualValues(t, 0, env.Llamadas.Load())
}

func TestCrearConciertoJSON(t *testing.T) {
	manana := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var recibido map[string]any
	h, env := newEventosHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eventos/crear", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &recibido))

		_ = json.NewEncoder(w).Encode(model.Evento{ID: 3, Tipo: model.TipoConcierto, Nombre: "Gira"})
	})
	e := echo.New()

	body := url.Values{
		"eventType":          {"concierto"},
		"nombre":             {"Gira"},
		"fecha":              {manana},
		"concierto_artista":  {"Radiohead"},
		"cine_tituloPelicula": {"valor colado"},
		"ticketTypeName":     {"General"},
		"ticketTypePrice":    {"50"},
		"ticketTypeQuantity": {"100"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/eventos/crear", body.Encode()), rec)
	sesionAdmin(c)

	require.NoError(t, h.Crear(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 1, env.Llamadas.Load())

	// The submission carries only the concert shape.
	assert.Equal(t, "concierto", recibido["tipo"])
	assert.Equal(t, "Radiohead", recibido["artista"])
	assert.NotContains(t, recibido, "cineTitulo")

	tickets := recibido["tickets"].([]any)
	require.Len(t, tickets, 1)
	tk := tickets[0].(map[string]any)
	assert.Equal(t, 50.0, tk["precio"])
	assert.Equal(t, 100.0, tk["cantidad"])
}

func TestCrearLimpiaBorrador(t *testing.T) {
	manana := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	h, _ := newEventosHandler(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Evento{ID: 1, Tipo: model.TipoCine})
	})
	e := echo.New()

	// A draft saved before submitting.
	guardar := url.Values{"eventType": {"cine"}, "nombre": {"Borrador"}}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/eventos/borrador", guardar.Encode()), rec)
	sesionAdmin(c)
	require.NoError(t, h.GuardarBorrador(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := url.Values{
		"eventType":          {"cine"},
		"nombre":             {"Sesión doble"},
		"fecha":              {manana},
		"ticketTypeName":     {"General"},
		"ticketTypePrice":    {"8"},
		"ticketTypeQuantity": {"90"},
	}
	rec = httptest.NewRecorder()
	c = e.NewContext(formRequest(http.MethodPost, "/eventos/crear", body.Encode()), rec)
	sesionAdmin(c)
	require.NoError(t, h.Crear(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// The draft is gone after a successful creation.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/eventos/borrador/restaurar", nil), rec)
	sesionAdmin(c)
	require.NoError(t, h.RestaurarBorrador(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTiersQuitarUltimaFila(t *testing.T) {
	h, _ := newEventosHandler(t, nil)
	e := echo.New()

	body := url.Values{
		"accion":             {"remove"},
		"indice":             {"0"},
		"ticketTypeName":     {"General"},
		"ticketTypePrice":    {"10"},
		"ticketTypeQuantity": {"5"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/eventos/form/tiers", body.Encode()), rec)
	sesionAdmin(c)

	require.NoError(t, h.Tiers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "Debe haber al menos un tipo de entrada", mensajeTexto(t, resp))

	// The row survives the rejected removal.
	f := resp["formulario"].(map[string]any)
	assert.Len(t, f["Tiers"].([]any), 1)
}

func TestTiersAnadir(t *testing.T) {
	h, _ := newEventosHandler(t, nil)
	e := echo.New()

	body := url.Values{
		"accion":         {"add"},
		"ticketTypeName": {"General"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/eventos/form/tiers", body.Encode()), rec)
	sesionAdmin(c)

	require.NoError(t, h.Tiers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	f := decodeBody(t, rec)["formulario"].(map[string]any)
	assert.Len(t, f["Tiers"].([]any), 2)
}

func TestBorradorRoundTrip(t *testing.T) {
	h, _ := newEventosHandler(t, nil)
	e := echo.New()

	guardar := url.Values{
		"eventType":         {"festival"},
		"nombre":            {"Mad Cool"},
		"festival_fechaFin": {"2031-07-12"},
		"ticketTypeName":    {"General"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/eventos/borrador", guardar.Encode()), rec)
	sesionAdmin(c)
	require.NoError(t, h.GuardarBorrador(c))
	assert.Equal(t, "Borrador guardado correctamente.", mensajeTexto(t, decodeBody(t, rec)))

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/eventos/borrador/restaurar", nil), rec)
	sesionAdmin(c)
	require.NoError(t, h.RestaurarBorrador(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	f := resp["formulario"].(map[string]any)
	assert.Equal(t, "festival", f["Tipo"])
	assert.Contains(t, resp, "preview")

	grupos := resp["grupos"].(map[string]any)
	assert.True(t, grupos["festival"].(bool))
	assert.False(t, grupos["cine"].(bool))
}

func TestDescartarBorrador(t *testing.T) {
	h, _ := newEventosHandler(t, nil)
	e := echo.New()

	guardar := url.Values{"eventType": {"cine"}, "nombre": {"X"}}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/eventos/borrador", guardar.Encode()), rec)
	sesionAdmin(c)
	require.NoError(t, h.GuardarBorrador(c))

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/eventos/borrador", nil), rec)
	sesionAdmin(c)
	require.NoError(t, h.DescartarBorrador(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/eventos/form", nil), rec)
	sesionAdmin(c)
	require.NoError(t, h.Formulario(c))
	assert.Equal(t, false, decodeBody(t, rec)["hayBorrador"])
}

func TestListadoPublico(t *testing.T) {
	h, _ := newEventosHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eventos/todos", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]model.Evento{{ID: 1, Tipo: model.TipoCine, Nombre: "Sesión"}})
	})
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/eventos", nil), rec)

	require.NoError(t, h.Listado(c))
	require.Equal(t, http.StatusOK, rec.Code)

	eventos := decodeBody(t, rec)["eventos"].([]any)
	require.Len(t, eventos, 1)
	assert.Equal(t, "Cine", eventos[0].(map[string]any)["badge"])
}
