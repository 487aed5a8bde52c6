package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventzone/eventzone-web/internal/model"
)

func clienteDe(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func TestLoginOK(t *testing.T) {
	c := clienteDe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/usuarios/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@eventzone.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok123", "rol": "USER"})
	})

	ses, err := c.Login(context.Background(), "ana@eventzone.com", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "tok123", ses.Token)
	assert.Equal(t, "USER", ses.Rol)
}

func TestStatusSentinels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"404 maps to no encontrado", http.StatusNotFound, "usuario no existe", ErrNoEncontrado},
		{"401 maps to no autenticado", http.StatusUnauthorized, "credenciales", ErrNoAutenticado},
		{"403 maps to prohibido", http.StatusForbidden, "", ErrProhibido},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := clienteDe(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.body, tt.status)
			})
			_, err := c.Login(context.Background(), "a@b.com", "x")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			if tt.body != "" {
				assert.Equal(t, tt.body, Mensaje(err))
			}
		})
	}
}

func TestConexionCaida(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	c := New(srv.URL, 500*time.Millisecond)
	_, err := c.Eventos(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConexion)
	// Transport failures carry no server text.
	assert.Empty(t, Mensaje(err))
}

func TestBearerToken(t *testing.T) {
	c := clienteDe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]model.Usuario{})
	})
	_, err := c.Usuarios(context.Background(), "tok123")
	assert.NoError(t, err)
}

func TestEliminarUsuarioEscapaEmail(t *testing.T) {
	var ruta string
	c := clienteDe(t, func(w http.ResponseWriter, r *http.Request) {
		ruta = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	})
	_, err := c.EliminarUsuario(context.Background(), "tok", "ana+test@eventzone.com")
	require.NoError(t, err)
	assert.Equal(t, "/usuarios/eliminar/ana+test@eventzone.com", ruta)
}

func TestCrearConImagenMultipart(t *testing.T) {
	c := clienteDe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eventos/concierto/crear", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Radiohead", r.FormValue("artista"))
		assert.NotEmpty(t, r.FormValue("tickets"))

		f, fh, err := r.FormFile("imagenFile")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.Equal(t, "cartel.jpg", fh.Filename)

		_ = json.NewEncoder(w).Encode(model.Evento{ID: 9, Tipo: model.TipoConcierto})
	})

	p := model.NuevoPayloadConcierto(model.Comun{
		Nombre:  "Gira 2031",
		Tickets: []model.Ticket{{Tipo: "General", Precio: 50, Cantidad: 100}},
	}, model.DetallesConcierto{Artista: "Radiohead"})

	ev, err := c.CrearConImagen(context.Background(), "tok", p, "cartel.jpg", bytes.NewReader([]byte("jpegdata")))
	require.NoError(t, err)
	assert.Equal(t, uint64(9), ev.ID)
}
