package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventzone/eventzone-web/internal/model"
)

func TestFlattenRestaurar(t *testing.T) {
	f := Nuevo()
	require.NoError(t, f.SelectTipo(model.TipoConcierto))
	f.Comunes.Nombre = "Concierto benéfico"
	f.Comunes.Fecha = "2031-05-01"
	f.Comunes.Comida = true
	f.Concierto.Artista = "Vetusta Morla"
	f.Concierto.Parking = true
	f.Tiers = []Tier{
		{Nombre: "General", Precio: "30", Cantidad: "200"},
		{Nombre: "VIP", Precio: "90", Cantidad: "20", Descripcion: "Acceso backstage"},
	}

	g := Restaurar(f.Flatten())

	assert.Equal(t, f.Tipo, g.Tipo)
	assert.Equal(t, f.Comunes, g.Comunes)
	assert.Equal(t, f.Concierto, g.Concierto)
	assert.Equal(t, f.Tiers, g.Tiers)
}

func TestFlattenCheckboxes(t *testing.T) {
	f := Nuevo()
	f.Comunes.Accesible = true

	v := f.Flatten()
	assert.Equal(t, "on", v.Get("accesible"))
	// Unchecked boxes are absent, like a real form post.
	assert.Empty(t, v.Get("comida"))

	g := Restaurar(v)
	assert.True(t, g.Comunes.Accesible)
	assert.False(t, g.Comunes.Comida)
}

// A draft whose saved radio value no longer names a real event type
// restores the rest of the fields and leaves the type unselected.
func TestRestaurarRadioDesconocida(t *testing.T) {
	v := url.Values{
		"eventType": {"opera"},
		"nombre":    {"Recuperado"},
	}
	f := Restaurar(v)
	assert.Empty(t, f.Tipo)
	assert.Equal(t, "Recuperado", f.Comunes.Nombre)
}

func TestFlattenTiersRepetidos(t *testing.T) {
	f := Nuevo()
	f.Tiers = []Tier{{Nombre: "A", Precio: "1", Cantidad: "1"}, {Nombre: "B", Precio: "2", Cantidad: "2"}}

	v := f.Flatten()
	assert.Equal(t, []string{"A", "B"}, v["ticketTypeName"])
	assert.Equal(t, []string{"1", "2"}, v["ticketTypePrice"])
}
