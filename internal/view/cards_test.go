package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventzone/eventzone-web/internal/model"
)

func TestTarjetasUsuarios(t *testing.T) {
	cards := TarjetasUsuarios([]model.Usuario{
		{Nombre: "Ana", Email: "ana@eventzone.com", Rol: model.Rol{Nombre: model.RolUser}},
		{Nombre: "Root", Email: "admin@eventzone.com", Rol: model.Rol{Nombre: model.RolAdmin}},
	})
	require.Len(t, cards, 2)

	assert.True(t, cards[0].Eliminable)
	// Admin cards carry no delete action.
	assert.False(t, cards[1].Eliminable)
	assert.Equal(t, model.RolAdmin, cards[1].Rol)
}

func TestTarjetasEventos(t *testing.T) {
	cards := TarjetasEventos([]model.Evento{
		{ID: 7, Tipo: model.TipoConcierto, Nombre: "Concierto", ImagenUrl: "/img/7.jpg"},
		{ID: 8, Tipo: "algo-raro", Nombre: "Misterio"},
	})
	require.Len(t, cards, 2)

	assert.Equal(t, "7", cards[0].ID)
	assert.Equal(t, "Concierto", cards[0].Badge)
	assert.Equal(t, "/img/7.jpg", cards[0].ImagenUrl)

	// Unknown types get the generic badge and missing images the default.
	assert.Equal(t, "Evento", cards[1].Badge)
	assert.Equal(t, ImagenPorDefecto, cards[1].ImagenUrl)
}

func TestTarjetasVacias(t *testing.T) {
	assert.Empty(t, TarjetasUsuarios(nil))
	assert.Empty(t, TarjetasEventos(nil))
}
