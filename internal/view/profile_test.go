package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventzone/eventzone-web/internal/model"
)

func perfilDePrueba() model.Perfil {
	return model.Perfil{
		Nombre: "Ana García",
		Email:  "ana@eventzone.com",
		Ciudad: "Sevilla",
	}
}

func TestEditarCancelar(t *testing.T) {
	v := NuevoPerfilView(perfilDePrueba())
	require.Equal(t, Viendo, v.Estado)

	v.Editar()
	assert.Equal(t, Editando, v.Estado)

	// Edits in progress are thrown away on cancel.
	v.Campos.Nombre = "Otro Nombre"
	v.Campos.Ciudad = "Huelva"
	v.Cancelar()

	assert.Equal(t, Viendo, v.Estado)
	assert.Equal(t, "Ana García", v.Campos.Nombre)
	assert.Equal(t, "Sevilla", v.Campos.Ciudad)
}

func TestCancelarSinEditar(t *testing.T) {
	v := NuevoPerfilView(perfilDePrueba())
	v.Cancelar()
	assert.Equal(t, Viendo, v.Estado)
	assert.Equal(t, "Ana García", v.Campos.Nombre)
}

func TestGuardadoOK(t *testing.T) {
	v := NuevoPerfilView(perfilDePrueba())
	v.Editar()

	nuevos := perfilDePrueba()
	nuevos.Nombre = "Ana María García"
	v.Guardar(nuevos)
	require.Equal(t, Guardando, v.Estado)

	v.GuardadoOK()
	assert.Equal(t, Viendo, v.Estado)
	assert.Equal(t, "Ana María García", v.Sidebar.Nombre)
	assert.Equal(t, "AMG", v.Sidebar.Iniciales)
}

func TestGuardadoFallo(t *testing.T) {
	v := NuevoPerfilView(perfilDePrueba())
	v.Editar()

	nuevos := perfilDePrueba()
	nuevos.Nombre = "Nombre Rechazado"
	v.Guardar(nuevos)
	v.GuardadoFallo()

	// The editor stays open with the typed values; the sidebar keeps the
	// last saved ones.
	assert.Equal(t, Editando, v.Estado)
	assert.Equal(t, "Nombre Rechazado", v.Campos.Nombre)
	assert.Equal(t, "Ana García", v.Sidebar.Nombre)
}

func TestIniciales(t *testing.T) {
	tests := []struct {
		nombre string
		want   string
	}{
		{"Ada Lovelace", "AL"},
		{"ana garcía lópez", "AGL"},
		{"Cher", "C"},
		{"", ""},
		{"  espacios   varios  ", "EV"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Iniciales(tt.nombre), tt.nombre)
	}
}

func TestFavoritosQuitar(t *testing.T) {
	f := NuevosFavoritos([]Favorito{
		{ID: 1, Nombre: "Concierto A"},
		{ID: 2, Nombre: "Festival B"},
	})
	require.Equal(t, 2, f.Contador)

	assert.True(t, f.Quitar(1))
	assert.Equal(t, 1, f.Contador)
	assert.Len(t, f.Items, 1)
	assert.Equal(t, uint64(2), f.Items[0].ID)

	// Removing an id that is gone leaves the counter alone.
	assert.False(t, f.Quitar(1))
	assert.Equal(t, 1, f.Contador)
}
