package view

import (
    "strings"

    "github.com/eventzone/eventzone-web/internal/model"
)

// Profile editor states.  Saving is transient: it resolves to viewing on
// success and back to editing on failure.
type EstadoPerfil int

const (
    Viendo EstadoPerfil = iota
    Editando
    Guardando
)

// Resumen is the sidebar summary next to the profile form.
type Resumen struct {
    Nombre    string `json:"nombre"`
    Email     string `json:"email"`
    Iniciales string `json:"iniciales"`
}

// PerfilView is the profile editor: the current field values, the state,
// and the snapshot taken when editing began.  The snapshot is written back
// on cancel and discarded on a successful save.
type PerfilView struct {
    Estado   EstadoPerfil `json:"estado"`
    Campos   model.Perfil `json:"campos"`
    Sidebar  Resumen      `json:"sidebar"`
    snapshot model.Perfil
}

// NuevoPerfilView starts in viewing state with the loaded profile.
func NuevoPerfilView(p model.Perfil) *PerfilView {
    return &PerfilView{Estado: Viendo, Campos: p, Sidebar: ResumenDe(p)}
}

// Editar enters edit mode, snapshotting the pre-edit values.  A second
// call while already editing keeps the original snapshot.
func (v *PerfilView) Editar() {
    if v.Estado != Viendo {
        return
    }
    v.snapshot = v.Campos
    v.Estado = Editando
}

// Cancelar restores the snapshot and returns to viewing.  No network call
// is involved.
func (v *PerfilView) Cancelar() {
    if v.Estado == Viendo {
        return
    }
    v.Campos = v.snapshot
    v.Estado = Viendo
}

// Guardar moves into the transient saving state with the values about to
// be submitted.
func (v *PerfilView) Guardar(campos model.Perfil) {
    v.Campos = campos
    v.Estado = Guardando
}

// GuardadoOK resolves a save: the sidebar summary is refreshed from the
// submitted values and the editor returns to viewing.
func (v *PerfilView) GuardadoOK() {
    v.Sidebar = ResumenDe(v.Campos)
    v.Estado = Viendo
}

// GuardadoFallo resolves a failed save: the editor stays in editing so the
// user can correct and retry.
func (v *PerfilView) GuardadoFallo() {
    v.Estado = Editando
}

// ResumenDe derives the sidebar summary from a profile.
func ResumenDe(p model.Perfil) Resumen {
    return Resumen{Nombre: p.Nombre, Email: p.Email, Iniciales: Iniciales(p.Nombre)}
}

// Iniciales takes the first letter of each space-separated name token,
// uppercased.  "Ada Lovelace" becomes "AL".
func Iniciales(nombre string) string {
    var b strings.Builder
    for _, parte := range strings.Fields(nombre) {
        r := []rune(parte)
        b.WriteString(strings.ToUpper(string(r[0])))
    }
    return b.String()
}

// Favorito is one saved event in the profile's favorites tab.
type Favorito struct {
    ID     uint64 `json:"id"`
    Nombre string `json:"nombre"`
}

// Favoritos is the favorites list with its displayed counter.  Removal is
// presentation-only: the list item disappears and the counter drops, with
// no backend call behind it.
type Favoritos struct {
    Items    []Favorito `json:"items"`
    Contador int        `json:"contador"`
}

// NuevosFavoritos builds the list with the counter matching its length.
func NuevosFavoritos(items []Favorito) *Favoritos {
    return &Favoritos{Items: items, Contador: len(items)}
}

// Quitar removes the favorite with the given id and decrements the
// counter.  It reports whether anything was removed.
func (f *Favoritos) Quitar(id uint64) bool {
    for i, fav := range f.Items {
        if fav.ID == id {
            f.Items = append(f.Items[:i], f.Items[i+1:]...)
            f.Contador--
            return true
        }
    }
    return false
}
