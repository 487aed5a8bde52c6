package view

import (
    "strconv"

    "github.com/eventzone/eventzone-web/internal/model"
)

// Fixed inline messages shown when a listing cannot be loaded.  There is
// no retry; the user reloads the panel to try again.
const (
    ErrorCargaUsuarios = "Error al cargar los usuarios."
    ErrorCargaEventos  = "Error al cargar los eventos."
    SinEventos         = "No hay eventos creados."
)

// ImagenPorDefecto is used for events without an uploaded image.
const ImagenPorDefecto = "/images/default-event.jpg"

// TarjetaUsuario is one card of the admin user list.  Admin accounts are
// not deletable, so their card carries no delete action.
type TarjetaUsuario struct {
    Nombre     string `json:"nombre"`
    Email      string `json:"email"`
    Rol        string `json:"rol"`
    Eliminable bool   `json:"eliminable"`
}

// TarjetasUsuarios maps backend users onto cards, fields verbatim.
func TarjetasUsuarios(usuarios []model.Usuario) []TarjetaUsuario {
    tarjetas := make([]TarjetaUsuario, 0, len(usuarios))
    for _, u := range usuarios {
        tarjetas = append(tarjetas, TarjetaUsuario{
            Nombre:     u.Nombre,
            Email:      u.Email,
            Rol:        u.Rol.Nombre,
            Eliminable: !u.EsAdmin(),
        })
    }
    return tarjetas
}

// TarjetaEvento is one card of the event list.
type TarjetaEvento struct {
    ID          string `json:"id"`
    Nombre      string `json:"nombre"`
    Badge       string `json:"badge"`
    Descripcion string `json:"descripcion"`
    Fecha       string `json:"fecha"`
    Hora        string `json:"hora,omitempty"`
    ImagenUrl   string `json:"imagenUrl"`
}

// TarjetasEventos maps backend events onto cards.  The badge comes from
// the fixed type label table; everything else is passed through.
func TarjetasEventos(eventos []model.Evento) []TarjetaEvento {
    tarjetas := make([]TarjetaEvento, 0, len(eventos))
    for _, e := range eventos {
        imagen := e.ImagenUrl
        if imagen == "" {
            imagen = ImagenPorDefecto
        }
        tarjetas = append(tarjetas, TarjetaEvento{
            ID:          strconv.FormatUint(e.ID, 10),
            Nombre:      e.Nombre,
            Badge:       model.BadgeLabel(e.Tipo),
            Descripcion: e.Descripcion,
            Fecha:       e.Fecha,
            Hora:        e.Hora,
            ImagenUrl:   imagen,
        })
    }
    return tarjetas
}
