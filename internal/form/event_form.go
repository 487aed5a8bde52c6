// Package form holds the event-creation form state and its assembly into a
// typed submission payload.  The form keeps whatever the user typed in all
// three type groups, but only the group matching the selected event type
// can ever reach a payload.
package form

import (
    "errors"
    "net/url"
    "strconv"
    "strings"

    "github.com/eventzone/eventzone-web/internal/model"
)

// Warnings and validation failures surfaced inline by the handlers.
var (
    // ErrUltimaFila rejects removing the last remaining ticket tier.  It is
    // a warning, not a failure: the form stays as it was.
    ErrUltimaFila = errors.New("Debe haber al menos un tipo de entrada")
    // ErrSinTipo rejects submission before an event type was chosen.
    ErrSinTipo = errors.New("Selecciona un tipo de evento")
    // ErrSinTiers rejects submission without at least one ticket tier.
    ErrSinTiers = errors.New("Debes añadir al menos un tipo de entrada")
)

// Campos are the fields shared by every event type, held as entered.
type Campos struct {
    Nombre            string
    Descripcion       string
    Genero            string
    ImagenUrl         string
    Duracion          string
    Ciudad            string
    Direccion         string
    Fecha             string
    RestriccionesEdad string
    Normas            string
    ContactoEmail     string
    Accesible         bool
    Comida            bool
}

// GrupoCine is the cine field group.
type GrupoCine struct {
    TituloPelicula string
    Director       string
    Clasificacion  string
    Idioma         string
    Sala           string
    Asientos       string
    HorarioSesion  string
}

// GrupoConcierto is the concierto field group.
type GrupoConcierto struct {
    Artista          string
    ArtistasApertura string
    Recinto          string
    Capacidad        string
    HoraComienzo     string
    AperturaPuertas  string
    Parking          bool
}

// GrupoFestival is the festival field group.
type GrupoFestival struct {
    CartelArtistas  string
    DiasDuracion    string
    FechaFin        string
    Recinto         string
    Capacidad       string
    HoraComienzo    string
    AperturaPuertas string
    Parking         bool
}

// Tier is one editable ticket-tier row.  Values stay as strings until
// assembly so a half-typed row never breaks the form.
type Tier struct {
    Nombre      string
    Precio      string
    Cantidad    string
    Descripcion string
}

// Ticket validates and converts the row.  The rules are the ones the form
// enforced locally: a name, a non-negative price and at least one unit.
func (t Tier) Ticket() (model.Ticket, error) {
    nombre := strings.TrimSpace(t.Nombre)
    if nombre == "" {
        return model.Ticket{}, errors.New("El tipo de entrada necesita un nombre")
    }
    precio, err := strconv.ParseFloat(strings.TrimSpace(t.Precio), 64)
    if err != nil || precio < 0 {
        return model.Ticket{}, errors.New("El precio de la entrada no es válido")
    }
    cantidad, err := strconv.Atoi(strings.TrimSpace(t.Cantidad))
    if err != nil || cantidad < 1 {
        return model.Ticket{}, errors.New("La cantidad de entradas debe ser al menos 1")
    }
    return model.Ticket{
        Tipo:        nombre,
        Precio:      precio,
        Cantidad:    cantidad,
        Descripcion: strings.TrimSpace(t.Descripcion),
    }, nil
}

// EventForm is the whole form state.  Tipo empty means no type selected
// yet; exactly one group is visible otherwise.
type EventForm struct {
    Tipo      string
    Comunes   Campos
    Cine      GrupoCine
    Concierto GrupoConcierto
    Festival  GrupoFestival
    Tiers     []Tier
}

// Nuevo returns an empty form with the single starting tier row.
func Nuevo() *EventForm {
    return &EventForm{Tiers: []Tier{{}}}
}

// SelectTipo switches the visible field group.  An unknown value is
// rejected; the previous selection stays.
func (f *EventForm) SelectTipo(tipo string) error {
    switch tipo {
    case model.TipoCine, model.TipoConcierto, model.TipoFestival:
        f.Tipo = tipo
        return nil
    }
    return errors.New("tipo de evento desconocido: " + tipo)
}

// Grupos reports which field groups are visible.  At most one entry is
// true; all three are false while no type is selected.
func (f *EventForm) Grupos() map[string]bool {
    return map[string]bool{
        model.TipoCine:      f.Tipo == model.TipoCine,
        model.TipoConcierto: f.Tipo == model.TipoConcierto,
        model.TipoFestival:  f.Tipo == model.TipoFestival,
    }
}

// AddTier appends a fresh empty tier row.
func (f *EventForm) AddTier() {
    f.Tiers = append(f.Tiers, Tier{})
}

// RemoveTier drops the row at index i.  The floor is one remaining row;
// removing the last one returns ErrUltimaFila and changes nothing.
func (f *EventForm) RemoveTier(i int) error {
    if len(f.Tiers) <= 1 {
        return ErrUltimaFila
    }
    if i < 0 || i >= len(f.Tiers) {
        return errors.New("fila de entrada inexistente")
    }
    f.Tiers = append(f.Tiers[:i], f.Tiers[i+1:]...)
    return nil
}

// Reset clears the form back to its initial state.  Used after a
// successful submission.
func (f *EventForm) Reset() {
    *f = *Nuevo()
}

// Payload assembles the submission: the common fields, the detail bag of
// the selected type only, and every ticket tier.  Values sitting in the
// two hidden groups are ignored no matter what they contain.
func (f *EventForm) Payload() (model.Payload, error) {
    if f.Tipo == "" {
        return nil, ErrSinTipo
    }
    if len(f.Tiers) == 0 {
        return nil, ErrSinTiers
    }
    tickets := make([]model.Ticket, 0, len(f.Tiers))
    for _, tier := range f.Tiers {
        tk, err := tier.Ticket()
        if err != nil {
            return nil, err
        }
        tickets = append(tickets, tk)
    }

    comun := model.Comun{
        Nombre:            strings.TrimSpace(f.Comunes.Nombre),
        Descripcion:       f.Comunes.Descripcion,
        Genero:            f.Comunes.Genero,
        ImagenUrl:         f.Comunes.ImagenUrl,
        Duracion:          f.Comunes.Duracion,
        Ciudad:            f.Comunes.Ciudad,
        Direccion:         f.Comunes.Direccion,
        Fecha:             f.Comunes.Fecha,
        RestriccionesEdad: f.Comunes.RestriccionesEdad,
        Normas:            f.Comunes.Normas,
        ContactoEmail:     f.Comunes.ContactoEmail,
        Accesible:         f.Comunes.Accesible,
        Comida:            f.Comunes.Comida,
        Tickets:           tickets,
    }

    cine := model.DetallesCine{
        TituloPelicula: f.Cine.TituloPelicula,
        Director:       f.Cine.Director,
        Clasificacion:  f.Cine.Clasificacion,
        Idioma:         f.Cine.Idioma,
        Sala:           f.Cine.Sala,
        Asientos:       atoi(f.Cine.Asientos),
        HorarioSesion:  f.Cine.HorarioSesion,
    }
    concierto := model.DetallesConcierto{
        Artista:          f.Concierto.Artista,
        ArtistasApertura: f.Concierto.ArtistasApertura,
        Recinto:          f.Concierto.Recinto,
        Capacidad:        atoi(f.Concierto.Capacidad),
        HoraComienzo:     f.Concierto.HoraComienzo,
        AperturaPuertas:  f.Concierto.AperturaPuertas,
        Parking:          f.Concierto.Parking,
    }
    festival := model.DetallesFestival{
        CartelArtistas:  f.Festival.CartelArtistas,
        DiasDuracion:    atoi(f.Festival.DiasDuracion),
        FechaFin:        f.Festival.FechaFin,
        Recinto:         f.Festival.Recinto,
        Capacidad:       atoi(f.Festival.Capacidad),
        HoraComienzo:    f.Festival.HoraComienzo,
        AperturaPuertas: f.Festival.AperturaPuertas,
        Parking:         f.Festival.Parking,
    }
    return model.PayloadPorTipo(f.Tipo, comun, cine, concierto, festival)
}

// ParseForm fills the form from submitted values.  Every group is read,
// including the hidden ones, mirroring a real page where hidden inputs
// still post values; exclusion happens in Payload, not here.
func ParseForm(values url.Values) *EventForm {
    f := Nuevo()
    if tipo := values.Get("eventType"); tipo != "" {
        _ = f.SelectTipo(tipo)
    }
    f.Comunes = Campos{
        Nombre:            values.Get("nombre"),
        Descripcion:       values.Get("descripcion"),
        Genero:            values.Get("genero"),
        ImagenUrl:         values.Get("imagenUrl"),
        Duracion:          values.Get("duracion"),
        Ciudad:            values.Get("ciudad"),
        Direccion:         values.Get("direccion"),
        Fecha:             values.Get("fecha"),
        RestriccionesEdad: values.Get("restriccionesEdad"),
        Normas:            values.Get("normas"),
        ContactoEmail:     values.Get("contactoEmail"),
        Accesible:         marcado(values.Get("accesible")),
        Comida:            marcado(values.Get("comida")),
    }
    f.Cine = GrupoCine{
        TituloPelicula: values.Get("cine_tituloPelicula"),
        Director:       values.Get("cine_director"),
        Clasificacion:  values.Get("cine_clasificacion"),
        Idioma:         values.Get("cine_idioma"),
        Sala:           values.Get("cine_sala"),
        Asientos:       values.Get("cine_asientos"),
        HorarioSesion:  values.Get("cine_horarioSesion"),
    }
    f.Concierto = GrupoConcierto{
        Artista:          values.Get("concierto_artista"),
        ArtistasApertura: values.Get("concierto_artistasApertura"),
        Recinto:          values.Get("concierto_recinto"),
        Capacidad:        values.Get("concierto_capacidad"),
        HoraComienzo:     values.Get("concierto_horaComienzo"),
        AperturaPuertas:  values.Get("concierto_aperturaPuertas"),
        Parking:          marcado(values.Get("concierto_parking")),
    }
    f.Festival = GrupoFestival{
        CartelArtistas:  values.Get("festival_cartelArtistas"),
        DiasDuracion:    values.Get("festival_diasDuracion"),
        FechaFin:        values.Get("festival_fechaFin"),
        Recinto:         values.Get("festival_recinto"),
        Capacidad:       values.Get("festival_capacidad"),
        HoraComienzo:    values.Get("festival_horaComienzo"),
        AperturaPuertas: values.Get("festival_aperturaPuertas"),
        Parking:         marcado(values.Get("festival_parking")),
    }

    nombres := values["ticketTypeName"]
    precios := values["ticketTypePrice"]
    cantidades := values["ticketTypeQuantity"]
    descripciones := values["ticketTypeDescription"]
    if len(nombres) > 0 {
        f.Tiers = make([]Tier, len(nombres))
        for i := range nombres {
            f.Tiers[i] = Tier{
                Nombre:      nombres[i],
                Precio:      indice(precios, i),
                Cantidad:    indice(cantidades, i),
                Descripcion: indice(descripciones, i),
            }
        }
    }
    return f
}

// marcado interprets a checkbox value.  Browsers post "on" for a checked
// box with no explicit value.
func marcado(v string) bool {
    return v == "on" || v == "true" || v == "1"
}

func atoi(s string) int {
    n, _ := strconv.Atoi(strings.TrimSpace(s))
    return n
}

func indice(vs []string, i int) string {
    if i < len(vs) {
        return vs[i]
    }
    return ""
}
