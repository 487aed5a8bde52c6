package model

// The event-creation form used to read every input on the page and submit
// whatever happened to be in the DOM, including fields of the two hidden
// type groups.  Here each event type is its own payload struct: a payload
// can only ever carry the common fields, its own detail bag and the ticket
// tiers, so stale values from another type simply have nowhere to go.

import (
    "encoding/json"
    "fmt"
    "strconv"
)

// Comun holds the fields shared by every event type plus the tier list.
type Comun struct {
    Nombre            string   `json:"nombre"`
    Descripcion       string   `json:"descripcion,omitempty"`
    Genero            string   `json:"genero,omitempty"`
    ImagenUrl         string   `json:"imagenUrl,omitempty"`
    Duracion          string   `json:"duracion,omitempty"`
    Ciudad            string   `json:"ciudad,omitempty"`
    Direccion         string   `json:"direccion,omitempty"`
    Fecha             string   `json:"fecha,omitempty"`
    RestriccionesEdad string   `json:"restriccionesEdad,omitempty"`
    Normas            string   `json:"normas,omitempty"`
    ContactoEmail     string   `json:"contactoEmail,omitempty"`
    Accesible         bool     `json:"accesible,omitempty"`
    Comida            bool     `json:"comida,omitempty"`
    Tickets           []Ticket `json:"tickets"`
}

// DetallesCine carries the cine-only fields.
type DetallesCine struct {
    TituloPelicula string `json:"cineTitulo,omitempty"`
    Director       string `json:"cineDirector,omitempty"`
    Clasificacion  string `json:"clasificacion,omitempty"`
    Idioma         string `json:"idioma,omitempty"`
    Sala           string `json:"cineSala,omitempty"`
    Asientos       int    `json:"cineAsientos,omitempty"`
    HorarioSesion  string `json:"cineHorarios,omitempty"`
}

// DetallesConcierto carries the concierto-only fields.
type DetallesConcierto struct {
    Artista          string `json:"artista,omitempty"`
    ArtistasApertura string `json:"artistasApertura,omitempty"`
    Recinto          string `json:"recinto,omitempty"`
    Capacidad        int    `json:"capacidad,omitempty"`
    HoraComienzo     string `json:"hora,omitempty"`
    AperturaPuertas  string `json:"aperturaPuertas,omitempty"`
    Parking          bool   `json:"parking,omitempty"`
}

// DetallesFestival carries the festival-only fields.
type DetallesFestival struct {
    CartelArtistas  string `json:"festivalLineup,omitempty"`
    DiasDuracion    int    `json:"festivalDias,omitempty"`
    FechaFin        string `json:"fechaFin,omitempty"`
    Recinto         string `json:"recinto,omitempty"`
    Capacidad       int    `json:"capacidad,omitempty"`
    HoraComienzo    string `json:"hora,omitempty"`
    AperturaPuertas string `json:"aperturaPuertas,omitempty"`
    Parking         bool   `json:"parking,omitempty"`
}

// Payload is the tagged union of the three submission shapes.  JSON() feeds
// POST /eventos/crear; Campos() feeds the multipart form of the type-specific
// POST /eventos/{tipo}/crear routes used when an image file is attached.
type Payload interface {
    TipoEvento() string
    JSON() ([]byte, error)
    Campos() map[string]string
}

// PayloadCine is the cine submission.  The Tipo field is fixed by the
// constructor so a payload can never claim a type it does not have.
type PayloadCine struct {
    Tipo string `json:"tipo"`
    Comun
    DetallesCine
}

// PayloadConcierto is the concierto submission.
type PayloadConcierto struct {
    Tipo string `json:"tipo"`
    Comun
    DetallesConcierto
}

// PayloadFestival is the festival submission.
type PayloadFestival struct {
    Tipo string `json:"tipo"`
    Comun
    DetallesFestival
}

func NuevoPayloadCine(c Comun, d DetallesCine) PayloadCine {
    return PayloadCine{Tipo: TipoCine, Comun: c, DetallesCine: d}
}

func NuevoPayloadConcierto(c Comun, d DetallesConcierto) PayloadConcierto {
    return PayloadConcierto{Tipo: TipoConcierto, Comun: c, DetallesConcierto: d}
}

func NuevoPayloadFestival(c Comun, d DetallesFestival) PayloadFestival {
    return PayloadFestival{Tipo: TipoFestival, Comun: c, DetallesFestival: d}
}

func (p PayloadCine) TipoEvento() string      { return p.Tipo }
func (p PayloadConcierto) TipoEvento() string { return p.Tipo }
func (p PayloadFestival) TipoEvento() string  { return p.Tipo }

func (p PayloadCine) JSON() ([]byte, error)      { return json.Marshal(p) }
func (p PayloadConcierto) JSON() ([]byte, error) { return json.Marshal(p) }
func (p PayloadFestival) JSON() ([]byte, error)  { return json.Marshal(p) }

// Campos returns the flat form fields for the multipart cine route.  The
// field names match the backend's request parameters exactly.
func (p PayloadCine) Campos() map[string]string {
    m := p.Comun.campos(p.Tipo)
    setIf(m, "tituloPelicula", p.TituloPelicula)
    setIf(m, "director", p.Director)
    setIf(m, "clasificacion", p.Clasificacion)
    setIf(m, "idioma", p.Idioma)
    return m
}

// Campos returns the flat form fields for the multipart concierto route.
func (p PayloadConcierto) Campos() map[string]string {
    m := p.Comun.campos(p.Tipo)
    setIf(m, "artista", p.Artista)
    setIf(m, "artistasApertura", p.ArtistasApertura)
    setIf(m, "recinto", p.Recinto)
    if p.Capacidad > 0 {
        m["capacidad"] = strconv.Itoa(p.Capacidad)
    }
    // The backend binds these two under their historical parameter names.
    setIf(m, "horaComienzoStr", p.HoraComienzo)
    setIf(m, "aperturaPuertasStr", p.AperturaPuertas)
    if p.Parking {
        m["parking"] = "true"
    }
    return m
}

// Campos returns the flat form fields for the multipart festival route.
func (p PayloadFestival) Campos() map[string]string {
    m := p.Comun.campos(p.Tipo)
    setIf(m, "cartelArtistas", p.CartelArtistas)
    if p.DiasDuracion > 0 {
        m["diasDuracion"] = strconv.Itoa(p.DiasDuracion)
    }
    setIf(m, "fechaFinStr", p.FechaFin)
    setIf(m, "recinto", p.Recinto)
    if p.Capacidad > 0 {
        m["capacidad"] = strconv.Itoa(p.Capacidad)
    }
    setIf(m, "horaComienzoStr", p.HoraComienzo)
    setIf(m, "aperturaPuertasStr", p.AperturaPuertas)
    if p.Parking {
        m["parking"] = "true"
    }
    return m
}

// campos emits the shared multipart fields.  Tickets ride along as one
// JSON-encoded field so a multipart submission still carries the full tier
// array.
func (c Comun) campos(tipo string) map[string]string {
    m := map[string]string{
        "tipo":          tipo,
        "nombre":        c.Nombre,
        "descripcion":   c.Descripcion,
        "ciudad":        c.Ciudad,
        "direccion":     c.Direccion,
        "fecha":         c.Fecha,
        "contactoEmail": c.ContactoEmail,
    }
    if len(c.Tickets) > 0 {
        if b, err := json.Marshal(c.Tickets); err == nil {
            m["tickets"] = string(b)
        }
    }
    return m
}

func setIf(m map[string]string, key, val string) {
    if val != "" {
        m[key] = val
    }
}

// PayloadPorTipo builds the payload for the given type from the common
// fields and the single matching detail bag.  Exactly one of the detail
// arguments is consulted; the other two are ignored no matter what they
// contain.
func PayloadPorTipo(tipo string, c Comun, cine DetallesCine, concierto DetallesConcierto, festival DetallesFestival) (Payload, error) {
    switch tipo {
    case TipoCine:
        return NuevoPayloadCine(c, cine), nil
    case TipoConcierto:
        return NuevoPayloadConcierto(c, concierto), nil
    case TipoFestival:
        return NuevoPayloadFestival(c, festival), nil
    }
    return nil, fmt.Errorf("tipo de evento desconocido: %q", tipo)
}
