package model

// Event types understood by the backend.  The value travels in the "tipo"
// field of every event payload and drives which detail fields are present.
const (
    TipoCine      = "cine"
    TipoConcierto = "concierto"
    TipoFestival  = "festival"
)

// badgeLabels maps an event type to the label shown on listing cards.
// Unknown types fall back to a neutral label rather than an error.
var badgeLabels = map[string]string{
    TipoCine:      "Cine",
    TipoConcierto: "Concierto",
    TipoFestival:  "Festival",
}

// BadgeLabel returns the display label for an event type.
func BadgeLabel(tipo string) string {
    if l, ok := badgeLabels[tipo]; ok {
        return l
    }
    return "Evento"
}

// Evento mirrors the backend's single event record.  The backend keeps all
// three variants in one table, so reads carry every column and the unused
// ones arrive empty.  Writes from this gateway never use this struct; they
// go through the typed payloads in payload.go so hidden-group fields can
// never leak into a submission.
type Evento struct {
    ID          uint64 `json:"id"`
    Tipo        string `json:"tipo"`
    Nombre      string `json:"nombre"`
    Descripcion string `json:"descripcion,omitempty"`
    Genero      string `json:"genero,omitempty"`
    ImagenUrl   string `json:"imagenUrl,omitempty"`
    Duracion    string `json:"duracion,omitempty"`

    // cine
    Idioma        string `json:"idioma,omitempty"`
    CineTitulo    string `json:"cineTitulo,omitempty"`
    CineDirector  string `json:"cineDirector,omitempty"`
    Clasificacion string `json:"clasificacion,omitempty"`
    CineNombre    string `json:"cineNombre,omitempty"`
    CineSala      string `json:"cineSala,omitempty"`
    CineAsientos  int    `json:"cineAsientos,omitempty"`
    CineHorarios  string `json:"cineHorarios,omitempty"`

    // concierto
    Artista          string `json:"artista,omitempty"`
    ArtistasApertura string `json:"artistasApertura,omitempty"`

    // festival
    FestivalLineup string `json:"festivalLineup,omitempty"`
    FestivalDias   int    `json:"festivalDias,omitempty"`
    FechaFin       string `json:"fechaFin,omitempty"`

    // concierto/festival
    Recinto         string `json:"recinto,omitempty"`
    Capacidad       int    `json:"capacidad,omitempty"`
    Hora            string `json:"hora,omitempty"`
    AperturaPuertas string `json:"aperturaPuertas,omitempty"`
    Parking         bool   `json:"parking,omitempty"`

    Ciudad            string   `json:"ciudad,omitempty"`
    Direccion         string   `json:"direccion,omitempty"`
    Fecha             string   `json:"fecha,omitempty"`
    RestriccionesEdad string   `json:"restriccionesEdad,omitempty"`
    Normas            string   `json:"normas,omitempty"`
    ContactoEmail     string   `json:"contactoEmail,omitempty"`
    Accesible         bool     `json:"accesible,omitempty"`
    Comida            bool     `json:"comida,omitempty"`
    Tickets           []Ticket `json:"tickets,omitempty"`
}

// Estadisticas is the ticket summary served by GET /eventos/estadisticas/:id.
type Estadisticas struct {
    Vendidos    int64   `json:"vendidos"`
    Disponibles int64   `json:"disponibles"`
    Ingresos    float64 `json:"ingresos"`
}
