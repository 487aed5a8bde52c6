package form

import "net/url"

// Drafts are the flattened form values keyed by field name, exactly what a
// page would persist locally before navigating away.  Field kinds matter on
// the way back in: the eventType radio only takes effect when the saved
// value names a real option, checkbox fields read "on" as checked, and
// everything else is written back verbatim.

// Flatten serializes every current field value by name, including the
// repeated ticket-tier fields.  The output round-trips through Restaurar.
func (f *EventForm) Flatten() url.Values {
    v := url.Values{}
    set := func(k, val string) {
        if val != "" {
            v.Set(k, val)
        }
    }
    marca := func(k string, b bool) {
        if b {
            v.Set(k, "on")
        }
    }

    set("eventType", f.Tipo)
    set("nombre", f.Comunes.Nombre)
    set("descripcion", f.Comunes.Descripcion)
    set("genero", f.Comunes.Genero)
    set("imagenUrl", f.Comunes.ImagenUrl)
    set("duracion", f.Comunes.Duracion)
    set("ciudad", f.Comunes.Ciudad)
    set("direccion", f.Comunes.Direccion)
    set("fecha", f.Comunes.Fecha)
    set("restriccionesEdad", f.Comunes.RestriccionesEdad)
    set("normas", f.Comunes.Normas)
    set("contactoEmail", f.Comunes.ContactoEmail)
    marca("accesible", f.Comunes.Accesible)
    marca("comida", f.Comunes.Comida)

    set("cine_tituloPelicula", f.Cine.TituloPelicula)
    set("cine_director", f.Cine.Director)
    set("cine_clasificacion", f.Cine.Clasificacion)
    set("cine_idioma", f.Cine.Idioma)
    set("cine_sala", f.Cine.Sala)
    set("cine_asientos", f.Cine.Asientos)
    set("cine_horarioSesion", f.Cine.HorarioSesion)

    set("concierto_artista", f.Concierto.Artista)
    set("concierto_artistasApertura", f.Concierto.ArtistasApertura)
    set("concierto_recinto", f.Concierto.Recinto)
    set("concierto_capacidad", f.Concierto.Capacidad)
    set("concierto_horaComienzo", f.Concierto.HoraComienzo)
    set("concierto_aperturaPuertas", f.Concierto.AperturaPuertas)
    marca("concierto_parking", f.Concierto.Parking)

    set("festival_cartelArtistas", f.Festival.CartelArtistas)
    set("festival_diasDuracion", f.Festival.DiasDuracion)
    set("festival_fechaFin", f.Festival.FechaFin)
    set("festival_recinto", f.Festival.Recinto)
    set("festival_capacidad", f.Festival.Capacidad)
    set("festival_horaComienzo", f.Festival.HoraComienzo)
    set("festival_aperturaPuertas", f.Festival.AperturaPuertas)
    marca("festival_parking", f.Festival.Parking)

    for _, t := range f.Tiers {
        v.Add("ticketTypeName", t.Nombre)
        v.Add("ticketTypePrice", t.Precio)
        v.Add("ticketTypeQuantity", t.Cantidad)
        v.Add("ticketTypeDescription", t.Descripcion)
    }
    return v
}

// Restaurar rebuilds a form from a saved draft.  ParseForm already applies
// the per-kind rules: an unknown eventType leaves the radio unset instead
// of failing, and checkbox values only count when they read as checked.
func Restaurar(values url.Values) *EventForm {
    return ParseForm(values)
}
