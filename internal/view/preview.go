package view

import (
    "fmt"
    "strconv"

    "github.com/eventzone/eventzone-web/internal/form"
    "github.com/eventzone/eventzone-web/internal/model"
)

// previewLabels are the decorated type labels of the live preview panel,
// distinct from the plain listing badges.
var previewLabels = map[string]string{
    model.TipoCine:      "🎬 Cine",
    model.TipoConcierto: "🎵 Concierto",
    model.TipoFestival:  "🎪 Festival",
}

// Preview is the live side panel of the event-creation form.  Empty fields
// fall back to placeholder text the way the original preview did.
type Preview struct {
    TipoLabel   string `json:"tipoLabel"`
    Nombre      string `json:"nombre"`
    Artista     string `json:"artista,omitempty"`
    Descripcion string `json:"descripcion"`
    Fecha       string `json:"fecha"`
    Ubicacion   string `json:"ubicacion"`
    PrecioDesde string `json:"precioDesde"`
    ImagenUrl   string `json:"imagenUrl,omitempty"`
}

// PreviewDe derives the preview from the current form state.
func PreviewDe(f *form.EventForm) Preview {
    p := Preview{
        TipoLabel:   "Evento",
        Nombre:      "Nombre del Evento",
        Descripcion: "Descripción del evento...",
        Fecha:       "Fecha",
        Ubicacion:   "Ubicación",
        ImagenUrl:   f.Comunes.ImagenUrl,
    }
    if l, ok := previewLabels[f.Tipo]; ok {
        p.TipoLabel = l
    }
    if f.Comunes.Nombre != "" {
        p.Nombre = f.Comunes.Nombre
    }
    if f.Comunes.Descripcion != "" {
        p.Descripcion = f.Comunes.Descripcion
    }
    if f.Comunes.Fecha != "" {
        p.Fecha = f.Comunes.Fecha
    }
    if f.Tipo == model.TipoConcierto {
        p.Artista = f.Concierto.Artista
    }

    recinto := recintoDe(f)
    switch {
    case recinto != "" && f.Comunes.Ciudad != "":
        p.Ubicacion = recinto + ", " + f.Comunes.Ciudad
    case recinto != "":
        p.Ubicacion = recinto
    case f.Comunes.Ciudad != "":
        p.Ubicacion = f.Comunes.Ciudad
    }

    p.PrecioDesde = precioMinimo(f.Tiers)
    return p
}

// recintoDe picks the venue of the visible group, if any.
func recintoDe(f *form.EventForm) string {
    switch f.Tipo {
    case model.TipoConcierto:
        return f.Concierto.Recinto
    case model.TipoFestival:
        return f.Festival.Recinto
    case model.TipoCine:
        return f.Cine.Sala
    }
    return ""
}

// precioMinimo formats the cheapest parseable tier price.  Rows still
// being typed are skipped.
func precioMinimo(tiers []form.Tier) string {
    min := -1.0
    for _, t := range tiers {
        precio, err := strconv.ParseFloat(t.Precio, 64)
        if err != nil || precio < 0 {
            continue
        }
        if min < 0 || precio < min {
            min = precio
        }
    }
    if min < 0 {
        return "€0.00"
    }
    return fmt.Sprintf("€%.2f", min)
}
