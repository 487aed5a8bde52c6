package model

// Ticket is one purchasable tier of an event: its own price, its own
// stock.  Tipo is the tier name ("General", "VIP", ...), not the event
// type.  Vendidos and Vendido are maintained by the backend and are only
// ever read here.
type Ticket struct {
    ID          uint64  `json:"id,omitempty"`
    Tipo        string  `json:"tipo"`
    Precio      float64 `json:"precio"`
    Cantidad    int     `json:"cantidad"`
    Vendidos    int     `json:"vendidos,omitempty"`
    Descripcion string  `json:"descripcion,omitempty"`
    Vendido     bool    `json:"vendido,omitempty"`
}

// Disponibles returns how many units of this tier remain on sale.
func (t Ticket) Disponibles() int {
    if t.Cantidad < t.Vendidos {
        return 0
    }
    return t.Cantidad - t.Vendidos
}

// Agotado reports whether the tier is sold out.
func (t Ticket) Agotado() bool {
    return t.Cantidad > 0 && t.Vendidos >= t.Cantidad
}
