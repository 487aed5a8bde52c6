package backend

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "mime/multipart"
    "net/http"
    "strconv"

    "github.com/eventzone/eventzone-web/internal/model"
)

// Eventos lists every event.  The listing is public on the backend.
func (c *Client) Eventos(ctx context.Context) ([]model.Evento, error) {
    var es []model.Evento
    if err := c.getJSON(ctx, "/eventos/todos", "", &es); err != nil {
        return nil, err
    }
    return es, nil
}

// Detalle fetches a single event by id.
func (c *Client) Detalle(ctx context.Context, id uint64) (model.Evento, error) {
    var e model.Evento
    if err := c.getJSON(ctx, "/eventos/detalle/"+strconv.FormatUint(id, 10), "", &e); err != nil {
        return model.Evento{}, err
    }
    return e, nil
}

// Crear submits an assembled event payload as JSON to the generic creation
// route.  Used when no image file accompanies the form.
func (c *Client) Crear(ctx context.Context, token string, p model.Payload) (model.Evento, error) {
    body, err := p.JSON()
    if err != nil {
        return model.Evento{}, err
    }
    resp, err := c.do(ctx, http.MethodPost, "/eventos/crear", token, bytes.NewReader(body), "application/json")
    if err != nil {
        return model.Evento{}, err
    }
    defer func() { _ = resp.Body.Close() }()
    var e model.Evento
    if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
        return model.Evento{}, err
    }
    return e, nil
}

// CrearConImagen submits an assembled payload to the type-specific multipart
// route, attaching the uploaded image under the backend's "imagenFile"
// field.  Multipart is required exactly when an image file is attached.
func (c *Client) CrearConImagen(ctx context.Context, token string, p model.Payload, filename string, imagen io.Reader) (model.Evento, error) {
    var buf bytes.Buffer
    w := multipart.NewWriter(&buf)
    for k, v := range p.Campos() {
        if err := w.WriteField(k, v); err != nil {
            return model.Evento{}, err
        }
    }
    fw, err := w.CreateFormFile("imagenFile", filename)
    if err != nil {
        return model.Evento{}, err
    }
    if _, err := io.Copy(fw, imagen); err != nil {
        return model.Evento{}, err
    }
    if err := w.Close(); err != nil {
        return model.Evento{}, err
    }

    path := fmt.Sprintf("/eventos/%s/crear", p.TipoEvento())
    resp, err := c.do(ctx, http.MethodPost, path, token, &buf, w.FormDataContentType())
    if err != nil {
        return model.Evento{}, err
    }
    defer func() { _ = resp.Body.Close() }()
    var e model.Evento
    if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
        return model.Evento{}, err
    }
    return e, nil
}

// Editar replaces an existing event with a freshly assembled payload.
func (c *Client) Editar(ctx context.Context, token string, id uint64, p model.Payload) (model.Evento, error) {
    body, err := p.JSON()
    if err != nil {
        return model.Evento{}, err
    }
    resp, err := c.do(ctx, http.MethodPut, "/eventos/editar/"+strconv.FormatUint(id, 10), token, bytes.NewReader(body), "application/json")
    if err != nil {
        return model.Evento{}, err
    }
    defer func() { _ = resp.Body.Close() }()
    var e model.Evento
    if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
        return model.Evento{}, err
    }
    return e, nil
}

// Eliminar deletes an event by id.
func (c *Client) Eliminar(ctx context.Context, token string, id uint64) error {
    resp, err := c.do(ctx, http.MethodDelete, "/eventos/eliminar/"+strconv.FormatUint(id, 10), token, nil, "")
    if err != nil {
        return err
    }
    return resp.Body.Close()
}

// Estadisticas returns the ticket sales summary of one event.
func (c *Client) Estadisticas(ctx context.Context, token string, id uint64) (model.Estadisticas, error) {
    var s model.Estadisticas
    if err := c.getJSON(ctx, "/eventos/estadisticas/"+strconv.FormatUint(id, 10), token, &s); err != nil {
        return model.Estadisticas{}, err
    }
    return s, nil
}
