package backend

import (
    "context"
    "encoding/json"
    "net/http"
    "net/url"

    "github.com/eventzone/eventzone-web/internal/model"
)

// Sesion is the backend's answer to a successful login: the bearer token to
// keep for later calls and the role that decides where the user lands.
type Sesion struct {
    Token string `json:"token"`
    Rol   string `json:"rol"`
}

// Login exchanges credentials for a session.  A 404 means the email is not
// registered, a 401 means the password is wrong; both surface as sentinel
// errors for the auth handler to translate.
func (c *Client) Login(ctx context.Context, email, password string) (Sesion, error) {
    body := map[string]string{"email": email, "password": password}
    var s Sesion
    if err := c.sendJSON(ctx, http.MethodPost, "/usuarios/login", "", body, &s); err != nil {
        return Sesion{}, err
    }
    return s, nil
}

// Registro creates an account.  The backend answers with a plain-text
// confirmation which the caller may show or discard.
func (c *Client) Registro(ctx context.Context, nombre, email, password string) error {
    body := map[string]string{"nombre": nombre, "email": email, "password": password}
    return c.sendJSON(ctx, http.MethodPost, "/usuarios/registro", "", body, nil)
}

// Logout invalidates the session server-side.  The gateway clears its own
// cookie regardless of the outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
    resp, err := c.do(ctx, http.MethodGet, "/usuarios/logout", token, nil, "")
    if err != nil {
        return err
    }
    return resp.Body.Close()
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context, token string) (model.Perfil, error) {
    var p model.Perfil
    if err := c.getJSON(ctx, "/usuarios/me", token, &p); err != nil {
        return model.Perfil{}, err
    }
    return p, nil
}

// ActualizarMe updates the authenticated user's profile and returns the
// record the backend stored.
func (c *Client) ActualizarMe(ctx context.Context, token string, p model.Perfil) (model.Perfil, error) {
    var out model.Perfil
    if err := c.sendJSON(ctx, http.MethodPut, "/usuarios/me", token, p, &out); err != nil {
        return model.Perfil{}, err
    }
    return out, nil
}

// Usuarios lists every registered user for the admin panel.
func (c *Client) Usuarios(ctx context.Context, token string) ([]model.Usuario, error) {
    var us []model.Usuario
    if err := c.getJSON(ctx, "/usuarios/todos", token, &us); err != nil {
        return nil, err
    }
    return us, nil
}

// EliminarUsuario deletes the user identified by email.  Deleting an
// already-removed email fails with ErrNoEncontrado and is simply reported.
func (c *Client) EliminarUsuario(ctx context.Context, token, email string) (string, error) {
    resp, err := c.do(ctx, http.MethodDelete, "/usuarios/eliminar/"+url.PathEscape(email), token, nil, "")
    if err != nil {
        return "", err
    }
    defer func() { _ = resp.Body.Close() }()
    var msg string
    // Success bodies vary between plain text and JSON; keep whatever decodes.
    _ = json.NewDecoder(resp.Body).Decode(&msg)
    return msg, nil
}
