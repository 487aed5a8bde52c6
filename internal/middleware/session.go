package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// SessionCookie is the cookie the gateway stores the backend-issued token
// in after a successful login.
const SessionCookie = "jwt"

// Context keys populated for authenticated requests.
const (
    CtxToken = "token" // raw bearer token to forward to the backend
    CtxEmail = "email" // token subject: the user's email
    CtxRol   = "rol"   // role claim: ADMIN or USER
)

// Session returns a middleware that requires a valid session token, taken
// from the jwt cookie or from an Authorization bearer header, and verified
// against the secret the backend signs with.  The raw token and its
// subject and role claims are injected into the request context so
// handlers can forward the token and decide routing by role.
func Session(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            raw := tokenFrom(c)
            if raw == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "sesión no iniciada"})
            }
            // Parse with HS256 and the shared secret.  A different signing
            // method means the token was not issued by our backend.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "sesión no válida"})
            }
            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "sesión no válida"})
            }
            c.Set(CtxToken, raw)
            if sub, ok := claims["sub"].(string); ok {
                c.Set(CtxEmail, sub)
            }
            if rol, ok := claims["rol"].(string); ok {
                c.Set(CtxRol, rol)
            }
            return next(c)
        }
    }
}

// tokenFrom extracts the session token: cookie first, then bearer header.
func tokenFrom(c echo.Context) string {
    if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
        return ck.Value
    }
    auth := c.Request().Header.Get("Authorization")
    if strings.HasPrefix(auth, "Bearer ") {
        return strings.TrimPrefix(auth, "Bearer ")
    }
    return ""
}
