package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var errInvalidToken = errors.New("invalid token")

// Claims is the JWT payload. The subject is the actor id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator turns HS256 bearer tokens into principals.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Issue signs a token for the actor; ttl <= 0 issues a token without expiry.
func (a *Authenticator) Issue(actorID kernel.UUID, role actor.Role, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  actorID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse validates the signature and the claims and returns the principal.
func (a *Authenticator) Parse(raw string) (actor.Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return actor.Anonymous(), err
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Anonymous(), errInvalidToken
	}
	role, err := actor.ParseRole(claims.Role)
	if err != nil {
		return actor.Anonymous(), errInvalidToken
	}

	return actor.NewPrincipal(id, role), nil
}

// Middleware rejects requests without a valid bearer token with 401.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			principal, err := a.Parse(strings.TrimSpace(token))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token").SetInternal(err)
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the caller set by the auth middleware, or Anonymous.
func PrincipalFrom(c echo.Context) actor.Principal {
	if p, ok := c.Get(principalKey).(actor.Principal); ok {
		return p
	}
	return actor.Anonymous()
}
