package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpin "smartlogi/internal/adapters/in/http"
	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticator_IssueAndParse(t *testing.T) {
	auth := httpin.NewAuthenticator(jwtSecret)
	id := kernel.NewUUID()

	token, err := auth.Issue(id, actor.RoleCourier, time.Now(), time.Hour)
	require.NoError(t, err)

	principal, err := auth.Parse(token)
	require.NoError(t, err)
	assert.True(t, principal.IsAuthenticated())
	assert.True(t, principal.Is(id))
	assert.Equal(t, actor.RoleCourier, principal.Role())
}

func TestAuthenticator_ParseRejects(t *testing.T) {
	auth := httpin.NewAuthenticator(jwtSecret)
	id := kernel.NewUUID()

	expired, err := auth.Issue(id, actor.RoleManager, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	foreign, err := httpin.NewAuthenticator("another-secret-0123456789").Issue(id, actor.RoleManager, time.Now(), time.Hour)
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, key any, claims httpin.Claims) string {
		raw, signErr := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, signErr)
		return raw
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: expired},
		{name: "wrong secret", token: foreign},
		{
			name: "HS512 instead of HS256",
			token: sign(jwt.SigningMethodHS512, []byte(jwtSecret), httpin.Claims{
				Role:             string(actor.RoleManager),
				RegisteredClaims: jwt.RegisteredClaims{Subject: id.String()},
			}),
		},
		{
			name: "unknown role",
			token: sign(jwt.SigningMethodHS256, []byte(jwtSecret), httpin.Claims{
				Role:             "SUPERUSER",
				RegisteredClaims: jwt.RegisteredClaims{Subject: id.String()},
			}),
		},
		{
			name: "subject is not an id",
			token: sign(jwt.SigningMethodHS256, []byte(jwtSecret), httpin.Claims{
				Role:             string(actor.RoleManager),
				RegisteredClaims: jwt.RegisteredClaims{Subject: "manager"},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := auth.Parse(tt.token)
			require.Error(t, err)
			assert.False(t, principal.IsAuthenticated())
		})
	}
}

func TestAuthenticator_Middleware(t *testing.T) {
	auth := httpin.NewAuthenticator(jwtSecret)
	id := kernel.NewUUID()
	token, err := auth.Issue(id, actor.RoleSender, time.Now(), 0)
	require.NoError(t, err)

	e := echo.New()
	var seen actor.Principal
	handler := auth.Middleware()(func(c echo.Context) error {
		seen = httpin.PrincipalFrom(c)
		return c.NoContent(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		err    int
	}{
		{name: "no header", header: "", err: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic Zm9vOmJhcg==", err: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", err: http.StatusUnauthorized},
		{name: "invalid bearer", header: "Bearer abc.def.ghi", err: http.StatusUnauthorized},
		{name: "valid bearer", header: "Bearer " + token},
		{name: "lower-case scheme", header: "bearer " + token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = actor.Anonymous()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			err := handler(c)
			if tt.err != 0 {
				assert.Equal(t, tt.err, httpin.StatusCode(err))
				assert.False(t, seen.IsAuthenticated())
				return
			}
			require.NoError(t, err)
			assert.True(t, seen.Is(id))
			assert.Equal(t, actor.RoleSender, seen.Role())
		})
	}
}

func TestPrincipalFrom_WithoutMiddlewareIsAnonymous(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.False(t, httpin.PrincipalFrom(c).IsAuthenticated())
}
