package http

import (
	_ "embed"
	"fmt"
	"net/http"

	"smartlogi/internal/core/domain/model/actor"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

//go:embed rbac_model.conf
var rbacModelText string

type routeRule struct {
	method string
	path   string
	roles  []actor.Role
}

var allRoles = actor.Roles()

// routeRules says which roles may call which route. Parcel-level checks happen in
// the handlers.
var routeRules = []routeRule{
	{http.MethodPost, "/parcels", []actor.Role{actor.RoleSender, actor.RoleManager, actor.RoleAdministrator}},
	{http.MethodGet, "/parcels", []actor.Role{actor.RoleManager, actor.RoleAdministrator}},
	{http.MethodGet, "/parcels/:id", allRoles},
	{http.MethodPut, "/parcels/:id", []actor.Role{actor.RoleAdministrator}},
	{http.MethodDelete, "/parcels/:id", []actor.Role{actor.RoleAdministrator}},
	{http.MethodPatch, "/parcels/:id/status", []actor.Role{actor.RoleManager, actor.RoleCourier}},
	{http.MethodPatch, "/parcels/:id/courier/:courierId", []actor.Role{actor.RoleManager, actor.RoleAdministrator}},
	{http.MethodPatch, "/parcels/:id/zone/:zoneId", []actor.Role{actor.RoleManager, actor.RoleAdministrator}},
	{http.MethodGet, "/parcels/:id/history", allRoles},
	{http.MethodPost, "/actors", []actor.Role{actor.RoleAdministrator}},
	{http.MethodPost, "/products", []actor.Role{actor.RoleAdministrator}},
	{http.MethodPost, "/zones", []actor.Role{actor.RoleAdministrator}},
}

// RoutePolicy is a casbin enforcer loaded with routeRules.
type RoutePolicy struct {
	enforcer *casbin.Enforcer
	log      *zap.Logger
}

func NewRoutePolicy(log *zap.Logger) (*RoutePolicy, error) {
	m, err := model.NewModelFromString(rbacModelText)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	rules := make([][]string, 0, len(routeRules)*len(allRoles))
	for _, rule := range routeRules {
		for _, role := range rule.roles {
			rules = append(rules, []string{string(role), rule.path, rule.method})
		}
	}
	if _, err = enforcer.AddPolicies(rules); err != nil {
		return nil, fmt.Errorf("add route policies: %w", err)
	}

	return &RoutePolicy{enforcer: enforcer, log: log.Named("rbac")}, nil
}

// Allowed reports whether role may call method on path.
func (p *RoutePolicy) Allowed(role actor.Role, path, method string) (bool, error) {
	return p.enforcer.Enforce(string(role), path, method)
}

// Middleware must run after the auth middleware.
func (p *RoutePolicy) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFrom(c)
			if !principal.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			ok, err := p.Allowed(principal.Role(), c.Request().URL.Path, c.Request().Method)
			if err != nil {
				return err
			}
			if !ok {
				p.log.Debug("route denied",
					zap.String("role", string(principal.Role())),
					zap.String("method", c.Request().Method),
					zap.String("path", c.Request().URL.Path),
				)
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}
