package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/coreledger/banking-api/internal/api/metrics"
	"github.com/coreledger/banking-api/internal/core/auth"
)

// RBAC enforces the route's role requirement against the claim roles the
// Auth middleware injected. Routes without a requirement are wired without
// this middleware, so reaching it with no roles in context means the token
// never validated.
func RBAC(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claimRoles, _ := c.Get(ContextRoles).([]string)
			if err := auth.Authorize(claimRoles, requiredRoles...); err != nil {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				return err
			}
			return next(c)
		}
	}
}
