package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

// RequireRoles enforces the operation's role allow-list. Authentication must
// already have run; a request with no resolved role is treated as
// unauthenticated, a resolved role outside the allow-list as forbidden.
// Routes that accept every authenticated user pass domain.AnyRole explicitly
// rather than omitting the check.
func RequireRoles(allowList ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowList))
	for _, r := range allowList {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(domain.Role)
			if !ok || role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
