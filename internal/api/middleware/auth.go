package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/alumnihub/job-referral-api/internal/api/metrics"
	"github.com/alumnihub/job-referral-api/internal/core/domain"
	"github.com/alumnihub/job-referral-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUser   = "user"
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth extracts the bearer token, resolves it to an identity, and injects it
// into the request context. Every failure — missing header, malformed token,
// expired token, unknown identity — surfaces as the same 401 so callers
// cannot probe which one occurred; the log keeps them apart.
func Auth(verifier ports.TokenVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			user, err := verifier.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				reason := "unknown_identity"
				switch {
				case errors.Is(err, domain.ErrTokenExpired):
					reason = "token_expired"
				case errors.Is(err, domain.ErrTokenMalformed):
					reason = "token_malformed"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				log.Debug().Str("reason", reason).Str("path", c.Path()).Msg("authentication rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			c.Set(CtxUser, user)
			c.Set(CtxUserID, user.ID)
			c.Set(CtxEmail, user.Email)
			c.Set(CtxRole, user.Role)

			return next(c)
		}
	}
}

// CurrentUser returns the identity injected by Auth, or nil when the route
// is not behind the middleware.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(CtxUser).(*domain.User)
	return user
}
