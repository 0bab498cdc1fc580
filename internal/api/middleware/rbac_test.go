package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

func invokeRBAC(t *testing.T, role domain.Role, allowList []domain.Role) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(CtxRole, role)
	}

	mw := RequireRoles(allowList...)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestRequireRoles_AllowListMatrix(t *testing.T) {
	// Access is granted iff the role is in the allow-list, for every
	// combination of role and declared list.
	roles := []domain.Role{domain.RoleAdmin, domain.RoleStudent, domain.RoleAlumni}
	allowLists := [][]domain.Role{
		{domain.RoleAdmin},
		{domain.RoleAdmin, domain.RoleAlumni},
		{domain.RoleStudent},
		domain.AnyRole,
	}

	for _, role := range roles {
		for _, list := range allowLists {
			allowed := false
			for _, r := range list {
				if r == role {
					allowed = true
				}
			}

			got := invokeRBAC(t, role, list)
			want := http.StatusForbidden
			if allowed {
				want = http.StatusOK
			}
			if got != want {
				t.Fatalf("role %s against %v: expected %d, got %d", role, list, want, got)
			}
		}
	}
}

func TestRequireRoles_AnyRoleAdmitsAllRoles(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleStudent, domain.RoleAlumni} {
		if got := invokeRBAC(t, role, domain.AnyRole); got != http.StatusOK {
			t.Fatalf("expected 200 for %s under AnyRole, got %d", role, got)
		}
	}
}

func TestRequireRoles_MissingRoleIsUnauthenticated(t *testing.T) {
	// No resolved role means the auth middleware never ran: 401, not 403.
	if got := invokeRBAC(t, "", domain.AnyRole); got != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}
}

func TestRequireRoles_UnknownRoleForbidden(t *testing.T) {
	if got := invokeRBAC(t, domain.Role("guest"), []domain.Role{domain.RoleAdmin}); got != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", got)
	}
}
