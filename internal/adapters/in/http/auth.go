package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const viewerKey = "viewer"

// UserLookup finds accounts by username for authentication.
type UserLookup interface {
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}

// BasicAuth authenticates requests with HTTP Basic credentials checked against
// the stored bcrypt hashes. The authenticated user is available through
// ViewerFrom. Requests matched by skipper pass through unauthenticated.
func BasicAuth(users UserLookup, skipper middleware.Skipper) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: skipper,
		Realm:   "fooddelivery",
		Validator: func(username, password string, ctx echo.Context) (bool, error) {
			u, err := users.GetByUsername(ctx.Request().Context(), username)
			switch {
			case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrValueIsRequired):
				return false, nil
			case err != nil:
				return false, fmt.Errorf("failed to look up user: %w", err)
			}

			if !u.CheckPassword(password) {
				return false, nil
			}

			ctx.Set(viewerKey, queries.Viewer{UserID: u.ID(), IsStaff: u.IsStaff()})
			return true, nil
		},
	})
}

// APISkipper lets everything outside the REST API through, plus public
// registration.
func APISkipper(ctx echo.Context) bool {
	req := ctx.Request()
	if !strings.HasPrefix(req.URL.Path, "/api/") {
		return true
	}
	return req.Method == http.MethodPost && strings.TrimSuffix(req.URL.Path, "/") == "/api/v1/users"
}

// ViewerFrom returns the user authenticated by BasicAuth.
func ViewerFrom(ctx echo.Context) (queries.Viewer, bool) {
	viewer, ok := ctx.Get(viewerKey).(queries.Viewer)
	return viewer, ok
}

func viewer(ctx echo.Context) (queries.Viewer, error) {
	v, ok := ViewerFrom(ctx)
	if !ok {
		return queries.Viewer{}, errs.NewAccessDeniedError("anonymous access")
	}
	return v, nil
}

func requireStaff(ctx echo.Context, action string) (queries.Viewer, error) {
	v, err := viewer(ctx)
	if err != nil {
		return v, err
	}
	if !v.IsStaff {
		return v, errs.NewAccessDeniedErrorWithCause(action, errors.New("staff only"))
	}
	return v, nil
}
