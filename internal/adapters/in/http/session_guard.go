package http

import (
	"net/http"

	"courier/internal/core/domain/model/session"
	"courier/internal/core/ports"
	"courier/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// sessionContextKey is the echo context key the guard stores the session
// under.
const sessionContextKey = "courier.session"

// Skipper decides whether the session guard should let a request through
// without checking the session.
type Skipper func(ctx echo.Context) bool

// SessionGuard returns middleware that admits only logged-in requests.
// The session is loaded fresh from the store on every request; any load
// failure, including malformed persisted state, is treated as "not logged
// in" and answered with 401 before the handler runs. On success the session
// is placed in the request context for handlers to read.
func SessionGuard(sessionStore ports.SessionStore, skipper Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if skipper != nil && skipper(ctx) {
				return next(ctx)
			}

			sess, err := sessionStore.Load(ctx.Request().Context())
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Not logged in",
				})
			}

			ctx.Set(sessionContextKey, sess)
			return next(ctx)
		}
	}
}

// SessionFromContext returns the session the guard stored for this request.
// The second return value is false when the request did not pass the guard.
func SessionFromContext(ctx echo.Context) (session.Session, bool) {
	sess, ok := ctx.Get(sessionContextKey).(session.Session)
	return sess, ok
}
