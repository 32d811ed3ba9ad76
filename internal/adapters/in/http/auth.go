package http

import (
	"strings"

	"bookstore/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

// requireSession resolves the bearer token of the request into an active
// session before the handler runs. The token is the only credential; no
// operator identity is kept between requests.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		query, err := queries.NewGetActiveSessionQuery(bearerToken(c))
		if err != nil {
			return s.respondError(c, err)
		}

		session, err := s.handlers.ActiveSession.Handle(c.Request().Context(), query)
		if err != nil {
			return s.respondError(c, err)
		}

		c.Set(sessionContextKey, session)
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return token
}

func currentSession(c echo.Context) (queries.ActiveSession, bool) {
	session, ok := c.Get(sessionContextKey).(queries.ActiveSession)
	return session, ok
}
