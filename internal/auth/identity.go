package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"askhub/internal/errors"
	"askhub/internal/model"
)

const viewerContextKey = "viewer"

// OptionalIdentity resolves the viewer from a bearer token when one is
// present and valid, and treats everything else as anonymous. Read paths use
// this so unauthenticated requests still see public answers.
func OptionalIdentity(jwtService *JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if claims, err := jwtService.ValidateToken(token); err == nil {
					c.Set(viewerContextKey, claims.Viewer())
				}
			}
			return next(c)
		}
	}
}

// ViewerFromContext returns the resolved viewer, or nil for anonymous requests.
// It understands both OptionalIdentity and the echo-jwt middleware.
func ViewerFromContext(c echo.Context) *model.Viewer {
	if viewer, ok := c.Get(viewerContextKey).(*model.Viewer); ok {
		return viewer
	}
	if token, ok := c.Get("user").(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return claims.Viewer()
		}
	}
	return nil
}

// RequireViewer returns the resolved viewer or ErrUnauthenticated.
func RequireViewer(c echo.Context) (*model.Viewer, error) {
	viewer := ViewerFromContext(c)
	if viewer == nil {
		return nil, errors.ErrUnauthenticated
	}
	return viewer, nil
}
