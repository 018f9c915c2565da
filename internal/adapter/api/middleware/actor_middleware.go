package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/usecase"
)

// ActorMiddleware resolves the authenticated uid to its registered actor so
// handlers can read the tier without another lookup. Runs after
// AuthMiddleware.Authenticate.
type ActorMiddleware struct {
	hierarchy *usecase.HierarchyUseCase
}

func NewActorMiddleware(hierarchy *usecase.HierarchyUseCase) *ActorMiddleware {
	return &ActorMiddleware{
		hierarchy: hierarchy,
	}
}

func (m *ActorMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok || uid == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		actor, err := m.hierarchy.GetActor(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Account is not registered")
		}

		c.Set("actor", actor)
		return next(c)
	}
}

// RequireTier gates a route group to the given tiers. Must run after Load.
func (m *ActorMiddleware) RequireTier(tiers ...entity.Tier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get("actor").(*entity.Actor)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Account is not registered")
			}
			for _, tier := range tiers {
				if actor.Tier == tier {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions for this operation")
		}
	}
}
