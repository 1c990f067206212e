package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/meal-battle-arena/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that need no handler state on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler. This
	// endpoint can be used by load balancers or monitoring systems to
	// verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterMeals registers the meal catalogue and the leaderboard under
// /v1. The static /meals/by-name segment is registered alongside the
// :id parameter route; Echo matches static segments first, so the two
// never collide.
func RegisterMeals(e *echo.Echo, m *handler.MealHandler, l *handler.LeaderboardHandler) {
	g := e.Group("/v1")
	g.POST("/meals", m.Create)
	g.GET("/meals/by-name/:name", m.GetByName)
	g.GET("/meals/:id", m.GetByID)
	g.DELETE("/meals/:id", m.Delete)
	g.GET("/leaderboard", l.Get)
}

// RegisterBattle registers the arena endpoints under /v1/battle:
// staging, inspecting and clearing combatants, and starting a fight.
func RegisterBattle(e *echo.Echo, b *handler.BattleHandler) {
	g := e.Group("/v1/battle")
	g.POST("/combatants", b.Prep)
	g.GET("/combatants", b.Combatants)
	g.DELETE("/combatants", b.Clear)
	g.POST("", b.Fight)
}
