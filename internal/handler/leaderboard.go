package handler

import (
	"errors"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meal-battle-arena/internal/repository"
)

// LeaderboardHandler serves the ranking of battle-tested meals.
type LeaderboardHandler struct {
	Meals *repository.MealRepo
}

// NewLeaderboardHandler constructs a LeaderboardHandler and panics if
// the repository is nil.
func NewLeaderboardHandler(meals *repository.MealRepo) *LeaderboardHandler {
	if meals == nil {
		panic("nil repository passed to NewLeaderboardHandler")
	}
	return &LeaderboardHandler{Meals: meals}
}

// Get handles GET /v1/leaderboard. The optional sort_by query parameter
// accepts "wins" (the default) or "win_pct". The repository keeps the
// exact win ratio; it is scaled to a percentage with one decimal place
// only here at the edge.
func (h *LeaderboardHandler) Get(c echo.Context) error {
	sortBy := repository.LeaderboardSort(c.QueryParam("sort_by"))
	if sortBy == "" {
		sortBy = repository.SortByWins
	}

	entries, err := h.Meals.Leaderboard(c.Request().Context(), sortBy)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSortKey) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	for i := range entries {
		entries[i].WinPct = math.Round(entries[i].WinPct*1000) / 10
	}
	return c.JSON(http.StatusOK, echo.Map{"leaderboard": entries})
}
