package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meal-battle-arena/internal/battle"
	"github.com/iliyamo/meal-battle-arena/internal/model"
	"github.com/iliyamo/meal-battle-arena/internal/queue"
	"github.com/iliyamo/meal-battle-arena/internal/random"
	"github.com/iliyamo/meal-battle-arena/internal/repository"
)

// EventPublisher delivers battle events to the message broker. A nil
// publisher disables event delivery, which tests use to run without a
// broker.
type EventPublisher func(ctx context.Context, ev queue.BattleCompletedEvent) error

// BattleHandler drives the arena: staging combatants by name, listing
// and clearing them, and resolving battles.
type BattleHandler struct {
	Arena   *battle.Arena
	Meals   *repository.MealRepo
	Publish EventPublisher
}

// NewBattleHandler constructs a BattleHandler. The publisher may be
// nil; the arena and repository must not be.
func NewBattleHandler(arena *battle.Arena, meals *repository.MealRepo, publish EventPublisher) *BattleHandler {
	if arena == nil || meals == nil {
		panic("nil dependency passed to NewBattleHandler")
	}
	return &BattleHandler{Arena: arena, Meals: meals, Publish: publish}
}

// combatantResponse is a staged meal as exposed by the battle API.
// Counters are omitted: the arena works off a snapshot and the store
// keeps the authoritative numbers.
type combatantResponse struct {
	ID         uint64           `json:"id"`
	Name       string           `json:"meal"`
	Cuisine    string           `json:"cuisine"`
	Price      float64          `json:"price"`
	Difficulty model.Difficulty `json:"difficulty"`
}

func newCombatantList(meals []model.Meal) []combatantResponse {
	out := make([]combatantResponse, 0, len(meals))
	for _, m := range meals {
		out = append(out, combatantResponse{
			ID:         m.ID,
			Name:       m.Name,
			Cuisine:    m.Cuisine,
			Price:      m.Price,
			Difficulty: m.Difficulty,
		})
	}
	return out
}

// Prep handles POST /v1/battle/combatants. The body names an existing
// meal, which is loaded from the store and staged for the next battle.
func (h *BattleHandler) Prep(c echo.Context) error {
	var body struct {
		Meal string `json:"meal"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Meal)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "meal name is required"})
	}

	m, err := h.Meals.GetByName(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "meal not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if err := h.Arena.Prep(*m); err != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "combatant list is full"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"combatants": newCombatantList(h.Arena.Combatants())})
}

// Combatants handles GET /v1/battle/combatants.
func (h *BattleHandler) Combatants(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"combatants": newCombatantList(h.Arena.Combatants())})
}

// Clear handles DELETE /v1/battle/combatants. Clearing an empty arena
// succeeds as well.
func (h *BattleHandler) Clear(c echo.Context) error {
	h.Arena.Clear()
	return c.NoContent(http.StatusNoContent)
}

// Fight handles POST /v1/battle. On success it returns the winner's
// name and publishes a battle.completed event. Publish failures are
// logged and never fail the request: the battle already happened.
func (h *BattleHandler) Fight(c echo.Context) error {
	staged := h.Arena.Combatants()

	winnerName, err := h.Arena.Fight(c.Request().Context())
	if err != nil {
		switch {
		case errors.Is(err, battle.ErrNotEnoughCombatants):
			return c.JSON(http.StatusConflict, echo.Map{"error": "two combatants must be prepped"})
		case errors.Is(err, repository.ErrMealNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "combatant no longer exists"})
		case errors.Is(err, random.ErrUnavailable), errors.Is(err, random.ErrInvalidResponse):
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "random source unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "battle failed"})
	}

	h.publishResult(c.Request().Context(), staged, winnerName)
	return c.JSON(http.StatusOK, echo.Map{"winner": winnerName})
}

// publishResult builds the battle.completed event from the combatants
// staged before the fight and hands it to the publisher, if one is
// configured.
func (h *BattleHandler) publishResult(ctx context.Context, staged []model.Meal, winnerName string) {
	if h.Publish == nil || len(staged) != 2 {
		return
	}

	winner, loser := staged[0], staged[1]
	if loser.Name == winnerName {
		winner, loser = loser, winner
	}
	winnerScore, _ := battle.Score(winner)
	loserScore, _ := battle.Score(loser)

	ev := queue.BattleCompletedEvent{
		EventID:     uuid.NewString(),
		WinnerID:    winner.ID,
		WinnerName:  winner.Name,
		WinnerScore: winnerScore,
		LoserID:     loser.ID,
		LoserName:   loser.Name,
		LoserScore:  loserScore,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.Publish(ctx, ev); err != nil {
		log.Printf("battle-events: publish failed: %v", err)
	}
}
