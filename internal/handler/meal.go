package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meal-battle-arena/internal/model"
	"github.com/iliyamo/meal-battle-arena/internal/repository"
)

// MealHandler bundles the repository needed by the meal CRUD endpoints.
type MealHandler struct {
	Meals *repository.MealRepo
}

// NewMealHandler constructs a MealHandler and panics if the repository
// is nil. Failing fast here surfaces wiring mistakes at startup.
func NewMealHandler(meals *repository.MealRepo) *MealHandler {
	if meals == nil {
		panic("nil repository passed to NewMealHandler")
	}
	return &MealHandler{Meals: meals}
}

// mealResponse is a stored meal as exposed by the API. The soft-delete
// flag never leaves the server; deleted meals simply 404.
type mealResponse struct {
	ID         uint64           `json:"id"`
	Name       string           `json:"meal"`
	Cuisine    string           `json:"cuisine"`
	Price      float64          `json:"price"`
	Difficulty model.Difficulty `json:"difficulty"`
	Battles    uint64           `json:"battles"`
	Wins       uint64           `json:"wins"`
}

func newMealResponse(m *model.Meal) mealResponse {
	return mealResponse{
		ID:         m.ID,
		Name:       m.Name,
		Cuisine:    m.Cuisine,
		Price:      m.Price,
		Difficulty: m.Difficulty,
		Battles:    m.Battles,
		Wins:       m.Wins,
	}
}

// Create handles POST /v1/meals. It validates the payload, stores the
// meal and returns the created row with its assigned id.
func (h *MealHandler) Create(c echo.Context) error {
	var body struct {
		Meal       string  `json:"meal"`
		Cuisine    string  `json:"cuisine"`
		Price      float64 `json:"price"`
		Difficulty string  `json:"difficulty"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	name := strings.TrimSpace(body.Meal)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "meal name is required"})
	}
	difficulty, err := model.ParseDifficulty(body.Difficulty)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	m := &model.Meal{
		Name:       name,
		Cuisine:    strings.TrimSpace(body.Cuisine),
		Price:      body.Price,
		Difficulty: difficulty,
	}
	if err := h.Meals.Create(c.Request().Context(), m); err != nil {
		switch {
		case errors.Is(err, repository.ErrMealExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "meal name already exists"})
		case errors.Is(err, model.ErrInvalidPrice),
			errors.Is(err, model.ErrInvalidDifficulty),
			errors.Is(err, model.ErrEmptyName):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create meal"})
	}
	return c.JSON(http.StatusCreated, newMealResponse(m))
}

// GetByID handles GET /v1/meals/:id.
func (h *MealHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid meal id"})
	}

	m, err := h.Meals.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "meal not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, newMealResponse(m))
}

// GetByName handles GET /v1/meals/by-name/:name. The path segment is
// unescaped so names with spaces resolve.
func (h *MealHandler) GetByName(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil || strings.TrimSpace(name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "meal name is required"})
	}

	m, err := h.Meals.GetByName(c.Request().Context(), strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "meal not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, newMealResponse(m))
}

// Delete handles DELETE /v1/meals/:id. The row is soft deleted, so a
// second delete of the same id reports 404.
func (h *MealHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid meal id"})
	}

	if err := h.Meals.SoftDelete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "meal not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete meal"})
	}
	return c.NoContent(http.StatusNoContent)
}
