// Package meals handles the family meal planning tool.
package meals

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// MealIdea is one entry in the static meal plan.
type MealIdea struct {
	Name      string `json:"name"`
	Nutrition string `json:"nutrition"`
}

// Fixed reference content returned for every valid submission.
var (
	MealPlan = []MealIdea{
		{Name: "Veggie Pasta", Nutrition: "350 kcal"},
		{Name: "Grilled Chicken Salad", Nutrition: "400 kcal"},
	}

	GroceryList = []string{"Pasta", "Chicken breast", "Lettuce", "Tomato", "Olive oil"}
)

// SubmitHandler validates the meals form and echoes it back alongside the
// fixed meal plan and grocery list. No external call, no side effects.
func SubmitHandler(c echo.Context) error {
	budget, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("budget")), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "budget must be a number")
	}

	preferences := c.FormValue("family_preferences")
	restrictions := c.FormValue("dietary_restrictions")
	if preferences == "" || restrictions == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "family_preferences and dietary_restrictions are required")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"meals": map[string]any{
			"preferences":  preferences,
			"restrictions": restrictions,
			"budget":       budget,
			"meal_plan":    MealPlan,
			"grocery_list": GroceryList,
		},
	})
}
