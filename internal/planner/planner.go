// Package planner handles the daily routine planner tool.
package planner

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// Fixed reference content returned for every valid submission. Placeholder
// until real planning logic lands; the handler stays the hand-off point.
var (
	SuggestedRoutines = []string{
		"Morning routine at 7:30 AM",
		"Homework time at 5:00 PM",
		"Family dinner at 7:00 PM",
	}

	Tips = []string{
		"Encourage regular sleep schedule.",
		"Discuss daily highlights at dinner.",
	}
)

// SubmitHandler validates the planner form and echoes it back alongside the
// fixed routine and tip lists. No external call, no side effects.
func SubmitHandler(c echo.Context) error {
	childAge, err := strconv.Atoi(strings.TrimSpace(c.FormValue("child_age")))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "child_age must be an integer")
	}

	schoolSchedule := c.FormValue("school_schedule")
	familyGoals := c.FormValue("family_goals")
	if schoolSchedule == "" || familyGoals == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "school_schedule and family_goals are required")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"planner": map[string]any{
			"child_age":          childAge,
			"school_schedule":    schoolSchedule,
			"family_goals":       familyGoals,
			"special_needs":      c.FormValue("special_needs"),
			"suggested_routines": SuggestedRoutines,
			"tips":               Tips,
		},
	})
}
