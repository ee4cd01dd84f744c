package support

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grindmodeon2025-byte/AI-Parenting-Assistant-Suite/internal/openaiservice"
)

// Handler exposes the support service over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// rawOutputField carries the unparsed model text when the fallback was used.
// It is returned to the client on purpose: the field only appears once
// parsing has already failed, and it is the only way to see what the model
// actually said.
const rawOutputField = "_rawModelOutput"

// SubmitForm handles the classic form post from the emotions page.
// Response shape: {"emotions": {user_type, mood, notes, "support": {...}}}.
func (h *Handler) SubmitForm(c echo.Context) error {
	userType := c.FormValue("user_type")
	mood := c.FormValue("mood")
	if userType == "" || mood == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "user_type and mood are required")
	}

	entry := Entry{
		UserType: userType,
		Mood:     mood,
		Notes:    c.FormValue("notes"),
	}

	out, err := h.svc.GenerateSupport(c.Request().Context(), entry, formMaxTokens)
	if err != nil {
		return mapGenerateError(err)
	}

	emotions := map[string]any{
		"user_type": entry.UserType,
		"mood":      entry.Mood,
		"notes":     entry.Notes,
		"support":   out.Support,
	}
	if out.Raw != "" {
		emotions[rawOutputField] = out.Raw
	}

	return c.JSON(http.StatusOK, map[string]any{"emotions": emotions})
}

type generateRequest struct {
	Entry *Entry `json:"entry"`
}

// GenerateFromEntry handles the JSON API variant. The body must contain an
// "entry" object; the response is the bare support result.
func (h *Handler) GenerateFromEntry(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	if req.Entry == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must contain an 'entry' object")
	}

	out, err := h.svc.GenerateSupport(c.Request().Context(), *req.Entry, entryMaxTokens)
	if err != nil {
		return mapGenerateError(err)
	}

	result := out.Support
	if out.Raw != "" {
		result[rawOutputField] = out.Raw
	}

	return c.JSON(http.StatusOK, result)
}

// mapGenerateError translates service errors onto the status taxonomy:
// missing credential is the operator's problem (500), anything else came
// back from OpenAI and is reported as a gateway failure (502), untouched
// and unretried.
func mapGenerateError(err error) error {
	if errors.Is(err, openaiservice.ErrNotConfigured) {
		return echo.NewHTTPError(http.StatusInternalServerError, openaiservice.ErrNotConfigured.Error())
	}
	return echo.NewHTTPError(http.StatusBadGateway, fmt.Sprintf("OpenAI request failed: %v", err))
}
