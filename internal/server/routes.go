package server

import (
	"io"
	"net/http"
	"text/template"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/grindmodeon2025-byte/AI-Parenting-Assistant-Suite/internal/meals"
	"github.com/grindmodeon2025-byte/AI-Parenting-Assistant-Suite/internal/planner"
)

// TemplateRenderer is a custom html/template renderer for Echo framework
type TemplateRenderer struct {
	templates *template.Template
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	// Use ExecuteTemplate to select the correct template by name
	return t.templates.ExecuteTemplate(w, name, data)
}

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.Use(RequestIDMiddleware)

	e.Static("/static", "web/public")

	renderer := &TemplateRenderer{
		templates: template.Must(template.ParseGlob("web/templates/*.html")),
	}
	e.Renderer = renderer

	// Tool pages
	e.GET("/", s.renderHomeHandler)
	e.GET("/planner", s.renderPlannerFormHandler)
	e.GET("/meals", s.renderMealsFormHandler)
	e.GET("/emotions", s.renderEmotionsFormHandler)

	e.GET("/health", s.healthHandler)

	// Tool endpoints
	e.POST("/planner", planner.SubmitHandler)
	e.POST("/meals", meals.SubmitHandler)
	e.POST("/emotions", s.support.SubmitForm)
	e.POST("/api/generate-support", s.support.GenerateFromEntry)

	return e
}

// healthHandler reports liveness plus whether the OpenAI client holds a
// credential, so operators can tell "misconfigured" from "up".
func (s *Server) healthHandler(c echo.Context) error {
	status := map[string]string{
		"status": "ok",
		"openai": "configured",
	}
	if !s.openai.Configured() {
		status["openai"] = "not configured"
	}
	return c.JSON(http.StatusOK, status)
}

// RequestIDMiddleware stamps every request with an X-Request-ID (honoring a
// caller-supplied one) and stores a scoped logger in the echo context.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()

		c.Set("logger", &logger)

		return next(c)
	}
}

/* ====================================================================
                          Tool page handlers
==================================================================== */

// renderHomeHandler serves the landing page linking the three tools.
func (s *Server) renderHomeHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", nil)
}

func (s *Server) renderPlannerFormHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "planner_form.html", nil)
}

func (s *Server) renderMealsFormHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "meals_form.html", nil)
}

func (s *Server) renderEmotionsFormHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "emotions_form.html", nil)
}
