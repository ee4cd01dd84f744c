/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the route
handlers to their dependencies. The support service and OpenAI client are
constructed here once and injected; nothing holds mutable global state.
*/
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/grindmodeon2025-byte/AI-Parenting-Assistant-Suite/internal/config"
	"github.com/grindmodeon2025-byte/AI-Parenting-Assistant-Suite/internal/openaiservice"
	"github.com/grindmodeon2025-byte/AI-Parenting-Assistant-Suite/internal/support"
)

// Server holds the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// openai is the shared chat-completions client; may be unconfigured.
	openai *openaiservice.Client

	// support exposes the emotions tool handlers.
	support *support.Handler
}

// New initializes the application and returns a configured *http.Server
// with production-ready network timeouts.
func New(cfg config.Config) *http.Server {
	client := openaiservice.New(cfg.OpenAIKey)

	app := &Server{
		port:    cfg.Port,
		openai:  client,
		support: support.NewHandler(support.NewService(client)),
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", app.port),
		Handler:      app.RegisterRoutes(), // Injected from routes.go
		IdleTimeout:  time.Minute,          // Time to wait for the next request on keep-alive connections.
		ReadTimeout:  10 * time.Second,     // Maximum duration for reading the entire request.
		WriteTimeout: 30 * time.Second,     // Covers the awaited outbound OpenAI call.
	}
}
