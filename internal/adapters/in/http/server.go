// Package http exposes the application use cases over a REST-ish API.
// Handlers translate between JSON payloads and commands/queries; domain
// errors map onto HTTP statuses with machine-readable codes.
package http

import (
	"net/http"

	"pigeonpost/internal/core/application/usecases/commands"
	"pigeonpost/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the API serves.
type Handlers struct {
	CreateCarrier commands.CreateCarrierCommandHandler
	EditCarrier   commands.EditCarrierCommandHandler
	RetireCarrier commands.RetireCarrierCommandHandler
	DeleteCarrier commands.DeleteCarrierCommandHandler

	CreateClient commands.CreateClientCommandHandler
	EditClient   commands.EditClientCommandHandler
	DeleteClient commands.DeleteClientCommandHandler

	CreateLetter       commands.CreateLetterCommandHandler
	ChangeLetterStatus commands.ChangeLetterStatusCommandHandler
	EditLetterMessage  commands.EditLetterMessageCommandHandler
	DeleteLetter       commands.DeleteLetterCommandHandler

	GetLetters       queries.GetLettersQueryHandler
	GetLetter        queries.GetLetterQueryHandler
	GetCarriers      queries.GetCarriersQueryHandler
	GetCarrier       queries.GetCarrierQueryHandler
	GetClients       queries.GetClientsQueryHandler
	GetClient        queries.GetClientQueryHandler
	GetClientLetters queries.GetClientLettersQueryHandler
	GetStatistics    queries.GetStatisticsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers   Handlers
	uploadsDir string
}

// NewServer creates an HTTP server over the given use case handlers.
// Carrier photos are stored under uploadsDir and served from /uploads.
func NewServer(handlers Handlers, uploadsDir string) *Server {
	return &Server{
		handlers:   handlers,
		uploadsDir: uploadsDir,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.Static("/uploads", s.uploadsDir)

	v1 := e.Group("/api/v1")

	letters := v1.Group("/letters")
	letters.GET("", s.GetLetters)
	letters.POST("", s.CreateLetter)
	letters.GET("/statistics", s.GetStatistics)
	letters.GET("/overdue", s.GetOverdueLetters)
	letters.GET("/:id", s.GetLetter)
	letters.PUT("/:id/status", s.ChangeLetterStatus)
	letters.PATCH("/:id/message", s.EditLetterMessage)
	letters.DELETE("/:id", s.DeleteLetter)

	carriers := v1.Group("/carriers")
	carriers.GET("", s.GetCarriers)
	carriers.POST("", s.CreateCarrier)
	carriers.GET("/available", s.GetAvailableCarriers)
	carriers.GET("/:id", s.GetCarrier)
	carriers.PUT("/:id", s.EditCarrier)
	carriers.PATCH("/:id/retire", s.RetireCarrier)
	carriers.DELETE("/:id", s.DeleteCarrier)

	clients := v1.Group("/clients")
	clients.GET("", s.GetClients)
	clients.POST("", s.CreateClient)
	clients.GET("/:id", s.GetClient)
	clients.GET("/:id/letters", s.GetClientLetters)
	clients.PUT("/:id", s.EditClient)
	clients.DELETE("/:id", s.DeleteClient)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
