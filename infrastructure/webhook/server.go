package webhook

import (
	"context"
	"log/slog"
	"net/http"

	"relay-desk/contract"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is the receiving side of the transport boundary: the chat gateway
// pushes normalized events here and the dispatcher decides what to persist
// and whom to notify.
type Server struct {
	echo     *echo.Echo
	log      *slog.Logger
	handler  contract.EventHandler
	validate *validator.Validate
}

type eventRequest struct {
	SenderID    int64  `json:"sender_id" validate:"required"`
	DisplayName string `json:"display_name"`
	Handle      string `json:"handle"`
	Text        string `json:"text"`
	Media       bool   `json:"media"`
	Selection   *int64 `json:"selection"`
}

func NewServer(log *slog.Logger, handler contract.EventHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		log:      log,
		handler:  handler,
		validate: validator.New(),
	}
	e.POST("/v1/events", s.postEvent)
	e.GET("/health", s.health)
	return s
}

func (s *Server) postEvent(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := s.validate.Struct(req); err != nil {
		s.log.Debug("Rejecting malformed event", "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	event := contract.InboundEvent{
		SenderID:    req.SenderID,
		DisplayName: req.DisplayName,
		Handle:      req.Handle,
		Text:        req.Text,
		Media:       req.Media,
		Selection:   req.Selection,
	}
	if err := s.handler.HandleEvent(c.Request().Context(), event); err != nil {
		s.log.Error("Event handling failed", "sender_id", req.SenderID, "error", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "event could not be processed"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
