package server

import (
	"context"
	"ctchen222/tictactoe-engine/internal/api/controller"
	"ctchen222/tictactoe-engine/internal/engine"
	"ctchen222/tictactoe-engine/internal/validator"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("server")

// Service is everything the transports need from the engine.
type Service interface {
	controller.GameService
	Execute(ctx context.Context, req engine.Request) (any, error)
}

// Options configures the HTTP surface.
type Options struct {
	AllowedOrigins []string
}

type Server struct {
	router   *gin.Engine
	service  Service
	upgrader websocket.Upgrader
}

func NewServer(svc Service, opts Options) (*Server, error) {
	if err := validator.RegisterGin(); err != nil {
		return nil, err
	}

	s := &Server{
		router:  gin.New(),
		service: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(opts.AllowedOrigins, origin)
			},
		},
	}

	s.router.Use(gin.Recovery(), requestID())
	if len(opts.AllowedOrigins) > 0 {
		s.router.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type", requestIDHeader},
			MaxAge:       12 * time.Hour,
		}))
	}

	s.RegisterHandlers()
	return s, nil
}

func (s *Server) RegisterHandlers() {
	gc := controller.NewGameController(s.service)

	s.router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running!")
	})

	api := s.router.Group("/api")
	api.POST("/new-game", gc.NewGame)
	api.POST("/make-move", gc.MakeMove)
	api.POST("/computer-move", gc.ComputerMove)
	api.POST("/check-game", gc.CheckGame)

	s.router.GET("/ws", s.handleWebSocket)
}

// Handler returns the router wrapped with OpenTelemetry HTTP instrumentation.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.router, "tictactoe")
}
