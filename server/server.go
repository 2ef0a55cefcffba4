package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"diet-server/cache"
	"diet-server/confs"
	"diet-server/db"
	"diet-server/handlers"
	httpHandler "diet-server/handlers/http"
	"diet-server/logging"
	"diet-server/repositories"
	"diet-server/services"
	"diet-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	cfg *confs.Config
	db  db.Database
	log logging.Logger
}

func NewServer(cfg *confs.Config, database db.Database, log logging.Logger) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		app: gin.New(),
		cfg: cfg,
		db:  database,
		log: log,
	}
	s.routes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.app }

func (s *Server) routes() {
	s.app.Use(gin.Recovery(), handlers.RequestID(), handlers.AccessLog(s.log))

	// Setup CORS middleware
	config := cors.DefaultConfig()
	if len(s.cfg.CORSOrigins) == 0 || s.cfg.CORSOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.cfg.CORSOrigins
		config.AllowCredentials = true
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	s.app.Use(cors.New(config))

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	mealRepo := repositories.NewMealPgRepository(s.db)

	// The session table is owned by the provider and handed to the guard
	sessions := services.NewSessionProvider(userRepo, cache.NewSessionTable())
	cookie := handlers.SessionCookie{
		Name:   s.cfg.SessionCookieName,
		MaxAge: s.cfg.SessionMaxAge,
		Secure: !s.cfg.IsDevelopment(),
	}

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, sessions)
	mealUseCase := usecases.NewMealUseCase(mealRepo)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase, cookie, s.log)
	loginHandler := httpHandler.NewLoginHandler(userUseCase, cookie, s.log)
	mealHandler := httpHandler.NewMealHandler(mealUseCase, s.log)

	users := s.app.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.GET("", userHandler.ListUsers)
	}

	s.app.POST("/sessions", loginHandler.Login)

	meals := s.app.Group("/meals", handlers.RequireSession(sessions, cookie, s.log))
	{
		meals.POST("", mealHandler.CreateMeal)
		meals.GET("", mealHandler.ListMeals)
		meals.GET("/summary", mealHandler.GetSummary)
		meals.GET("/:id", mealHandler.GetMeal)
		meals.PUT("/:id", mealHandler.UpdateMeal)
		meals.DELETE("/:id", mealHandler.DeleteMeal)
	}
}

// Start serves until SIGINT/SIGTERM and then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              "0.0.0.0:" + s.cfg.Port,
		Handler:           s.app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("HTTP server running on port %s", s.cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Infof("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
