package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/guidewire/core-auth-examples/pkg/api/handlers"
	"github.com/guidewire/core-auth-examples/pkg/api/routers"
	"github.com/guidewire/core-auth-examples/pkg/utils"
	"github.com/guidewire/core-auth-examples/pkg/views"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Handler *handlers.Handler
	Gin     *gin.Engine
	Log     *utils.LoggerService
}

func (s *Server) InitGin() (*Server, error) {
	g := gin.New()
	g.Use(gin.Recovery(), RequestID(), AccessLog(s.Log))
	g.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	templ, err := views.Templates()
	if err != nil {
		return nil, err
	}
	g.SetHTMLTemplate(templ)

	routers.RegisterRouters(g, s.Handler)
	s.Gin = g

	return s, nil
}

func (s *Server) Ready() bool {
	return s.Handler != nil && s.Gin != nil && s.Log != nil
}

// Start serves on ep until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, ep string) error {
	if !s.Ready() {
		return errors.New("server isn't ready - make sure to init the handler and gin")
	}

	srv := &http.Server{
		Addr:              ep,
		Handler:           s.Gin.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
