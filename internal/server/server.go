// Package server exposes the stateless scoring and catalog operations over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/interview-coach/internal/assessment"
	"github.com/spigell/interview-coach/internal/ats"
	"github.com/spigell/interview-coach/internal/catalog"
	"github.com/spigell/interview-coach/internal/lexicon"
	"github.com/spigell/interview-coach/internal/logger"
	"github.com/spigell/interview-coach/internal/persona"
	"github.com/spigell/interview-coach/internal/randutil"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Deps are the components served by the API. Nil fields fall back to the embedded data.
type Deps struct {
	Catalog  *catalog.Catalog
	Personas *persona.Library
	Lexicon  *lexicon.Lexicon
	Source   randutil.Source
	Logger   *zap.Logger
}

type Server struct {
	catalog  *catalog.Catalog
	personas *persona.Library
	answers  *assessment.Scorer
	resumes  *ats.Scorer
	src      randutil.Source
	logger   *zap.Logger
	router   *gin.Engine
}

func New(deps Deps) *Server {
	log := logger.OrNop(deps.Logger)

	src := randutil.Locked(deps.Source)
	if src == nil {
		src = randutil.Locked(randutil.New(0))
	}
	cat := deps.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	lex := deps.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	personas := deps.Personas
	if personas == nil {
		personas = persona.Default(src)
	}

	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		catalog:  cat,
		personas: personas,
		answers:  assessment.NewScorer(lex, log),
		resumes:  ats.NewScorer(lex, log),
		src:      src,
		logger:   log,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	api.GET("/personas", s.listPersonas)
	api.GET("/questions", s.listQuestions)
	api.POST("/score/interview", s.scoreInterview)
	api.POST("/score/resume", s.scoreResume)

	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(started)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("http request", fields...)
			return
		}
		log.Debug("http request", fields...)
	}
}
