// Package web serves the vital-signs form over HTTP.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/doeshing/cosmo-health/assets"
	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/ports"
)

const (
	buttonLabel      = "Анализ"
	buttonBusyLabel  = "Анализ..."
	msgRequestFailed = "Ошибка запроса: %v"
	fetchHeader      = "X-Requested-With"
)

// Server renders the form and runs at most one analysis at a time.
type Server struct {
	analyzer ports.Analyzer
	log      ports.Logger
	page     *template.Template
	router   *gin.Engine
	busy     sync.Mutex
}

type pageData struct {
	Fields      []domain.VitalField
	ButtonLabel string
	BusyLabel   string
	Requesting  string
	Result      *resultView
}

type resultView struct {
	Warning         string
	Recommendations string
	States          []domain.ConditionEstimate
	NoStates        string
}

// NewServer builds the gin router around analyzer.
func NewServer(analyzer ports.Analyzer, log ports.Logger, settings domain.ServerSettings) (*Server, error) {
	page, err := template.New("form").Parse(assets.FormTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse form template: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	if len(settings.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  settings.AllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", fetchHeader, "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}

	s := &Server{
		analyzer: analyzer,
		log:      log,
		page:     page,
		router:   router,
	}
	s.setupRoutes()
	return s, nil
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("form server listening", map[string]interface{}{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), domain.DefaultServerShutdownTimeout)
	defer cancel()
	s.log.Info("form server shutting down", nil)
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleForm)
	s.router.POST("/analyze", s.handleAnalyzeForm)
	s.router.POST("/api/analyze", s.handleAnalyzeJSON)
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}

func (s *Server) handleForm(c *gin.Context) {
	s.renderPage(c, http.StatusOK, domain.VitalSigns{}, nil)
}

// handleAnalyzeForm answers fetch submissions with the result fragment and
// plain form posts with the whole page.
func (s *Server) handleAnalyzeForm(c *gin.Context) {
	var vitals domain.VitalSigns
	if err := c.ShouldBind(&vitals); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	status, view := s.analyze(c, vitals)
	if c.GetHeader(fetchHeader) == "" {
		s.renderPage(c, status, vitals, view)
		return
	}
	s.render(c, status, "result", view)
}

func (s *Server) handleAnalyzeJSON(c *gin.Context) {
	var vitals domain.VitalSigns
	if err := c.ShouldBindJSON(&vitals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !s.busy.TryLock() {
		c.JSON(http.StatusConflict, gin.H{"error": domain.MsgBusy})
		return
	}
	defer s.busy.Unlock()

	result, err := s.analyzer.Analyze(c.Request.Context(), vitals)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)
	case errors.Is(err, domain.ErrIncompleteInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.MsgFillAllFields})
	default:
		s.log.Error("analysis failed", err, map[string]interface{}{"request_id": c.GetString("request_id")})
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf(msgRequestFailed, err)})
	}
}

// analyze runs one analysis under the busy guard and maps the outcome to
// a status code and the fragment shown under the form.
func (s *Server) analyze(c *gin.Context, vitals domain.VitalSigns) (int, *resultView) {
	if !s.busy.TryLock() {
		return http.StatusConflict, &resultView{Warning: domain.MsgBusy}
	}
	defer s.busy.Unlock()

	result, err := s.analyzer.Analyze(c.Request.Context(), vitals)
	switch {
	case err == nil:
		return http.StatusOK, &resultView{
			Recommendations: result.RecommendationsOrPlaceholder(),
			States:          result.States,
			NoStates:        domain.MsgNoStates,
		}
	case errors.Is(err, domain.ErrIncompleteInput):
		return http.StatusBadRequest, &resultView{Warning: domain.MsgFillAllFields}
	default:
		s.log.Error("analysis failed", err, map[string]interface{}{"request_id": c.GetString("request_id")})
		return http.StatusBadGateway, &resultView{Warning: fmt.Sprintf(msgRequestFailed, err)}
	}
}

func (s *Server) renderPage(c *gin.Context, status int, vitals domain.VitalSigns, view *resultView) {
	s.render(c, status, "page", pageData{
		Fields:      vitals.Fields(),
		ButtonLabel: buttonLabel,
		BusyLabel:   buttonBusyLabel,
		Requesting:  domain.MsgRequesting,
		Result:      view,
	})
}

func (s *Server) render(c *gin.Context, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.page.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error("render template", err, map[string]interface{}{"template": name})
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// requestIDMiddleware tags every request with an X-Request-ID.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}
