package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/sanverite/skinmock/internal/core"
	"github.com/sanverite/skinmock/internal/responder"
)

// DefaultAddress binds every interface on the port the front-end expects.
const DefaultAddress = "0.0.0.0:5000"

// ServerOptions configures the HTTP server.
type ServerOptions struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	Logger            *log.Logger
}

// Server hosts the mock skincare API.
type Server struct {
	http    *http.Server
	history *core.HistoryStore
	logger  *log.Logger
	opts    ServerOptions
}

// NewServer constructs a new API server bound to the provided history.
// The server does not start listening until Start is called.
func NewServer(history *core.HistoryStore, opts ServerOptions) *Server {
	if history == nil {
		panic("api.NewServer: history is nil")
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddress
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 2 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Server{
		history: history,
		logger:  opts.Logger,
		opts:    opts,
	}
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.routes(),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		ErrorLog:          opts.Logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}),
		BaseContext: func(l net.Listener) context.Context {
			return context.Background()
		},
	}
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		withRequestID(),
		withAccessLog(s.logger),
		withRecovery(s.logger),
		withCORS(),
	)
	r.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		abortWithError(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.GET("/healthz", s.handleHealthz)

	api := r.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.POST("/analyze-skin-care", s.handleAnalyzeSkinCare)
		api.GET("/history", s.handleHistory)
		api.GET("/stats", s.handleStats)
		api.POST("/progress", s.handleProgress)
		api.POST("/chat", s.handleChat)
	}
	return r
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start begins serving HTTP in a background goroutine and returns
// immediately. The returned channel receives the listener's terminal error,
// or is closed without a value after a graceful Stop.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.logger.Info("api: listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api: ListenAndServe error", "err", err)
			errCh <- err
		}
	}()
	return errCh
}

// Stop gracefully shuts down the server, waiting up to ShutdownTimeout.
func (s *Server) Stop(ctx context.Context) error {
	timeout := s.opts.ShutdownTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.http.Shutdown(ctx)
}

// handleHealthz is a simple readiness/liveness endpoint.
func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: TimeNow().UTC().Format(time.RFC3339),
	})
}

// handleAnalyze returns the fixed diagnosis. The uploaded image is ignored.
func (s *Server) handleAnalyze(c *gin.Context) {
	c.JSON(http.StatusOK, FromAnalysis(responder.AnalyzeImage()))
}

// handleAnalyzeSkinCare returns the fixed skin profile. The body is ignored.
func (s *Server) handleAnalyzeSkinCare(c *gin.Context) {
	c.JSON(http.StatusOK, FromSkinCare(responder.AnalyzeSkinCare()))
}

// handleHistory returns every progress entry in insertion order.
func (s *Server) handleHistory(c *gin.Context) {
	c.JSON(http.StatusOK, FromHistory(s.history.List()))
}

// handleStats returns the fixed symptom distribution.
func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, FromStats(responder.SymptomStats()))
}

// handleProgress records the next weekly entry. No image upload is read;
// the entry is derived entirely from the current history length and date.
func (s *Server) handleProgress(c *gin.Context) {
	e := s.history.RecordNext(TimeNow())
	s.logger.Debug("api: progress recorded", "week", e.Week, "score", e.Score)
	c.JSON(http.StatusOK, ProgressResponse{
		Message:  responder.ProgressMessage,
		Analysis: responder.ProgressAnalysis,
		NewEntry: FromProgressEntry(e),
	})
}

// handleChat answers with a canned reply. A missing or malformed body is
// treated as an empty message and gets the default reply.
func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("api: chat body ignored", "err", err)
		req = ChatRequest{}
	}
	c.JSON(http.StatusOK, ChatResponse{Response: responder.Reply(req.Message)})
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, APIError{
		Error:     msg,
		Timestamp: TimeNow().UTC().Format(time.RFC3339),
	})
}
