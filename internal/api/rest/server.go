package rest

import (
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/VladPetriv/currency_names/internal/service"
	"github.com/VladPetriv/currency_names/pkg/logger"
	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// RequestIDHeader is the header that carries the ID of the request.
const RequestIDHeader = "X-Request-ID"

// Server represents the HTTP API of currency names.
type Server struct {
	logger          *logger.Logger
	address         string
	currencyService service.CurrencyService
	server          *fasthttp.Server

	mu       sync.Mutex
	listener net.Listener
	stopped  bool
}

// Options represents options that required for creating new instance of Server.
type Options struct {
	Logger          *logger.Logger
	Address         string
	CurrencyService service.CurrencyService
}

// New creates a new instance of Server.
func New(opts Options) *Server {
	s := &Server{
		logger:          opts.Logger,
		address:         opts.Address,
		currencyService: opts.CurrencyService,
	}

	s.server = &fasthttp.Server{
		Name:         "currency_names",
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the request handler with all routes registered.
func (s *Server) Handler() fasthttp.RequestHandler {
	r := router.New()
	// "/currencies/" must not be redirected to the list route.
	r.RedirectTrailingSlash = false

	r.GET("/health", s.health)
	r.GET("/currencies", s.listCurrencies)
	r.GET("/currencies/{code}", s.getCurrency)

	r.NotFound = func(ctx *fasthttp.RequestCtx) {
		writeJSON(ctx, fasthttp.StatusNotFound, errorResponse{Message: "route not found"})
	}
	r.MethodNotAllowed = func(ctx *fasthttp.RequestCtx) {
		writeJSON(ctx, fasthttp.StatusMethodNotAllowed, errorResponse{Message: "method not allowed"})
	}

	return s.withAccessLog(r.Handler)
}

// Start starts listening on the configured address, it blocks until the server is stopped.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}

	s.logger.Info().Str("address", ln.Addr().String()).Msg("starting http server")
	return s.Serve(ln)
}

// Serve serves requests from the given listener, it blocks until the server is stopped.
// When Shutdown was already called the listener is closed and Serve returns immediately.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ln.Close()
	}
	s.listener = ln
	s.mu.Unlock()

	err := s.server.Serve(ln)
	if err != nil && s.isStopped() {
		return nil
	}

	return err
}

// Shutdown gracefully stops the server.
// It's safe to call before Start or Serve, they return right away afterwards.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	s.stopped = true
	ln := s.listener
	s.mu.Unlock()

	if ln == nil {
		return nil
	}

	err := s.server.Shutdown()

	// fasthttp only knows the listener once Serve registered it, so it's closed here as well.
	// The error is ignored since the listener is usually closed by fasthttp already.
	_ = ln.Close()

	return err
}

func (s *Server) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stopped
}

func (s *Server) withAccessLog(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		startedAt := time.Now()

		requestID := string(ctx.Request.Header.Peek(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Response.Header.Set(RequestIDHeader, requestID)

		next(ctx)

		s.logger.Info().
			Str("requestID", requestID).
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Int("status", ctx.Response.StatusCode()).
			Dur("duration", time.Since(startedAt)).
			Msg("handled request")
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		ctx.Error(`{"message":"internal error"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(statusCode)
	ctx.SetBody(data)
}
