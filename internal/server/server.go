// Package server exposes the transforms over HTTP. The routing layer is
// thin: decode, validate, call the use case and wrap the outcome in the
// response envelope.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"finecto/internal/apperr"
	"finecto/internal/logger"
	"finecto/internal/usecase"
)

const ctxRequestID = "request_id"

// Server wires the HTTP API.
type Server struct {
	engine  *gin.Engine
	invoice *usecase.InvoiceTransform
	vendor  *usecase.VendorTransform
	log     zerolog.Logger
}

// New builds the engine with middleware and routes configured.
func New(invoice *usecase.InvoiceTransform, vendor *usecase.VendorTransform) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		engine:  engine,
		invoice: invoice,
		vendor:  vendor,
		log:     logger.WithComponent("http"),
	}

	engine.Use(s.requestID(), s.requestLogger(), s.recovery())

	engine.POST("/invoice", s.handleInvoice)
	engine.POST("/invoice/batch", s.handleInvoiceBatch)
	engine.POST("/vendor", s.handleVendor)
	engine.GET("/health", s.handleHealth)

	return s
}

// Handler returns the engine as an http.Handler for the hosting server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestID assigns each request an ID, honouring one supplied by the
// caller, and echoes it on the response.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger logs one line per handled request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.WithRequestID(c.GetString(ctxRequestID))
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}

// recovery converts panics into the generic internal-error envelope. The
// panic detail stays in the server log.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Msg("Panic recovered while handling request")
				resp := apperr.ToResponse(fmt.Errorf("panic: %v", r))
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
