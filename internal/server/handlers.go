package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"finecto/internal/apperr"
	"finecto/internal/domain"
	"finecto/internal/logger"
	"finecto/internal/validate"
)

func (s *Server) handleInvoice(c *gin.Context) {
	var in InvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.respondError(c, apperr.BadRequest("Malformed JSON body", nil))
		return
	}
	if err := validate.Check(&in); err != nil {
		s.respondError(c, err)
		return
	}

	out, err := s.invoice.Execute(in.Company, in.toDomain())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apperr.Success("success invoice transform", out))
}

func (s *Server) handleInvoiceBatch(c *gin.Context) {
	var inputs []*InvoiceInput
	if err := c.ShouldBindJSON(&inputs); err != nil || len(inputs) == 0 {
		s.respondError(c, apperr.BadRequest("This endpoint expects an array", nil))
		return
	}

	payloads := make([]validate.Payload, len(inputs))
	for i := range inputs {
		// A JSON null element decodes to a nil pointer; validate it as an
		// empty record so its violations report under the right index.
		if inputs[i] == nil {
			inputs[i] = &InvoiceInput{}
		}
		payloads[i] = inputs[i]
	}
	if err := validate.Batch(payloads); err != nil {
		s.respondError(c, err)
		return
	}

	outs := make([]domain.Invoice, 0, len(inputs))
	for _, in := range inputs {
		out, err := s.invoice.Execute(in.Company, in.toDomain())
		if err != nil {
			s.respondError(c, err)
			return
		}
		outs = append(outs, out)
	}

	c.JSON(http.StatusOK, apperr.Success("success invoice transform", outs))
}

func (s *Server) handleVendor(c *gin.Context) {
	var in VendorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.respondError(c, apperr.BadRequest("Malformed JSON body", nil))
		return
	}
	if err := validate.Check(&in); err != nil {
		s.respondError(c, err)
		return
	}

	out, err := s.vendor.Execute(in.Company, in.toDomain())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apperr.Success("success vendor transform", out))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps the error to its envelope. Errors outside the taxonomy
// are logged with full detail before the generic response goes out.
func (s *Server) respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log := logger.WithRequestID(c.GetString(ctxRequestID))
		log.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
	}
	resp := apperr.ToResponse(err)
	c.AbortWithStatusJSON(resp.Status, resp)
}
