package handlers

import (
	"context"
	"io"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teurajarvi/listservice/internal/listops"
	"github.com/teurajarvi/listservice/internal/middleware"
	"github.com/teurajarvi/listservice/internal/models"
	"github.com/teurajarvi/listservice/pkg/lambda"
)

// ListHandler handles head and tail requests
type ListHandler struct {
	decoder *models.Decoder
	logger  *logrus.Logger
}

// NewListHandler creates a new list handler
func NewListHandler(logger *logrus.Logger) *ListHandler {
	return &ListHandler{
		decoder: models.NewDecoder(),
		logger:  logger,
	}
}

// Handle validates the request and returns the head or tail of the posted list.
// It never returns nil; unexpected failures become a generic 500 response.
func (h *ListHandler) Handle(ctx context.Context, req *lambda.Request) (resp *lambda.Response) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.WithFields(logrus.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Unhandled error")
			resp = internalErrorResponse()
		}
	}()

	log := h.logger.WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"method":     req.Method,
		"path":       req.Path,
	})

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}
	if method != http.MethodPost {
		return errorResponse(http.StatusMethodNotAllowed, "", msgMethodNotAllowed)
	}

	payload, verr := h.decoder.Decode(req.Body)
	if verr != nil {
		log.WithField("error", verr.Message).Warn("Validation error")
		return validationErrorResponse(verr)
	}

	op, ok := listops.FromPath(req.Path)
	if !ok {
		return errorResponse(http.StatusNotFound, "", msgNotFound)
	}

	result := op.Apply(payload.List, payload.N)

	resp, err := jsonResponse(http.StatusOK, models.ListResult{Result: result})
	if err != nil {
		log.WithError(err).Error("Failed to encode response")
		return internalErrorResponse()
	}

	log.WithFields(logrus.Fields{
		"operation":   op,
		"list_length": len(payload.List),
		"n":           payload.N,
	}).Debug("List request served")

	return resp
}

// @Summary Head of a list
// @Description Returns the first n strings of the posted list
// @Tags list
// @Accept json
// @Produce json
// @Param request body ListRequest true "List and count"
// @Success 200 {object} models.ListResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 405 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/list/head [post]
// @Router /v1/list/tail [post]
func (h *ListHandler) ServeGin(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		// One byte past the limit is enough for the decoder to reject the body.
		b, err := io.ReadAll(io.LimitReader(c.Request.Body, models.MaxBodyBytes+1))
		if err != nil {
			h.logger.WithFields(logrus.Fields{
				"request_id": c.GetString(middleware.RequestIDKey),
				"error":      err.Error(),
			}).Error("Failed to read request body")
			WriteInternalError(c)
			return
		}
		body = b
	}

	req := &lambda.Request{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Headers:   flattenHeaders(c.Request.Header),
		Body:      body,
		RequestID: c.GetString(middleware.RequestIDKey),
	}

	writeGinResponse(c, h.Handle(c.Request.Context(), req))
}

// ListRequest documents the request body accepted by the list endpoints
type ListRequest struct {
	List []string `json:"list" example:"apple,banana,cherry,date"`
	N    int      `json:"n" example:"2"`
}

func flattenHeaders(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for key, values := range header {
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out
}
