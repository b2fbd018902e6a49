package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teurajarvi/listservice/internal/models"
	"github.com/teurajarvi/listservice/pkg/lambda"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code  models.ErrorCode `json:"code,omitempty"`
	Error string           `json:"error"`
}

const (
	msgMethodNotAllowed = "Method Not Allowed"
	msgNotFound         = "Not Found"
)

// internalErrorBody is precomputed so the 500 path cannot itself fail.
var internalErrorBody = []byte(`{"code":"INTERNAL_ERROR","error":"Internal Server Error"}`)

// ResponseHeaders returns the headers attached to every list service response
func ResponseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":              "application/json",
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
		"Content-Security-Policy":   "default-src 'none'",
		"X-XSS-Protection":          "1; mode=block",
	}
}

// encodeJSON marshals v without HTML escaping so strings come back exactly as sent
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func jsonResponse(status int, v interface{}) (*lambda.Response, error) {
	body, err := encodeJSON(v)
	if err != nil {
		return nil, err
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    ResponseHeaders(),
		Body:       body,
	}, nil
}

func errorResponse(status int, code models.ErrorCode, msg string) *lambda.Response {
	resp, err := jsonResponse(status, ErrorResponse{Code: code, Error: msg})
	if err != nil {
		return internalErrorResponse()
	}
	return resp
}

func validationErrorResponse(verr *models.ValidationError) *lambda.Response {
	return errorResponse(http.StatusBadRequest, verr.Code(), verr.Message)
}

func internalErrorResponse() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    ResponseHeaders(),
		Body:       internalErrorBody,
	}
}

// WriteInternalError writes the generic 500 response to a gin context
func WriteInternalError(c *gin.Context) {
	writeGinResponse(c, internalErrorResponse())
}

func writeGinResponse(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
}
