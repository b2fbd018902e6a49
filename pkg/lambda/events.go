package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// EventFormat identifies the API Gateway payload shape of an invocation
type EventFormat int

const (
	// FormatHTTPAPI is the HTTP API (and function URL) payload, version 2.0
	FormatHTTPAPI EventFormat = iota
	// FormatREST is the REST API proxy payload, version 1.0
	FormatREST
)

func (f EventFormat) String() string {
	if f == FormatREST {
		return "rest"
	}
	return "http-api"
}

type eventProbe struct {
	Version        string `json:"version"`
	RequestContext struct {
		HTTP json.RawMessage `json:"http"`
	} `json:"requestContext"`
}

// DetectFormat inspects a raw invocation payload and reports which event shape it has
func DetectFormat(raw []byte) (EventFormat, error) {
	var probe eventProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return 0, fmt.Errorf("failed to decode event: %w", err)
	}
	if probe.Version == "2.0" || len(probe.RequestContext.HTTP) > 0 {
		return FormatHTTPAPI, nil
	}
	return FormatREST, nil
}

// FromHTTPAPIEvent converts an HTTP API event to a generic request
func FromHTTPAPIEvent(event events.APIGatewayV2HTTPRequest) *Request {
	path := event.RequestContext.HTTP.Path
	if path == "" {
		path = event.RawPath
	}

	return &Request{
		Method:    event.RequestContext.HTTP.Method,
		Path:      path,
		Headers:   event.Headers,
		Body:      decodeBody(event.Body, event.IsBase64Encoded),
		RequestID: event.RequestContext.RequestID,
	}
}

// ToHTTPAPIResponse converts a generic response to an HTTP API response
func ToHTTPAPIResponse(resp *Response) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// FromRESTEvent converts a REST API proxy event to a generic request
func FromRESTEvent(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:    event.HTTPMethod,
		Path:      event.Path,
		Headers:   event.Headers,
		Body:      decodeBody(event.Body, event.IsBase64Encoded),
		RequestID: event.RequestContext.RequestID,
	}
}

// ToRESTResponse converts a generic response to a REST API proxy response
func ToRESTResponse(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// Invoke decodes a raw API Gateway event, runs h and encodes the response in
// the same format the event arrived in.
func Invoke(ctx context.Context, raw json.RawMessage, h HandlerFunc) (interface{}, error) {
	format, err := DetectFormat(raw)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatREST:
		var event events.APIGatewayProxyRequest
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, fmt.Errorf("failed to decode REST API event: %w", err)
		}
		return ToRESTResponse(h(ctx, FromRESTEvent(event))), nil
	default:
		var event events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, fmt.Errorf("failed to decode HTTP API event: %w", err)
		}
		return ToHTTPAPIResponse(h(ctx, FromHTTPAPIEvent(event))), nil
	}
}

// decodeBody returns the body bytes, undoing API Gateway's base64 encoding of
// binary payloads. A body that claims base64 but does not decode is passed
// through unchanged so JSON validation rejects it.
func decodeBody(body string, isBase64 bool) []byte {
	if !isBase64 {
		return []byte(body)
	}
	decoded, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return []byte(body)
	}
	return decoded
}
