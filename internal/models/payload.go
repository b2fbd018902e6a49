package models

// Request limits
const (
	MaxBodyBytes    = 1 << 20
	MaxListLength   = 10000
	MaxStringLength = 1000
	MaxN            = 10000
	DefaultN        = 1
)

// Payload is the decoded body of a head or tail request
type Payload struct {
	List []string `json:"list"`
	N    int      `json:"n"`
}

// ListResult is the success response body
type ListResult struct {
	Result []string `json:"result"`
}
