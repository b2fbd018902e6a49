package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal test body: %v", err)
	}
	return b
}

func stringsOf(count int, value string) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestDecodeValid(t *testing.T) {
	d := NewDecoder()

	tests := []struct {
		name string
		body string
		want *Payload
	}{
		{
			name: "list and n",
			body: `{"list": ["a", "b", "c"], "n": 2}`,
			want: &Payload{List: []string{"a", "b", "c"}, N: 2},
		},
		{
			name: "n defaults to one",
			body: `{"list": ["a"]}`,
			want: &Payload{List: []string{"a"}, N: 1},
		},
		{
			name: "empty list",
			body: `{"list": []}`,
			want: &Payload{List: []string{}, N: 1},
		},
		{
			name: "n at upper bound",
			body: `{"list": ["a"], "n": 10000}`,
			want: &Payload{List: []string{"a"}, N: 10000},
		},
		{
			name: "unknown fields are ignored",
			body: `{"list": ["x"], "n": 3, "extra": {"nested": true}}`,
			want: &Payload{List: []string{"x"}, N: 3},
		},
		{
			name: "unicode strings are kept",
			body: `{"list": ["héllo", "日本"], "n": 1}`,
			want: &Payload{List: []string{"héllo", "日本"}, N: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := d.Decode([]byte(tt.body))
			if verr != nil {
				t.Fatalf("Unexpected validation error: %v", verr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeValidationErrors(t *testing.T) {
	d := NewDecoder()

	tests := []struct {
		name       string
		body       []byte
		wantReason ValidationReason
		wantMsg    string
	}{
		{
			name:       "empty body means missing list",
			body:       nil,
			wantReason: ReasonListNotArray,
			wantMsg:    "'list' must be an array",
		},
		{
			name:       "malformed json",
			body:       []byte("not valid json {{{"),
			wantReason: ReasonInvalidJSON,
			wantMsg:    "Body must be valid JSON",
		},
		{
			name:       "whitespace body is malformed",
			body:       []byte("   "),
			wantReason: ReasonInvalidJSON,
			wantMsg:    "Body must be valid JSON",
		},
		{
			name:       "body too large",
			body:       append([]byte(`{"list": ["`), make([]byte, MaxBodyBytes)...),
			wantReason: ReasonBodyTooLarge,
			wantMsg:    "Request body too large (max 1048576 bytes)",
		},
		{
			name:       "missing list",
			body:       []byte(`{"n": 5}`),
			wantReason: ReasonListNotArray,
			wantMsg:    "'list' must be an array",
		},
		{
			name:       "list is a string",
			body:       []byte(`{"list": "nope"}`),
			wantReason: ReasonListNotArray,
			wantMsg:    "'list' must be an array",
		},
		{
			name:       "list is null",
			body:       []byte(`{"list": null}`),
			wantReason: ReasonListNotArray,
			wantMsg:    "'list' must be an array",
		},
		{
			name:       "top level array",
			body:       []byte(`["a", "b"]`),
			wantReason: ReasonListNotArray,
			wantMsg:    "'list' must be an array",
		},
		{
			name:       "list too long",
			body:       mustJSON(t, map[string]interface{}{"list": stringsOf(MaxListLength+1, "a")}),
			wantReason: ReasonListTooLong,
			wantMsg:    "'list' length must be <= 10000",
		},
		{
			name:       "list contains a number",
			body:       []byte(`{"list": ["ok", 1]}`),
			wantReason: ReasonListNotStrings,
			wantMsg:    "'list' must contain only strings",
		},
		{
			name:       "list contains null",
			body:       []byte(`{"list": ["ok", null]}`),
			wantReason: ReasonListNotStrings,
			wantMsg:    "'list' must contain only strings",
		},
		{
			name:       "string too long reports first index",
			body:       mustJSON(t, map[string]interface{}{"list": []string{"ok", strings.Repeat("x", 1001), strings.Repeat("y", 2000)}}),
			wantReason: ReasonStringTooLong,
			wantMsg:    "String at index 1 exceeds max length of 1000 characters",
		},
		{
			name:       "n is zero",
			body:       []byte(`{"list": ["a"], "n": 0}`),
			wantReason: ReasonNNotPositiveInteger,
			wantMsg:    "'n' must be a positive integer",
		},
		{
			name:       "n is negative",
			body:       []byte(`{"list": ["a"], "n": -5}`),
			wantReason: ReasonNNotPositiveInteger,
			wantMsg:    "'n' must be a positive integer",
		},
		{
			name:       "n is a string",
			body:       []byte(`{"list": ["a"], "n": "five"}`),
			wantReason: ReasonNNotPositiveInteger,
			wantMsg:    "'n' must be a positive integer",
		},
		{
			name:       "n is a numeric string",
			body:       []byte(`{"list": ["a"], "n": "5"}`),
			wantReason: ReasonNNotPositiveInteger,
			wantMsg:    "'n' must be a positive integer",
		},
		{
			name:       "n is boolean true",
			body:       []byte(`{"list": ["a"], "n": true}`),
			wantReason: ReasonNNotPositiveInteger,
			wantMsg:    "'n' must be a positive integer",
		},
		{
			name:       "n is a float",
			body:       []byte(`{"list": ["a"], "n": 2.0}`),
			wantReason: ReasonNNotPositiveInteger,
			wantMsg:    "'n' must be a positive integer",
		},
		{
			name:       "n is null",
			body:       []byte(`{"list": ["a"], "n": null}`),
			wantReason: ReasonNNotPositiveInteger,
			wantMsg:    "'n' must be a positive integer",
		},
		{
			name:       "n too large",
			body:       []byte(`{"list": ["a"], "n": 10001}`),
			wantReason: ReasonNTooLarge,
			wantMsg:    "'n' must be <= 10000",
		},
		{
			name:       "n overflows int64",
			body:       []byte(`{"list": ["a"], "n": 99999999999999999999999}`),
			wantReason: ReasonNTooLarge,
			wantMsg:    "'n' must be <= 10000",
		},
		{
			name:       "n underflows int64",
			body:       []byte(`{"list": ["a"], "n": -99999999999999999999999}`),
			wantReason: ReasonNNotPositiveInteger,
			wantMsg:    "'n' must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, verr := d.Decode(tt.body)
			if verr == nil {
				t.Fatalf("Expected validation error, got payload %+v", payload)
			}
			if verr.Reason != tt.wantReason {
				t.Errorf("Expected reason %d, got %d", tt.wantReason, verr.Reason)
			}
			if verr.Message != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, verr.Message)
			}
			if verr.Code() != CodeValidation {
				t.Errorf("Expected code %s, got %s", CodeValidation, verr.Code())
			}
		})
	}
}

func TestDecodeOrdering(t *testing.T) {
	d := NewDecoder()

	tests := []struct {
		name       string
		body       []byte
		wantReason ValidationReason
	}{
		{
			name:       "length is checked before element types",
			body:       mustJSON(t, map[string]interface{}{"list": append(make([]interface{}, MaxListLength), 1)}),
			wantReason: ReasonListTooLong,
		},
		{
			name:       "element types are checked before string lengths",
			body:       mustJSON(t, map[string]interface{}{"list": []interface{}{strings.Repeat("x", 1001), 7}}),
			wantReason: ReasonListNotStrings,
		},
		{
			name:       "string length is checked before n",
			body:       mustJSON(t, map[string]interface{}{"list": []string{strings.Repeat("x", 1001)}, "n": "five"}),
			wantReason: ReasonStringTooLong,
		},
		{
			name:       "list is checked before n",
			body:       []byte(`{"n": 0}`),
			wantReason: ReasonListNotArray,
		},
		{
			name:       "size is checked before syntax",
			body:       append([]byte("{{{"), make([]byte, MaxBodyBytes)...),
			wantReason: ReasonBodyTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verr := d.Decode(tt.body)
			if verr == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if verr.Reason != tt.wantReason {
				t.Errorf("Expected reason %d, got %d (%s)", tt.wantReason, verr.Reason, verr.Message)
			}
		})
	}
}

func TestDecodeStringLengthBoundary(t *testing.T) {
	d := NewDecoder()

	// 1000 multi-byte characters are within the limit even though they exceed 1000 bytes.
	atLimit := strings.Repeat("é", MaxStringLength)
	payload, verr := d.Decode(mustJSON(t, map[string]interface{}{"list": []string{atLimit}}))
	if verr != nil {
		t.Fatalf("Expected string of %d characters to pass, got %v", MaxStringLength, verr)
	}
	if len(payload.List) != 1 {
		t.Fatalf("Expected one element, got %d", len(payload.List))
	}

	_, verr = d.Decode(mustJSON(t, map[string]interface{}{"list": []string{atLimit + "é"}}))
	if verr == nil || verr.Index != 0 {
		t.Fatalf("Expected string too long at index 0, got %v", verr)
	}
}

func TestDecodeListLengthBoundary(t *testing.T) {
	d := NewDecoder()

	payload, verr := d.Decode(mustJSON(t, map[string]interface{}{"list": stringsOf(MaxListLength, "a"), "n": MaxN}))
	if verr != nil {
		t.Fatalf("Expected list of %d items to pass, got %v", MaxListLength, verr)
	}
	if len(payload.List) != MaxListLength {
		t.Errorf("Expected %d items, got %d", MaxListLength, len(payload.List))
	}
}
