package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	listLengthTag   = fmt.Sprintf("max=%d", MaxListLength)
	stringLengthTag = fmt.Sprintf("max=%d", MaxStringLength)
	nUpperBoundTag  = fmt.Sprintf("lte=%d", MaxN)
)

// Decoder turns a raw request body into a Payload. The checks run in a fixed
// order and the first failing one is reported.
type Decoder struct {
	validate *validator.Validate
}

// NewDecoder creates a payload decoder. It is safe for concurrent use.
func NewDecoder() *Decoder {
	return &Decoder{validate: validator.New()}
}

// Decode validates body and returns the typed payload
func (d *Decoder) Decode(body []byte) (*Payload, *ValidationError) {
	if len(body) > MaxBodyBytes {
		return nil, ErrBodyTooLarge()
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return nil, ErrInvalidJSON()
	}

	// Valid JSON that is not an object has no fields at all.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		fields = nil
	}

	list, verr := d.decodeList(fields["list"])
	if verr != nil {
		return nil, verr
	}

	rawN, present := fields["n"]
	n, verr := d.decodeN(rawN, present)
	if verr != nil {
		return nil, verr
	}

	return &Payload{List: list, N: n}, nil
}

func (d *Decoder) decodeList(raw json.RawMessage) ([]string, *ValidationError) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errListNotArray()
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errListNotArray()
	}

	if err := d.validate.Var(items, listLengthTag); err != nil {
		return nil, errListTooLong()
	}

	list := make([]string, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '"' {
			return nil, errListNotStrings()
		}
		if err := json.Unmarshal(item, &list[i]); err != nil {
			return nil, errListNotStrings()
		}
	}

	// Length is measured in code points, which is what the validator's max does for strings.
	for i, s := range list {
		if err := d.validate.Var(s, stringLengthTag); err != nil {
			return nil, errStringTooLong(i)
		}
	}

	return list, nil
}

func (d *Decoder) decodeN(raw json.RawMessage, present bool) (int, *ValidationError) {
	if !present {
		return DefaultN, nil
	}

	// Only a bare integer literal is accepted. Booleans, strings, null and
	// numbers with a fraction or exponent all fail to parse here.
	literal := string(bytes.TrimSpace(raw))
	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && literal[0] != '-' {
			return 0, errNTooLarge()
		}
		return 0, errNNotPositiveInteger()
	}

	if err := d.validate.Var(n, "gt=0"); err != nil {
		return 0, errNNotPositiveInteger()
	}
	if err := d.validate.Var(n, nUpperBoundTag); err != nil {
		return 0, errNTooLarge()
	}

	return int(n), nil
}
