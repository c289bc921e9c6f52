package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyMPPayload = errors.New("mp_payload cannot be empty")

// ResolveMPPayload accepts either a raw Mercado Pago payment request or one
// wrapped as {"mp_payload": {...}}. An empty body becomes {}.
func ResolveMPPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			v := strings.TrimSpace(string(wrapped))
			if v == "" || v == "null" {
				return nil, ErrEmptyMPPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
