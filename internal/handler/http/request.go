package http

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"

	"github.com/MKhiriev/go-box-keeper/models"
)

// maxBodySize bounds every request body.
const maxBodySize = 1 << 20

// requestBody is a decoded JSON object whose values are inspected one key
// at a time.
type requestBody map[string]json.RawMessage

func decodeBody(w http.ResponseWriter, r *http.Request) (requestBody, error) {
	var body requestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&body); err != nil {
		return nil, ErrInvalidJSON
	}
	// a literal null decodes into a nil map
	if body == nil {
		return nil, ErrInvalidJSON
	}

	return body, nil
}

// hasKeys reports whether the body holds exactly the given keys.
func (b requestBody) hasKeys(keys ...string) bool {
	if len(b) != len(keys) {
		return false
	}
	for _, k := range keys {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// isSet reports whether key holds something other than null, false, 0 or
// an empty string.
func (b requestBody) isSet(key string) bool {
	raw, ok := b[key]
	if !ok {
		return false
	}

	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}

// str decodes key as a JSON string.
func (b requestBody) str(key string) (string, bool) {
	raw, ok := b[key]
	if !ok {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// integer decodes key as a JSON number without a fractional part.
func (b requestBody) integer(key string) (int, bool) {
	raw, ok := b[key]
	if !ok {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// credentials decodes key as an {email, password} object with exactly
// those two string fields.
func (b requestBody) credentials(key string) (models.Credentials, bool) {
	raw, ok := b[key]
	if !ok {
		return models.Credentials{}, false
	}

	var inner requestBody
	if err := json.Unmarshal(raw, &inner); err != nil || !inner.hasKeys("email", "password") {
		return models.Credentials{}, false
	}

	email, okEmail := inner.str("email")
	password, okPassword := inner.str("password")
	if !okEmail || !okPassword {
		return models.Credentials{}, false
	}

	return models.Credentials{Email: email, Password: password}, true
}

// boxKey reads the "id" or "name" selector of a slot command.
func (b requestBody) boxKey() (models.BoxKey, error) {
	hasName, hasID := b.isSet("name"), b.isSet("id")

	switch {
	case hasName && hasID:
		return models.BoxKey{}, ErrBoxIDAndName
	case hasName:
		name, ok := b.str("name")
		if !ok {
			return models.BoxKey{}, ErrBoxNameType
		}
		return models.BoxKey{Name: name}, nil
	case hasID:
		id, ok := b.str("id")
		if !ok {
			return models.BoxKey{}, ErrBoxIDType
		}
		return models.BoxKey{ID: id}, nil
	default:
		return models.BoxKey{}, ErrBoxKeyMissing
	}
}
