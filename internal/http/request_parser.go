package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"finai/internal/core"
)

const maxBodyBytes = 1 << 20

// amountValue is a request amount given either as a JSON number or as
// user-typed text such as "1250,50" or "₹500".
type amountValue struct {
	number float64
	text   string
	isText bool
}

func (a *amountValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		a.isText = true
		return json.Unmarshal(data, &a.text)
	}
	return json.Unmarshal(data, &a.number)
}

// requireAmount resolves an optional amount field. Missing or unparsable
// amounts are ErrInvalidAmount; text amounts must be positive.
func requireAmount(a *amountValue) (float64, error) {
	if a == nil {
		return 0, core.ErrInvalidAmount
	}
	if a.isText {
		return core.ParseAmount(a.text)
	}
	return a.number, nil
}

// decodeJSON reads exactly one JSON object into dst, rejecting unknown
// fields and bodies over maxBodyBytes.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrMalformedRequest)
		}
		return fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON object", ErrMalformedRequest)
	}
	return nil
}

// pathParam returns a decoded, sanitized chi URL parameter.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		raw = v
	}
	return sanitizeInput(raw)
}

// parseTierQuery reads an optional risk tier from the query string.
func parseTierQuery(q url.Values, key string) (core.RiskTier, bool, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return "", false, nil
	}
	t, err := core.ParseRiskTier(v)
	if err != nil {
		return "", false, err
	}
	return t, true, nil
}

// parseDateField accepts YYYY-MM-DD; an empty value means today.
func parseDateField(s string) (core.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Date{}, nil
	}
	d, err := core.ParseDate(s)
	if err != nil {
		return core.Date{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	return d, nil
}
