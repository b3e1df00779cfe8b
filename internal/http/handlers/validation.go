package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// FieldError is a single validation failure. Failures are reported in rule
// declaration order, and a field may appear more than once.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Snapshot is the decoded view of a request that rules and handlers read
// from: path parameters plus the raw JSON body fields. It is built once per
// request, so handlers never decode the body a second time.
type Snapshot struct {
	params map[string]string
	body   map[string]json.RawMessage
}

const maxBodyBytes = 1048576 // one megabyte

func newSnapshot(r *http.Request) (*Snapshot, error) {
	s := &Snapshot{
		params: map[string]string{},
		body:   map[string]json.RawMessage{},
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			s.params[key] = rctx.URLParams.Values[i]
		}
	}

	if r.Body != nil {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}
		// An absent body is an empty snapshot, not a decode error, so
		// not-empty rules report per-field failures instead.
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, &s.body); err != nil {
				return nil, fmt.Errorf("failed to read JSON: %w", err)
			}
		}
	}
	return s, nil
}

// Int returns a validated integer path parameter.
func (s *Snapshot) Int(field string) int {
	n, _ := strconv.Atoi(s.params[field])
	return n
}

// String returns a body field as a string.
func (s *Snapshot) String(field string) string {
	var v string
	if err := json.Unmarshal(s.body[field], &v); err != nil {
		return string(s.body[field])
	}
	return v
}

// Float returns a validated numeric body field. Numeric strings are coerced
// the same way the numeric rule accepts them.
func (s *Snapshot) Float(field string) float64 {
	v, _ := s.float(field)
	return v
}

// Bool returns a validated boolean body field.
func (s *Snapshot) Bool(field string) bool {
	v, _ := s.boolean(field)
	return v
}

func (s *Snapshot) present(field string) bool {
	raw, ok := s.body[field]
	if !ok || string(raw) == "null" {
		return false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err == nil {
		return strings.TrimSpace(v) != ""
	}
	return true
}

func (s *Snapshot) float(field string) (float64, bool) {
	raw, ok := s.body[field]
	if !ok {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		n, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

func (s *Snapshot) boolean(field string) (bool, bool) {
	raw, ok := s.body[field]
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, true
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		b, err := strconv.ParseBool(strings.TrimSpace(str))
		if err == nil {
			return b, true
		}
	}
	return false, false
}

// Rule is one declarative field check with a fixed failure message.
type Rule struct {
	Field   string
	Message string
	ok      func(s *Snapshot) bool
}

// ParamInt requires a path parameter to parse as an integer.
func ParamInt(field, message string) Rule {
	return Rule{Field: field, Message: message, ok: func(s *Snapshot) bool {
		_, err := strconv.Atoi(s.params[field])
		return err == nil
	}}
}

// BodyNotEmpty requires a body field to be present, non-null and, for
// strings, not whitespace-only.
func BodyNotEmpty(field, message string) Rule {
	return Rule{Field: field, Message: message, ok: func(s *Snapshot) bool {
		return s.present(field)
	}}
}

// BodyNumeric requires a body field to be a JSON number or a numeric string.
func BodyNumeric(field, message string) Rule {
	return Rule{Field: field, Message: message, ok: func(s *Snapshot) bool {
		_, ok := s.float(field)
		return ok
	}}
}

// BodyPositive requires a numeric body field to be strictly greater than zero.
func BodyPositive(field, message string) Rule {
	return Rule{Field: field, Message: message, ok: func(s *Snapshot) bool {
		n, ok := s.float(field)
		return ok && n > 0
	}}
}

// BodyBoolean requires a body field to be a JSON boolean or a boolean string.
func BodyBoolean(field, message string) Rule {
	return Rule{Field: field, Message: message, ok: func(s *Snapshot) bool {
		_, ok := s.boolean(field)
		return ok
	}}
}

type ctxKey int

const snapshotKey ctxKey = 0

// Validate runs the given rules in order against a snapshot of the request.
// Every rule runs; failures accumulate and short-circuit the handler with a
// 400 carrying the full ordered error list. On success the snapshot is
// stored in the request context for the handler.
func Validate(rules ...Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snap, err := newSnapshot(r)
			if err != nil {
				http.Error(w, "invalid input", http.StatusBadRequest)
				return
			}

			var errs []FieldError
			for _, rule := range rules {
				if !rule.ok(snap) {
					errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
				}
			}
			if len(errs) > 0 {
				writeJSON(w, http.StatusBadRequest, ValidationErrorsResponse{Errors: errs})
				return
			}

			ctx := context.WithValue(r.Context(), snapshotKey, snap)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Validated returns the snapshot stored by Validate.
func Validated(r *http.Request) *Snapshot {
	if s, ok := r.Context().Value(snapshotKey).(*Snapshot); ok {
		return s
	}
	return &Snapshot{params: map[string]string{}, body: map[string]json.RawMessage{}}
}
