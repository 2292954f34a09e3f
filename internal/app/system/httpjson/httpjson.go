// Package httpjson holds the JSON request/response helpers and the
// error taxonomy shared by every feature handler: unauthenticated,
// forbidden, not found, and internal. Guard failures use fixed
// messages; internal errors never leak store detail to callers.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// M is shorthand for an ad-hoc JSON object.
type M map[string]any

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, v any) { Write(w, http.StatusOK, v) }

// Created writes a 201 response.
func Created(w http.ResponseWriter, v any) { Write(w, http.StatusCreated, v) }

// Decode reads the request body into dst. On failure it writes a 400
// and reports false; callers should return immediately.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Write(w, http.StatusBadRequest, M{"message": "invalid request body"})
		return false
	}
	return true
}

// Unauthenticated writes the fixed 401 used by the token guard for
// both missing and invalid credentials.
func Unauthenticated(w http.ResponseWriter) {
	Write(w, http.StatusUnauthorized, M{"message": "unauthorized access"})
}

// Forbidden writes a 403 with a message naming the required role.
func Forbidden(w http.ResponseWriter, message string) {
	Write(w, http.StatusForbidden, M{"message": message})
}

// NotFound writes a 404 with a route-specific message.
func NotFound(w http.ResponseWriter, message string) {
	Write(w, http.StatusNotFound, M{"message": message})
}

// BadRequest writes a 400 with a route-specific message.
func BadRequest(w http.ResponseWriter, message string) {
	Write(w, http.StatusBadRequest, M{"message": message})
}

// Internal writes a generic 500. The underlying error is logged by the
// caller, never serialized.
func Internal(w http.ResponseWriter) {
	Write(w, http.StatusInternalServerError, M{"message": "internal server error"})
}
