// Package httptransport is the thin HTTP layer. Handlers decode requests,
// delegate to domain services and encode responses; business logic stays out.
package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	domainerrors "mise/pkg/domain-errors"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into a JSON error envelope. Non-domain
// errors map to 500 without leaking internals.
func WriteError(w http.ResponseWriter, err error) {
	code := domainerrors.CodeOf(err)
	msg := "internal error"
	var de *domainerrors.Error
	if errors.As(err, &de) {
		msg = de.Message
	}
	WriteJSON(w, domainerrors.ToHTTPStatus(code), map[string]string{
		"error":   string(code),
		"message": msg,
	})
}
