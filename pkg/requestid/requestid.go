package requestid

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/contractkit/pkg/lens"
	"github.com/dmitrymomot/contractkit/pkg/message"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var ErrInvalidID = errors.New("invalid request id")

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Lens reads and writes the request id header of a message.
var Lens = lens.Map(lens.Header, Parse, func(id string) string { return id }).
	Optional(Header, lens.WithDescription("Request correlation id"))

// Parse accepts ids of up to 128 letters, digits, dashes and underscores.
func Parse(id string) (string, error) {
	if id == "" || len(id) > maxIDLength || !validID.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return id, nil
}

// Resolve returns the request id of m, generating one when the header is
// absent or malformed.
func Resolve(m message.Message) string {
	if id, err := Lens.Extract(m); err == nil && id != nil {
		return *id
	}
	return uuid.NewString()
}

// Middleware stores the request id in the context and sets the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := Parse(r.Header.Get(Header))
		if err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}
