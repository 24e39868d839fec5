package message

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultMaxBodyBytes limits how much of a request body FromRequest reads (10MB).
const DefaultMaxBodyBytes = 10 << 20

// PathParamsExtractor returns router path parameters for a request.
type PathParamsExtractor func(r *http.Request) map[string]string

// Option configures FromRequest.
type Option func(*options)

type options struct {
	maxBodyBytes int64
	pathParams   PathParamsExtractor
}

// WithMaxBodyBytes caps the number of body bytes read. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}

// WithPathParams sets the extractor used to fill path parameters.
func WithPathParams(fn PathParamsExtractor) Option {
	return func(o *options) {
		if fn != nil {
			o.pathParams = fn
		}
	}
}

// FromRequest reads r into a Message. The body is consumed.
func FromRequest(r *http.Request, opts ...Option) (Message, error) {
	o := &options{maxBodyBytes: DefaultMaxBodyBytes}
	for _, opt := range opts {
		opt(o)
	}

	m := Message{
		method: r.Method,
		path:   r.URL.Path,
		header: r.Header.Clone(),
		query:  r.URL.Query(),
	}
	if m.header == nil {
		m.header = http.Header{}
	}

	if r.Body != nil && r.Body != http.NoBody {
		body, err := io.ReadAll(io.LimitReader(r.Body, o.maxBodyBytes+1))
		if err != nil {
			return Message{}, fmt.Errorf("%w: %v", ErrFailedToReadBody, err)
		}
		if int64(len(body)) > o.maxBodyBytes {
			return Message{}, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, o.maxBodyBytes)
		}
		m.body = body
	}

	if o.pathParams != nil {
		for name, value := range o.pathParams(r) {
			m = m.WithPathParam(name, value)
		}
	}

	return m, nil
}

// HTTPRequest converts a request message into an *http.Request.
func (m Message) HTTPRequest(ctx context.Context) (*http.Request, error) {
	u := &url.URL{Path: m.path, RawQuery: m.query.Encode()}

	var body io.Reader = http.NoBody
	if m.body != nil {
		body = bytes.NewReader(m.body)
	}

	r, err := http.NewRequestWithContext(ctx, m.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	r.Header = m.Headers()
	return r, nil
}

// Write renders a response message. Messages without a status are written as 200 OK.
func (m Message) Write(w http.ResponseWriter) error {
	h := w.Header()
	for name, values := range m.header {
		h[name] = append([]string(nil), values...)
	}

	status := m.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if len(m.body) == 0 {
		return nil
	}
	_, err := w.Write(m.body)
	return err
}
