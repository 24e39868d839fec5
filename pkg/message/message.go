package message

import (
	"bytes"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
)

const (
	HeaderContentType = "Content-Type"

	// ContentTypeFormURLEncoded is the only media type accepted by form lenses.
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
	ContentTypeJSON           = "application/json; charset=utf-8"
	ContentTypeText           = "text/plain; charset=utf-8"
)

// Message is an immutable HTTP request or response.
// The zero value is an empty message with neither a method nor a status.
type Message struct {
	method string
	path   string
	status int
	header http.Header
	query  url.Values
	params map[string]string
	body   []byte
}

// NewRequest creates a request message. The target is split into path and
// query; query keys are kept exactly as written.
func NewRequest(method, target string) (Message, error) {
	u, err := url.Parse(target)
	if err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}

	return Message{
		method: method,
		path:   u.Path,
		header: http.Header{},
		query:  query,
	}, nil
}

// NewResponse creates a response message with the given status code.
func NewResponse(status int) Message {
	return Message{
		status: status,
		header: http.Header{},
		query:  url.Values{},
	}
}

func (m Message) Method() string { return m.method }
func (m Message) Path() string   { return m.path }
func (m Message) Status() int    { return m.status }

// IsResponse reports whether the message was created with NewResponse.
func (m Message) IsResponse() bool { return m.status != 0 }

// Header returns the first value of the named header.
func (m Message) Header(name string) string {
	return m.header.Get(name)
}

// HeaderValues returns a copy of all values of the named header.
func (m Message) HeaderValues(name string) []string {
	return slices.Clone(m.header.Values(name))
}

// Headers returns a copy of all headers.
func (m Message) Headers() http.Header {
	if m.header == nil {
		return http.Header{}
	}
	return m.header.Clone()
}

// WithHeader replaces every value of the named header.
// Calling it without values removes the header.
func (m Message) WithHeader(name string, values ...string) Message {
	h := m.Headers()
	h.Del(name)
	for _, v := range values {
		h.Add(name, v)
	}
	m.header = h
	return m
}

// AddHeader appends a value to the named header.
func (m Message) AddHeader(name, value string) Message {
	h := m.Headers()
	h.Add(name, value)
	m.header = h
	return m
}

// Query returns the first value of the named query parameter.
func (m Message) Query(name string) string {
	return m.query.Get(name)
}

// QueryValues returns a copy of all values of the named query parameter.
func (m Message) QueryValues(name string) []string {
	return slices.Clone(m.query[name])
}

// RawQuery returns the encoded query string.
func (m Message) RawQuery() string {
	return m.query.Encode()
}

// WithQuery replaces every value of the named query parameter.
// Calling it without values removes the parameter.
func (m Message) WithQuery(name string, values ...string) Message {
	q := cloneValues(m.query)
	if len(values) == 0 {
		delete(q, name)
	} else {
		q[name] = slices.Clone(values)
	}
	m.query = q
	return m
}

// AddQuery appends a value to the named query parameter.
func (m Message) AddQuery(name, value string) Message {
	q := cloneValues(m.query)
	q.Add(name, value)
	m.query = q
	return m
}

// PathParam returns a router path parameter and whether it was set.
func (m Message) PathParam(name string) (string, bool) {
	v, ok := m.params[name]
	return v, ok
}

// WithPathParam sets a router path parameter.
func (m Message) WithPathParam(name, value string) Message {
	params := make(map[string]string, len(m.params)+1)
	maps.Copy(params, m.params)
	params[name] = value
	m.params = params
	return m
}

// WithoutPathParam removes a router path parameter.
func (m Message) WithoutPathParam(name string) Message {
	if _, ok := m.params[name]; !ok {
		return m
	}
	params := maps.Clone(m.params)
	delete(params, name)
	m.params = params
	return m
}

// Body returns a copy of the body, or nil when the message has none.
func (m Message) Body() []byte {
	if m.body == nil {
		return nil
	}
	return bytes.Clone(m.body)
}

// HasBody reports whether a body, possibly empty, is set.
func (m Message) HasBody() bool { return m.body != nil }

// WithBody replaces the body with a copy of b. A nil b removes the body.
func (m Message) WithBody(b []byte) Message {
	if b == nil {
		m.body = nil
		return m
	}
	m.body = append(make([]byte, 0, len(b)), b...)
	return m
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = slices.Clone(vals)
	}
	return out
}
