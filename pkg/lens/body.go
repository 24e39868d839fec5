package lens

import (
	"net/url"

	"golang.org/x/text/encoding"

	"github.com/dmitrymomot/contractkit/pkg/message"
)

const (
	bodyName        = "body"
	mediaTypeBinary = "application/octet-stream"
	mediaTypeText   = "text/plain"
)

// BodySpec is a Spec fixed to the single body slot of a message.
// There is one body per message, so only required lenses exist.
type BodySpec[V any] struct {
	name      string
	mediaType string
	delegate  Spec[message.Message, []byte, V]
}

// NewBodySpec wraps a Spec whose locator reads the message body.
func NewBodySpec[V any](s Spec[message.Message, []byte, V]) BodySpec[V] {
	return BodySpec[V]{name: bodyName, mediaType: mediaTypeBinary, delegate: s}
}

var (
	// Body reads and writes the raw body bytes.
	Body = NewBodySpec(NewSpec[message.Message, []byte, []byte](bodyLocator{}, Identity[[]byte]()).Typed(ParamBinary))
	// BodyText reads and writes the body as UTF-8 text.
	BodyText = BodyString(UTF8)
)

// BodyString reads and writes the body as text in the given encoding.
func BodyString(enc encoding.Encoding) BodySpec[string] {
	return MapBodyWith(Body, Text(enc)).typed(ParamString).as(mediaTypeText)
}

// MapBody derives a BodySpec over a new domain type.
func MapBody[V, N any](s BodySpec[V], in func(V) (N, error), out func(N) V) BodySpec[N] {
	return BodySpec[N]{name: s.name, mediaType: s.mediaType, delegate: Map(s.delegate, in, out)}
}

// MapBodyIn derives a one-way BodySpec.
func MapBodyIn[V, N any](s BodySpec[V], in func(V) (N, error)) BodySpec[N] {
	return BodySpec[N]{name: s.name, mediaType: s.mediaType, delegate: MapIn(s.delegate, in)}
}

// MapBodyWith derives a BodySpec by chaining another mapper.
func MapBodyWith[V, N any](s BodySpec[V], m BiDiMapper[V, N]) BodySpec[N] {
	return BodySpec[N]{name: s.name, mediaType: s.mediaType, delegate: MapWith(s.delegate, m)}
}

// Required returns the lens for the body slot.
func (s BodySpec[V]) Required(opts ...Option) RequiredLens[message.Message, V] {
	return s.delegate.Required(s.name, append([]Option{withMediaType(s.mediaType)}, opts...)...)
}

func (s BodySpec[V]) typed(p ParamType) BodySpec[V] {
	s.delegate = s.delegate.Typed(p)
	return s
}

func (s BodySpec[V]) as(mediaType string) BodySpec[V] {
	s.mediaType = mediaType
	return s
}

func (s BodySpec[V]) named(name string) BodySpec[V] {
	s.name = name
	return s
}

// BodyForm returns a lens over the raw parameters of a form-encoded body.
// Extraction fails unless the Content-Type header is exactly
// application/x-www-form-urlencoded; injection sets that header.
func BodyForm(opts ...Option) RequiredLens[message.Message, url.Values] {
	m := Compose(formFieldsMapper,
		func(fields map[string][]string) (url.Values, error) { return url.Values(fields), nil },
		func(v url.Values) map[string][]string { return v },
	)
	return NewBodySpec(NewSpec[message.Message, []byte, url.Values](formLocator{}, m)).
		typed(ParamObject).
		named(formName).
		as(message.ContentTypeFormURLEncoded).
		Required(opts...)
}
