package lens

import (
	"github.com/dmitrymomot/contractkit/pkg/message"
)

// Locator reads and writes the raw values of a named slot on a target.
// Set must not modify target; it returns a new target whose slot holds
// exactly the given values.
type Locator[T, RAW any] interface {
	Location() Location
	Get(target T, name string) ([]RAW, error)
	Set(target T, name string, values []RAW) T
}

// NewLocator builds a Locator from functions.
func NewLocator[T, RAW any](location Location, get func(T, string) ([]RAW, error), set func(T, string, []RAW) T) Locator[T, RAW] {
	return funcLocator[T, RAW]{location: location, get: get, set: set}
}

type funcLocator[T, RAW any] struct {
	location Location
	get      func(T, string) ([]RAW, error)
	set      func(T, string, []RAW) T
}

func (l funcLocator[T, RAW]) Location() Location { return l.location }

func (l funcLocator[T, RAW]) Get(target T, name string) ([]RAW, error) {
	return l.get(target, name)
}

func (l funcLocator[T, RAW]) Set(target T, name string, values []RAW) T {
	return l.set(target, name, values)
}

type headerLocator struct{}

func (headerLocator) Location() Location { return LocationHeader }

func (headerLocator) Get(m message.Message, name string) ([]string, error) {
	return m.HeaderValues(name), nil
}

func (headerLocator) Set(m message.Message, name string, values []string) message.Message {
	return m.WithHeader(name, values...)
}

type queryLocator struct{}

func (queryLocator) Location() Location { return LocationQuery }

func (queryLocator) Get(m message.Message, name string) ([]string, error) {
	return m.QueryValues(name), nil
}

func (queryLocator) Set(m message.Message, name string, values []string) message.Message {
	return m.WithQuery(name, values...)
}

// pathLocator holds at most one value per name; the last written value wins.
type pathLocator struct{}

func (pathLocator) Location() Location { return LocationPath }

func (pathLocator) Get(m message.Message, name string) ([]string, error) {
	if v, ok := m.PathParam(name); ok {
		return []string{v}, nil
	}
	return nil, nil
}

func (pathLocator) Set(m message.Message, name string, values []string) message.Message {
	if len(values) == 0 {
		return m.WithoutPathParam(name)
	}
	return m.WithPathParam(name, values[len(values)-1])
}

// bodyLocator ignores the name: a message has exactly one body.
type bodyLocator struct{}

func (bodyLocator) Location() Location { return LocationBody }

func (bodyLocator) Get(m message.Message, _ string) ([][]byte, error) {
	if !m.HasBody() {
		return nil, nil
	}
	return [][]byte{m.Body()}, nil
}

func (bodyLocator) Set(m message.Message, _ string, values [][]byte) message.Message {
	if len(values) == 0 {
		return m.WithBody(nil)
	}
	return m.WithBody(values[len(values)-1])
}
