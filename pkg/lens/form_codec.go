package lens

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/contractkit/pkg/message"
)

const formName = "form"

// formFieldsMapper converts a UTF-8 form-encoded body to fields and back.
var formFieldsMapper = Compose(Text(UTF8), DecodeForm, EncodeForm)

// DecodeForm parses an application/x-www-form-urlencoded string.
// Segments without "=" are dropped, each remaining segment is split once on
// the first "=", and keys and values are percent-decoded. Values of a key
// keep their order of appearance.
func DecodeForm(body string) (map[string][]string, error) {
	fields := make(map[string][]string)
	for segment := range strings.SplitSeq(body, "&") {
		rawKey, rawValue, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid form key %q", ErrTypeConversion, rawKey)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid form value for %q", ErrTypeConversion, key)
		}
		fields[key] = append(fields[key], value)
	}
	return fields, nil
}

// EncodeForm renders fields as an application/x-www-form-urlencoded string,
// sorted by key. DecodeForm(EncodeForm(f)) yields f.
func EncodeForm(fields map[string][]string) string {
	return url.Values(fields).Encode()
}

// formLocator reads the body of form-encoded messages only.
type formLocator struct{}

func (formLocator) Location() Location { return LocationBody }

func (formLocator) Get(m message.Message, _ string) ([][]byte, error) {
	if m.Header(message.HeaderContentType) != message.ContentTypeFormURLEncoded {
		return nil, &ContractBreach{Failures: []Failure{{
			Name:     message.HeaderContentType,
			Location: LocationHeader,
			Required: true,
			Reason:   ReasonUnsupported,
		}}}
	}
	if !m.HasBody() {
		return nil, nil
	}
	return [][]byte{m.Body()}, nil
}

func (formLocator) Set(m message.Message, _ string, values [][]byte) message.Message {
	if len(values) > 0 {
		m = m.WithBody(values[len(values)-1])
	}
	return m.WithHeader(message.HeaderContentType, message.ContentTypeFormURLEncoded)
}

// WebFormBody returns a lens that decodes a form-encoded body, checks every
// given field lens against it and hands the result to validator. All field
// failures are collected, in the order the fields are given, before the
// validator runs. A nil validator means Strict.
//
// Injecting a WebForm encodes its fields into the body and sets the
// Content-Type header.
func WebFormBody(validator FormValidator, fields ...Checker[WebForm]) RequiredLens[message.Message, WebForm] {
	if validator == nil {
		validator = Strict
	}

	metas := make([]Meta, 0, len(fields))
	for _, field := range fields {
		metas = append(metas, field.Meta())
	}

	m := Compose(formFieldsMapper,
		func(decoded map[string][]string) (WebForm, error) {
			form := NewWebForm(decoded)
			return validator.Validate(form.withErrors(checkFields(form, fields)))
		},
		func(form WebForm) map[string][]string { return form.fields },
	)

	return NewBodySpec(NewSpec[message.Message, []byte, WebForm](formLocator{}, m)).
		typed(ParamObject).
		named(formName).
		as(message.ContentTypeFormURLEncoded).
		Required(withFields(metas))
}

func checkFields(form WebForm, fields []Checker[WebForm]) []Failure {
	var failures []Failure
	for _, field := range fields {
		err := field.Check(form)
		if err == nil {
			continue
		}
		if breach, ok := AsContractBreach(err); ok {
			failures = append(failures, breach.Failures...)
			continue
		}
		meta := field.Meta()
		failures = append(failures, Failure{
			Name:     meta.Name,
			Location: meta.Location,
			Required: true,
			Reason:   ReasonInvalid,
			Err:      err,
		})
	}
	return failures
}
