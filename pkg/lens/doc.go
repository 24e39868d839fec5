// Package lens provides typed, bidirectional access to named slots of
// otherwise untyped HTTP messages and web forms.
//
// A lens pairs a Locator, which reads and writes the raw values of a named
// slot (a header, a query parameter, a path parameter, the body or a form
// field), with a BiDiMapper, which converts between the raw representation
// and a domain value. Lenses are built from a Spec:
//
//	var (
//		page    = lens.Int(lens.Query).Optional("page")
//		traceID = lens.UUID(lens.Header).Required("X-Trace-Id", lens.WithDescription("request trace"))
//		tags    = lens.Query.Multi("tag")
//		body    = lens.BodyText.Required()
//	)
//
// Extracting returns the value or a *ContractBreach describing every slot
// that failed:
//
//	id, err := traceID.Extract(req)
//	if breach, ok := lens.AsContractBreach(err); ok {
//		// breach.Failures lists the offending slots
//	}
//
// Injecting never mutates its argument; it returns a new target:
//
//	resp := lens.With(message.NewResponse(http.StatusOK),
//		body.Of("created"),
//		traceID.Of(id),
//	)
//
// # Required, optional and multi-valued lenses
//
// A required lens fails when the slot is absent. An optional lens reports an
// absent slot as a nil pointer. A multi-valued lens returns every value of
// the slot. A value that is present but cannot be converted always fails,
// whatever the flavour of the lens.
//
// # Web forms
//
// WebFormBody decodes an application/x-www-form-urlencoded body into a
// WebForm and checks every declared form field lens against it, collecting
// all failures before the FormValidator decides the outcome. Strict turns
// collected failures into a *ContractBreach, Feedback hands them back on the
// form for the caller to render.
//
//	var (
//		age      = lens.Int(lens.FormField).Required("age")
//		nickname = lens.FormField.Optional("nickname")
//		signup   = lens.WebFormBody(lens.Feedback, age, nickname)
//	)
//
// Specs, lenses, mappers and validators hold no mutable state and are safe
// to share between goroutines.
package lens
