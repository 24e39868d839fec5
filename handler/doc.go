// Package handler adapts lens-level handlers to net/http.
//
// A HandlerFunc receives an immutable message.Message and returns another
// one. Wrap reads the *http.Request into a message (bounded by the configured
// body limit and filled with router path parameters), runs the decorators
// and the handler, and writes the resulting message.
//
//	name := lens.Query.Required("name", lens.WithDescription("who to greet"))
//
//	greet := func(ctx context.Context, req message.Message) (message.Message, error) {
//		n, err := name.Extract(req)
//		if err != nil {
//			return message.Message{}, err
//		}
//		return handler.JSON(map[string]string{"greeting": "hello " + n})
//	}
//
//	r := chi.NewRouter()
//	r.Get("/greet", handler.Wrap(greet,
//		handler.WithPathParams(handler.ChiPathParams),
//		handler.WithDecorators(handler.Recover(), handler.Validate(name)),
//	))
//
// # Errors
//
// The default error handler renders a JSONResponse with an ErrorDetail:
//
//   - *lens.ContractBreach becomes 400 with code "contract_breach" and one
//     details entry per failed slot name
//   - HTTPError uses its own code and key
//   - anything else becomes 500 "internal_server_error"
//
// Bodies over the size limit are rejected with 413 before the handler runs.
package handler
