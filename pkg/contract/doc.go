// Package contract declares HTTP routes in terms of lenses.
//
// A Route names its method, path template and the lenses the request must
// satisfy. Mounting a Contract on a chi router validates every lens before
// the handler runs, so the handler only sees requests that honour the
// contract and a failing request is answered with all of its failures at
// once. The same lenses describe the route in the generated OpenAPI 3
// document.
//
//	id := lens.Int(lens.Path).Required("id")
//	token := lens.Header.Required("X-Token", lens.WithDescription("API token"))
//
//	c := contract.New("users", "1.0.0", contract.WithDocPath("/openapi.json"))
//	err := c.Add(contract.Route{
//		Method:  http.MethodGet,
//		Path:    "/users/{id}",
//		Summary: "Fetch a user",
//		Checks:  []lens.Checker[message.Message]{id, token},
//		Handler: getUser,
//	})
//
//	r := chi.NewRouter()
//	err = c.Mount(r)
package contract
