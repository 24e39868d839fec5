// Package message provides an immutable HTTP message value.
//
// A Message carries a method and path (requests) or a status code (responses),
// canonicalized headers, query parameters, router path parameters and a
// binary body. Every With* method returns a modified copy; the receiver is
// never changed, so a Message can be shared between goroutines without
// synchronization.
//
// # Usage
//
//	req, err := message.NewRequest(http.MethodPost, "/users?invite=true")
//	if err != nil {
//		return err
//	}
//	req = req.
//		WithHeader("Content-Type", message.ContentTypeFormURLEncoded).
//		WithBody([]byte("name=jane"))
//
//	resp := message.NewResponse(http.StatusCreated).WithHeader("Location", "/users/1")
//
// Conversion to and from net/http is provided by FromRequest and
// Message.Write. They are the only functions in this package that do I/O.
package message
