// Package requestid attaches correlation identifiers to requests.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUID,
// stores the id in the request context and echoes it on the response.
// Lens exposes the same header to contracts so it can be documented and
// read from messages; malformed ids fail extraction with ErrInvalidID.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
