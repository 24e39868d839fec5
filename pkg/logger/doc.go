// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent keys.
//
// New selects a text or JSON handler, applies a level and static attributes,
// and wraps the handler so that ContextExtractor callbacks can add
// request-scoped attributes on every record.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "orders-api"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "contract breach",
//		logger.Route(r.Method, r.URL.Path),
//		logger.Failures(err),
//	)
//
// Error, Errors and Failures return an empty attribute for nil or
// unrelated errors, so they can be passed unconditionally.
package logger
