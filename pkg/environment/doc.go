// Package environment names the deployment environment of an application
// and carries it through context.Context into structured logs.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	ctx = environment.WithContext(ctx, env)
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Unknown or empty names parse as Development.
package environment
