// Package logger builds *slog.Logger instances from functional options and
// injects request-scoped attributes pulled from context.Context.
//
// New selects a text or JSON handler, applies the minimum level and static
// attributes, then wraps the handler with LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "slimauth"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers (Error, UserID, AnonID, Cookie, Component) keep key names
// consistent across packages.
package logger
