// Package environment names the application environments and carries the
// current one through context.Context, HTTP requests and structured logs.
//
// Environment is a typed string with the Development, Staging and Production
// constants. Parse normalises common aliases ("dev", "prod", "stage"). The
// session manager relies on Environment.IsDevelopment to decide whether the
// session cookie is scoped to a shared parent domain.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	handler = environment.Middleware(env)(handler)
//
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// LoggerExtractor returns a logger.ContextExtractor compatible function that
// adds the "env" attribute to every record logged with a request context.
package environment
