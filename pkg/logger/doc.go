// Package logger builds *slog.Logger instances from functional options and
// provides the attribute helpers used across formvalidation's log records.
//
// New picks a text or JSON slog handler and applies static attributes. Records
// logged through a *Context method also carry the attributes stored with
// ContextWithAttrs and the output of registered ContextExtractor callbacks.
//
// # Usage
//
//	log := logger.New(
//		logger.WithDevelopment("checkout-form"),
//		logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//
//	ctx = logger.ContextWithAttrs(ctx, logger.Scope("field"))
//	log.DebugContext(ctx, "field validation skipped", logger.Path("Address.Line1"))
//
// # Configuration
//
//   - WithDevelopment / WithProduction - level and format presets tagged with a component.
//   - WithFormat / WithTextFormatter / WithJSONFormatter - output format.
//   - WithLevel, WithHandlerOptions - filtering and handler tuning.
//   - WithAttr - static attributes.
//   - WithContextExtractors / WithContextValue - attributes pulled from context values.
//
// ParseLevel and ParseFormat turn configuration strings into options input.
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally. WithFormat panics on unknown formats.
package logger
