// Package logger builds *slog.Logger values from functional options and provides
// attribute helpers with consistent keys for validation diagnostics.
//
// New wraps the JSON or text handler with LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks on every record. This is how request IDs
// set by the HTTP layer end up on engine warnings.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "formrules"),
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			id := requestIDFrom(ctx)
//			return logger.RequestID(id), id != ""
//		}),
//	)
//
//	log.Warn("validation aborted", logger.Field("age"), logger.Rule("required"))
//
// Helpers return an empty slog.Attr for empty input, which slog drops, so they
// can be passed unconditionally.
package logger
