// Package ruleserver serves compiled rulesets over HTTP.
//
// NewHandler builds a chi router that lists the loaded rulesets and validates
// JSON objects against them. The three validation outcomes map onto status
// codes: 200 for valid, 422 for invalid with the per-field messages, and 400
// for an aborted call naming the missing field.
//
// Server wraps net/http with graceful shutdown on context cancellation or
// SIGINT/SIGTERM:
//
//	sets, err := ruleset.LoadDir(ctx, "./rules")
//	if err != nil {
//		return err
//	}
//	srv := ruleserver.NewFromConfig(cfg, ruleserver.WithLogger(log))
//	return srv.Run(ctx, ruleserver.NewHandler(sets, ruleserver.WithMaxBodySize(cfg.MaxBody)))
//
// Every response carries an X-Request-ID header; RequestIDExtractor puts the
// same ID on log records.
package ruleserver
