// Package logger builds *slog.Logger values for the generator service and
// its command line tools.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "namegen"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "names generated", logger.Count(len(names)), logger.Seed(seed))
//
// Development environments get debug level text output, everything else gets
// info level JSON. Context extractors run for every record, so request scoped
// values such as the request id show up without being passed around.
//
// Attribute helpers keep key names consistent across packages. Helpers that
// take an optional value return an empty slog.Attr for nil, which slog drops.
package logger
