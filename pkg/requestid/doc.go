// Package requestid assigns every HTTP request an identifier, echoes it in the
// X-Request-ID response header and stores it in the request context.
//
// An incoming X-Request-ID is reused when it is short and made of letters,
// digits, dashes and underscores; anything else is replaced by a fresh
// time-ordered UUID. LoggerExtractor plugs the identifier into package logger.
package requestid
