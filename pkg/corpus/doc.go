// Package corpus holds the set of real names that generated names must not
// collide with, and the sources those names are loaded from.
//
// Names are compared in normalized form: surrounding whitespace and the
// sequence markers are stripped and the result is Unicode case folded, so
// "Anna", " anna " and "<anna>" are all the same entry.
//
// An Index is built once at startup and never mutated, which makes it safe for
// any number of concurrent readers:
//
//	idx, err := corpus.Load(ctx,
//	    corpus.FileSource("data/us_names.txt"),
//	    corpus.RedisSource(client, "names:known"),
//	)
//	if err != nil {
//	    return err
//	}
//	if idx.Contains("Anna") {
//	    // a real name
//	}
//
// # Sources
//
// A Source is anything that can produce a list of names. FileSource reads a
// local file with one name per line, S3Source reads an object from S3 or an
// S3-compatible store, RedisSource reads the members of a Redis set and
// PostgresSource reads the first column of a query result. Load runs all
// sources concurrently and merges their output.
package corpus
