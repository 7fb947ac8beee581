// Package sampler generates candidate names one character at a time from a
// sequence model.
//
// Every candidate starts as the START marker followed by the seed. On each
// step the sampler feeds the batch to the model, draws one character per
// unfinished candidate from the predicted distribution and appends it. A
// candidate is finished once it emits the END marker; the whole batch stops
// early when all candidates are finished, and in any case after
// MaxLength - len(seed) steps.
//
//	s := sampler.New(v, adapter)
//	names, err := s.Generate(ctx, "an", 5)
//	// names has exactly 5 entries; "" marks a malformed candidate
//
// A candidate is well formed when its text contains START, one or more
// lower-case letters and END. Everything else, including candidates that ran
// out of steps, comes back as an empty string. Callers decide what to do with
// those; package novelty discards them and samples again.
//
// The sampler never retries a failing model call.
package sampler
