// Package novelty turns raw sampler output into exactly the requested number
// of names that are not in the known-names corpus.
//
// The Filter asks the sampler for more candidates than it still needs (1.5
// times the shortfall by default), throws away malformed candidates and real
// names, and repeats until it has enough. Surplus candidates from the last
// batch are discarded.
//
//	f := novelty.New(s, idx, v)
//	names, err := f.Generate(ctx, "an", 10)
//	switch {
//	case errors.Is(err, novelty.ErrInvalidSeed):
//	    // reject the request
//	case errors.Is(err, novelty.ErrGenerationExhausted):
//	    // the model kept producing real or malformed names
//	}
//
// Input is validated before the sampler is touched, so a rejected request
// never costs a model call. The number of sampler batches is bounded by
// WithMaxAttempts; without the bound a model that only reproduces real names
// would keep the loop running forever.
package novelty
