// Package model defines the boundary between the name generator and the
// trained character-level sequence model.
//
// The generator never looks inside the model. It hands over a batch of
// encoded character sequences together with the recurrent state from the
// previous step and gets back one next-character distribution per sequence
// plus the updated state. Anything that can answer that question implements
// Adapter: a remote inference server (see package remote), an in-process
// runtime, or a stub in tests.
//
//	stub := model.Func{
//	    Width: 64,
//	    Fn: func(ctx context.Context, inputs [][]int, state model.State) (model.Prediction, error) {
//	        // always predict the END marker
//	    },
//	}
//
// Adapters must be deterministic for identical inputs and must not keep
// hidden memory between calls: everything a step needs travels in State.
package model
