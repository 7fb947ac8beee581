// Package remote implements model.Adapter on top of a TensorFlow Serving
// style REST predict endpoint.
//
// The trained generator is exported as an inference graph that takes the
// encoded characters plus the two recurrent state tensors and returns the
// next-character probabilities and the new state. Serving it out of process
// keeps model loading and the numeric runtime out of this module.
//
//	adapter, err := remote.New(remote.Config{
//	    URL:        "http://localhost:8501",
//	    Name:       "name_generator",
//	    StateWidth: 64,
//	    Timeout:    10 * time.Second,
//	})
//
// Requests use the columnar "inputs" format:
//
//	POST /v1/models/name_generator:predict
//	{"inputs": {"input_chars": [[1, 5]], "input_state_h": [[...]], "input_state_c": [[...]]}}
//
// and the adapter reads "probs" with shape [batch][time][vocab], keeping only
// the last time step, together with "state_h" and "state_c".
package remote
