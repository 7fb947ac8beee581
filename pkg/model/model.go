package model

import (
	"context"
	"fmt"
)

// DefaultStateWidth is the recurrent state width of the trained generator.
const DefaultStateWidth = 64

// State carries the recurrent tensors of every sequence in a batch.
// Both fields have the shape [batch][width].
type State struct {
	Hidden [][]float32 `json:"hidden"`
	Cell   [][]float32 `json:"cell"`
}

// ZeroState returns an all-zero state for batch sequences.
func ZeroState(batch, width int) State {
	return State{
		Hidden: zeros(batch, width),
		Cell:   zeros(batch, width),
	}
}

func zeros(rows, cols int) [][]float32 {
	backing := make([]float32, rows*cols)
	out := make([][]float32, rows)
	for i := range out {
		out[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return out
}

// Batch returns the number of sequences the state describes.
func (s State) Batch() int {
	return len(s.Hidden)
}

// Validate checks that both tensors have the shape [batch][width].
func (s State) Validate(batch, width int) error {
	for name, tensor := range map[string][][]float32{"hidden": s.Hidden, "cell": s.Cell} {
		if len(tensor) != batch {
			return fmt.Errorf("%w: %s state has %d rows, want %d", ErrBatchShape, name, len(tensor), batch)
		}
		for i, row := range tensor {
			if len(row) != width {
				return fmt.Errorf("%w: %s state row %d has width %d, want %d", ErrBatchShape, name, i, len(row), width)
			}
		}
	}
	return nil
}

// Prediction is the result of one model step.
type Prediction struct {
	// Probs holds one distribution over the vocabulary per sequence,
	// for the last input position.
	Probs [][]float32
	State State
}

// Validate checks the prediction against the expected batch size,
// vocabulary size and state width.
func (p Prediction) Validate(batch, vocabSize, width int) error {
	if len(p.Probs) != batch {
		return fmt.Errorf("%w: %d distributions, want %d", ErrBatchShape, len(p.Probs), batch)
	}
	for i, dist := range p.Probs {
		if len(dist) != vocabSize {
			return fmt.Errorf("%w: distribution %d has %d entries, want %d", ErrBatchShape, i, len(dist), vocabSize)
		}
	}
	return p.State.Validate(batch, width)
}

// Adapter is a trained sequence model.
type Adapter interface {
	// StateWidth returns the width of each recurrent state row.
	StateWidth() int
	// Predict runs one step for every sequence in inputs.
	Predict(ctx context.Context, inputs [][]int, state State) (Prediction, error)
}

// Func adapts a plain function to Adapter.
type Func struct {
	Width int
	Fn    func(ctx context.Context, inputs [][]int, state State) (Prediction, error)
}

// StateWidth returns f.Width.
func (f Func) StateWidth() int { return f.Width }

// Predict calls f.Fn.
func (f Func) Predict(ctx context.Context, inputs [][]int, state State) (Prediction, error) {
	return f.Fn(ctx, inputs, state)
}

// ValidateInputs checks that inputs is a non-empty rectangular batch.
func ValidateInputs(inputs [][]int) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%w: empty batch", ErrBatchShape)
	}
	steps := len(inputs[0])
	if steps == 0 {
		return fmt.Errorf("%w: empty sequence", ErrBatchShape)
	}
	for i, row := range inputs[1:] {
		if len(row) != steps {
			return fmt.Errorf("%w: sequence %d has %d steps, want %d", ErrBatchShape, i+1, len(row), steps)
		}
	}
	return nil
}
