package sampler

import "github.com/dmitrymomot/namegen/pkg/model"

// session is the mutable state of a single Generate call.
type session struct {
	texts    [][]rune
	finished []bool
	inputs   [][]int
	state    model.State
	open     int
}

// newSession starts count sequences with the same prefix. The first model
// step consumes the whole encoded prefix; every later step feeds one index per
// sequence and carries the rest in the recurrent state.
func newSession(count int, text []rune, encoded []int, width int) *session {
	s := &session{
		texts:    make([][]rune, count),
		finished: make([]bool, count),
		inputs:   make([][]int, count),
		state:    model.ZeroState(count, width),
		open:     count,
	}
	for i := range count {
		s.texts[i] = append(make([]rune, 0, len(text)+8), text...)
		s.inputs[i] = append([]int(nil), encoded...)
	}
	return s
}

func (s *session) done() bool {
	return s.open == 0
}

// feed sets the next input of sequence i to a single index.
func (s *session) feed(i, idx int) {
	if len(s.inputs[i]) != 1 {
		s.inputs[i] = make([]int, 1)
	}
	s.inputs[i][0] = idx
}

// append records a sampled character for sequence i.
func (s *session) append(i int, r rune, idx int, end bool) {
	s.texts[i] = append(s.texts[i], r)
	s.feed(i, idx)
	if end {
		s.finished[i] = true
		s.open--
	}
}
