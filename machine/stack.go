package machine

import (
	"iter"
	"slices"
)

// Stack of values, top at the end of Data.
type Stack struct {
	Data []float64
}

func (s *Stack) Push(value float64) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value float64, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Peek() (value float64, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// TopDown iterates from the top of the stack to the bottom, yielding the
// distance from the top with each value.
func (s *Stack) TopDown() iter.Seq2[int, float64] {
	return func(yield func(depth int, value float64) bool) {
		depth := 0
		for _, value := range slices.Backward(s.Data) {
			if !yield(depth, value) {
				return
			}
			depth++
		}
	}
}

// Values returns a copy of the stack, bottom first.
func (s *Stack) Values() []float64 {
	return slices.Clone(s.Data)
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
