package internal

import (
	"iter"
)

// Concat2 chains key/value iterators. Later sequences may repeat keys of
// earlier ones; consumers building maps see the later value.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
