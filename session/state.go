package session

import (
	"gopkg.in/yaml.v3"
)

// State is a snapshot of a session.
type State struct {
	Stack []float64 `yaml:"stack"`
	Input string    `yaml:"input"`
	Log   []string  `yaml:"log"`
}

// Snapshot captures the stack (bottom first), the staged input, and the
// log (most recent first).
func (s *Session) Snapshot() (state State) {
	state.Stack = s.Stack.Values()
	state.Input = s.Input
	for entry := range s.Log.Entries() {
		state.Log = append(state.Log, entry.Text)
	}

	return
}

// WriteState writes the snapshot as YAML.
func (s *Session) WriteState() (err error) {
	enc := yaml.NewEncoder(s.Output)
	enc.SetIndent(2)

	err = enc.Encode(s.Snapshot())
	if err != nil {
		return
	}

	err = enc.Close()

	return
}
