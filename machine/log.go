package machine

import (
	"iter"
)

const (
	LOG_DEFAULT_CAPACITY = 100 // Entries kept when no capacity is set.
)

// Entry is a single log record. Err is set for failed operations.
type Entry struct {
	Text string
	Err  error
}

// Failed returns true if the entry records an error.
func (entry Entry) Failed() bool {
	return entry.Err != nil
}

func (entry Entry) String() string {
	return entry.Text
}

// Log is a circular buffer of entries. Once Capacity entries are held,
// each new entry replaces the oldest one.
type Log struct {
	Capacity int // Capacity in entries.

	WriteIndex int
	Size       int
	Data       []Entry
}

// Reset empties the log, and records the seed entry.
func (lg *Log) Reset(seed Entry) {
	if lg.Capacity <= 0 {
		lg.Capacity = LOG_DEFAULT_CAPACITY
	}

	lg.WriteIndex = 0
	lg.Size = 0
	lg.Data = make([]Entry, lg.Capacity)

	lg.Add(seed)
}

// Add records an entry as the most recent.
func (lg *Log) Add(entry Entry) {
	if len(lg.Data) == 0 {
		if lg.Capacity <= 0 {
			lg.Capacity = LOG_DEFAULT_CAPACITY
		}
		lg.Data = make([]Entry, lg.Capacity)
	}

	lg.Data[lg.WriteIndex] = entry

	lg.WriteIndex++
	if lg.WriteIndex == len(lg.Data) {
		lg.WriteIndex = 0
	}

	if lg.Size < len(lg.Data) {
		lg.Size++
	}
}

// Len returns the number of entries held.
func (lg *Log) Len() int {
	return lg.Size
}

// Latest returns the most recent entry.
func (lg *Log) Latest() (entry Entry, ok bool) {
	for latest := range lg.Entries() {
		return latest, true
	}

	return
}

// Entries iterates from the most recent entry to the oldest.
func (lg *Log) Entries() iter.Seq[Entry] {
	return func(yield func(entry Entry) bool) {
		index := lg.WriteIndex
		for range lg.Size {
			index--
			if index < 0 {
				index = len(lg.Data) - 1
			}
			if !yield(lg.Data[index]) {
				return
			}
		}
	}
}
