// Package machine implements the abstract stack machine of the simulator.
//
// The machine holds a stack of float64 values, a bounded operation log kept
// most-recent-first, and the pending input staged for the next PUSH. Every
// operation either completes or fails without changing the stack; failures
// are both returned and recorded in the log.
package machine
