// Package pipeline runs the batch merge: discover matching files in the
// input directory, load each one, tag its rows with their source, stack
// everything into one table, and persist it.
//
// The run is all-or-nothing. Any discovery, parse, or write failure aborts
// before the output path is touched, and the returned error wraps one of the
// sentinel errors in errors.go.
package pipeline
