// Package naming derives the provenance tag written into the source column
// and decides which directory entries count as inputs.
//
// Both rules work on the joined path string (input directory plus entry
// name), not on the bare file name, so a directory whose own path contains
// the match pattern makes every entry below it a candidate.
package naming
